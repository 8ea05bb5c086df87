// Package docs registers the OpenAPI description of the loader API with swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/currency-rates": {
            "get": {
                "produces": ["application/json"],
                "tags": ["currency-rates"],
                "summary": "List currency rates",
                "parameters": [
                    {"type": "string", "description": "Source currency code", "name": "from", "in": "query"},
                    {"type": "string", "description": "Target currency code", "name": "to", "in": "query"},
                    {"type": "string", "description": "Conversion date (YYYY-MM-DD)", "name": "date", "in": "query"},
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListCurrencyRatesResponse"}},
                    "400": {"description": "Invalid query"},
                    "500": {"description": "Failed to retrieve currency rates"}
                }
            }
        },
        "/currency-rates/export": {
            "get": {
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["currency-rates"],
                "summary": "Export currency rates",
                "parameters": [
                    {"type": "string", "description": "Source currency code", "name": "from", "in": "query"},
                    {"type": "string", "description": "Target currency code", "name": "to", "in": "query"},
                    {"type": "string", "description": "Conversion date (YYYY-MM-DD)", "name": "date", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Invalid query"},
                    "500": {"description": "Failed to export currency rates"}
                }
            }
        },
        "/banks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["banks"],
                "summary": "List banks",
                "parameters": [
                    {"type": "integer", "description": "Page number", "name": "page", "in": "query"},
                    {"type": "integer", "description": "Page size", "name": "pageSize", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ListBanksResponse"}},
                    "400": {"description": "Invalid query"},
                    "500": {"description": "Failed to retrieve banks"}
                }
            }
        },
        "/banks/{bic}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["banks"],
                "summary": "Get a bank by BIC",
                "parameters": [
                    {"maxLength": 9, "minLength": 9, "type": "string", "description": "Bank identification code", "name": "bic", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BankResponse"}},
                    "400": {"description": "Invalid BIC"},
                    "404": {"description": "Bank not found"},
                    "500": {"description": "Failed to retrieve bank"}
                }
            }
        },
        "/task-logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "List loader runs",
                "parameters": [
                    {"enum": ["currency", "banks"], "type": "string", "description": "Task type", "name": "type", "in": "query"},
                    {"type": "integer", "description": "Maximum number of entries", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.TaskLogResponse"}}},
                    "400": {"description": "Invalid query"},
                    "500": {"description": "Failed to retrieve task logs"}
                }
            }
        },
        "/tasks/{kind}/run": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["tasks"],
                "summary": "Run a loader now",
                "parameters": [
                    {"enum": ["currency", "banks"], "type": "string", "description": "Task type", "name": "kind", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.RunTaskResponse"}},
                    "401": {"description": "Unauthorized"},
                    "404": {"description": "Unknown task type"}
                }
            }
        }
    },
    "definitions": {
        "dto.CurrencyRateResponse": {
            "type": "object",
            "properties": {
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "conversionDate": {"type": "string"},
                "conversionType": {"type": "string"},
                "conversionRate": {"type": "string"},
                "statusCode": {"type": "string"},
                "createdAt": {"type": "string"},
                "lastUpdatedAt": {"type": "string"},
                "lastUpdatedBy": {"type": "string"}
            }
        },
        "dto.ListCurrencyRatesResponse": {
            "type": "object",
            "properties": {
                "rates": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyRateResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.BankResponse": {
            "type": "object",
            "properties": {
                "bic": {"type": "string"},
                "namep": {"type": "string"},
                "pzn": {"type": "string"},
                "rgn": {"type": "string"},
                "ind": {"type": "string"},
                "tnp": {"type": "string"},
                "nnp": {"type": "string"},
                "adr": {"type": "string"},
                "newnum": {"type": "string"},
                "regn": {"type": "string"},
                "ksnp": {"type": "string"},
                "datein": {"type": "string"},
                "cbrfdate": {"type": "string"},
                "cbrffile": {"type": "string"},
                "crc7": {"type": "string"},
                "importDate": {"type": "string"},
                "payload": {"$ref": "#/definitions/domain.BankPayload"}
            }
        },
        "domain.BankPayload": {
            "type": "object",
            "properties": {
                "ed_author": {"type": "string"},
                "accounts": {"type": "array", "items": {"type": "object", "additionalProperties": {"type": "string"}}},
                "participant_info": {"type": "object", "additionalProperties": {"type": "string"}},
                "source_encoding": {"type": "string"}
            }
        },
        "dto.ListBanksResponse": {
            "type": "object",
            "properties": {
                "banks": {"type": "array", "items": {"$ref": "#/definitions/dto.BankResponse"}},
                "total": {"type": "integer"}
            }
        },
        "dto.TaskLogResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "taskType": {"type": "string"},
                "label": {"type": "string"},
                "startedAt": {"type": "string"},
                "finishedAt": {"type": "string"},
                "success": {"type": "boolean"},
                "details": {"type": "string"},
                "itemsProcessed": {"type": "integer"}
            }
        },
        "dto.RunTaskResponse": {
            "type": "object",
            "properties": {
                "taskType": {"type": "string"},
                "success": {"type": "boolean"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "CBR Loader API",
	Description:      "Read access to the rates and bank directory loaded from the Central Bank of Russia feeds.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
