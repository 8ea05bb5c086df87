package middleware

import "github.com/gin-gonic/gin"

// operatorKey stores the subject of the bearer token that authorized a manual run.
const operatorKey = contextKey("operator")

// GetOperatorFromContext returns the authenticated operator, checking the Gin
// context first and the request context second.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(operatorKey)); exists {
		operator, ok := val.(string)
		return operator, ok
	}
	if val, ok := c.Request.Context().Value(operatorKey).(string); ok {
		return val, true
	}
	return "", false
}
