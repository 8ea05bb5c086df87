package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/dto"
	"github.com/SscSPs/cbr_loader/internal/middleware"
	"github.com/gin-gonic/gin"
)

// bankHandler handles HTTP requests related to the bank directory.
type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

func newBankHandler(bs portssvc.BankSvcFacade) *bankHandler {
	return &bankHandler{bankService: bs}
}

// registerBankRoutes registers routes related to banks.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := newBankHandler(bankService)

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.GET("/:bic", h.getBankByBIC)
	}
}

// listBanks godoc
// @Summary List banks
// @Description Lists directory entries ordered by name
// @Tags banks
// @Produce  json
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Success 200 {object} dto.ListBanksResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to retrieve banks"
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListBanksParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListBanks", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	banks, total, err := h.bankService.ListBanks(c.Request.Context(), params.Page, params.PageSize)
	if err != nil {
		respondServiceError(c, logger, err, "banks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBanksResponse(banks, total))
}

// getBankByBIC godoc
// @Summary Get a bank by BIC
// @Description Retrieves one directory entry including its accounts and raw participant data
// @Tags banks
// @Produce  json
// @Param   bic path string true "Bank identification code" MinLength(9) MaxLength(9)
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} map[string]string "Invalid BIC"
// @Failure 404 {object} map[string]string "Bank not found"
// @Failure 500 {object} map[string]string "Failed to retrieve bank"
// @Router /banks/{bic} [get]
func (h *bankHandler) getBankByBIC(c *gin.Context) {
	bic := c.Param("bic")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("bic", bic))

	bank, err := h.bankService.GetBankByBIC(c.Request.Context(), bic)
	if err != nil {
		respondServiceError(c, logger, err, "bank")
		return
	}

	c.JSON(http.StatusOK, dto.ToBankResponse(*bank))
}
