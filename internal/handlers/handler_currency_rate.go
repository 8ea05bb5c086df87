package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/dto"
	"github.com/SscSPs/cbr_loader/internal/middleware"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// currencyRateHandler handles HTTP requests related to stored currency rates.
type currencyRateHandler struct {
	rateService portssvc.CurrencyRateSvcFacade
}

func newCurrencyRateHandler(rs portssvc.CurrencyRateSvcFacade) *currencyRateHandler {
	return &currencyRateHandler{rateService: rs}
}

// registerCurrencyRateRoutes registers routes related to currency rates.
func registerCurrencyRateRoutes(rg *gin.RouterGroup, rateService portssvc.CurrencyRateSvcFacade) {
	h := newCurrencyRateHandler(rateService)

	rates := rg.Group("/currency-rates")
	{
		rates.GET("", h.listCurrencyRates)
		rates.GET("/export", h.exportCurrencyRates)
	}
}

// listCurrencyRates godoc
// @Summary List currency rates
// @Description Lists stored rates, newest conversion date first
// @Tags currency-rates
// @Produce  json
// @Param   from query string false "Source currency code"
// @Param   to query string false "Target currency code"
// @Param   date query string false "Conversion date (YYYY-MM-DD)"
// @Param   page query int false "Page number"
// @Param   pageSize query int false "Page size"
// @Success 200 {object} dto.ListCurrencyRatesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to retrieve currency rates"
// @Router /currency-rates [get]
func (h *currencyRateHandler) listCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCurrencyRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListCurrencyRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	rates, total, err := h.rateService.ListCurrencyRates(c.Request.Context(), params.ToFilter())
	if err != nil {
		respondServiceError(c, logger, err, "currency rates")
		return
	}

	logger.Info("Currency rates listed successfully", slog.Int("count", len(rates)), slog.Int("total", total))
	c.JSON(http.StatusOK, dto.ToListCurrencyRatesResponse(rates, total))
}

// exportCurrencyRates godoc
// @Summary Export currency rates
// @Description Downloads every rate matching the filter as an XLSX workbook. Paging parameters are ignored.
// @Tags currency-rates
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   from query string false "Source currency code"
// @Param   to query string false "Target currency code"
// @Param   date query string false "Conversion date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to export currency rates"
// @Router /currency-rates/export [get]
func (h *currencyRateHandler) exportCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCurrencyRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ExportCurrencyRates", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	// Buffered so a failed export can still answer with a JSON error.
	var buf bytes.Buffer
	if err := h.rateService.ExportCurrencyRates(c.Request.Context(), params.ToFilter(), &buf); err != nil {
		respondServiceError(c, logger, err, "currency rates export")
		return
	}

	filename := fmt.Sprintf("currency_rates_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
