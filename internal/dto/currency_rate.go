package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// ListCurrencyRatesParams are the query parameters of the rate listing and export.
type ListCurrencyRatesParams struct {
	From     string `form:"from" binding:"omitempty,alpha,len=3"`
	To       string `form:"to" binding:"omitempty,alpha,len=3"`
	Date     string `form:"date" binding:"omitempty,datetime=2006-01-02"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1,max=500"`
}

// ToFilter converts bound query parameters into a domain filter.
func (p ListCurrencyRatesParams) ToFilter() domain.CurrencyRateFilter {
	filter := domain.CurrencyRateFilter{Page: p.Page, PageSize: p.PageSize}
	if p.From != "" {
		from := strings.ToUpper(p.From)
		filter.FromCurrency = &from
	}
	if p.To != "" {
		to := strings.ToUpper(p.To)
		filter.ToCurrency = &to
	}
	if p.Date != "" {
		// already validated by the binding tag
		if d, err := time.Parse(time.DateOnly, p.Date); err == nil {
			filter.Date = &d
		}
	}
	return filter
}

// CurrencyRateResponse defines the data returned for a currency rate.
type CurrencyRateResponse struct {
	FromCurrency   string    `json:"fromCurrency"`
	ToCurrency     string    `json:"toCurrency"`
	ConversionDate string    `json:"conversionDate"`
	ConversionType string    `json:"conversionType"`
	ConversionRate string    `json:"conversionRate"`
	StatusCode     string    `json:"statusCode"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy  string    `json:"lastUpdatedBy"`
}

// ListCurrencyRatesResponse is one page of rates.
type ListCurrencyRatesResponse struct {
	Rates []CurrencyRateResponse `json:"rates"`
	Total int                    `json:"total"`
}

func ToCurrencyRateResponse(rate domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		FromCurrency:   rate.FromCurrency,
		ToCurrency:     rate.ToCurrency,
		ConversionDate: rate.ConversionDate.Format(time.DateOnly),
		ConversionType: string(rate.ConversionType),
		ConversionRate: rate.ConversionRate.StringFixed(domain.RateScale),
		StatusCode:     string(rate.StatusCode),
		CreatedAt:      rate.CreatedAt,
		LastUpdatedAt:  rate.LastUpdatedAt,
		LastUpdatedBy:  rate.LastUpdatedBy,
	}
}

func ToListCurrencyRatesResponse(rates []domain.CurrencyRate, total int) ListCurrencyRatesResponse {
	res := make([]CurrencyRateResponse, len(rates))
	for i, rate := range rates {
		res[i] = ToCurrencyRateResponse(rate)
	}
	return ListCurrencyRatesResponse{Rates: res, Total: total}
}
