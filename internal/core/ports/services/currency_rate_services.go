package services

import (
	"context"
	"io"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// CurrencyRateReaderSvc defines read operations for stored currency rates
type CurrencyRateReaderSvc interface {
	// ListCurrencyRates returns one page of rates and the total number of matches.
	ListCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter) ([]domain.CurrencyRate, int, error)
}

// CurrencyRateExporterSvc renders stored currency rates as files
type CurrencyRateExporterSvc interface {
	// ExportCurrencyRates writes every rate matching filter as an XLSX workbook to w.
	ExportCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter, w io.Writer) error
}

// CurrencyRateSvcFacade combines all currency rate service interfaces
type CurrencyRateSvcFacade interface {
	CurrencyRateReaderSvc
	CurrencyRateExporterSvc
}
