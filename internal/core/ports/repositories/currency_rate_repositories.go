package repositories

import (
	"context"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// CurrencyRateReader defines read operations for currency rate data
type CurrencyRateReader interface {
	// ListCurrencyRates returns rates matching the filter, newest date first, and the total match count.
	ListCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter) ([]domain.CurrencyRate, int, error)
}

// CurrencyRateWriter defines write operations for currency rate data
type CurrencyRateWriter interface {
	// UpsertCurrencyRate creates the rate or overwrites the one stored under the same
	// (from, to, date) key.
	UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error
}

// CurrencyRateRepositoryFacade combines all currency rate repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
