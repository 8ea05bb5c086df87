package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is a row of the currency_rates table.
type CurrencyRate struct {
	FromCurrency   string          `db:"from_currency"`
	ToCurrency     string          `db:"to_currency"`
	ConversionDate time.Time       `db:"conversion_date"`
	ConversionType string          `db:"conversion_type"`
	ConversionRate decimal.Decimal `db:"conversion_rate"` // NUMERIC(12,6)
	StatusCode     string          `db:"status_code"`
	AuditFields
}
