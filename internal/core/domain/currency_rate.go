package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ConversionType tells how often a rate is published.
type ConversionType string

const (
	ConversionTypeDaily   ConversionType = "DAILY"
	ConversionTypeWeekly  ConversionType = "WEEKLY"
	ConversionTypeMonthly ConversionType = "MONTHLY"
)

// RateStatus is the soft-delete flag of a CurrencyRate.
type RateStatus string

const (
	RateStatusActive     RateStatus = "ACTIVE"
	RateStatusHistorical RateStatus = "HISTORICAL"
	RateStatusDeleted    RateStatus = "DELETED"
)

// BaseCurrency is the currency every CBR rate converts into.
const BaseCurrency = "RUB"

// RateScale is the number of fractional digits a conversion rate is stored with.
const RateScale = 6

// CurrencyRate is one exchange-rate observation.
// (FromCurrency, ToCurrency, ConversionDate) is unique.
type CurrencyRate struct {
	FromCurrency   string          `json:"fromCurrency"`
	ToCurrency     string          `json:"toCurrency"`
	ConversionDate time.Time       `json:"conversionDate"`
	ConversionType ConversionType  `json:"conversionType"`
	ConversionRate decimal.Decimal `json:"conversionRate"`
	StatusCode     RateStatus      `json:"statusCode"`
	AuditFields
}

func (r CurrencyRate) String() string {
	return fmt.Sprintf("%s->%s (%s): %s", r.FromCurrency, r.ToCurrency,
		r.ConversionDate.Format(time.DateOnly), r.ConversionRate.StringFixed(RateScale))
}

// ParsedRate is a single entry of the daily rate feed, already divided by its nominal.
type ParsedRate struct {
	Code string
	Rate decimal.Decimal
}

// RateFeed is the parsed daily rate feed.
type RateFeed struct {
	Date  time.Time
	Rates []ParsedRate
}

// CurrencyRateFilter narrows a currency rate listing. Nil fields are ignored.
type CurrencyRateFilter struct {
	FromCurrency *string
	ToCurrency   *string
	Date         *time.Time
	Page         int
	PageSize     int
}
