package mapping

import (
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/SscSPs/cbr_loader/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate.
// The rate is rounded to the column scale.
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		FromCurrency:   d.FromCurrency,
		ToCurrency:     d.ToCurrency,
		ConversionDate: d.ConversionDate,
		ConversionType: string(d.ConversionType),
		ConversionRate: d.ConversionRate.Round(domain.RateScale),
		StatusCode:     string(d.StatusCode),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		FromCurrency:   m.FromCurrency,
		ToCurrency:     m.ToCurrency,
		ConversionDate: m.ConversionDate,
		ConversionType: domain.ConversionType(m.ConversionType),
		ConversionRate: m.ConversionRate,
		StatusCode:     domain.RateStatus(m.StatusCode),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencyRateSlice converts a slice of model rates to domain rates.
func ToDomainCurrencyRateSlice(ms []models.CurrencyRate) []domain.CurrencyRate {
	rates := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		rates[i] = ToDomainCurrencyRate(m)
	}
	return rates
}
