package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cbr_loader/internal/adapters/cbr"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/middleware"
)

// CurrencyRateLoader loads the daily rate feed into the currency rate store.
type CurrencyRateLoader struct {
	BaseService
	fetcher portssvc.FeedFetcher
	url     string
	rates   portsrepo.CurrencyRateWriter
	runs    *RunLogger
	now     func() time.Time
}

func NewCurrencyRateLoader(
	fetcher portssvc.FeedFetcher,
	url string,
	rates portsrepo.CurrencyRateWriter,
	logs portsrepo.TaskLogWriter,
	opts ...LoaderOption,
) *CurrencyRateLoader {
	o := applyLoaderOptions(opts)
	return &CurrencyRateLoader{
		fetcher: fetcher,
		url:     url,
		rates:   rates,
		runs:    NewRunLogger(logs, o.now),
		now:     o.now,
	}
}

var _ portssvc.LoaderSvc = (*CurrencyRateLoader)(nil)

// Run fetches, parses and upserts the daily rates, recording the outcome in the task log.
func (l *CurrencyRateLoader) Run(ctx context.Context) (success bool) {
	ctx = middleware.WithLogger(ctx, l.GetLogger(ctx).With(slog.String("task_type", string(domain.TaskTypeCurrency))))

	run, err := l.runs.Begin(ctx, domain.TaskTypeCurrency)
	if err != nil {
		l.LogError(ctx, err, "Failed to start currency rates load")
		return false
	}
	defer func() { success = run.Finish(ctx, recover()) }()

	count, date, err := l.load(ctx)
	if err != nil {
		run.Fail(fmt.Sprintf("Error loading currency rates: %v", err))
		l.LogError(ctx, err, "Error in currency rates load", slog.Int("stored_before_error", count))
		return false
	}

	run.Succeed(count, fmt.Sprintf("Successfully loaded %d currency rates for %s", count, date.Format(time.DateOnly)))
	l.LogInfo(ctx, "Currency rates loaded", slog.Int("count", count), slog.String("conversion_date", date.Format(time.DateOnly)))
	return true
}

func (l *CurrencyRateLoader) load(ctx context.Context) (int, time.Time, error) {
	body, err := l.fetcher.Fetch(ctx, l.url)
	if err != nil {
		return 0, time.Time{}, err
	}

	feed, err := cbr.ParseRateFeed(body)
	if err != nil {
		return 0, time.Time{}, err
	}

	now := l.now()
	count := 0
	for _, parsed := range feed.Rates {
		rate := domain.CurrencyRate{
			FromCurrency:   parsed.Code,
			ToCurrency:     domain.BaseCurrency,
			ConversionDate: feed.Date,
			ConversionType: domain.ConversionTypeDaily,
			ConversionRate: parsed.Rate,
			StatusCode:     domain.RateStatusActive,
			AuditFields:    domain.NewSystemAuditFields(now),
		}
		if err := l.rates.UpsertCurrencyRate(ctx, rate); err != nil {
			return count, feed.Date, err
		}
		count++
	}
	return count, feed.Date, nil
}
