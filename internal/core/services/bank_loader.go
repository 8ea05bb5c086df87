package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cbr_loader/internal/adapters/cbr"
	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/middleware"
)

// BankLoader loads the BIC directory archive into the bank store.
type BankLoader struct {
	BaseService
	fetcher portssvc.FeedFetcher
	baseURL string
	banks   portsrepo.BankWriter
	runs    *RunLogger
	now     func() time.Time
}

func NewBankLoader(
	fetcher portssvc.FeedFetcher,
	baseURL string,
	banks portsrepo.BankWriter,
	logs portsrepo.TaskLogWriter,
	opts ...LoaderOption,
) *BankLoader {
	o := applyLoaderOptions(opts)
	return &BankLoader{
		fetcher: fetcher,
		baseURL: baseURL,
		banks:   banks,
		runs:    NewRunLogger(logs, o.now),
		now:     o.now,
	}
}

var _ portssvc.LoaderSvc = (*BankLoader)(nil)

// Run fetches today's directory archive (yesterday's when today's is not
// published yet), parses it and upserts every bank, recording the outcome in the task log.
func (l *BankLoader) Run(ctx context.Context) (success bool) {
	ctx = middleware.WithLogger(ctx, l.GetLogger(ctx).With(slog.String("task_type", string(domain.TaskTypeBanks))))

	run, err := l.runs.Begin(ctx, domain.TaskTypeBanks)
	if err != nil {
		l.LogError(ctx, err, "Failed to start banks data load")
		return false
	}
	defer func() { success = run.Finish(ctx, recover()) }()

	count, err := l.load(ctx)
	if err != nil {
		run.Fail(fmt.Sprintf("Error loading banks data: %v", err))
		l.LogError(ctx, err, "Error in banks data load", slog.Int("stored_before_error", count))
		return false
	}

	run.Succeed(count, fmt.Sprintf("Successfully loaded %d bank records", count))
	l.LogInfo(ctx, "Banks data loaded", slog.Int("count", count))
	return true
}

func (l *BankLoader) load(ctx context.Context) (int, error) {
	now := l.now()

	body, err := l.fetchDirectory(ctx, now)
	if err != nil {
		return 0, err
	}

	feed, err := cbr.ParseBankFeed(body)
	if err != nil {
		return 0, err
	}
	l.LogInfo(ctx, "Decoded bank directory",
		slog.String("file", feed.FileName),
		slog.String("encoding", domain.SourceEncodingWindows1251),
		slog.Int("entries", len(feed.Banks)))

	count := 0
	for _, bank := range feed.Banks {
		bank.ImportDate = now
		if err := l.banks.UpsertBank(ctx, bank); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

// fetchDirectory downloads the archive for day. Only a missing archive triggers
// the single fallback to the previous day.
func (l *BankLoader) fetchDirectory(ctx context.Context, day time.Time) ([]byte, error) {
	url, err := cbr.BankDirectoryURL(l.baseURL, day)
	if err != nil {
		return nil, err
	}

	body, err := l.fetcher.Fetch(ctx, url)
	if !errors.Is(err, apperrors.ErrFeedNotFound) {
		return body, err
	}

	previous, err := cbr.BankDirectoryURL(l.baseURL, day.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	l.LogInfo(ctx, "Bank directory not published yet, using previous day", slog.String("missing_url", url), slog.String("url", previous))
	return l.fetcher.Fetch(ctx, previous)
}
