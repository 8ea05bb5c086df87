package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500

	rateExportSheet = "Rates"
)

var rateExportHeader = []interface{}{
	"From", "To", "Date", "Type", "Rate", "Status", "Last updated", "Updated by",
}

type currencyRateService struct {
	BaseService
	repo portsrepo.CurrencyRateReader
}

// NewCurrencyRateService creates the read and export service over stored rates.
func NewCurrencyRateService(repo portsrepo.CurrencyRateReader) portssvc.CurrencyRateSvcFacade {
	return &currencyRateService{repo: repo}
}

func (s *currencyRateService) ListCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter) ([]domain.CurrencyRate, int, error) {
	page, pageSize, err := normalizePage(filter.Page, filter.PageSize)
	if err != nil {
		return nil, 0, err
	}
	filter.Page, filter.PageSize = page, pageSize

	rates, total, err := s.repo.ListCurrencyRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currency rates")
		return nil, 0, fmt.Errorf("failed to list currency rates: %w", err)
	}
	if rates == nil {
		rates = []domain.CurrencyRate{}
	}
	return rates, total, nil
}

// ExportCurrencyRates ignores paging and writes every matching rate.
func (s *currencyRateService) ExportCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter, w io.Writer) error {
	filter.Page, filter.PageSize = 0, 0
	rates, _, err := s.repo.ListCurrencyRates(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load currency rates for export")
		return fmt.Errorf("failed to export currency rates: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil {
			s.LogError(ctx, cerr, "Failed to close workbook")
		}
	}()

	if err := f.SetSheetName(f.GetSheetName(0), rateExportSheet); err != nil {
		return fmt.Errorf("failed to prepare workbook: %w", err)
	}
	if err := f.SetSheetRow(rateExportSheet, "A1", &rateExportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for i, rate := range rates {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			rate.FromCurrency,
			rate.ToCurrency,
			rate.ConversionDate.Format(time.DateOnly),
			string(rate.ConversionType),
			rate.ConversionRate.StringFixed(domain.RateScale),
			string(rate.StatusCode),
			rate.LastUpdatedAt.Format(time.DateTime),
			rate.LastUpdatedBy,
		}
		if err := f.SetSheetRow(rateExportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write export row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	s.LogInfo(ctx, "Currency rates exported", slog.Int("rows", len(rates)))
	return nil
}

// normalizePage applies the default page size and rejects out of range values.
func normalizePage(page, pageSize int) (int, int, error) {
	if page == 0 {
		page = 1
	}
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	if page < 1 {
		return 0, 0, fmt.Errorf("%w: page must be positive", apperrors.ErrValidation)
	}
	if pageSize < 1 || pageSize > maxPageSize {
		return 0, 0, fmt.Errorf("%w: pageSize must be between 1 and %d", apperrors.ErrValidation, maxPageSize)
	}
	return page, pageSize, nil
}
