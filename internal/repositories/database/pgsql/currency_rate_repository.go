package pgsql

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	"github.com/SscSPs/cbr_loader/internal/models"
	"github.com/SscSPs/cbr_loader/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxCurrencyRateRepository implements portsrepo.CurrencyRateRepositoryFacade using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

// newPgxCurrencyRateRepository creates a new repository for currency rate data.
func newPgxCurrencyRateRepository(pool *pgxpool.Pool) portsrepo.CurrencyRateRepositoryFacade {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRateRepositoryFacade = (*PgxCurrencyRateRepository)(nil)

const currencyRateColumns = `from_currency, to_currency, conversion_date, conversion_type, conversion_rate,
	status_code, creation_date, created_by, last_update_date, last_update_by, last_update_login`

// UpsertCurrencyRate inserts a rate or overwrites the one with the same (from, to, date) key.
// Creation audit columns keep their first-insert values.
func (r *PgxCurrencyRateRepository) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	if err := r.ensurePool("currency rate"); err != nil {
		return err
	}
	m := mapping.ToModelCurrencyRate(rate)

	query := `
		INSERT INTO currency_rates (` + currencyRateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (from_currency, to_currency, conversion_date) DO UPDATE SET
			conversion_type = EXCLUDED.conversion_type,
			conversion_rate = EXCLUDED.conversion_rate,
			status_code = EXCLUDED.status_code,
			last_update_date = EXCLUDED.last_update_date,
			last_update_by = EXCLUDED.last_update_by,
			last_update_login = EXCLUDED.last_update_login;
	`

	_, err := r.Pool.Exec(ctx, query,
		m.FromCurrency,
		m.ToCurrency,
		m.ConversionDate,
		m.ConversionType,
		m.ConversionRate,
		m.StatusCode,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.LastUpdateLogin,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert currency rate %s->%s for %s: %w",
			m.FromCurrency, m.ToCurrency, m.ConversionDate.Format("2006-01-02"), err)
	}
	return nil
}

// ListCurrencyRates retrieves rates with optional filtering, newest first.
func (r *PgxCurrencyRateRepository) ListCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter) ([]domain.CurrencyRate, int, error) {
	if err := r.ensurePool("currency rate"); err != nil {
		return nil, 0, err
	}

	baseQuery := `FROM currency_rates WHERE 1=1`
	args := []interface{}{}
	argNum := 1

	if filter.FromCurrency != nil {
		baseQuery += fmt.Sprintf(" AND from_currency = $%d", argNum)
		args = append(args, strings.ToUpper(*filter.FromCurrency))
		argNum++
	}
	if filter.ToCurrency != nil {
		baseQuery += fmt.Sprintf(" AND to_currency = $%d", argNum)
		args = append(args, strings.ToUpper(*filter.ToCurrency))
		argNum++
	}
	if filter.Date != nil {
		baseQuery += fmt.Sprintf(" AND conversion_date = $%d", argNum)
		args = append(args, *filter.Date)
		argNum++
	}

	var total int
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) "+baseQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count currency rates: %w", err)
	}
	if total == 0 {
		return []domain.CurrencyRate{}, 0, nil
	}

	baseQuery += " ORDER BY conversion_date DESC, from_currency"
	if limit, offset := pageBounds(filter.Page, filter.PageSize); limit > 0 {
		baseQuery += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argNum, argNum+1)
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, "SELECT "+currencyRateColumns+" "+baseQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list currency rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.CurrencyRate, error) {
		var m models.CurrencyRate
		err := row.Scan(
			&m.FromCurrency,
			&m.ToCurrency,
			&m.ConversionDate,
			&m.ConversionType,
			&m.ConversionRate,
			&m.StatusCode,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&m.LastUpdateLogin,
		)
		return m, err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan currency rates: %w", err)
	}

	return mapping.ToDomainCurrencyRateSlice(modelRates), total, nil
}
