package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	"github.com/SscSPs/cbr_loader/internal/models"
	"github.com/SscSPs/cbr_loader/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxBankRepository implements portsrepo.BankRepositoryFacade using pgxpool.
type PgxBankRepository struct {
	BaseRepository
}

// newPgxBankRepository creates a new repository for bank directory data.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

const bankColumns = `bic, pzn, rgn, ind, tnp, nnp, adr, namep, newnum, regn, ksnp, datein,
	cbrfdate, cbrffile, crc7, import_date, json_data`

// UpsertBank inserts a bank or overwrites every column of the row with the same BIC.
func (r *PgxBankRepository) UpsertBank(ctx context.Context, bank domain.Bank) error {
	if err := r.ensurePool("bank"); err != nil {
		return err
	}
	m, err := mapping.ToModelBank(bank)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO banks (` + bankColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (bic) DO UPDATE SET
			pzn = EXCLUDED.pzn,
			rgn = EXCLUDED.rgn,
			ind = EXCLUDED.ind,
			tnp = EXCLUDED.tnp,
			nnp = EXCLUDED.nnp,
			adr = EXCLUDED.adr,
			namep = EXCLUDED.namep,
			newnum = EXCLUDED.newnum,
			regn = EXCLUDED.regn,
			ksnp = EXCLUDED.ksnp,
			datein = EXCLUDED.datein,
			cbrfdate = EXCLUDED.cbrfdate,
			cbrffile = EXCLUDED.cbrffile,
			crc7 = EXCLUDED.crc7,
			import_date = EXCLUDED.import_date,
			json_data = EXCLUDED.json_data;
	`

	_, err = r.Pool.Exec(ctx, query,
		m.BIC, m.PZN, m.Rgn, m.Ind, m.Tnp, m.Nnp, m.Adr, m.NameP, m.NewNum, m.RegN,
		m.KSNP, m.DateIn, m.CBRFDate, m.CBRFFile, m.CRC7, m.ImportDate, m.JSONData,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert bank %s: %w", m.BIC, err)
	}
	return nil
}

// FindBankByBIC retrieves a bank by its identifier code.
func (r *PgxBankRepository) FindBankByBIC(ctx context.Context, bic string) (*domain.Bank, error) {
	if err := r.ensurePool("bank"); err != nil {
		return nil, err
	}

	row := r.Pool.QueryRow(ctx, `SELECT `+bankColumns+` FROM banks WHERE bic = $1;`, bic)
	m, err := scanBank(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank by BIC %s: %w", bic, err)
	}

	bank, err := mapping.ToDomainBank(m)
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// ListBanks retrieves banks ordered by name.
func (r *PgxBankRepository) ListBanks(ctx context.Context, page, pageSize int) ([]domain.Bank, int, error) {
	if err := r.ensurePool("bank"); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM banks`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count banks: %w", err)
	}
	if total == 0 {
		return []domain.Bank{}, 0, nil
	}

	query := `SELECT ` + bankColumns + ` FROM banks ORDER BY namep, bic`
	args := []interface{}{}
	if limit, offset := pageBounds(page, pageSize); limit > 0 {
		query += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list banks: %w", err)
	}
	defer rows.Close()

	modelBanks, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Bank, error) {
		return scanBank(row)
	})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan banks: %w", err)
	}

	banks := make([]domain.Bank, 0, len(modelBanks))
	for _, m := range modelBanks {
		bank, err := mapping.ToDomainBank(m)
		if err != nil {
			return nil, 0, err
		}
		banks = append(banks, bank)
	}
	return banks, total, nil
}

func scanBank(row pgx.Row) (models.Bank, error) {
	var m models.Bank
	err := row.Scan(
		&m.BIC, &m.PZN, &m.Rgn, &m.Ind, &m.Tnp, &m.Nnp, &m.Adr, &m.NameP, &m.NewNum, &m.RegN,
		&m.KSNP, &m.DateIn, &m.CBRFDate, &m.CBRFFile, &m.CRC7, &m.ImportDate, &m.JSONData,
	)
	return m, err
}
