package pgsql

import (
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRateRepo: newPgxCurrencyRateRepository(dbPool),
		BankRepo:         newPgxBankRepository(dbPool),
		TaskLogRepo:      newPgxTaskLogRepository(dbPool),
	}
}
