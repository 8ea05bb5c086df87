package repositories

import (
	"context"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// BankReader defines read operations for bank directory data
type BankReader interface {
	// FindBankByBIC returns apperrors.ErrNotFound when the BIC is unknown.
	FindBankByBIC(ctx context.Context, bic string) (*domain.Bank, error)
	// ListBanks returns banks ordered by name and the total count.
	ListBanks(ctx context.Context, page, pageSize int) ([]domain.Bank, int, error)
}

// BankWriter defines write operations for bank directory data
type BankWriter interface {
	// UpsertBank creates the bank or overwrites every field of the one stored under its BIC.
	UpsertBank(ctx context.Context, bank domain.Bank) error
}

// BankRepositoryFacade combines all bank repository interfaces
type BankRepositoryFacade interface {
	BankReader
	BankWriter
}
