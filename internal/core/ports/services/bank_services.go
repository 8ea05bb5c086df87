package services

import (
	"context"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// BankReaderSvc defines read operations for the stored bank directory
type BankReaderSvc interface {
	// GetBankByBIC returns apperrors.ErrNotFound for an unknown BIC.
	GetBankByBIC(ctx context.Context, bic string) (*domain.Bank, error)
	ListBanks(ctx context.Context, page, pageSize int) ([]domain.Bank, int, error)
}

// BankSvcFacade combines all bank service interfaces
type BankSvcFacade interface {
	BankReaderSvc
}
