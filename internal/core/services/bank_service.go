package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
)

const bicLength = 9

type bankService struct {
	BaseService
	repo portsrepo.BankReader
}

func NewBankService(repo portsrepo.BankReader) portssvc.BankSvcFacade {
	return &bankService{repo: repo}
}

func (s *bankService) GetBankByBIC(ctx context.Context, bic string) (*domain.Bank, error) {
	bic = strings.TrimSpace(bic)
	if len(bic) != bicLength {
		return nil, fmt.Errorf("%w: BIC must have %d characters", apperrors.ErrValidation, bicLength)
	}

	bank, err := s.repo.FindBankByBIC(ctx, bic)
	if err != nil {
		if !isNotFound(err) {
			s.LogError(ctx, err, "Failed to find bank", slog.String("bic", bic))
		}
		return nil, err
	}
	return bank, nil
}

func (s *bankService) ListBanks(ctx context.Context, page, pageSize int) ([]domain.Bank, int, error) {
	page, pageSize, err := normalizePage(page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	banks, total, err := s.repo.ListBanks(ctx, page, pageSize)
	if err != nil {
		s.LogError(ctx, err, "Failed to list banks")
		return nil, 0, fmt.Errorf("failed to list banks: %w", err)
	}
	if banks == nil {
		banks = []domain.Bank{}
	}
	return banks, total, nil
}
