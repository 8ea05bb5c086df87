package pgsql

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{name: "unpaged", page: 3, pageSize: 0, wantLimit: 0, wantOffset: 0},
		{name: "first page", page: 1, pageSize: 20, wantLimit: 20, wantOffset: 0},
		{name: "third page", page: 3, pageSize: 20, wantLimit: 20, wantOffset: 40},
		{name: "page below one", page: 0, pageSize: 10, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			limit, offset := pageBounds(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}

func TestRepositoriesWithoutPoolFail(t *testing.T) {
	ctx := context.Background()
	provider := NewRepositoryProvider(nil)

	assert.Error(t, provider.CurrencyRateRepo.UpsertCurrencyRate(ctx, domain.CurrencyRate{}))
	assert.Error(t, provider.BankRepo.UpsertBank(ctx, domain.Bank{}))
	_, err := provider.TaskLogRepo.BeginTaskLog(ctx, domain.TaskTypeCurrency, time.Now())
	assert.Error(t, err)
}
