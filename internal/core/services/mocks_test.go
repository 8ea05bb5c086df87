package services_test

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

// --- Mock FeedFetcher ---
type MockFeedFetcher struct {
	mock.Mock
}

func (m *MockFeedFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	args := m.Called(ctx, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// --- Mock read repositories ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) ListCurrencyRates(ctx context.Context, filter domain.CurrencyRateFilter) ([]domain.CurrencyRate, int, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Int(1), args.Error(2)
}

type MockBankRepository struct {
	mock.Mock
}

func (m *MockBankRepository) FindBankByBIC(ctx context.Context, bic string) (*domain.Bank, error) {
	args := m.Called(ctx, bic)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bank), args.Error(1)
}

func (m *MockBankRepository) ListBanks(ctx context.Context, page, pageSize int) ([]domain.Bank, int, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Bank), args.Int(1), args.Error(2)
}

type MockTaskLogRepository struct {
	mock.Mock
}

func (m *MockTaskLogRepository) ListTaskLogs(ctx context.Context, taskType *domain.TaskType, limit int) ([]domain.TaskLog, error) {
	args := m.Called(ctx, taskType, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskLog), args.Error(1)
}

// --- In-memory fakes for the write side ---

// recordingTaskLogRepo keeps every Begin and Complete call.
type recordingTaskLogRepo struct {
	mu          sync.Mutex
	nextID      int64
	begun       []domain.TaskLog
	completed   []domain.TaskLog
	completeCtx []error
	beginErr    error
	completeErr error
}

func (r *recordingTaskLogRepo) BeginTaskLog(ctx context.Context, taskType domain.TaskType, startedAt time.Time) (*domain.TaskLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.beginErr != nil {
		return nil, r.beginErr
	}
	r.nextID++
	log := domain.TaskLog{ID: r.nextID, TaskType: taskType, StartedAt: startedAt}
	r.begun = append(r.begun, log)
	return &log, nil
}

func (r *recordingTaskLogRepo) CompleteTaskLog(ctx context.Context, log domain.TaskLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, log)
	r.completeCtx = append(r.completeCtx, ctx.Err())
	return r.completeErr
}

type rateKey struct {
	from, to, date string
}

// memoryRateStore mimics the unique-key upsert of the currency_rates table.
type memoryRateStore struct {
	rows    map[rateKey]domain.CurrencyRate
	upserts int
	failOn  string
}

func newMemoryRateStore() *memoryRateStore {
	return &memoryRateStore{rows: map[rateKey]domain.CurrencyRate{}}
}

func (s *memoryRateStore) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	if rate.FromCurrency == s.failOn {
		return fmt.Errorf("failed to upsert currency rate %s: connection reset", rate.FromCurrency)
	}
	key := rateKey{rate.FromCurrency, rate.ToCurrency, rate.ConversionDate.Format(time.DateOnly)}
	if existing, ok := s.rows[key]; ok {
		rate.CreatedAt = existing.CreatedAt
		rate.CreatedBy = existing.CreatedBy
	}
	s.rows[key] = rate
	s.upserts++
	return nil
}

// memoryBankStore mimics the BIC-keyed upsert of the banks table.
type memoryBankStore struct {
	rows    map[string]domain.Bank
	upserts int
}

func newMemoryBankStore() *memoryBankStore {
	return &memoryBankStore{rows: map[string]domain.Bank{}}
}

func (s *memoryBankStore) UpsertBank(ctx context.Context, bank domain.Bank) error {
	s.rows[bank.BIC] = bank
	s.upserts++
	return nil
}

// --- Clocks ---

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// steppingClock advances by step on every call.
func steppingClock(start time.Time, step time.Duration) func() time.Time {
	var mu sync.Mutex
	current := start.Add(-step)
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(step)
		return current
	}
}

// --- Feed fixtures ---

const rateFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<ValCurs Date="01.12.2024" name="Foreign Currency Market">
	<Valute ID="R01235"><NumCode>840</NumCode><CharCode>USD</CharCode><Nominal>1</Nominal><Name>US Dollar</Name><Value>100,50</Value></Valute>
	<Valute ID="R01820"><NumCode>392</NumCode><CharCode>JPY</CharCode><Nominal>100</Nominal><Name>Yen</Name><Value>70,1234</Value></Valute>
</ValCurs>`

const bankDirectoryXML = `<?xml version="1.0" encoding="WINDOWS-1251"?>
<ED807 xmlns="urn:cbr-ru:ed:v2.0" EDAuthor="4583001999" CreationDateTime="2024-12-01T06:30:00Z">
	<BICDirectoryEntry BIC="044525225">
		<ParticipantInfo NameP="ПАО Сбербанк" Rgn="45" PtType="20" UID="4525225000"/>
		<Accounts Account="30101810400000000225" AccountStatus="ACAC"/>
	</BICDirectoryEntry>
	<BICDirectoryEntry BIC="044525974">
		<ParticipantInfo NameP="АО Тинькофф Банк" Rgn="45" PtType="20" UID="4525974000"/>
		<Accounts Account="30101810145250000974" AccountStatus="ACAC"/>
	</BICDirectoryEntry>
	<BICDirectoryEntry BIC="000000001"/>
</ED807>`

func bankArchive(t *testing.T, member string, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create(member)
	require.NoError(t, err)
	_, err = w.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func encode1251(t *testing.T, s string) []byte {
	t.Helper()
	b, err := charmap.Windows1251.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}
