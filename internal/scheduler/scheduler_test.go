package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoader struct {
	mock.Mock
}

func (m *MockLoader) Run(ctx context.Context) bool {
	return m.Called(ctx).Bool(0)
}

func TestRegister_UsesLocation(t *testing.T) {
	moscow, err := time.LoadLocation("Europe/Moscow")
	require.NoError(t, err)
	s := New(moscow, nil)

	require.NoError(t, s.Register(context.Background(), domain.TaskTypeCurrency, "0 12 * * *", new(MockLoader)))

	entries := s.cron.Entries()
	require.Len(t, entries, 1)
	from := time.Date(2024, 12, 1, 10, 0, 0, 0, moscow)
	next := entries[0].Schedule.Next(from)
	assert.True(t, next.Equal(time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)), "next run %s", next)
	assert.Equal(t, 12, next.In(moscow).Hour())
}

func TestRegister_InvalidSpec(t *testing.T) {
	s := New(time.UTC, nil)

	err := s.Register(context.Background(), domain.TaskTypeBanks, "every morning", new(MockLoader))

	assert.Error(t, err)
	assert.Empty(t, s.cron.Entries())
}

func TestScheduledJobRunsLoader(t *testing.T) {
	s := New(time.UTC, nil)
	loader := new(MockLoader)
	loader.On("Run", mock.Anything).Return(true).Once()

	require.NoError(t, s.Register(context.Background(), domain.TaskTypeBanks, "0 6 * * *", loader))
	s.cron.Entries()[0].Job.Run()

	loader.AssertExpectations(t)
}

func TestStartStop(t *testing.T) {
	s := New(time.UTC, nil)
	s.Start()
	ctx := s.Stop()

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
