package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// TaskLogReader defines read operations for the run log
type TaskLogReader interface {
	// ListTaskLogs returns the most recent logs first. A nil taskType lists every kind.
	ListTaskLogs(ctx context.Context, taskType *domain.TaskType, limit int) ([]domain.TaskLog, error)
}

// TaskLogWriter defines write operations for the run log
type TaskLogWriter interface {
	// BeginTaskLog inserts a pending log entry started at startedAt.
	BeginTaskLog(ctx context.Context, taskType domain.TaskType, startedAt time.Time) (*domain.TaskLog, error)
	// CompleteTaskLog stores the outcome fields and finish time of log.
	CompleteTaskLog(ctx context.Context, log domain.TaskLog) error
}

// TaskLogRepositoryFacade combines all task log repository interfaces
type TaskLogRepositoryFacade interface {
	TaskLogReader
	TaskLogWriter
}
