package services

import (
	"context"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
)

// TaskLogReaderSvc defines read operations for the run log
type TaskLogReaderSvc interface {
	// ListTaskLogs returns the latest runs, optionally restricted to one task type.
	ListTaskLogs(ctx context.Context, taskType *domain.TaskType, limit int) ([]domain.TaskLog, error)
}
