package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
)

const maxTaskLogLimit = 200

type taskLogService struct {
	BaseService
	repo portsrepo.TaskLogReader
}

func NewTaskLogService(repo portsrepo.TaskLogReader) portssvc.TaskLogReaderSvc {
	return &taskLogService{repo: repo}
}

func (s *taskLogService) ListTaskLogs(ctx context.Context, taskType *domain.TaskType, limit int) ([]domain.TaskLog, error) {
	if taskType != nil && !taskType.Valid() {
		return nil, fmt.Errorf("%w: unknown task type %q", apperrors.ErrValidation, *taskType)
	}
	if limit < 0 || limit > maxTaskLogLimit {
		return nil, fmt.Errorf("%w: limit must be between 0 and %d", apperrors.ErrValidation, maxTaskLogLimit)
	}

	logs, err := s.repo.ListTaskLogs(ctx, taskType, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list task logs")
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	if logs == nil {
		logs = []domain.TaskLog{}
	}
	return logs, nil
}
