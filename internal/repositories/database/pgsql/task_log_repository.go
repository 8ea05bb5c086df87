package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/cbr_loader/internal/apperrors"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	"github.com/SscSPs/cbr_loader/internal/models"
	"github.com/SscSPs/cbr_loader/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTaskLogRepository struct {
	BaseRepository
}

func newPgxTaskLogRepository(pool *pgxpool.Pool) portsrepo.TaskLogRepositoryFacade {
	return &PgxTaskLogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TaskLogRepositoryFacade = (*PgxTaskLogRepository)(nil)

const defaultTaskLogLimit = 50

// BeginTaskLog inserts a pending, unsuccessful log entry and returns it with its ID.
func (r *PgxTaskLogRepository) BeginTaskLog(ctx context.Context, taskType domain.TaskType, startedAt time.Time) (*domain.TaskLog, error) {
	if err := r.ensurePool("task log"); err != nil {
		return nil, err
	}

	var id int64
	err := r.Pool.QueryRow(ctx,
		`INSERT INTO task_logs (task_type, started_at, success, items_processed)
		 VALUES ($1, $2, FALSE, 0)
		 RETURNING id`,
		string(taskType), startedAt,
	).Scan(&id)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s task log: %w", taskType, err)
	}

	return &domain.TaskLog{
		ID:        id,
		TaskType:  taskType,
		StartedAt: startedAt,
	}, nil
}

// CompleteTaskLog stores the finish time and outcome of a log entry.
func (r *PgxTaskLogRepository) CompleteTaskLog(ctx context.Context, log domain.TaskLog) error {
	if err := r.ensurePool("task log"); err != nil {
		return err
	}

	var finishedAt any
	if log.FinishedAt != nil {
		finishedAt = *log.FinishedAt
	}

	tag, err := r.Pool.Exec(ctx,
		`UPDATE task_logs
		 SET finished_at = $2, success = $3, details = $4, items_processed = $5
		 WHERE id = $1`,
		log.ID, finishedAt, log.Success, log.Details, log.ItemsProcessed,
	)
	if err != nil {
		return fmt.Errorf("failed to complete task log %d: %w", log.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("task log %d: %w", log.ID, apperrors.ErrNotFound)
	}
	return nil
}

// ListTaskLogs retrieves the most recent task logs.
func (r *PgxTaskLogRepository) ListTaskLogs(ctx context.Context, taskType *domain.TaskType, limit int) ([]domain.TaskLog, error) {
	if err := r.ensurePool("task log"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultTaskLogLimit
	}

	query := `SELECT id, task_type, started_at, finished_at, success, details, items_processed FROM task_logs`
	args := []interface{}{}
	if taskType != nil {
		query += ` WHERE task_type = $1`
		args = append(args, string(*taskType))
	}
	query += fmt.Sprintf(` ORDER BY started_at DESC, id DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list task logs: %w", err)
	}
	defer rows.Close()

	modelLogs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TaskLog, error) {
		var m models.TaskLog
		err := row.Scan(&m.ID, &m.TaskType, &m.StartedAt, &m.FinishedAt, &m.Success, &m.Details, &m.ItemsProcessed)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan task logs: %w", err)
	}

	logs := make([]domain.TaskLog, len(modelLogs))
	for i, m := range modelLogs {
		logs[i] = mapping.ToDomainTaskLog(m)
	}
	return logs, nil
}
