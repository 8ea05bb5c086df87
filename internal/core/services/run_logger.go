package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portsrepo "github.com/SscSPs/cbr_loader/internal/core/ports/repositories"
	"github.com/SscSPs/cbr_loader/internal/middleware"
)

// RunLogger records the start and the outcome of loader runs in the task log.
type RunLogger struct {
	repo portsrepo.TaskLogWriter
	now  func() time.Time
}

// NewRunLogger creates a RunLogger stamping both timestamps with now.
func NewRunLogger(repo portsrepo.TaskLogWriter, now func() time.Time) *RunLogger {
	if now == nil {
		now = time.Now
	}
	return &RunLogger{repo: repo, now: now}
}

// Run is an open task log entry. It starts as a failure with nothing processed.
type Run struct {
	logger   *RunLogger
	log      domain.TaskLog
	finished bool
}

// Begin persists a pending entry for taskType. The caller must defer Finish
// as soon as Begin succeeds.
func (l *RunLogger) Begin(ctx context.Context, taskType domain.TaskType) (*Run, error) {
	log, err := l.repo.BeginTaskLog(ctx, taskType, l.now())
	if err != nil {
		return nil, fmt.Errorf("failed to begin %s run: %w", taskType, err)
	}
	return &Run{logger: l, log: *log}, nil
}

// Succeed marks the run successful.
func (r *Run) Succeed(items int, details string) {
	r.log.Success = true
	r.log.ItemsProcessed = items
	r.log.Details = details
}

// Fail marks the run failed. Items processed stays at zero.
func (r *Run) Fail(details string) {
	r.log.Success = false
	r.log.ItemsProcessed = 0
	r.log.Details = details
}

// Finish stamps the finish time and stores the outcome. recovered is the value
// returned by recover() in the caller's deferred function; a non-nil value turns
// the run into a failure. Only the first call has an effect.
// It returns the recorded success flag.
func (r *Run) Finish(ctx context.Context, recovered any) bool {
	if r.finished {
		return r.log.Success
	}
	r.finished = true
	logger := middleware.GetLoggerFromCtx(ctx)

	if recovered != nil {
		r.Fail(fmt.Sprintf("%s aborted: %v", r.log.TaskType.Label(), recovered))
		logger.Error("Loader run panicked", slog.String("task_type", string(r.log.TaskType)), slog.Any("panic", recovered))
	}

	finishedAt := r.logger.now()
	if finishedAt.Before(r.log.StartedAt) {
		finishedAt = r.log.StartedAt
	}
	r.log.FinishedAt = &finishedAt

	// A cancelled run still gets its outcome written.
	if err := r.logger.repo.CompleteTaskLog(context.WithoutCancel(ctx), r.log); err != nil {
		logger.Error("Failed to complete task log",
			slog.String("error", err.Error()),
			slog.Int64("task_log_id", r.log.ID),
			slog.String("task_type", string(r.log.TaskType)))
	}
	return r.log.Success
}

// Log returns a copy of the entry as it stands.
func (r *Run) Log() domain.TaskLog {
	return r.log
}
