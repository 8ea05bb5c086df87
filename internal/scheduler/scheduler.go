// Package scheduler runs the feed loaders on their cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/middleware"
	"github.com/robfig/cron/v3"
)

// Scheduler fires loader runs on standard five-field cron expressions.
// Runs of different loaders may overlap; a run is not skipped when the
// previous run of the same loader is still going.
type Scheduler struct {
	cron   *cron.Cron
	logger *slog.Logger
}

func New(loc *time.Location, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithLocation(loc), cron.WithLogger(cronLogger{logger: logger})),
		logger: logger,
	}
}

// Register schedules loader under spec. Each run gets a logger tagged with
// the task type and derives from ctx.
func (s *Scheduler) Register(ctx context.Context, taskType domain.TaskType, spec string, loader portssvc.LoaderSvc) error {
	logger := s.logger.With(slog.String("task_type", string(taskType)), slog.String("trigger", "schedule"))
	_, err := s.cron.AddFunc(spec, func() {
		start := time.Now()
		ok := loader.Run(middleware.WithLogger(ctx, logger))
		logger.Info("Scheduled run finished", slog.Bool("success", ok), slog.Duration("duration", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("invalid schedule %q for %s: %w", spec, taskType, err)
	}
	logger.Info("Loader scheduled", slog.String("schedule", spec))
	return nil
}

// Start runs the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling new runs. The returned context is done once running jobs have finished.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)
	l.logger.Error("cron: "+msg, args...)
}
