package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/SscSPs/cbr_loader/internal/adapters/cbr"
	"github.com/SscSPs/cbr_loader/internal/core/domain"
	portssvc "github.com/SscSPs/cbr_loader/internal/core/ports/services"
	"github.com/SscSPs/cbr_loader/internal/core/services"
	"github.com/SscSPs/cbr_loader/internal/handlers"
	"github.com/SscSPs/cbr_loader/internal/middleware"
	"github.com/SscSPs/cbr_loader/internal/platform/config"
	"github.com/SscSPs/cbr_loader/internal/repositories/database/pgsql"
	"github.com/SscSPs/cbr_loader/internal/scheduler"
	"github.com/SscSPs/cbr_loader/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title CBR Loader API
// @version 1.0
// @description Read access to the rates and bank directory loaded from the Central Bank of Russia feeds.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(logger, cfg); err != nil {
		logger.Error("Exiting with failure", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// run owns the signal context and the pool; both are released before it returns.
func run(logger *slog.Logger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		return fmt.Errorf("failed to initialize database pool: %w", err)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	loc := cfg.Location()
	feedClient := cbr.NewClient(&http.Client{Timeout: cfg.FeedHTTPTimeout})
	container := services.NewServiceContainer(
		cfg,
		pgsql.NewRepositoryProvider(dbPool),
		feedClient,
		services.WithClock(func() time.Time { return time.Now().In(loc) }),
	)

	if cfg.Run != "" {
		if !runOnce(ctx, logger, cfg.Run, container) {
			return fmt.Errorf("%s run failed, see task log", cfg.Run)
		}
		return nil
	}

	if err := serve(ctx, logger, cfg, container); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// runOnce runs the selected loaders one after the other and reports whether all succeeded.
func runOnce(ctx context.Context, logger *slog.Logger, mode string, container *portssvc.ServiceContainer) bool {
	var taskTypes []domain.TaskType
	switch mode {
	case config.RunCurrency:
		taskTypes = []domain.TaskType{domain.TaskTypeCurrency}
	case config.RunBanks:
		taskTypes = []domain.TaskType{domain.TaskTypeBanks}
	case config.RunAll:
		taskTypes = []domain.TaskType{domain.TaskTypeCurrency, domain.TaskTypeBanks}
	}

	allOK := true
	for _, taskType := range taskTypes {
		runLogger := logger.With(slog.String("task_type", string(taskType)), slog.String("trigger", "command"))
		ok := container.Loader(taskType).Run(middleware.WithLogger(ctx, runLogger))
		runLogger.Info("Run finished", slog.Bool("success", ok))
		allOK = allOK && ok
	}
	return allOK
}

// serve starts the schedule and the HTTP API and blocks until ctx is cancelled.
func serve(ctx context.Context, logger *slog.Logger, cfg *config.Config, container *portssvc.ServiceContainer) error {
	sched := scheduler.New(cfg.Location(), logger)
	if err := sched.Register(ctx, domain.TaskTypeCurrency, cfg.CurrencySchedule, container.CurrencyLoader); err != nil {
		return err
	}
	if err := sched.Register(ctx, domain.TaskTypeBanks, cfg.BanksSchedule, container.BankLoader); err != nil {
		return err
	}
	sched.Start()
	defer func() {
		<-sched.Stop().Done()
		logger.Info("Scheduler stopped")
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if err := r.SetTrustedProxies(nil); err != nil {
		return err
	}
	if err := handlers.RegisterRoutes(r, cfg, container); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
