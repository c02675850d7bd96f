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

	"github.com/tamabee-group/tama-hr-sub002/internal/config"
	"github.com/tamabee-group/tama-hr-sub002/internal/domain/schedule"
	appHTTP "github.com/tamabee-group/tama-hr-sub002/internal/handler/http"
	"github.com/tamabee-group/tama-hr-sub002/internal/pkg/database"
	"github.com/tamabee-group/tama-hr-sub002/internal/repository/postgresql"
	scheduleService "github.com/tamabee-group/tama-hr-sub002/internal/service/schedule"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return err
	}
	logger := appHTTP.NewLogger(cfg.App.Name, cfg.App.Version, cfg.App.Env, level)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolOptions{
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		PingTimeout: cfg.Database.PingTimeout,
	})
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	workScheduleRepo := postgresql.NewWorkScheduleRepository(db)

	scheduleSvc := scheduleService.NewScheduleService(workScheduleRepo, schedule.Limits{
		MaxBreakMinutes: cfg.Schedule.MaxBreakMinutes,
		MaxBreakPeriods: cfg.Schedule.MaxBreakPeriods,
	})

	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(appHTTP.RouterOptions{
		Logger:         logger,
		LogLevel:       level,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}, scheduleHandler)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
