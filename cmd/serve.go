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

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	httpadapter "fundboard/internal/adapter/http"
	"fundboard/internal/adapter/memory"
	"fundboard/internal/adapter/usecase"
	"fundboard/internal/config"
	"fundboard/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the dashboard HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

// runServe loads configuration, generates the default session, starts the
// idle session sweeper and serves HTTP until SIGINT or SIGTERM, then shuts
// the server down gracefully.
func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := cfg.Log.New(os.Stdout)

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	svc := usecase.NewDashboardUseCase(memory.NewSessionRepository(), useCaseOptions(cfg))
	if err = svc.Bootstrap(ctx); err != nil {
		return err
	}
	logger.Info("default session ready",
		slog.String("id", svc.DefaultSessionID()),
		slog.Int64("seed", cfg.Dataset.Seed),
		slog.Bool("donors_follow_filter", cfg.Dataset.DonorsFollowFilter),
	)

	sweeper := scheduler.New(cfg.Session.SweepCron, svc, logger)
	if err = sweeper.Start(ctx); err != nil {
		return fmt.Errorf("start session sweeper: %w", err)
	}
	defer sweeper.Stop()

	handler := httpadapter.NewHandler(svc, logger, httpadapter.Options{
		ExportRPS:   cfg.HTTP.ExportRPS,
		ExportBurst: cfg.HTTP.ExportBurst,
	})
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      handler.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
			return err
		}
		logger.Info("server gracefully stopped")
		return nil
	})
	return g.Wait()
}

func useCaseOptions(cfg config.Config) usecase.Options {
	return usecase.Options{
		Seed:               cfg.Dataset.Seed,
		Window:             cfg.Dataset.Window(),
		DonorsFollowFilter: cfg.Dataset.DonorsFollowFilter,
		SessionTTL:         cfg.Session.TTL,
	}
}
