package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hecs-calculator/config"
	httpLayer "hecs-calculator/http"
	"hecs-calculator/repository"
	"hecs-calculator/service"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(viper.GetViper())
			if err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			return serve(cmd.Context(), cfg)
		},
	}

	cmd.Flags().String("addr", ":3000", "listen address")
	cmd.Flags().String("storage", repository.DriverMemory, "storage driver (memory, redis, postgres, sqlite)")
	cmd.Flags().String("static-dir", "public", "directory served at /")
	_ = viper.BindPFlag("server.addr", cmd.Flags().Lookup("addr"))
	_ = viper.BindPFlag("storage.driver", cmd.Flags().Lookup("storage"))
	_ = viper.BindPFlag("server.static_dir", cmd.Flags().Lookup("static-dir"))

	return cmd
}

func serve(ctx context.Context, cfg config.Config) error {
	if err := service.DefaultRateTable.Validate(); err != nil {
		return fmt.Errorf("rate table: %w", err)
	}

	store, cache, err := repository.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("opening storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("error closing storage", "error", err)
		}
	}()
	slog.Info("storage ready", "driver", cfg.Storage.Driver, "cache", cfg.Storage.CacheDriver)

	repaymentService := service.NewRepaymentService(store, cache)
	taxCalculationService := service.NewTaxCalculationService(store)
	feedbackService := service.NewFeedbackService(store)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(
		httpLayer.Handlers{
			Repayment:      httpLayer.NewRepaymentHandler(repaymentService),
			TaxCalculation: httpLayer.NewTaxCalculationHandler(taxCalculationService),
			Feedback:       httpLayer.NewFeedbackHandler(feedbackService),
		},
		rateLimiter,
		httpLayer.RouterConfig{
			StaticDir: cfg.Server.StaticDir,
			BodyLimit: cfg.Server.BodyLimit,
		},
	)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("server is running", "addr", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("starting server: %w", err)
	case <-ctx.Done():
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("during server shutdown: %w", err)
	}

	slog.Info("server exited")
	return nil
}
