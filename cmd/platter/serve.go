package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Platter/internal/api"
	"github.com/MikeSquared-Agency/Platter/internal/hermes"
	"github.com/MikeSquared-Agency/Platter/internal/llm"
	"github.com/MikeSquared-Agency/Platter/internal/meals"
	"github.com/MikeSquared-Agency/Platter/internal/planner"
	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API, metrics server and hermes subscriber",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger := newLogger(cfg.Logging, os.Stdout)
			logger.Info("starting platter", "version", version)

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			anchor, err := ranking.ParseAnchor(cfg.Ranking.Anchor)
			if err != nil {
				return err
			}
			scorer := ranking.NewScorer(anchor, cfg.Ranking.FrontierEnabled, logger)

			// Generator (optional)
			var generator *meals.Generator
			client, err := llm.New(ctx, cfg.Generator, cfg.GeneratorTimeout())
			if err != nil {
				logger.Warn("failed to create generator client, plans disabled", "error", err)
			} else if client != nil {
				generator = meals.NewGenerator(client, cfg.Planner, logger)
				logger.Info("generator enabled", "backend", client.Backend(), "model", cfg.Generator.Model)
			}

			// Hermes (optional)
			var hermesClient hermes.Client
			if cfg.Hermes.URL != "" {
				hc, err := hermes.NewNATSClient(ctx, cfg.Hermes.URL, logger)
				if err != nil {
					logger.Warn("failed to connect to hermes, running without events", "error", err)
				} else {
					hermesClient = hc
					defer hc.Close()
					logger.Info("connected to hermes")
				}
			}

			p := planner.New(scorer, generator, hermesClient, cfg, logger)
			if err := p.SetupSubscriptions(); err != nil {
				logger.Warn("failed to subscribe to rank requests", "error", err)
			}

			apiServer := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
				Handler:           api.NewRouter(p, cfg, logger),
				ReadHeaderTimeout: 10 * time.Second,
			}
			metricsServer := &http.Server{
				Addr:              fmt.Sprintf(":%d", cfg.Server.MetricsPort),
				Handler:           api.NewMetricsRouter(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				logger.Info("API server starting", "port", cfg.Server.Port)
				if err := apiServer.ListenAndServe(); err != http.ErrServerClosed {
					logger.Error("API server error", "error", err)
					cancel()
				}
			}()

			go func() {
				logger.Info("metrics server starting", "port", cfg.Server.MetricsPort)
				if err := metricsServer.ListenAndServe(); err != http.ErrServerClosed {
					logger.Error("metrics server error", "error", err)
				}
			}()

			<-ctx.Done()
			logger.Info("shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer shutdownCancel()

			_ = apiServer.Shutdown(shutdownCtx)
			_ = metricsServer.Shutdown(shutdownCtx)

			logger.Info("shutdown complete")
			return nil
		},
	}
}
