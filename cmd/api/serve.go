package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	appai "github.com/bryanwahyu/behavior-assessor/internal/application/ai"
	"github.com/bryanwahyu/behavior-assessor/internal/application/fallback"
	"github.com/bryanwahyu/behavior-assessor/internal/config"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/ai/llm"
	"github.com/bryanwahyu/behavior-assessor/internal/infra/httpserver"
	"github.com/bryanwahyu/behavior-assessor/internal/logger"
)

const shutdownTimeout = 5 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE:  runServe,
}

func newService(cfg *config.Config) *appai.Service {
	return appai.NewService(llm.NewProvider(cfg.LLM), fallback.New(nil, nil), appai.Options{
		Variant: cfg.Variant(),
		Timeout: cfg.LLM.Timeout,
	})
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	svc := newService(cfg)
	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: httpserver.NewRouter(svc, httpserver.Options{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			RatePerSecond:  cfg.Server.RateLimit.PerSecond,
			RateBurst:      cfg.Server.RateLimit.Burst,
		}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Log.WithFields(logrus.Fields{
			"addr":     srv.Addr,
			"provider": cfg.LLM.Provider,
			"variant":  svc.Variant(),
		}).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
		return nil
	})
	return g.Wait()
}
