package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mateoroldos/personal-blog/backend/internal/router"
	"github.com/mateoroldos/personal-blog/backend/internal/setup"
	"github.com/mateoroldos/personal-blog/shared/config"
	"github.com/mateoroldos/personal-blog/shared/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var configFolder, contentDir string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.StringVar(&contentDir, "content", "content", "path to the content folder (blog/*.md, projects.yaml)")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.SetupDependencies(ctx, cfg, contentDir)
	if err != nil {
		logger.Log.Error("failed to initialize", "error", err)
		os.Exit(1)
	}
	defer deps.Close()

	if !cfg.ResendAPIKey().IsSet() {
		logger.Log.Warn("resend api key is not set, contact form will fail")
	}
	if !cfg.MailerLiteAPIKey().IsSet() {
		logger.Log.Warn("mailerlite api key is not set, subscriptions will fail")
	}

	httpPort := os.Getenv("PORT")
	if httpPort == "" {
		httpPort = "8080"
	}

	server := &http.Server{
		Addr:              ":" + httpPort,
		Handler:           router.New(deps),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Log.Info("server started", "addr", server.Addr, "site", cfg.Public.Site.URL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", "error", err)
	}
}
