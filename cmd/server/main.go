// Package main provides the HTTP server entry point for the File Hash Checker site.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/subham-04/file-hash-checker-site/internal/app"
	"github.com/subham-04/file-hash-checker-site/internal/config"
	"github.com/subham-04/file-hash-checker-site/internal/constants"
	"github.com/subham-04/file-hash-checker-site/internal/httputil"
)

var (
	appInst *app.App
	logger  *slog.Logger
)

func main() {
	// Load .env file if present
	godotenv.Load()

	logger = config.NewLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Error("config init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	appInst, err = app.New(cfg)
	if err != nil {
		logger.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handler := httputil.NewSiteHandler(appInst, logger)

	port := cfg.Port
	if port == "" {
		port = constants.DefaultHTTPPort
	}

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  constants.DefaultReadTimeout,
		WriteTimeout: constants.DefaultWriteTimeout,
		IdleTimeout:  constants.DefaultIdleTimeout,
	}

	done := make(chan bool, 1)
	quit := make(chan os.Signal, 1)

	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		logger.Info("server is shutting down")

		ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultShutdownTimeout)
		defer cancel()

		srv.SetKeepAlivesEnabled(false)
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("server shutdown failed", slog.String("error", err.Error()))
		}
		close(done)
	}()

	logger.Info("site ready",
		slog.String("base_path", cfg.BasePath),
		slog.String("site_url", cfg.SiteURL),
		slog.String("download_file", cfg.DownloadFile),
		slog.Bool("compression", cfg.CompressionEnabled))

	if cfg.TLSEnabled && cfg.TLSCertPath != "" && cfg.TLSKeyPath != "" {
		logger.Info("server starting with TLS", slog.String("port", port))
		if err := srv.ListenAndServeTLS(cfg.TLSCertPath, cfg.TLSKeyPath); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	} else {
		logger.Info("server starting", slog.String("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	<-done
	logger.Info("server stopped")
}
