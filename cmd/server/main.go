// Command server exposes projections over HTTP and WebSocket for the
// browser chart UI.
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

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"rpcfi-flow-lab/internal/config"
	"rpcfi-flow-lab/internal/observability"
	"rpcfi-flow-lab/internal/server"
)

func main() {
	// Flags with env-var defaults
	addr := flag.String("addr", envOr("RPCFI_ADDR", ":8080"), "HTTP listen address")
	configPath := flag.String("config", os.Getenv("RPCFI_CONFIG"), "Path to chain config (JSON or YAML)")
	debug := flag.Bool("debug", false, "Enable gin debug mode and verbose logging")
	flag.Parse()

	logger := log.New()
	logger.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	if *configPath == "" {
		logger.Fatal("--config (or RPCFI_CONFIG) is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.WithError(err).Fatal("load config")
	}
	logger.WithFields(log.Fields{
		"chain":   cfg.ChainName,
		"pair":    cfg.NativeToken + "/" + cfg.GovernanceToken,
		"horizon": cfg.HorizonMonths,
	}).Info("config loaded")

	metrics := observability.NewMetrics("", nil)
	srv := server.New(cfg, logger, metrics)

	httpServer := &http.Server{
		Addr:              *addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.WithField("addr", *addr).Info("listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("http server")
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.WithError(err).Warn("shutdown")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
