// Command kavachd serves the KAVACH log decode-and-query HTTP API (spec
// §6): date-range report/graph endpoints over the decode core, backed by
// injected station/relay/track-profile master-data tables and an
// optional PostgreSQL fault-label store.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kavachlog/decodecore/decode"
	"github.com/kavachlog/decodecore/internal/faultstore"
	"github.com/kavachlog/decodecore/internal/httpapi"
	"github.com/kavachlog/decodecore/trackprofile"
)

type serverConfig struct {
	Addr     string
	DSN      string
	LogLevel string
}

func main() {
	var cfg serverConfig

	flag.StringVar(&cfg.Addr, "addr", defaultAddr(), "HTTP listener address")
	flag.StringVar(&cfg.DSN, "dsn", "", "PostgreSQL DSN for the fault-label store (optional)")
	flag.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug | info | warn | error")
	flag.Parse()

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)
	logger.Info("kavachd starting", slog.String("addr", cfg.Addr))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var labels httpapi.FaultLabelStore
	if cfg.DSN != "" {
		store, err := faultstore.Open(ctx, "default", cfg.DSN)
		if err != nil {
			logger.Error("failed to open fault label store", slog.Any("error", err))
			os.Exit(1)
		}
		defer faultstore.Close("default")
		labels = store
		logger.Info("fault label store connected")
	} else {
		logger.Warn("no DSN configured; fault label store not opened (dev mode)")
	}

	srv := &httpapi.Server{
		Relays:       decode.NewStaticRelayTable(nil, nil),
		Stations:     decode.NewStaticStationTable(nil),
		TrackProfile: trackprofile.NewStaticTable(nil),
		Labels:       labels,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      httpapi.NewRouter(srv),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", slog.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil {
			logger.Error("HTTP server error", slog.Any("error", err))
		}
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown error", slog.Any("error", err))
	}
	logger.Info("kavachd exited cleanly")
}

// defaultAddr honors the PORT environment variable (spec §6), defaulting
// to 8080.
func defaultAddr() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
