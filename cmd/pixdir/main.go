package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/pixdir/internal/app"
	"github.com/nguyentantai21042004/pixdir/internal/bridge"
	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
	"github.com/nguyentantai21042004/pixdir/internal/storage"
	"github.com/nguyentantai21042004/pixdir/internal/watcher"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to a YAML or TOML config file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, created, err := config.LoadOrInit(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Prefix: "pixdir",
	})
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "App identifier: %s", cfg.App.Identifier)
	if created {
		log.Info(ctx, "Wrote default configuration to %s", *configPath)
	}

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize dependencies
	watches := watcher.NewManager(log, m)
	defer watches.Close()

	hub := bridge.NewHub(log, m)
	cmds := app.New(cfg, app.Deps{
		Enumerator: imagefs.New(log),
		Watches:    watches,
		Storage:    storage.New(cfg, log),
		Emitter:    hub,
		Logger:     log,
		Metrics:    m,
	})

	// Fail fast when the image directory cannot be prepared
	imageDir, err := cmds.GetAppImageDir(ctx)
	if err != nil {
		log.Error(ctx, "Failed to prepare image directory: %v", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Bridge.Addr,
		Handler:           bridge.NewServer(cfg, hub, cmds, reg, log, m).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	log.Info(ctx, "Bridge listening on ws://%s/ws", cfg.Bridge.Addr)
	log.Info(ctx, "Image directory: %s", imageDir)
	log.Info(ctx, "Press Ctrl+C to stop")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	log.Info(ctx, "Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "pixdir stopped")
}
