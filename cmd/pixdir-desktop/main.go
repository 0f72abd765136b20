package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"os"

	pixapp "github.com/nguyentantai21042004/pixdir/internal/app"
	"github.com/nguyentantai21042004/pixdir/internal/config"
	"github.com/nguyentantai21042004/pixdir/internal/imagefs"
	"github.com/nguyentantai21042004/pixdir/internal/logger"
	"github.com/nguyentantai21042004/pixdir/internal/metrics"
	"github.com/nguyentantai21042004/pixdir/internal/storage"
	"github.com/nguyentantai21042004/pixdir/internal/watcher"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	configPath := flag.String("config", "config.yaml", "path to a YAML or TOML config file")
	flag.Parse()

	ctx := context.Background()

	cfg, created, err := config.LoadOrInit(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewWithOptions(logger.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Prefix: "pixdir-desktop",
	})
	if created {
		log.Info(ctx, "Wrote default configuration to %s", *configPath)
	}

	frontendFS, err := fs.Sub(assets, "frontend/dist")
	if err != nil {
		log.Error(ctx, "Embedded frontend missing: %v", err)
		os.Exit(1)
	}

	// No /metrics endpoint on the desktop host.
	m := metrics.New(prometheus.NewRegistry())

	watches := watcher.NewManager(log, m)
	app := NewApp(cfg.UI.Surface, log)
	app.bind(pixapp.New(cfg, pixapp.Deps{
		Enumerator: imagefs.New(log),
		Watches:    watches,
		Storage:    storage.New(cfg, log),
		Emitter:    windowEmitter{app: app},
		Logger:     log,
		Metrics:    m,
	}), watches)

	err = wails.Run(&options.App{
		Title:  "pixdir",
		Width:  1200,
		Height: 800,
		AssetServer: &assetserver.Options{
			Assets: frontendFS,
		},
		OnStartup:  app.startup,
		OnShutdown: app.shutdown,
		Bind: []interface{}{
			app,
		},
	})
	if err != nil {
		log.Error(ctx, "Wails run failed: %v", err)
		watches.Close()
		os.Exit(1)
	}
}
