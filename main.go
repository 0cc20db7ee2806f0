//go:build !js

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/seqsense/sierpinski/config"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, reloaded on change")
	fps := flag.Int("fps", 0, "target frame rate, overrides the config")
	subdivide := flag.Int("subdivide", -1, "initial subdivision depth, overrides the config")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			slog.Error("failed to load config", "error", err)
			os.Exit(1)
		}
	}
	o := overrides{fps: *fps, subdivide: *subdivide}
	if err := o.apply(cfg); err != nil {
		slog.Error("invalid options", "error", err)
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, cfg.Log.Level)
	slog.SetDefault(logger)

	var w *config.Watcher
	if *configPath != "" {
		var err error
		if w, err = config.Watch(*configPath); err != nil {
			logger.Warn("config reload disabled", "path", *configPath, "error", err)
		} else {
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// The frame clock paces the loop.
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(false)
	ebiten.SetCursorMode(ebiten.CursorModeCaptured)

	logger.Info("starting", "fps", cfg.FPS, "subdivide", cfg.Fractal.Subdivide)
	if err := ebiten.RunGame(newGame(cfg, o, w, logger)); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game stopped", "error", err)
		if w != nil {
			w.Close()
		}
		os.Exit(1)
	}
}
