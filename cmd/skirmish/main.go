package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/skirmish/internal/asset"
	"github.com/udisondev/skirmish/internal/config"
	"github.com/udisondev/skirmish/internal/data"
	"github.com/udisondev/skirmish/internal/world"
)

const ConfigPath = "config/skirmish.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("SKIRMISH_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSkirmish(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	assets, err := asset.LoadLibrary(cfg.AssetsPath)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	catalog, err := data.LoadAbilities(cfg.AbilitiesPath, assets)
	if err != nil {
		return fmt.Errorf("loading abilities: %w", err)
	}

	state := world.NewState(cfg.Gravity, assets)
	host := NewHost(state, catalog, cfg)

	slog.Info("skirmish starting",
		"match", state.MatchID,
		"units", len(cfg.Units),
		"casts", len(cfg.Casts),
		"gravity", cfg.Gravity.Y)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := host.Run(gctx, cfg.TickRate, cfg.TimeStep, cfg.Duration); err != nil {
			return fmt.Errorf("host: %w", err)
		}
		return nil
	})

	err = g.Wait()
	host.Summary()
	return err
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
