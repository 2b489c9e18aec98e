package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/ngmaloney/oahu-surf/internal/app"
	"github.com/ngmaloney/oahu-surf/internal/config"
	"github.com/ngmaloney/oahu-surf/internal/logger"
	"github.com/ngmaloney/oahu-surf/internal/observability"
	"github.com/ngmaloney/oahu-surf/internal/server"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (default ~/.config/oahu-surf/config.toml)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	conf, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(conf.LogLevel)

	a, err := app.New(conf, observability.NewMetrics(), log, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	defer a.Close()

	srv, err := server.New(conf.Server.Addr, a.Loader, conf.Server.Refresh, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("oahu-surf server starting",
		slog.String("addr", conf.Server.Addr),
		slog.Duration("refresh", conf.Server.Refresh))
	return srv.Run(ctx)
}
