package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/reviewdeck/adminctl/internal/api"
	"github.com/reviewdeck/adminctl/internal/buildinfo"
	"github.com/reviewdeck/adminctl/internal/cli"
	"github.com/reviewdeck/adminctl/internal/config"
	"github.com/reviewdeck/adminctl/internal/logging"
	"github.com/reviewdeck/adminctl/internal/session"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.NewZerologLogger(os.Stderr, cfg.LogLevel)

	sessions := session.NewStore(cfg.SessionFile)
	client := api.New(cfg.AuthServiceURL, cfg.UserServiceURL, cfg.MasterDataServiceURL,
		cfg.RequestTimeout, logger)

	app, err := cli.NewApp(cfg, logger, sessions, client)
	if err != nil {
		logger.Error(ctx, "startup failed", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
