package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/erpclient/internal/buildinfo"
	"github.com/dmitrijs2005/erpclient/internal/client/api"
	"github.com/dmitrijs2005/erpclient/internal/client/cli"
	"github.com/dmitrijs2005/erpclient/internal/client/config"
	"github.com/dmitrijs2005/erpclient/internal/client/repositories"
	"github.com/dmitrijs2005/erpclient/internal/client/services"
	"github.com/dmitrijs2005/erpclient/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("error initializing database: %v", err)
	}
	defer db.Close()

	apiClient, err := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	if err != nil {
		log.Fatalf("api client: %v", err)
	}

	sm := services.NewSessionManager(apiClient, db, logger)
	app := cli.NewApp(sm, logger, cfg.ResendInterval, os.Stdin, os.Stdout)

	app.Run(ctx)

}
