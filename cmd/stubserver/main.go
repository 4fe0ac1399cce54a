package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/erpclient/internal/buildinfo"
	"github.com/dmitrijs2005/erpclient/internal/logging"
	"github.com/dmitrijs2005/erpclient/internal/stubapi"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := stubapi.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(logging.Options{Level: os.Getenv("STUB_LOG_LEVEL"), Format: "text"})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := stubapi.NewServer(*cfg, logger)
	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("%v", err)
		return
	}

}
