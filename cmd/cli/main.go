package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tribunal/internal/buildinfo"
	"github.com/dmitrijs2005/tribunal/internal/client/cli"
	"github.com/dmitrijs2005/tribunal/internal/client/config"
	"github.com/dmitrijs2005/tribunal/internal/client/core"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	format := cfg.LogFormat
	if format == logging.FormatText {
		format = logging.FormatConsole
	}
	logger := logging.New(format, cfg.LogLevel, os.Stderr)

	c, err := core.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer c.Close(context.Background())

	cli.NewApp(c).Run(ctx)
}
