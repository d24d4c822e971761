package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/tribunal/internal/buildinfo"
	"github.com/dmitrijs2005/tribunal/internal/client/config"
	"github.com/dmitrijs2005/tribunal/internal/client/core"
	"github.com/dmitrijs2005/tribunal/internal/client/web"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(cfg.LogFormat, cfg.LogLevel, os.Stderr)

	c, err := core.New(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer c.Close(context.Background())

	srv, err := web.NewServer(web.Deps{
		Auth:     c.Auth,
		Shell:    c.Shell,
		Cases:    c.CaseSearch,
		Forms:    c.FormsCatalog,
		Login:    c.Login,
		Hearings: c.Hearings,
		Log:      logger,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := srv.Run(ctx, cfg.ListenAddr); err != nil {
		logger.Error(ctx, "portal stopped", "error", err)
	}
}
