// Package core wires configuration, local storage, the API client, the
// session and the page controllers shared by the web portal and the CLI.
package core

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/config"
	"github.com/dmitrijs2005/tribunal/internal/client/portal"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/client/session"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

type Core struct {
	Config *config.Config
	Log    logging.Logger

	db      *sql.DB
	api     *client.RESTClient
	Session *session.Holder

	Auth  services.AuthService
	Cases services.CaseService
	Forms services.FormService

	Shell        *portal.Shell
	CaseSearch   *portal.CaseSearch
	FormsCatalog *portal.FormsCatalog
	Login        *portal.LoginForm
	Hearings     *portal.Hearings
}

// New opens the local database and builds every component. The persisted
// session is restored before New returns; a failed restore is logged and
// leaves the session logged out.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*Core, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	repos := client.NewRepositories(db)

	api := client.NewRESTClient(cfg.APIBaseURL, cfg.HTTPTimeout, client.WithLogger(log.With("module", "api")), client.WithDebug(cfg.Debug))
	holder := session.NewHolder(repos.Metadata, api, log)
	api.SetTokenSource(holder.Token)

	c := &Core{
		Config:  cfg,
		Log:     log,
		db:      db,
		api:     api,
		Session: holder,
		Auth:    services.NewAuthService(api, holder, log),
		Cases:   services.NewCaseService(api, holder, log),
		Forms:   services.NewFormService(api, holder, log),
	}
	c.Shell = portal.NewShell(c.Auth, log)
	c.CaseSearch = portal.NewCaseSearch(c.Cases, cfg.PageSize, log)
	c.FormsCatalog = portal.NewFormsCatalog(c.Forms, cfg.DownloadDir, log)
	c.Login = portal.NewLoginForm(c.Auth, log)
	c.Hearings = portal.NewHearings(c.Cases, log)

	if err := c.Auth.Restore(ctx); err != nil {
		log.Error(ctx, "failed to restore session", "error", err)
	}
	return c, nil
}

func (c *Core) Close(ctx context.Context) error {
	_ = c.Auth.Close(ctx)
	return c.db.Close()
}
