package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/tribunal/internal/client/core"
	"github.com/dmitrijs2005/tribunal/internal/client/portal"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	auth     services.AuthService
	caseSvc  services.CaseService
	formSvc  services.FormService
	shell    *portal.Shell
	cases    *portal.CaseSearch
	forms    *portal.FormsCatalog
	login    *portal.LoginForm
	hearings *portal.Hearings
	log      logging.Logger

	interval time.Duration
	reader   *bufio.Reader
	out      io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp builds the REPL over the shared page controllers of c.
func NewApp(c *core.Core) *App {
	return &App{
		auth:     c.Auth,
		caseSvc:  c.Cases,
		formSvc:  c.Forms,
		shell:    c.Shell,
		cases:    c.CaseSearch,
		forms:    c.FormsCatalog,
		login:    c.Login,
		hearings: c.Hearings,
		log:      c.Log.With("module", "cli"),
		interval: c.Config.OnlineCheckInterval,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) isLoggedIn() bool {
	_, ok := a.auth.Current()
	return ok
}

// getStatus renders the prompt suffix, e.g. "(admin online)".
func (a *App) getStatus() string {
	var parts []string
	if u, ok := a.auth.Current(); ok {
		parts = append(parts, u.Username)
	}
	if m := a.getMode(); m != "" {
		parts = append(parts, string(m))
	}
	if len(parts) == 0 {
		return ""
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Run starts the connectivity watcher and blocks in the REPL until the user
// exits, stdin closes or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Tribunal CLI (type 'help' for commands)")
	a.probe(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.interval)

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := a.auth.Ping(ctx); err != nil {
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

// StartOnlineStatusWatcher pings the API every interval and flips the mode
// between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.probe(ctx)
		case <-ctx.Done():
			return
		}
	}
}
