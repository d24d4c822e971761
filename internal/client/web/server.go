// Package web serves the tribunal portal as server-rendered HTML pages on
// top of the portal controllers.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/portal"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
	"github.com/dmitrijs2005/tribunal/internal/timex"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

var pageNames = []string{"home", "cases", "case", "forms", "login", "hearings"}

// Deps are the controllers the portal renders.
type Deps struct {
	Auth     services.AuthService
	Shell    *portal.Shell
	Cases    *portal.CaseSearch
	Forms    *portal.FormsCatalog
	Login    *portal.LoginForm
	Hearings *portal.Hearings
	Log      logging.Logger
}

type Server struct {
	auth     services.AuthService
	shell    *portal.Shell
	cases    *portal.CaseSearch
	forms    *portal.FormsCatalog
	login    *portal.LoginForm
	hearings *portal.Hearings
	log      logging.Logger

	pages       map[string]*template.Template
	router      *mux.Router
	formsLoaded atomic.Bool
}

var funcs = template.FuncMap{
	"status":   models.StatusBadge,
	"kind":     models.TypeBadge,
	"datetime": displayDateTime,
}

func displayDateTime(t timex.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006 15:04")
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

func NewServer(d Deps) (*Server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	s := &Server{
		auth:     d.Auth,
		shell:    d.Shell,
		cases:    d.Cases,
		forms:    d.Forms,
		login:    d.Login,
		hearings: d.Hearings,
		log:      d.Log.With("module", "web"),
		pages:    pages,
	}
	s.router = s.buildRouter()
	return s, nil
}

func (s *Server) buildRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.recoverer, s.accessLog, securityHeaders)

	r.HandleFunc(portal.HomeRoute, s.handleHome).Methods(http.MethodGet)

	r.HandleFunc(portal.CasesRoute, s.handleCases).Methods(http.MethodGet)
	r.HandleFunc(portal.CasesRoute, s.handleCasesAction).Methods(http.MethodPost)
	r.HandleFunc(portal.CasesRoute+"/{id:[0-9]+}", s.handleCase).Methods(http.MethodGet)

	r.HandleFunc(portal.FormsRoute, s.handleForms).Methods(http.MethodGet)
	r.HandleFunc(portal.FormsRoute, s.handleFormsAction).Methods(http.MethodPost)
	r.HandleFunc(portal.FormsRoute+"/{id:[0-9]+}/download", s.handleDownload).Methods(http.MethodGet)

	r.HandleFunc(portal.LoginRoute, s.handleLogin).Methods(http.MethodGet)
	r.HandleFunc(portal.LoginRoute, s.handleLoginAction).Methods(http.MethodPost)
	r.HandleFunc("/logout", s.handleLogout).Methods(http.MethodPost)
	r.HandleFunc("/menu", s.handleMenu).Methods(http.MethodPost)
	r.HandleFunc("/nav", s.handleNav).Methods(http.MethodPost)

	r.HandleFunc(portal.HearingsRoute, s.handleHearings).Methods(http.MethodGet)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(staticFS))).Methods(http.MethodGet)

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "portal listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.log.Info(context.Background(), "shutting down portal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
