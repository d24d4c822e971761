package portal

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// Routes of the portal.
const (
	HomeRoute     = "/"
	CasesRoute    = "/cases"
	FormsRoute    = "/forms"
	HearingsRoute = "/hearings"
	LoginRoute    = "/login"
)

type NavLink struct {
	Name   string
	Href   string
	Active bool
}

var navLinks = []NavLink{
	{Name: "Início", Href: HomeRoute},
	{Name: "Pesquisa de Processos", Href: CasesRoute},
	{Name: "Formulários", Href: FormsRoute},
}

type ShellState struct {
	Links    []NavLink
	User     models.User
	LoggedIn bool
	MenuOpen bool
}

// Shell is the navigation chrome around every page: the links, the
// signed-in user and the mobile menu.
type Shell struct {
	auth services.AuthService
	log  logging.Logger

	mu       sync.Mutex
	menuOpen bool
}

func NewShell(auth services.AuthService, log logging.Logger) *Shell {
	return &Shell{auth: auth, log: log.With("module", "shell")}
}

// ToggleMenu flips the mobile menu and returns the new state.
func (s *Shell) ToggleMenu() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.menuOpen = !s.menuOpen
	return s.menuOpen
}

func (s *Shell) CloseMenu() {
	s.mu.Lock()
	s.menuOpen = false
	s.mu.Unlock()
}

// Navigate follows a link; the mobile menu closes on navigation.
func (s *Shell) Navigate(href string) string {
	s.CloseMenu()
	return href
}

// Logout ends the session and returns the route to navigate to. The
// session is cleared even if the persisted token could not be removed.
func (s *Shell) Logout(ctx context.Context) string {
	s.CloseMenu()
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Error(ctx, "logout failed", "error", err)
	}
	return HomeRoute
}

// State returns the chrome for the page at path.
func (s *Shell) State(path string) ShellState {
	links := make([]NavLink, len(navLinks))
	for i, l := range navLinks {
		l.Active = l.Href == path
		links[i] = l
	}
	user, ok := s.auth.Current()

	s.mu.Lock()
	defer s.mu.Unlock()
	return ShellState{Links: links, User: user, LoggedIn: ok, MenuOpen: s.menuOpen}
}
