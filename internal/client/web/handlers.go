package web

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/portal"
)

// view is what every page template receives. Return is the current path
// with its query, posted back by the menu toggle.
type view struct {
	Title  string
	Return string
	Shell  portal.ShellState
	Footer portal.Contacts
	Data   any
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page, title string, data any) {
	t, ok := s.pages[page]
	if !ok {
		s.log.Error(r.Context(), "unknown page template", "page", page)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	v := view{
		Title:  title,
		Return: r.URL.RequestURI(),
		Shell:  s.shell.State(r.URL.Path),
		Footer: portal.Home().Contacts,
		Data:   data,
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		s.log.Error(r.Context(), "failed to render page", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// localPath accepts only same-site absolute paths, optionally with a query.
// Browsers drop tabs and newlines from Location and treat a backslash as a
// slash, so control bytes and backslashes are refused as well.
func localPath(p string) string {
	if !strings.HasPrefix(p, "/") || strings.HasPrefix(p, "//") {
		return portal.HomeRoute
	}
	for i := 0; i < len(p); i++ {
		if p[i] < 0x20 || p[i] == 0x7f || p[i] == '\\' {
			return portal.HomeRoute
		}
	}
	u, err := url.Parse(p)
	if err != nil || u.Scheme != "" || u.Host != "" || u.User != nil {
		return portal.HomeRoute
	}
	return p
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "home", "Início", portal.Home())
}

type casesPage struct {
	portal.CaseSearchState
	CanNext bool
	CanPrev bool
}

func (s *Server) handleCases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !s.cases.State().Searched {
		_ = s.cases.Load(ctx)
	}
	if p := r.URL.Query().Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil {
			_ = s.cases.Search(ctx, page)
		}
	}

	s.render(w, r, http.StatusOK, "cases", "Pesquisa de Processos", casesPage{
		CaseSearchState: s.cases.State(),
		CanNext:         s.cases.CanNext(),
		CanPrev:         s.cases.CanPrev(),
	})
}

func (s *Server) handleCasesAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	switch r.PostFormValue("action") {
	case "clear":
		_ = s.cases.ClearFilters(ctx)
	case "next":
		_ = s.cases.Next(ctx)
	case "prev":
		_ = s.cases.Prev(ctx)
	default:
		var f models.SearchFilters
		for _, name := range models.FilterFields {
			_ = f.Set(name, r.PostFormValue(name))
		}
		s.cases.SetFilters(f)
		_ = s.cases.Search(ctx, 1)
	}
	redirect(w, r, portal.CasesRoute)
}

type casePage struct {
	Case  models.Case
	Error string
}

func (s *Server) handleCase(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	cs, err := s.cases.Case(r.Context(), id)
	switch {
	case err == nil:
		s.render(w, r, http.StatusOK, "case", cs.CaseNumber, casePage{Case: cs})
	case errors.Is(err, client.ErrNotFound):
		s.render(w, r, http.StatusNotFound, "case", "Processo não encontrado", casePage{Error: "Processo não encontrado"})
	case errors.Is(err, client.ErrForbidden), errors.Is(err, client.ErrUnauthorized):
		s.render(w, r, http.StatusForbidden, "case", "Acesso negado", casePage{Error: "Acesso negado"})
	default:
		s.render(w, r, http.StatusBadGateway, "case", "Erro", casePage{Error: portal.MsgConnectionFailed})
	}
}

func (s *Server) handleForms(w http.ResponseWriter, r *http.Request) {
	if !s.formsLoaded.Load() {
		if err := s.forms.Load(r.Context()); err == nil {
			s.formsLoaded.Store(true)
		}
	}
	s.render(w, r, http.StatusOK, "forms", "Formulários", s.forms.State())
}

// handleFormsAction applies the category and search inputs. Each change
// refetches the catalog on its own, as in the interactive page.
func (s *Server) handleFormsAction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	st := s.forms.State()
	category := r.PostFormValue("category")
	search := r.PostFormValue("search")
	if r.PostFormValue("action") == "clear" {
		category, search = "", ""
	}

	changed := false
	if category != st.Category {
		_ = s.forms.SetCategory(ctx, category)
		changed = true
	}
	if search != st.Search {
		_ = s.forms.SetSearch(ctx, search)
		changed = true
	}
	if !changed {
		_ = s.forms.Refresh(ctx)
	}
	s.formsLoaded.Store(true)
	redirect(w, r, portal.FormsRoute)
}

// handleDownload sends the form as an attachment. Any failure has already
// been logged by the catalog; the browser goes back to the list without a
// file.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		redirect(w, r, portal.FormsRoute)
		return
	}

	doc, err := s.forms.Fetch(r.Context(), id)
	if err != nil {
		redirect(w, r, portal.FormsRoute)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": doc.FileName}))
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Data)
}

type loginPage struct {
	portal.LoginState
	Demo []portal.DemoAccount
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, "login", "Entrar", loginPage{
		LoginState: s.login.State(),
		Demo:       portal.DemoAccounts(),
	})
}

func (s *Server) handleLoginAction(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	if r.PostFormValue("action") == "demo" {
		i, err := strconv.Atoi(r.PostFormValue("index"))
		if err == nil {
			err = s.login.FillDemo(i)
		}
		if err != nil {
			s.log.Warn(r.Context(), "invalid demo account", "index", r.PostFormValue("index"))
		}
		redirect(w, r, portal.LoginRoute)
		return
	}

	s.login.SetUsername(r.PostFormValue("username"))
	s.login.SetPassword(r.PostFormValue("password"))
	route, err := s.login.Submit(r.Context())
	if err != nil {
		redirect(w, r, portal.LoginRoute)
		return
	}
	redirect(w, r, route)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, s.shell.Logout(r.Context()))
}

func (s *Server) handleMenu(w http.ResponseWriter, r *http.Request) {
	s.shell.ToggleMenu()
	redirect(w, r, localPath(r.PostFormValue("return")))
}

// handleNav follows a link from the mobile menu, which closes it.
func (s *Server) handleNav(w http.ResponseWriter, r *http.Request) {
	redirect(w, r, s.shell.Navigate(localPath(r.PostFormValue("to"))))
}

type hearingsPage struct {
	Filters  models.HearingFilters
	Hearings []models.Hearing
	Error    string
}

func (s *Server) handleHearings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := models.HearingFilters{
		DateFrom:  strings.TrimSpace(q.Get("date_from")),
		DateTo:    strings.TrimSpace(q.Get("date_to")),
		Courtroom: strings.TrimSpace(q.Get("courtroom")),
	}

	page := hearingsPage{Filters: f}
	list, err := s.hearings.List(r.Context(), f)
	if err != nil {
		page.Error = "Não foi possível carregar as audiências"
	}
	page.Hearings = list
	s.render(w, r, http.StatusOK, "hearings", "Audiências", page)
}

type health struct {
	Status   string `json:"status"`
	API      string `json:"api"`
	LoggedIn bool   `json:"logged_in"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	h := health{Status: "ok", API: "online"}
	if err := s.auth.Ping(ctx); err != nil {
		h.API = "offline"
	}
	_, h.LoggedIn = s.auth.Current()

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h)
}
