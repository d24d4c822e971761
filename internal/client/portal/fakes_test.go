package portal

import (
	"context"
	"database/sql"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/client/session"
	"github.com/dmitrijs2005/tribunal/internal/logging"

	_ "modernc.org/sqlite"
)

type searchCall struct {
	Filters models.SearchFilters
	Page    int
	PerPage int
}

type formsCall struct {
	Category string
	Search   string
}

// fakeAPI implements client.Client for controller tests.
type fakeAPI struct {
	client.Client

	mu          sync.Mutex
	searchCalls []searchCall
	formsCalls  []formsCall

	LoginFn    func(username, password string) (models.Session, error)
	SearchFn   func(call searchCall) (models.CasePage, error)
	ListFn     func(call formsCall) (models.Catalog, error)
	DownloadFn func(id int64) ([]byte, error)
	GetFormFn  func(id int64) (models.Form, error)

	Types      []models.Option
	Statuses   []models.Option
	Categories []models.FormCategory
	HearingsFn func(f models.HearingFilters) ([]models.Hearing, error)
}

func (f *fakeAPI) Login(_ context.Context, u, p string) (models.Session, error) {
	return f.LoginFn(u, p)
}

func (f *fakeAPI) SearchCases(_ context.Context, filters models.SearchFilters, page, perPage int) (models.CasePage, error) {
	call := searchCall{Filters: filters, Page: page, PerPage: perPage}
	f.mu.Lock()
	f.searchCalls = append(f.searchCalls, call)
	f.mu.Unlock()
	return f.SearchFn(call)
}

func (f *fakeAPI) GetCase(_ context.Context, id int64) (models.Case, error) {
	return models.Case{ID: id, CaseNumber: "N-1"}, nil
}

func (f *fakeAPI) CaseTypes(context.Context) ([]models.Option, error)    { return f.Types, nil }
func (f *fakeAPI) CaseStatuses(context.Context) ([]models.Option, error) { return f.Statuses, nil }

func (f *fakeAPI) Hearings(_ context.Context, fl models.HearingFilters) ([]models.Hearing, error) {
	return f.HearingsFn(fl)
}

func (f *fakeAPI) FormCategories(context.Context) ([]models.FormCategory, error) {
	return f.Categories, nil
}

func (f *fakeAPI) ListForms(_ context.Context, category, search string) (models.Catalog, error) {
	call := formsCall{Category: category, Search: search}
	f.mu.Lock()
	f.formsCalls = append(f.formsCalls, call)
	f.mu.Unlock()
	return f.ListFn(call)
}

func (f *fakeAPI) GetForm(_ context.Context, id int64) (models.Form, error) {
	return f.GetFormFn(id)
}

func (f *fakeAPI) DownloadForm(_ context.Context, id int64) ([]byte, error) {
	return f.DownloadFn(id)
}

func (f *fakeAPI) searches() []searchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]searchCall(nil), f.searchCalls...)
}

func (f *fakeAPI) catalogs() []formsCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]formsCall(nil), f.formsCalls...)
}

type deps struct {
	holder *session.Holder
	auth   services.AuthService
	cases  services.CaseService
	forms  services.FormService
}

func newDeps(t *testing.T, api *fakeAPI) deps {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	log := logging.Nop()
	h := session.NewHolder(metadata.NewSQLiteRepository(db), api, log)
	return deps{
		holder: h,
		auth:   services.NewAuthService(api, h, log),
		cases:  services.NewCaseService(api, h, log),
		forms:  services.NewFormService(api, h, log),
	}
}

func casePage(page int, hasNext bool, numbers ...string) models.CasePage {
	p := models.CasePage{Pagination: models.Pagination{
		Page: page, PerPage: 10, Total: len(numbers), Pages: page, HasNext: hasNext, HasPrev: page > 1,
	}}
	for i, n := range numbers {
		p.Cases = append(p.Cases, models.Case{ID: int64(i + 1), CaseNumber: n})
	}
	return p
}
