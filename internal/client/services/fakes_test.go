package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tribunal/internal/client/session"
	"github.com/dmitrijs2005/tribunal/internal/logging"

	_ "modernc.org/sqlite"
)

// fakeClient implements client.Client; unset hooks panic through the nil
// embedded interface.
type fakeClient struct {
	client.Client

	LoginFn         func(username, password string) (models.Session, error)
	RegisterFn      func(req models.RegisterRequest) (models.User, error)
	ProfileFn       func(token string) (models.User, error)
	UpdateProfileFn func(token string, upd models.ProfileUpdate) (models.User, error)
	SearchFn        func(f models.SearchFilters, page, perPage int) (models.CasePage, error)
	ListFormsFn     func(category, search string) (models.Catalog, error)
	DownloadFn      func(id int64) ([]byte, error)

	PingErr  error
	Closed   bool
	TypesRet []models.Option
	TypesErr error
}

func (f *fakeClient) Login(_ context.Context, u, p string) (models.Session, error) {
	return f.LoginFn(u, p)
}
func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (models.User, error) {
	return f.RegisterFn(req)
}
func (f *fakeClient) Profile(_ context.Context, token string) (models.User, error) {
	return f.ProfileFn(token)
}
func (f *fakeClient) UpdateProfile(_ context.Context, token string, upd models.ProfileUpdate) (models.User, error) {
	return f.UpdateProfileFn(token, upd)
}
func (f *fakeClient) SearchCases(_ context.Context, fl models.SearchFilters, page, perPage int) (models.CasePage, error) {
	return f.SearchFn(fl, page, perPage)
}
func (f *fakeClient) CaseTypes(context.Context) ([]models.Option, error) {
	return f.TypesRet, f.TypesErr
}
func (f *fakeClient) ListForms(_ context.Context, category, search string) (models.Catalog, error) {
	return f.ListFormsFn(category, search)
}
func (f *fakeClient) DownloadForm(_ context.Context, id int64) ([]byte, error) {
	return f.DownloadFn(id)
}
func (f *fakeClient) Ping(context.Context) error { return f.PingErr }
func (f *fakeClient) Close() error              { f.Closed = true; return nil }

func newHolder(t *testing.T, fc *fakeClient) (*session.Holder, metadata.Repository) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })
	_, err = db.Exec(`CREATE TABLE metadata (key TEXT PRIMARY KEY, value TEXT NOT NULL, updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP)`)
	require.NoError(t, err)

	repo := metadata.NewSQLiteRepository(db)
	return session.NewHolder(repo, fc, logging.Nop()), repo
}
