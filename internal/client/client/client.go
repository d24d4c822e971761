package client

import (
	"context"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
)

// Client is the contract of the remote tribunal API.
type Client interface {
	Login(ctx context.Context, username, password string) (models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Profile(ctx context.Context, token string) (models.User, error)
	UpdateProfile(ctx context.Context, token string, upd models.ProfileUpdate) (models.User, error)

	SearchCases(ctx context.Context, filters models.SearchFilters, page, perPage int) (models.CasePage, error)
	GetCase(ctx context.Context, id int64) (models.Case, error)
	CaseTypes(ctx context.Context) ([]models.Option, error)
	CaseStatuses(ctx context.Context) ([]models.Option, error)
	Hearings(ctx context.Context, filters models.HearingFilters) ([]models.Hearing, error)

	FormCategories(ctx context.Context) ([]models.FormCategory, error)
	ListForms(ctx context.Context, category, search string) (models.Catalog, error)
	GetForm(ctx context.Context, id int64) (models.Form, error)
	DownloadForm(ctx context.Context, id int64) ([]byte, error)

	Ping(ctx context.Context) error
	Close() error
}
