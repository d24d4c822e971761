package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/session"
	"github.com/dmitrijs2005/tribunal/internal/filex"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// FormService exposes the forms catalog and document downloads.
type FormService interface {
	Categories(ctx context.Context) ([]models.FormCategory, error)
	Catalog(ctx context.Context, category, search string) (models.Catalog, error)
	Get(ctx context.Context, id int64) (models.Form, error)
	// Fetch returns the document body of a successful download.
	Fetch(ctx context.Context, id int64) ([]byte, error)
	// Download saves the document as "<title>.pdf" under dir and returns
	// the written path. Nothing is written unless the server answered 2xx.
	Download(ctx context.Context, id int64, title, dir string) (string, error)
}

type formService struct {
	client  client.Client
	session *session.Holder
	log     logging.Logger
}

func NewFormService(c client.Client, h *session.Holder, log logging.Logger) FormService {
	return &formService{client: c, session: h, log: log.With("module", "forms")}
}

func (s *formService) Categories(ctx context.Context) ([]models.FormCategory, error) {
	c, err := s.client.FormCategories(ctx)
	return c, invalidateOn401(ctx, s.session, s.log, err)
}

func (s *formService) Catalog(ctx context.Context, category, search string) (models.Catalog, error) {
	c, err := s.client.ListForms(ctx, category, search)
	if err != nil {
		return models.Catalog{}, invalidateOn401(ctx, s.session, s.log, err)
	}
	return c, nil
}

func (s *formService) Get(ctx context.Context, id int64) (models.Form, error) {
	f, err := s.client.GetForm(ctx, id)
	if err != nil {
		return models.Form{}, invalidateOn401(ctx, s.session, s.log, err)
	}
	return f, nil
}

func (s *formService) Fetch(ctx context.Context, id int64) ([]byte, error) {
	data, err := s.client.DownloadForm(ctx, id)
	if err != nil {
		return nil, invalidateOn401(ctx, s.session, s.log, err)
	}
	return data, nil
}

func (s *formService) Download(ctx context.Context, id int64, title, dir string) (string, error) {
	data, err := s.Fetch(ctx, id)
	if err != nil {
		return "", err
	}

	abs, err := filex.EnsureDir(dir)
	if err != nil {
		return "", fmt.Errorf("download dir: %w", err)
	}
	path := filepath.Join(abs, filex.SafeFileName(title, ".pdf"))
	if err := filex.WriteFileAtomic(path, data, 0o644); err != nil {
		return "", fmt.Errorf("save form: %w", err)
	}

	s.log.Info(ctx, "form saved", "id", id, "path", path, "bytes", len(data))
	return path, nil
}
