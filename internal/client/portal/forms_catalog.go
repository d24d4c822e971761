package portal

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// FormsCatalogState is a snapshot of the forms page.
type FormsCatalogState struct {
	Category   string
	Search     string
	Catalog    models.Catalog
	Categories []models.FormCategory
	Loading    bool
}

// Sections returns the non-empty catalog groups in category order.
func (s FormsCatalogState) Sections() []FormSection {
	var out []FormSection
	for _, key := range s.Catalog.Categories() {
		forms := s.Catalog.Forms[key]
		if len(forms) == 0 {
			continue
		}
		out = append(out, FormSection{Info: models.CategoryInfo(s.Categories, key), Forms: forms})
	}
	return out
}

type FormSection struct {
	Info  models.FormCategory
	Forms []models.Form
}

type FormsCatalog struct {
	svc         services.FormService
	log         logging.Logger
	downloadDir string

	mu         sync.Mutex
	category   string
	search     string
	catalog    models.Catalog
	categories []models.FormCategory
	seq        sequencer
}

func NewFormsCatalog(svc services.FormService, downloadDir string, log logging.Logger) *FormsCatalog {
	return &FormsCatalog{
		svc:         svc,
		downloadDir: downloadDir,
		log:         log.With("module", "forms_catalog"),
	}
}

// Load fetches the categories and the unfiltered catalog.
func (f *FormsCatalog) Load(ctx context.Context) error {
	cats, err := f.svc.Categories(ctx)
	if err != nil {
		f.log.Error(ctx, "failed to load form categories", "error", err)
	} else {
		f.mu.Lock()
		f.categories = cats
		f.mu.Unlock()
	}
	return f.Refresh(ctx)
}

// SetCategory selects a category ("" for all) and refetches immediately.
func (f *FormsCatalog) SetCategory(ctx context.Context, category string) error {
	f.mu.Lock()
	f.category = category
	f.mu.Unlock()
	return f.Refresh(ctx)
}

// SetSearch changes the search text and refetches immediately.
func (f *FormsCatalog) SetSearch(ctx context.Context, search string) error {
	f.mu.Lock()
	f.search = search
	f.mu.Unlock()
	return f.Refresh(ctx)
}

// Refresh refetches the catalog for the current category and search text.
// A failure is logged and leaves the previous catalog in place.
func (f *FormsCatalog) Refresh(ctx context.Context) error {
	f.mu.Lock()
	category, search := f.category, strings.TrimSpace(f.search)
	seq := f.seq.begin()
	f.mu.Unlock()

	catalog, err := f.svc.Catalog(ctx, category, search)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.seq.end(seq, false)
		f.log.Error(ctx, "failed to load forms", "category", category, "search", search, "error", err)
		return err
	}
	if !f.seq.end(seq, true) {
		f.log.Debug(ctx, "stale catalog response dropped", "seq", seq)
		return nil
	}
	f.catalog = catalog
	return nil
}

// title resolves the display title of a form, asking the server when the
// form is not in the current catalog.
func (f *FormsCatalog) title(ctx context.Context, id int64) (string, error) {
	f.mu.Lock()
	form, ok := f.catalog.Find(id)
	f.mu.Unlock()
	if ok {
		return form.Title, nil
	}
	form, err := f.svc.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return form.Title, nil
}

// Download saves the form into the download directory and returns the path.
// A failure is logged and nothing is written.
func (f *FormsCatalog) Download(ctx context.Context, id int64) (string, error) {
	title, err := f.title(ctx, id)
	if err != nil {
		f.log.Error(ctx, "form download failed", "id", id, "error", err)
		return "", err
	}
	path, err := f.svc.Download(ctx, id, title, f.downloadDir)
	if err != nil {
		f.log.Error(ctx, "form download failed", "id", id, "error", err)
		return "", err
	}
	return path, nil
}

// Document is a downloaded form ready to be handed to a browser.
type Document struct {
	FileName string
	Data     []byte
}

// Fetch returns the form body and its attachment name "<title>.pdf".
func (f *FormsCatalog) Fetch(ctx context.Context, id int64) (Document, error) {
	title, err := f.title(ctx, id)
	if err != nil {
		f.log.Error(ctx, "form download failed", "id", id, "error", err)
		return Document{}, err
	}
	data, err := f.svc.Fetch(ctx, id)
	if err != nil {
		f.log.Error(ctx, "form download failed", "id", id, "error", err)
		return Document{}, err
	}
	return Document{FileName: fmt.Sprintf("%s.pdf", title), Data: data}, nil
}

func (f *FormsCatalog) State() FormsCatalogState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return FormsCatalogState{
		Category:   f.category,
		Search:     f.search,
		Catalog:    f.catalog,
		Categories: f.categories,
		Loading:    f.seq.loading(),
	}
}
