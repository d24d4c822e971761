package portal

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

func catalogOf(forms ...models.Form) models.Catalog {
	c := models.Catalog{Forms: map[string][]models.Form{}}
	for _, f := range forms {
		c.Forms[f.Category] = append(c.Forms[f.Category], f)
		c.Total++
	}
	return c
}

func TestFormsCatalog_LoadAndRefetchOnChange(t *testing.T) {
	api := &fakeAPI{
		Categories: []models.FormCategory{{Value: "civil", Label: "Direito Civil"}},
		ListFn: func(formsCall) (models.Catalog, error) {
			return catalogOf(models.Form{ID: 1, Title: "Petição Inicial", Category: "civil"}), nil
		},
	}
	d := newDeps(t, api)
	fc := NewFormsCatalog(d.forms, t.TempDir(), logging.Nop())
	ctx := context.Background()

	require.NoError(t, fc.Load(ctx))
	require.NoError(t, fc.SetCategory(ctx, "civil"))
	require.NoError(t, fc.SetSearch(ctx, " petição "))
	require.NoError(t, fc.SetCategory(ctx, ""))

	assert.Equal(t, []formsCall{
		{},
		{Category: "civil"},
		{Category: "civil", Search: "petição"},
		{Search: "petição"},
	}, api.catalogs())

	st := fc.State()
	assert.Equal(t, api.Categories, st.Categories)
	sections := st.Sections()
	require.Len(t, sections, 1)
	assert.Equal(t, "Direito Civil", sections[0].Info.Label)
	assert.Equal(t, "Petição Inicial", sections[0].Forms[0].Title)
}

func TestFormsCatalog_FailureKeepsCatalog(t *testing.T) {
	fail := false
	api := &fakeAPI{ListFn: func(formsCall) (models.Catalog, error) {
		if fail {
			return models.Catalog{}, client.ErrUnavailable
		}
		return catalogOf(models.Form{ID: 1, Category: "civil"}), nil
	}}
	d := newDeps(t, api)
	fc := NewFormsCatalog(d.forms, t.TempDir(), logging.Nop())
	ctx := context.Background()

	require.NoError(t, fc.Refresh(ctx))
	fail = true
	require.ErrorIs(t, fc.SetSearch(ctx, "x"), client.ErrUnavailable)
	assert.Equal(t, 1, fc.State().Catalog.Total)
	assert.Equal(t, "x", fc.State().Search)
}

func TestFormsCatalog_StaleResponseIsDiscarded(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	api := &fakeAPI{ListFn: func(c formsCall) (models.Catalog, error) {
		if c.Category == "civil" {
			close(started)
			<-release
			return catalogOf(models.Form{ID: 1, Category: "civil"}), nil
		}
		return catalogOf(models.Form{ID: 2, Category: "family"}), nil
	}}
	d := newDeps(t, api)
	fc := NewFormsCatalog(d.forms, t.TempDir(), logging.Nop())
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- fc.SetCategory(ctx, "civil") }()
	<-started
	require.NoError(t, fc.SetCategory(ctx, "family"))
	close(release)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("first refresh did not finish")
	}

	assert.Equal(t, []string{"family"}, fc.State().Catalog.Categories())
}

func TestFormsCatalog_DownloadSavesTitledFile(t *testing.T) {
	api := &fakeAPI{
		ListFn: func(formsCall) (models.Catalog, error) {
			return catalogOf(models.Form{ID: 3, Title: "Pedido de Guarda", Category: "family"}), nil
		},
		DownloadFn: func(id int64) ([]byte, error) { return []byte("%PDF"), nil },
	}
	d := newDeps(t, api)
	dir := t.TempDir()
	fc := NewFormsCatalog(d.forms, dir, logging.Nop())
	ctx := context.Background()
	require.NoError(t, fc.Refresh(ctx))

	path, err := fc.Download(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Pedido de Guarda.pdf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
}

func TestFormsCatalog_DownloadFailureWritesNothing(t *testing.T) {
	api := &fakeAPI{
		GetFormFn:  func(id int64) (models.Form, error) { return models.Form{ID: id, Title: "Inventário"}, nil },
		DownloadFn: func(int64) ([]byte, error) { return nil, &client.APIError{Op: "download_form", Status: 500} },
	}
	d := newDeps(t, api)
	dir := t.TempDir()
	fc := NewFormsCatalog(d.forms, dir, logging.Nop())

	_, err := fc.Download(context.Background(), 9)
	require.ErrorIs(t, err, client.ErrRequestFailed)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFormsCatalog_Fetch(t *testing.T) {
	api := &fakeAPI{
		GetFormFn:  func(id int64) (models.Form, error) { return models.Form{ID: id, Title: "Contestação"}, nil },
		DownloadFn: func(int64) ([]byte, error) { return []byte("pdf"), nil },
	}
	d := newDeps(t, api)
	fc := NewFormsCatalog(d.forms, t.TempDir(), logging.Nop())

	doc, err := fc.Fetch(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, Document{FileName: "Contestação.pdf", Data: []byte("pdf")}, doc)

	api.GetFormFn = func(int64) (models.Form, error) { return models.Form{}, &client.APIError{Status: 404} }
	_, err = fc.Fetch(context.Background(), 5)
	require.ErrorIs(t, err, client.ErrNotFound)
}
