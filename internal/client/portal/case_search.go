package portal

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// CaseSearchState is a snapshot of the case search page.
type CaseSearchState struct {
	Filters    models.SearchFilters
	Cases      []models.Case
	Pagination models.Pagination
	Types      []models.Option
	Statuses   []models.Option
	Loading    bool
	// Searched is set once a search response has been applied.
	Searched bool
}

// ShowPager reports whether the result has more than one page.
func (s CaseSearchState) ShowPager() bool {
	return s.Pagination.Pages > 1
}

type CaseSearch struct {
	svc     services.CaseService
	log     logging.Logger
	perPage int

	mu       sync.Mutex
	filters  models.SearchFilters
	result   models.CasePage
	types    []models.Option
	statuses []models.Option
	searched bool
	seq      sequencer
}

func NewCaseSearch(svc services.CaseService, perPage int, log logging.Logger) *CaseSearch {
	if perPage <= 0 {
		perPage = 10
	}
	return &CaseSearch{
		svc:     svc,
		perPage: perPage,
		log:     log.With("module", "case_search"),
		result:  models.CasePage{Pagination: models.Pagination{Page: 1, PerPage: perPage}},
	}
}

// Load fetches the selector options and runs the first search.
func (c *CaseSearch) Load(ctx context.Context) error {
	types, err := c.svc.Types(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to load case types", "error", err)
	}
	statuses, err := c.svc.Statuses(ctx)
	if err != nil {
		c.log.Error(ctx, "failed to load case statuses", "error", err)
	}

	c.mu.Lock()
	if types != nil {
		c.types = types
	}
	if statuses != nil {
		c.statuses = statuses
	}
	c.mu.Unlock()

	return c.Search(ctx, 1)
}

// SetFilter changes one criterion without searching.
func (c *CaseSearch) SetFilter(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.filters.Set(field, value)
}

// SetFilters replaces all criteria without searching.
func (c *CaseSearch) SetFilters(f models.SearchFilters) {
	c.mu.Lock()
	c.filters = f
	c.mu.Unlock()
}

// Search requests the given page for the current filters. On success the
// results and cursor are replaced; on failure the error is logged and
// returned and the prior results are kept.
func (c *CaseSearch) Search(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	c.mu.Lock()
	filters := c.filters
	seq := c.seq.begin()
	c.mu.Unlock()

	result, err := c.svc.Search(ctx, filters, page, c.perPage)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.seq.end(seq, false)
		c.log.Error(ctx, "case search failed", "page", page, "error", err)
		return err
	}
	if !c.seq.end(seq, true) {
		c.log.Debug(ctx, "stale search response dropped", "seq", seq)
		return nil
	}
	c.result = result
	c.searched = true
	return nil
}

// ClearFilters resets every criterion and searches page 1.
func (c *CaseSearch) ClearFilters(ctx context.Context) error {
	c.SetFilters(models.SearchFilters{})
	return c.Search(ctx, 1)
}

func (c *CaseSearch) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Pagination.HasNext
}

func (c *CaseSearch) CanPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.result.Pagination.HasPrev
}

// Next moves one page forward; it is a no-op when there is no next page.
func (c *CaseSearch) Next(ctx context.Context) error {
	c.mu.Lock()
	p := c.result.Pagination
	c.mu.Unlock()
	if !p.HasNext {
		return nil
	}
	return c.Search(ctx, p.Page+1)
}

// Prev moves one page back; it is a no-op when there is no previous page.
func (c *CaseSearch) Prev(ctx context.Context) error {
	c.mu.Lock()
	p := c.result.Pagination
	c.mu.Unlock()
	if !p.HasPrev {
		return nil
	}
	return c.Search(ctx, p.Page-1)
}

// Case fetches one case for the detail view.
func (c *CaseSearch) Case(ctx context.Context, id int64) (models.Case, error) {
	cs, err := c.svc.Get(ctx, id)
	if err != nil {
		c.log.Error(ctx, "failed to load case", "id", id, "error", err)
	}
	return cs, err
}

func (c *CaseSearch) State() CaseSearchState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CaseSearchState{
		Filters:    c.filters,
		Cases:      append([]models.Case(nil), c.result.Cases...),
		Pagination: c.result.Pagination,
		Types:      c.types,
		Statuses:   c.statuses,
		Loading:    c.seq.loading(),
		Searched:   c.searched,
	}
}
