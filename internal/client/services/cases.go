package services

import (
	"context"

	"github.com/dmitrijs2005/tribunal/internal/client/client"
	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/session"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// CaseService exposes the public case registry and the hearings calendar.
type CaseService interface {
	Search(ctx context.Context, filters models.SearchFilters, page, perPage int) (models.CasePage, error)
	Get(ctx context.Context, id int64) (models.Case, error)
	Types(ctx context.Context) ([]models.Option, error)
	Statuses(ctx context.Context) ([]models.Option, error)
	Hearings(ctx context.Context, filters models.HearingFilters) ([]models.Hearing, error)
}

type caseService struct {
	client  client.Client
	session *session.Holder
	log     logging.Logger
}

func NewCaseService(c client.Client, h *session.Holder, log logging.Logger) CaseService {
	return &caseService{client: c, session: h, log: log.With("module", "cases")}
}

func (s *caseService) Search(ctx context.Context, filters models.SearchFilters, page, perPage int) (models.CasePage, error) {
	p, err := s.client.SearchCases(ctx, filters, page, perPage)
	if err != nil {
		return models.CasePage{}, invalidateOn401(ctx, s.session, s.log, err)
	}
	s.log.Debug(ctx, "cases found", "page", p.Pagination.Page, "total", p.Pagination.Total)
	return p, nil
}

func (s *caseService) Get(ctx context.Context, id int64) (models.Case, error) {
	c, err := s.client.GetCase(ctx, id)
	if err != nil {
		return models.Case{}, invalidateOn401(ctx, s.session, s.log, err)
	}
	return c, nil
}

func (s *caseService) Types(ctx context.Context) ([]models.Option, error) {
	o, err := s.client.CaseTypes(ctx)
	return o, invalidateOn401(ctx, s.session, s.log, err)
}

func (s *caseService) Statuses(ctx context.Context) ([]models.Option, error) {
	o, err := s.client.CaseStatuses(ctx)
	return o, invalidateOn401(ctx, s.session, s.log, err)
}

func (s *caseService) Hearings(ctx context.Context, filters models.HearingFilters) ([]models.Hearing, error) {
	h, err := s.client.Hearings(ctx, filters)
	return h, invalidateOn401(ctx, s.session, s.log, err)
}
