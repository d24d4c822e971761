package portal

import (
	"context"

	"github.com/dmitrijs2005/tribunal/internal/client/models"
	"github.com/dmitrijs2005/tribunal/internal/client/services"
	"github.com/dmitrijs2005/tribunal/internal/logging"
)

// Hearings lists the calendar of scheduled public hearings. It keeps no
// state between calls.
type Hearings struct {
	svc services.CaseService
	log logging.Logger
}

func NewHearings(svc services.CaseService, log logging.Logger) *Hearings {
	return &Hearings{svc: svc, log: log.With("module", "hearings")}
}

func (h *Hearings) List(ctx context.Context, f models.HearingFilters) ([]models.Hearing, error) {
	list, err := h.svc.Hearings(ctx, f)
	if err != nil {
		h.log.Error(ctx, "failed to load hearings", "error", err)
		return nil, err
	}
	return list, nil
}
