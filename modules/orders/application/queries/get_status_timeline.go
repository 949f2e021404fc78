package queries

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// StatusTimelineDTO is the merged view the dashboard renders for one order
// part: every catalog stage annotated with completion state, plus the actions
// currently offered.
type StatusTimelineDTO struct {
	OrderPartID      string                     `json:"order_part_id"`
	CurrentStage     string                     `json:"current_stage"`
	Timeline         []domain.MergedStatusEntry `json:"timeline"`
	AvailableActions []domain.Action            `json:"available_actions"`
}

// GetStatusTimelineQuery retrieves the merged status timeline for an order part.
type GetStatusTimelineQuery struct {
	OrderPartID string
}

type GetStatusTimelineHandler struct {
	repo     domain.OrderPartRepository
	statuses domain.StatusRepository
}

func NewGetStatusTimelineHandler(repo domain.OrderPartRepository, statuses domain.StatusRepository) *GetStatusTimelineHandler {
	return &GetStatusTimelineHandler{repo: repo, statuses: statuses}
}

func (h *GetStatusTimelineHandler) Handle(ctx context.Context, query GetStatusTimelineQuery) (*StatusTimelineDTO, error) {
	id, err := types.ParseOrderPartID(query.OrderPartID)
	if err != nil {
		return nil, fmt.Errorf("invalid order part ID: %w", err)
	}

	// Catalog and record are independent reads.
	var (
		catalog []domain.StatusDefinition
		part    *domain.OrderPart
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		catalog, err = h.statuses.ListStatuses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		part, err = h.repo.FindByID(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &StatusTimelineDTO{
		OrderPartID:      part.ID().String(),
		CurrentStage:     part.CurrentStage().Name(),
		Timeline:         domain.MergeStatusTimeline(catalog, part),
		AvailableActions: domain.AvailableActions(part),
	}, nil
}
