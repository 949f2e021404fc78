package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// DenyOrderPartCommand removes an order part outright. Denial is only legal
// while the order sits with the head office; there is no soft delete and no
// audit trail.
type DenyOrderPartCommand struct {
	OrderPartID string
}

type DenyOrderPartHandler struct {
	repo            domain.OrderPartRepository
	txScope         transaction.Scope
	handlerRegistry eventbus.HandlerRegistry
}

func NewDenyOrderPartHandler(
	repo domain.OrderPartRepository,
	txScope transaction.Scope,
	handlerRegistry eventbus.HandlerRegistry,
) *DenyOrderPartHandler {
	return &DenyOrderPartHandler{
		repo:            repo,
		txScope:         txScope,
		handlerRegistry: handlerRegistry,
	}
}

func (h *DenyOrderPartHandler) Handle(ctx context.Context, cmd DenyOrderPartCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		publisher := eventbus.NewTransactionalPublisher(h.handlerRegistry, 10)

		part, err := h.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("finding order part: %w", err)
		}

		if !domain.ShowOfficeOrderDeny(part.CurrentStage()) {
			return domain.ErrStageOutOfOrder
		}

		if err := h.repo.Delete(ctx, id); err != nil {
			return fmt.Errorf("deleting order part: %w", err)
		}

		if err := publisher.Publish(ctx, domain.NewDeniedEvent(part)); err != nil {
			return fmt.Errorf("publishing event: %w", err)
		}

		return publisher.Flush(ctx)
	})
}
