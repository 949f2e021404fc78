package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// ApprovePendingOrderCommand records factory storage approval of a requested
// order part, completing the Pending stage.
type ApprovePendingOrderCommand struct {
	OrderPartID string
}

type ApprovePendingOrderHandler struct {
	repo            domain.OrderPartRepository
	txScope         transaction.Scope
	handlerRegistry eventbus.HandlerRegistry
}

func NewApprovePendingOrderHandler(
	repo domain.OrderPartRepository,
	txScope transaction.Scope,
	handlerRegistry eventbus.HandlerRegistry,
) *ApprovePendingOrderHandler {
	return &ApprovePendingOrderHandler{
		repo:            repo,
		txScope:         txScope,
		handlerRegistry: handlerRegistry,
	}
}

// Handle validates the transition against the current stage and persists the
// approval flag. The validating read and the single write share a
// transaction so a concurrent advance cannot slip between them.
func (h *ApprovePendingOrderHandler) Handle(ctx context.Context, cmd ApprovePendingOrderCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		// Create publisher inside closure for Spanner retry safety
		publisher := eventbus.NewTransactionalPublisher(h.handlerRegistry, 10)

		part, err := h.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("finding order part: %w", err)
		}

		if err := part.ApprovePendingOrder(); err != nil {
			return err
		}

		if err := h.repo.SetPendingOrderApproved(ctx, id, true); err != nil {
			return fmt.Errorf("saving approval: %w", err)
		}

		for _, event := range part.DomainEvents() {
			if err := publisher.Publish(ctx, event); err != nil {
				return fmt.Errorf("publishing event: %w", err)
			}
		}
		part.ClearDomainEvents()

		return publisher.Flush(ctx)
	})
}
