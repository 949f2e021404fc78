package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// ApproveOfficeOrderCommand records head office approval of an order part,
// completing the Order Sent To Head Office stage.
type ApproveOfficeOrderCommand struct {
	OrderPartID string
}

type ApproveOfficeOrderHandler struct {
	repo            domain.OrderPartRepository
	txScope         transaction.Scope
	handlerRegistry eventbus.HandlerRegistry
}

func NewApproveOfficeOrderHandler(
	repo domain.OrderPartRepository,
	txScope transaction.Scope,
	handlerRegistry eventbus.HandlerRegistry,
) *ApproveOfficeOrderHandler {
	return &ApproveOfficeOrderHandler{
		repo:            repo,
		txScope:         txScope,
		handlerRegistry: handlerRegistry,
	}
}

func (h *ApproveOfficeOrderHandler) Handle(ctx context.Context, cmd ApproveOfficeOrderCommand) error {
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

		if err := part.ApproveOfficeOrder(); err != nil {
			return err
		}

		if err := h.repo.SetOfficeOrderApproved(ctx, id, true); err != nil {
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
