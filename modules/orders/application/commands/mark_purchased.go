package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/eventbus"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/internal/platform/transaction"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// MarkPurchasedCommand records when the part was purchased, completing the
// Waiting For Purchase stage. A zero PurchasedAt defaults to now.
type MarkPurchasedCommand struct {
	OrderPartID string
	PurchasedAt time.Time
}

type MarkPurchasedHandler struct {
	repo            domain.OrderPartRepository
	txScope         transaction.Scope
	handlerRegistry eventbus.HandlerRegistry
}

func NewMarkPurchasedHandler(
	repo domain.OrderPartRepository,
	txScope transaction.Scope,
	handlerRegistry eventbus.HandlerRegistry,
) *MarkPurchasedHandler {
	return &MarkPurchasedHandler{
		repo:            repo,
		txScope:         txScope,
		handlerRegistry: handlerRegistry,
	}
}

func (h *MarkPurchasedHandler) Handle(ctx context.Context, cmd MarkPurchasedCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	at := cmd.PurchasedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		publisher := eventbus.NewTransactionalPublisher(h.handlerRegistry, 10)

		part, err := h.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("finding order part: %w", err)
		}

		if err := part.MarkPurchased(at); err != nil {
			return err
		}

		if err := h.repo.SetPurchasedDate(ctx, id, at); err != nil {
			return fmt.Errorf("saving purchase date: %w", err)
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
