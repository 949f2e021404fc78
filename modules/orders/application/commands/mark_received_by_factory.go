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

// MarkReceivedByFactoryCommand records factory receipt of the part,
// completing the workflow. A zero ReceivedAt defaults to now.
type MarkReceivedByFactoryCommand struct {
	OrderPartID string
	ReceivedAt  time.Time
}

type MarkReceivedByFactoryHandler struct {
	repo            domain.OrderPartRepository
	txScope         transaction.Scope
	handlerRegistry eventbus.HandlerRegistry
}

func NewMarkReceivedByFactoryHandler(
	repo domain.OrderPartRepository,
	txScope transaction.Scope,
	handlerRegistry eventbus.HandlerRegistry,
) *MarkReceivedByFactoryHandler {
	return &MarkReceivedByFactoryHandler{
		repo:            repo,
		txScope:         txScope,
		handlerRegistry: handlerRegistry,
	}
}

func (h *MarkReceivedByFactoryHandler) Handle(ctx context.Context, cmd MarkReceivedByFactoryCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	at := cmd.ReceivedAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		publisher := eventbus.NewTransactionalPublisher(h.handlerRegistry, 10)

		part, err := h.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("finding order part: %w", err)
		}

		if err := part.MarkReceivedByFactory(at); err != nil {
			return err
		}

		if err := h.repo.SetReceivedByFactoryDate(ctx, id, at); err != nil {
			return fmt.Errorf("saving received date: %w", err)
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
