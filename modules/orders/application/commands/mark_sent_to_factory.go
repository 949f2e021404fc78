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

// MarkSentToFactoryCommand records when the office dispatched the part,
// completing the Purchase Complete stage. A zero SentAt defaults to now.
type MarkSentToFactoryCommand struct {
	OrderPartID string
	SentAt      time.Time
}

type MarkSentToFactoryHandler struct {
	repo            domain.OrderPartRepository
	txScope         transaction.Scope
	handlerRegistry eventbus.HandlerRegistry
}

func NewMarkSentToFactoryHandler(
	repo domain.OrderPartRepository,
	txScope transaction.Scope,
	handlerRegistry eventbus.HandlerRegistry,
) *MarkSentToFactoryHandler {
	return &MarkSentToFactoryHandler{
		repo:            repo,
		txScope:         txScope,
		handlerRegistry: handlerRegistry,
	}
}

func (h *MarkSentToFactoryHandler) Handle(ctx context.Context, cmd MarkSentToFactoryCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	at := cmd.SentAt
	if at.IsZero() {
		at = time.Now().UTC()
	}

	return h.txScope.Execute(ctx, func(ctx context.Context) error {
		publisher := eventbus.NewTransactionalPublisher(h.handlerRegistry, 10)

		part, err := h.repo.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("finding order part: %w", err)
		}

		if err := part.MarkSentToFactory(at); err != nil {
			return err
		}

		if err := h.repo.SetSentByOfficeDate(ctx, id, at); err != nil {
			return fmt.Errorf("saving sent date: %w", err)
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
