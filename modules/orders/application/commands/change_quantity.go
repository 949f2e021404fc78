package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// ChangeQuantityCommand adjusts the requested quantity of an order part.
type ChangeQuantityCommand struct {
	OrderPartID string
	Quantity    int
}

type ChangeQuantityHandler struct {
	repo domain.OrderPartRepository
}

func NewChangeQuantityHandler(repo domain.OrderPartRepository) *ChangeQuantityHandler {
	return &ChangeQuantityHandler{repo: repo}
}

func (h *ChangeQuantityHandler) Handle(ctx context.Context, cmd ChangeQuantityCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	part, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("finding order part: %w", err)
	}

	if err := part.ChangeQuantity(cmd.Quantity); err != nil {
		return err
	}

	if err := h.repo.SetQuantity(ctx, id, cmd.Quantity); err != nil {
		return fmt.Errorf("saving quantity: %w", err)
	}

	return nil
}
