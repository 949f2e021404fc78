package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// MarkSampleReceivedCommand records that the head office received the sample
// sent along with the order request.
type MarkSampleReceivedCommand struct {
	OrderPartID string
}

type MarkSampleReceivedHandler struct {
	repo domain.OrderPartRepository
}

func NewMarkSampleReceivedHandler(repo domain.OrderPartRepository) *MarkSampleReceivedHandler {
	return &MarkSampleReceivedHandler{repo: repo}
}

func (h *MarkSampleReceivedHandler) Handle(ctx context.Context, cmd MarkSampleReceivedCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	part, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("finding order part: %w", err)
	}

	if err := part.MarkSampleReceived(); err != nil {
		return err
	}

	if err := h.repo.SetSampleReceived(ctx, id, true); err != nil {
		return fmt.Errorf("saving sample receipt: %w", err)
	}

	return nil
}
