package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// UpdateOfficeNoteCommand replaces the head office note on an order part.
type UpdateOfficeNoteCommand struct {
	OrderPartID string
	Note        string
}

type UpdateOfficeNoteHandler struct {
	repo domain.OrderPartRepository
}

func NewUpdateOfficeNoteHandler(repo domain.OrderPartRepository) *UpdateOfficeNoteHandler {
	return &UpdateOfficeNoteHandler{repo: repo}
}

func (h *UpdateOfficeNoteHandler) Handle(ctx context.Context, cmd UpdateOfficeNoteCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	if err := h.repo.SetOfficeNote(ctx, id, cmd.Note); err != nil {
		return fmt.Errorf("saving office note: %w", err)
	}

	return nil
}
