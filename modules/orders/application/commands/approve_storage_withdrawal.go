package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// ApproveStorageWithdrawalCommand allows the requested quantity to be taken
// from factory storage instead of purchased.
type ApproveStorageWithdrawalCommand struct {
	OrderPartID string
}

type ApproveStorageWithdrawalHandler struct {
	repo domain.OrderPartRepository
}

func NewApproveStorageWithdrawalHandler(repo domain.OrderPartRepository) *ApproveStorageWithdrawalHandler {
	return &ApproveStorageWithdrawalHandler{repo: repo}
}

func (h *ApproveStorageWithdrawalHandler) Handle(ctx context.Context, cmd ApproveStorageWithdrawalCommand) error {
	id, err := types.ParseOrderPartID(cmd.OrderPartID)
	if err != nil {
		return fmt.Errorf("invalid order part ID: %w", err)
	}

	if err := h.repo.SetStorageWithdrawalApproved(ctx, id, true); err != nil {
		return fmt.Errorf("saving storage withdrawal approval: %w", err)
	}

	return nil
}
