// Package commands contains write use cases for the orders module.
// Each handler performs one targeted write against a single order part;
// there is no multi-field transactionality beyond the store's own
// per-statement atomicity.
package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// CreateOrderPartCommand requests a new order line for a part.
type CreateOrderPartCommand struct {
	OrderID                   string
	PartID                    string
	Quantity                  int
	SampleSentToOffice        bool
	Note                      *string
	InStorage                 bool
	ApprovedStorageWithdrawal bool
}

type CreateOrderPartHandler struct {
	repo domain.OrderPartRepository
}

func NewCreateOrderPartHandler(repo domain.OrderPartRepository) *CreateOrderPartHandler {
	return &CreateOrderPartHandler{repo: repo}
}

// Handle creates the order part and returns its ID.
func (h *CreateOrderPartHandler) Handle(ctx context.Context, cmd CreateOrderPartCommand) (string, error) {
	orderID, err := types.ParseOrderID(cmd.OrderID)
	if err != nil {
		return "", fmt.Errorf("invalid order ID: %w", err)
	}
	partID, err := types.ParsePartID(cmd.PartID)
	if err != nil {
		return "", fmt.Errorf("invalid part ID: %w", err)
	}

	part, err := domain.NewOrderPart(orderID, partID, cmd.Quantity, cmd.SampleSentToOffice, cmd.Note, cmd.InStorage, cmd.ApprovedStorageWithdrawal)
	if err != nil {
		return "", err
	}

	if err := h.repo.Insert(ctx, part); err != nil {
		return "", fmt.Errorf("inserting order part: %w", err)
	}

	return part.ID().String(), nil
}
