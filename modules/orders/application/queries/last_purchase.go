package queries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// LastPurchaseDTO carries the most recent purchase of a part, used to prefill
// the quotation form with the last known cost.
type LastPurchaseDTO struct {
	PartID      string    `json:"part_id"`
	UnitCost    float64   `json:"unit_cost"`
	PurchasedAt time.Time `json:"purchased_at"`
}

// GetLastPurchaseQuery retrieves the latest purchase record for a part.
type GetLastPurchaseQuery struct {
	PartID string
}

type GetLastPurchaseHandler struct {
	repo domain.OrderPartRepository
}

func NewGetLastPurchaseHandler(repo domain.OrderPartRepository) *GetLastPurchaseHandler {
	return &GetLastPurchaseHandler{repo: repo}
}

// Handle returns nil without error when the part has never been purchased;
// an empty prefill is not a failure.
func (h *GetLastPurchaseHandler) Handle(ctx context.Context, query GetLastPurchaseQuery) (*LastPurchaseDTO, error) {
	partID, err := types.ParsePartID(query.PartID)
	if err != nil {
		return nil, fmt.Errorf("invalid part ID: %w", err)
	}

	record, err := h.repo.FindLastPurchase(ctx, partID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderPartNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &LastPurchaseDTO{
		PartID:      query.PartID,
		UnitCost:    record.UnitCost,
		PurchasedAt: record.PurchasedAt,
	}, nil
}
