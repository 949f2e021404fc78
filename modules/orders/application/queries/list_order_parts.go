package queries

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// OrderPartListDTO contains the parts belonging to a single order.
type OrderPartListDTO struct {
	OrderID    string          `json:"order_id"`
	Parts      []*OrderPartDTO `json:"parts"`
	TotalCount int             `json:"total_count"`
}

// ListOrderPartsQuery retrieves every part line of one order.
type ListOrderPartsQuery struct {
	OrderID string
}

type ListOrderPartsHandler struct {
	repo domain.OrderPartRepository
}

func NewListOrderPartsHandler(repo domain.OrderPartRepository) *ListOrderPartsHandler {
	return &ListOrderPartsHandler{repo: repo}
}

func (h *ListOrderPartsHandler) Handle(ctx context.Context, query ListOrderPartsQuery) (*OrderPartListDTO, error) {
	orderID, err := types.ParseOrderID(query.OrderID)
	if err != nil {
		return nil, fmt.Errorf("invalid order ID: %w", err)
	}

	parts, err := h.repo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*OrderPartDTO, len(parts))
	for i, part := range parts {
		dtos[i] = toOrderPartDTO(part)
	}

	return &OrderPartListDTO{
		OrderID:    query.OrderID,
		Parts:      dtos,
		TotalCount: len(dtos),
	}, nil
}
