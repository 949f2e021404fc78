package queries

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// LinkedOrderListDTO lists every order part that references a given part,
// across all orders. The dashboard uses it to show a part's order history.
type LinkedOrderListDTO struct {
	PartID     string          `json:"part_id"`
	Parts      []*OrderPartDTO `json:"parts"`
	TotalCount int             `json:"total_count"`
}

// ListLinkedOrdersQuery retrieves the order parts linked to one part.
type ListLinkedOrdersQuery struct {
	PartID string
}

type ListLinkedOrdersHandler struct {
	repo domain.OrderPartRepository
}

func NewListLinkedOrdersHandler(repo domain.OrderPartRepository) *ListLinkedOrdersHandler {
	return &ListLinkedOrdersHandler{repo: repo}
}

func (h *ListLinkedOrdersHandler) Handle(ctx context.Context, query ListLinkedOrdersQuery) (*LinkedOrderListDTO, error) {
	partID, err := types.ParsePartID(query.PartID)
	if err != nil {
		return nil, fmt.Errorf("invalid part ID: %w", err)
	}

	parts, err := h.repo.FindByPartID(ctx, partID)
	if err != nil {
		return nil, err
	}

	dtos := make([]*OrderPartDTO, len(parts))
	for i, part := range parts {
		dtos[i] = toOrderPartDTO(part)
	}

	return &LinkedOrderListDTO{
		PartID:     query.PartID,
		Parts:      dtos,
		TotalCount: len(dtos),
	}, nil
}
