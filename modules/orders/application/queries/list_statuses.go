package queries

import (
	"context"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/orders/domain"
)

// StatusDTO is one entry of the workflow status catalog.
type StatusDTO struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Ordinal int    `json:"comp_no"`
}

// ListStatusesQuery retrieves the full status catalog in workflow order.
type ListStatusesQuery struct{}

type ListStatusesHandler struct {
	statuses domain.StatusRepository
}

func NewListStatusesHandler(statuses domain.StatusRepository) *ListStatusesHandler {
	return &ListStatusesHandler{statuses: statuses}
}

func (h *ListStatusesHandler) Handle(ctx context.Context, _ ListStatusesQuery) ([]StatusDTO, error) {
	catalog, err := h.statuses.ListStatuses(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]StatusDTO, len(catalog))
	for i, status := range catalog {
		dtos[i] = StatusDTO{
			ID:      status.ID,
			Name:    status.Name,
			Ordinal: status.Ordinal,
		}
	}
	return dtos, nil
}
