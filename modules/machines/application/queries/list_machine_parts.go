package queries

import (
	"context"
	"strings"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
)

// MachinePartDTO is a read model for a machine part quantity record.
type MachinePartDTO struct {
	MachineID string `json:"machine_id"`
	PartID    string `json:"part_id"`
	PartName  string `json:"part_name"`
	Quantity  int    `json:"qty"`
}

// ListMachinePartsQuery retrieves machine part records, optionally narrowed
// by machine, part, or part name.
type ListMachinePartsQuery struct {
	MachineID *string
	PartID    *string
	PartName  string
}

type ListMachinePartsHandler struct {
	repo domain.MachinePartRepository
}

func NewListMachinePartsHandler(repo domain.MachinePartRepository) *ListMachinePartsHandler {
	return &ListMachinePartsHandler{repo: repo}
}

func (h *ListMachinePartsHandler) Handle(ctx context.Context, query ListMachinePartsQuery) ([]*MachinePartDTO, error) {
	parts, err := h.repo.List(ctx, domain.MachinePartFilter{
		MachineID: query.MachineID,
		PartID:    query.PartID,
	})
	if err != nil {
		return nil, err
	}

	// Name matching is a substring filter over the fetched rows, the way
	// the dashboard search box behaves.
	name := strings.ToLower(query.PartName)
	dtos := make([]*MachinePartDTO, 0, len(parts))
	for _, part := range parts {
		if name != "" && !strings.Contains(strings.ToLower(part.PartName()), name) {
			continue
		}
		dtos = append(dtos, &MachinePartDTO{
			MachineID: part.MachineID().String(),
			PartID:    part.PartID().String(),
			PartName:  part.PartName(),
			Quantity:  part.Quantity(),
		})
	}
	return dtos, nil
}
