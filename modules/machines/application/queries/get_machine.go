package queries

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// GetMachineQuery retrieves a machine by ID.
type GetMachineQuery struct {
	MachineID string
}

type GetMachineHandler struct {
	repo domain.MachineRepository
}

func NewGetMachineHandler(repo domain.MachineRepository) *GetMachineHandler {
	return &GetMachineHandler{repo: repo}
}

func (h *GetMachineHandler) Handle(ctx context.Context, query GetMachineQuery) (*MachineDTO, error) {
	id, err := types.ParseMachineID(query.MachineID)
	if err != nil {
		return nil, fmt.Errorf("invalid machine ID: %w", err)
	}

	machine, err := h.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMachineDTO(machine), nil
}
