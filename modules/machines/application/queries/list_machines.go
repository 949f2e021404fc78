// Package queries contains read use cases for the machines module.
package queries

import (
	"context"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
)

// MachineDTO is a read model for machine data.
type MachineDTO struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	FactorySectionID int64  `json:"factory_section_id"`
	IsRunning        bool   `json:"is_running"`
}

// MachineListDTO contains a paginated list of machines.
type MachineListDTO struct {
	Machines   []*MachineDTO `json:"machines"`
	TotalCount int           `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
}

// ListMachinesQuery retrieves one page of machines, optionally filtered by
// factory section and sorted by running state.
type ListMachinesQuery struct {
	FactorySectionID *int64
	Page             int
	Limit            int
	RunningSort      domain.SortOrder
}

type ListMachinesHandler struct {
	repo domain.MachineRepository
}

func NewListMachinesHandler(repo domain.MachineRepository) *ListMachinesHandler {
	return &ListMachinesHandler{repo: repo}
}

func (h *ListMachinesHandler) Handle(ctx context.Context, query ListMachinesQuery) (*MachineListDTO, error) {
	params := domain.NewMachineQuery().
		WithPage(query.Page, query.Limit).
		WithRunningSort(query.RunningSort)
	if query.FactorySectionID != nil {
		params = params.WithFactorySection(*query.FactorySectionID)
	}

	machines, total, err := h.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	dtos := make([]*MachineDTO, len(machines))
	for i, machine := range machines {
		dtos[i] = toMachineDTO(machine)
	}

	return &MachineListDTO{
		Machines:   dtos,
		TotalCount: total,
		Page:       params.Page(),
		Limit:      params.Limit(),
	}, nil
}

func toMachineDTO(machine *domain.Machine) *MachineDTO {
	return &MachineDTO{
		ID:               machine.ID().String(),
		Name:             machine.Name(),
		Type:             machine.MachineType(),
		FactorySectionID: machine.FactorySectionID(),
		IsRunning:        machine.IsRunning(),
	}
}
