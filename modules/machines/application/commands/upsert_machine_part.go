package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// UpsertMachinePartCommand sets the quantity of a part on a machine,
// inserting or replacing the record on the composite (machine, part) key.
type UpsertMachinePartCommand struct {
	MachineID string
	PartID    string
	PartName  string
	Quantity  int
}

type UpsertMachinePartHandler struct {
	repo domain.MachinePartRepository
}

func NewUpsertMachinePartHandler(repo domain.MachinePartRepository) *UpsertMachinePartHandler {
	return &UpsertMachinePartHandler{repo: repo}
}

func (h *UpsertMachinePartHandler) Handle(ctx context.Context, cmd UpsertMachinePartCommand) error {
	machineID, err := types.ParseMachineID(cmd.MachineID)
	if err != nil {
		return fmt.Errorf("invalid machine ID: %w", err)
	}
	partID, err := types.ParsePartID(cmd.PartID)
	if err != nil {
		return fmt.Errorf("invalid part ID: %w", err)
	}

	part, err := domain.NewMachinePart(machineID, partID, cmd.PartName, cmd.Quantity)
	if err != nil {
		return err
	}

	if err := h.repo.Upsert(ctx, part); err != nil {
		return fmt.Errorf("saving machine part: %w", err)
	}
	return nil
}
