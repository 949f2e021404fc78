package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// AddMachinePartQtyCommand accumulates a delta onto the stored quantity of a
// part on a machine. A missing record counts as zero and is created.
//
// This is a read-then-upsert without coordination; concurrent adders are
// last-write-wins, same as every other write in the system.
type AddMachinePartQtyCommand struct {
	MachineID string
	PartID    string
	PartName  string
	Delta     int
}

type AddMachinePartQtyHandler struct {
	repo domain.MachinePartRepository
}

func NewAddMachinePartQtyHandler(repo domain.MachinePartRepository) *AddMachinePartQtyHandler {
	return &AddMachinePartQtyHandler{repo: repo}
}

func (h *AddMachinePartQtyHandler) Handle(ctx context.Context, cmd AddMachinePartQtyCommand) error {
	machineID, err := types.ParseMachineID(cmd.MachineID)
	if err != nil {
		return fmt.Errorf("invalid machine ID: %w", err)
	}
	partID, err := types.ParsePartID(cmd.PartID)
	if err != nil {
		return fmt.Errorf("invalid part ID: %w", err)
	}

	part, err := h.repo.Find(ctx, machineID, partID)
	if errors.Is(err, domain.ErrMachinePartNotFound) {
		part, err = domain.NewMachinePart(machineID, partID, cmd.PartName, 0)
	}
	if err != nil {
		return err
	}

	if err := part.AddQuantity(cmd.Delta); err != nil {
		return err
	}

	if err := h.repo.Upsert(ctx, part); err != nil {
		return fmt.Errorf("saving machine part: %w", err)
	}
	return nil
}
