// Package commands contains write use cases for the machines module.
package commands

import (
	"context"
	"fmt"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/machines/domain"
	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// SetMachineRunningCommand flips a machine's running flag.
type SetMachineRunningCommand struct {
	MachineID string
	Running   bool
}

type SetMachineRunningHandler struct {
	repo domain.MachineRepository
}

func NewSetMachineRunningHandler(repo domain.MachineRepository) *SetMachineRunningHandler {
	return &SetMachineRunningHandler{repo: repo}
}

func (h *SetMachineRunningHandler) Handle(ctx context.Context, cmd SetMachineRunningCommand) error {
	id, err := types.ParseMachineID(cmd.MachineID)
	if err != nil {
		return fmt.Errorf("invalid machine ID: %w", err)
	}

	// Existence check so a missing machine surfaces as not-found rather
	// than a silent no-op write.
	if _, err := h.repo.FindByID(ctx, id); err != nil {
		return err
	}

	if err := h.repo.SetRunning(ctx, id, cmd.Running); err != nil {
		return fmt.Errorf("saving running state: %w", err)
	}
	return nil
}
