package domain

import (
	"context"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// MachineRepository defines persistence operations for machines.
type MachineRepository interface {
	Insert(ctx context.Context, machine *Machine) error
	FindByID(ctx context.Context, id types.MachineID) (*Machine, error)
	// List returns one page of machines matching the query plus the total
	// match count across all pages.
	List(ctx context.Context, query MachineQuery) ([]*Machine, int, error)
	SetRunning(ctx context.Context, id types.MachineID, running bool) error
	// CountByRunning counts machines with the given running state.
	CountByRunning(ctx context.Context, running bool) (int64, error)
}

// MachinePartRepository defines persistence for machine part quantities.
type MachinePartRepository interface {
	// Upsert writes the record keyed by (machine, part), inserting or
	// replacing in one statement.
	Upsert(ctx context.Context, part *MachinePart) error
	// Find returns the record for the composite key, or
	// ErrMachinePartNotFound.
	Find(ctx context.Context, machineID types.MachineID, partID types.PartID) (*MachinePart, error)
	List(ctx context.Context, filter MachinePartFilter) ([]*MachinePart, error)
}
