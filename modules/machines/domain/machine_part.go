package domain

import (
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// MachinePart records how many units of a part are installed on a machine.
// Identity is the composite (machine, part) key; writes are upserts on it.
type MachinePart struct {
	machineID types.MachineID
	partID    types.PartID
	partName  string
	qty       int
	updatedAt time.Time
}

func NewMachinePart(machineID types.MachineID, partID types.PartID, partName string, qty int) (*MachinePart, error) {
	if qty < 0 {
		return nil, ErrInvalidQuantity
	}
	return &MachinePart{
		machineID: machineID,
		partID:    partID,
		partName:  partName,
		qty:       qty,
		updatedAt: time.Now().UTC(),
	}, nil
}

// ReconstituteMachinePart rebuilds a machine part from persistence.
func ReconstituteMachinePart(machineID types.MachineID, partID types.PartID, partName string, qty int, updatedAt time.Time) *MachinePart {
	return &MachinePart{
		machineID: machineID,
		partID:    partID,
		partName:  partName,
		qty:       qty,
		updatedAt: updatedAt,
	}
}

func (p *MachinePart) MachineID() types.MachineID { return p.machineID }
func (p *MachinePart) PartID() types.PartID       { return p.partID }
func (p *MachinePart) PartName() string           { return p.partName }
func (p *MachinePart) Quantity() int              { return p.qty }
func (p *MachinePart) UpdatedAt() time.Time       { return p.updatedAt }

// AddQuantity accumulates onto the existing quantity. Negative deltas are
// allowed for corrections but may not take the total below zero.
func (p *MachinePart) AddQuantity(delta int) error {
	if p.qty+delta < 0 {
		return ErrInvalidQuantity
	}
	p.qty += delta
	p.updatedAt = time.Now().UTC()
	return nil
}
