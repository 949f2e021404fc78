// Package domain contains the machines bounded context model.
package domain

import (
	"time"

	"github.com/Abid-Al-Labib/AkbarCottonMillTool/modules/shared/types"
)

// Machine is a piece of factory equipment tracked by section and running state.
type Machine struct {
	id               types.MachineID
	name             string
	machineType      string
	factorySectionID int64
	isRunning        bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewMachine(name, machineType string, factorySectionID int64) (*Machine, error) {
	if name == "" {
		return nil, ErrMachineNameRequired
	}
	now := time.Now().UTC()
	return &Machine{
		id:               types.NewMachineID(),
		name:             name,
		machineType:      machineType,
		factorySectionID: factorySectionID,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstituteMachine rebuilds a machine from persistence.
func ReconstituteMachine(
	id types.MachineID,
	name, machineType string,
	factorySectionID int64,
	isRunning bool,
	createdAt, updatedAt time.Time,
) *Machine {
	return &Machine{
		id:               id,
		name:             name,
		machineType:      machineType,
		factorySectionID: factorySectionID,
		isRunning:        isRunning,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (m *Machine) ID() types.MachineID     { return m.id }
func (m *Machine) Name() string            { return m.name }
func (m *Machine) MachineType() string     { return m.machineType }
func (m *Machine) FactorySectionID() int64 { return m.factorySectionID }
func (m *Machine) IsRunning() bool         { return m.isRunning }
func (m *Machine) CreatedAt() time.Time    { return m.createdAt }
func (m *Machine) UpdatedAt() time.Time    { return m.updatedAt }

// SetRunning flips the running flag.
func (m *Machine) SetRunning(running bool) {
	m.isRunning = running
	m.updatedAt = time.Now().UTC()
}
