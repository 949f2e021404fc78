// Package types provides shared value objects and type definitions
// used across multiple modules (Shared Kernel pattern).
package types

import (
	"github.com/google/uuid"
)

// OrderID represents a unique identifier for an order.
// Using a distinct type prevents mixing up different ID types.
type OrderID struct {
	value string
}

func NewOrderID() OrderID {
	return OrderID{value: uuid.New().String()}
}

func ParseOrderID(s string) (OrderID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return OrderID{}, ErrInvalidID
	}
	return OrderID{value: s}, nil
}

func (id OrderID) String() string { return id.value }
func (id OrderID) IsZero() bool   { return id.value == "" }

// OrderPartID represents a unique identifier for one order line item.
type OrderPartID struct {
	value string
}

func NewOrderPartID() OrderPartID {
	return OrderPartID{value: uuid.New().String()}
}

func ParseOrderPartID(s string) (OrderPartID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return OrderPartID{}, ErrInvalidID
	}
	return OrderPartID{value: s}, nil
}

func (id OrderPartID) String() string { return id.value }
func (id OrderPartID) IsZero() bool   { return id.value == "" }

// PartID represents a unique identifier for a part in the parts catalog.
type PartID struct {
	value string
}

func NewPartID() PartID {
	return PartID{value: uuid.New().String()}
}

func ParsePartID(s string) (PartID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return PartID{}, ErrInvalidID
	}
	return PartID{value: s}, nil
}

func (id PartID) String() string { return id.value }
func (id PartID) IsZero() bool   { return id.value == "" }

// MachineID represents a unique identifier for a machine.
type MachineID struct {
	value string
}

func NewMachineID() MachineID {
	return MachineID{value: uuid.New().String()}
}

func ParseMachineID(s string) (MachineID, error) {
	if _, err := uuid.Parse(s); err != nil {
		return MachineID{}, ErrInvalidID
	}
	return MachineID{value: s}, nil
}

func (id MachineID) String() string { return id.value }
func (id MachineID) IsZero() bool   { return id.value == "" }
