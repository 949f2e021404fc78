package domain

import "errors"

var (
	ErrMachineNotFound     = errors.New("machine not found")
	ErrMachinePartNotFound = errors.New("machine part not found")
	ErrMachineNameRequired = errors.New("machine name is required")
	ErrInvalidQuantity     = errors.New("quantity must not be negative")
)
