package models

import (
	"fmt"
	"strings"
)

// EmployeeType classifies an employee. It is descriptive only: it has no effect on
// cost splitting or balances.
type EmployeeType string

const (
	EmployeeRegular   EmployeeType = "regular"
	EmployeeIrregular EmployeeType = "irregular"
	EmployeeGuest     EmployeeType = "guest"
)

// Valid reports whether t is one of the known employee types.
func (t EmployeeType) Valid() bool {
	switch t {
	case EmployeeRegular, EmployeeIrregular, EmployeeGuest:
		return true
	default:
		return false
	}
}

// Employee represents a person registered in the ledger.
type Employee struct {
	// ID is the unique identifier for the employee (UUID format).
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Type is one of regular, irregular or guest.
	Type EmployeeType `json:"type"`

	// CreatedAt is the Unix timestamp when the employee was added.
	CreatedAt int64 `json:"createdAt"`
}

// Validate checks the caller-supplied fields.
func (e *Employee) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: employee name is empty", ErrInvalidInput)
	}
	if len(e.Name) > 255 {
		return fmt.Errorf("%w: employee name too long (max 255 characters)", ErrInvalidInput)
	}
	if !e.Type.Valid() {
		return fmt.Errorf("%w: unknown employee type %q", ErrInvalidInput, e.Type)
	}
	return nil
}
