package models

import (
	"fmt"
	"math"
)

// Deposit represents money credited to an employee for a calendar month.
// Deposits are created and deleted, never mutated.
type Deposit struct {
	// ID is the unique identifier for the deposit (UUID format).
	ID string `json:"id"`

	// EmployeeID is the employee the money is credited to.
	EmployeeID string `json:"employeeId"`

	// Amount is the credited amount.
	Amount float64 `json:"amount"`

	// Month is the calendar month the deposit counts towards ("YYYY-MM").
	Month string `json:"month"`

	// Date is the Unix timestamp when the deposit was recorded.
	Date int64 `json:"date"`
}

// Validate checks the caller-supplied fields.
func (d *Deposit) Validate() error {
	if d.EmployeeID == "" {
		return fmt.Errorf("%w: deposit has no employee", ErrInvalidInput)
	}
	if math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) || d.Amount <= 0 {
		return fmt.Errorf("%w: deposit amount must be positive, got %v", ErrInvalidInput, d.Amount)
	}
	return ValidateMonth(d.Month)
}
