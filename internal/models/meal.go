package models

import (
	"fmt"
	"math"
)

// MealEntry records whether an employee had lunch and/or dinner on a day.
// There is at most one entry per (EmployeeID, Date).
type MealEntry struct {
	// ID is the unique identifier for the entry (UUID format).
	ID string `json:"id"`

	// EmployeeID is the participating employee.
	EmployeeID string `json:"employeeId"`

	// Date is the day ("YYYY-MM-DD").
	Date string `json:"date"`

	// Lunch is 1 when the employee had lunch, 0 otherwise.
	Lunch int `json:"lunch"`

	// Dinner is 1 when the employee had dinner, 0 otherwise.
	Dinner int `json:"dinner"`
}

// MealCount returns the number of meal units of the entry (0, 1 or 2).
func (m *MealEntry) MealCount() int {
	return m.Lunch + m.Dinner
}

// Validate checks the caller-supplied fields.
func (m *MealEntry) Validate() error {
	if m.EmployeeID == "" {
		return fmt.Errorf("%w: meal entry has no employee", ErrInvalidInput)
	}
	if m.Lunch != 0 && m.Lunch != 1 {
		return fmt.Errorf("%w: lunch must be 0 or 1, got %d", ErrInvalidInput, m.Lunch)
	}
	if m.Dinner != 0 && m.Dinner != 1 {
		return fmt.Errorf("%w: dinner must be 0 or 1, got %d", ErrInvalidInput, m.Dinner)
	}
	return ValidateDate(m.Date)
}

// MealCost is one employee's derived cost for one day.
// CostPerMeal * MealCount == TotalMealCost.
type MealCost struct {
	// ID is the unique identifier for the cost record (UUID format).
	ID string `json:"id"`

	// EmployeeID is the employee being charged.
	EmployeeID string `json:"employeeId"`

	// Date is the day ("YYYY-MM-DD").
	Date string `json:"date"`

	// TotalMealCost is this employee's share of the day's cost.
	TotalMealCost float64 `json:"totalMealCost"`

	// MealCount is the number of meal units the share covers.
	MealCount int `json:"mealCount"`

	// CostPerMeal is the day's cost of a single meal unit.
	CostPerMeal float64 `json:"costPerMeal"`
}

// Validate checks the caller-supplied fields.
func (c *MealCost) Validate() error {
	if c.EmployeeID == "" {
		return fmt.Errorf("%w: meal cost has no employee", ErrInvalidInput)
	}
	if c.MealCount < 0 {
		return fmt.Errorf("%w: meal count must not be negative, got %d", ErrInvalidInput, c.MealCount)
	}
	for _, v := range []float64{c.TotalMealCost, c.CostPerMeal} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: meal cost amounts must be non-negative, got %v", ErrInvalidInput, v)
		}
	}
	return ValidateDate(c.Date)
}

// BoolToMeal converts a participation flag to its stored 0/1 form.
func BoolToMeal(b bool) int {
	if b {
		return 1
	}
	return 0
}
