// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/mealwiser/internal/models"
)

var (
	// ErrNotFound is returned when a delete or update references a missing record.
	ErrNotFound = errors.New("record not found")

	// ErrUnavailable is returned when the backing service cannot be reached.
	ErrUnavailable = errors.New("store unavailable")
)

// DepositFilter narrows ListDeposits. Empty fields match everything.
type DepositFilter struct {
	EmployeeID string
	Month      string // "YYYY-MM"
}

// Match reports whether d passes the filter.
func (f DepositFilter) Match(d models.Deposit) bool {
	return (f.EmployeeID == "" || d.EmployeeID == f.EmployeeID) &&
		(f.Month == "" || d.Month == f.Month)
}

// MealEntryFilter narrows ListMealEntries. An empty date matches everything.
type MealEntryFilter struct {
	Date string // "YYYY-MM-DD"
}

// Match reports whether m passes the filter.
func (f MealEntryFilter) Match(m models.MealEntry) bool {
	return f.Date == "" || m.Date == f.Date
}

// MealCostFilter narrows ListMealCosts. Empty fields match everything.
type MealCostFilter struct {
	EmployeeID string
	Month      string // "YYYY-MM", matched against the cost's date
}

// Match reports whether c passes the filter.
func (f MealCostFilter) Match(c models.MealCost) bool {
	return (f.EmployeeID == "" || c.EmployeeID == f.EmployeeID) &&
		(f.Month == "" || models.MonthOf(c.Date) == f.Month)
}

// Store defines the record store for the four ledger record kinds.
// This abstraction allows swapping storage backends (SQLite, local files, a remote
// record service) without changing the ledger engine.
//
// Stores do not enforce referential integrity between kinds.
type Store interface {
	// ListEmployees returns every employee, oldest first.
	ListEmployees(ctx context.Context) ([]models.Employee, error)

	// CreateEmployee persists a new employee.
	// Empty ID and CreatedAt fields are populated by the store.
	CreateEmployee(ctx context.Context, emp *models.Employee) error

	// DeleteEmployee removes an employee. Returns ErrNotFound if it does not exist.
	DeleteEmployee(ctx context.Context, id string) error

	ListDeposits(ctx context.Context, filter DepositFilter) ([]models.Deposit, error)

	// CreateDeposit persists a new deposit.
	// Empty ID and Date fields are populated by the store.
	CreateDeposit(ctx context.Context, dep *models.Deposit) error

	DeleteDeposit(ctx context.Context, id string) error

	ListMealEntries(ctx context.Context, filter MealEntryFilter) ([]models.MealEntry, error)

	// CreateMealEntry persists a new meal entry. An empty ID is populated by the store.
	CreateMealEntry(ctx context.Context, entry *models.MealEntry) error

	// UpdateMealEntry replaces the lunch and dinner flags of an entry and returns the
	// stored record. Returns ErrNotFound if the entry does not exist.
	UpdateMealEntry(ctx context.Context, id string, lunch, dinner int) (*models.MealEntry, error)

	DeleteMealEntry(ctx context.Context, id string) error

	ListMealCosts(ctx context.Context, filter MealCostFilter) ([]models.MealCost, error)

	// CreateMealCost persists a new meal cost. An empty ID is populated by the store.
	CreateMealCost(ctx context.Context, cost *models.MealCost) error

	DeleteMealCost(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
