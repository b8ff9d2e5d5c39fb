// Package local provides a JSON-file implementation of the storage.Store interface,
// used as the session fallback when the remote record service cannot be reached.
//
// Each record kind lives in its own file under the data directory, as a JSON array:
// employees.json, deposits.json, mealEntries.json and mealCosts.json.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
)

// File keys for each record kind.
const (
	EmployeesKey   = "employees"
	DepositsKey    = "deposits"
	MealEntriesKey = "mealEntries"
	MealCostsKey   = "mealCosts"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps every record in memory and writes the affected kind back to disk after
// each mutation. A failed write leaves both the file and the in-memory state as they
// were before the call.
type Store struct {
	dir string
	now func() time.Time

	mu          sync.Mutex
	employees   []models.Employee
	deposits    []models.Deposit
	mealEntries []models.MealEntry
	mealCosts   []models.MealCost
}

// New opens the store in dir, creating the directory if needed.
// Missing files read as empty; unreadable or corrupt files read as empty with a warning.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	s := &Store{dir: dir, now: time.Now}
	s.employees = readKind[models.Employee](s.path(EmployeesKey))
	s.deposits = readKind[models.Deposit](s.path(DepositsKey))
	s.mealEntries = readKind[models.MealEntry](s.path(MealEntriesKey))
	s.mealCosts = readKind[models.MealCost](s.path(MealCostsKey))
	return s, nil
}

// Close is a no-op; every mutation is already on disk.
func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *Store) ListEmployees(_ context.Context) ([]models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Employee{}, s.employees...), nil
}

func (s *Store) CreateEmployee(_ context.Context, emp *models.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	if emp.CreatedAt == 0 {
		emp.CreatedAt = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.Employee{}, s.employees...), *emp)
	if err := writeKind(s.path(EmployeesKey), next); err != nil {
		return err
	}
	s.employees = next
	return nil
}

func (s *Store) DeleteEmployee(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.employees, id, func(e models.Employee) string { return e.ID })
	if err != nil {
		return err
	}
	if err := writeKind(s.path(EmployeesKey), next); err != nil {
		return err
	}
	s.employees = next
	return nil
}

func (s *Store) ListDeposits(_ context.Context, filter storage.DepositFilter) ([]models.Deposit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Deposit{}
	for _, d := range s.deposits {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) CreateDeposit(_ context.Context, dep *models.Deposit) error {
	if dep.ID == "" {
		dep.ID = uuid.New().String()
	}
	if dep.Date == 0 {
		dep.Date = s.now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.Deposit{}, s.deposits...), *dep)
	if err := writeKind(s.path(DepositsKey), next); err != nil {
		return err
	}
	s.deposits = next
	return nil
}

func (s *Store) DeleteDeposit(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.deposits, id, func(d models.Deposit) string { return d.ID })
	if err != nil {
		return err
	}
	if err := writeKind(s.path(DepositsKey), next); err != nil {
		return err
	}
	s.deposits = next
	return nil
}

func (s *Store) ListMealEntries(_ context.Context, filter storage.MealEntryFilter) ([]models.MealEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.MealEntry{}
	for _, m := range s.mealEntries {
		if filter.Match(m) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *Store) CreateMealEntry(_ context.Context, entry *models.MealEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.MealEntry{}, s.mealEntries...), *entry)
	if err := writeKind(s.path(MealEntriesKey), next); err != nil {
		return err
	}
	s.mealEntries = next
	return nil
}

func (s *Store) UpdateMealEntry(_ context.Context, id string, lunch, dinner int) (*models.MealEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.mealEntries {
		if m.ID != id {
			continue
		}
		next := append([]models.MealEntry{}, s.mealEntries...)
		next[i].Lunch = lunch
		next[i].Dinner = dinner
		if err := writeKind(s.path(MealEntriesKey), next); err != nil {
			return nil, err
		}
		s.mealEntries = next
		updated := next[i]
		return &updated, nil
	}
	return nil, fmt.Errorf("meal entry %s: %w", id, storage.ErrNotFound)
}

func (s *Store) DeleteMealEntry(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.mealEntries, id, func(m models.MealEntry) string { return m.ID })
	if err != nil {
		return err
	}
	if err := writeKind(s.path(MealEntriesKey), next); err != nil {
		return err
	}
	s.mealEntries = next
	return nil
}

func (s *Store) ListMealCosts(_ context.Context, filter storage.MealCostFilter) ([]models.MealCost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.MealCost{}
	for _, c := range s.mealCosts {
		if filter.Match(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *Store) CreateMealCost(_ context.Context, cost *models.MealCost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	next := append(append([]models.MealCost{}, s.mealCosts...), *cost)
	if err := writeKind(s.path(MealCostsKey), next); err != nil {
		return err
	}
	s.mealCosts = next
	return nil
}

func (s *Store) DeleteMealCost(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := without(s.mealCosts, id, func(c models.MealCost) string { return c.ID })
	if err != nil {
		return err
	}
	if err := writeKind(s.path(MealCostsKey), next); err != nil {
		return err
	}
	s.mealCosts = next
	return nil
}

// without returns a copy of records minus the one with the given id.
func without[T any](records []T, id string, idOf func(T) string) ([]T, error) {
	for i, r := range records {
		if idOf(r) == id {
			next := make([]T, 0, len(records)-1)
			next = append(next, records[:i]...)
			return append(next, records[i+1:]...), nil
		}
	}
	return nil, fmt.Errorf("record %s: %w", id, storage.ErrNotFound)
}

func readKind[T any](path string) []T {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}
	}
	if err != nil {
		slog.Warn("Failed to read local records, starting empty", "path", path, "error", err)
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("Corrupt local records, starting empty", "path", path, "error", err)
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

// writeKind replaces the file at path atomically: the records are written to a
// temporary file in the same directory which is then renamed over the target.
func writeKind[T any](path string, records []T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write records: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", filepath.Base(path), err)
	}
	return nil
}
