package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
)

// ListMealEntries returns meal entries matching the filter, ordered by date.
func (s *SQLiteStore) ListMealEntries(ctx context.Context, filter storage.MealEntryFilter) ([]models.MealEntry, error) {
	var conds []string
	var args []any
	if filter.Date != "" {
		conds = append(conds, "date = ?")
		args = append(args, filter.Date)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, employee_id, date, lunch, dinner FROM meal_entries"+where(conds)+" ORDER BY date, rowid",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal entries: %w", err)
	}
	defer rows.Close()

	entries := []models.MealEntry{}
	for rows.Next() {
		var m models.MealEntry
		if err := rows.Scan(&m.ID, &m.EmployeeID, &m.Date, &m.Lunch, &m.Dinner); err != nil {
			return nil, fmt.Errorf("failed to scan meal entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal entries: %w", err)
	}

	return entries, nil
}

// CreateMealEntry inserts a new meal entry. A second entry for the same employee and
// date violates the table's unique constraint.
func (s *SQLiteStore) CreateMealEntry(ctx context.Context, entry *models.MealEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO meal_entries (id, employee_id, date, lunch, dinner) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.EmployeeID, entry.Date, entry.Lunch, entry.Dinner,
	)
	if err != nil {
		return fmt.Errorf("failed to create meal entry: %w", err)
	}

	return nil
}

// UpdateMealEntry replaces the lunch and dinner flags of an entry.
func (s *SQLiteStore) UpdateMealEntry(ctx context.Context, id string, lunch, dinner int) (*models.MealEntry, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx,
		"UPDATE meal_entries SET lunch = ?, dinner = ? WHERE id = ?",
		lunch, dinner, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update meal entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return nil, fmt.Errorf("meal entry %s: %w", id, storage.ErrNotFound)
	}

	entry := &models.MealEntry{}
	err = tx.QueryRowContext(ctx,
		"SELECT id, employee_id, date, lunch, dinner FROM meal_entries WHERE id = ?",
		id,
	).Scan(&entry.ID, &entry.EmployeeID, &entry.Date, &entry.Lunch, &entry.Dinner)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("meal entry %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get meal entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return entry, nil
}

// DeleteMealEntry removes a meal entry by ID.
func (s *SQLiteStore) DeleteMealEntry(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "meal_entries", "meal entry", id)
}

// ListMealCosts returns meal costs matching the filter, ordered by date.
func (s *SQLiteStore) ListMealCosts(ctx context.Context, filter storage.MealCostFilter) ([]models.MealCost, error) {
	var conds []string
	var args []any
	if filter.EmployeeID != "" {
		conds = append(conds, "employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if filter.Month != "" {
		conds = append(conds, "substr(date, 1, 7) = ?")
		args = append(args, filter.Month)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, employee_id, date, total_meal_cost, meal_count, cost_per_meal FROM meal_costs"+
			where(conds)+" ORDER BY date, rowid",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list meal costs: %w", err)
	}
	defer rows.Close()

	costs := []models.MealCost{}
	for rows.Next() {
		var c models.MealCost
		if err := rows.Scan(&c.ID, &c.EmployeeID, &c.Date, &c.TotalMealCost, &c.MealCount, &c.CostPerMeal); err != nil {
			return nil, fmt.Errorf("failed to scan meal cost: %w", err)
		}
		costs = append(costs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate meal costs: %w", err)
	}

	return costs, nil
}

// CreateMealCost inserts a new meal cost.
func (s *SQLiteStore) CreateMealCost(ctx context.Context, cost *models.MealCost) error {
	if cost.ID == "" {
		cost.ID = uuid.New().String()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO meal_costs (id, employee_id, date, total_meal_cost, meal_count, cost_per_meal) VALUES (?, ?, ?, ?, ?, ?)",
		cost.ID, cost.EmployeeID, cost.Date, cost.TotalMealCost, cost.MealCount, cost.CostPerMeal,
	)
	if err != nil {
		return fmt.Errorf("failed to create meal cost: %w", err)
	}

	return nil
}

// DeleteMealCost removes a meal cost by ID.
func (s *SQLiteStore) DeleteMealCost(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "meal_costs", "meal cost", id)
}
