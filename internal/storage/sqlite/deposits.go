package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
)

// ListDeposits returns deposits matching the filter, in insertion order.
func (s *SQLiteStore) ListDeposits(ctx context.Context, filter storage.DepositFilter) ([]models.Deposit, error) {
	var conds []string
	var args []any
	if filter.EmployeeID != "" {
		conds = append(conds, "employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if filter.Month != "" {
		conds = append(conds, "month = ?")
		args = append(args, filter.Month)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, employee_id, amount, month, date FROM deposits"+where(conds)+" ORDER BY rowid",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	deposits := []models.Deposit{}
	for rows.Next() {
		var d models.Deposit
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Amount, &d.Month, &d.Date); err != nil {
			return nil, fmt.Errorf("failed to scan deposit: %w", err)
		}
		deposits = append(deposits, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deposits: %w", err)
	}

	return deposits, nil
}

// CreateDeposit inserts a new deposit, generating its ID and Date if unset.
func (s *SQLiteStore) CreateDeposit(ctx context.Context, dep *models.Deposit) error {
	if dep.ID == "" {
		dep.ID = uuid.New().String()
	}
	if dep.Date == 0 {
		dep.Date = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO deposits (id, employee_id, amount, month, date) VALUES (?, ?, ?, ?, ?)",
		dep.ID, dep.EmployeeID, dep.Amount, dep.Month, dep.Date,
	)
	if err != nil {
		return fmt.Errorf("failed to create deposit: %w", err)
	}

	return nil
}

// DeleteDeposit removes a deposit by ID.
func (s *SQLiteStore) DeleteDeposit(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "deposits", "deposit", id)
}
