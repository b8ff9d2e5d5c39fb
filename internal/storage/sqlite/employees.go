package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/mealwiser/internal/models"
)

// ListEmployees returns every employee, oldest first.
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, type, created_at FROM employees ORDER BY created_at, rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var emp models.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Type, &emp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

// CreateEmployee inserts a new employee, generating its ID and CreatedAt if unset.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	if emp.ID == "" {
		emp.ID = uuid.New().String()
	}
	if emp.CreatedAt == 0 {
		emp.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO employees (id, name, type, created_at) VALUES (?, ?, ?, ?)",
		emp.ID, emp.Name, emp.Type, emp.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// DeleteEmployee removes the employee row only; dependent records are the caller's concern.
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, id string) error {
	return s.deleteByID(ctx, "employees", "employee", id)
}
