// Package remote provides a storage.Store that talks to the record service over Connect.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
	"github.com/mmynk/mealwiser/pkg/api"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store forwards every call to a remote record service.
type Store struct {
	client *api.RecordServiceClient
}

// New creates a Store for the record service at baseURL. Each call is bounded by timeout.
func New(baseURL string, timeout time.Duration) *Store {
	httpClient := &http.Client{Timeout: timeout}
	return NewWithClient(api.NewRecordServiceClient(httpClient, baseURL))
}

// NewWithClient wraps an existing record service client.
func NewWithClient(client *api.RecordServiceClient) *Store {
	return &Store{client: client}
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (s *Store) Close() error {
	return nil
}

// mapError converts Connect codes into storage and model error kinds.
func mapError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, storage.ErrUnavailable, err)
	}
	switch connect.CodeOf(err) {
	case connect.CodeNotFound:
		return fmt.Errorf("%s: %w: %w", op, storage.ErrNotFound, err)
	case connect.CodeInvalidArgument:
		return fmt.Errorf("%s: %w: %w", op, models.ErrInvalidInput, err)
	case connect.CodeUnavailable, connect.CodeDeadlineExceeded:
		return fmt.Errorf("%s: %w: %w", op, storage.ErrUnavailable, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func (s *Store) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	resp, err := s.client.ListEmployees(ctx, connect.NewRequest(&api.ListEmployeesRequest{}))
	if err != nil {
		return nil, mapError("list employees", err)
	}
	return resp.Msg.Employees, nil
}

func (s *Store) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	resp, err := s.client.CreateEmployee(ctx, connect.NewRequest(&api.CreateEmployeeRequest{Employee: *emp}))
	if err != nil {
		return mapError("create employee", err)
	}
	*emp = resp.Msg.Employee
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	if _, err := s.client.DeleteEmployee(ctx, connect.NewRequest(&api.DeleteRequest{ID: id})); err != nil {
		return mapError("delete employee", err)
	}
	return nil
}

func (s *Store) ListDeposits(ctx context.Context, filter storage.DepositFilter) ([]models.Deposit, error) {
	resp, err := s.client.ListDeposits(ctx, connect.NewRequest(&api.ListDepositsRequest{
		EmployeeID: filter.EmployeeID,
		Month:      filter.Month,
	}))
	if err != nil {
		return nil, mapError("list deposits", err)
	}
	return resp.Msg.Deposits, nil
}

func (s *Store) CreateDeposit(ctx context.Context, dep *models.Deposit) error {
	resp, err := s.client.CreateDeposit(ctx, connect.NewRequest(&api.CreateDepositRequest{Deposit: *dep}))
	if err != nil {
		return mapError("create deposit", err)
	}
	*dep = resp.Msg.Deposit
	return nil
}

func (s *Store) DeleteDeposit(ctx context.Context, id string) error {
	if _, err := s.client.DeleteDeposit(ctx, connect.NewRequest(&api.DeleteRequest{ID: id})); err != nil {
		return mapError("delete deposit", err)
	}
	return nil
}

func (s *Store) ListMealEntries(ctx context.Context, filter storage.MealEntryFilter) ([]models.MealEntry, error) {
	resp, err := s.client.ListMealEntries(ctx, connect.NewRequest(&api.ListMealEntriesRequest{Date: filter.Date}))
	if err != nil {
		return nil, mapError("list meal entries", err)
	}
	return resp.Msg.MealEntries, nil
}

func (s *Store) CreateMealEntry(ctx context.Context, entry *models.MealEntry) error {
	resp, err := s.client.CreateMealEntry(ctx, connect.NewRequest(&api.CreateMealEntryRequest{MealEntry: *entry}))
	if err != nil {
		return mapError("create meal entry", err)
	}
	*entry = resp.Msg.MealEntry
	return nil
}

func (s *Store) UpdateMealEntry(ctx context.Context, id string, lunch, dinner int) (*models.MealEntry, error) {
	resp, err := s.client.UpdateMealEntry(ctx, connect.NewRequest(&api.UpdateMealEntryRequest{
		ID:     id,
		Lunch:  lunch,
		Dinner: dinner,
	}))
	if err != nil {
		return nil, mapError("update meal entry", err)
	}
	entry := resp.Msg.MealEntry
	return &entry, nil
}

func (s *Store) DeleteMealEntry(ctx context.Context, id string) error {
	if _, err := s.client.DeleteMealEntry(ctx, connect.NewRequest(&api.DeleteRequest{ID: id})); err != nil {
		return mapError("delete meal entry", err)
	}
	return nil
}

func (s *Store) ListMealCosts(ctx context.Context, filter storage.MealCostFilter) ([]models.MealCost, error) {
	resp, err := s.client.ListMealCosts(ctx, connect.NewRequest(&api.ListMealCostsRequest{
		EmployeeID: filter.EmployeeID,
		Month:      filter.Month,
	}))
	if err != nil {
		return nil, mapError("list meal costs", err)
	}
	return resp.Msg.MealCosts, nil
}

func (s *Store) CreateMealCost(ctx context.Context, cost *models.MealCost) error {
	resp, err := s.client.CreateMealCost(ctx, connect.NewRequest(&api.CreateMealCostRequest{MealCost: *cost}))
	if err != nil {
		return mapError("create meal cost", err)
	}
	*cost = resp.Msg.MealCost
	return nil
}

func (s *Store) DeleteMealCost(ctx context.Context, id string) error {
	if _, err := s.client.DeleteMealCost(ctx, connect.NewRequest(&api.DeleteRequest{ID: id})); err != nil {
		return mapError("delete meal cost", err)
	}
	return nil
}
