// Package service implements the Connect record service on top of a storage.Store.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
	"github.com/mmynk/mealwiser/pkg/api"
)

// Ensure RecordService implements api.RecordServiceHandler
var _ api.RecordServiceHandler = (*RecordService)(nil)

// RecordService implements the Connect RecordService.
// It validates incoming records but does not enforce references between kinds;
// cascading deletes are driven by the client-side ledger engine.
type RecordService struct {
	store storage.Store
}

// NewRecordService creates a new RecordService with the given storage backend.
func NewRecordService(store storage.Store) *RecordService {
	return &RecordService{store: store}
}

// toConnectError maps storage and validation errors to Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrInvalidInput):
		return connect.NewError(connect.CodeInvalidArgument, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// ListEmployees returns every employee.
func (s *RecordService) ListEmployees(ctx context.Context, req *connect.Request[api.ListEmployeesRequest]) (*connect.Response[api.ListEmployeesResponse], error) {
	employees, err := s.store.ListEmployees(ctx)
	if err != nil {
		slog.Error("ListEmployees failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListEmployeesResponse{Employees: employees}), nil
}

// CreateEmployee validates and stores a new employee.
func (s *RecordService) CreateEmployee(ctx context.Context, req *connect.Request[api.CreateEmployeeRequest]) (*connect.Response[api.CreateEmployeeResponse], error) {
	emp := req.Msg.Employee
	if err := emp.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateEmployee(ctx, &emp); err != nil {
		slog.Error("CreateEmployee failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Employee created", "employee_id", emp.ID, "type", emp.Type)

	return connect.NewResponse(&api.CreateEmployeeResponse{Employee: emp}), nil
}

// DeleteEmployee removes one employee record.
func (s *RecordService) DeleteEmployee(ctx context.Context, req *connect.Request[api.DeleteRequest]) (*connect.Response[api.DeleteResponse], error) {
	if err := s.store.DeleteEmployee(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}

	slog.Info("Employee deleted", "employee_id", req.Msg.ID)

	return connect.NewResponse(&api.DeleteResponse{}), nil
}

// ListDeposits returns deposits, optionally filtered by employee and month.
func (s *RecordService) ListDeposits(ctx context.Context, req *connect.Request[api.ListDepositsRequest]) (*connect.Response[api.ListDepositsResponse], error) {
	if req.Msg.Month != "" {
		if err := models.ValidateMonth(req.Msg.Month); err != nil {
			return nil, toConnectError(err)
		}
	}

	deposits, err := s.store.ListDeposits(ctx, storage.DepositFilter{
		EmployeeID: req.Msg.EmployeeID,
		Month:      req.Msg.Month,
	})
	if err != nil {
		slog.Error("ListDeposits failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListDepositsResponse{Deposits: deposits}), nil
}

// CreateDeposit validates and stores a new deposit.
func (s *RecordService) CreateDeposit(ctx context.Context, req *connect.Request[api.CreateDepositRequest]) (*connect.Response[api.CreateDepositResponse], error) {
	dep := req.Msg.Deposit
	if err := dep.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateDeposit(ctx, &dep); err != nil {
		slog.Error("CreateDeposit failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Deposit created",
		"deposit_id", dep.ID,
		"employee_id", dep.EmployeeID,
		"month", dep.Month,
		"amount", dep.Amount,
	)

	return connect.NewResponse(&api.CreateDepositResponse{Deposit: dep}), nil
}

// DeleteDeposit removes one deposit.
func (s *RecordService) DeleteDeposit(ctx context.Context, req *connect.Request[api.DeleteRequest]) (*connect.Response[api.DeleteResponse], error) {
	if err := s.store.DeleteDeposit(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteResponse{}), nil
}

// ListMealEntries returns meal entries, optionally for a single day.
func (s *RecordService) ListMealEntries(ctx context.Context, req *connect.Request[api.ListMealEntriesRequest]) (*connect.Response[api.ListMealEntriesResponse], error) {
	if req.Msg.Date != "" {
		if err := models.ValidateDate(req.Msg.Date); err != nil {
			return nil, toConnectError(err)
		}
	}

	entries, err := s.store.ListMealEntries(ctx, storage.MealEntryFilter{Date: req.Msg.Date})
	if err != nil {
		slog.Error("ListMealEntries failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.ListMealEntriesResponse{MealEntries: entries}), nil
}

// CreateMealEntry validates and stores a new meal entry.
func (s *RecordService) CreateMealEntry(ctx context.Context, req *connect.Request[api.CreateMealEntryRequest]) (*connect.Response[api.CreateMealEntryResponse], error) {
	entry := req.Msg.MealEntry
	if err := entry.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateMealEntry(ctx, &entry); err != nil {
		slog.Error("CreateMealEntry failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.CreateMealEntryResponse{MealEntry: entry}), nil
}

// UpdateMealEntry replaces the lunch and dinner flags of an entry.
func (s *RecordService) UpdateMealEntry(ctx context.Context, req *connect.Request[api.UpdateMealEntryRequest]) (*connect.Response[api.UpdateMealEntryResponse], error) {
	msg := req.Msg
	for _, v := range []int{msg.Lunch, msg.Dinner} {
		if v != 0 && v != 1 {
			return nil, toConnectError(fmt.Errorf("%w: meal flags must be 0 or 1, got %d", models.ErrInvalidInput, v))
		}
	}

	entry, err := s.store.UpdateMealEntry(ctx, msg.ID, msg.Lunch, msg.Dinner)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.UpdateMealEntryResponse{MealEntry: *entry}), nil
}

// DeleteMealEntry removes one meal entry.
func (s *RecordService) DeleteMealEntry(ctx context.Context, req *connect.Request[api.DeleteRequest]) (*connect.Response[api.DeleteResponse], error) {
	if err := s.store.DeleteMealEntry(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteResponse{}), nil
}

// ListMealCosts returns meal costs, optionally filtered by employee and month,
// together with the sum of their totals.
func (s *RecordService) ListMealCosts(ctx context.Context, req *connect.Request[api.ListMealCostsRequest]) (*connect.Response[api.ListMealCostsResponse], error) {
	if req.Msg.Month != "" {
		if err := models.ValidateMonth(req.Msg.Month); err != nil {
			return nil, toConnectError(err)
		}
	}

	costs, err := s.store.ListMealCosts(ctx, storage.MealCostFilter{
		EmployeeID: req.Msg.EmployeeID,
		Month:      req.Msg.Month,
	})
	if err != nil {
		slog.Error("ListMealCosts failed", "error", err)
		return nil, toConnectError(err)
	}

	total := 0.0
	for _, c := range costs {
		total += c.TotalMealCost
	}

	return connect.NewResponse(&api.ListMealCostsResponse{MealCosts: costs, Total: total}), nil
}

// CreateMealCost validates and stores a new meal cost.
func (s *RecordService) CreateMealCost(ctx context.Context, req *connect.Request[api.CreateMealCostRequest]) (*connect.Response[api.CreateMealCostResponse], error) {
	cost := req.Msg.MealCost
	if err := cost.Validate(); err != nil {
		return nil, toConnectError(err)
	}

	if err := s.store.CreateMealCost(ctx, &cost); err != nil {
		slog.Error("CreateMealCost failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&api.CreateMealCostResponse{MealCost: cost}), nil
}

// DeleteMealCost removes one meal cost.
func (s *RecordService) DeleteMealCost(ctx context.Context, req *connect.Request[api.DeleteRequest]) (*connect.Response[api.DeleteResponse], error) {
	if err := s.store.DeleteMealCost(ctx, req.Msg.ID); err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&api.DeleteResponse{}), nil
}
