package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/mmynk/mealwiser/internal/calculator"
	"github.com/mmynk/mealwiser/internal/metrics"
	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
)

// Engine applies ledger operations: it writes through the store first and updates the
// Ledger only with what the store accepted. Operations are not safe for concurrent use
// on the same Ledger.
type Engine struct {
	store storage.Store
}

// NewEngine creates an Engine writing to store.
func NewEngine(store storage.Store) *Engine {
	return &Engine{store: store}
}

// Selection is one employee's meal participation on the day being submitted.
type Selection struct {
	EmployeeID string
	Lunch      bool
	Dinner     bool
}

// MealCount returns the number of meal units selected (0, 1 or 2).
func (s Selection) MealCount() int {
	return models.BoolToMeal(s.Lunch) + models.BoolToMeal(s.Dinner)
}

func (e *Engine) requireEmployee(l *Ledger, id string) error {
	if _, ok := l.Employee(id); !ok {
		return fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}
	return nil
}

// AddEmployee registers a new employee.
func (e *Engine) AddEmployee(ctx context.Context, l *Ledger, name string, typ models.EmployeeType) (_ *models.Employee, err error) {
	defer func() { metrics.ObserveOperation("add_employee", err) }()

	emp := models.Employee{Name: strings.TrimSpace(name), Type: typ}
	if err := emp.Validate(); err != nil {
		return nil, err
	}
	if err := e.store.CreateEmployee(ctx, &emp); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	l.Employees = append(l.Employees, emp)
	slog.Info("Employee added", "employee_id", emp.ID, "type", emp.Type)
	return &emp, nil
}

// AddDeposit credits amount to an employee for a "YYYY-MM" month.
func (e *Engine) AddDeposit(ctx context.Context, l *Ledger, employeeID string, amount float64, month string) (_ *models.Deposit, err error) {
	defer func() { metrics.ObserveOperation("add_deposit", err) }()

	dep := models.Deposit{EmployeeID: employeeID, Amount: amount, Month: month}
	if err := dep.Validate(); err != nil {
		return nil, err
	}
	if err := e.requireEmployee(l, employeeID); err != nil {
		return nil, err
	}
	if err := e.store.CreateDeposit(ctx, &dep); err != nil {
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	l.Deposits = append(l.Deposits, dep)
	return &dep, nil
}

// RecordParticipation sets an employee's lunch and dinner for a day. An existing entry
// for the same employee and day is replaced in place (same ID, same position);
// otherwise a new entry is created. Repeating the call with the same arguments leaves
// exactly one entry.
func (e *Engine) RecordParticipation(ctx context.Context, l *Ledger, employeeID, date string, lunch, dinner bool) (_ *models.MealEntry, err error) {
	defer func() { metrics.ObserveOperation("record_participation", err) }()
	return e.recordParticipation(ctx, l, employeeID, date, lunch, dinner)
}

func (e *Engine) recordParticipation(ctx context.Context, l *Ledger, employeeID, date string, lunch, dinner bool) (*models.MealEntry, error) {
	if err := e.requireEmployee(l, employeeID); err != nil {
		return nil, err
	}
	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}

	lunchFlag, dinnerFlag := models.BoolToMeal(lunch), models.BoolToMeal(dinner)

	if i := l.entryIndex(employeeID, date); i >= 0 {
		updated, err := e.store.UpdateMealEntry(ctx, l.MealEntries[i].ID, lunchFlag, dinnerFlag)
		if err != nil {
			return nil, fmt.Errorf("failed to update meal entry: %w", err)
		}
		l.MealEntries[i] = *updated
		return updated, nil
	}

	entry := models.MealEntry{EmployeeID: employeeID, Date: date, Lunch: lunchFlag, Dinner: dinnerFlag}
	if err := e.store.CreateMealEntry(ctx, &entry); err != nil {
		return nil, fmt.Errorf("failed to create meal entry: %w", err)
	}
	l.MealEntries = append(l.MealEntries, entry)
	return &entry, nil
}

// SubmitDay records a day's participation and splits its total cost among the
// employees who ate. One MealCost is created per participant, the day's previous meal
// costs are then removed, and every selection is recorded (a selection with no meals
// resets an existing entry). The created costs are returned in selection order.
//
// If a new cost cannot be created, the ones already created are removed again and
// the previous costs are left alone. Failures after that point leave the day partly
// saved and are reported as a *PartialSubmitError; submitting again repairs the day.
func (e *Engine) SubmitDay(ctx context.Context, l *Ledger, date string, dailyTotal float64, selections []Selection) (_ []models.MealCost, err error) {
	defer func() { metrics.ObserveOperation("submit_day", err) }()

	if err := models.ValidateDate(date); err != nil {
		return nil, err
	}

	var participants []calculator.Participant
	seen := make(map[string]bool, len(selections))
	for _, sel := range selections {
		if seen[sel.EmployeeID] {
			return nil, fmt.Errorf("%w: employee %s selected twice", ErrInvalidInput, sel.EmployeeID)
		}
		seen[sel.EmployeeID] = true
		if err := e.requireEmployee(l, sel.EmployeeID); err != nil {
			return nil, err
		}
		if n := sel.MealCount(); n > 0 {
			participants = append(participants, calculator.Participant{EmployeeID: sel.EmployeeID, MealCount: n})
		}
	}

	shares, err := calculator.SplitDailyCost(dailyTotal, participants)
	if err != nil {
		return nil, err
	}

	var previous []string
	for _, c := range l.MealCosts {
		if c.Date == date {
			previous = append(previous, c.ID)
		}
	}

	costs, err := e.createDayCosts(ctx, l, date, shares)
	if err != nil {
		return nil, err
	}

	var failed []string
	var errs []error
	for _, id := range previous {
		if err := e.store.DeleteMealCost(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
			failed = append(failed, id)
			errs = append(errs, err)
			continue
		}
		l.MealCosts = removeID(l.MealCosts, id, idOfMealCost)
	}
	if len(failed) > 0 {
		return nil, e.partialSubmit(date, failed, errors.Join(errs...))
	}

	for _, sel := range selections {
		if _, exists := l.EntryFor(sel.EmployeeID, date); !exists && sel.MealCount() == 0 {
			continue
		}
		if _, err := e.recordParticipation(ctx, l, sel.EmployeeID, date, sel.Lunch, sel.Dinner); err != nil {
			return nil, e.partialSubmit(date, nil, err)
		}
	}

	slog.Info("Day submitted",
		"date", date,
		"daily_total", dailyTotal,
		"participants", len(shares),
		"cost_per_meal", shares[0].CostPerMeal,
	)
	return costs, nil
}

// createDayCosts stores one MealCost per share. On failure it deletes the costs it
// already created, so the store holds either all of them or none; costs that cannot
// be deleted again make it return a *PartialSubmitError.
func (e *Engine) createDayCosts(ctx context.Context, l *Ledger, date string, shares []calculator.Share) ([]models.MealCost, error) {
	costs := make([]models.MealCost, 0, len(shares))
	for _, sh := range shares {
		cost := models.MealCost{
			EmployeeID:    sh.EmployeeID,
			Date:          date,
			TotalMealCost: sh.EmployeeCost,
			MealCount:     sh.MealCount,
			CostPerMeal:   sh.CostPerMeal,
		}
		if err := e.store.CreateMealCost(ctx, &cost); err != nil {
			createErr := fmt.Errorf("failed to create meal cost: %w", err)

			var stuck []string
			for _, c := range costs {
				if err := e.store.DeleteMealCost(ctx, c.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
					stuck = append(stuck, c.ID)
					l.MealCosts = append(l.MealCosts, c)
				}
			}
			if len(stuck) > 0 {
				return nil, e.partialSubmit(date, stuck, createErr)
			}
			return nil, createErr
		}
		costs = append(costs, cost)
	}

	l.MealCosts = append(l.MealCosts, costs...)
	return costs, nil
}

func (e *Engine) partialSubmit(date string, strayIDs []string, err error) error {
	perr := &PartialSubmitError{Date: date, StrayCostIDs: strayIDs, Err: err}
	slog.Error("Day submission partly saved",
		"date", date,
		"stray_cost_ids", strayIDs,
		"error", err,
	)
	return perr
}

// AddMealCost stores a hand-entered meal cost. CostPerMeal is derived from the total
// and the meal count (0 when the count is 0).
func (e *Engine) AddMealCost(ctx context.Context, l *Ledger, employeeID, date string, total float64, mealCount int) (_ *models.MealCost, err error) {
	defer func() { metrics.ObserveOperation("add_meal_cost", err) }()

	cost := models.MealCost{
		EmployeeID:    employeeID,
		Date:          date,
		TotalMealCost: total,
		MealCount:     mealCount,
		CostPerMeal:   calculator.CostPerMeal(total, mealCount),
	}
	if err := cost.Validate(); err != nil {
		return nil, err
	}
	if err := e.requireEmployee(l, employeeID); err != nil {
		return nil, err
	}
	if err := e.store.CreateMealCost(ctx, &cost); err != nil {
		return nil, fmt.Errorf("failed to create meal cost: %w", err)
	}

	l.MealCosts = append(l.MealCosts, cost)
	return &cost, nil
}

// DeleteEmployee removes an employee and every deposit, meal entry and meal cost that
// references it. If the employee itself cannot be deleted nothing changes. Dependents
// that fail to delete are reported as a *PartialCascadeError and stay in the Ledger;
// a dependent the store no longer has counts as deleted.
func (e *Engine) DeleteEmployee(ctx context.Context, l *Ledger, employeeID string) (err error) {
	defer func() { metrics.ObserveOperation("delete_employee", err) }()

	if err := e.store.DeleteEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	l.Employees = removeID(l.Employees, employeeID, idOfEmployee)

	var failed []string
	var errs []error
	cascade := func(id string, del func(context.Context, string) error) bool {
		if err := del(ctx, id); err != nil && !errors.Is(err, storage.ErrNotFound) {
			failed = append(failed, id)
			errs = append(errs, err)
			return false
		}
		return true
	}

	l.Deposits = slices.DeleteFunc(l.Deposits, func(d models.Deposit) bool {
		return d.EmployeeID == employeeID && cascade(d.ID, e.store.DeleteDeposit)
	})
	l.MealEntries = slices.DeleteFunc(l.MealEntries, func(m models.MealEntry) bool {
		return m.EmployeeID == employeeID && cascade(m.ID, e.store.DeleteMealEntry)
	})
	l.MealCosts = slices.DeleteFunc(l.MealCosts, func(c models.MealCost) bool {
		return c.EmployeeID == employeeID && cascade(c.ID, e.store.DeleteMealCost)
	})

	if len(failed) > 0 {
		cerr := &PartialCascadeError{EmployeeID: employeeID, FailedIDs: failed, Err: errors.Join(errs...)}
		slog.Error("Employee deleted with dependents remaining",
			"employee_id", employeeID,
			"failed_ids", failed,
			"error", cerr.Err,
		)
		return cerr
	}

	slog.Info("Employee deleted", "employee_id", employeeID)
	return nil
}

// DeleteDeposit removes one deposit.
func (e *Engine) DeleteDeposit(ctx context.Context, l *Ledger, id string) (err error) {
	defer func() { metrics.ObserveOperation("delete_deposit", err) }()

	if err := e.store.DeleteDeposit(ctx, id); err != nil {
		return fmt.Errorf("failed to delete deposit: %w", err)
	}
	l.Deposits = removeID(l.Deposits, id, idOfDeposit)
	return nil
}

// DeleteMealEntry removes one meal entry.
func (e *Engine) DeleteMealEntry(ctx context.Context, l *Ledger, id string) (err error) {
	defer func() { metrics.ObserveOperation("delete_meal_entry", err) }()

	if err := e.store.DeleteMealEntry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meal entry: %w", err)
	}
	l.MealEntries = removeID(l.MealEntries, id, idOfMealEntry)
	return nil
}

// DeleteMealCost removes one meal cost.
func (e *Engine) DeleteMealCost(ctx context.Context, l *Ledger, id string) (err error) {
	defer func() { metrics.ObserveOperation("delete_meal_cost", err) }()

	if err := e.store.DeleteMealCost(ctx, id); err != nil {
		return fmt.Errorf("failed to delete meal cost: %w", err)
	}
	l.MealCosts = removeID(l.MealCosts, id, idOfMealCost)
	return nil
}

func removeID[T any](records []T, id string, idOf func(T) string) []T {
	return slices.DeleteFunc(records, func(r T) bool { return idOf(r) == id })
}

func idOfEmployee(e models.Employee) string { return e.ID }
func idOfDeposit(d models.Deposit) string { return d.ID }
func idOfMealEntry(m models.MealEntry) string { return m.ID }
func idOfMealCost(c models.MealCost) string { return c.ID }
