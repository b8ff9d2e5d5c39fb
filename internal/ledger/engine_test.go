package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
	"github.com/mmynk/mealwiser/internal/storage/local"
)

const tolerance = 1e-6

var errBoom = errors.New("disk on fire")

// faultyStore is a local store that fails chosen operations. failOps is keyed by
// method name, failIDs by record ID for deletes. When costsBeforeFailure is
// non-negative, CreateMealCost succeeds that many times and then fails with
// storage.ErrUnavailable.
type faultyStore struct {
	*local.Store
	failOps            map[string]error
	failIDs            map[string]error
	costsBeforeFailure int
}

func newFaultyStore(t *testing.T) *faultyStore {
	t.Helper()
	s, err := local.New(t.TempDir())
	require.NoError(t, err)
	return &faultyStore{Store: s, failOps: map[string]error{}, failIDs: map[string]error{}, costsBeforeFailure: -1}
}

func (f *faultyStore) fault(op, id string) error {
	if err := f.failOps[op]; err != nil {
		return err
	}
	return f.failIDs[id]
}

func (f *faultyStore) CreateMealEntry(ctx context.Context, entry *models.MealEntry) error {
	if err := f.fault("CreateMealEntry", ""); err != nil {
		return err
	}
	return f.Store.CreateMealEntry(ctx, entry)
}

func (f *faultyStore) UpdateMealEntry(ctx context.Context, id string, lunch, dinner int) (*models.MealEntry, error) {
	if err := f.fault("UpdateMealEntry", id); err != nil {
		return nil, err
	}
	return f.Store.UpdateMealEntry(ctx, id, lunch, dinner)
}

func (f *faultyStore) DeleteEmployee(ctx context.Context, id string) error {
	if err := f.fault("DeleteEmployee", id); err != nil {
		return err
	}
	return f.Store.DeleteEmployee(ctx, id)
}

func (f *faultyStore) DeleteDeposit(ctx context.Context, id string) error {
	if err := f.fault("DeleteDeposit", id); err != nil {
		return err
	}
	return f.Store.DeleteDeposit(ctx, id)
}

func (f *faultyStore) DeleteMealEntry(ctx context.Context, id string) error {
	if err := f.fault("DeleteMealEntry", id); err != nil {
		return err
	}
	return f.Store.DeleteMealEntry(ctx, id)
}

func (f *faultyStore) CreateMealCost(ctx context.Context, cost *models.MealCost) error {
	if f.costsBeforeFailure == 0 {
		return storage.ErrUnavailable
	}
	if f.costsBeforeFailure > 0 {
		f.costsBeforeFailure--
	}
	return f.Store.CreateMealCost(ctx, cost)
}

func (f *faultyStore) DeleteMealCost(ctx context.Context, id string) error {
	if err := f.fault("DeleteMealCost", id); err != nil {
		return err
	}
	return f.Store.DeleteMealCost(ctx, id)
}

func setup(t *testing.T) (*Engine, *Ledger, *faultyStore) {
	t.Helper()
	store := newFaultyStore(t)
	return NewEngine(store), New(nil), store
}

func addEmployee(t *testing.T, e *Engine, l *Ledger, name string, typ models.EmployeeType) string {
	t.Helper()
	emp, err := e.AddEmployee(context.Background(), l, name, typ)
	require.NoError(t, err)
	return emp.ID
}

func TestEndToEndScenario(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()

	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeGuest)

	_, err := e.AddDeposit(ctx, l, a, 500, "2024-01")
	require.NoError(t, err)

	costs, err := e.SubmitDay(ctx, l, "2024-01-15", 300, []Selection{
		{EmployeeID: a, Lunch: true, Dinner: true},
		{EmployeeID: b, Lunch: true},
	})
	require.NoError(t, err)
	require.Len(t, costs, 2)

	assert.InDelta(t, 100, costs[0].CostPerMeal, tolerance)
	assert.InDelta(t, 100, costs[1].CostPerMeal, tolerance)
	assert.InDelta(t, 200, costs[0].TotalMealCost, tolerance)
	assert.Equal(t, 2, costs[0].MealCount)
	assert.InDelta(t, 100, costs[1].TotalMealCost, tolerance)

	assert.InDelta(t, 300, l.EmployeeBalance(a, "2024-01"), tolerance)
	assert.InDelta(t, -100, l.EmployeeBalance(b, "2024-01"), tolerance)
	assert.InDelta(t, 300, l.DayTotal("2024-01-15"), tolerance)
	assert.Len(t, l.EntriesOn("2024-01-15"), 2)
}

func TestEmployeeBalance_DepositsMinusCosts(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)

	for _, amount := range []float64{100, 50} {
		_, err := e.AddDeposit(ctx, l, emp, amount, "2024-01")
		require.NoError(t, err)
	}
	_, err := e.AddMealCost(ctx, l, emp, "2024-01-03", 30, 1)
	require.NoError(t, err)
	_, err = e.AddMealCost(ctx, l, emp, "2024-01-20", 20, 2)
	require.NoError(t, err)

	assert.InDelta(t, 100, l.EmployeeBalance(emp, "2024-01"), tolerance)
	assert.InDelta(t, 150, l.EmployeeDeposits(emp, "2024-01"), tolerance)
	assert.InDelta(t, 50, l.EmployeeMealCosts(emp, "2024-01"), tolerance)
	assert.Len(t, l.DepositsFor(emp, "2024-01"), 2)

	breakdown := l.MealCostsFor(emp, "2024-01")
	require.Len(t, breakdown, 2)
	assert.InDelta(t, 10, breakdown[1].CostPerMeal, tolerance)

	assert.Zero(t, l.EmployeeBalance(emp, "2024-02"))
}

func TestRecordParticipation_Upsert(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeIrregular)

	first, err := e.RecordParticipation(ctx, l, emp, "2024-01-15", true, false)
	require.NoError(t, err)
	second, err := e.RecordParticipation(ctx, l, emp, "2024-01-15", true, false)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	require.Len(t, l.MealEntries, 1)
	assert.Equal(t, 1, l.MealEntries[0].Lunch)
	assert.Equal(t, 0, l.MealEntries[0].Dinner)

	stored, err := store.ListMealEntries(ctx, storage.MealEntryFilter{Date: "2024-01-15"})
	require.NoError(t, err)
	assert.Len(t, stored, 1)

	// Full replace, not a merge
	third, err := e.RecordParticipation(ctx, l, emp, "2024-01-15", false, true)
	require.NoError(t, err)
	assert.Equal(t, first.ID, third.ID)
	assert.Equal(t, 0, l.MealEntries[0].Lunch)
	assert.Equal(t, 1, l.MealEntries[0].Dinner)
}

func TestRecordParticipation_Errors(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)

	_, err := e.RecordParticipation(ctx, l, "ghost", "2024-01-15", true, false)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.RecordParticipation(ctx, l, emp, "15.01.2024", true, false)
	assert.ErrorIs(t, err, ErrInvalidInput)

	store.failOps["CreateMealEntry"] = errBoom
	_, err = e.RecordParticipation(ctx, l, emp, "2024-01-15", true, false)
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, l.MealEntries, "failed write must not reach the ledger")
}

func TestRecordParticipation_FailedUpdateKeepsEntry(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)

	entry, err := e.RecordParticipation(ctx, l, emp, "2024-01-15", true, true)
	require.NoError(t, err)

	store.failOps["UpdateMealEntry"] = errBoom
	_, err = e.RecordParticipation(ctx, l, emp, "2024-01-15", false, false)
	require.Error(t, err)

	got, ok := l.EntryFor(emp, "2024-01-15")
	require.True(t, ok)
	assert.Equal(t, *entry, got)
}

func TestSubmitDay_ResubmitReplacesCosts(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeRegular)

	_, err := e.SubmitDay(ctx, l, "2024-01-15", 300, []Selection{
		{EmployeeID: a, Lunch: true, Dinner: true},
		{EmployeeID: b, Lunch: true},
	})
	require.NoError(t, err)

	// B did not eat after all
	costs, err := e.SubmitDay(ctx, l, "2024-01-15", 250, []Selection{
		{EmployeeID: a, Lunch: true, Dinner: true},
		{EmployeeID: b},
	})
	require.NoError(t, err)
	require.Len(t, costs, 1)
	assert.InDelta(t, 250, costs[0].TotalMealCost, tolerance)
	assert.InDelta(t, 125, costs[0].CostPerMeal, tolerance)

	assert.InDelta(t, 250, l.DayTotal("2024-01-15"), tolerance)
	assert.Len(t, l.MealCosts, 1)

	entry, ok := l.EntryFor(b, "2024-01-15")
	require.True(t, ok)
	assert.Equal(t, 0, entry.MealCount(), "B's entry is reset, not left at lunch")

	stored, err := store.ListMealCosts(ctx, storage.MealCostFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func storedDayTotal(t *testing.T, store storage.Store, date string) (float64, int) {
	t.Helper()
	costs, err := store.ListMealCosts(context.Background(), storage.MealCostFilter{})
	require.NoError(t, err)
	total, n := 0.0, 0
	for _, c := range costs {
		if c.Date == date {
			total += c.TotalMealCost
			n++
		}
	}
	return total, n
}

func TestSubmitDay_FailedCreateKeepsPreviousCosts(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeRegular)
	day := []Selection{
		{EmployeeID: a, Lunch: true, Dinner: true},
		{EmployeeID: b, Lunch: true},
	}

	_, err := e.SubmitDay(ctx, l, "2024-01-15", 300, day)
	require.NoError(t, err)

	store.costsBeforeFailure = 1
	_, err = e.SubmitDay(ctx, l, "2024-01-15", 600, day)
	require.ErrorIs(t, err, ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrPartialSubmit)
	assert.Contains(t, Advice(err), "Nothing was changed")

	assert.InDelta(t, 300, l.DayTotal("2024-01-15"), tolerance)
	assert.Len(t, l.MealCosts, 2)

	total, n := storedDayTotal(t, store, "2024-01-15")
	assert.InDelta(t, 300, total, tolerance)
	assert.Equal(t, 2, n)

	store.costsBeforeFailure = -1
	_, err = e.SubmitDay(ctx, l, "2024-01-15", 600, day)
	require.NoError(t, err)
	assert.InDelta(t, 600, l.DayTotal("2024-01-15"), tolerance)
	total, n = storedDayTotal(t, store, "2024-01-15")
	assert.InDelta(t, 600, total, tolerance)
	assert.Equal(t, 2, n)
}

func TestSubmitDay_FailedRollbackIsPartial(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeRegular)
	day := []Selection{
		{EmployeeID: a, Lunch: true, Dinner: true},
		{EmployeeID: b, Lunch: true},
	}

	_, err := e.SubmitDay(ctx, l, "2024-01-15", 300, day)
	require.NoError(t, err)

	store.costsBeforeFailure = 1
	store.failOps["DeleteMealCost"] = errBoom
	_, err = e.SubmitDay(ctx, l, "2024-01-15", 600, day)
	require.ErrorIs(t, err, ErrPartialSubmit)

	var perr *PartialSubmitError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "2024-01-15", perr.Date)
	assert.Len(t, perr.StrayCostIDs, 1)
	assert.Contains(t, Advice(err), "partly saved")
	assert.NotContains(t, Advice(err), "Nothing was changed")

	// the ledger mirrors the store: old costs plus the stray new one
	total, n := storedDayTotal(t, store, "2024-01-15")
	assert.Equal(t, 3, n)
	assert.InDelta(t, total, l.DayTotal("2024-01-15"), tolerance)
	assert.Len(t, l.MealCosts, 3)
}

func TestSubmitDay_FailedOldCostDeleteIsPartial(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)

	first, err := e.SubmitDay(ctx, l, "2024-01-15", 100, []Selection{{EmployeeID: a, Lunch: true}})
	require.NoError(t, err)

	store.failIDs[first[0].ID] = errBoom
	_, err = e.SubmitDay(ctx, l, "2024-01-15", 150, []Selection{{EmployeeID: a, Lunch: true}})

	var perr *PartialSubmitError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, []string{first[0].ID}, perr.StrayCostIDs)
	assert.InDelta(t, 250, l.DayTotal("2024-01-15"), tolerance)

	delete(store.failIDs, first[0].ID)
	_, err = e.SubmitDay(ctx, l, "2024-01-15", 150, []Selection{{EmployeeID: a, Lunch: true}})
	require.NoError(t, err)
	assert.InDelta(t, 150, l.DayTotal("2024-01-15"), tolerance)
}

func TestSubmitDay_FailedParticipationIsPartial(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)

	store.failOps["CreateMealEntry"] = errBoom
	_, err := e.SubmitDay(ctx, l, "2024-01-15", 100, []Selection{{EmployeeID: a, Lunch: true}})
	require.ErrorIs(t, err, ErrPartialSubmit)
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, l.MealEntries)
	assert.InDelta(t, 100, l.DayTotal("2024-01-15"), tolerance)
}

func TestSubmitDay_CostPerMealVariesByDay(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeRegular)
	c := addEmployee(t, e, l, "C", models.EmployeeRegular)

	_, err := e.SubmitDay(ctx, l, "2024-01-15", 200, []Selection{
		{EmployeeID: a, Lunch: true},
		{EmployeeID: b, Lunch: true},
	})
	require.NoError(t, err)
	_, err = e.SubmitDay(ctx, l, "2024-01-16", 200, []Selection{
		{EmployeeID: a, Lunch: true},
		{EmployeeID: b, Lunch: true},
		{EmployeeID: c, Lunch: true, Dinner: true},
	})
	require.NoError(t, err)

	costs := l.MealCostsFor(a, "2024-01")
	require.Len(t, costs, 2)
	assert.InDelta(t, 100, costs[0].CostPerMeal, tolerance)
	assert.InDelta(t, 50, costs[1].CostPerMeal, tolerance)
}

func TestSubmitDay_Invalid(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)

	tests := []struct {
		name       string
		date       string
		total      float64
		selections []Selection
		wantErr    error
	}{
		{"nobody ate", "2024-01-15", 100, []Selection{{EmployeeID: a}}, ErrInvalidInput},
		{"no selections", "2024-01-15", 100, nil, ErrInvalidInput},
		{"zero total", "2024-01-15", 0, []Selection{{EmployeeID: a, Lunch: true}}, ErrInvalidInput},
		{"bad date", "2024-13-01", 100, []Selection{{EmployeeID: a, Lunch: true}}, ErrInvalidInput},
		{"unknown employee", "2024-01-15", 100, []Selection{{EmployeeID: "ghost", Lunch: true}}, ErrNotFound},
		{"duplicate selection", "2024-01-15", 100, []Selection{{EmployeeID: a, Lunch: true}, {EmployeeID: a}}, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.SubmitDay(ctx, l, tt.date, tt.total, tt.selections)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, l.MealEntries)
			assert.Empty(t, l.MealCosts)
		})
	}
}

func TestDeleteEmployee_Cascade(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)
	other := addEmployee(t, e, l, "O", models.EmployeeRegular)

	for _, amount := range []float64{100, 50} {
		_, err := e.AddDeposit(ctx, l, emp, amount, "2024-01")
		require.NoError(t, err)
	}
	for _, date := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		_, err := e.RecordParticipation(ctx, l, emp, date, true, false)
		require.NoError(t, err)
	}
	_, err := e.AddMealCost(ctx, l, emp, "2024-01-01", 40, 1)
	require.NoError(t, err)
	_, err = e.AddDeposit(ctx, l, other, 10, "2024-01")
	require.NoError(t, err)

	require.NoError(t, e.DeleteEmployee(ctx, l, emp))

	snap, err := storage.LoadSnapshot(ctx, store)
	require.NoError(t, err)
	for _, view := range []*Ledger{l, New(snap)} {
		_, found := view.Employee(emp)
		assert.False(t, found)
		for _, d := range view.Deposits {
			assert.NotEqual(t, emp, d.EmployeeID)
		}
		for _, m := range view.MealEntries {
			assert.NotEqual(t, emp, m.EmployeeID)
		}
		for _, c := range view.MealCosts {
			assert.NotEqual(t, emp, c.EmployeeID)
		}
		assert.Len(t, view.Employees, 1)
		assert.Len(t, view.Deposits, 1, "the other employee's deposit survives")
	}
}

func TestDeleteEmployee_PrimaryFailureChangesNothing(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)
	_, err := e.AddDeposit(ctx, l, emp, 100, "2024-01")
	require.NoError(t, err)

	store.failOps["DeleteEmployee"] = errBoom
	err = e.DeleteEmployee(ctx, l, emp)
	require.ErrorIs(t, err, errBoom)
	assert.NotErrorIs(t, err, ErrPartialCascade)

	assert.Len(t, l.Employees, 1)
	assert.Len(t, l.Deposits, 1)
	stored, err := store.ListDeposits(ctx, storage.DepositFilter{})
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestDeleteEmployee_PartialCascade(t *testing.T) {
	e, l, store := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)

	stuck, err := e.AddDeposit(ctx, l, emp, 100, "2024-01")
	require.NoError(t, err)
	_, err = e.AddDeposit(ctx, l, emp, 50, "2024-01")
	require.NoError(t, err)
	_, err = e.RecordParticipation(ctx, l, emp, "2024-01-02", true, true)
	require.NoError(t, err)

	store.failIDs[stuck.ID] = errBoom
	err = e.DeleteEmployee(ctx, l, emp)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialCascade)
	assert.ErrorIs(t, err, errBoom)

	var cascade *PartialCascadeError
	require.ErrorAs(t, err, &cascade)
	assert.Equal(t, emp, cascade.EmployeeID)
	assert.Equal(t, []string{stuck.ID}, cascade.FailedIDs)

	assert.Empty(t, l.Employees)
	assert.Empty(t, l.MealEntries)
	require.Len(t, l.Deposits, 1, "only the dependent that failed stays cached")
	assert.Equal(t, stuck.ID, l.Deposits[0].ID)

	assert.Contains(t, Advice(err), "1 related record")
}

func TestSingleDeletes(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)

	dep, err := e.AddDeposit(ctx, l, emp, 100, "2024-01")
	require.NoError(t, err)
	entry, err := e.RecordParticipation(ctx, l, emp, "2024-01-02", true, false)
	require.NoError(t, err)
	cost, err := e.AddMealCost(ctx, l, emp, "2024-01-02", 12.5, 1)
	require.NoError(t, err)

	require.NoError(t, e.DeleteDeposit(ctx, l, dep.ID))
	require.NoError(t, e.DeleteMealEntry(ctx, l, entry.ID))
	require.NoError(t, e.DeleteMealCost(ctx, l, cost.ID))
	assert.Empty(t, l.Deposits)
	assert.Empty(t, l.MealEntries)
	assert.Empty(t, l.MealCosts)

	assert.ErrorIs(t, e.DeleteDeposit(ctx, l, dep.ID), ErrNotFound)
	assert.ErrorIs(t, e.DeleteMealEntry(ctx, l, "missing"), ErrNotFound)
	assert.ErrorIs(t, e.DeleteMealCost(ctx, l, "missing"), ErrNotFound)
	assert.Len(t, l.Employees, 1)
}

func TestAddValidation(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	emp := addEmployee(t, e, l, "E", models.EmployeeRegular)

	_, err := e.AddEmployee(ctx, l, "   ", models.EmployeeRegular)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.AddDeposit(ctx, l, emp, -5, "2024-01")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.AddDeposit(ctx, l, "ghost", 5, "2024-01")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = e.AddMealCost(ctx, l, emp, "2024-01-02", -1, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	zero, err := e.AddMealCost(ctx, l, emp, "2024-01-02", 15, 0)
	require.NoError(t, err)
	assert.Zero(t, zero.CostPerMeal)

	assert.Len(t, l.Employees, 1)
	assert.Empty(t, l.Deposits)
}

func TestMonthlySummaries(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeGuest)

	_, err := e.AddDeposit(ctx, l, a, 500, "2024-01")
	require.NoError(t, err)
	_, err = e.SubmitDay(ctx, l, "2024-01-15", 300, []Selection{
		{EmployeeID: a, Lunch: true, Dinner: true},
		{EmployeeID: b, Lunch: true},
	})
	require.NoError(t, err)

	rows := l.MonthlySummaries("2024-01")
	require.Len(t, rows, 2)
	assert.Equal(t, a, rows[0].EmployeeID)
	assert.InDelta(t, 300, rows[0].Balance, tolerance)
	assert.Equal(t, 2, rows[0].Meals)
	assert.InDelta(t, -100, rows[1].Balance, tolerance)
}

func TestDailyTotals(t *testing.T) {
	e, l, _ := setup(t)
	ctx := context.Background()
	a := addEmployee(t, e, l, "A", models.EmployeeRegular)
	b := addEmployee(t, e, l, "B", models.EmployeeRegular)

	_, err := e.SubmitDay(ctx, l, "2024-01-20", 90, []Selection{{EmployeeID: a, Lunch: true}, {EmployeeID: b, Dinner: true}})
	require.NoError(t, err)
	_, err = e.SubmitDay(ctx, l, "2024-01-05", 40, []Selection{{EmployeeID: a, Lunch: true}})
	require.NoError(t, err)
	_, err = e.SubmitDay(ctx, l, "2024-02-01", 10, []Selection{{EmployeeID: b, Lunch: true}})
	require.NoError(t, err)

	dates, totals := l.DailyTotals("2024-01")
	assert.Equal(t, []string{"2024-01-05", "2024-01-20"}, dates)
	assert.InDelta(t, 40, totals["2024-01-05"], tolerance)
	assert.InDelta(t, 90, totals["2024-01-20"], tolerance)
	assert.NotContains(t, totals, "2024-02-01")
}

func TestAdvice(t *testing.T) {
	assert.Empty(t, Advice(nil))
	assert.Contains(t, Advice(ErrStoreUnavailable), "unreachable")
	assert.Contains(t, Advice(ErrNotFound), "no longer exists")
	assert.Contains(t, Advice(ErrInvalidInput), "check your input")
	assert.Contains(t, Advice(errBoom), "disk on fire")
	assert.Contains(t, Advice(&PartialSubmitError{Date: "2024-01-15", Err: ErrStoreUnavailable}), "Submit it again")
}
