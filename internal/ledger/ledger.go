// Package ledger is the meal ledger engine. A Ledger holds the cached records of one
// session and answers balance queries; an Engine applies mutations to a Ledger
// through an injected storage.Store.
//
// A Ledger is only changed after the store has accepted the corresponding write, so a
// failed operation never shows up in the cached collections.
package ledger

import (
	"sort"

	"github.com/mmynk/mealwiser/internal/calculator"
	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
)

// Ledger is the in-memory state of one editing session.
type Ledger struct {
	Employees   []models.Employee
	Deposits    []models.Deposit
	MealEntries []models.MealEntry
	MealCosts   []models.MealCost
}

// New builds a Ledger from a loaded snapshot. A nil snapshot gives an empty ledger.
func New(snap *storage.Snapshot) *Ledger {
	if snap == nil {
		return &Ledger{}
	}
	return &Ledger{
		Employees:   snap.Employees,
		Deposits:    snap.Deposits,
		MealEntries: snap.MealEntries,
		MealCosts:   snap.MealCosts,
	}
}

// Employee returns the employee with the given ID.
func (l *Ledger) Employee(id string) (models.Employee, bool) {
	for _, e := range l.Employees {
		if e.ID == id {
			return e, true
		}
	}
	return models.Employee{}, false
}

// EntryFor returns the meal entry of an employee on a day.
func (l *Ledger) EntryFor(employeeID, date string) (models.MealEntry, bool) {
	if i := l.entryIndex(employeeID, date); i >= 0 {
		return l.MealEntries[i], true
	}
	return models.MealEntry{}, false
}

func (l *Ledger) entryIndex(employeeID, date string) int {
	for i, m := range l.MealEntries {
		if m.EmployeeID == employeeID && m.Date == date {
			return i
		}
	}
	return -1
}

// EmployeeDeposits is the sum of an employee's deposits for a "YYYY-MM" month.
func (l *Ledger) EmployeeDeposits(employeeID, month string) float64 {
	return calculator.DepositsForMonth(l.depositsForBalance(), employeeID, month)
}

// EmployeeMealCosts is the sum of an employee's meal costs for days in a "YYYY-MM" month.
func (l *Ledger) EmployeeMealCosts(employeeID, month string) float64 {
	return calculator.MealCostsForMonth(l.costsForBalance(), employeeID, month)
}

// EmployeeBalance is deposits minus meal costs for an employee and month.
// Positive means the employee is in credit; negative means they owe money.
func (l *Ledger) EmployeeBalance(employeeID, month string) float64 {
	return calculator.Balance(l.depositsForBalance(), l.costsForBalance(), employeeID, month)
}

// DepositsFor lists an employee's deposits for a month.
func (l *Ledger) DepositsFor(employeeID, month string) []models.Deposit {
	filter := storage.DepositFilter{EmployeeID: employeeID, Month: month}
	var out []models.Deposit
	for _, d := range l.Deposits {
		if filter.Match(d) {
			out = append(out, d)
		}
	}
	return out
}

// MealCostsFor lists an employee's meal costs for a month, ordered by date.
func (l *Ledger) MealCostsFor(employeeID, month string) []models.MealCost {
	var out []models.MealCost
	for _, c := range l.MealCosts {
		if c.EmployeeID == employeeID && calculator.InMonth(c.Date, month) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// EntriesOn lists the meal entries recorded for a day.
func (l *Ledger) EntriesOn(date string) []models.MealEntry {
	filter := storage.MealEntryFilter{Date: date}
	var out []models.MealEntry
	for _, m := range l.MealEntries {
		if filter.Match(m) {
			out = append(out, m)
		}
	}
	return out
}

// DayTotal is the sum of every employee's meal cost on a day. After a day submission
// it equals the submitted daily total within floating point tolerance.
func (l *Ledger) DayTotal(date string) float64 {
	total := 0.0
	for _, c := range l.MealCosts {
		if c.Date == date {
			total += c.TotalMealCost
		}
	}
	return total
}

// DailyTotals returns the days of a month that have meal costs, sorted, with the sum
// of every employee's cost on each day.
func (l *Ledger) DailyTotals(month string) ([]string, map[string]float64) {
	var costs []calculator.CostForBalance
	for _, c := range l.costsForBalance() {
		if calculator.InMonth(c.Date, month) {
			costs = append(costs, c)
		}
	}
	return calculator.DayTotals(costs)
}

// MonthlySummaries returns one account row per employee for a month, in employee order.
func (l *Ledger) MonthlySummaries(month string) []calculator.MonthlyBalance {
	ids := make([]string, len(l.Employees))
	for i, e := range l.Employees {
		ids[i] = e.ID
	}
	return calculator.CalculateMonthlyBalances(ids, l.depositsForBalance(), l.costsForBalance(), month)
}

func (l *Ledger) depositsForBalance() []calculator.DepositForBalance {
	out := make([]calculator.DepositForBalance, len(l.Deposits))
	for i, d := range l.Deposits {
		out[i] = calculator.DepositForBalance{EmployeeID: d.EmployeeID, Month: d.Month, Amount: d.Amount}
	}
	return out
}

func (l *Ledger) costsForBalance() []calculator.CostForBalance {
	out := make([]calculator.CostForBalance, len(l.MealCosts))
	for i, c := range l.MealCosts {
		out[i] = calculator.CostForBalance{
			EmployeeID: c.EmployeeID,
			Date:       c.Date,
			Total:      c.TotalMealCost,
			MealCount:  c.MealCount,
		}
	}
	return out
}
