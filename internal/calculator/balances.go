package calculator

import "sort"

// DepositForBalance represents a deposit with the minimal information needed for balance calculations.
type DepositForBalance struct {
	EmployeeID string
	Month      string // "YYYY-MM"
	Amount     float64
}

// CostForBalance represents a meal cost with the minimal information needed for balance calculations.
type CostForBalance struct {
	EmployeeID string
	Date       string // "YYYY-MM-DD"
	Total      float64
	MealCount  int
}

// MonthlyBalance represents one employee's account for one month.
type MonthlyBalance struct {
	EmployeeID string
	Month      string
	Deposits   float64 // Total credited for the month
	MealCosts  float64 // Total charged for meals eaten in the month
	Meals      int     // Meal units eaten in the month
	Balance    float64 // Positive = in credit, Negative = owes money
}

// InMonth reports whether a "YYYY-MM-DD" date falls in a "YYYY-MM" month.
func InMonth(date, month string) bool {
	return len(date) > len(month) && date[:len(month)] == month && date[len(month)] == '-'
}

// DepositsForMonth sums the deposits credited to an employee for a month.
func DepositsForMonth(deposits []DepositForBalance, employeeID, month string) float64 {
	total := 0.0
	for _, d := range deposits {
		if d.EmployeeID == employeeID && d.Month == month {
			total += d.Amount
		}
	}
	return total
}

// MealCostsForMonth sums the meal costs charged to an employee for days in a month.
func MealCostsForMonth(costs []CostForBalance, employeeID, month string) float64 {
	total := 0.0
	for _, c := range costs {
		if c.EmployeeID == employeeID && InMonth(c.Date, month) {
			total += c.Total
		}
	}
	return total
}

// Balance computes deposits minus meal costs for an employee and month.
// Negative balances are valid and are not clamped.
func Balance(deposits []DepositForBalance, costs []CostForBalance, employeeID, month string) float64 {
	return DepositsForMonth(deposits, employeeID, month) - MealCostsForMonth(costs, employeeID, month)
}

// CalculateMonthlyBalances computes the monthly account of each employee.
// Results are ordered as employeeIDs.
func CalculateMonthlyBalances(employeeIDs []string, deposits []DepositForBalance, costs []CostForBalance, month string) []MonthlyBalance {
	balances := make([]MonthlyBalance, len(employeeIDs))
	for i, id := range employeeIDs {
		bal := MonthlyBalance{
			EmployeeID: id,
			Month:      month,
			Deposits:   DepositsForMonth(deposits, id, month),
			MealCosts:  MealCostsForMonth(costs, id, month),
		}
		for _, c := range costs {
			if c.EmployeeID == id && InMonth(c.Date, month) {
				bal.Meals += c.MealCount
			}
		}
		bal.Balance = bal.Deposits - bal.MealCosts
		balances[i] = bal
	}
	return balances
}

// DayTotals sums the meal costs of every employee per day.
// The returned dates are sorted.
func DayTotals(costs []CostForBalance) (dates []string, totals map[string]float64) {
	totals = make(map[string]float64)
	for _, c := range costs {
		if _, exists := totals[c.Date]; !exists {
			dates = append(dates, c.Date)
		}
		totals[c.Date] += c.Total
	}
	sort.Strings(dates)
	return dates, totals
}
