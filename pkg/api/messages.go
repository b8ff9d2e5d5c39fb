// Package api defines the record-service RPC contract: message types, the JSON codec,
// procedure names and the Connect handler and client constructors.
//
// The service is plain Connect over JSON, so any Connect client (or curl with
// Content-Type: application/json) can talk to it:
//
//	curl -X POST http://localhost:8080/mealwiser.v1.RecordService/ListEmployees \
//	  -H 'Content-Type: application/json' -d '{}'
package api

import "github.com/mmynk/mealwiser/internal/models"

// DeleteRequest removes one record of any kind by ID.
type DeleteRequest struct {
	ID string `json:"id"`
}

// DeleteResponse is empty; success is the absence of an error.
type DeleteResponse struct{}

type ListEmployeesRequest struct{}

type ListEmployeesResponse struct {
	Employees []models.Employee `json:"employees"`
}

type CreateEmployeeRequest struct {
	Employee models.Employee `json:"employee"`
}

type CreateEmployeeResponse struct {
	Employee models.Employee `json:"employee"`
}

// ListDepositsRequest lists deposits, optionally narrowed to one employee and/or month.
type ListDepositsRequest struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Month      string `json:"month,omitempty"`
}

type ListDepositsResponse struct {
	Deposits []models.Deposit `json:"deposits"`
}

type CreateDepositRequest struct {
	Deposit models.Deposit `json:"deposit"`
}

type CreateDepositResponse struct {
	Deposit models.Deposit `json:"deposit"`
}

// ListMealEntriesRequest lists meal entries, optionally for one day only.
type ListMealEntriesRequest struct {
	Date string `json:"date,omitempty"`
}

type ListMealEntriesResponse struct {
	MealEntries []models.MealEntry `json:"mealEntries"`
}

type CreateMealEntryRequest struct {
	MealEntry models.MealEntry `json:"mealEntry"`
}

type CreateMealEntryResponse struct {
	MealEntry models.MealEntry `json:"mealEntry"`
}

// UpdateMealEntryRequest replaces both participation flags of an entry.
type UpdateMealEntryRequest struct {
	ID     string `json:"id"`
	Lunch  int    `json:"lunch"`
	Dinner int    `json:"dinner"`
}

type UpdateMealEntryResponse struct {
	MealEntry models.MealEntry `json:"mealEntry"`
}

// ListMealCostsRequest lists meal costs, optionally narrowed to one employee and/or month.
type ListMealCostsRequest struct {
	EmployeeID string `json:"employeeId,omitempty"`
	Month      string `json:"month,omitempty"`
}

// ListMealCostsResponse carries the matching costs and the sum of their totals.
type ListMealCostsResponse struct {
	MealCosts []models.MealCost `json:"mealCosts"`
	Total     float64           `json:"total"`
}

type CreateMealCostRequest struct {
	MealCost models.MealCost `json:"mealCost"`
}

type CreateMealCostResponse struct {
	MealCost models.MealCost `json:"mealCost"`
}
