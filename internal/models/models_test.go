package models

import (
	"errors"
	"testing"
)

func TestEmployeeValidate(t *testing.T) {
	tests := []struct {
		name    string
		emp     Employee
		wantErr bool
	}{
		{"regular", Employee{Name: "Alice", Type: EmployeeRegular}, false},
		{"guest", Employee{Name: "Bob", Type: EmployeeGuest}, false},
		{"empty name", Employee{Name: "  ", Type: EmployeeRegular}, true},
		{"unknown type", Employee{Name: "Carol", Type: "contractor"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.emp.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDepositValidate(t *testing.T) {
	tests := []struct {
		name    string
		dep     Deposit
		wantErr bool
	}{
		{"valid", Deposit{EmployeeID: "e1", Amount: 500, Month: "2024-01"}, false},
		{"zero amount", Deposit{EmployeeID: "e1", Amount: 0, Month: "2024-01"}, true},
		{"negative amount", Deposit{EmployeeID: "e1", Amount: -5, Month: "2024-01"}, true},
		{"bad month", Deposit{EmployeeID: "e1", Amount: 5, Month: "2024-1"}, true},
		{"day instead of month", Deposit{EmployeeID: "e1", Amount: 5, Month: "2024-01-15"}, true},
		{"no employee", Deposit{Amount: 5, Month: "2024-01"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.dep.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMealEntryValidate(t *testing.T) {
	tests := []struct {
		name    string
		entry   MealEntry
		wantErr bool
	}{
		{"both meals", MealEntry{EmployeeID: "e1", Date: "2024-01-15", Lunch: 1, Dinner: 1}, false},
		{"no meals", MealEntry{EmployeeID: "e1", Date: "2024-01-15"}, false},
		{"lunch out of range", MealEntry{EmployeeID: "e1", Date: "2024-01-15", Lunch: 2}, true},
		{"bad date", MealEntry{EmployeeID: "e1", Date: "15/01/2024", Lunch: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.entry.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMealEntryMealCount(t *testing.T) {
	entry := MealEntry{Lunch: 1, Dinner: 1}
	if got := entry.MealCount(); got != 2 {
		t.Errorf("MealCount() = %d, want 2", got)
	}
	entry.Dinner = 0
	if got := entry.MealCount(); got != 1 {
		t.Errorf("MealCount() = %d, want 1", got)
	}
}

func TestMonthOf(t *testing.T) {
	if got := MonthOf("2024-01-15"); got != "2024-01" {
		t.Errorf("MonthOf() = %q, want 2024-01", got)
	}
}
