package models

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the layout of MealEntry and MealCost dates.
	DateLayout = "2006-01-02"

	// MonthLayout is the layout of Deposit months and month queries.
	MonthLayout = "2006-01"
)

// ValidateDate checks that s is a "YYYY-MM-DD" day.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return fmt.Errorf("%w: date %q is not YYYY-MM-DD", ErrInvalidInput, s)
	}
	return nil
}

// ValidateMonth checks that s is a "YYYY-MM" month.
func ValidateMonth(s string) error {
	if _, err := time.Parse(MonthLayout, s); err != nil {
		return fmt.Errorf("%w: month %q is not YYYY-MM", ErrInvalidInput, s)
	}
	return nil
}

// MonthOf returns the "YYYY-MM" month of a "YYYY-MM-DD" date.
func MonthOf(date string) string {
	if len(date) < len(MonthLayout) {
		return date
	}
	return date[:len(MonthLayout)]
}
