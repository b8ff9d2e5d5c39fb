package calculator

import (
	"fmt"
	"math"

	"github.com/mmynk/mealwiser/internal/models"
)

// Split errors all match models.ErrInvalidInput.
var (
	// ErrNoMealUnits is returned when a split has no meal units to divide by.
	ErrNoMealUnits = fmt.Errorf("%w: total meal units cannot be zero", models.ErrInvalidInput)

	// ErrInvalidTotal is returned for a non-positive or non-finite daily total.
	ErrInvalidTotal = fmt.Errorf("%w: daily total cost must be positive", models.ErrInvalidInput)

	// ErrInvalidParticipant is returned for a malformed participant.
	ErrInvalidParticipant = fmt.Errorf("%w: invalid participant", models.ErrInvalidInput)
)

// Participant is one employee's meal participation for a day.
type Participant struct {
	EmployeeID string
	MealCount  int // 1 (lunch or dinner) or 2 (both)
}

// Share is the calculated cost for one participant.
type Share struct {
	EmployeeID   string
	MealCount    int
	EmployeeCost float64
	CostPerMeal  float64
}

// SplitDailyCost divides a day's total meal cost among participants in proportion
// to the meal units each one consumed.
// Based on the algorithm: employee_cost = (daily_total / total_meal_units) × meal_count
//
// Every share carries the same CostPerMeal: lunch and dinner cost the same, and the
// per-meal figure depends only on how many meal units were eaten that day. Shares are
// returned in participant order. There is no rounding step, so the sum of shares
// matches dailyTotal only within floating point tolerance.
func SplitDailyCost(dailyTotal float64, participants []Participant) ([]Share, error) {
	if math.IsNaN(dailyTotal) || math.IsInf(dailyTotal, 0) || dailyTotal <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidTotal, dailyTotal)
	}

	totalMealUnits := 0
	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if p.EmployeeID == "" {
			return nil, fmt.Errorf("%w: empty employee id", ErrInvalidParticipant)
		}
		if seen[p.EmployeeID] {
			return nil, fmt.Errorf("%w: employee %s listed twice", ErrInvalidParticipant, p.EmployeeID)
		}
		seen[p.EmployeeID] = true

		if p.MealCount < 1 || p.MealCount > 2 {
			return nil, fmt.Errorf("%w: employee %s has meal count %d, want 1 or 2",
				ErrInvalidParticipant, p.EmployeeID, p.MealCount)
		}
		totalMealUnits += p.MealCount
	}
	if totalMealUnits == 0 {
		return nil, ErrNoMealUnits
	}

	costPerMealUnit := dailyTotal / float64(totalMealUnits)

	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{
			EmployeeID:   p.EmployeeID,
			MealCount:    p.MealCount,
			EmployeeCost: costPerMealUnit * float64(p.MealCount),
			CostPerMeal:  costPerMealUnit,
		}
	}

	return shares, nil
}

// CostPerMeal returns total / mealCount, or 0 when mealCount is zero.
func CostPerMeal(total float64, mealCount int) float64 {
	if mealCount <= 0 {
		return 0
	}
	return total / float64(mealCount)
}
