package storage

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/mealwiser/internal/models"
)

// Snapshot holds every record of every kind, as listed from one store.
type Snapshot struct {
	Employees   []models.Employee
	Deposits    []models.Deposit
	MealEntries []models.MealEntry
	MealCosts   []models.MealCost
}

// LoadSnapshot lists the four record kinds from s concurrently.
// It fails if any single list fails.
func LoadSnapshot(ctx context.Context, s Store) (*Snapshot, error) {
	var snap Snapshot
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		emps, err := s.ListEmployees(ctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		snap.Employees = emps
		return nil
	})
	g.Go(func() error {
		deps, err := s.ListDeposits(ctx, DepositFilter{})
		if err != nil {
			return fmt.Errorf("failed to list deposits: %w", err)
		}
		snap.Deposits = deps
		return nil
	})
	g.Go(func() error {
		entries, err := s.ListMealEntries(ctx, MealEntryFilter{})
		if err != nil {
			return fmt.Errorf("failed to list meal entries: %w", err)
		}
		snap.MealEntries = entries
		return nil
	})
	g.Go(func() error {
		costs, err := s.ListMealCosts(ctx, MealCostFilter{})
		if err != nil {
			return fmt.Errorf("failed to list meal costs: %w", err)
		}
		snap.MealCosts = costs
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
