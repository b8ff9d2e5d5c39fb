package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/mealwiser/internal/models"
	"github.com/mmynk/mealwiser/internal/storage"
)

// Error kinds reported by engine operations. Test for them with errors.Is.
var (
	ErrInvalidInput     = models.ErrInvalidInput
	ErrStoreUnavailable = storage.ErrUnavailable
	ErrNotFound         = storage.ErrNotFound
	ErrPartialCascade   = errors.New("partial cascade failure")
	ErrPartialSubmit    = errors.New("partial day submission")
)

// PartialCascadeError reports an employee whose record was deleted while some of its
// dependent records could not be. Those records still reference the deleted employee.
type PartialCascadeError struct {
	EmployeeID string
	// FailedIDs lists the dependent records that are still stored.
	FailedIDs []string
	Err       error
}

func (e *PartialCascadeError) Error() string {
	return fmt.Sprintf("employee %s deleted but %d dependent record(s) remain (%s): %v",
		e.EmployeeID, len(e.FailedIDs), strings.Join(e.FailedIDs, ", "), e.Err)
}

// Is matches ErrPartialCascade.
func (e *PartialCascadeError) Is(target error) bool {
	return target == ErrPartialCascade
}

func (e *PartialCascadeError) Unwrap() error {
	return e.Err
}

// PartialSubmitError reports a day submission that changed the store but did not
// complete. The day's meal costs may not add up to the submitted total until the day
// is submitted again.
type PartialSubmitError struct {
	Date string
	// StrayCostIDs lists meal costs that should have been removed but are still stored.
	StrayCostIDs []string
	Err          error
}

func (e *PartialSubmitError) Error() string {
	if len(e.StrayCostIDs) == 0 {
		return fmt.Sprintf("day %s partly saved: %v", e.Date, e.Err)
	}
	return fmt.Sprintf("day %s partly saved, %d stray meal cost(s) (%s): %v",
		e.Date, len(e.StrayCostIDs), strings.Join(e.StrayCostIDs, ", "), e.Err)
}

// Is matches ErrPartialSubmit.
func (e *PartialSubmitError) Is(target error) bool {
	return target == ErrPartialSubmit
}

func (e *PartialSubmitError) Unwrap() error {
	return e.Err
}

// Advice converts an engine error into a one-line message for the person at the
// keyboard.
func Advice(err error) string {
	var cascade *PartialCascadeError
	var submit *PartialSubmitError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &submit):
		return fmt.Sprintf("The day %s was only partly saved. Submit it again.", submit.Date)
	case errors.As(err, &cascade):
		return fmt.Sprintf("Employee removed, but %d related record(s) could not be deleted. Try removing them again.", len(cascade.FailedIDs))
	case errors.Is(err, ErrStoreUnavailable):
		return "The record store is unreachable. Nothing was changed."
	case errors.Is(err, ErrNotFound):
		return "That record no longer exists. Nothing was changed."
	case errors.Is(err, ErrInvalidInput):
		return fmt.Sprintf("Please check your input: %v", err)
	default:
		return fmt.Sprintf("Operation failed: %v", err)
	}
}
