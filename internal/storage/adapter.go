package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmynk/mealwiser/internal/metrics"
	"github.com/mmynk/mealwiser/internal/models"
)

// Mode selects which store the Adapter routes calls to.
type Mode int

const (
	// ModeRemote routes every call to the remote store.
	ModeRemote Mode = iota
	// ModeLocalFallback routes every call to the local store for the rest of the session.
	ModeLocalFallback
)

func (m Mode) String() string {
	switch m {
	case ModeRemote:
		return "remote"
	case ModeLocalFallback:
		return "local-fallback"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Ensure Adapter implements Store
var _ Store = (*Adapter)(nil)

// Adapter routes record-store calls to a remote store, or to a local store once the
// remote one has failed to load. The switch happens at most once per session, so
// remote and local records are never mixed.
type Adapter struct {
	remote  Store
	local   Store
	mode    Mode
	warning string
}

// NewAdapter creates an Adapter in ModeRemote. A nil remote store starts the adapter
// directly in ModeLocalFallback.
func NewAdapter(remote, local Store) *Adapter {
	a := &Adapter{remote: remote, local: local}
	if remote == nil {
		a.setMode(ModeLocalFallback, "no remote store configured, using local storage")
	} else {
		a.setMode(ModeRemote, "")
	}
	return a
}

// Mode returns the current routing mode.
func (a *Adapter) Mode() Mode {
	return a.mode
}

// Warning returns the non-fatal warning raised when the adapter fell back to local
// storage, or "" while it is in ModeRemote.
func (a *Adapter) Warning() string {
	return a.warning
}

// Load lists every record kind for the initial ledger state. If any list against the
// remote store fails, the adapter switches to ModeLocalFallback and loads from the
// local store instead.
func (a *Adapter) Load(ctx context.Context) (*Snapshot, error) {
	if a.mode == ModeRemote {
		snap, err := LoadSnapshot(ctx, a.remote)
		if err == nil {
			return snap, nil
		}
		slog.Warn("Remote store failed to load, falling back to local storage", "error", err)
		a.setMode(ModeLocalFallback, fmt.Sprintf("remote store unavailable, working from local storage: %v", err))
	}

	snap, err := LoadSnapshot(ctx, a.local)
	if err != nil {
		return nil, fmt.Errorf("failed to load local storage: %w", err)
	}
	return snap, nil
}

func (a *Adapter) setMode(m Mode, warning string) {
	a.mode = m
	a.warning = warning
	metrics.StoreMode.Set(float64(m))
}

func (a *Adapter) active() Store {
	if a.mode == ModeLocalFallback {
		return a.local
	}
	return a.remote
}

func (a *Adapter) ListEmployees(ctx context.Context) ([]models.Employee, error) {
	return a.active().ListEmployees(ctx)
}

func (a *Adapter) CreateEmployee(ctx context.Context, emp *models.Employee) error {
	return a.active().CreateEmployee(ctx, emp)
}

func (a *Adapter) DeleteEmployee(ctx context.Context, id string) error {
	return a.active().DeleteEmployee(ctx, id)
}

func (a *Adapter) ListDeposits(ctx context.Context, filter DepositFilter) ([]models.Deposit, error) {
	return a.active().ListDeposits(ctx, filter)
}

func (a *Adapter) CreateDeposit(ctx context.Context, dep *models.Deposit) error {
	return a.active().CreateDeposit(ctx, dep)
}

func (a *Adapter) DeleteDeposit(ctx context.Context, id string) error {
	return a.active().DeleteDeposit(ctx, id)
}

func (a *Adapter) ListMealEntries(ctx context.Context, filter MealEntryFilter) ([]models.MealEntry, error) {
	return a.active().ListMealEntries(ctx, filter)
}

func (a *Adapter) CreateMealEntry(ctx context.Context, entry *models.MealEntry) error {
	return a.active().CreateMealEntry(ctx, entry)
}

func (a *Adapter) UpdateMealEntry(ctx context.Context, id string, lunch, dinner int) (*models.MealEntry, error) {
	return a.active().UpdateMealEntry(ctx, id, lunch, dinner)
}

func (a *Adapter) DeleteMealEntry(ctx context.Context, id string) error {
	return a.active().DeleteMealEntry(ctx, id)
}

func (a *Adapter) ListMealCosts(ctx context.Context, filter MealCostFilter) ([]models.MealCost, error) {
	return a.active().ListMealCosts(ctx, filter)
}

func (a *Adapter) CreateMealCost(ctx context.Context, cost *models.MealCost) error {
	return a.active().CreateMealCost(ctx, cost)
}

func (a *Adapter) DeleteMealCost(ctx context.Context, id string) error {
	return a.active().DeleteMealCost(ctx, id)
}

// Close closes both stores.
func (a *Adapter) Close() error {
	var err error
	if a.remote != nil {
		err = a.remote.Close()
	}
	if lerr := a.local.Close(); lerr != nil && err == nil {
		err = lerr
	}
	return err
}
