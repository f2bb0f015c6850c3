// Package lifecycle decides whether deleting a record destroys it or
// deactivates it, and handles the inverse transition. The decision is a
// total function of the dependent count: zero dependents permits a hard
// delete, anything else preserves the row and flips its active flag.
package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"repairshop-backend/internal/store"
)

// Mode reports which delete path was taken.
type Mode string

const (
	ModeHard Mode = "hard"
	ModeSoft Mode = "soft"
)

// Outcome is the structured result of a delete.
type Outcome struct {
	Mode    Mode   `json:"mode"`
	Message string `json:"message"`
}

// Result is the structured result of a reactivate.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Flagger is the slice of the record store the manager writes through.
// Any store.Records value satisfies it.
type Flagger interface {
	SetActive(ctx context.Context, id int64, active bool) error
	HardDelete(ctx context.Context, id int64) error
}

// CountFunc counts dependents of one parent record. It must be read-only.
type CountFunc func(ctx context.Context, id int64) (int64, error)

// Manager runs the delete/reactivate state machine for one entity kind.
type Manager struct {
	label      string
	records    Flagger
	dependents CountFunc // nil when the entity has no dependent concept
}

// NewManager builds a manager for an entity kind. label appears in
// user-facing messages ("Client", "Equipment", ...). dependents may be
// nil, in which case Delete always deactivates.
func NewManager(label string, records Flagger, dependents CountFunc) *Manager {
	return &Manager{label: label, records: records, dependents: dependents}
}

// Delete hard-deletes the record when nothing references it, otherwise
// marks it inactive so history stays resolvable. Errors from the store
// pass through unchanged; the decision only runs after a successful
// dependent count.
func (m *Manager) Delete(ctx context.Context, id int64) (Outcome, error) {
	if m.dependents == nil {
		if err := m.records.SetActive(ctx, id, false); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Mode:    ModeSoft,
			Message: fmt.Sprintf("%s deactivated.", m.label),
		}, nil
	}

	n, err := m.dependents(ctx, id)
	if err != nil {
		return Outcome{}, fmt.Errorf("counting dependents of %s %d: %w", m.label, id, err)
	}
	if n == 0 {
		if err := m.records.HardDelete(ctx, id); err != nil {
			return Outcome{}, err
		}
		return Outcome{
			Mode:    ModeHard,
			Message: fmt.Sprintf("%s deleted permanently.", m.label),
		}, nil
	}

	if err := m.records.SetActive(ctx, id, false); err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Mode: ModeSoft,
		Message: fmt.Sprintf("%s has %d associated record(s) and was marked inactive; history preserved.",
			m.label, n),
	}, nil
}

// Reactivate flips the record back to active. It is idempotent: the
// operation is defined by the record ending up active, so reactivating
// an already-active or already-purged record succeeds without effect.
func (m *Manager) Reactivate(ctx context.Context, id int64) (Result, error) {
	if err := m.records.SetActive(ctx, id, true); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return Result{Success: true, Message: fmt.Sprintf("%s reactivated.", m.label)}, nil
		}
		return Result{}, err
	}
	return Result{Success: true, Message: fmt.Sprintf("%s reactivated.", m.label)}, nil
}
