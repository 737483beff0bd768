// Package seasonsync provides atomic synchronization of a dynasty's
// season year across every component that caches it, directly grounded
// on original_source/src/season/season_year_synchronizer.py. A bare
// `state.CurrentYear = newYear` assignment anywhere outside Synchronizer
// is what this package exists to prevent.
package seasonsync

import (
	"context"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// DynastyStateRef is the controller's in-memory handle on its current
// state row — the Go replacement for the original's
// get_current_year/set_controller_year closure pair.
type DynastyStateRef struct {
	state models.DynastyState
}

// NewDynastyStateRef wraps an already-loaded state.
func NewDynastyStateRef(state models.DynastyState) *DynastyStateRef {
	return &DynastyStateRef{state: state}
}

// Get returns a copy of the current state.
func (r *DynastyStateRef) Get() models.DynastyState {
	return r.state
}

// Set replaces the held state.
func (r *DynastyStateRef) Set(state models.DynastyState) {
	r.state = state
}

// Synchronizer holds the registry of components that must be notified
// whenever a dynasty's season year changes. One instance lives per
// Controller; there is no global/shared registry.
type Synchronizer struct {
	dynastyID string
	store     *store.DynastyRepository
	log       *logger.Logger
	callbacks map[string]func(newYear int)
}

// New returns a Synchronizer for one dynasty.
func New(dynastyID string, repo *store.DynastyRepository, log *logger.Logger) *Synchronizer {
	return &Synchronizer{
		dynastyID: dynastyID,
		store:     repo,
		log:       log,
		callbacks: make(map[string]func(int)),
	}
}

// RegisterCallback registers a component to be notified when the year
// changes. Re-registering the same name replaces its callback.
func (s *Synchronizer) RegisterCallback(name string, fn func(newYear int)) {
	s.callbacks[name] = fn
}

// UnregisterCallback removes a component from the notification registry.
func (s *Synchronizer) UnregisterCallback(name string) {
	delete(s.callbacks, name)
}

// Synchronize is the single method for changing a dynasty's season year.
// It writes the database value first (the source of truth) and only then
// notifies registered components; a failing callback is logged and
// skipped rather than aborting the others, since the database write has
// already been made in the caller's transaction by that point.
func (s *Synchronizer) Synchronize(ctx context.Context, txn *store.Txn, state *DynastyStateRef, newYear int, reason string) error {
	oldYear := state.Get().CurrentYear
	if oldYear == newYear {
		s.log.Debug("season year already current, skipping synchronization", "dynasty_id", s.dynastyID, "year", newYear)
		return nil
	}

	s.log.Info("synchronizing season year",
		"dynasty_id", s.dynastyID, "old_year", oldYear, "new_year", newYear,
		"reason", reason, "registered_components", len(s.callbacks),
	)

	next := state.Get()
	next.CurrentYear = newYear
	if err := s.store.SaveState(ctx, txn, &next); err != nil {
		return fmt.Errorf("synchronize season year to %d: %w", newYear, err)
	}
	state.Set(next)

	for name, callback := range s.callbacks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					s.log.Error("component failed to update for year change", "component", name, "year", newYear, "panic", r)
				}
			}()
			callback(newYear)
		}()
	}

	s.log.Info("season year synchronized", "dynasty_id", s.dynastyID, "new_year", newYear)
	return nil
}

// Increment advances the season year by one and returns the new value.
func (s *Synchronizer) Increment(ctx context.Context, txn *store.Txn, state *DynastyStateRef, reason string) (int, error) {
	newYear := state.Get().CurrentYear + 1
	if err := s.Synchronize(ctx, txn, state, newYear, reason); err != nil {
		return 0, err
	}
	return newYear, nil
}
