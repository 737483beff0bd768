// Package simulation drives one dynasty forward a single day at a time:
// fetch the day's due events, dispatch each to its handler, persist
// results, and advance the calendar (spec.md §4.4). Grounded on the
// teacher's draft.Service "load state -> mutate -> persist -> save"
// per-operation transactionality, generalized from one draft pick to a
// loop over heterogeneous event handlers.
package simulation

import (
	"context"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/calendar"
	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/milestone"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/phase"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// Handler resolves one due event, returning the record to persist to its
// Results blob. A handler error marks the event failed but does not halt
// the day's remaining events (spec.md §4.4 step 3c).
type Handler interface {
	Handle(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error)
}

// HandlerFunc adapts a plain function to Handler.
type HandlerFunc func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error)

// Handle implements Handler.
func (f HandlerFunc) Handle(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
	return f(ctx, txn, e)
}

// HandlerRegistry maps an EventType to the Handler that resolves it.
type HandlerRegistry struct {
	handlers map[models.EventType]Handler
}

// NewHandlerRegistry returns an empty registry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[models.EventType]Handler)}
}

// Register binds a Handler to an EventType, replacing any existing one.
func (r *HandlerRegistry) Register(t models.EventType, h Handler) {
	r.handlers[t] = h
}

func (r *HandlerRegistry) lookup(t models.EventType) (Handler, bool) {
	h, ok := r.handlers[t]
	return h, ok
}

// Executor runs the day-tick sequence for one dynasty.
type Executor struct {
	events    *eventlog.Log
	phases    *phase.Tracker
	milestone *milestone.Router
	handlers  *HandlerRegistry
	log       *logger.Logger
}

// New constructs an Executor.
func New(events *eventlog.Log, phases *phase.Tracker, router *milestone.Router, handlers *HandlerRegistry, log *logger.Logger) *Executor {
	return &Executor{events: events, phases: phases, milestone: router, handlers: handlers, log: log}
}

// AdvanceOneDay runs spec.md §4.4's sequence for the calendar's current
// date. If an interactive milestone concerning userTeamID falls on this
// date, the day pauses without advancing: the caller must resolve or
// cancel it via the milestone router before retrying.
func (x *Executor) AdvanceOneDay(ctx context.Context, txn *store.Txn, dynastyID string, season int, cur *calendar.Cursor, bounds phase.Boundaries, currentPhase models.Phase, userTeamID int) (models.DayResult, error) {
	date := cur.Current()

	pending, err := x.milestone.Intercept(ctx, dynastyID, date, userTeamID)
	if err != nil {
		return models.DayResult{}, fmt.Errorf("intercept milestones for %s: %w", dynastyID, err)
	}
	if pending != nil {
		x.log.Info("day paused for interactive milestone", "dynasty_id", dynastyID, "event_id", pending.EventID, "event_type", pending.EventType)
		return models.DayResult{Date: date, Phase: currentPhase, PendingMilestone: &pending.EventID}, nil
	}

	due, err := x.events.OnDate(ctx, dynastyID, date)
	if err != nil {
		return models.DayResult{}, fmt.Errorf("fetch due events for %s on %s: %w", dynastyID, date, err)
	}

	result := models.DayResult{Date: date, Phase: currentPhase}
	for _, e := range due {
		if e.IsExecuted() {
			continue
		}
		h, ok := x.handlers.lookup(e.EventType)
		if !ok {
			x.log.Warn("no handler registered for event type", "dynasty_id", dynastyID, "event_type", e.EventType.String(), "event_id", e.EventID)
			continue
		}

		record, handleErr := h.Handle(ctx, txn, e)
		if handleErr != nil {
			record = models.ExecutionRecord{Success: false, ExecutedAt: date, Message: handleErr.Error()}
			x.log.Error("event handler failed, continuing day", "dynasty_id", dynastyID, "event_id", e.EventID, "error", handleErr)
		}
		if err := x.events.MarkExecuted(ctx, txn, e.EventID, record); err != nil {
			return models.DayResult{}, fmt.Errorf("persist result for event %s: %w", e.EventID, err)
		}
		result.EventsExecuted = append(result.EventsExecuted, e.EventID)
	}

	newDate := cur.AdvanceDay()
	newPhase, err := x.phases.Classify(ctx, dynastyID, season, newDate, bounds, currentPhase)
	if err != nil {
		return models.DayResult{}, fmt.Errorf("classify phase for %s on %s: %w", dynastyID, newDate, err)
	}
	if newPhase != currentPhase {
		result.PhaseTransitioned = true
	}
	result.Phase = newPhase
	return result, nil
}
