// Package hostapi wires the season-cycle core (internal/controller and
// everything underneath it) to an HTTP surface, the way the teacher's
// internal/handlers wraps internal/services for the account/auth slice.
// A Manager holds the shared, process-lifetime dependencies; each
// request builds a fresh internal/controller.Controller scoped to one
// dynasty, since a Controller carries per-dynasty in-memory state (its
// calendar cursor and cached DynastyState) that must not leak across
// requests for different dynasties.
package hostapi

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/contract"
	"github.com/nfl-analytics/dynasty-core/internal/controller"
	"github.com/nfl-analytics/dynasty-core/internal/draft"
	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/milestone"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/phase"
	"github.com/nfl-analytics/dynasty-core/internal/seasonsync"
	"github.com/nfl-analytics/dynasty-core/internal/simulation"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/internal/transition"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// Manager holds every shared collaborator the hostapi handlers need.
// It is constructed once at startup and handed to every handler.
type Manager struct {
	store      *store.Store
	dynasties  *store.DynastyRepository
	standings  *store.StandingsRepository
	contracts  *store.ContractRepository
	drafts     *store.DraftRepository
	events     *eventlog.Log
	phases     *phase.Tracker
	milestones *milestone.Router
	bounds     phase.Boundaries
	draftSvc   *draft.Service
	contractSvc *contract.Service
	gameProvider simulation.GameResultProvider
	log        *logger.Logger
}

// Config bundles the constructor inputs that aren't themselves
// collaborator handles.
type Config struct {
	Bounds       phase.Boundaries
	GameProvider simulation.GameResultProvider
}

// NewManager wires every collaborator needed to drive the season cycle
// over HTTP, grounded on the teacher's cmd/api/main.go wiring order:
// repositories first, then domain services, then the manager that
// fronts them.
func NewManager(st *store.Store, dynasties *store.DynastyRepository, standings *store.StandingsRepository,
	contracts *store.ContractRepository, drafts *store.DraftRepository, events *eventlog.Log,
	milestones *milestone.Router, draftSvc *draft.Service, contractSvc *contract.Service,
	cfg Config, log *logger.Logger) *Manager {
	return &Manager{
		store:        st,
		dynasties:    dynasties,
		standings:    standings,
		contracts:    contracts,
		drafts:       drafts,
		events:       events,
		phases:       phase.New(events),
		milestones:   milestones,
		bounds:       cfg.Bounds,
		draftSvc:     draftSvc,
		contractSvc:  contractSvc,
		gameProvider: cfg.GameProvider,
		log:          log,
	}
}

// buildController loads a dynasty's current state and assembles a fresh
// Controller around it. Called once per request; a Controller is too
// cheap to keep warm across requests and keeping one would mean either
// a map keyed by dynasty id (lock contention across unrelated dynasties)
// or a single shared instance (wrong entirely, since each dynasty has
// its own calendar cursor).
func (m *Manager) buildController(ctx context.Context, dynastyID string, season int, hooks controller.Hooks) (*controller.Controller, error) {
	rawState, err := m.dynasties.GetState(ctx, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("load dynasty state: %w", err)
	}
	dynasty, err := m.dynasties.Get(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("load dynasty: %w", err)
	}

	userTeamID := 0
	if dynasty.UserTeamID != nil {
		userTeamID = *dynasty.UserTeamID
	}

	stateRef := seasonsync.NewDynastyStateRef(*rawState)
	sync := seasonsync.New(dynastyID, m.dynasties, m.log)

	handlers := simulation.NewHandlerRegistry()
	handlers.Register(models.EventGame, simulation.NewGameHandler(m.gameProvider, m.standings, season, models.SeasonTypeRegularSeason))
	handlers.Register(models.EventDraftDay, m.draftDayHandler(dynastyID, season))
	handlers.Register(models.EventDeadline, aiDefaultMilestoneHandler())
	handlers.Register(models.EventWindow, aiDefaultMilestoneHandler())
	exec := simulation.New(m.events, m.phases, m.milestones, handlers, m.log)

	transitionHandlers := transition.New(dynastyID, sync, m.contractSvc, m.draftSvc, m.standings, m.dynasties, m.events, m.log)

	return controller.New(dynastyID, season, userTeamID, stateRef, m.bounds, m.phases, sync, exec, transitionHandlers, m.dynasties, hooks, m.log), nil
}

// draftDayHandler returns the AI default for a DRAFT_DAY event that
// reaches dispatch rather than pausing: milestone.Router only pauses a
// DRAFT_DAY concerning the dynasty's user team, so reaching this handler
// means either the dynasty has no user team or the user's picks were
// already submitted out of band (DraftHandler.Simulate), and the
// remainder of the draft runs to completion under the evaluator
// (spec.md §4.5 "Full 262-pick simulation").
func (m *Manager) draftDayHandler(dynastyID string, season int) simulation.Handler {
	noNeeds := draft.NeedsProvider(func(teamID int) []models.TeamNeed { return nil })
	return simulation.HandlerFunc(func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
		picks, err := m.draftSvc.SimulateDraft(ctx, txn, dynastyID, season, 0, nil, noNeeds)
		if err != nil {
			return models.ExecutionRecord{}, fmt.Errorf("simulate draft day for %s: %w", dynastyID, err)
		}
		return models.ExecutionRecord{Success: true, ExecutedAt: e.Timestamp, Message: fmt.Sprintf("AI draft default executed %d picks", len(picks))}, nil
	})
}

// aiDefaultMilestoneHandler returns the AI default for a DEADLINE or
// WINDOW event that reaches dispatch without pausing for the user: the
// roster/contract content model these deadlines act on is an external
// collaborator this core doesn't implement (spec.md §1 "out of scope"),
// so the AI default is to mark the milestone resolved without mutating a
// roster this package has no model for (spec.md §4.5's DEADLINE{FRANCHISE_TAG}
// row names exactly this as the documented AI behavior: "No-op (AI skips)").
func aiDefaultMilestoneHandler() simulation.Handler {
	return simulation.HandlerFunc(func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
		var params milestone.Params
		kind := "unspecified"
		if err := json.Unmarshal(e.Parameters, &params); err == nil && params.Kind != "" {
			kind = params.Kind
		}
		return models.ExecutionRecord{
			Success:    true,
			ExecutedAt: e.Timestamp,
			Message:    fmt.Sprintf("AI default applied for %s (%s)", e.EventType.String(), kind),
		}, nil
	})
}

// withTxn runs fn inside a transaction scoped to dynastyID, committing
// on success and rolling back on any error fn returns.
func (m *Manager) withTxn(ctx context.Context, dynastyID string, fn func(ctx context.Context, txn *store.Txn) (interface{}, error)) (interface{}, error) {
	txn, err := m.store.Begin(ctx, dynastyID)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	result, err := fn(ctx, txn)
	if err != nil {
		txn.Rollback()
		return nil, err
	}
	if err := txn.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}

// runOp scopes a Controller operation to one transaction, the pattern
// shared by every exported advancement method below.
func (m *Manager) runOp(ctx context.Context, dynastyID string, season int, op func(ctx context.Context, txn *store.Txn, ctrl *controller.Controller) (interface{}, error)) (interface{}, error) {
	return m.withTxn(ctx, dynastyID, func(ctx context.Context, txn *store.Txn) (interface{}, error) {
		ctrl, err := m.buildController(ctx, dynastyID, season, controller.Hooks{})
		if err != nil {
			return nil, err
		}
		return op(ctx, txn, ctrl)
	})
}

// AdvanceDay advances dynastyID's calendar by one day. Exported so both
// SimulationHandler (over HTTP) and cmd/simctl (in-process) share one
// transaction-scoping implementation rather than duplicating it.
func (m *Manager) AdvanceDay(ctx context.Context, dynastyID string, season int) (models.DayResult, error) {
	result, err := m.runOp(ctx, dynastyID, season, func(ctx context.Context, txn *store.Txn, ctrl *controller.Controller) (interface{}, error) {
		return ctrl.AdvanceDay(ctx, txn)
	})
	if err != nil {
		return models.DayResult{}, err
	}
	return result.(models.DayResult), nil
}

// AdvanceWeek advances dynastyID's calendar by up to seven days, same
// sharing rationale as AdvanceDay.
func (m *Manager) AdvanceWeek(ctx context.Context, dynastyID string, season int) (models.WeekResult, error) {
	result, err := m.runOp(ctx, dynastyID, season, func(ctx context.Context, txn *store.Txn, ctrl *controller.Controller) (interface{}, error) {
		return ctrl.AdvanceWeek(ctx, txn)
	})
	if err != nil {
		return models.WeekResult{}, err
	}
	return result.(models.WeekResult), nil
}

// AdvanceToPhaseEnd runs dynastyID forward to the end of its current
// phase or the next interactive milestone, same sharing rationale as
// AdvanceDay.
func (m *Manager) AdvanceToPhaseEnd(ctx context.Context, dynastyID string, season int) (models.PhaseResult, error) {
	result, err := m.runOp(ctx, dynastyID, season, func(ctx context.Context, txn *store.Txn, ctrl *controller.Controller) (interface{}, error) {
		return ctrl.AdvanceToPhaseEnd(ctx, txn)
	})
	if err != nil {
		return models.PhaseResult{}, err
	}
	return result.(models.PhaseResult), nil
}

// SkipToNewSeason runs dynastyID all the way into next season's
// preseason, same sharing rationale as AdvanceDay.
func (m *Manager) SkipToNewSeason(ctx context.Context, dynastyID string, season int) (models.PhaseResult, error) {
	result, err := m.runOp(ctx, dynastyID, season, func(ctx context.Context, txn *store.Txn, ctrl *controller.Controller) (interface{}, error) {
		return ctrl.SkipToNewSeason(ctx, txn)
	})
	if err != nil {
		return models.PhaseResult{}, err
	}
	return result.(models.PhaseResult), nil
}

// GetDynasty looks up a dynasty by id, exposed for cmd/simctl.
func (m *Manager) GetDynasty(ctx context.Context, dynastyID string) (*models.Dynasty, error) {
	return m.dynasties.Get(ctx, dynastyID)
}

// ListDynastiesForOwner lists every active dynasty owned by ownerUserID,
// exposed for cmd/simctl.
func (m *Manager) ListDynastiesForOwner(ctx context.Context, ownerUserID string) ([]*models.Dynasty, error) {
	return m.dynasties.ListForOwner(ctx, ownerUserID)
}

// ResolveMilestone answers dynastyID's pending interactive milestone
// with message, exposed for cmd/simctl alongside
// SimulationHandler.ResolveMilestone's HTTP path.
func (m *Manager) ResolveMilestone(ctx context.Context, dynastyID, message string) error {
	_, err := m.withTxn(ctx, dynastyID, func(ctx context.Context, txn *store.Txn) (interface{}, error) {
		return nil, m.milestones.Resolve(ctx, txn, dynastyID, message)
	})
	return err
}

// CancelMilestone discards dynastyID's pending interactive milestone
// without answering it, exposed for cmd/simctl alongside
// SimulationHandler.CancelMilestone's HTTP path.
func (m *Manager) CancelMilestone(ctx context.Context, dynastyID string) error {
	return m.milestones.Cancel(ctx, dynastyID)
}

// CreateDynasty registers a new dynasty and its initial preseason state
// row, exposed for cmd/simctl alongside DynastyHandler.Create's HTTP path.
func (m *Manager) CreateDynasty(ctx context.Context, dynasty *models.Dynasty, initial *models.DynastyState) error {
	if err := m.dynasties.Create(ctx, dynasty); err != nil {
		return err
	}
	_, err := m.withTxn(ctx, dynasty.ID, func(ctx context.Context, txn *store.Txn) (interface{}, error) {
		return nil, m.dynasties.InitState(ctx, txn, initial)
	})
	return err
}
