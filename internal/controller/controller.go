// Package controller composes the season-cycle subsystems into the
// single top-level entry point a host (HTTP handler or CLI command)
// drives: advance_day, advance_week, advance_to_phase_end,
// skip_to_new_season (spec.md §4.9). Grounded on the teacher's
// cmd/api/main.go composition-root wiring order (config -> db -> redis
// -> repos -> services -> handlers), generalized from "wire HTTP
// handlers" to "wire simulation components".
package controller

import (
	"context"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/calendar"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/phase"
	"github.com/nfl-analytics/dynasty-core/internal/seasonsync"
	"github.com/nfl-analytics/dynasty-core/internal/simulation"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/internal/transition"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// advanceWeekCap is advance_week's iteration count: a calendar week
// (spec.md §4.9).
const advanceWeekCap = 7

// advancePhaseEndSafetyCap bounds advance_to_phase_end against a phase
// that never ends due to a scheduling bug (spec.md §4.9).
const advancePhaseEndSafetyCap = 365

// advancePhaseEndDaylessCap stops advance_to_phase_end after this many
// consecutive days produce no events, a secondary safety valve distinct
// from the day-count cap.
const advancePhaseEndDaylessCap = 30

// SeedingInputs supplies what RegularSeasonToPlayoffs needs to compute
// seeding, gathered from the standings/schedule collaborators outside
// this package's scope.
type SeedingInputs struct {
	Conferences map[string][]int
	Seeder      func(conference string, teamIDs []int) []int
}

// Hooks lets a host supply the domain inputs a phase transition needs
// that this package has no component for (standings tie-break cascade,
// champion determination). Any hook left nil makes its transition a
// no-op beyond the phase flip itself.
type Hooks struct {
	Seeding       func(ctx context.Context) (SeedingInputs, error)
	ChampionTeamID func(ctx context.Context) (int, error)
}

// Controller drives one dynasty's simulation forward.
type Controller struct {
	dynastyID  string
	season     int
	userTeamID int

	cursor  *calendar.Cursor
	bounds  phase.Boundaries
	state   *seasonsync.DynastyStateRef
	phases  *phase.Tracker
	sync    *seasonsync.Synchronizer
	exec    *simulation.Executor
	transit *transition.Handlers
	dynasties *store.DynastyRepository
	hooks   Hooks
	log     *logger.Logger
}

// New constructs a Controller for one dynasty, already positioned at
// state's current date and phase.
func New(dynastyID string, season, userTeamID int, state *seasonsync.DynastyStateRef, bounds phase.Boundaries, phases *phase.Tracker, sync *seasonsync.Synchronizer, exec *simulation.Executor, transit *transition.Handlers, dynasties *store.DynastyRepository, hooks Hooks, log *logger.Logger) *Controller {
	return &Controller{
		dynastyID:  dynastyID,
		season:     season,
		userTeamID: userTeamID,
		cursor:     calendar.NewCursor(state.Get().CurrentDate),
		bounds:     bounds,
		state:      state,
		phases:     phases,
		sync:       sync,
		exec:       exec,
		transit:    transit,
		dynasties:  dynasties,
		hooks:      hooks,
		log:        log,
	}
}

// AdvanceDay runs exactly one day-tick (spec.md §4.4), applying any
// phase-edge transition the tick crosses, then persists the resulting
// cursor/phase onto the dynasty-state row within txn.
func (c *Controller) AdvanceDay(ctx context.Context, txn *store.Txn) (models.DayResult, error) {
	current := c.state.Get()
	result, err := c.exec.AdvanceOneDay(ctx, txn, c.dynastyID, c.season, c.cursor, c.bounds, current.CurrentPhase, c.userTeamID)
	if err != nil {
		return models.DayResult{}, err
	}
	if result.Paused() {
		return result, nil
	}

	oldPhase := current.CurrentPhase
	if result.PhaseTransitioned {
		if err := c.handleTransition(ctx, txn, oldPhase, result.Phase); err != nil {
			return models.DayResult{}, fmt.Errorf("phase transition %s->%s: %w", oldPhase, result.Phase, err)
		}
	}

	next := c.state.Get()
	next.CurrentDate = c.cursor.Current()
	next.CurrentPhase = result.Phase
	if err := c.dynasties.SaveState(ctx, txn, &next); err != nil {
		return models.DayResult{}, fmt.Errorf("persist day-tick state: %w", err)
	}
	c.state.Set(next)

	return result, nil
}

func (c *Controller) handleTransition(ctx context.Context, txn *store.Txn, oldPhase, newPhase models.Phase) error {
	switch {
	case oldPhase == models.RegularSeason && newPhase == models.Playoffs:
		if c.hooks.Seeding == nil {
			return nil
		}
		inputs, err := c.hooks.Seeding(ctx)
		if err != nil {
			return fmt.Errorf("gather seeding inputs: %w", err)
		}
		_, err = c.transit.RegularSeasonToPlayoffs(ctx, txn, c.season, inputs.Conferences, inputs.Seeder)
		return err

	case oldPhase == models.Playoffs && newPhase == models.Offseason:
		if c.hooks.ChampionTeamID == nil {
			return nil
		}
		champion, err := c.hooks.ChampionTeamID(ctx)
		if err != nil {
			return fmt.Errorf("determine champion: %w", err)
		}
		return c.transit.PlayoffsToOffseason(ctx, txn, c.season, champion)

	case oldPhase == models.Offseason && newPhase == models.Preseason:
		result, err := c.transit.OffseasonToPreseason(ctx, txn, c.state, c.season)
		if err != nil {
			return err
		}
		c.season = result.NewYear
		nextRegularSeasonStart := models.NewDate(result.NewYear, c.bounds.RegularSeasonStart.Month, c.bounds.RegularSeasonStart.Day)
		return c.transit.InitializeNewSeason(ctx, txn, result.OldYear, result.NewYear, nextRegularSeasonStart)

	default:
		return nil
	}
}

// AdvanceWeek iterates AdvanceDay up to 7 times, stopping early if a day
// pauses for an interactive milestone (spec.md §4.9).
func (c *Controller) AdvanceWeek(ctx context.Context, txn *store.Txn) (models.WeekResult, error) {
	start := c.cursor.Current()
	week := models.WeekResult{StartDate: start}
	for i := 0; i < advanceWeekCap; i++ {
		day, err := c.AdvanceDay(ctx, txn)
		if err != nil {
			return models.WeekResult{}, err
		}
		week.Days = append(week.Days, day)
		if day.Paused() {
			break
		}
	}
	week.EndDate = c.cursor.Current()
	return week, nil
}

// AdvanceToPhaseEnd iterates AdvanceDay until the phase changes, with a
// day-count safety cap and a consecutive-dayless-day safety cap (spec.md
// §4.9).
func (c *Controller) AdvanceToPhaseEnd(ctx context.Context, txn *store.Txn) (models.PhaseResult, error) {
	startPhase := c.state.Get().CurrentPhase
	result := models.PhaseResult{StartPhase: startPhase, EndPhase: startPhase}

	daylessStreak := 0
	for i := 0; i < advancePhaseEndSafetyCap; i++ {
		day, err := c.AdvanceDay(ctx, txn)
		if err != nil {
			return models.PhaseResult{}, err
		}
		result.Days = append(result.Days, day)

		if len(day.EventsExecuted) == 0 {
			daylessStreak++
		} else {
			daylessStreak = 0
		}

		if day.Paused() {
			result.EndPhase = day.Phase
			result.PhaseEndDate = day.Date
			return result, nil
		}
		if day.PhaseTransitioned {
			result.EndPhase = day.Phase
			result.PhaseEndDate = day.Date
			return result, nil
		}
		if daylessStreak >= advancePhaseEndDaylessCap {
			c.log.Warn("advance_to_phase_end stopped: dayless streak exceeded", "dynasty_id", c.dynastyID, "streak", daylessStreak)
			break
		}
	}

	result.EndPhase = c.state.Get().CurrentPhase
	result.PhaseEndDate = c.cursor.Current()
	return result, nil
}

// SkipToNewSeason advances non-interactively through the remainder of
// the offseason, letting every milestone resolve via its AI default
// (spec.md §4.9) by running with no user team for the duration, then
// restoring it.
func (c *Controller) SkipToNewSeason(ctx context.Context, txn *store.Txn) (models.PhaseResult, error) {
	savedUserTeam := c.userTeamID
	c.userTeamID = 0
	defer func() { c.userTeamID = savedUserTeam }()

	return c.AdvanceToPhaseEnd(ctx, txn)
}
