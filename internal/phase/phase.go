// Package phase classifies a dynasty's current date into one of the four
// season phases. Classification is date-based, not count-based: it asks
// "has the last regular-season game been played" rather than counting
// down a fixed number of weeks, because bye weeks and schedule length can
// vary (spec.md §4.3).
package phase

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// Boundaries are the fixed calendar dates that bound preseason and the
// regular season for one league year. RegularSeason and Playoffs end
// when their terminal game resolves rather than on a fixed date, so
// Tracker derives those from the event log instead of from Boundaries;
// PreseasonStart is what ends Offseason.
type Boundaries struct {
	PreseasonStart     models.Date
	RegularSeasonStart models.Date
}

// Tracker classifies dates into phases for one dynasty.
type Tracker struct {
	log *eventlog.Log
}

// New returns a Tracker backed by log.
func New(log *eventlog.Log) *Tracker {
	return &Tracker{log: log}
}

// Classify determines the phase for date, given the dynasty's current
// recorded phase (classification never jumps backward past what the
// state machine has already recorded — it only detects forward
// transitions).
func (t *Tracker) Classify(ctx context.Context, dynastyID string, season int, date models.Date, bounds Boundaries, current models.Phase) (models.Phase, error) {
	switch current {
	case models.Preseason:
		if !date.Before(bounds.RegularSeasonStart) {
			return models.RegularSeason, nil
		}
		return models.Preseason, nil
	case models.RegularSeason:
		done, err := t.regularSeasonComplete(ctx, dynastyID, season, date)
		if err != nil {
			return current, err
		}
		if done {
			return models.Playoffs, nil
		}
		return models.RegularSeason, nil
	case models.Playoffs:
		done, err := t.playoffsComplete(ctx, dynastyID, season, date)
		if err != nil {
			return current, err
		}
		if done {
			return models.Offseason, nil
		}
		return models.Playoffs, nil
	case models.Offseason:
		if !date.Before(bounds.PreseasonStart) {
			return models.Preseason, nil
		}
		return models.Offseason, nil
	default:
		return current, fmt.Errorf("unrecognized phase %v", current)
	}
}

// regularSeasonComplete reports whether date falls after the last
// scheduled regular-season game, per spec.md §9 Open Question 3: the
// boundary is the day after the final regular-season game, not a fixed
// calendar date.
func (t *Tracker) regularSeasonComplete(ctx context.Context, dynastyID string, season int, date models.Date) (bool, error) {
	last, err := t.maxRegularSeasonGameDate(ctx, dynastyID, season)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return date.After(last), nil
}

func (t *Tracker) maxRegularSeasonGameDate(ctx context.Context, dynastyID string, season int) (models.Date, error) {
	events, err := t.log.ByGameIDPrefix(ctx, dynastyID, fmt.Sprintf("%d-REG-", season))
	if err != nil {
		return models.Date{}, fmt.Errorf("max regular season game date: %w", err)
	}
	if len(events) == 0 {
		return models.Date{}, sql.ErrNoRows
	}
	max := events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.After(max) {
			max = e.Timestamp
		}
	}
	return max, nil
}

// playoffsComplete reports whether date falls after the last scheduled
// playoff game (Wild Card through Super Bowl all share the "%d-playoff-"
// game id prefix transition.Handlers schedules under), mirroring
// regularSeasonComplete's day-after-the-final-game convention.
func (t *Tracker) playoffsComplete(ctx context.Context, dynastyID string, season int, date models.Date) (bool, error) {
	last, err := t.maxPlayoffGameDate(ctx, dynastyID, season)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return date.After(last), nil
}

func (t *Tracker) maxPlayoffGameDate(ctx context.Context, dynastyID string, season int) (models.Date, error) {
	events, err := t.log.ByGameIDPrefix(ctx, dynastyID, fmt.Sprintf("%d-playoff-", season))
	if err != nil {
		return models.Date{}, fmt.Errorf("max playoff game date: %w", err)
	}
	if len(events) == 0 {
		return models.Date{}, sql.ErrNoRows
	}
	max := events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.After(max) {
			max = e.Timestamp
		}
	}
	return max, nil
}
