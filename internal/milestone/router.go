// Package milestone routes interactive milestone events (draft day, free
// agency window open, and the roster/cap/tag deadlines) to a host
// surface instead of letting the AI default run automatically, whenever
// the milestone concerns the dynasty's user-controlled team (spec.md
// §4.5). Pending interactions are held in Redis rather than Postgres:
// they are ephemeral UI state, not simulation history, grounded on the
// teacher's draft.Service.saveState/getState convention.
package milestone

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/redis/go-redis/v9"
)

// pendingTTL bounds how long a pending interaction survives in Redis
// before it is treated as abandoned.
const pendingTTL = 30 * time.Minute

// Params is the JSON payload every interactive event's Parameters blob
// carries: which team the milestone concerns and, for DEADLINE/WINDOW
// events, which kind.
type Params struct {
	TeamID int    `json:"team_id"`
	Kind   string `json:"kind"`
}

// Pending describes one interactive milestone awaiting host resolution.
type Pending struct {
	DynastyID string      `json:"dynasty_id"`
	EventID   string      `json:"event_id"`
	EventType string      `json:"event_type"`
	Date      models.Date `json:"date"`
	TeamID    int         `json:"team_id"`
	Kind      string      `json:"kind"`
}

// priority orders which milestone wins when more than one lands on the
// same day for the same team (spec.md §9 Open Question 4, decided:
// DEADLINE > WINDOW > DRAFT_DAY).
func priority(t models.EventType) int {
	switch t {
	case models.EventDeadline:
		return 0
	case models.EventWindow:
		return 1
	case models.EventDraftDay:
		return 2
	default:
		return 99
	}
}

// Router intercepts a day's events before dispatch and decides whether
// the day must pause for a human.
type Router struct {
	log   *eventlog.Log
	redis *redis.Client
}

// New constructs a Router.
func New(log *eventlog.Log, redisClient *redis.Client) *Router {
	return &Router{log: log, redis: redisClient}
}

// Intercept scans date's events for the dynasty and returns the single
// highest-priority interactive milestone concerning userTeamID, if any.
// A dynasty with no user team (userTeamID <= 0) never pauses — every
// milestone runs the AI default (spec.md §4.5 point 4).
func (r *Router) Intercept(ctx context.Context, dynastyID string, date models.Date, userTeamID int) (*Pending, error) {
	if userTeamID <= 0 {
		return nil, nil
	}

	events, err := r.log.OnDate(ctx, dynastyID, date)
	if err != nil {
		return nil, fmt.Errorf("scan milestones for %s: %w", dynastyID, err)
	}

	var best *Pending
	for _, e := range events {
		if e.IsExecuted() {
			continue
		}
		if !isInteractive(e.EventType) {
			continue
		}
		var params Params
		if err := json.Unmarshal(e.Parameters, &params); err != nil {
			return nil, fmt.Errorf("parse milestone parameters for event %s: %w", e.EventID, err)
		}
		if params.TeamID != userTeamID {
			continue
		}
		candidate := &Pending{
			DynastyID: dynastyID,
			EventID:   e.EventID,
			EventType: e.EventType.String(),
			Date:      date,
			TeamID:    params.TeamID,
			Kind:      params.Kind,
		}
		if best == nil || priority(e.EventType) < priorityOf(best.EventType) {
			best = candidate
		}
	}

	if best != nil {
		if err := r.save(ctx, dynastyID, best); err != nil {
			return nil, err
		}
	}
	return best, nil
}

func priorityOf(eventType string) int {
	t, _ := models.ParseEventType(eventType)
	return priority(t)
}

func isInteractive(t models.EventType) bool {
	switch t {
	case models.EventDeadline, models.EventWindow, models.EventDraftDay:
		return true
	default:
		return false
	}
}

// Resolve marks the pending interaction's underlying event executed and
// clears it from Redis. Replaying the same day afterward will not
// re-trigger it (spec.md §4.5 point 3, idempotent).
func (r *Router) Resolve(ctx context.Context, txn *store.Txn, dynastyID string, message string) error {
	pending, err := r.get(ctx, dynastyID)
	if err != nil {
		return err
	}
	if pending == nil {
		return fmt.Errorf("no pending milestone for dynasty %s", dynastyID)
	}

	record := models.ExecutionRecord{
		Success:    true,
		ExecutedAt: pending.Date,
		Message:    message,
	}
	if err := r.log.MarkExecuted(ctx, txn, pending.EventID, record); err != nil {
		return fmt.Errorf("resolve milestone %s: %w", pending.EventID, err)
	}
	return r.clear(ctx, dynastyID)
}

// Cancel discards the pending interaction without marking its event
// executed: the calendar does not advance and the day is replayable
// (spec.md §4.5 "Cancellation").
func (r *Router) Cancel(ctx context.Context, dynastyID string) error {
	return r.clear(ctx, dynastyID)
}

func (r *Router) save(ctx context.Context, dynastyID string, p *Pending) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pending milestone: %w", err)
	}
	return r.redis.Set(ctx, pendingKey(dynastyID), data, pendingTTL).Err()
}

func (r *Router) get(ctx context.Context, dynastyID string) (*Pending, error) {
	data, err := r.redis.Get(ctx, pendingKey(dynastyID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load pending milestone: %w", err)
	}
	var p Pending
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("unmarshal pending milestone: %w", err)
	}
	return &p, nil
}

func (r *Router) clear(ctx context.Context, dynastyID string) error {
	return r.redis.Del(ctx, pendingKey(dynastyID)).Err()
}

func pendingKey(dynastyID string) string {
	return fmt.Sprintf("milestone:pending:%s", dynastyID)
}
