// Package eventlog is the append-only schedule of future and past
// occurrences for a dynasty: games, deadlines, windows, milestones, and
// draft days. Every phase-transition and simulation-day operation reads
// and writes through it rather than touching the events table directly.
package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
)

// Log is the event-log repository.
type Log struct {
	db *sql.DB
}

// New returns a Log backed by db.
func New(db *sql.DB) *Log {
	return &Log{db: db}
}

const eventColumns = `event_id, dynasty_id, event_type, event_year, event_month, event_day, game_id, inserted_at, parameters_blob, results_blob, executed`

func scanEvent(row interface{ Scan(...interface{}) error }) (*models.Event, error) {
	e := &models.Event{}
	var typ string
	var year, month, day int
	var results []byte
	err := row.Scan(&e.EventID, &e.DynastyID, &typ, &year, &month, &day, &e.GameID, &e.InsertedAt, &e.Parameters, &results, &e.Executed)
	if err != nil {
		return nil, err
	}
	parsed, ok := models.ParseEventType(typ)
	if !ok {
		return nil, fmt.Errorf("unknown event type %q on event %s", typ, e.EventID)
	}
	e.EventType = parsed
	e.Timestamp = models.NewDate(year, month, day)
	if len(results) > 0 {
		e.Results = results
	}
	return e, nil
}

// Schedule inserts a new, unexecuted event within txn.
func (l *Log) Schedule(ctx context.Context, txn *store.Txn, e *models.Event) error {
	return l.schedule(ctx, txn.Tx(), e)
}

type execContext interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

func (l *Log) schedule(ctx context.Context, ex execContext, e *models.Event) error {
	if e.Parameters == nil {
		e.Parameters = json.RawMessage("{}")
	}
	query := `
		INSERT INTO events (event_id, dynasty_id, event_type, event_year, event_month, event_day, game_id, parameters_blob, executed)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,false)
	`
	_, err := ex.ExecContext(ctx, query,
		e.EventID, e.DynastyID, e.EventType.String(), e.Timestamp.Year, e.Timestamp.Month, e.Timestamp.Day, e.GameID, []byte(e.Parameters),
	)
	if err != nil {
		return fmt.Errorf("schedule event %s: %w", e.EventID, err)
	}
	return nil
}

// ScheduleMany inserts events within the caller's single transaction
// (spec.md §4.1, "used by schedule generation"), one INSERT statement
// per event.
func (l *Log) ScheduleMany(ctx context.Context, txn *store.Txn, events []*models.Event) error {
	for _, e := range events {
		if err := l.schedule(ctx, txn.Tx(), e); err != nil {
			return fmt.Errorf("bulk schedule: %w", err)
		}
	}
	return nil
}

// RangeBetween retrieves every event for a dynasty within [from, to],
// ordered chronologically (spec.md §3 "range queries by date").
func (l *Log) RangeBetween(ctx context.Context, dynastyID string, from, to models.Date) ([]*models.Event, error) {
	query := `
		SELECT ` + eventColumns + ` FROM events
		WHERE dynasty_id = $1
		  AND (event_year, event_month, event_day) BETWEEN ($2,$3,$4) AND ($5,$6,$7)
		ORDER BY event_year, event_month, event_day, inserted_at
	`
	rows, err := l.db.QueryContext(ctx, query, dynastyID, from.Year, from.Month, from.Day, to.Year, to.Month, to.Day)
	if err != nil {
		return nil, fmt.Errorf("range query events: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// OnDate retrieves every event scheduled for exactly one day.
func (l *Log) OnDate(ctx context.Context, dynastyID string, date models.Date) ([]*models.Event, error) {
	return l.RangeBetween(ctx, dynastyID, date, date)
}

// ByGameIDPrefix retrieves events whose GameID starts with prefix, used to
// find every game belonging to one week/round without parsing the id
// (spec.md §3, index idx_events_game_id_prefix).
func (l *Log) ByGameIDPrefix(ctx context.Context, dynastyID, prefix string) ([]*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE dynasty_id = $1 AND game_id LIKE $2 ORDER BY event_year, event_month, event_day`
	rows, err := l.db.QueryContext(ctx, query, dynastyID, strings.ReplaceAll(prefix, "%", `\%`)+"%")
	if err != nil {
		return nil, fmt.Errorf("prefix query events: %w", err)
	}
	defer rows.Close()
	return scanAll(rows)
}

// PurgeByGameIDPrefix deletes every event whose GameID starts with prefix,
// used to clear a completed year's playoff brackets/seedings before the
// next preseason begins (spec.md §4.7.4).
func (l *Log) PurgeByGameIDPrefix(ctx context.Context, txn *store.Txn, dynastyID, prefix string) error {
	query := `DELETE FROM events WHERE dynasty_id = $1 AND game_id LIKE $2`
	_, err := txn.Tx().ExecContext(ctx, query, dynastyID, strings.ReplaceAll(prefix, "%", `\%`)+"%")
	if err != nil {
		return fmt.Errorf("purge events with prefix %q: %w", prefix, err)
	}
	return nil
}

func scanAll(rows *sql.Rows) ([]*models.Event, error) {
	var out []*models.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

// MarkExecuted writes the result of resolving an event. Parameters are
// never rewritten past this point (spec.md invariant 6).
func (l *Log) MarkExecuted(ctx context.Context, txn *store.Txn, eventID string, result models.ExecutionRecord) error {
	blob, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal execution record for event %s: %w", eventID, err)
	}
	_, err = txn.Tx().ExecContext(ctx, `UPDATE events SET results_blob = $1, executed = true WHERE event_id = $2`, blob, eventID)
	if err != nil {
		return fmt.Errorf("mark event %s executed: %w", eventID, err)
	}
	return nil
}
