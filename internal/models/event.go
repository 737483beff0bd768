package models

import "encoding/json"

// EventType enumerates the kinds of occurrences the event log can schedule
// (spec.md §3). Dispatch on EventType is a Go type switch, not a
// dynamic string lookup (spec.md §9's "dynamic event dispatch via type
// string" re-architecture note).
type EventType int

const (
	EventGame EventType = iota
	EventDeadline
	EventWindow
	EventMilestone
	EventDraftDay
)

func (t EventType) String() string {
	switch t {
	case EventGame:
		return "GAME"
	case EventDeadline:
		return "DEADLINE"
	case EventWindow:
		return "WINDOW"
	case EventMilestone:
		return "MILESTONE"
	case EventDraftDay:
		return "DRAFT_DAY"
	default:
		return "UNKNOWN"
	}
}

// ParseEventType parses the canonical string form produced by String().
func ParseEventType(s string) (EventType, bool) {
	switch s {
	case "GAME":
		return EventGame, true
	case "DEADLINE":
		return EventDeadline, true
	case "WINDOW":
		return EventWindow, true
	case "MILESTONE":
		return EventMilestone, true
	case "DRAFT_DAY":
		return EventDraftDay, true
	default:
		return 0, false
	}
}

// DeadlineKind distinguishes the DEADLINE event subtypes named in spec.md §4.5.
type DeadlineKind string

const (
	DeadlineFranchiseTag        DeadlineKind = "franchise_tag"
	DeadlineFinalRosterCuts     DeadlineKind = "final_roster_cuts"
	DeadlineSalaryCapCompliance DeadlineKind = "salary_cap_compliance"
	DeadlineRFATender           DeadlineKind = "rfa_tender"
)

// WindowKind distinguishes the WINDOW event subtypes.
type WindowKind string

const (
	WindowFreeAgencyStart WindowKind = "free_agency_start"
)

// GameKind distinguishes the GAME event subtypes by schedule segment.
type GameKind string

const (
	GamePreseason GameKind = "preseason"
	GameRegular   GameKind = "regular"
	GamePlayoff   GameKind = "playoff"
)

// Event is a single scheduled occurrence keyed by (dynasty, timestamp).
// It is append-only: once Results is non-nil the event is considered
// executed and its Parameters must never be rewritten (spec.md invariant 6).
type Event struct {
	EventID       string          `json:"event_id" db:"event_id"`
	DynastyID     string          `json:"dynasty_id" db:"dynasty_id"`
	EventType     EventType       `json:"event_type" db:"-"`
	Timestamp     Date            `json:"timestamp" db:"-"`
	GameID        string          `json:"game_id" db:"game_id"`
	InsertedAt    int64           `json:"inserted_at" db:"inserted_at"`
	Parameters    json.RawMessage `json:"parameters" db:"parameters_blob"`
	Results       json.RawMessage `json:"results,omitempty" db:"results_blob"`
	Executed      bool            `json:"executed" db:"executed"`
}

// IsExecuted reports whether this event has already been resolved (GAME
// result recorded, deadline handled, or milestone completed/cancelled-and-
// replayable). Cancellation never sets this — only a successful resolution
// does (spec.md §4.5 point 3).
func (e *Event) IsExecuted() bool {
	return e.Executed
}

// ExecutionRecord is the structured result every event's Results blob
// decodes to at minimum; individual handlers may embed richer payloads
// alongside these fields.
type ExecutionRecord struct {
	Success     bool   `json:"success"`
	ExecutedAt  Date   `json:"executed_at"`
	Message     string `json:"message"`
}
