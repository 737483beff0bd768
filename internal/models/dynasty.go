package models

import (
	"time"

	"github.com/google/uuid"
)

// Dynasty is an isolated simulation timeline owned by a human user.
// A dynasty with no UserTeamID runs in commissioner mode: every interactive
// milestone is treated as non-interactive and resolved by the AI default.
type Dynasty struct {
	ID          string     `json:"id" db:"id"`
	DisplayName string     `json:"display_name" db:"display_name"`
	OwnerName   string     `json:"owner_name" db:"owner_name"`
	OwnerUserID *uuid.UUID `json:"owner_user_id,omitempty" db:"owner_user_id"`
	UserTeamID  *int       `json:"user_team_id,omitempty" db:"user_team_id"`
	IsActive    bool       `json:"is_active" db:"is_active"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// HasUserTeam reports whether a human controls a team in this dynasty.
// A commissioner-mode dynasty has no user team and never pauses for
// interactive milestones (spec §4.5 point 4).
func (d *Dynasty) HasUserTeam() bool {
	return d.UserTeamID != nil
}

// DynastyState is the single persisted row per (dynasty, season): the
// authoritative answer to "where is this dynasty right now". It is mutated
// only by the synchronizer and the simulation executor, always inside a
// transaction.
type DynastyState struct {
	DynastyID         string `json:"dynasty_id" db:"dynasty_id"`
	Season            int    `json:"season" db:"season"`
	CurrentYear       int    `json:"current_year" db:"current_year"`
	CurrentDate       Date   `json:"current_date" db:"-"`
	CurrentPhase      Phase  `json:"current_phase" db:"current_phase"`
	CurrentWeek       *int   `json:"current_week,omitempty" db:"current_week"`
	LastGameEventID   string `json:"last_game_event_id,omitempty" db:"last_game_event_id"`
	CurrentDraftPick  int    `json:"current_draft_pick" db:"current_draft_pick"`
	DraftInProgress   bool   `json:"draft_in_progress" db:"draft_in_progress"`
	Version           int64  `json:"version" db:"version"`
}
