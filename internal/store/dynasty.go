package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// DynastyRepository persists dynasties and their per-season state.
type DynastyRepository struct {
	db *sql.DB
}

// NewDynastyRepository returns a DynastyRepository backed by db.
func NewDynastyRepository(db *sql.DB) *DynastyRepository {
	return &DynastyRepository{db: db}
}

// Create inserts a new dynasty row.
func (r *DynastyRepository) Create(ctx context.Context, d *models.Dynasty) error {
	query := `
		INSERT INTO dynasties (id, display_name, owner_name, owner_user_id, user_team_id, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.DisplayName, d.OwnerName, d.OwnerUserID, d.UserTeamID, d.IsActive, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create dynasty: %w", err)
	}
	return nil
}

// Get retrieves a dynasty by id.
func (r *DynastyRepository) Get(ctx context.Context, dynastyID string) (*models.Dynasty, error) {
	query := `
		SELECT id, display_name, owner_name, owner_user_id, user_team_id, is_active, created_at
		FROM dynasties WHERE id = $1
	`
	d := &models.Dynasty{}
	err := r.db.QueryRowContext(ctx, query, dynastyID).Scan(
		&d.ID, &d.DisplayName, &d.OwnerName, &d.OwnerUserID, &d.UserTeamID, &d.IsActive, &d.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dynasty %s not found", dynastyID)
	}
	if err != nil {
		return nil, fmt.Errorf("get dynasty: %w", err)
	}
	return d, nil
}

// ListForOwner retrieves every active dynasty owned by a user.
func (r *DynastyRepository) ListForOwner(ctx context.Context, ownerUserID string) ([]*models.Dynasty, error) {
	query := `
		SELECT id, display_name, owner_name, owner_user_id, user_team_id, is_active, created_at
		FROM dynasties WHERE owner_user_id = $1 AND is_active = true
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("list dynasties: %w", err)
	}
	defer rows.Close()

	var out []*models.Dynasty
	for rows.Next() {
		d := &models.Dynasty{}
		if err := rows.Scan(&d.ID, &d.DisplayName, &d.OwnerName, &d.OwnerUserID, &d.UserTeamID, &d.IsActive, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dynasty: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// GetState retrieves the season-cycle cursor for a (dynasty, season).
func (r *DynastyRepository) GetState(ctx context.Context, dynastyID string, season int) (*models.DynastyState, error) {
	query := `
		SELECT dynasty_id, season, current_year, current_month, current_day,
		       current_phase, current_week, COALESCE(last_game_event_id, ''),
		       current_draft_pick, draft_in_progress, version
		FROM dynasty_state WHERE dynasty_id = $1 AND season = $2
	`
	s := &models.DynastyState{}
	var month, day int
	err := r.db.QueryRowContext(ctx, query, dynastyID, season).Scan(
		&s.DynastyID, &s.Season, &s.CurrentYear, &month, &day,
		&s.CurrentPhase, &s.CurrentWeek, &s.LastGameEventID,
		&s.CurrentDraftPick, &s.DraftInProgress, &s.Version,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dynasty state %s/%d not found", dynastyID, season)
	}
	if err != nil {
		return nil, fmt.Errorf("get dynasty state: %w", err)
	}
	s.CurrentDate = models.NewDate(s.CurrentYear, month, day)
	return s, nil
}

// InitState inserts the initial state row for a new season.
func (r *DynastyRepository) InitState(ctx context.Context, txn *Txn, s *models.DynastyState) error {
	query := `
		INSERT INTO dynasty_state (
			dynasty_id, season, current_year, current_month, current_day,
			current_phase, current_week, last_game_event_id,
			current_draft_pick, draft_in_progress, version
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, ''), $9, $10, 0)
	`
	_, err := txn.tx.ExecContext(ctx, query,
		s.DynastyID, s.Season, s.CurrentDate.Year, s.CurrentDate.Month, s.CurrentDate.Day,
		s.CurrentPhase, s.CurrentWeek, s.LastGameEventID,
		s.CurrentDraftPick, s.DraftInProgress,
	)
	if err != nil {
		return fmt.Errorf("init dynasty state: %w", err)
	}
	return nil
}

// SaveState performs an optimistic-concurrency update of the state row:
// the write only applies if Version still matches what was last read,
// and Version is incremented on success (spec.md invariant 2, one
// season-cycle operation in flight at a time per dynasty).
func (r *DynastyRepository) SaveState(ctx context.Context, txn *Txn, s *models.DynastyState) error {
	query := `
		UPDATE dynasty_state
		SET current_year = $1, current_month = $2, current_day = $3,
		    current_phase = $4, current_week = $5, last_game_event_id = NULLIF($6, ''),
		    current_draft_pick = $7, draft_in_progress = $8, version = version + 1
		WHERE dynasty_id = $9 AND season = $10 AND version = $11
	`
	res, err := txn.tx.ExecContext(ctx, query,
		s.CurrentDate.Year, s.CurrentDate.Month, s.CurrentDate.Day,
		s.CurrentPhase, s.CurrentWeek, s.LastGameEventID,
		s.CurrentDraftPick, s.DraftInProgress,
		s.DynastyID, s.Season, s.Version,
	)
	if err != nil {
		return fmt.Errorf("save dynasty state: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("save dynasty state rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("dynasty state %s/%d: stale version %d, concurrent modification", s.DynastyID, s.Season, s.Version)
	}
	s.Version++
	return nil
}
