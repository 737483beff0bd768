package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// DraftRepository persists draft classes, prospects, and the pick-order
// ledger. Grounded on original_source/src/database/draft_class_api.py and
// draft_order_database_api.py (spec.md §4.8).
type DraftRepository struct {
	db *sql.DB
}

// NewDraftRepository returns a DraftRepository backed by db.
func NewDraftRepository(db *sql.DB) *DraftRepository {
	return &DraftRepository{db: db}
}

// CreateClass inserts a new draft class and its prospects atomically.
func (r *DraftRepository) CreateClass(ctx context.Context, txn *Txn, class *models.DraftClass, prospects []*models.Prospect) error {
	_, err := txn.tx.ExecContext(ctx, `
		INSERT INTO draft_classes (draft_class_id, dynasty_id, season, total_prospects, status, created_at)
		VALUES ($1,$2,$3,$4,$5, now())
	`, class.DraftClassID, txn.dynastyID, class.Season, len(prospects), class.Status)
	if err != nil {
		return fmt.Errorf("create draft class: %w", err)
	}

	for _, p := range prospects {
		if err := r.insertProspect(ctx, txn, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *DraftRepository) insertProspect(ctx context.Context, txn *Txn, p *models.Prospect) error {
	attrs, err := json.Marshal(p.Attributes)
	if err != nil {
		return fmt.Errorf("marshal attributes for prospect %s: %w", p.PlayerID, err)
	}
	query := `
		INSERT INTO draft_prospects (
			player_id, draft_class_id, first_name, last_name, position, age, college,
			archetype, development_curve, true_overall, scouted_overall, scouting_confidence,
			projected_pick_min, projected_pick_max, attributes, is_drafted
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,false)
	`
	_, err = txn.tx.ExecContext(ctx, query,
		p.PlayerID, p.DraftClassID, p.FirstName, p.LastName, p.Position, p.Age, p.College,
		p.Archetype, p.DevelopmentCurve, p.TrueOverall, p.ScoutedOverall, p.ScoutingConfidence,
		p.ProjectedPickMin, p.ProjectedPickMax, attrs,
	)
	if err != nil {
		return fmt.Errorf("insert prospect %s: %w", p.PlayerID, err)
	}
	return nil
}

const prospectColumns = `
	player_id, draft_class_id, first_name, last_name, position, age, college,
	archetype, development_curve, true_overall, scouted_overall, scouting_confidence,
	projected_pick_min, projected_pick_max, attributes, is_drafted,
	drafted_by_team, drafted_round, drafted_pick, roster_player_id
`

const prospectColumnsPrefixed = `
	p.player_id, p.draft_class_id, p.first_name, p.last_name, p.position, p.age, p.college,
	p.archetype, p.development_curve, p.true_overall, p.scouted_overall, p.scouting_confidence,
	p.projected_pick_min, p.projected_pick_max, p.attributes, p.is_drafted,
	p.drafted_by_team, p.drafted_round, p.drafted_pick, p.roster_player_id
`

func scanProspect(row interface{ Scan(...interface{}) error }) (*models.Prospect, error) {
	p := &models.Prospect{}
	var attrs []byte
	err := row.Scan(
		&p.PlayerID, &p.DraftClassID, &p.FirstName, &p.LastName, &p.Position, &p.Age, &p.College,
		&p.Archetype, &p.DevelopmentCurve, &p.TrueOverall, &p.ScoutedOverall, &p.ScoutingConfidence,
		&p.ProjectedPickMin, &p.ProjectedPickMax, &attrs, &p.IsDrafted,
		&p.DraftedByTeam, &p.DraftedRound, &p.DraftedPick, &p.RosterPlayerID,
	)
	if err != nil {
		return nil, err
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &p.Attributes); err != nil {
			return nil, fmt.Errorf("unmarshal attributes for prospect %s: %w", p.PlayerID, err)
		}
	}
	return p, nil
}

// ClassExistsForSeason reports whether a draft class has already been
// generated for (dynastyID, season), so callers can treat class
// preparation as idempotent (spec.md §4.7.4 step 3).
func (r *DraftRepository) ClassExistsForSeason(ctx context.Context, dynastyID string, season int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM draft_classes WHERE dynasty_id = $1 AND season = $2)`,
		dynastyID, season,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check draft class exists for season %d: %w", season, err)
	}
	return exists, nil
}

// GetClassForSeason retrieves the draft class generated for
// (dynastyID, season), or sql.ErrNoRows if none exists yet.
func (r *DraftRepository) GetClassForSeason(ctx context.Context, dynastyID string, season int) (*models.DraftClass, error) {
	class := &models.DraftClass{}
	err := r.db.QueryRowContext(ctx,
		`SELECT draft_class_id, dynasty_id, season, total_prospects, status FROM draft_classes WHERE dynasty_id = $1 AND season = $2`,
		dynastyID, season,
	).Scan(&class.DraftClassID, &class.DynastyID, &class.Season, &class.TotalProspects, &class.Status)
	if err != nil {
		return nil, err
	}
	return class, nil
}

// ListAvailable retrieves every undrafted prospect in a class, ordered by
// true overall descending.
func (r *DraftRepository) ListAvailable(ctx context.Context, draftClassID string) ([]*models.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM draft_prospects WHERE draft_class_id = $1 AND is_drafted = false ORDER BY true_overall DESC`
	rows, err := r.db.QueryContext(ctx, query, draftClassID)
	if err != nil {
		return nil, fmt.Errorf("list available prospects: %w", err)
	}
	defer rows.Close()

	var out []*models.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// ListAvailableForSeason retrieves every undrafted prospect belonging to
// the draft class generated for (dynastyID, season), joining through
// draft_classes so callers never need to track a class id separately
// from the season it belongs to.
func (r *DraftRepository) ListAvailableForSeason(ctx context.Context, dynastyID string, season int) ([]*models.Prospect, error) {
	query := `
		SELECT ` + prospectColumnsPrefixed + `
		FROM draft_prospects p
		JOIN draft_classes c ON c.draft_class_id = p.draft_class_id
		WHERE c.dynasty_id = $1 AND c.season = $2 AND p.is_drafted = false
		ORDER BY p.true_overall DESC
	`
	rows, err := r.db.QueryContext(ctx, query, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("list available prospects for season: %w", err)
	}
	defer rows.Close()

	var out []*models.Prospect
	for rows.Next() {
		p, err := scanProspect(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prospect: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// GetProspect retrieves a single prospect by id.
func (r *DraftRepository) GetProspect(ctx context.Context, playerID string) (*models.Prospect, error) {
	query := `SELECT ` + prospectColumns + ` FROM draft_prospects WHERE player_id = $1`
	p, err := scanProspect(r.db.QueryRowContext(ctx, query, playerID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("prospect %s not found", playerID)
	}
	if err != nil {
		return nil, fmt.Errorf("get prospect: %w", err)
	}
	return p, nil
}

// MarkDrafted records a prospect's selection (team, round, pick). The
// roster id is written separately by BackfillRosterID (spec.md §9 Open
// Question 5: a back-fill failure is logged by the caller and does not
// abort the pick).
func (r *DraftRepository) MarkDrafted(ctx context.Context, txn *Txn, playerID string, teamID, round, pick int) error {
	_, err := txn.tx.ExecContext(ctx, `
		UPDATE draft_prospects SET is_drafted = true, drafted_by_team = $1, drafted_round = $2, drafted_pick = $3
		WHERE player_id = $4
	`, teamID, round, pick, playerID)
	if err != nil {
		return fmt.Errorf("mark prospect %s drafted: %w", playerID, err)
	}
	return nil
}

// BackfillRosterID sets the roster_player_id a prospect converted into.
func (r *DraftRepository) BackfillRosterID(ctx context.Context, txn *Txn, playerID, rosterPlayerID string) error {
	_, err := txn.tx.ExecContext(ctx, `UPDATE draft_prospects SET roster_player_id = $1 WHERE player_id = $2`, rosterPlayerID, playerID)
	if err != nil {
		return fmt.Errorf("backfill roster id for prospect %s: %w", playerID, err)
	}
	return nil
}

// --- draft order ledger ---

const pickColumns = `
	pick_id, dynasty_id, season, round_number, pick_in_round, overall_pick,
	original_team_id, current_team_id, is_compensatory, acquired_via_trade,
	trade_id, is_executed, selected_player_id
`

func scanPick(row interface{ Scan(...interface{}) error }) (*models.DraftPick, error) {
	p := &models.DraftPick{}
	err := row.Scan(
		&p.PickID, &p.DynastyID, &p.Season, &p.Round, &p.PickInRound, &p.OverallPick,
		&p.OriginalTeamID, &p.CurrentTeamID, &p.IsCompensatory, &p.AcquiredViaTrade,
		&p.TradeID, &p.IsExecuted, &p.SelectedPlayerID,
	)
	return p, err
}

// CreateOrder bulk-inserts the draft order for a season.
func (r *DraftRepository) CreateOrder(ctx context.Context, txn *Txn, picks []*models.DraftPick) error {
	query := `
		INSERT INTO draft_order (
			pick_id, dynasty_id, season, round_number, pick_in_round, overall_pick,
			original_team_id, current_team_id, is_compensatory, acquired_via_trade,
			trade_id, is_executed
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,false)
	`
	for _, p := range picks {
		_, err := txn.tx.ExecContext(ctx, query,
			p.PickID, txn.dynastyID, p.Season, p.Round, p.PickInRound, p.OverallPick,
			p.OriginalTeamID, p.CurrentTeamID, p.IsCompensatory, p.AcquiredViaTrade, p.TradeID,
		)
		if err != nil {
			return fmt.Errorf("insert draft pick %d: %w", p.OverallPick, err)
		}
	}
	return nil
}

// ListOrder retrieves the full draft order for a season, in pick order.
func (r *DraftRepository) ListOrder(ctx context.Context, dynastyID string, season int) ([]*models.DraftPick, error) {
	query := `SELECT ` + pickColumns + ` FROM draft_order WHERE dynasty_id = $1 AND season = $2 ORDER BY overall_pick ASC`
	rows, err := r.db.QueryContext(ctx, query, dynastyID, season)
	if err != nil {
		return nil, fmt.Errorf("list draft order: %w", err)
	}
	defer rows.Close()

	var out []*models.DraftPick
	for rows.Next() {
		p, err := scanPick(rows)
		if err != nil {
			return nil, fmt.Errorf("scan draft pick: %w", err)
		}
		out = append(out, p)
	}
	return out, nil
}

// NextPick retrieves the lowest unexecuted pick for a season, or
// sql.ErrNoRows if the draft is complete.
func (r *DraftRepository) NextPick(ctx context.Context, dynastyID string, season int) (*models.DraftPick, error) {
	query := `SELECT ` + pickColumns + ` FROM draft_order WHERE dynasty_id = $1 AND season = $2 AND is_executed = false ORDER BY overall_pick ASC LIMIT 1`
	p, err := scanPick(r.db.QueryRowContext(ctx, query, dynastyID, season))
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ExecutePick records the player selected with a pick.
func (r *DraftRepository) ExecutePick(ctx context.Context, txn *Txn, pickID, playerID string) error {
	_, err := txn.tx.ExecContext(ctx, `UPDATE draft_order SET is_executed = true, selected_player_id = $1 WHERE pick_id = $2`, playerID, pickID)
	if err != nil {
		return fmt.Errorf("execute pick %s: %w", pickID, err)
	}
	return nil
}

// Progress reports the draft's completion state for a season.
func (r *DraftRepository) Progress(ctx context.Context, dynastyID string, season int) (models.Progress, error) {
	var total, executed int
	err := r.db.QueryRowContext(ctx, `SELECT count(*), count(*) FILTER (WHERE is_executed) FROM draft_order WHERE dynasty_id = $1 AND season = $2`, dynastyID, season).Scan(&total, &executed)
	if err != nil {
		return models.Progress{}, fmt.Errorf("draft progress: %w", err)
	}
	return models.Progress{Total: total, Executed: executed}, nil
}
