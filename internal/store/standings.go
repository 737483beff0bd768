package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// StandingsRepository persists per-team W/L/T records.
type StandingsRepository struct {
	db *sql.DB
}

// NewStandingsRepository returns a StandingsRepository backed by db.
func NewStandingsRepository(db *sql.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

const standingsColumns = `
	dynasty_id, season, season_type, team_id, wins, losses, ties,
	division_wins, division_losses, division_ties,
	conference_wins, conference_losses, conference_ties,
	home_wins, home_losses, home_ties, away_wins, away_losses, away_ties,
	points_for, points_against, streak
`

func scanStandings(row interface{ Scan(...interface{}) error }) (*models.Standings, error) {
	s := &models.Standings{}
	err := row.Scan(
		&s.DynastyID, &s.Season, &s.SeasonType, &s.TeamID, &s.Wins, &s.Losses, &s.Ties,
		&s.DivisionWins, &s.DivisionLosses, &s.DivisionTies,
		&s.ConferenceWins, &s.ConferenceLosses, &s.ConferenceTies,
		&s.HomeWins, &s.HomeLosses, &s.HomeTies, &s.AwayWins, &s.AwayLosses, &s.AwayTies,
		&s.PointsFor, &s.PointsAgainst, &s.Streak,
	)
	return s, err
}

// InitSeason creates the 0-0-0 standings row for every team in teamIDs.
func (r *StandingsRepository) InitSeason(ctx context.Context, txn *Txn, season int, seasonType models.SeasonType, teamIDs []int) error {
	query := `INSERT INTO standings (` + standingsColumns + `) VALUES ($1,$2,$3,$4,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0)`
	for _, teamID := range teamIDs {
		if _, err := txn.tx.ExecContext(ctx, query, txn.dynastyID, season, seasonType, teamID); err != nil {
			return fmt.Errorf("init standings team %d: %w", teamID, err)
		}
	}
	return nil
}

// Get retrieves one team's standings row.
func (r *StandingsRepository) Get(ctx context.Context, dynastyID string, season int, seasonType models.SeasonType, teamID int) (*models.Standings, error) {
	query := `SELECT ` + standingsColumns + ` FROM standings WHERE dynasty_id=$1 AND season=$2 AND season_type=$3 AND team_id=$4`
	s, err := scanStandings(r.db.QueryRowContext(ctx, query, dynastyID, season, seasonType, teamID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("standings not found for team %d", teamID)
	}
	if err != nil {
		return nil, fmt.Errorf("get standings: %w", err)
	}
	return s, nil
}

// ListBySeason retrieves every team's standings row for a season.
func (r *StandingsRepository) ListBySeason(ctx context.Context, dynastyID string, season int, seasonType models.SeasonType) ([]*models.Standings, error) {
	query := `SELECT ` + standingsColumns + ` FROM standings WHERE dynasty_id=$1 AND season=$2 AND season_type=$3 ORDER BY team_id`
	rows, err := r.db.QueryContext(ctx, query, dynastyID, season, seasonType)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	defer rows.Close()

	var out []*models.Standings
	for rows.Next() {
		s, err := scanStandings(rows)
		if err != nil {
			return nil, fmt.Errorf("scan standings: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

// ApplyGameResult updates both teams' standings rows from one game, inside txn.
func (r *StandingsRepository) ApplyGameResult(ctx context.Context, txn *Txn, season int, seasonType models.SeasonType, result models.GameResult) error {
	home, err := r.Get(ctx, txn.dynastyID, season, seasonType, result.HomeTeamID)
	if err != nil {
		return err
	}
	away, err := r.Get(ctx, txn.dynastyID, season, seasonType, result.AwayTeamID)
	if err != nil {
		return err
	}

	home.PointsFor += result.HomeScore
	home.PointsAgainst += result.AwayScore
	away.PointsFor += result.AwayScore
	away.PointsAgainst += result.HomeScore

	switch result.Winner() {
	case result.HomeTeamID:
		home.Wins++
		home.HomeWins++
		home.Streak = maxInt(home.Streak+1, 1)
		away.Losses++
		away.AwayLosses++
		away.Streak = minInt(away.Streak-1, -1)
	case result.AwayTeamID:
		away.Wins++
		away.AwayWins++
		away.Streak = maxInt(away.Streak+1, 1)
		home.Losses++
		home.HomeLosses++
		home.Streak = minInt(home.Streak-1, -1)
	default:
		home.Ties++
		home.HomeTies++
		away.Ties++
		away.AwayTies++
		home.Streak = 0
		away.Streak = 0
	}

	if err := r.update(ctx, txn, home); err != nil {
		return err
	}
	return r.update(ctx, txn, away)
}

func (r *StandingsRepository) update(ctx context.Context, txn *Txn, s *models.Standings) error {
	query := `
		UPDATE standings SET
			wins=$1, losses=$2, ties=$3,
			division_wins=$4, division_losses=$5, division_ties=$6,
			conference_wins=$7, conference_losses=$8, conference_ties=$9,
			home_wins=$10, home_losses=$11, home_ties=$12,
			away_wins=$13, away_losses=$14, away_ties=$15,
			points_for=$16, points_against=$17, streak=$18
		WHERE dynasty_id=$19 AND season=$20 AND season_type=$21 AND team_id=$22
	`
	_, err := txn.tx.ExecContext(ctx, query,
		s.Wins, s.Losses, s.Ties,
		s.DivisionWins, s.DivisionLosses, s.DivisionTies,
		s.ConferenceWins, s.ConferenceLosses, s.ConferenceTies,
		s.HomeWins, s.HomeLosses, s.HomeTies,
		s.AwayWins, s.AwayLosses, s.AwayTies,
		s.PointsFor, s.PointsAgainst, s.Streak,
		s.DynastyID, s.Season, s.SeasonType, s.TeamID,
	)
	if err != nil {
		return fmt.Errorf("update standings team %d: %w", s.TeamID, err)
	}
	return nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
