package simulation

import (
	"context"
	"encoding/json"
	"hash/fnv"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// placeholderGameParams covers the fields every GAME event's Parameters
// blob carries, whether the event came from internal/schedule's
// regular-season generator or internal/transition's Wild Card scheduler.
type placeholderGameParams struct {
	HomeTeamID int `json:"home_team_id"`
	AwayTeamID int `json:"away_team_id"`
}

// NewPlaceholderGameResultProvider returns a GameResultProvider that
// invents a score from a hash of the game id rather than simulating any
// plays. The per-play engine is an external collaborator out of scope
// for this module (spec.md §1); ambient hosts with nothing else wired
// up can use this so the season cycle is exercisable end to end.
// Deterministic per game id, never per call, so replays are stable.
func NewPlaceholderGameResultProvider() GameResultProvider {
	return func(ctx context.Context, e *models.Event) (models.GameResult, error) {
		var p placeholderGameParams
		if err := json.Unmarshal(e.Parameters, &p); err != nil {
			return models.GameResult{}, err
		}

		h := fnv.New32a()
		h.Write([]byte(e.GameID))
		sum := h.Sum32()

		home := int(sum%6) + 13   // 13..18 baseline
		away := int((sum/6)%6) + 13
		home += int(sum % 15)
		away += int((sum / 15) % 15)

		return models.GameResult{
			GameID:     e.GameID,
			HomeTeamID: p.HomeTeamID,
			AwayTeamID: p.AwayTeamID,
			HomeScore:  home,
			AwayScore:  away,
		}, nil
	}
}
