package simulation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/store"
)

// GameResultProvider resolves a single GAME event into its final score.
// The per-play simulation that produces this result is an external
// collaborator (spec.md §1 "out of scope"); this package only needs the
// outcome to update standings and close out the event.
type GameResultProvider func(ctx context.Context, e *models.Event) (models.GameResult, error)

// NewGameHandler returns a Handler that resolves GAME events: it calls
// provider for the final score, applies it to the (season, seasonType)
// standings table, and records the result on the event.
func NewGameHandler(provider GameResultProvider, standings *store.StandingsRepository, season int, seasonType models.SeasonType) Handler {
	return HandlerFunc(func(ctx context.Context, txn *store.Txn, e *models.Event) (models.ExecutionRecord, error) {
		result, err := provider(ctx, e)
		if err != nil {
			return models.ExecutionRecord{}, fmt.Errorf("resolve game %s: %w", e.GameID, err)
		}

		if err := standings.ApplyGameResult(ctx, txn, season, seasonType, result); err != nil {
			return models.ExecutionRecord{}, fmt.Errorf("apply game result for %s: %w", e.GameID, err)
		}

		blob, err := json.Marshal(result)
		if err != nil {
			return models.ExecutionRecord{}, fmt.Errorf("marshal game result for %s: %w", e.GameID, err)
		}
		message := string(blob)
		return models.ExecutionRecord{Success: true, ExecutedAt: e.Timestamp, Message: message}, nil
	})
}
