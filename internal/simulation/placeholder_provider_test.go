package simulation

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

func TestPlaceholderGameResultProvider_DeterministicForSameGameID(t *testing.T) {
	params, _ := json.Marshal(placeholderGameParams{HomeTeamID: 3, AwayTeamID: 9})
	e := &models.Event{GameID: "2025-REG-w01-g01", Parameters: params}

	provider := NewPlaceholderGameResultProvider()
	r1, err := provider(context.Background(), e)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	r2, err := provider(context.Background(), e)
	if err != nil {
		t.Fatalf("provider: %v", err)
	}
	if r1 != r2 {
		t.Fatalf("provider is not deterministic for the same event: %v vs %v", r1, r2)
	}
	if r1.HomeTeamID != 3 || r1.AwayTeamID != 9 {
		t.Fatalf("team ids not carried through: %+v", r1)
	}
}

func TestPlaceholderGameResultProvider_DiffersAcrossGameIDs(t *testing.T) {
	params, _ := json.Marshal(placeholderGameParams{HomeTeamID: 1, AwayTeamID: 2})
	provider := NewPlaceholderGameResultProvider()

	r1, _ := provider(context.Background(), &models.Event{GameID: "2025-REG-w01-g01", Parameters: params})
	r2, _ := provider(context.Background(), &models.Event{GameID: "2025-REG-w01-g02", Parameters: params})
	if r1.HomeScore == r2.HomeScore && r1.AwayScore == r2.AwayScore {
		t.Fatalf("different games produced identical scores: %v vs %v", r1, r2)
	}
}
