package schedule

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

func TestGenerateRegularSeason_TotalGameCount(t *testing.T) {
	g := NewGeneratorWithSource(rand.New(rand.NewSource(42)))
	events := g.GenerateRegularSeason("dynasty-1", 2025, models.NewDate(2025, 9, 4))
	if len(events) != TotalWeeks*GamesPerWeek {
		t.Fatalf("got %d events, want %d", len(events), TotalWeeks*GamesPerWeek)
	}
}

func TestGenerateRegularSeason_EveryTeamPlaysEveryWeekOnce(t *testing.T) {
	g := NewGeneratorWithSource(rand.New(rand.NewSource(42)))
	events := g.GenerateRegularSeason("dynasty-1", 2025, models.NewDate(2025, 9, 4))

	played := make(map[int]map[int]bool) // week -> teamID -> played
	for _, e := range events {
		var p gameParams
		if err := json.Unmarshal(e.Parameters, &p); err != nil {
			t.Fatalf("unmarshal parameters: %v", err)
		}
		if played[p.Week] == nil {
			played[p.Week] = make(map[int]bool)
		}
		if played[p.Week][p.HomeTeamID] {
			t.Fatalf("team %d plays twice in week %d", p.HomeTeamID, p.Week)
		}
		if played[p.Week][p.AwayTeamID] {
			t.Fatalf("team %d plays twice in week %d", p.AwayTeamID, p.Week)
		}
		played[p.Week][p.HomeTeamID] = true
		played[p.Week][p.AwayTeamID] = true
	}

	for week := 1; week <= TotalWeeks; week++ {
		if len(played[week]) != TotalTeams {
			t.Errorf("week %d: %d distinct teams played, want %d", week, len(played[week]), TotalTeams)
		}
	}
}

func TestGenerateRegularSeason_EachTeamPlaysSeventeenGames(t *testing.T) {
	g := NewGeneratorWithSource(rand.New(rand.NewSource(7)))
	events := g.GenerateRegularSeason("dynasty-1", 2025, models.NewDate(2025, 9, 4))

	gamesPlayed := make(map[int]int)
	for _, e := range events {
		var p gameParams
		json.Unmarshal(e.Parameters, &p)
		gamesPlayed[p.HomeTeamID]++
		gamesPlayed[p.AwayTeamID]++
	}
	for team := 1; team <= TotalTeams; team++ {
		if gamesPlayed[team] != TotalWeeks {
			t.Errorf("team %d played %d games, want %d", team, gamesPlayed[team], TotalWeeks)
		}
	}
}

func TestGenerateRegularSeason_DeterministicWithFixedSeed(t *testing.T) {
	g1 := NewGeneratorWithSource(rand.New(rand.NewSource(99)))
	g2 := NewGeneratorWithSource(rand.New(rand.NewSource(99)))

	events1 := g1.GenerateRegularSeason("dynasty-1", 2025, models.NewDate(2025, 9, 4))
	events2 := g2.GenerateRegularSeason("dynasty-1", 2025, models.NewDate(2025, 9, 4))

	if len(events1) != len(events2) {
		t.Fatalf("lengths differ: %d vs %d", len(events1), len(events2))
	}
	for i := range events1 {
		if events1[i].EventID != events2[i].EventID {
			t.Fatalf("event %d: ids diverge %q vs %q", i, events1[i].EventID, events2[i].EventID)
		}
		if string(events1[i].Parameters) != string(events2[i].Parameters) {
			t.Fatalf("event %d: parameters diverge %s vs %s", i, events1[i].Parameters, events2[i].Parameters)
		}
	}
}

func TestGenerateRegularSeason_GameIDsHaveRegSeasonPrefix(t *testing.T) {
	g := NewGeneratorWithSource(rand.New(rand.NewSource(3)))
	events := g.GenerateRegularSeason("dynasty-1", 2025, models.NewDate(2025, 9, 4))
	prefix := "2025-REG-"
	for _, e := range events {
		if len(e.GameID) < len(prefix) || e.GameID[:len(prefix)] != prefix {
			t.Fatalf("game id %q does not have prefix %q", e.GameID, prefix)
		}
	}
}
