// Package schedule generates the regular-season game calendar a dynasty
// plays through each year, grounded on
// original_source/demo/interactive_season_sim/random_schedule_generator.py
// (17 weeks x 16 games, random matchups reshuffled every week, realistic
// Thursday/Sunday/Monday slotting). The per-play outcome of each
// resulting GAME event is produced later, by the out-of-scope
// collaborator simulation.GameResultProvider is the seam for (spec.md
// §1); this package only decides *who plays whom, and when*.
package schedule

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// TotalWeeks is the regular-season length (spec.md §8 testable property 7
// names 272 total games: 17 * 16).
const TotalWeeks = 17

// GamesPerWeek is fixed by TotalTeams/2: every team plays exactly once a week.
const GamesPerWeek = 16

// TotalTeams is the league size (spec.md §3, team ids 1..32).
const TotalTeams = 32

// slot is one of the week's realistic NFL broadcast windows, grounded on
// random_schedule_generator.py's GAME_SLOTS: day offset from the week's
// Thursday and how many of the week's 16 games air in that window.
type slot struct {
	name      string
	dayOffset int
	count     int
}

// slots is an ordered slice, not a map: Generator walks it in a fixed
// order to assign matchups to windows, and map iteration order is
// randomized per run, which would break determinism for a fixed seed.
var slots = []slot{
	{"thursday_night", 0, 1},
	{"sunday_early_1", 3, 6},
	{"sunday_early_2", 3, 1},
	{"sunday_late_1", 3, 2},
	{"sunday_late_2", 3, 2},
	{"sunday_night", 3, 2},
	{"monday_night_1", 4, 1},
	{"monday_night_2", 4, 1},
}

// Generator produces a deterministic regular-season schedule from a
// fixed rand.Rand source.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a Generator with a fixed seed (1), so every
// Generator built this way produces the same schedule.
func NewGenerator() *Generator {
	return &Generator{rand: rand.New(rand.NewSource(1))}
}

// NewGeneratorWithSource returns a Generator using r for all randomness,
// so a caller can reproduce an identical schedule for a fixed seed
// (spec.md §8 testable property 7).
func NewGeneratorWithSource(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// gameParams is the JSON payload every GAME event's Parameters blob
// carries, matched by simulation.GameResultProvider's callers.
type gameParams struct {
	HomeTeamID int `json:"home_team_id"`
	AwayTeamID int `json:"away_team_id"`
	Week       int `json:"week"`
}

// GenerateRegularSeason produces TotalWeeks*GamesPerWeek unexecuted GAME
// events for dynastyID/season, starting the week of startDate (the first
// Thursday). Each team plays exactly once a week; matchups and home/away
// assignment are reshuffled independently every week, exactly like
// random_schedule_generator.py's per-week _generate_random_matchups.
func (g *Generator) GenerateRegularSeason(dynastyID string, season int, startDate models.Date) []*models.Event {
	events := make([]*models.Event, 0, TotalWeeks*GamesPerWeek)
	for week := 1; week <= TotalWeeks; week++ {
		weekStart := startDate.AddDays((week - 1) * 7)
		matchups := g.weekMatchups()
		events = append(events, g.assignSlots(dynastyID, season, week, weekStart, matchups)...)
	}
	return events
}

// weekMatchups pairs all 32 teams into 16 (away, home) matchups, mirroring
// _generate_random_matchups: shuffle the team list, pair sequentially,
// coin-flip which side of each pair is home.
func (g *Generator) weekMatchups() [][2]int {
	teams := make([]int, TotalTeams)
	for i := range teams {
		teams[i] = i + 1
	}
	g.rand.Shuffle(len(teams), func(i, j int) { teams[i], teams[j] = teams[j], teams[i] })

	matchups := make([][2]int, 0, GamesPerWeek)
	for i := 0; i < len(teams); i += 2 {
		away, home := teams[i], teams[i+1]
		if g.rand.Float64() < 0.5 {
			away, home = home, away
		}
		matchups = append(matchups, [2]int{away, home})
	}
	return matchups
}

// assignSlots walks the week's broadcast windows in order, assigning one
// matchup per slot count and producing the resulting GAME event.
func (g *Generator) assignSlots(dynastyID string, season, week int, weekStart models.Date, matchups [][2]int) []*models.Event {
	events := make([]*models.Event, 0, GamesPerWeek)
	idx := 0
	for _, s := range slots {
		for n := 0; n < s.count; n++ {
			away, home := matchups[idx][0], matchups[idx][1]
			gameDate := weekStart.AddDays(s.dayOffset)
			gameID := fmt.Sprintf("%d-REG-w%02d-g%02d", season, week, idx+1)

			params, _ := json.Marshal(gameParams{HomeTeamID: home, AwayTeamID: away, Week: week})
			events = append(events, &models.Event{
				EventID:    gameID,
				DynastyID:  dynastyID,
				EventType:  models.EventGame,
				Timestamp:  gameDate,
				GameID:     gameID,
				Parameters: params,
			})
			idx++
		}
	}
	return events
}
