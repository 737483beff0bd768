package draft

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// DefaultTotalPicks is the number of natural (standings-order) picks
// BuildOrder places before it stops filling rounds that carry no
// compensatory picks. Rounds are not capped at 7: with no compensatory
// picks the order runs 8 full rounds of 32 plus 6 picks of round 9.
const DefaultTotalPicks = 262

const picksPerRound = 32

// BuildOrder constructs the natural draft order (no trades applied yet)
// for a season, ordering teams within round 1 by standingsOrder
// (weakest team first, the standard reverse-standings draft order) and
// reusing that same order for every subsequent round.
func BuildOrder(dynastyID string, season int, standingsOrder []int, compPicks []CompensatoryPick) []*models.DraftPick {
	rounds := (DefaultTotalPicks + len(compPicks)) / picksPerRound
	if rounds*picksPerRound < DefaultTotalPicks {
		rounds++
	}

	var picks []*models.DraftPick
	overall := 0
	for round := 1; round <= rounds; round++ {
		for slot, teamID := range standingsOrder {
			overall++
			if overall > DefaultTotalPicks && len(compForRound(compPicks, round)) == 0 {
				break
			}
			picks = append(picks, &models.DraftPick{
				PickID:         uuid.New().String(),
				DynastyID:      dynastyID,
				Season:         season,
				Round:          round,
				PickInRound:    slot + 1,
				OverallPick:    overall,
				OriginalTeamID: teamID,
				CurrentTeamID:  teamID,
			})
		}
		// Compensatory picks insert after the last natural pick of their
		// round (spec.md §3 supplement), so overall numbering continues
		// from where the round's natural picks left off.
		for _, comp := range compForRound(compPicks, round) {
			overall++
			picks = append(picks, &models.DraftPick{
				PickID:         uuid.New().String(),
				DynastyID:      dynastyID,
				Season:         season,
				Round:          round,
				PickInRound:    len(standingsOrder) + comp.slotWithinRound,
				OverallPick:    overall,
				OriginalTeamID: comp.TeamID,
				CurrentTeamID:  comp.TeamID,
				IsCompensatory: true,
			})
		}
	}
	return picks
}

// CompensatoryPick describes one compensatory selection awarded to a
// team for a given round.
type CompensatoryPick struct {
	Round  int
	TeamID int

	slotWithinRound int
}

func compForRound(comps []CompensatoryPick, round int) []CompensatoryPick {
	var out []CompensatoryPick
	n := 0
	for _, c := range comps {
		if c.Round != round {
			continue
		}
		n++
		c.slotWithinRound = n
		out = append(out, c)
	}
	return out
}

// Validate checks that an order is internally consistent: overall picks
// are contiguous starting at 1, and every pick's round/pick-in-round
// pair is unique.
func Validate(picks []*models.DraftPick) error {
	seen := make(map[int]bool, len(picks))
	for i, p := range picks {
		if p.OverallPick != i+1 {
			return fmt.Errorf("draft order not contiguous: pick at index %d has overall_pick %d", i, p.OverallPick)
		}
		if seen[p.OverallPick] {
			return fmt.Errorf("duplicate overall_pick %d", p.OverallPick)
		}
		seen[p.OverallPick] = true
	}
	return nil
}
