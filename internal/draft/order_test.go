package draft

import "testing"

func standingsOrderFixture() []int {
	order := make([]int, 32)
	for i := range order {
		order[i] = i + 1
	}
	return order
}

func TestBuildOrder_NoCompensatoryPicks(t *testing.T) {
	picks := BuildOrder("dynasty-1", 2026, standingsOrderFixture(), nil)

	if err := Validate(picks); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if len(picks) != DefaultTotalPicks {
		t.Fatalf("BuildOrder() returned %d picks, want %d", len(picks), DefaultTotalPicks)
	}
	if picks[0].Round != 1 || picks[0].PickInRound != 1 || picks[0].OriginalTeamID != 1 {
		t.Fatalf("first pick = %+v, want round 1 pick 1 team 1", picks[0])
	}
	last := picks[len(picks)-1]
	if last.OverallPick != DefaultTotalPicks {
		t.Fatalf("last pick overall = %d, want %d", last.OverallPick, DefaultTotalPicks)
	}
}

func TestBuildOrder_CompensatoryPicksInsertedAfterRound(t *testing.T) {
	comps := []CompensatoryPick{
		{Round: 3, TeamID: 99},
		{Round: 3, TeamID: 98},
	}
	picks := BuildOrder("dynasty-1", 2026, standingsOrderFixture(), comps)

	if err := Validate(picks); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	var round3 []int
	for _, p := range picks {
		if p.Round == 3 {
			round3 = append(round3, p.OverallPick)
		}
	}
	// 32 natural picks plus 2 compensatory picks in round 3.
	if len(round3) != 34 {
		t.Fatalf("round 3 has %d picks, want 34", len(round3))
	}

	// The two trailing picks in round 3 must be the compensatory ones,
	// in award order, and flagged as compensatory.
	var comp1Overall, comp2Overall int
	for _, p := range picks {
		if p.Round != 3 || !p.IsCompensatory {
			continue
		}
		switch p.OriginalTeamID {
		case 99:
			comp1Overall = p.OverallPick
		case 98:
			comp2Overall = p.OverallPick
		}
	}
	if comp1Overall == 0 || comp2Overall == 0 {
		t.Fatalf("expected both compensatory picks present in round 3")
	}
	if comp1Overall >= comp2Overall {
		t.Fatalf("compensatory picks out of award order: team 99 overall %d, team 98 overall %d", comp1Overall, comp2Overall)
	}
}

func TestCompForRound_AssignsSequentialSlots(t *testing.T) {
	comps := []CompensatoryPick{
		{Round: 4, TeamID: 1},
		{Round: 5, TeamID: 2},
		{Round: 4, TeamID: 3},
	}

	round4 := compForRound(comps, 4)
	if len(round4) != 2 {
		t.Fatalf("compForRound(4) returned %d picks, want 2", len(round4))
	}
	if round4[0].slotWithinRound != 1 || round4[1].slotWithinRound != 2 {
		t.Fatalf("slots = %d, %d; want 1, 2", round4[0].slotWithinRound, round4[1].slotWithinRound)
	}

	round5 := compForRound(comps, 5)
	if len(round5) != 1 {
		t.Fatalf("compForRound(5) returned %d picks, want 1", len(round5))
	}
}

func TestValidate_DetectsNonContiguousOrder(t *testing.T) {
	picks := BuildOrder("dynasty-1", 2026, standingsOrderFixture(), nil)
	picks[5].OverallPick = 999

	if err := Validate(picks); err == nil {
		t.Fatalf("Validate() = nil, want error for non-contiguous overall_pick")
	}
}
