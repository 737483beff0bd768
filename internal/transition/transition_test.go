package transition

import "testing"

func TestAllTeamIDs_Returns32SequentialIDs(t *testing.T) {
	ids := AllTeamIDs()
	if len(ids) != 32 {
		t.Fatalf("AllTeamIDs() returned %d ids, want 32", len(ids))
	}
	for i, id := range ids {
		if id != i+1 {
			t.Fatalf("AllTeamIDs()[%d] = %d, want %d", i, id, i+1)
		}
	}
}

func TestRoundCompletion_HighestSeedHostsLowest(t *testing.T) {
	remaining := map[int]int{
		101: 2, // team 101 is seed 2
		102: 7, // team 102 is seed 7
		103: 3,
		104: 6,
	}

	result := RoundCompletion(remaining)
	if len(result.NextRoundMatchups) != 2 {
		t.Fatalf("NextRoundMatchups has %d entries, want 2", len(result.NextRoundMatchups))
	}

	// Seed 2 (101) should host seed 7 (102); seed 3 (103) should host seed 6 (104).
	first := result.NextRoundMatchups[0]
	if first[0] != 101 || first[1] != 102 {
		t.Errorf("first matchup = %v, want [101 102] (seed 2 hosts seed 7)", first)
	}
	second := result.NextRoundMatchups[1]
	if second[0] != 103 || second[1] != 104 {
		t.Errorf("second matchup = %v, want [103 104] (seed 3 hosts seed 6)", second)
	}
}

func TestWildCardPairs_SeedsTwoThroughSevenPairedAroundHighSeedHome(t *testing.T) {
	seeds := []int{201, 202, 203, 204, 205, 206, 207} // seed 1..7 team ids
	pairs, err := wildCardPairs(seeds)
	if err != nil {
		t.Fatalf("wildCardPairs: %v", err)
	}
	want := [3][2]int{{202, 207}, {203, 206}, {204, 205}}
	if pairs != want {
		t.Fatalf("pairs = %v, want %v", pairs, want)
	}
}

func TestWildCardPairs_WrongSeedCountErrors(t *testing.T) {
	if _, err := wildCardPairs([]int{1, 2, 3}); err == nil {
		t.Fatal("expected an error for a 3-seed conference")
	}
}

func TestRoundCompletion_OddCountDropsUnmatchedMiddleSeed(t *testing.T) {
	remaining := map[int]int{
		1: 1,
		2: 2,
		3: 3,
	}
	result := RoundCompletion(remaining)
	if len(result.NextRoundMatchups) != 1 {
		t.Fatalf("NextRoundMatchups has %d entries, want 1", len(result.NextRoundMatchups))
	}
	if result.NextRoundMatchups[0] != [2]int{1, 3} {
		t.Errorf("matchup = %v, want [1 3]", result.NextRoundMatchups[0])
	}
}
