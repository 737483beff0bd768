package models

import "testing"

func TestGameResult_Winner(t *testing.T) {
	tests := []struct {
		name string
		g    GameResult
		want int
	}{
		{"home wins", GameResult{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 24, AwayScore: 17}, 1},
		{"away wins", GameResult{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 10, AwayScore: 20}, 2},
		{"tie", GameResult{HomeTeamID: 1, AwayTeamID: 2, HomeScore: 20, AwayScore: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.Winner(); got != tt.want {
				t.Errorf("Winner() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGameResult_IsTie(t *testing.T) {
	if !(GameResult{HomeScore: 14, AwayScore: 14}).IsTie() {
		t.Errorf("IsTie() = false for level score, want true")
	}
	if (GameResult{HomeScore: 14, AwayScore: 10}).IsTie() {
		t.Errorf("IsTie() = true for uneven score, want false")
	}
}

func TestDayResult_Paused(t *testing.T) {
	id := "event-1"
	paused := DayResult{PendingMilestone: &id}
	if !paused.Paused() {
		t.Errorf("Paused() = false with a pending milestone, want true")
	}

	notPaused := DayResult{}
	if notPaused.Paused() {
		t.Errorf("Paused() = true with no pending milestone, want false")
	}
}

func TestWeekResult_Paused(t *testing.T) {
	id := "event-1"
	week := WeekResult{Days: []DayResult{
		{Date: NewDate(2026, 9, 10)},
		{Date: NewDate(2026, 9, 11), PendingMilestone: &id},
	}}
	if !week.Paused() {
		t.Errorf("Paused() = false when last day paused, want true")
	}

	weekClean := WeekResult{Days: []DayResult{{Date: NewDate(2026, 9, 10)}}}
	if weekClean.Paused() {
		t.Errorf("Paused() = true with no paused days, want false")
	}

	var empty WeekResult
	if empty.Paused() {
		t.Errorf("Paused() = true for an empty week, want false")
	}
}

func TestPhaseResult_Paused(t *testing.T) {
	id := "event-1"
	phase := PhaseResult{Days: []DayResult{{PendingMilestone: &id}}}
	if !phase.Paused() {
		t.Errorf("Paused() = false when last day paused, want true")
	}
}
