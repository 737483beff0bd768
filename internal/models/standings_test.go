package models

import "testing"

func TestStandings_WinPercentage(t *testing.T) {
	tests := []struct {
		name string
		s    Standings
		want float64
	}{
		{"undefeated", Standings{Wins: 10, Losses: 0, Ties: 0}, 1.0},
		{"winless", Standings{Wins: 0, Losses: 10, Ties: 0}, 0.0},
		{"even split", Standings{Wins: 5, Losses: 5, Ties: 0}, 0.5},
		{"with a tie", Standings{Wins: 9, Losses: 6, Ties: 1}, (9 + 0.5) / 16},
		{"no games played", Standings{}, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.WinPercentage(); got != tt.want {
				t.Errorf("WinPercentage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStandings_PointDifferential(t *testing.T) {
	s := Standings{PointsFor: 350, PointsAgainst: 300}
	if got := s.PointDifferential(); got != 50 {
		t.Errorf("PointDifferential() = %d, want 50", got)
	}
}

func TestNewStandings_ZeroedAtCreation(t *testing.T) {
	s := NewStandings("dynasty-1", 2026, SeasonTypeRegularSeason, 7)
	if s.Wins != 0 || s.Losses != 0 || s.Ties != 0 {
		t.Errorf("NewStandings() = %+v, want 0-0-0", s)
	}
	if s.DynastyID != "dynasty-1" || s.Season != 2026 || s.SeasonType != SeasonTypeRegularSeason || s.TeamID != 7 {
		t.Errorf("NewStandings() identity fields = %+v", s)
	}
}
