package draft

import "github.com/nfl-analytics/dynasty-core/internal/models"

// RosterSnapshot is the minimal per-position roster strength picture
// NeedsAnalyzer requires: the starter's overall rating and how many
// depth players back them up. Full roster/depth-chart management is out
// of scope (spec.md Non-goals cover only the phase machine's own rules;
// a roster subsystem is simply a component this spec never asks for), so
// callers supply this snapshot rather than NeedsAnalyzer reading a
// roster store directly.
type RosterSnapshot map[string]PositionStrength

// PositionStrength summarizes one position group on a roster.
type PositionStrength struct {
	StarterOverall int
	DepthCount     int
}

// starterThreshold is the minimum acceptable starter rating below which
// a position is considered a need at all, grounded on
// team_needs_analyzer.py's STARTER_THRESHOLDS (collapsed to a single
// tier since this engine does not model the original's four-tier
// positional value table).
const starterThreshold = 75

// NeedsAnalyzer derives positional need urgency from a roster snapshot,
// grounded on original_source/src/offseason/team_needs_analyzer.py.
type NeedsAnalyzer struct{}

// NewNeedsAnalyzer returns a NeedsAnalyzer.
func NewNeedsAnalyzer() *NeedsAnalyzer {
	return &NeedsAnalyzer{}
}

// Analyze derives urgency scores for every position present in snapshot.
// Urgency follows team_needs_analyzer.py's NeedUrgency scale, keyed on
// the starter's overall: 5 (below 70), 4 (70-74), 3 (75-79, or 4 when
// DepthCount is under 2), 2 (80-84), 1 (85+). Depth is consulted only in
// the 75-79 band.
func (a *NeedsAnalyzer) Analyze(snapshot RosterSnapshot) []models.TeamNeed {
	var needs []models.TeamNeed
	for position, strength := range snapshot {
		needs = append(needs, models.TeamNeed{
			Position: position,
			Urgency:  urgencyFor(strength),
		})
	}
	return needs
}

func urgencyFor(s PositionStrength) int {
	switch {
	case s.StarterOverall < 70:
		return 5
	case s.StarterOverall < starterThreshold:
		return 4
	case s.StarterOverall < 80:
		if s.DepthCount < 2 {
			return 4
		}
		return 3
	case s.StarterOverall < 85:
		return 2
	default:
		return 1
	}
}
