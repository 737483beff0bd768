package draft

import "github.com/nfl-analytics/dynasty-core/internal/models"

// Evaluator scores prospects for a specific team's pick, directly
// grounded on original_source/src/offseason/draft_manager.py's
// _evaluate_prospect (the objective, non-GM-personality path: this
// engine has no GM-archetype layer, spec.md Non-goals).
type Evaluator struct{}

// NewEvaluator returns an Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Score computes score = overall + need_bonus - reach_penalty for one
// prospect at one pick position, given the team's positional needs.
func (e *Evaluator) Score(prospect *models.Prospect, needs []models.TeamNeed, pickPosition int) int {
	score := prospect.Overall()
	score += needBonus(prospect.Position, needs)
	if pickPosition < prospect.ProjectedPickMin-20 {
		score -= 5
	}
	return score
}

func needBonus(position string, needs []models.TeamNeed) int {
	for _, n := range needs {
		if n.Position != position {
			continue
		}
		switch {
		case n.Urgency >= 5:
			return 15
		case n.Urgency >= 4:
			return 8
		case n.Urgency >= 3:
			return 3
		default:
			return 0
		}
	}
	return 0
}

// Best returns the index of the highest-scoring prospect in pool for a
// team at pickPosition. Ties break on ascending ProjectedPickMin, then
// ascending PlayerID (spec.md §9 Open Question 2, decided).
func (e *Evaluator) Best(pool []*models.Prospect, needs []models.TeamNeed, pickPosition int) int {
	bestIdx := -1
	bestScore := 0
	for i, p := range pool {
		score := e.Score(p, needs, pickPosition)
		if bestIdx == -1 || betterCandidate(score, p, bestScore, pool[bestIdx]) {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx
}

func betterCandidate(score int, p *models.Prospect, bestScore int, best *models.Prospect) bool {
	if score != bestScore {
		return score > bestScore
	}
	if p.ProjectedPickMin != best.ProjectedPickMin {
		return p.ProjectedPickMin < best.ProjectedPickMin
	}
	return p.PlayerID < best.PlayerID
}
