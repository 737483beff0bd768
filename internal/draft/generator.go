package draft

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/nfl-analytics/dynasty-core/internal/models"
)

// positionWeights mirrors the rough per-position share of an NFL draft
// class, grounded on original_source/src/database/draft_class_api.py's
// generation pass (exact generator logic lives in that repo's external
// player_generation system; this reproduces its observable position mix).
type positionShare struct {
	position string
	weight   float64
}

// positionWeights is an ordered slice rather than a map: expandPositions
// walks it to build the position sequence, and map iteration order is
// randomized per run, which would make Generate non-deterministic for a
// fixed rand.Rand source.
var positionWeights = []positionShare{
	{"QB", 0.04}, {"RB", 0.09}, {"WR", 0.14}, {"TE", 0.05},
	{"LT", 0.04}, {"LG", 0.04}, {"C", 0.03}, {"RG", 0.04}, {"RT", 0.04},
	{"DE", 0.08}, {"DT", 0.07}, {"LB", 0.09},
	{"CB", 0.11}, {"S", 0.08}, {"K", 0.02}, {"P", 0.02}, {"LS", 0.02},
}

var colleges = []string{
	"Alabama", "Ohio State", "Georgia", "Michigan", "LSU", "Clemson",
	"Texas", "Oklahoma", "Penn State", "Oregon", "Florida State", "USC",
	"Notre Dame", "Wisconsin", "Iowa", "Tennessee", "Utah", "Miami",
}

var archetypesByPosition = map[string][]string{
	"QB": {"pocket_passer", "dual_threat", "game_manager"},
	"RB": {"workhorse", "scat_back", "power_back"},
	"WR": {"deep_threat", "possession", "slot"},
	"TE": {"receiving", "blocking", "hybrid"},
	"CB": {"press", "zone", "slot_corner"},
}

// Generator produces a synthetic draft class, mirroring the teacher's
// position-mix + attribute-spread approach instead of a literal port of
// the original's external generator.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator returns a Generator with a fixed seed (1), so every
// Generator built this way yields the same class; NewGeneratorWithSource
// takes a caller-supplied rand.Rand instead.
func NewGenerator() *Generator {
	return &Generator{rand: rand.New(rand.NewSource(1))}
}

// NewGeneratorWithSource returns a Generator using r for all randomness.
func NewGeneratorWithSource(r *rand.Rand) *Generator {
	return &Generator{rand: r}
}

// Generate produces size prospects for draftClassID.
func (g *Generator) Generate(draftClassID string, size int) []*models.Prospect {
	positions := g.expandPositions(size)
	prospects := make([]*models.Prospect, 0, size)
	for i, position := range positions {
		prospects = append(prospects, g.generateOne(draftClassID, position, i))
	}
	return prospects
}

func (g *Generator) expandPositions(size int) []string {
	out := make([]string, 0, size)
	for _, share := range positionWeights {
		count := int(share.weight * float64(size))
		for i := 0; i < count; i++ {
			out = append(out, share.position)
		}
	}
	for len(out) < size {
		out = append(out, "WR")
	}
	g.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out[:size]
}

func (g *Generator) generateOne(draftClassID, position string, seq int) *models.Prospect {
	trueOverall := 55 + g.rand.Intn(40)
	scoutingError := g.rand.Intn(11) - 5
	scoutedOverall := clamp(trueOverall+scoutingError, 40, 99)

	confidence := models.ConfidenceMedium
	switch {
	case abs(scoutingError) <= 1:
		confidence = models.ConfidenceHigh
	case abs(scoutingError) >= 4:
		confidence = models.ConfidenceLow
	}

	projectedCenter := projectedPickFromOverall(scoutedOverall)
	curve := developmentCurveFor(g.rand.Intn(3))

	return &models.Prospect{
		PlayerID:           uuid.New().String(),
		DraftClassID:       draftClassID,
		FirstName:          fmt.Sprintf("Prospect%d", seq),
		LastName:           fmt.Sprintf("Class%s", shortID(draftClassID)),
		Position:           position,
		Age:                20 + g.rand.Intn(4),
		College:            colleges[g.rand.Intn(len(colleges))],
		Archetype:          archetypeFor(g.rand, position),
		DevelopmentCurve:   curve,
		TrueOverall:        trueOverall,
		ScoutedOverall:     scoutedOverall,
		ScoutingConfidence: confidence,
		ProjectedPickMin:   clamp(projectedCenter-15, 1, 262),
		ProjectedPickMax:   clamp(projectedCenter+15, 1, 262),
		Attributes:         attributesFor(g.rand, position),
	}
}

func archetypeFor(r *rand.Rand, position string) string {
	options, ok := archetypesByPosition[position]
	if !ok {
		return "balanced"
	}
	return options[r.Intn(len(options))]
}

func developmentCurveFor(n int) models.DevelopmentCurve {
	switch n {
	case 0:
		return models.DevelopmentEarly
	case 1:
		return models.DevelopmentStandard
	default:
		return models.DevelopmentLate
	}
}

// projectedPickFromOverall maps a scouted overall to a rough draft slot:
// 99 overall projects to pick 1, 40 overall projects to pick 262.
func projectedPickFromOverall(overall int) int {
	pick := 262 - (overall-40)*262/59
	return clamp(pick, 1, 262)
}

func attributesFor(r *rand.Rand, position string) map[string]int {
	base := map[string]int{
		"speed":    60 + r.Intn(35),
		"strength": 60 + r.Intn(35),
		"agility":  60 + r.Intn(35),
		"awareness": 55 + r.Intn(35),
	}
	switch position {
	case "QB":
		base["arm_strength"] = 60 + r.Intn(35)
		base["accuracy"] = 60 + r.Intn(35)
	case "WR", "CB":
		base["route_running"] = 60 + r.Intn(35)
		base["hands"] = 60 + r.Intn(35)
	case "LT", "LG", "C", "RG", "RT", "DT", "DE":
		base["run_block"] = 60 + r.Intn(35)
		base["pass_block"] = 60 + r.Intn(35)
	}
	return base
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
