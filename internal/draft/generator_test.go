package draft

import (
	"math/rand"
	"testing"
)

func TestGenerator_Generate_ProducesRequestedSize(t *testing.T) {
	g := NewGeneratorWithSource(rand.New(rand.NewSource(42)))
	prospects := g.Generate("class-1", 262)

	if len(prospects) != 262 {
		t.Fatalf("Generate() returned %d prospects, want 262", len(prospects))
	}

	seen := make(map[string]bool, len(prospects))
	for _, p := range prospects {
		if p.DraftClassID != "class-1" {
			t.Errorf("prospect %s has draft class id %q, want class-1", p.PlayerID, p.DraftClassID)
		}
		if p.Position == "" {
			t.Errorf("prospect %s has empty position", p.PlayerID)
		}
		if p.ProjectedPickMin > p.ProjectedPickMax {
			t.Errorf("prospect %s has ProjectedPickMin %d > ProjectedPickMax %d", p.PlayerID, p.ProjectedPickMin, p.ProjectedPickMax)
		}
		if seen[p.PlayerID] {
			t.Errorf("duplicate player id %s", p.PlayerID)
		}
		seen[p.PlayerID] = true
	}
}

func TestGenerator_Generate_DeterministicWithFixedSeed(t *testing.T) {
	g1 := NewGeneratorWithSource(rand.New(rand.NewSource(7)))
	g2 := NewGeneratorWithSource(rand.New(rand.NewSource(7)))

	p1 := g1.Generate("class-a", 50)
	p2 := g2.Generate("class-a", 50)

	for i := range p1 {
		if p1[i].Position != p2[i].Position || p1[i].TrueOverall != p2[i].TrueOverall {
			t.Fatalf("generation with identical seed diverged at index %d", i)
		}
	}
}
