package solver

import (
	"math"
	"testing"
)

func TestRankUnits_MeritOrder(t *testing.T) {
	s := challengeScenario(480)
	units := rankUnits(s)

	wantNames := []string{
		"windpark1", "windpark2",
		"gasfiredbig1", "gasfiredbig2",
		"gasfiredsomewhatsmaller", "tj1",
	}
	for i, want := range wantNames {
		if units[i].unit.Name != want {
			t.Fatalf("position %d = %s, want %s", i, units[i].unit.Name, want)
		}
	}

	wantCosts := []float64{0, 0, 13.4/0.53 + 6, 13.4/0.53 + 6, 13.4/0.37 + 6, 50.8 / 0.3}
	for i, want := range wantCosts {
		if math.Abs(units[i].cost-want) > 1e-9 {
			t.Fatalf("cost %d = %v, want %v", i, units[i].cost, want)
		}
	}
}

func TestRankUnits_TieBreaks(t *testing.T) {
	s := challengeScenario(100)
	units := rankUnits(s)

	// Zero-cost wind ties resolve to the larger effective capacity.
	if units[0].unit.Name != "windpark1" || units[0].pmax != 90 {
		t.Fatalf("expected windpark1 at 90 MW first, got %s at %v", units[0].unit.Name, units[0].pmax)
	}
	if units[1].unit.Name != "windpark2" || math.Abs(units[1].pmax-21.6) > 1e-9 {
		t.Fatalf("expected windpark2 at 21.6 MW second")
	}

	// Identical cost and capacity keeps the input order.
	if units[2].unit.Name != "gasfiredbig1" || units[3].unit.Name != "gasfiredbig2" {
		t.Fatalf("gas tie not stable: %s, %s", units[2].unit.Name, units[3].unit.Name)
	}
}

func TestRankUnits_Pure(t *testing.T) {
	s := challengeScenario(480)
	before := append([]string(nil))
	for _, u := range s.Units {
		before = append(before, u.Name)
	}
	_ = rankUnits(s)
	for i, u := range s.Units {
		if u.Name != before[i] {
			t.Fatalf("rankUnits mutated the scenario fleet")
		}
	}
}
