package scenarios

import (
	"errors"
	"math"
	"testing"

	"github.com/dimasea19961/powerplant-coding-challenge/core/solver"
)

// RunScenario solves the scenario and checks the outcome against the
// expectations declared in the YAML file.
func RunScenario(t *testing.T, sc *Scenario) {
	ms, err := sc.ToModel()
	if err != nil {
		t.Fatalf("build scenario: %v", err)
	}

	plan, err := solver.Solver{}.Solve(ms)
	if sc.Expected.Infeasible {
		if !errors.Is(err, solver.ErrInfeasible) {
			t.Fatalf("expected infeasible, got plan %v err %v", plan, err)
		}
		return
	}
	if err != nil {
		t.Fatalf("solve: %v", err)
	}

	if got := plan.TotalPower(); math.Abs(got-ms.Load) > 0.05 {
		t.Errorf("total power %.1f does not match load %.1f", got, ms.Load)
	}
	if sc.Expected.Cost != nil {
		if got := plan.Cost(ms); math.Abs(got-*sc.Expected.Cost) > 0.5 {
			t.Errorf("cost %.2f, expected %.2f", got, *sc.Expected.Cost)
		}
	}
	for _, a := range plan {
		want, ok := sc.Expected.Plan[a.Name]
		if !ok {
			continue
		}
		if math.Abs(a.Power-want) > 0.05 {
			t.Errorf("unit %s power %.1f, expected %.1f", a.Name, a.Power, want)
		}
	}
}
