package solver

import (
	"errors"
	"math"
	"testing"
)

func TestSolveLP_MatchesMeritCost(t *testing.T) {
	for _, load := range []float64{130, 250, 480, 700} {
		s := challengeScenario(load)
		meritPlan, err := Solver{}.Solve(s)
		if err != nil {
			t.Fatalf("merit load %v: %v", load, err)
		}
		lpPlan, err := Solver{UseLP: true}.Solve(s)
		if err != nil {
			t.Fatalf("lp load %v: %v", load, err)
		}
		if math.Abs(lpPlan.TotalPower()-load) > 0.5 {
			t.Fatalf("lp load %v: total %v", load, lpPlan.TotalPower())
		}
		mc, lc := meritPlan.Cost(s), lpPlan.Cost(s)
		if math.Abs(mc-lc) > 1e-3 {
			t.Fatalf("load %v: merit cost %v, lp cost %v", load, mc, lc)
		}
	}
}

func TestLPFill_FallbackOnSolverError(t *testing.T) {
	old := lpSolve
	lpSolve = func(_, _ []float64, _ float64) ([]float64, error) { return nil, errors.New("fail") }
	defer func() { lpSolve = old }()

	s := challengeScenario(480)
	plan, err := Solver{UseLP: true}.Solve(s)
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	if math.Abs(plan.TotalPower()-480) > 0.5 {
		t.Fatalf("fallback should still meet the load, got %v", plan.TotalPower())
	}
}

func TestSolveLP_Direct(t *testing.T) {
	sol, err := solveLP([]float64{1, 2}, []float64{30, 30}, 40)
	if err != nil {
		t.Fatalf("simplex: %v", err)
	}
	if math.Abs(sol[0]-30) > 1e-6 || math.Abs(sol[1]-10) > 1e-6 {
		t.Fatalf("expected [30 10], got %v", sol[:2])
	}
}
