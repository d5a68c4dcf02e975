package solver

import (
	"fmt"
	"math"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

// tol absorbs floating-point drift from repeated subtraction when
// comparing power sums against the load.
const tol = 1e-6

// Solver computes minimum-cost production plans. The zero value uses the
// merit-order allocator; UseLP switches the continuous allocation
// subproblem to the simplex solver.
type Solver struct {
	UseLP bool
}

// Solve computes the minimum-cost production plan for the scenario. The
// returned plan lists every unit in fleet order, uncommitted units at
// zero, with outputs rounded to 0.1 MW. Malformed scenarios yield an
// error wrapping ErrInvalidScenario, unsatisfiable ones ErrInfeasible.
func (sv Solver) Solve(s model.Scenario) (model.ProductionPlan, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScenario, err)
	}
	units := rankUnits(s)
	var totalMax float64
	for _, r := range units {
		totalMax += r.pmax
	}
	if s.Load > totalMax+tol {
		return nil, fmt.Errorf("%w: load %g exceeds total capacity %g", ErrInfeasible, s.Load, totalMax)
	}
	out, ok := newSearch(units, s.Load, sv.fill()).run()
	if !ok {
		return nil, fmt.Errorf("%w: load %g cannot be matched within unit bounds", ErrInfeasible, s.Load)
	}
	plan := make(model.ProductionPlan, len(s.Units))
	for i, r := range units {
		plan[r.index] = model.Assignment{Name: r.unit.Name, Power: round1(out[i])}
	}
	return plan, nil
}

func (sv Solver) fill() fillFunc {
	if sv.UseLP {
		return lpFill
	}
	return meritFill
}

// round1 rounds to the 0.1 MW reporting precision. The feasibility check
// runs on unrounded values.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// fillFunc solves the continuous allocation for a fixed commitment. It
// reports false when the committed units cannot match the load exactly.
type fillFunc func(units []ranked, on []bool, load float64) ([]float64, bool)

// search explores commitment alternatives over the merit order. The
// commit branch is taken first, so the first complete leaf is the plain
// greedy merit-order plan; later leaves are visited only while they can
// still undercut the best cost found.
type search struct {
	units   []ranked
	load    float64
	fill    fillFunc
	on      []bool
	tailMax []float64 // sum of effective pmax from position i to the end

	best      []float64
	bestCost  float64
	bestUnits int
	found     bool
}

func newSearch(units []ranked, load float64, fill fillFunc) *search {
	tail := make([]float64, len(units)+1)
	for i := len(units) - 1; i >= 0; i-- {
		tail[i] = tail[i+1] + units[i].pmax
	}
	return &search{
		units:   units,
		load:    load,
		fill:    fill,
		on:      make([]bool, len(units)),
		tailMax: tail,
	}
}

func (s *search) run() ([]float64, bool) {
	s.explore(0, 0, 0)
	return s.best, s.found
}

// explore branches on committing unit i. minSum and maxSum accumulate the
// bounds of the units committed so far.
func (s *search) explore(i int, minSum, maxSum float64) {
	if minSum > s.load+tol {
		return // minimum outputs alone already exceed the load
	}
	if maxSum+s.tailMax[i] < s.load-tol {
		return // even running everything flat out falls short
	}
	if i == len(s.units) {
		s.leaf(maxSum)
		return
	}
	if s.found && s.lowerBound(i, minSum) > s.bestCost+tol {
		return
	}
	r := s.units[i]
	s.on[i] = true
	s.explore(i+1, minSum+r.pmin, maxSum+r.pmax)
	s.on[i] = false
	s.explore(i+1, minSum, maxSum)
}

func (s *search) leaf(maxSum float64) {
	if maxSum < s.load-tol {
		return
	}
	out, ok := s.fill(s.units, s.on, s.load)
	if !ok {
		return
	}
	cost := allocationCost(s.units, out)
	committed := 0
	for _, v := range s.on {
		if v {
			committed++
		}
	}
	// Equal-cost plans prefer the smaller commitment set, keeping the
	// result deterministic when units share a marginal cost.
	better := !s.found || cost < s.bestCost-tol ||
		(cost <= s.bestCost+tol && committed < s.bestUnits)
	if better {
		s.found = true
		s.bestCost = cost
		s.bestUnits = committed
		s.best = append([]float64(nil), out...)
	}
}

// lowerBound estimates the cheapest possible completion of the partial
// commitment at position i: committed minimums are mandatory, and the
// rest of the load is filled cheapest-first with every other minimum
// relaxed. Relaxation only removes constraints, so the bound never
// exceeds the true optimum of the subtree.
func (s *search) lowerBound(i int, minSum float64) float64 {
	var cost float64
	for j := 0; j < i; j++ {
		if s.on[j] {
			cost += s.units[j].pmin * s.units[j].cost
		}
	}
	remaining := s.load - minSum
	if remaining <= 0 {
		return cost
	}
	// The merit order is sorted by cost, so one pass is cheapest-first.
	for j := range s.units {
		var head float64
		switch {
		case j < i && s.on[j]:
			head = s.units[j].pmax - s.units[j].pmin
		case j >= i:
			head = s.units[j].pmax
		default:
			continue
		}
		take := math.Min(head, remaining)
		cost += take * s.units[j].cost
		remaining -= take
		if remaining <= tol {
			break
		}
	}
	return cost
}

// meritFill assigns every committed unit its minimum output and spreads
// the remainder over the cheapest committed units first. For a fixed
// commitment this allocation is optimal.
func meritFill(units []ranked, on []bool, load float64) ([]float64, bool) {
	out := make([]float64, len(units))
	remaining := load
	for i, r := range units {
		if on[i] {
			out[i] = r.pmin
			remaining -= r.pmin
		}
	}
	if remaining < -tol {
		return nil, false
	}
	for i, r := range units {
		if !on[i] {
			continue
		}
		take := math.Min(r.pmax-r.pmin, remaining)
		if take > 0 {
			out[i] += take
			remaining -= take
		}
		if remaining <= tol {
			break
		}
	}
	if remaining > tol {
		return nil, false
	}
	return out, true
}

func allocationCost(units []ranked, out []float64) float64 {
	var cost float64
	for i, r := range units {
		cost += out[i] * r.cost
	}
	return cost
}
