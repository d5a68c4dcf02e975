package solver

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// lpFill solves the continuous allocation for a fixed commitment with the
// simplex method. Variables are the outputs above each committed unit's
// minimum. Merit fill is the fallback whenever the solver fails.
func lpFill(units []ranked, on []bool, load float64) ([]float64, bool) {
	var idx []int
	var costs, head []float64
	target := load
	for i, r := range units {
		if !on[i] {
			continue
		}
		target -= r.pmin
		if r.pmax-r.pmin > 0 {
			idx = append(idx, i)
			costs = append(costs, r.cost)
			head = append(head, r.pmax-r.pmin)
		}
	}
	if target < -tol {
		return nil, false
	}
	if len(idx) == 0 {
		return meritFill(units, on, load)
	}

	sol, err := lpSolve(costs, head, target)
	if err != nil {
		return meritFill(units, on, load)
	}

	out := make([]float64, len(units))
	sum := 0.0
	for i, r := range units {
		if on[i] {
			out[i] = r.pmin
			sum += r.pmin
		}
	}
	for k, i := range idx {
		p := sol[k]
		if p < 0 {
			p = 0
		}
		if p > head[k] {
			p = head[k]
		}
		out[i] += p
		sum += p
	}
	if math.Abs(sum-load) > 1e-3 {
		return meritFill(units, on, load)
	}
	return out, true
}

// lpSolve points to the simplex routine. Tests override it to simulate
// solver failures.
var lpSolve = solveLP

// solveLP minimises total cost subject to the headroom caps and the
// equality constraint on the load remainder.
func solveLP(costs, caps []float64, target float64) ([]float64, error) {
	n := len(costs)
	c := make([]float64, n)
	copy(c, costs)

	g := mat.NewDense(n, n, nil)
	h := make([]float64, n)
	for i, cp := range caps {
		g.Set(i, i, 1)
		h[i] = cp
	}

	a := mat.NewDense(1, n, nil)
	for i := 0; i < n; i++ {
		a.Set(0, i, 1)
	}
	b := []float64{target}

	cStd, aStd, bStd := lp.Convert(c, g, h, a, b)
	_, sol, err := lp.Simplex(cStd, aStd, bStd, 1e-7, nil)
	return sol, err
}
