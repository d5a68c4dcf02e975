package solver

import (
	"sort"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

// ranked carries a unit with its scenario-derived cost and bounds. index
// is the unit's position in the input fleet.
type ranked struct {
	unit  model.Unit
	index int
	cost  float64
	pmin  float64
	pmax  float64
}

// rankUnits orders the fleet by ascending marginal cost. Ties prefer the
// unit with the larger effective capacity so fewer minimum-output
// constraints are active at once; remaining ties keep the input order.
func rankUnits(s model.Scenario) []ranked {
	list := make([]ranked, len(s.Units))
	for i, u := range s.Units {
		list[i] = ranked{
			unit:  u,
			index: i,
			cost:  s.MarginalCost(u),
			pmin:  s.EffectivePMin(u),
			pmax:  s.EffectivePMax(u),
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].cost != list[j].cost {
			return list[i].cost < list[j].cost
		}
		return list[i].pmax > list[j].pmax
	})
	return list
}
