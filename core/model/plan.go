package model

// Assignment is the power committed to one unit. Uncommitted units carry
// an explicit zero.
type Assignment struct {
	Name  string  `json:"name"`
	Power float64 `json:"p"`
}

// ProductionPlan lists the committed power per unit in fleet order.
type ProductionPlan []Assignment

// TotalPower sums the committed power across all units.
func (p ProductionPlan) TotalPower() float64 {
	var sum float64
	for _, a := range p {
		sum += a.Power
	}
	return sum
}

// Cost returns the total cost in euro of the plan under the scenario's
// fuel prices.
func (p ProductionPlan) Cost(s Scenario) float64 {
	byName := make(map[string]Unit, len(s.Units))
	for _, u := range s.Units {
		byName[u.Name] = u
	}
	var cost float64
	for _, a := range p {
		if u, ok := byName[a.Name]; ok {
			cost += a.Power * s.MarginalCost(u)
		}
	}
	return cost
}
