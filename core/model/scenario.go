package model

import "fmt"

// gasEmissionTonPerMWh is the CO2 emitted per MWh generated by a
// gas-fired unit.
const gasEmissionTonPerMWh = 0.3

// FuelPrices holds the scenario-wide price constants.
type FuelPrices struct {
	Gas      float64 // euro per MWh of gas burned
	Kerosine float64 // euro per MWh of kerosine burned
	CO2      float64 // euro per ton emitted
	Wind     float64 // available fraction of nameplate wind capacity, in [0,1]
}

// Scenario is the input to one solve: the required load, the fuel prices
// and the fleet. It is constructed per request and never mutated.
type Scenario struct {
	Load  float64
	Fuels FuelPrices
	Units []Unit
}

// Validate checks the scenario structure before solving.
func (s Scenario) Validate() error {
	if len(s.Units) == 0 {
		return fmt.Errorf("fleet is empty")
	}
	if s.Load <= 0 {
		return fmt.Errorf("load %g must be positive", s.Load)
	}
	if s.Fuels.Wind < 0 || s.Fuels.Wind > 1 {
		return fmt.Errorf("wind availability %g outside [0,1]", s.Fuels.Wind)
	}
	seen := make(map[string]struct{}, len(s.Units))
	for _, u := range s.Units {
		if err := u.Validate(); err != nil {
			return err
		}
		if _, ok := seen[u.Name]; ok {
			return fmt.Errorf("duplicate unit name %s", u.Name)
		}
		seen[u.Name] = struct{}{}
	}
	return nil
}

// EffectivePMax returns the maximum output of u under this scenario. For
// wind turbines the nameplate capacity is scaled by the available wind.
func (s Scenario) EffectivePMax(u Unit) float64 {
	if u.Kind == WindTurbine {
		return u.PMax * s.Fuels.Wind
	}
	return u.PMax
}

// EffectivePMin returns the minimum output of u when committed. Wind
// turbines can always be curtailed to zero.
func (s Scenario) EffectivePMin(u Unit) float64 {
	if u.Kind == WindTurbine {
		return 0
	}
	return u.PMin
}

// MarginalCost returns the cost in euro of one MWh produced by u under
// the scenario's fuel prices.
func (s Scenario) MarginalCost(u Unit) float64 {
	switch u.Kind {
	case GasFired:
		return s.Fuels.Gas/u.Efficiency + gasEmissionTonPerMWh*s.Fuels.CO2
	case Turbojet:
		return s.Fuels.Kerosine / u.Efficiency
	default:
		return 0
	}
}
