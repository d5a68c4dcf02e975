package plan

import (
	"fmt"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

// Payload mirrors the POST /productionplan request body.
type Payload struct {
	Load        float64      `json:"load"`
	Fuels       Fuels        `json:"fuels"`
	Powerplants []Powerplant `json:"powerplants"`
}

// Fuels carries the scenario prices. Wind is a percentage on the wire.
type Fuels struct {
	Gas      float64 `json:"gas(euro/MWh)"`
	Kerosine float64 `json:"kerosine(euro/MWh)"`
	CO2      float64 `json:"co2(euro/ton)"`
	Wind     float64 `json:"wind(%)"`
}

// Powerplant describes one unit of the fleet on the wire.
type Powerplant struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Efficiency float64 `json:"efficiency"`
	PMin       float64 `json:"pmin"`
	PMax       float64 `json:"pmax"`
}

// Scenario converts the payload to the core model. Structural problems
// are reported here, before the solver runs.
func (p Payload) Scenario() (model.Scenario, error) {
	if p.Fuels.Wind < 0 || p.Fuels.Wind > 100 {
		return model.Scenario{}, fmt.Errorf("wind(%%) %g outside [0,100]", p.Fuels.Wind)
	}
	units := make([]model.Unit, len(p.Powerplants))
	for i, pp := range p.Powerplants {
		kind, ok := model.UnitKindFromString(pp.Type)
		if !ok {
			return model.Scenario{}, fmt.Errorf("powerplant %s: unknown type %q", pp.Name, pp.Type)
		}
		units[i] = model.Unit{
			Name:       pp.Name,
			Kind:       kind,
			Efficiency: pp.Efficiency,
			PMin:       pp.PMin,
			PMax:       pp.PMax,
		}
	}
	return model.Scenario{
		Load: p.Load,
		Fuels: model.FuelPrices{
			Gas:      p.Fuels.Gas,
			Kerosine: p.Fuels.Kerosine,
			CO2:      p.Fuels.CO2,
			Wind:     p.Fuels.Wind / 100,
		},
		Units: units,
	}, nil
}
