package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dimasea19961/powerplant-coding-challenge/core/model"
)

type UnitDef struct {
	Name       string  `yaml:"name"`
	Type       string  `yaml:"type"`
	Efficiency float64 `yaml:"efficiency"`
	PMin       float64 `yaml:"pmin"`
	PMax       float64 `yaml:"pmax"`
}

func (u UnitDef) ToModel() (model.Unit, error) {
	kind, ok := model.UnitKindFromString(u.Type)
	if !ok {
		return model.Unit{}, fmt.Errorf("unit %s: unknown type %q", u.Name, u.Type)
	}
	return model.Unit{
		Name:       u.Name,
		Kind:       kind,
		Efficiency: u.Efficiency,
		PMin:       u.PMin,
		PMax:       u.PMax,
	}, nil
}

type FuelsDef struct {
	Gas      float64 `yaml:"gas"`
	Kerosine float64 `yaml:"kerosine"`
	CO2      float64 `yaml:"co2"`
	Wind     float64 `yaml:"wind"`
}

type Expected struct {
	Infeasible bool               `yaml:"infeasible,omitempty"`
	Cost       *float64           `yaml:"cost,omitempty"`
	Plan       map[string]float64 `yaml:"plan,omitempty"`
}

type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Load        float64   `yaml:"load"`
	Fuels       FuelsDef  `yaml:"fuels"`
	Units       []UnitDef `yaml:"units"`
	Expected    Expected  `yaml:"expected"`
}

func (s Scenario) ToModel() (model.Scenario, error) {
	units := make([]model.Unit, 0, len(s.Units))
	for _, u := range s.Units {
		m, err := u.ToModel()
		if err != nil {
			return model.Scenario{}, err
		}
		units = append(units, m)
	}
	return model.Scenario{
		Load: s.Load,
		Fuels: model.FuelPrices{
			Gas:      s.Fuels.Gas,
			Kerosine: s.Fuels.Kerosine,
			CO2:      s.Fuels.CO2,
			Wind:     s.Fuels.Wind,
		},
		Units: units,
	}, nil
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}
