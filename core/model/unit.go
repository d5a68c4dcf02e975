package model

import "fmt"

// UnitKind identifies the technology of a generating unit.
type UnitKind int

const (
	GasFired UnitKind = iota
	Turbojet
	WindTurbine
)

// String returns the wire name of the unit kind.
func (k UnitKind) String() string {
	switch k {
	case GasFired:
		return "gasfired"
	case Turbojet:
		return "turbojet"
	case WindTurbine:
		return "windturbine"
	default:
		return "unknown"
	}
}

// UnitKindFromString parses the wire name of a unit kind.
func UnitKindFromString(s string) (UnitKind, bool) {
	switch s {
	case "gasfired":
		return GasFired, true
	case "turbojet":
		return Turbojet, true
	case "windturbine":
		return WindTurbine, true
	default:
		return 0, false
	}
}

// Unit represents one generating asset in the fleet. PMin and PMax are
// nameplate bounds in MW; the scenario derives the effective bounds.
type Unit struct {
	Name       string
	Kind       UnitKind
	Efficiency float64 // fraction in (0,1], ignored for wind
	PMin       float64
	PMax       float64
}

// Validate checks that the unit parameters are sound.
func (u Unit) Validate() error {
	if u.Name == "" {
		return fmt.Errorf("unit has no name")
	}
	if u.PMin < 0 {
		return fmt.Errorf("unit %s: pmin must not be negative", u.Name)
	}
	if u.PMax < u.PMin {
		return fmt.Errorf("unit %s: pmin %g exceeds pmax %g", u.Name, u.PMin, u.PMax)
	}
	switch u.Kind {
	case GasFired, Turbojet:
		if u.Efficiency <= 0 || u.Efficiency > 1 {
			return fmt.Errorf("unit %s: efficiency %g outside (0,1]", u.Name, u.Efficiency)
		}
	case WindTurbine:
		if u.PMin != 0 {
			return fmt.Errorf("unit %s: wind turbines have no minimum output", u.Name)
		}
	default:
		return fmt.Errorf("unit %s: unknown kind", u.Name)
	}
	return nil
}
