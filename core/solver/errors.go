package solver

import "errors"

// ErrInvalidScenario indicates malformed input: an empty fleet, a
// non-positive load or inconsistent unit bounds.
var ErrInvalidScenario = errors.New("invalid scenario")

// ErrInfeasible indicates that no commitment of the fleet matches the
// load exactly within the numeric tolerance.
var ErrInfeasible = errors.New("no feasible production plan")
