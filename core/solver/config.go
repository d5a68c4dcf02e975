package solver

import "fmt"

// Config defines solver-related settings.
type Config struct {
	// Allocator selects the continuous allocation strategy: "merit"
	// (default) or "lp".
	Allocator string `json:"allocator"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.Allocator == "" {
		c.Allocator = "merit"
	}
}

// Validate checks the allocator name.
func (c Config) Validate() error {
	if c.Allocator != "merit" && c.Allocator != "lp" {
		return fmt.Errorf("unknown allocator %s", c.Allocator)
	}
	return nil
}

// New builds a Solver from the config.
func New(c Config) Solver {
	return Solver{UseLP: c.Allocator == "lp"}
}
