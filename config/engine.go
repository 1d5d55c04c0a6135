package config

import "fmt"

// DefaultPriority is the fixed category catalog: the order categories are
// swept in by the balanced strategy and used as tie-break everywhere else.
var DefaultPriority = []string{"AI", "CB", "CE", "CH", "CS", "CT", "EC", "MC", "MM", "MT"}

// EngineConfig controls the partitioning engine.
type EngineConfig struct {
	// Groups is the number of groups every partition must have.
	Groups int `json:"groups"`
	// Priority overrides the default category catalog.
	Priority []string `json:"priority"`
}

// SetDefaults applies sane defaults.
func (c *EngineConfig) SetDefaults() {
	if c.Groups == 0 {
		c.Groups = 15
	}
	if len(c.Priority) == 0 {
		c.Priority = DefaultPriority
	}
}

// Validate checks mandatory fields.
func (c EngineConfig) Validate() error {
	if c.Groups < 1 {
		return fmt.Errorf("engine.groups must be at least 1, got %d", c.Groups)
	}
	return nil
}
