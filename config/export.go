package config

import "fmt"

// ExportConfig controls which artifacts a run writes and where.
type ExportConfig struct {
	// Dir is the output directory for exported files.
	Dir string `json:"dir"`
	// Formats selects the artifacts to write: csv, xlsx, zip.
	Formats []string `json:"formats"`
}

// SetDefaults applies sane defaults.
func (c *ExportConfig) SetDefaults() {
	if c.Dir == "" {
		c.Dir = "out"
	}
	if len(c.Formats) == 0 {
		c.Formats = []string{"csv"}
	}
}

// Validate checks the format list.
func (c ExportConfig) Validate() error {
	for _, f := range c.Formats {
		switch f {
		case "csv", "xlsx", "zip":
		default:
			return fmt.Errorf("unknown export format %q", f)
		}
	}
	return nil
}

// Has reports whether the format is enabled.
func (c ExportConfig) Has(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}
