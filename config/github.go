package config

import "fmt"

// GitHubConfig controls the optional push of exported files to a
// repository.
type GitHubConfig struct {
	Enabled bool   `json:"enabled"`
	Token   string `json:"token"`
	Owner   string `json:"owner"`
	Repo    string `json:"repo"`
	Branch  string `json:"branch"`
	// BasePath is prepended to every pushed file path.
	BasePath string `json:"base_path"`
}

// Validate checks mandatory fields when the push is enabled.
func (c GitHubConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Token == "" {
		return fmt.Errorf("github.token is required when push is enabled")
	}
	if c.Owner == "" || c.Repo == "" {
		return fmt.Errorf("github.owner and github.repo are required when push is enabled")
	}
	return nil
}
