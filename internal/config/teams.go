package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type teamsFile struct {
	Teams []string `yaml:"teams"`
}

// ResolveTeams merges keys from TeamsFile into Teams, normalizing case and
// dropping duplicates while keeping first-seen order.
func (c *Config) ResolveTeams() error {
	keys := append([]string(nil), c.Teams...)

	if c.TeamsFile != "" {
		fromFile, err := readTeamsFile(c.TeamsFile)
		if err != nil {
			return &ConfigurationError{Key: envTeamsFile, Reason: err.Error()}
		}
		keys = append(keys, fromFile...)
	}

	seen := make(map[string]bool, len(keys))
	resolved := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.ToUpper(strings.TrimSpace(k))
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		resolved = append(resolved, k)
	}
	c.Teams = resolved
	return nil
}

func readTeamsFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var payload teamsFile
	if err := yaml.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return payload.Teams, nil
}
