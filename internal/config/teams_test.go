package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveTeamsMergesFileAndDedupes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte("teams:\n  - unc\n  - KU\n  - duke\n"), 0o600); err != nil {
		t.Fatalf("write teams file: %v", err)
	}

	cfg := Config{Teams: []string{"DUKE", " unc"}, TeamsFile: path}
	if err := cfg.ResolveTeams(); err != nil {
		t.Fatalf("unexpected error %v", err)
	}

	want := []string{"DUKE", "UNC", "KU"}
	if len(cfg.Teams) != len(want) {
		t.Fatalf("expected %v, got %v", want, cfg.Teams)
	}
	for i := range want {
		if cfg.Teams[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, cfg.Teams)
		}
	}
}

func TestResolveTeamsMissingFile(t *testing.T) {
	cfg := Config{TeamsFile: filepath.Join(t.TempDir(), "absent.yaml")}

	err := cfg.ResolveTeams()
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) || cfgErr.Key != envTeamsFile {
		t.Fatalf("expected TEAMS_FILE configuration error, got %v", err)
	}
}

func TestResolveTeamsInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "teams.yaml")
	if err := os.WriteFile(path, []byte("teams: [unterminated"), 0o600); err != nil {
		t.Fatalf("write teams file: %v", err)
	}

	cfg := Config{TeamsFile: path}
	if err := cfg.ResolveTeams(); err == nil {
		t.Fatal("expected parse error")
	}
}
