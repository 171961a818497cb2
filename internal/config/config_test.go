package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig_Valid(t *testing.T) {
	path := writeConfig(t, `{
		"catalog_dir": "./data/catalog",
		"server": {"address": ":9090"},
		"dungeon_list": [
			{"name": "Goblin Cave", "min_level": 1, "difficulty": 0,
			 "enemies": [{"type": "goblin"}, {"type": "goblin"}]},
			{"name": "Dragon Lair", "min_level": 5, "difficulty": 3,
			 "enemies": [{"type": "dragon", "name": "Smaug"}]}
		]
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.ServerAddress)
	}
	if cfg.CatalogDir != "./data/catalog" {
		t.Fatalf("unexpected catalog dir %q", cfg.CatalogDir)
	}
	if len(cfg.Dungeons) != 2 {
		t.Fatalf("expected 2 dungeons, got %d", len(cfg.Dungeons))
	}
	lair := cfg.Dungeons[1]
	if lair.MinLevel != 5 || lair.Difficulty != 3 {
		t.Fatalf("dungeon fields wrong: %+v", lair)
	}
	if !strings.Contains(lair.EnemiesJSON, "Smaug") {
		t.Fatalf("expected the lineup serialized, got %q", lair.EnemiesJSON)
	}
}

func TestLoadConfig_DefaultAddress(t *testing.T) {
	path := writeConfig(t, `{
		"catalog_dir": "./data/catalog",
		"dungeon_list": [
			{"name": "Cave", "min_level": 1, "difficulty": 0, "enemies": [{"type": "slime"}]}
		]
	}`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":8080" {
		t.Fatalf("expected the default address, got %q", cfg.ServerAddress)
	}
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"not json", "not json"},
		{"empty dungeon list", `{"catalog_dir": "x", "dungeon_list": []}`},
		{"missing catalog dir", `{"dungeon_list": [{"name": "Cave", "min_level": 1, "enemies": [{"type": "slime"}]}]}`},
		{"missing dungeon name", `{"catalog_dir": "x", "dungeon_list": [{"min_level": 1, "enemies": [{"type": "slime"}]}]}`},
		{"duplicate dungeon name", `{"catalog_dir": "x", "dungeon_list": [
			{"name": "Cave", "min_level": 1, "enemies": [{"type": "slime"}]},
			{"name": "cave", "min_level": 1, "enemies": [{"type": "slime"}]}
		]}`},
		{"min level below one", `{"catalog_dir": "x", "dungeon_list": [{"name": "Cave", "min_level": 0, "enemies": [{"type": "slime"}]}]}`},
		{"negative difficulty", `{"catalog_dir": "x", "dungeon_list": [{"name": "Cave", "min_level": 1, "difficulty": -1, "enemies": [{"type": "slime"}]}]}`},
		{"no enemies", `{"catalog_dir": "x", "dungeon_list": [{"name": "Cave", "min_level": 1, "enemies": []}]}`},
		{"enemy without type", `{"catalog_dir": "x", "dungeon_list": [{"name": "Cave", "min_level": 1, "enemies": [{"name": "Bob"}]}]}`},
	}
	for _, tc := range cases {
		if _, err := LoadConfig(writeConfig(t, tc.content)); err == nil {
			t.Fatalf("%s: expected an error", tc.name)
		}
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}
