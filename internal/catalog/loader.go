package catalog

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

type abilitiesFile struct {
	Abilities []game.Ability `yaml:"abilities"`
}

type jobsFile struct {
	Jobs []game.Job `yaml:"jobs"`
}

type enemiesFile struct {
	Enemies []game.EnemyTemplate `yaml:"enemies"`
}

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Load reads abilities.yaml, jobs.yaml and enemies.yaml from dir and
// builds a validated catalog.
func Load(dir string) (*Catalog, error) {
	var af abilitiesFile
	var jf jobsFile
	var ef enemiesFile
	if err := loadYAML(filepath.Join(dir, "abilities.yaml"), &af); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "jobs.yaml"), &jf); err != nil {
		return nil, err
	}
	if err := loadYAML(filepath.Join(dir, "enemies.yaml"), &ef); err != nil {
		return nil, err
	}
	if len(af.Abilities) == 0 {
		return nil, fmt.Errorf("catalog dir %s: abilities.yaml has no 'abilities' entries", dir)
	}
	if len(jf.Jobs) == 0 {
		return nil, fmt.Errorf("catalog dir %s: jobs.yaml has no 'jobs' entries", dir)
	}
	if len(ef.Enemies) == 0 {
		return nil, fmt.Errorf("catalog dir %s: enemies.yaml has no 'enemies' entries", dir)
	}
	return New(af.Abilities, jf.Jobs, ef.Enemies)
}
