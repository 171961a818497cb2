package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/storage"
)

type dungeonEntry struct {
	Name       string           `json:"name"`
	MinLevel   int              `json:"min_level"`
	Difficulty int              `json:"difficulty"`
	Enemies    []game.EnemySpec `json:"enemies"`
}

type rawConfig struct {
	DungeonList []dungeonEntry `json:"dungeon_list"`
	// CatalogDir points at the directory holding abilities.yaml,
	// jobs.yaml and enemies.yaml.
	CatalogDir string `json:"catalog_dir"`
	Server     *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the dungeons to seed, the catalog directory and
// the server address to bind to.
type LoadedConfig struct {
	Dungeons      []game.Dungeon
	CatalogDir    string
	ServerAddress string
}

// LoadConfig reads the configuration file at path. It requires the key
// `dungeon_list` (snake_case) and a `catalog_dir`.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.DungeonList) == 0 {
		return nil, fmt.Errorf("config file %s: dungeon_list is empty (provide 'dungeon_list' array)", path)
	}
	if strings.TrimSpace(rc.CatalogDir) == "" {
		return nil, fmt.Errorf("config file %s: 'catalog_dir' is required", path)
	}

	nameSet := make(map[string]struct{}, len(rc.DungeonList))
	out := make([]game.Dungeon, 0, len(rc.DungeonList))
	for _, d := range rc.DungeonList {
		if d.Name == "" {
			return nil, fmt.Errorf("config file %s: dungeon entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(d.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate dungeon name '%s'", path, d.Name)
		}
		nameSet[ln] = struct{}{}
		if d.MinLevel < 1 {
			return nil, fmt.Errorf("config file %s: dungeon '%s': min_level must be >= 1", path, d.Name)
		}
		if d.Difficulty < 0 {
			return nil, fmt.Errorf("config file %s: dungeon '%s': difficulty must be >= 0", path, d.Name)
		}
		if len(d.Enemies) == 0 {
			return nil, fmt.Errorf("config file %s: dungeon '%s': enemies must not be empty", path, d.Name)
		}
		for _, e := range d.Enemies {
			if strings.TrimSpace(e.Type) == "" {
				return nil, fmt.Errorf("config file %s: dungeon '%s': enemy entry missing 'type'", path, d.Name)
			}
		}
		dungeon, err := storage.DungeonFromConfigEntry(d.Name, d.MinLevel, d.Difficulty, d.Enemies)
		if err != nil {
			return nil, err
		}
		out = append(out, dungeon)
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{
		Dungeons:      out,
		CatalogDir:    rc.CatalogDir,
		ServerAddress: addr,
	}, nil
}
