package main

import (
	"os"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/config"
	"github.com/FrancoCastro1990/auto-rpg/internal/constants"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"
	"github.com/FrancoCastro1990/auto-rpg/internal/storage"
)

// configPath resolves the configuration file location. It may be
// provided via AUTORPG_CONFIG or defaults to ./auto_rpg_config.json in
// the current working directory.
func configPath() string {
	if p := os.Getenv(constants.EnvConfigPath); p != "" {
		return p
	}
	return constants.DefaultConfigPath
}

// dbPath resolves the SQLite database location (AUTORPG_DB or a data/
// directory for local development).
func dbPath() string {
	if p := os.Getenv(constants.EnvDBPath); p != "" {
		return p
	}
	return constants.DefaultDBPath
}

func loadConfigOrExit(path string) *config.LoadedConfig {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		logging.Fatal("Missing or invalid auto-rpg configuration", err, logging.Fields{
			"config_path": path,
			"hint":        "create an auto_rpg_config.json with a 'dungeon_list' array (name,min_level,difficulty,enemies) and a 'catalog_dir' pointing at abilities.yaml/jobs.yaml/enemies.yaml",
		})
	}
	return cfg
}

func loadCatalogOrExit(dir string) *catalog.Catalog {
	cat, err := catalog.Load(dir)
	if err != nil {
		logging.Fatal("Failed to load catalogs", err, logging.Fields{"catalog_dir": dir})
	}
	return cat
}

func createRepositoryOrExit(dbPath string, dungeons []game.Dungeon) storage.Repository {
	db, err := storage.OpenAndMigrate(dbPath, dungeons)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
