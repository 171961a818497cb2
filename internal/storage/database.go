package storage

import (
	"encoding/json"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database, keeps the schema updated
// via AutoMigrate and seeds the dungeon table from the server
// configuration when it is empty.
func OpenAndMigrate(dataSourceName string, dungeonsFromConfig []game.Dungeon) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&game.PlayerAccount{}, &game.Party{}, &game.PartyMember{}, &game.Dungeon{}, &game.CombatRecord{})
	if err != nil {
		return nil, err
	}

	seedDungeons(db, dungeonsFromConfig)
	return db, nil
}

// seedDungeons inserts the configured dungeons on first run. The config
// file stays the source of truth for the lineup of a named dungeon:
// existing rows are refreshed so edits to the config take effect on
// restart.
func seedDungeons(db *gorm.DB, dungeons []game.Dungeon) {
	for _, d := range dungeons {
		var existing game.Dungeon
		err := db.Where("name = ?", d.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&d).Error; err != nil {
				logging.Error("failed to seed dungeon", err, logging.Fields{"name": d.Name})
			}
			continue
		}
		if err != nil {
			logging.Error("failed to look up dungeon during seeding", err, logging.Fields{"name": d.Name})
			continue
		}
		existing.MinLevel = d.MinLevel
		existing.Difficulty = d.Difficulty
		existing.EnemiesJSON = d.EnemiesJSON
		if err := db.Save(&existing).Error; err != nil {
			logging.Error("failed to refresh seeded dungeon", err, logging.Fields{"name": d.Name})
		}
	}
}

// DungeonFromConfigEntry converts a validated config entry into the
// persisted model, serializing the enemy lineup.
func DungeonFromConfigEntry(name string, minLevel, difficulty int, enemies []game.EnemySpec) (game.Dungeon, error) {
	b, err := json.Marshal(enemies)
	if err != nil {
		return game.Dungeon{}, err
	}
	return game.Dungeon{
		Name:        name,
		MinLevel:    minLevel,
		Difficulty:  difficulty,
		EnemiesJSON: string(b),
	}, nil
}
