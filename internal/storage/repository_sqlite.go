package storage

import (
	"strconv"

	"github.com/FrancoCastro1990/auto-rpg/internal/dedupe"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

// NewSQLiteRepository wraps a migrated gorm database in the Repository
// interface.
func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

// --- Players ------------------------------------------------------------

func (r *sqliteRepository) GetPlayerByUsername(username string) (*game.PlayerAccount, error) {
	var p game.PlayerAccount
	if err := r.db.Where("username = ?", username).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) CreatePlayer(p *game.PlayerAccount) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) UpdateStatsOnBattleEnd(playerID uint, victory bool, loot game.Loot) error {
	var p game.PlayerAccount
	if err := r.db.First(&p, playerID).Error; err != nil {
		return err
	}
	p.BattlesFought++
	if victory {
		p.Wins++
		p.TotalGold += loot.Gold
		p.TotalExperience += loot.Experience
	}
	return r.db.Save(&p).Error
}

func (r *sqliteRepository) GetTopPlayers(limit int) ([]game.PlayerAccount, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	// Leaderboard reads are deduplicated: concurrent callers share one
	// query per limit value.
	v, err, _ := dedupe.LeaderboardGroup.Do(leaderboardKey(limit), func() (interface{}, error) {
		var players []game.PlayerAccount
		err := r.db.Order("wins desc, total_experience desc").Limit(limit).Find(&players).Error
		return players, err
	})
	if err != nil {
		return nil, err
	}
	return v.([]game.PlayerAccount), nil
}

func leaderboardKey(limit int) string {
	return "leaderboard:" + strconv.Itoa(limit)
}

// --- Parties ------------------------------------------------------------

func (r *sqliteRepository) CreateParty(p *game.Party) error {
	return r.db.Create(p).Error
}

func (r *sqliteRepository) GetPartyByID(id uint) (*game.Party, error) {
	var p game.Party
	if err := r.db.Preload("Members").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *sqliteRepository) ListPartiesByPlayer(playerID uint) ([]game.Party, error) {
	var parties []game.Party
	if err := r.db.Preload("Members").Where("player_id = ?", playerID).Order("created_at desc").Find(&parties).Error; err != nil {
		return nil, err
	}
	return parties, nil
}

func (r *sqliteRepository) UpdateParty(p *game.Party) error {
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}

// --- Dungeons -----------------------------------------------------------

func (r *sqliteRepository) GetDungeonByID(id uint) (*game.Dungeon, error) {
	var d game.Dungeon
	if err := r.db.First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *sqliteRepository) GetDungeonByName(name string) (*game.Dungeon, error) {
	var d game.Dungeon
	if err := r.db.Where("name = ?", name).First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *sqliteRepository) ListDungeons() ([]game.Dungeon, error) {
	var dungeons []game.Dungeon
	if err := r.db.Order("min_level asc").Find(&dungeons).Error; err != nil {
		return nil, err
	}
	return dungeons, nil
}

// --- Combat records -----------------------------------------------------

func (r *sqliteRepository) CreateCombatRecord(rec *game.CombatRecord) error {
	return r.db.Create(rec).Error
}

func (r *sqliteRepository) GetCombatRecordByID(id uint) (*game.CombatRecord, error) {
	v, err, _ := dedupe.CombatRecordGroup.Do(recordKey(id), func() (interface{}, error) {
		var rec game.CombatRecord
		if err := r.db.First(&rec, id).Error; err != nil {
			return nil, err
		}
		return &rec, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.CombatRecord), nil
}

func recordKey(id uint) string {
	return "record:" + strconv.FormatUint(uint64(id), 10)
}

func (r *sqliteRepository) ListCombatRecordsByParty(partyID uint) ([]game.CombatRecord, error) {
	var recs []game.CombatRecord
	if err := r.db.Where("party_id = ?", partyID).Order("created_at desc").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}
