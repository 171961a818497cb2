package game

import (
	"gorm.io/gorm"
)

// PlayerAccount stores unique player identity and aggregate stats.
type PlayerAccount struct {
	gorm.Model
	Username        string `json:"username" gorm:"uniqueIndex;size:32"`
	BattlesFought   int    `json:"battles_fought"`
	Wins            int    `json:"wins"`
	TotalGold       int    `json:"total_gold"`
	TotalExperience int    `json:"total_experience"`
}

// Unify the accounts table name as "player_profiles".
func (PlayerAccount) TableName() string { return "player_profiles" }

// PartyMember is one persisted character of a party. Rules are stored as
// serialized RuleSpec JSON (`RulesJSON`); they are validated against the
// catalogs when the party is created and parsed again at battle time.
type PartyMember struct {
	gorm.Model
	PartyID    uint   `json:"-"`
	Name       string `json:"name" gorm:"size:32"`
	Job        string `json:"job" gorm:"size:32"`
	Level      int    `json:"level"`
	Experience int    `json:"experience"`
	RulesJSON  string `json:"-" gorm:"column:rules_json"`
}

// Party groups up to a handful of characters owned by one player.
type Party struct {
	gorm.Model
	PlayerID uint          `json:"player_id" gorm:"index"`
	Name     string        `json:"name" gorm:"size:32"`
	Members  []PartyMember `json:"members"`
}

// Dungeon is a battle configuration: the enemy lineup plus the level
// and pacing parameters the battle adapter derives enemy level and the
// turn cap from. Dungeons are seeded into the database from the server
// configuration file.
type Dungeon struct {
	gorm.Model
	Name       string `json:"name" gorm:"uniqueIndex;size:32"`
	MinLevel   int    `json:"min_level"`
	Difficulty int    `json:"difficulty"`
	// EnemiesJSON holds the serialized []EnemySpec lineup.
	EnemiesJSON string `json:"-" gorm:"column:enemies_json"`
}

// CombatRecord is the persisted outcome of one simulated battle,
// including the full serialized turn log and the seed so a battle can
// be replayed exactly.
type CombatRecord struct {
	gorm.Model
	PartyID   uint   `json:"party_id" gorm:"index"`
	DungeonID uint   `json:"dungeon_id" gorm:"index"`
	Victory   bool   `json:"victory"`
	Outcome   string `json:"outcome" gorm:"size:16"`
	Reason    string `json:"reason" gorm:"size:128"`
	Turns     int    `json:"turns"`
	Gold      int    `json:"gold"`
	XP        int    `json:"xp"`
	ItemsJSON string `json:"-" gorm:"column:items_json"`
	LogJSON   string `json:"-" gorm:"column:log_json"`
	Seed      int64  `json:"seed"`
}

// TableName overrides the default GORM table name for CombatRecord so
// the persisted table is `combat_log` instead of `combat_records`.
func (CombatRecord) TableName() string { return "combat_log" }
