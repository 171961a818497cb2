package storage

import (
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

// Repository is the persistence surface of the application: player
// accounts, parties, dungeons and combat records. The battle engine
// itself never touches it; only the service and API layers do.
type Repository interface {
	// Players
	GetPlayerByUsername(username string) (*game.PlayerAccount, error)
	CreatePlayer(p *game.PlayerAccount) error
	UpdateStatsOnBattleEnd(playerID uint, victory bool, loot game.Loot) error
	// GetTopPlayers returns the leaderboard ordered by wins, then total
	// experience.
	GetTopPlayers(limit int) ([]game.PlayerAccount, error)

	// Parties
	CreateParty(p *game.Party) error
	GetPartyByID(id uint) (*game.Party, error)
	ListPartiesByPlayer(playerID uint) ([]game.Party, error)
	UpdateParty(p *game.Party) error

	// Dungeons
	GetDungeonByID(id uint) (*game.Dungeon, error)
	GetDungeonByName(name string) (*game.Dungeon, error)
	ListDungeons() ([]game.Dungeon, error)

	// Combat records
	CreateCombatRecord(rec *game.CombatRecord) error
	GetCombatRecordByID(id uint) (*game.CombatRecord, error)
	ListCombatRecordsByParty(partyID uint) ([]game.CombatRecord, error)
}
