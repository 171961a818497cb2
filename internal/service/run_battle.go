package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/engine"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"
	"github.com/FrancoCastro1990/auto-rpg/internal/util"
)

var (
	ErrPartyNotFound     = errors.New("party not found")
	ErrDungeonNotFound   = errors.New("dungeon not found")
	ErrEmptyParty        = errors.New("party has no members")
	ErrPartyUnderLeveled = errors.New("every party member must meet the dungeon minimum level")
)

// BattleRepo is the persistence surface RunBattle needs.
type BattleRepo interface {
	GetPartyByID(id uint) (*game.Party, error)
	GetDungeonByID(id uint) (*game.Dungeon, error)
	CreateCombatRecord(rec *game.CombatRecord) error
	UpdateParty(p *game.Party) error
	UpdateStatsOnBattleEnd(playerID uint, victory bool, loot game.Loot) error
}

// xpToNextLevel is the experience a member must accumulate to advance
// from its current level.
func xpToNextLevel(level int) int { return level * 100 }

// RunBattle simulates one full dungeon battle for a stored party: it
// derives the battle configuration from the dungeon (enemy level
// floor(minLevel*(1+difficulty*0.2)), turn cap minLevel*10), builds the
// combatants, runs the simulation to completion, persists the combat
// record with its full turn log, and on victory awards experience and
// updates aggregate player stats. A zero seed picks a fresh one; the
// used seed is persisted so the battle can be replayed exactly.
func RunBattle(repo BattleRepo, cat *catalog.Catalog, partyID, dungeonID uint, seed int64) (*game.CombatRecord, *game.BattleResult, error) {
	party, err := repo.GetPartyByID(partyID)
	if err != nil || party == nil {
		return nil, nil, ErrPartyNotFound
	}
	dungeon, err := repo.GetDungeonByID(dungeonID)
	if err != nil || dungeon == nil {
		return nil, nil, ErrDungeonNotFound
	}
	if len(party.Members) == 0 {
		return nil, nil, ErrEmptyParty
	}
	for _, m := range party.Members {
		if m.Level < dungeon.MinLevel {
			return nil, nil, ErrPartyUnderLeveled
		}
	}

	var enemySpecs []game.EnemySpec
	if err := json.Unmarshal([]byte(dungeon.EnemiesJSON), &enemySpecs); err != nil {
		return nil, nil, fmt.Errorf("dungeon %q has an invalid enemy lineup: %w", dungeon.Name, err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	enemyLevel := int(math.Floor(float64(dungeon.MinLevel) * (1 + float64(dungeon.Difficulty)*0.2)))
	maxTurns := dungeon.MinLevel * 10

	rng := util.NewRand(seed)
	factory := engine.NewFactory(cat, rng)

	allies := make([]*game.Combatant, 0, len(party.Members))
	for i := range party.Members {
		m := &party.Members[i]
		var rules []game.RuleSpec
		if m.RulesJSON != "" {
			if err := json.Unmarshal([]byte(m.RulesJSON), &rules); err != nil {
				return nil, nil, fmt.Errorf("member %q has invalid stored rules: %w", m.Name, err)
			}
		}
		c, err := factory.CreateCharacter(game.CharacterSpec{
			Name:  m.Name,
			Job:   m.Job,
			Level: m.Level,
			Rules: rules,
		})
		if err != nil {
			return nil, nil, err
		}
		allies = append(allies, c)
	}
	enemies, err := factory.CreateEnemiesFromBattle(enemySpecs, enemyLevel)
	if err != nil {
		return nil, nil, err
	}

	battle := engine.NewBattle(maxTurns, rng, util.NewRand(seed+1))
	if err := battle.Initialize(allies, enemies); err != nil {
		return nil, nil, err
	}
	result, err := battle.SimulateFullBattle()
	if err != nil {
		return nil, nil, err
	}

	logJSON, err := json.Marshal(battle.State().History)
	if err != nil {
		return nil, nil, err
	}
	itemsJSON, err := json.Marshal(result.Loot.Items)
	if err != nil {
		return nil, nil, err
	}
	rec := &game.CombatRecord{
		PartyID:   partyID,
		DungeonID: dungeonID,
		Victory:   result.Victory,
		Outcome:   string(battle.State().Outcome),
		Reason:    result.Reason,
		Turns:     result.Turns,
		Gold:      result.Loot.Gold,
		XP:        result.Loot.Experience,
		ItemsJSON: string(itemsJSON),
		LogJSON:   string(logJSON),
		Seed:      seed,
	}
	if err := repo.CreateCombatRecord(rec); err != nil {
		return nil, nil, err
	}

	if result.Victory {
		awardExperience(party, result.Loot.Experience)
		if err := repo.UpdateParty(party); err != nil {
			return nil, nil, err
		}
	}
	if err := repo.UpdateStatsOnBattleEnd(party.PlayerID, result.Victory, result.Loot); err != nil {
		logging.Error("failed to update player stats after battle", err, logging.Fields{"party_id": partyID})
	}

	logging.Info("battle resolved", logging.Fields{
		"party_id": partyID, "dungeon_id": dungeonID, "outcome": rec.Outcome,
		"turns": rec.Turns, "seed": seed,
	})
	return rec, result, nil
}

// awardExperience grants the battle experience to every member and
// applies level-ups.
func awardExperience(party *game.Party, xp int) {
	for i := range party.Members {
		m := &party.Members[i]
		m.Experience += xp
		for m.Experience >= xpToNextLevel(m.Level) {
			m.Experience -= xpToNextLevel(m.Level)
			m.Level++
		}
	}
}
