package service

import (
	"errors"
	"testing"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

type mockBattleRepo struct {
	parties  map[uint]*game.Party
	dungeons map[uint]*game.Dungeon

	createdRecord *game.CombatRecord
	updatedParty  *game.Party
	statsVictory  bool
	statsCalled   bool
}

func (m *mockBattleRepo) GetPartyByID(id uint) (*game.Party, error) {
	if p, ok := m.parties[id]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockBattleRepo) GetDungeonByID(id uint) (*game.Dungeon, error) {
	if d, ok := m.dungeons[id]; ok {
		return d, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockBattleRepo) CreateCombatRecord(rec *game.CombatRecord) error {
	m.createdRecord = rec
	return nil
}

func (m *mockBattleRepo) UpdateParty(p *game.Party) error {
	m.updatedParty = p
	return nil
}

func (m *mockBattleRepo) UpdateStatsOnBattleEnd(playerID uint, victory bool, loot game.Loot) error {
	m.statsCalled = true
	m.statsVictory = victory
	return nil
}

func battleCatalog(t *testing.T, slimeXP int) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(
		[]game.Ability{{ID: "slash", Name: "Slash", Kind: game.AbilityAttack, Power: 5}},
		[]game.Job{{Name: "warrior", BaseStats: game.Stats{HP: 100, MP: 10, Strength: 15, Defense: 10, Magic: 2, Speed: 8}}},
		[]game.EnemyTemplate{{
			Type:      "slime",
			Name:      "Slime",
			BaseStats: game.Stats{HP: 20, Strength: 5, Defense: 2, Speed: 4},
			Rewards:   game.RewardTable{Gold: 10, Experience: slimeXP},
		}},
	)
	if err != nil {
		t.Fatalf("unexpected catalog error: %v", err)
	}
	return cat
}

func testRepo() *mockBattleRepo {
	return &mockBattleRepo{
		parties: map[uint]*game.Party{
			1: {PlayerID: 9, Name: "Heroes", Members: []game.PartyMember{{Name: "Conan", Job: "warrior", Level: 5}}},
		},
		dungeons: map[uint]*game.Dungeon{
			2: {Name: "Cave", MinLevel: 1, Difficulty: 0, EnemiesJSON: `[{"type":"slime"}]`},
		},
	}
}

func TestRunBattle_VictoryPersistsRecordAndAwardsXP(t *testing.T) {
	repo := testRepo()

	rec, result, err := RunBattle(repo, battleCatalog(t, 5), 1, 2, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Victory {
		t.Fatalf("expected the level-5 warrior to win, got %+v", result)
	}
	if repo.createdRecord == nil || repo.createdRecord != rec {
		t.Fatalf("expected the combat record to be persisted")
	}
	if rec.Seed != 42 || rec.Outcome != "victory" || rec.Gold != 10 || rec.XP != 5 {
		t.Fatalf("record fields wrong: %+v", rec)
	}
	if rec.Turns != result.Turns || rec.LogJSON == "" {
		t.Fatalf("expected the turn log to be serialized, got %+v", rec)
	}
	if repo.updatedParty == nil {
		t.Fatalf("expected the party to be updated on victory")
	}
	if got := repo.updatedParty.Members[0].Experience; got != 5 {
		t.Fatalf("expected 5 xp awarded, got %d", got)
	}
	if !repo.statsCalled || !repo.statsVictory {
		t.Fatalf("expected player stats update with victory=true")
	}
}

func TestRunBattle_ExperienceLevelsUp(t *testing.T) {
	repo := testRepo()

	// 600 xp against a level-5 member: one level-up at 500, 100 left.
	_, _, err := RunBattle(repo, battleCatalog(t, 600), 1, 2, 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m := repo.updatedParty.Members[0]
	if m.Level != 6 || m.Experience != 100 {
		t.Fatalf("expected level 6 with 100 xp, got level %d with %d xp", m.Level, m.Experience)
	}
}

func TestRunBattle_SameSeedSameLog(t *testing.T) {
	first, _, err := RunBattle(testRepo(), battleCatalog(t, 5), 1, 2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := RunBattle(testRepo(), battleCatalog(t, 5), 1, 2, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.LogJSON != second.LogJSON || first.Gold != second.Gold {
		t.Fatalf("same seed produced different battles")
	}
}

func TestRunBattle_ZeroSeedPicksOne(t *testing.T) {
	rec, _, err := RunBattle(testRepo(), battleCatalog(t, 5), 1, 2, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Seed == 0 {
		t.Fatalf("expected a fresh seed to be recorded")
	}
}

func TestRunBattle_ValidationErrors(t *testing.T) {
	cat := battleCatalog(t, 5)

	if _, _, err := RunBattle(testRepo(), cat, 99, 2, 1); !errors.Is(err, ErrPartyNotFound) {
		t.Fatalf("expected ErrPartyNotFound, got %v", err)
	}
	if _, _, err := RunBattle(testRepo(), cat, 1, 99, 1); !errors.Is(err, ErrDungeonNotFound) {
		t.Fatalf("expected ErrDungeonNotFound, got %v", err)
	}

	repo := testRepo()
	repo.parties[1].Members = nil
	if _, _, err := RunBattle(repo, cat, 1, 2, 1); !errors.Is(err, ErrEmptyParty) {
		t.Fatalf("expected ErrEmptyParty, got %v", err)
	}

	repo = testRepo()
	repo.dungeons[2].MinLevel = 10
	if _, _, err := RunBattle(repo, cat, 1, 2, 1); !errors.Is(err, ErrPartyUnderLeveled) {
		t.Fatalf("expected ErrPartyUnderLeveled, got %v", err)
	}

	repo = testRepo()
	repo.dungeons[2].EnemiesJSON = "not json"
	if _, _, err := RunBattle(repo, cat, 1, 2, 1); err == nil {
		t.Fatalf("expected an error for a corrupt enemy lineup")
	}
}
