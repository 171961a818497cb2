package engine

import (
	"testing"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/util"
)

func defeated(id string, rewards *game.RewardTable) *game.Combatant {
	return &game.Combatant{ID: id, Name: id, IsEnemy: true, Rewards: rewards}
}

func TestResolveLoot_SumsGoldAndExperience(t *testing.T) {
	enemies := []*game.Combatant{
		defeated("slime-1", &game.RewardTable{Gold: 10, Experience: 5, Drops: []game.DropEntry{{Item: "potion", Chance: 1}}}),
		defeated("slime-2", &game.RewardTable{Gold: 7, Experience: 3, Drops: []game.DropEntry{{Item: "gem", Chance: 1}}}),
	}

	loot := ResolveLoot(enemies, util.NewRand(1))

	if loot.Gold != 17 || loot.Experience != 8 {
		t.Fatalf("expected 17 gold and 8 xp, got %+v", loot)
	}
	if len(loot.Items) != 2 || loot.Items[0] != "potion" || loot.Items[1] != "gem" {
		t.Fatalf("expected concatenated drops in enemy order, got %v", loot.Items)
	}
}

func TestResolveLoot_SkipsSurvivorsAndMissingTables(t *testing.T) {
	alive := defeated("survivor", &game.RewardTable{Gold: 100, Experience: 100})
	alive.IsAlive = true
	enemies := []*game.Combatant{
		alive,
		defeated("bare", nil),
		defeated("slime-1", &game.RewardTable{Gold: 5, Experience: 2}),
	}

	loot := ResolveLoot(enemies, util.NewRand(1))

	if loot.Gold != 5 || loot.Experience != 2 {
		t.Fatalf("expected only the defeated slime to contribute, got %+v", loot)
	}
	if len(loot.Items) != 0 {
		t.Fatalf("expected no items, got %v", loot.Items)
	}
}

func TestResolveLoot_ZeroChanceNeverDrops(t *testing.T) {
	enemies := []*game.Combatant{
		defeated("slime-1", &game.RewardTable{Drops: []game.DropEntry{{Item: "unicorn", Chance: 0}}}),
	}

	for seed := int64(1); seed <= 20; seed++ {
		if loot := ResolveLoot(enemies, util.NewRand(seed)); len(loot.Items) != 0 {
			t.Fatalf("seed %d: a zero-chance entry dropped %v", seed, loot.Items)
		}
	}
}

func TestResolveLoot_SameSeedSameItems(t *testing.T) {
	roll := func() []string {
		enemies := []*game.Combatant{
			defeated("slime-1", &game.RewardTable{Drops: []game.DropEntry{
				{Item: "potion", Chance: 0.5},
				{Item: "elixir", Chance: 0.25},
				{Item: "gem", Chance: 0.75},
			}}),
		}
		return ResolveLoot(enemies, util.NewRand(99)).Items
	}

	first, second := roll(), roll()
	if len(first) != len(second) {
		t.Fatalf("rolls diverged: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("rolls diverged at %d: %v vs %v", i, first, second)
		}
	}
}
