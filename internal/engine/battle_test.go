package engine

import (
	"errors"
	"testing"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/util"
)

func slime(id string, gold, xp int, drop string) *game.Combatant {
	stats := game.Stats{HP: 10, MP: 0, Strength: 3, Defense: 2, Magic: 0, Speed: 5}
	return &game.Combatant{
		ID:           id,
		Name:         id,
		MaxStats:     stats,
		CurrentStats: stats,
		Cooldowns:    map[string]int{},
		IsAlive:      true,
		Rewards: &game.RewardTable{
			Gold:       gold,
			Experience: xp,
			Drops:      []game.DropEntry{{Item: drop, Chance: 1}},
		},
	}
}

func actorTurns(history []game.TurnRecord, actorID string) []game.TurnRecord {
	var out []game.TurnRecord
	for _, rec := range history {
		if rec.Actor == actorID {
			out = append(out, rec)
		}
	}
	return out
}

func TestBattle_HeroDefeatsSlimes(t *testing.T) {
	hero := fighter("hero", 100, 0)
	slimes := []*game.Combatant{slime("slime-1", 10, 5, "potion"), slime("slime-2", 7, 3, "gem")}

	b := NewBattle(100, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{hero}, slimes); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := b.SimulateFullBattle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Victory || result.Reason != "all enemies defeated" {
		t.Fatalf("expected victory, got %+v", result)
	}
	// Hero one-shots nothing: 10-2=8 damage against 10 HP slimes, so
	// each takes two hits. Slimes hit back for the minimum of 1.
	if result.Turns != 4 {
		t.Fatalf("expected 4 rounds, got %d", result.Turns)
	}
	if hero.CurrentStats.HP >= 100 {
		t.Fatalf("expected the hero to take chip damage, got HP %d", hero.CurrentStats.HP)
	}
	if len(result.SurvivingAllies) != 1 || result.SurvivingAllies[0] != "hero" {
		t.Fatalf("expected the hero to survive, got %v", result.SurvivingAllies)
	}
	if len(result.DefeatedEnemies) != 2 {
		t.Fatalf("expected both slimes defeated, got %v", result.DefeatedEnemies)
	}
	if result.Loot.Gold != 17 || result.Loot.Experience != 8 {
		t.Fatalf("expected 17 gold and 8 xp, got %+v", result.Loot)
	}
	if len(result.Loot.Items) != 2 || result.Loot.Items[0] != "potion" || result.Loot.Items[1] != "gem" {
		t.Fatalf("expected guaranteed drops in enemy order, got %v", result.Loot.Items)
	}
}

func TestBattle_HPStaysWithinBounds(t *testing.T) {
	hero := fighter("hero", 100, 30)
	hero.Abilities = []*game.Ability{{ID: "heal", Name: "Heal", Kind: game.AbilityHeal, Power: 50, MPCost: 5}}
	hero.Rules = []game.Rule{
		mustParse(t, game.RuleSpec{Priority: 9, Condition: "hpBelow:95", Target: "self", Action: "cast:heal"}),
	}

	brute := fighter("ogre", 200, 0)
	brute.CurrentStats.Strength = 25

	b := NewBattle(100, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{hero}, []*game.Combatant{brute}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SimulateFullBattle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range append(b.State().Allies, b.State().Enemies...) {
		if c.CurrentStats.HP < 0 || c.CurrentStats.HP > c.MaxStats.HP {
			t.Fatalf("%s HP out of bounds: %d/%d", c.ID, c.CurrentStats.HP, c.MaxStats.HP)
		}
		if c.CurrentStats.MP < 0 || c.CurrentStats.MP > c.MaxStats.MP {
			t.Fatalf("%s MP out of bounds: %d/%d", c.ID, c.CurrentStats.MP, c.MaxStats.MP)
		}
	}
}

func TestBattle_SpeedTiesActAlliesFirst(t *testing.T) {
	hero := fighter("hero", 100, 0)
	enemy := fighter("goblin", 100, 0)
	// Identical speed: the ally must act first within the round.

	b := NewBattle(1, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{hero}, []*game.Combatant{enemy}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SimulateFullBattle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	history := b.State().History
	if len(history) != 2 {
		t.Fatalf("expected 2 turns in the single round, got %d", len(history))
	}
	if history[0].Actor != "hero" || history[1].Actor != "goblin" {
		t.Fatalf("expected ally to act first on a speed tie, got %q then %q", history[0].Actor, history[1].Actor)
	}
}

func TestBattle_FasterCombatantActsFirst(t *testing.T) {
	hero := fighter("hero", 100, 0)
	enemy := fighter("goblin", 100, 0)
	enemy.CurrentStats.Speed = 20

	b := NewBattle(1, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{hero}, []*game.Combatant{enemy}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SimulateFullBattle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if actor := b.State().History[0].Actor; actor != "goblin" {
		t.Fatalf("expected the faster goblin to act first, got %q", actor)
	}
}

func TestBattle_CooldownDelaysRecast(t *testing.T) {
	mage := fighter("mage", 100, 30)
	mage.Abilities = []*game.Ability{{ID: "nova", Name: "Nova", Kind: game.AbilityAttack, Power: 5, Magical: true, MPCost: 2, Cooldown: 3}}
	mage.Rules = []game.Rule{
		mustParse(t, game.RuleSpec{Priority: 9, Condition: "always", Target: "weakestEnemy", Action: "cast:nova"}),
	}
	tank := fighter("golem", 500, 0)

	// Four rounds, then the cap ends the battle.
	b := NewBattle(4, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{mage}, []*game.Combatant{tank}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SimulateFullBattle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Cooldown 3 armed on the cast turn means three full own-turns pass
	// before the next cast: cast, attack, attack, cast.
	turns := actorTurns(b.State().History, "mage")
	want := []string{"cast:nova", "attack", "attack", "cast:nova"}
	if len(turns) != len(want) {
		t.Fatalf("expected %d mage turns, got %d", len(want), len(turns))
	}
	for i, rec := range turns {
		if rec.Action != want[i] {
			t.Fatalf("turn %d: expected action %q, got %q", i+1, want[i], rec.Action)
		}
	}
}

func TestBattle_BuffExpiresAfterDuration(t *testing.T) {
	hero := fighter("hero", 100, 30)
	hero.Abilities = []*game.Ability{{
		ID: "war_cry", Name: "War Cry", Kind: game.AbilityBuff,
		StatDelta: game.Stats{Strength: 5}, Duration: 2, MPCost: 5, Cooldown: 5,
	}}
	hero.Rules = []game.Rule{
		mustParse(t, game.RuleSpec{Priority: 9, Condition: "always", Target: "self", Action: "cast:war_cry"}),
	}
	tank := fighter("golem", 500, 0)
	tank.CurrentStats.Defense = 2
	tank.MaxStats.Defense = 2

	b := NewBattle(3, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{hero}, []*game.Combatant{tank}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.SimulateFullBattle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Round 1 casts the buff; round 2 attacks with +5 strength
	// (10+5-2=13); by round 3 the buff has expired (10-2=8).
	turns := actorTurns(b.State().History, "hero")
	if len(turns) != 3 {
		t.Fatalf("expected 3 hero turns, got %d", len(turns))
	}
	if turns[1].Amount != 13 {
		t.Fatalf("expected buffed attack for 13, got %d", turns[1].Amount)
	}
	if turns[2].Amount != 8 {
		t.Fatalf("expected unbuffed attack for 8, got %d", turns[2].Amount)
	}
	if hero.CurrentStats.Strength != 10 {
		t.Fatalf("buff must not leak into current stats, got %d", hero.CurrentStats.Strength)
	}
}

func TestBattle_TurnCapForcesEnd(t *testing.T) {
	hero := fighter("hero", 1000, 0)
	tank := slime("golem", 99, 99, "relic")
	tank.CurrentStats = game.Stats{HP: 1000, Strength: 3, Defense: 50, Speed: 5}
	tank.MaxStats = tank.CurrentStats

	b := NewBattle(5, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{hero}, []*game.Combatant{tank}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := b.SimulateFullBattle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Victory {
		t.Fatalf("a forced end must not count as a victory")
	}
	if b.State().Outcome != game.OutcomeForcedEnd {
		t.Fatalf("expected forced_end outcome, got %q", b.State().Outcome)
	}
	if result.Reason != "turn limit reached" {
		t.Fatalf("unexpected reason %q", result.Reason)
	}
	if result.Turns != 5 {
		t.Fatalf("expected the cap of 5 rounds, got %d", result.Turns)
	}
	if result.Loot.Gold != 0 || result.Loot.Experience != 0 || len(result.Loot.Items) != 0 {
		t.Fatalf("a forced end must award no loot, got %+v", result.Loot)
	}
	// Empty result lists serialize as [] rather than null.
	if result.SurvivingAllies == nil || result.DefeatedEnemies == nil || result.Loot.Items == nil {
		t.Fatalf("result slices must never be nil: %+v", result)
	}
}

func TestBattle_PartyWipeIsDefeat(t *testing.T) {
	weak := fighter("hero", 10, 0)
	weak.CurrentStats.Strength = 1
	brute := fighter("ogre", 200, 0)
	brute.CurrentStats.Strength = 50

	b := NewBattle(100, util.NewRand(1), util.NewRand(2))
	if err := b.Initialize([]*game.Combatant{weak}, []*game.Combatant{brute}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := b.SimulateFullBattle()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Victory || result.Reason != "party was wiped out" {
		t.Fatalf("expected defeat, got %+v", result)
	}
	if result.SurvivingAllies == nil || len(result.SurvivingAllies) != 0 {
		t.Fatalf("expected an empty (non-nil) survivor list, got %v", result.SurvivingAllies)
	}
}

func TestBattle_SameSeedSameHistory(t *testing.T) {
	run := func() []game.TurnRecord {
		hero := fighter("hero", 100, 0)
		hero.Rules = []game.Rule{
			mustParse(t, game.RuleSpec{Priority: 5, Condition: "always", Target: "randomEnemy", Action: "attack"}),
		}
		enemies := []*game.Combatant{slime("slime-1", 1, 1, "a"), slime("slime-2", 1, 1, "b"), slime("slime-3", 1, 1, "c")}
		b := NewBattle(100, util.NewRand(7), util.NewRand(8))
		if err := b.Initialize([]*game.Combatant{hero}, enemies); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := b.SimulateFullBattle(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return b.State().History
	}

	first, second := run(), run()
	if len(first) != len(second) {
		t.Fatalf("histories diverged in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("turn %d diverged: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestBattle_LifecycleErrors(t *testing.T) {
	b := NewBattle(10, util.NewRand(1), util.NewRand(2))
	if _, err := b.ExecuteTurn(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if _, err := b.SimulateFullBattle(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
	if _, err := b.Result(); !errors.Is(err, ErrNotComplete) {
		t.Fatalf("expected ErrNotComplete, got %v", err)
	}

	if err := b.Initialize(nil, []*game.Combatant{fighter("goblin", 10, 0)}); !errors.Is(err, ErrEmptyRoster) {
		t.Fatalf("expected ErrEmptyRoster, got %v", err)
	}
	if err := b.Initialize([]*game.Combatant{fighter("hero", 100, 0)}, []*game.Combatant{slime("slime-1", 0, 0, "x")}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.Initialize([]*game.Combatant{fighter("hero", 100, 0)}, []*game.Combatant{slime("slime-2", 0, 0, "x")}); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}

	if _, err := b.SimulateFullBattle(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.ExecuteTurn(); !errors.Is(err, ErrBattleComplete) {
		t.Fatalf("expected ErrBattleComplete, got %v", err)
	}
}
