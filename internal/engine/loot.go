package engine

import (
	"math/rand"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

// ResolveLoot aggregates rewards across all defeated enemies. Gold and
// experience are exact integer sums; item drops are rolled per entry in
// enemy-then-table order so a fixed seed reproduces identical loot.
// Items from multiple enemies are concatenated, never merged.
func ResolveLoot(enemies []*game.Combatant, rng *rand.Rand) game.Loot {
	loot := game.Loot{Items: []string{}}
	for _, e := range enemies {
		if e.IsAlive || e.Rewards == nil {
			continue
		}
		loot.Gold += e.Rewards.Gold
		loot.Experience += e.Rewards.Experience
		for _, d := range e.Rewards.Drops {
			if d.Chance >= 1 || rng.Float64() < d.Chance {
				loot.Items = append(loot.Items, d.Item)
			}
		}
	}
	return loot
}
