package game

// Buff is one active stat modification on a combatant. Debuffs are buffs
// with negative deltas. RemainingTurns is decremented at the start of the
// owner's turn; the buff expires when it reaches zero.
type Buff struct {
	Name           string `json:"name"`
	Delta          Stats  `json:"delta"`
	RemainingTurns int    `json:"remaining_turns"`
}

// Combatant is a character or enemy instance participating in one battle.
// Instances are created by the entity factory, owned exclusively by one
// battle state for its lifetime and mutated turn by turn.
type Combatant struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Job   string `json:"job"`
	Level int    `json:"level"`

	BaseStats    Stats `json:"base_stats"`
	MaxStats     Stats `json:"max_stats"`
	CurrentStats Stats `json:"current_stats"`

	Abilities []*Ability `json:"abilities"`
	Rules     []Rule     `json:"rules"`

	// Cooldowns maps ability ID to turns remaining before it may be
	// cast again. Counters never go below zero.
	Cooldowns map[string]int `json:"cooldowns"`
	Buffs     []Buff         `json:"buffs"`

	IsAlive bool `json:"is_alive"`
	IsEnemy bool `json:"is_enemy"`
	IsBoss  bool `json:"is_boss"`

	// Rewards is set on enemies only and consulted by loot resolution
	// once the enemy is defeated.
	Rewards *RewardTable `json:"rewards,omitempty"`
}

// AbilityByID returns the known ability with the given ID, or nil.
func (c *Combatant) AbilityByID(id string) *Ability {
	for _, a := range c.Abilities {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// CanCast reports whether ability id is known, off cooldown and
// affordable with the combatant's current MP.
func (c *Combatant) CanCast(id string) bool {
	a := c.AbilityByID(id)
	if a == nil {
		return false
	}
	return c.Cooldowns[id] == 0 && c.CurrentStats.MP >= a.MPCost
}

// EffectiveStats layers active buff deltas over current stats, flooring
// every component at zero. Current stats themselves are never modified
// by buffs, which keeps the current<=max invariant trivial.
func (c *Combatant) EffectiveStats() Stats {
	eff := c.CurrentStats
	for _, b := range c.Buffs {
		eff = eff.Plus(b.Delta)
	}
	return eff
}

// TakeDamage reduces current HP, flooring at zero, and marks the
// combatant dead when HP reaches zero. Death is permanent for the
// battle. Returns the damage actually applied.
func (c *Combatant) TakeDamage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > c.CurrentStats.HP {
		amount = c.CurrentStats.HP
	}
	c.CurrentStats.HP -= amount
	if c.CurrentStats.HP == 0 {
		c.IsAlive = false
	}
	return amount
}

// Heal restores current HP up to the maximum. Returns the amount
// actually restored.
func (c *Combatant) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	room := c.MaxStats.HP - c.CurrentStats.HP
	if amount > room {
		amount = room
	}
	c.CurrentStats.HP += amount
	return amount
}

// SpendMP deducts cost from current MP. Returns false (without
// spending) when MP is insufficient.
func (c *Combatant) SpendMP(cost int) bool {
	if cost <= 0 {
		return true
	}
	if c.CurrentStats.MP < cost {
		return false
	}
	c.CurrentStats.MP -= cost
	return true
}

// TickTurnStart advances the combatant's own bookkeeping at the start of
// its turn: cooldown counters decrement (floored at zero) and buff
// durations decrement, dropping expired buffs.
func (c *Combatant) TickTurnStart() {
	for id, left := range c.Cooldowns {
		if left > 0 {
			c.Cooldowns[id] = left - 1
		}
	}
	kept := c.Buffs[:0]
	for _, b := range c.Buffs {
		b.RemainingTurns--
		if b.RemainingTurns > 0 {
			kept = append(kept, b)
		}
	}
	c.Buffs = kept
}

// HPPercent returns current HP as a percentage of max HP.
func (c *Combatant) HPPercent() int { return percent(c.CurrentStats.HP, c.MaxStats.HP) }

// MPPercent returns current MP as a percentage of max MP.
func (c *Combatant) MPPercent() int { return percent(c.CurrentStats.MP, c.MaxStats.MP) }

// ActiveCooldownCount returns how many ability cooldown counters are
// currently above zero.
func (c *Combatant) ActiveCooldownCount() int {
	n := 0
	for _, left := range c.Cooldowns {
		if left > 0 {
			n++
		}
	}
	return n
}
