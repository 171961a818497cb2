package game

// AbilityKind is a string alias classifying what an ability does.
// Using a dedicated type instead of plain string makes code safer and
// self-documenting.
type AbilityKind string

const (
	AbilityAttack AbilityKind = "attack"
	AbilityHeal   AbilityKind = "heal"
	AbilityBuff   AbilityKind = "buff"
	AbilityDebuff AbilityKind = "debuff"
)

// Valid reports whether k is one of the known ability kinds.
func (k AbilityKind) Valid() bool {
	switch k {
	case AbilityAttack, AbilityHeal, AbilityBuff, AbilityDebuff:
		return true
	}
	return false
}

// Ability describes one castable skill. Abilities are immutable after
// catalog load and shared by pointer across every combatant that knows
// them; per-combatant state (cooldown counters) lives on the Combatant.
type Ability struct {
	ID   string      `json:"id" yaml:"id"`
	Name string      `json:"name" yaml:"name"`
	Kind AbilityKind `json:"kind" yaml:"kind"`

	// Power is the flat magnitude of the effect: bonus damage for
	// attacks, base restoration for heals. Buffs and debuffs use
	// StatDelta instead.
	Power int `json:"power" yaml:"power"`
	// Magical attacks scale on Magic and are resisted by Defense like
	// any other attack; physical attacks scale on Strength.
	Magical bool `json:"magical" yaml:"magical"`

	// StatDelta is applied to the target for Duration turns (negated
	// for debuffs at authoring time; the delta is stored as written).
	StatDelta Stats `json:"stat_delta" yaml:"stat_delta"`
	Duration  int   `json:"duration" yaml:"duration"`

	MPCost   int `json:"mp_cost" yaml:"mp_cost"`
	Cooldown int `json:"cooldown" yaml:"cooldown"`

	// MinLevel gates binding: combatants below this level do not learn
	// the ability. Zero means no gate.
	MinLevel int `json:"min_level" yaml:"min_level"`
	// Requires lists ability IDs the combatant must also know for this
	// ability to be bound (combination precondition).
	Requires []string `json:"requires" yaml:"requires"`
}
