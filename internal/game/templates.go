package game

// Job is a character class template: base stats plus the abilities the
// class can learn. Loaded from the job catalog and immutable during play.
type Job struct {
	Name       string   `json:"name" yaml:"name"`
	BaseStats  Stats    `json:"base_stats" yaml:"base_stats"`
	AbilityIDs []string `json:"ability_ids" yaml:"ability_ids"`
}

// DropEntry is one probabilistic item drop in an enemy reward table.
// Chance is the drop probability in [0,1].
type DropEntry struct {
	Item   string  `json:"item" yaml:"item"`
	Chance float64 `json:"chance" yaml:"chance"`
}

// RewardTable lists what a defeated enemy yields. Gold and experience
// are summed exactly across enemies; drops are rolled per entry, in
// table order, against the loot random source.
type RewardTable struct {
	Gold       int         `json:"gold" yaml:"gold"`
	Experience int         `json:"experience" yaml:"experience"`
	Drops      []DropEntry `json:"drops" yaml:"drops"`
}

// EnemyTemplate is the catalog blueprint for one enemy type.
type EnemyTemplate struct {
	Type       string      `json:"type" yaml:"type"`
	Name       string      `json:"name" yaml:"name"`
	BaseStats  Stats       `json:"base_stats" yaml:"base_stats"`
	AbilityIDs []string    `json:"ability_ids" yaml:"ability_ids"`
	Rules      []RuleSpec  `json:"rules" yaml:"rules"`
	IsBoss     bool        `json:"is_boss" yaml:"is_boss"`
	Rewards    RewardTable `json:"rewards" yaml:"rewards"`
}

// CharacterSpec is the adapter-supplied description of one party member
// to instantiate for a battle.
type CharacterSpec struct {
	Name  string     `json:"name" yaml:"name"`
	Job   string     `json:"job" yaml:"job"`
	Level int        `json:"level" yaml:"level"`
	Rules []RuleSpec `json:"rules" yaml:"rules"`
}

// EnemySpec names one enemy to spawn in a battle. Name is optional;
// when empty the factory synthesizes a unique one so several enemies of
// the same type stay individually addressable.
type EnemySpec struct {
	Type string `json:"type" yaml:"type"`
	Name string `json:"name,omitempty" yaml:"name,omitempty"`
}
