package game

// BattlePhase is the coarse state of one simulation.
type BattlePhase string

const (
	PhaseNotStarted BattlePhase = "not_started"
	PhaseInProgress BattlePhase = "in_progress"
	PhaseComplete   BattlePhase = "complete"
)

// Outcome classifies a completed battle. ForcedEnd marks a battle that
// hit the configured turn cap: it is neither a victory nor a defeat and
// awards no loot or experience.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeVictory   Outcome = "victory"
	OutcomeDefeat    Outcome = "defeat"
	OutcomeForcedEnd Outcome = "forced_end"
)

// TurnRecord is one entry of the append-only battle history.
type TurnRecord struct {
	Turn    int    `json:"turn"`
	Actor   string `json:"actor"`
	Action  string `json:"action"`
	Target  string `json:"target"`
	Amount  int    `json:"amount"`
	Message string `json:"message"`
}

// BattleState is the mutable per-simulation snapshot. One instance
// belongs to exactly one simulation and is never shared across
// simulations or goroutines. Dead combatants stay in the rosters for
// reporting; they are excluded from turns and targeting by the engine.
type BattleState struct {
	Phase      BattlePhase  `json:"phase"`
	Outcome    Outcome      `json:"outcome"`
	TurnNumber int          `json:"turn_number"`
	MaxTurns   int          `json:"max_turns"`
	Allies     []*Combatant `json:"allies"`
	Enemies    []*Combatant `json:"enemies"`
	History    []TurnRecord `json:"history"`
}

// AllDead reports whether no combatant in side is still alive.
func AllDead(side []*Combatant) bool {
	for _, c := range side {
		if c.IsAlive {
			return false
		}
	}
	return true
}

// Loot is the aggregated reward bundle of a victorious battle. Items
// from multiple enemies are concatenated, never merged or deduplicated.
type Loot struct {
	Gold       int      `json:"gold"`
	Experience int      `json:"experience"`
	Items      []string `json:"items"`
}

// BattleResult is produced once, at completion, and immutable
// thereafter.
type BattleResult struct {
	Victory         bool     `json:"victory"`
	Reason          string   `json:"reason"`
	Turns           int      `json:"turns"`
	SurvivingAllies []string `json:"surviving_allies"`
	DefeatedEnemies []string `json:"defeated_enemies"`
	Loot            Loot     `json:"loot"`
}

// ParticipantStatus is a read-only per-combatant projection used for
// observability; producing it never mutates battle state.
type ParticipantStatus struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	IsEnemy             bool   `json:"is_enemy"`
	IsAlive             bool   `json:"is_alive"`
	HPPercent           int    `json:"hp_percent"`
	MPPercent           int    `json:"mp_percent"`
	ActiveCooldownCount int    `json:"active_cooldown_count"`
}
