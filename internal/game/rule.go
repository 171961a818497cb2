package game

// RuleSpec is the raw authored form of a behavior rule, as written in
// party requests, enemy templates and stored member data. Condition,
// target and action are parsed once into a Rule at entity-creation time;
// the engine never re-parses strings during a battle.
type RuleSpec struct {
	Priority  int    `json:"priority" yaml:"priority"`
	Condition string `json:"condition" yaml:"condition"`
	Target    string `json:"target" yaml:"target"`
	Action    string `json:"action" yaml:"action"`
}

// ConditionKind enumerates the closed set of rule predicates.
type ConditionKind string

const (
	CondAlways      ConditionKind = "always"
	CondHPBelow     ConditionKind = "hpBelow"
	CondMPAbove     ConditionKind = "mpAbove"
	CondAllyHPBelow ConditionKind = "allyHpBelow"
)

// Condition is a parsed rule predicate. Value carries the percentage
// threshold for the parameterized kinds and is unused for CondAlways.
type Condition struct {
	Kind  ConditionKind `json:"kind"`
	Value int           `json:"value"`
}

// TargetKind enumerates the closed set of target selectors.
type TargetKind string

const (
	TargetSelf           TargetKind = "self"
	TargetWeakestEnemy   TargetKind = "weakestEnemy"
	TargetStrongestEnemy TargetKind = "strongestEnemy"
	TargetRandomEnemy    TargetKind = "randomEnemy"
	TargetWeakestAlly    TargetKind = "weakestAlly"
	TargetRandomAlly     TargetKind = "randomAlly"
)

// ActionKind enumerates the closed set of rule actions.
type ActionKind string

const (
	ActionAttack ActionKind = "attack"
	ActionCast   ActionKind = "cast"
)

// Rule is the validated, parsed form of a RuleSpec. Rules are owned by
// exactly one combatant and immutable once bound.
type Rule struct {
	Priority  int        `json:"priority"`
	Condition Condition  `json:"condition"`
	Target    TargetKind `json:"target"`
	Action    ActionKind `json:"action"`
	// AbilityID is set only for ActionCast.
	AbilityID string `json:"ability_id,omitempty"`
}
