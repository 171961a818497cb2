package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

// Action is the resolved decision for one combatant's turn.
type Action struct {
	Kind    game.ActionKind
	Ability *game.Ability // nil for plain attacks
	Target  *game.Combatant
	// Fallback marks the unconditional basic attack used when no rule
	// was selectable.
	Fallback bool
}

// ParseRuleSpec converts the authored string form of a rule into its
// validated, parsed form. Parsing happens once at entity-creation time;
// turn-by-turn evaluation only matches over the resulting enums.
func ParseRuleSpec(spec game.RuleSpec) (game.Rule, error) {
	r := game.Rule{Priority: spec.Priority}
	if spec.Priority < 0 {
		return r, fmt.Errorf("priority must be >= 0, got %d", spec.Priority)
	}

	cond, err := parseCondition(spec.Condition)
	if err != nil {
		return r, err
	}
	r.Condition = cond

	switch t := game.TargetKind(spec.Target); t {
	case game.TargetSelf, game.TargetWeakestEnemy, game.TargetStrongestEnemy,
		game.TargetRandomEnemy, game.TargetWeakestAlly, game.TargetRandomAlly:
		r.Target = t
	default:
		return r, fmt.Errorf("unknown target %q", spec.Target)
	}

	switch {
	case spec.Action == string(game.ActionAttack):
		r.Action = game.ActionAttack
	case strings.HasPrefix(spec.Action, string(game.ActionCast)+":"):
		id := strings.TrimPrefix(spec.Action, string(game.ActionCast)+":")
		if id == "" {
			return r, fmt.Errorf("cast action is missing an ability id")
		}
		r.Action = game.ActionCast
		r.AbilityID = id
	default:
		return r, fmt.Errorf("unknown action %q", spec.Action)
	}
	return r, nil
}

func parseCondition(s string) (game.Condition, error) {
	if s == string(game.CondAlways) {
		return game.Condition{Kind: game.CondAlways}, nil
	}
	kind, raw, found := strings.Cut(s, ":")
	if !found {
		return game.Condition{}, fmt.Errorf("unknown condition %q", s)
	}
	switch k := game.ConditionKind(kind); k {
	case game.CondHPBelow, game.CondMPAbove, game.CondAllyHPBelow:
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 || v > 100 {
			return game.Condition{}, fmt.Errorf("condition %q needs a percentage 0-100, got %q", kind, raw)
		}
		return game.Condition{Kind: k, Value: v}, nil
	default:
		return game.Condition{}, fmt.Errorf("unknown condition %q", s)
	}
}

// SelectAction arbitrates the acting combatant's rule list against the
// current battle state and returns the first rule that is both
// condition-true and action-legal, falling back to a plain attack on the
// weakest live opponent. It returns ok=false only when no live opponent
// exists at all (the battle is then already decided).
//
// The function is pure over (state, actor): identical inputs always
// yield the identical action; rng is consulted only by the random
// target selectors.
func SelectAction(state *game.BattleState, actor *game.Combatant, rng *rand.Rand) (Action, bool) {
	friends, foes := sidesFor(state, actor)

	rules := make([]game.Rule, len(actor.Rules))
	copy(rules, actor.Rules)
	// Descending priority; SliceStable keeps declaration order on ties.
	sort.SliceStable(rules, func(i, j int) bool { return rules[i].Priority > rules[j].Priority })

	for _, r := range rules {
		if !conditionHolds(r.Condition, actor, friends) {
			continue
		}
		target := resolveTarget(r.Target, actor, friends, foes, rng)
		if target == nil {
			continue
		}
		switch r.Action {
		case game.ActionAttack:
			return Action{Kind: game.ActionAttack, Target: target}, true
		case game.ActionCast:
			if !actor.CanCast(r.AbilityID) {
				continue
			}
			return Action{Kind: game.ActionCast, Ability: actor.AbilityByID(r.AbilityID), Target: target}, true
		}
	}

	// No rule selected: unconditional basic attack on the weakest live
	// opponent. A basic attack needs no resource, so every live
	// combatant acts every turn.
	if t := weakestOf(foes); t != nil {
		return Action{Kind: game.ActionAttack, Target: t, Fallback: true}, true
	}
	return Action{}, false
}

func sidesFor(state *game.BattleState, actor *game.Combatant) (friends, foes []*game.Combatant) {
	if actor.IsEnemy {
		return state.Enemies, state.Allies
	}
	return state.Allies, state.Enemies
}

func conditionHolds(cond game.Condition, actor *game.Combatant, friends []*game.Combatant) bool {
	switch cond.Kind {
	case game.CondAlways:
		return true
	case game.CondHPBelow:
		return actor.HPPercent() < cond.Value
	case game.CondMPAbove:
		return actor.MPPercent() > cond.Value
	case game.CondAllyHPBelow:
		for _, c := range friends {
			if c.IsAlive && c.HPPercent() < cond.Value {
				return true
			}
		}
		return false
	}
	return false
}

// resolveTarget picks the concrete combatant for a selector, or nil when
// no live candidate of the requested category exists (the rule is then
// not selectable).
func resolveTarget(t game.TargetKind, actor *game.Combatant, friends, foes []*game.Combatant, rng *rand.Rand) *game.Combatant {
	switch t {
	case game.TargetSelf:
		return actor
	case game.TargetWeakestEnemy:
		return weakestOf(foes)
	case game.TargetStrongestEnemy:
		return strongestOf(foes)
	case game.TargetRandomEnemy:
		return randomOf(foes, nil, rng)
	case game.TargetWeakestAlly:
		return weakestOf(friends)
	case game.TargetRandomAlly:
		return randomOf(friends, actor, rng)
	}
	return nil
}

// weakestOf returns the live combatant with the lowest current HP,
// first in roster order on ties.
func weakestOf(side []*game.Combatant) *game.Combatant {
	var best *game.Combatant
	for _, c := range side {
		if !c.IsAlive {
			continue
		}
		if best == nil || c.CurrentStats.HP < best.CurrentStats.HP {
			best = c
		}
	}
	return best
}

func strongestOf(side []*game.Combatant) *game.Combatant {
	var best *game.Combatant
	for _, c := range side {
		if !c.IsAlive {
			continue
		}
		if best == nil || c.CurrentStats.HP > best.CurrentStats.HP {
			best = c
		}
	}
	return best
}

// randomOf picks uniformly among live combatants, excluding the given
// combatant (pass nil to exclude nobody).
func randomOf(side []*game.Combatant, exclude *game.Combatant, rng *rand.Rand) *game.Combatant {
	candidates := make([]*game.Combatant, 0, len(side))
	for _, c := range side {
		if c.IsAlive && c != exclude {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[rng.Intn(len(candidates))]
}
