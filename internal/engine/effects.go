package engine

import (
	"fmt"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

// attackDamage is the deterministic damage formula: offensive stat plus
// flat power minus the defender's defense, clamped to a minimum of 1
// when the hit connects.
func attackDamage(offense, defense, power int) int {
	dmg := offense + power - defense
	if dmg < 1 {
		dmg = 1
	}
	return dmg
}

// applyAction mutates the battle state with the selected action and
// returns the history record describing it.
func (b *Battle) applyAction(actor *game.Combatant, act Action) game.TurnRecord {
	if act.Kind == game.ActionCast {
		return b.applyCast(actor, act)
	}
	return b.applyBasicAttack(actor, act)
}

func (b *Battle) applyBasicAttack(actor *game.Combatant, act Action) game.TurnRecord {
	target := act.Target
	dmg := attackDamage(actor.EffectiveStats().Strength, target.EffectiveStats().Defense, 0)
	dealt := target.TakeDamage(dmg)
	msg := fmt.Sprintf("%s attacks %s for %d damage", actor.Name, target.Name, dealt)
	if !target.IsAlive {
		msg += fmt.Sprintf("; %s is defeated", target.Name)
	}
	return game.TurnRecord{
		Actor:   actor.ID,
		Action:  string(game.ActionAttack),
		Target:  target.ID,
		Amount:  dealt,
		Message: msg,
	}
}

func (b *Battle) applyCast(actor *game.Combatant, act Action) game.TurnRecord {
	a := act.Ability
	target := act.Target

	// Legality was checked during arbitration; deduct the cost and arm
	// the cooldown before resolving the effect.
	actor.SpendMP(a.MPCost)
	if a.Cooldown > 0 {
		actor.Cooldowns[a.ID] = a.Cooldown
	}

	rec := game.TurnRecord{
		Actor:  actor.ID,
		Action: string(game.ActionCast) + ":" + a.ID,
		Target: target.ID,
	}

	switch a.Kind {
	case game.AbilityAttack:
		offense := actor.EffectiveStats().Strength
		if a.Magical {
			offense = actor.EffectiveStats().Magic
		}
		dealt := target.TakeDamage(attackDamage(offense, target.EffectiveStats().Defense, a.Power))
		rec.Amount = dealt
		rec.Message = fmt.Sprintf("%s casts %s on %s for %d damage", actor.Name, a.Name, target.Name, dealt)
		if !target.IsAlive {
			rec.Message += fmt.Sprintf("; %s is defeated", target.Name)
		}
	case game.AbilityHeal:
		healed := target.Heal(a.Power + actor.EffectiveStats().Magic/2)
		rec.Amount = healed
		rec.Message = fmt.Sprintf("%s casts %s on %s, restoring %d HP", actor.Name, a.Name, target.Name, healed)
	case game.AbilityBuff, game.AbilityDebuff:
		target.Buffs = append(target.Buffs, game.Buff{
			Name:           a.Name,
			Delta:          a.StatDelta,
			RemainingTurns: a.Duration,
		})
		rec.Amount = a.Duration
		rec.Message = fmt.Sprintf("%s casts %s on %s (%d turns)", actor.Name, a.Name, target.Name, a.Duration)
	}
	return rec
}
