package engine

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"
)

// Factory builds concrete combatants from catalog templates. It never
// mutates the catalogs, performs no I/O and reads no clock: given the
// same catalogs, specs and seed it produces identical combatants, which
// keeps persisted battles replayable.
type Factory struct {
	cat   *catalog.Catalog
	rng   *rand.Rand
	seq   int
	spawn int
}

// NewFactory creates an entity factory over the given catalogs.
func NewFactory(cat *catalog.Catalog, rng *rand.Rand) *Factory {
	return &Factory{cat: cat, rng: rng}
}

// levelMultiplier is the stat scaling curve: +10% of base per level
// above 1, each stat floored independently.
func levelMultiplier(level int) float64 {
	return 1 + float64(level-1)*0.1
}

func (f *Factory) nextID(name string) string {
	f.seq++
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "-"))
	return fmt.Sprintf("%s-%d", slug, f.seq)
}

// CreateCharacter instantiates one party member from its job template.
// Unknown jobs are fatal; unknown ability references and malformed
// rules are logged and skipped.
func (f *Factory) CreateCharacter(spec game.CharacterSpec) (*game.Combatant, error) {
	job, err := f.cat.Job(spec.Job)
	if err != nil {
		return nil, err
	}
	level := spec.Level
	if level < 1 {
		level = 1
	}
	stats := job.BaseStats.Scaled(levelMultiplier(level))
	c := &game.Combatant{
		ID:           f.nextID(spec.Name),
		Name:         spec.Name,
		Job:          job.Name,
		Level:        level,
		BaseStats:    job.BaseStats,
		MaxStats:     stats,
		CurrentStats: stats,
		Cooldowns:    make(map[string]int),
		IsAlive:      true,
	}
	f.bindAbilities(c, job.AbilityIDs)
	c.Rules = f.parseRules(spec.Rules, c.Name)
	return c, nil
}

// CreateEnemy instantiates one enemy from its template. When name is
// empty a unique one is synthesized from the type, the factory's spawn
// counter and a suffix drawn from the seeded random source, so several
// same-type enemies stay individually addressable and a replayed seed
// reproduces the same names.
func (f *Factory) CreateEnemy(typ, name string, level int) (*game.Combatant, error) {
	tpl, err := f.cat.Enemy(typ)
	if err != nil {
		return nil, err
	}
	if level < 1 {
		level = 1
	}
	if name == "" {
		if tpl.Name != "" {
			name = tpl.Name
		} else {
			name = typ
		}
		f.spawn++
		name = fmt.Sprintf("%s-%d-%03d", name, f.spawn, f.rng.Intn(1000))
	}
	stats := tpl.BaseStats.Scaled(levelMultiplier(level))
	rewards := tpl.Rewards
	c := &game.Combatant{
		ID:           f.nextID(name),
		Name:         name,
		Job:          tpl.Type,
		Level:        level,
		BaseStats:    tpl.BaseStats,
		MaxStats:     stats,
		CurrentStats: stats,
		Cooldowns:    make(map[string]int),
		IsAlive:      true,
		IsEnemy:      true,
		IsBoss:       tpl.IsBoss,
		Rewards:      &rewards,
	}
	f.bindAbilities(c, tpl.AbilityIDs)
	c.Rules = f.parseRules(tpl.Rules, c.Name)
	return c, nil
}

// CreateEnemiesFromBattle maps CreateEnemy over a battle lineup,
// propagating the first error encountered.
func (f *Factory) CreateEnemiesFromBattle(specs []game.EnemySpec, level int) ([]*game.Combatant, error) {
	out := make([]*game.Combatant, 0, len(specs))
	for _, s := range specs {
		e, err := f.CreateEnemy(s.Type, s.Name, level)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

// bindAbilities resolves the template's ability ID list against the
// ability catalog. An unknown id is skipped with a warning, not fatal.
// Level gates and combination preconditions filter quietly.
func (f *Factory) bindAbilities(c *game.Combatant, ids []string) {
	known := make(map[string]bool, len(ids))
	candidates := make([]*game.Ability, 0, len(ids))
	for _, id := range ids {
		a, err := f.cat.Ability(id)
		if err != nil {
			logging.Warn("skipping unknown ability reference", logging.Fields{
				"combatant": c.Name, "ability_id": id,
			})
			continue
		}
		if c.Level < a.MinLevel {
			continue
		}
		known[id] = true
		candidates = append(candidates, a)
	}
	for _, a := range candidates {
		missing := false
		for _, req := range a.Requires {
			if !known[req] {
				missing = true
				break
			}
		}
		if missing {
			continue
		}
		c.Abilities = append(c.Abilities, a)
	}
}

// parseRules converts authored rule specs into parsed rules. A
// malformed rule is an authoring mistake: it is dropped with a warning
// and never aborts battle setup.
func (f *Factory) parseRules(specs []game.RuleSpec, owner string) []game.Rule {
	rules := make([]game.Rule, 0, len(specs))
	for i, spec := range specs {
		r, err := ParseRuleSpec(spec)
		if err != nil {
			logging.Warn("dropping malformed behavior rule", logging.Fields{
				"combatant": owner, "rule_index": i, "error": err.Error(),
			})
			continue
		}
		if r.Action == game.ActionCast && !f.cat.HasAbility(r.AbilityID) {
			logging.Warn("dropping rule casting unknown ability", logging.Fields{
				"combatant": owner, "rule_index": i, "ability_id": r.AbilityID,
			})
			continue
		}
		rules = append(rules, r)
	}
	return rules
}
