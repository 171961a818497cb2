// Package catalog holds the static lookup tables (abilities, jobs,
// enemy templates) a battle is built from. Catalogs are loaded once at
// startup, validated, and immutable afterwards; every catalog problem is
// surfaced before any battle starts.
package catalog

import (
	"fmt"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
	"github.com/FrancoCastro1990/auto-rpg/internal/logging"
)

// NotFoundError reports a reference to a catalog entry that does not
// exist (unknown job, enemy type or ability ID).
type NotFoundError struct {
	Kind string // "job", "enemy", "ability"
	Ref  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Ref)
}

// Catalog groups the three lookup tables.
type Catalog struct {
	abilities map[string]*game.Ability
	jobs      map[string]*game.Job
	enemies   map[string]*game.EnemyTemplate
}

// New builds a catalog from already-decoded entries, validating them the
// same way Load does. Duplicate IDs and malformed entries are fatal;
// dangling ability references are logged and tolerated (the factory
// skips them at bind time).
func New(abilities []game.Ability, jobs []game.Job, enemies []game.EnemyTemplate) (*Catalog, error) {
	c := &Catalog{
		abilities: make(map[string]*game.Ability, len(abilities)),
		jobs:      make(map[string]*game.Job, len(jobs)),
		enemies:   make(map[string]*game.EnemyTemplate, len(enemies)),
	}
	for i := range abilities {
		a := &abilities[i]
		if a.ID == "" {
			return nil, fmt.Errorf("ability entry %d: missing 'id'", i)
		}
		if !a.Kind.Valid() {
			return nil, fmt.Errorf("ability %q: invalid kind %q", a.ID, a.Kind)
		}
		if a.MPCost < 0 || a.Cooldown < 0 {
			return nil, fmt.Errorf("ability %q: mp_cost and cooldown must be >= 0", a.ID)
		}
		if (a.Kind == game.AbilityBuff || a.Kind == game.AbilityDebuff) && a.Duration <= 0 {
			return nil, fmt.Errorf("ability %q: %s requires duration > 0", a.ID, a.Kind)
		}
		if _, exists := c.abilities[a.ID]; exists {
			return nil, fmt.Errorf("duplicate ability id %q", a.ID)
		}
		c.abilities[a.ID] = a
	}
	for i := range jobs {
		j := &jobs[i]
		if j.Name == "" {
			return nil, fmt.Errorf("job entry %d: missing 'name'", i)
		}
		if _, exists := c.jobs[j.Name]; exists {
			return nil, fmt.Errorf("duplicate job %q", j.Name)
		}
		c.warnDangling("job", j.Name, j.AbilityIDs)
		c.jobs[j.Name] = j
	}
	for i := range enemies {
		e := &enemies[i]
		if e.Type == "" {
			return nil, fmt.Errorf("enemy entry %d: missing 'type'", i)
		}
		if _, exists := c.enemies[e.Type]; exists {
			return nil, fmt.Errorf("duplicate enemy type %q", e.Type)
		}
		c.warnDangling("enemy", e.Type, e.AbilityIDs)
		c.enemies[e.Type] = e
	}
	return c, nil
}

func (c *Catalog) warnDangling(kind, owner string, ids []string) {
	for _, id := range ids {
		if _, ok := c.abilities[id]; !ok {
			logging.Warn("catalog references unknown ability; it will be skipped", logging.Fields{
				"owner_kind": kind, "owner": owner, "ability_id": id,
			})
		}
	}
}

// Ability returns the ability with the given ID.
func (c *Catalog) Ability(id string) (*game.Ability, error) {
	a, ok := c.abilities[id]
	if !ok {
		return nil, &NotFoundError{Kind: "ability", Ref: id}
	}
	return a, nil
}

// HasAbility reports whether an ability ID exists in the catalog.
func (c *Catalog) HasAbility(id string) bool {
	_, ok := c.abilities[id]
	return ok
}

// Job returns the job with the given name.
func (c *Catalog) Job(name string) (*game.Job, error) {
	j, ok := c.jobs[name]
	if !ok {
		return nil, &NotFoundError{Kind: "job", Ref: name}
	}
	return j, nil
}

// Enemy returns the enemy template with the given type.
func (c *Catalog) Enemy(typ string) (*game.EnemyTemplate, error) {
	e, ok := c.enemies[typ]
	if !ok {
		return nil, &NotFoundError{Kind: "enemy", Ref: typ}
	}
	return e, nil
}

// Abilities returns every ability, for listing endpoints. The slice is
// freshly allocated; entries remain shared.
func (c *Catalog) Abilities() []*game.Ability {
	out := make([]*game.Ability, 0, len(c.abilities))
	for _, a := range c.abilities {
		out = append(out, a)
	}
	return out
}

// Jobs returns every job, for listing endpoints.
func (c *Catalog) Jobs() []*game.Job {
	out := make([]*game.Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		out = append(out, j)
	}
	return out
}

// Enemies returns every enemy template.
func (c *Catalog) Enemies() []*game.EnemyTemplate {
	out := make([]*game.EnemyTemplate, 0, len(c.enemies))
	for _, e := range c.enemies {
		out = append(out, e)
	}
	return out
}
