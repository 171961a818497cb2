package engine

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

var (
	ErrEmptyRoster    = errors.New("battle requires at least one ally and one enemy")
	ErrAlreadyStarted = errors.New("battle already initialized")
	ErrNotStarted     = errors.New("battle not initialized")
	ErrBattleComplete = errors.New("battle already complete")
	ErrNotComplete    = errors.New("battle is not complete")
)

const defaultMaxTurns = 100

// Battle drives the turn-loop state machine over one battle state. It
// is single-threaded and synchronous: ExecuteTurn is a plain step
// function, safe to call repeatedly from one caller, and stopping
// between calls never leaves the state inconsistent.
type Battle struct {
	state   *game.BattleState
	rng     *rand.Rand
	lootRng *rand.Rand
	// order/cursor track the per-round acting sequence.
	order  []*game.Combatant
	cursor int
}

// NewBattle creates a battle with the given turn cap and random
// sources. The loot source is separate from the battle source so a
// fixed seed reproduces both the turn history and the loot
// independently.
func NewBattle(maxTurns int, rng, lootRng *rand.Rand) *Battle {
	if maxTurns <= 0 {
		maxTurns = defaultMaxTurns
	}
	return &Battle{
		state: &game.BattleState{
			Phase:    game.PhaseNotStarted,
			MaxTurns: maxTurns,
		},
		rng:     rng,
		lootRng: lootRng,
	}
}

// State exposes the underlying battle state for read access (status
// projections, tests). Callers must not mutate it.
func (b *Battle) State() *game.BattleState { return b.state }

// Initialize seeds the battle with its rosters and transitions to
// InProgress. Empty rosters and double initialization are programmer
// errors.
func (b *Battle) Initialize(allies, enemies []*game.Combatant) error {
	if b.state.Phase != game.PhaseNotStarted {
		return ErrAlreadyStarted
	}
	if len(allies) == 0 || len(enemies) == 0 {
		return ErrEmptyRoster
	}
	for _, c := range allies {
		c.IsEnemy = false
	}
	for _, c := range enemies {
		c.IsEnemy = true
	}
	b.state.Allies = allies
	b.state.Enemies = enemies
	b.state.TurnNumber = 0
	b.state.History = nil
	b.state.Phase = game.PhaseInProgress
	return nil
}

// IsComplete reports whether the battle reached a terminal state.
func (b *Battle) IsComplete() bool { return b.state.Phase == game.PhaseComplete }

// roundOrder builds the acting sequence for one round: every live
// combatant by descending effective speed; SliceStable over the
// allies-then-enemies roster makes speed ties favor allies first, then
// roster order.
func (b *Battle) roundOrder() []*game.Combatant {
	order := make([]*game.Combatant, 0, len(b.state.Allies)+len(b.state.Enemies))
	for _, c := range b.state.Allies {
		if c.IsAlive {
			order = append(order, c)
		}
	}
	for _, c := range b.state.Enemies {
		if c.IsAlive {
			order = append(order, c)
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].EffectiveStats().Speed > order[j].EffectiveStats().Speed
	})
	return order
}

// nextActor advances to the next live combatant, starting new rounds as
// needed. It returns nil after marking the battle ForcedEnd when the
// next round would exceed the turn cap.
func (b *Battle) nextActor() *game.Combatant {
	for {
		for b.cursor < len(b.order) {
			c := b.order[b.cursor]
			b.cursor++
			if c.IsAlive {
				return c
			}
		}
		if b.state.TurnNumber >= b.state.MaxTurns {
			b.state.Phase = game.PhaseComplete
			b.state.Outcome = game.OutcomeForcedEnd
			return nil
		}
		b.state.TurnNumber++
		b.order = b.roundOrder()
		b.cursor = 0
	}
}

// ExecuteTurn advances exactly one combatant's turn: tick its cooldowns
// and buffs, arbitrate its rules into an action, apply the effect,
// append a history record and recompute completion. The returned record
// is nil when the turn cap ended the battle instead.
func (b *Battle) ExecuteTurn() (*game.TurnRecord, error) {
	switch b.state.Phase {
	case game.PhaseNotStarted:
		return nil, ErrNotStarted
	case game.PhaseComplete:
		return nil, ErrBattleComplete
	}

	actor := b.nextActor()
	if actor == nil {
		return nil, nil
	}
	actor.TickTurnStart()

	var rec game.TurnRecord
	if action, ok := SelectAction(b.state, actor, b.rng); ok {
		rec = b.applyAction(actor, action)
	} else {
		// No live opponent left; completion below makes this final.
		rec = game.TurnRecord{Actor: actor.ID, Action: "wait", Message: actor.Name + " has no target"}
	}
	rec.Turn = b.state.TurnNumber
	b.state.History = append(b.state.History, rec)

	b.checkCompletion()
	return &rec, nil
}

func (b *Battle) checkCompletion() {
	switch {
	case game.AllDead(b.state.Enemies):
		b.state.Phase = game.PhaseComplete
		b.state.Outcome = game.OutcomeVictory
	case game.AllDead(b.state.Allies):
		b.state.Phase = game.PhaseComplete
		b.state.Outcome = game.OutcomeDefeat
	}
}

// SimulateFullBattle runs ExecuteTurn until completion and returns the
// result. Termination is guaranteed by the turn cap.
func (b *Battle) SimulateFullBattle() (*game.BattleResult, error) {
	if b.state.Phase == game.PhaseNotStarted {
		return nil, ErrNotStarted
	}
	for !b.IsComplete() {
		if _, err := b.ExecuteTurn(); err != nil {
			return nil, err
		}
	}
	return b.Result()
}

// Result builds the terminal battle result. Loot is resolved only on
// victory; a forced end awards nothing.
func (b *Battle) Result() (*game.BattleResult, error) {
	if b.state.Phase != game.PhaseComplete {
		return nil, ErrNotComplete
	}
	res := &game.BattleResult{
		Victory:         b.state.Outcome == game.OutcomeVictory,
		Turns:           b.state.TurnNumber,
		SurvivingAllies: []string{},
		DefeatedEnemies: []string{},
		Loot:            game.Loot{Items: []string{}},
	}
	switch b.state.Outcome {
	case game.OutcomeVictory:
		res.Reason = "all enemies defeated"
		res.Loot = ResolveLoot(b.state.Enemies, b.lootRng)
	case game.OutcomeDefeat:
		res.Reason = "party was wiped out"
	case game.OutcomeForcedEnd:
		res.Reason = "turn limit reached"
	}
	for _, c := range b.state.Allies {
		if c.IsAlive {
			res.SurvivingAllies = append(res.SurvivingAllies, c.ID)
		}
	}
	for _, c := range b.state.Enemies {
		if !c.IsAlive {
			res.DefeatedEnemies = append(res.DefeatedEnemies, c.ID)
		}
	}
	return res, nil
}

// ParticipantStatus projects per-combatant observability data without
// mutating state.
func (b *Battle) ParticipantStatus() []game.ParticipantStatus {
	out := make([]game.ParticipantStatus, 0, len(b.state.Allies)+len(b.state.Enemies))
	for _, c := range append(append([]*game.Combatant{}, b.state.Allies...), b.state.Enemies...) {
		out = append(out, game.ParticipantStatus{
			ID:                  c.ID,
			Name:                c.Name,
			IsEnemy:             c.IsEnemy,
			IsAlive:             c.IsAlive,
			HPPercent:           c.HPPercent(),
			MPPercent:           c.MPPercent(),
			ActiveCooldownCount: c.ActiveCooldownCount(),
		})
	}
	return out
}
