package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/FrancoCastro1990/auto-rpg/internal/catalog"
	"github.com/FrancoCastro1990/auto-rpg/internal/engine"
	"github.com/FrancoCastro1990/auto-rpg/internal/game"
)

const maxPartySize = 4

var (
	ErrNoMembers       = errors.New("party needs at least one member")
	ErrTooManyMembers  = errors.New("party exceeds the maximum of 4 members")
	ErrDuplicateMember = errors.New("party member names must be unique")
)

// PartyRepo is the persistence surface CreateParty needs.
type PartyRepo interface {
	CreateParty(p *game.Party) error
}

// CreateParty validates a party request against the catalogs and stores
// it. Authoring mistakes (unknown jobs, malformed rules, rules casting
// unknown abilities) are rejected here, before any battle ever runs.
func CreateParty(repo PartyRepo, cat *catalog.Catalog, playerID uint, name string, members []game.CharacterSpec) (*game.Party, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	if len(members) > maxPartySize {
		return nil, ErrTooManyMembers
	}
	seen := make(map[string]bool, len(members))
	party := &game.Party{PlayerID: playerID, Name: name}
	for _, spec := range members {
		if seen[spec.Name] {
			return nil, ErrDuplicateMember
		}
		seen[spec.Name] = true
		if _, err := cat.Job(spec.Job); err != nil {
			return nil, err
		}
		for i, rs := range spec.Rules {
			r, err := engine.ParseRuleSpec(rs)
			if err != nil {
				return nil, fmt.Errorf("member %q rule %d: %w", spec.Name, i, err)
			}
			if r.Action == game.ActionCast && !cat.HasAbility(r.AbilityID) {
				return nil, fmt.Errorf("member %q rule %d: %w", spec.Name, i, &catalog.NotFoundError{Kind: "ability", Ref: r.AbilityID})
			}
		}
		level := spec.Level
		if level < 1 {
			level = 1
		}
		rulesJSON, err := json.Marshal(spec.Rules)
		if err != nil {
			return nil, err
		}
		party.Members = append(party.Members, game.PartyMember{
			Name:      spec.Name,
			Job:       spec.Job,
			Level:     level,
			RulesJSON: string(rulesJSON),
		})
	}
	if err := repo.CreateParty(party); err != nil {
		return nil, err
	}
	return party, nil
}
