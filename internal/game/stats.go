package game

import "math"

// Stats groups the six combat attributes shared by characters and enemies.
// All values are non-negative integers.
type Stats struct {
	HP       int `json:"hp" yaml:"hp"`
	MP       int `json:"mp" yaml:"mp"`
	Strength int `json:"str" yaml:"str"`
	Defense  int `json:"def" yaml:"def"`
	Magic    int `json:"mag" yaml:"mag"`
	Speed    int `json:"spd" yaml:"spd"`
}

// Scaled returns a copy with every component multiplied by factor and
// floored independently.
func (s Stats) Scaled(factor float64) Stats {
	scale := func(v int) int { return int(math.Floor(float64(v) * factor)) }
	return Stats{
		HP:       scale(s.HP),
		MP:       scale(s.MP),
		Strength: scale(s.Strength),
		Defense:  scale(s.Defense),
		Magic:    scale(s.Magic),
		Speed:    scale(s.Speed),
	}
}

// Plus returns the component-wise sum of s and d, flooring each component
// at zero. Deltas may be negative (debuffs).
func (s Stats) Plus(d Stats) Stats {
	add := func(a, b int) int {
		v := a + b
		if v < 0 {
			return 0
		}
		return v
	}
	return Stats{
		HP:       add(s.HP, d.HP),
		MP:       add(s.MP, d.MP),
		Strength: add(s.Strength, d.Strength),
		Defense:  add(s.Defense, d.Defense),
		Magic:    add(s.Magic, d.Magic),
		Speed:    add(s.Speed, d.Speed),
	}
}

// IsZero reports whether every component is zero.
func (s Stats) IsZero() bool {
	return s == Stats{}
}

// percent returns cur as an integer percentage of max (0 when max is 0).
func percent(cur, max int) int {
	if max <= 0 {
		return 0
	}
	return cur * 100 / max
}
