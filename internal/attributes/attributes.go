// Package attributes turns a skill scalar into a position-conditioned stat block.
package attributes

import (
	"math"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

// Stat indexes into a profile; order matches model.PlayerStats.
type Stat int

const (
	Pace Stat = iota
	Shooting
	Passing
	Dribbling
	Defending
	Physical
	Finishing
	Heading
	Corners
	Stamina
	statCount
)

// Shape is the multiplier and variance band applied to one stat.
type Shape struct {
	Multiplier float64
	Variance   int
}

// Profile holds one Shape per stat.
type Profile [statCount]Shape

var neutral = Profile{
	{1.0, 8}, {1.0, 8}, {1.0, 8}, {1.0, 8}, {1.0, 8},
	{1.0, 8}, {1.0, 8}, {1.0, 8}, {1.0, 8}, {1.0, 8},
}

// profiles is keyed by position. Column order:
// pace, shooting, passing, dribbling, defending, physical, finishing, heading, corners, stamina.
var profiles = map[model.Position]Profile{
	model.Goalkeeper: {
		{0.55, 5}, {0.3, 5}, {0.7, 6}, {0.4, 5}, {0.6, 6},
		{0.95, 8}, {0.25, 5}, {0.6, 6}, {0.35, 5}, {0.85, 6},
	},
	model.FullbackLeft: {
		{1.05, 8}, {0.6, 6}, {0.9, 8}, {0.9, 8}, {1.0, 8},
		{0.95, 8}, {0.5, 6}, {0.8, 8}, {0.8, 8}, {1.1, 8},
	},
	model.FullbackRight: {
		{1.05, 8}, {0.6, 6}, {0.9, 8}, {0.9, 8}, {1.0, 8},
		{0.95, 8}, {0.5, 6}, {0.8, 8}, {0.8, 8}, {1.1, 8},
	},
	model.CentreBack: {
		{0.85, 8}, {0.45, 5}, {0.8, 8}, {0.65, 6}, {1.12, 8},
		{1.1, 8}, {0.4, 5}, {1.1, 8}, {0.4, 5}, {0.95, 8},
	},
	model.WingerLeft: {
		{1.12, 8}, {0.9, 8}, {0.95, 8}, {1.1, 8}, {0.4, 5},
		{0.8, 8}, {0.9, 8}, {0.6, 6}, {0.95, 8}, {1.0, 8},
	},
	model.WingerRight: {
		{1.12, 8}, {0.9, 8}, {0.95, 8}, {1.1, 8}, {0.4, 5},
		{0.8, 8}, {0.9, 8}, {0.6, 6}, {0.95, 8}, {1.0, 8},
	},
	model.CentralMidfielder: {
		{0.9, 8}, {0.85, 8}, {1.1, 8}, {1.0, 8}, {0.85, 8},
		{0.95, 8}, {0.8, 8}, {0.75, 8}, {0.95, 8}, {1.1, 8},
	},
	model.AttackingMidfielder: {
		{0.95, 8}, {1.0, 8}, {1.12, 8}, {1.12, 8}, {0.45, 5},
		{0.8, 8}, {0.95, 8}, {0.6, 6}, {1.05, 8}, {0.95, 8},
	},
	model.Striker: {
		{1.0, 8}, {1.1, 8}, {0.8, 8}, {0.95, 8}, {0.3, 5},
		{1.0, 8}, {1.15, 8}, {1.0, 8}, {0.5, 6}, {0.9, 8},
	},
}

// ProfileFor returns the tabulated profile, or the neutral one for unknown positions.
func ProfileFor(pos model.Position) Profile {
	if p, ok := profiles[pos]; ok {
		return p
	}
	return neutral
}

// Generate builds a stat block for pos around skill. Every value is clamped to [20,99].
func Generate(src random.Source, pos model.Position, skill int) model.PlayerStats {
	profile := ProfileFor(pos)
	var v [statCount]int
	for i, shape := range profile {
		base := int(math.Round(float64(skill) * shape.Multiplier))
		v[i] = Clamp(base + random.Between(src, -shape.Variance, shape.Variance))
	}
	return model.PlayerStats{
		Pace:      v[Pace],
		Shooting:  v[Shooting],
		Passing:   v[Passing],
		Dribbling: v[Dribbling],
		Defending: v[Defending],
		Physical:  v[Physical],
		Finishing: v[Finishing],
		Heading:   v[Heading],
		Corners:   v[Corners],
		Stamina:   v[Stamina],
	}
}

// Clamp bounds a stat to [model.MinStat, model.MaxStat].
func Clamp(v int) int {
	if v < model.MinStat {
		return model.MinStat
	}
	if v > model.MaxStat {
		return model.MaxStat
	}
	return v
}
