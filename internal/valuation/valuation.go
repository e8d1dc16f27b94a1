// Package valuation converts (position, skill, age) into a market value in millions.
package valuation

import (
	"math"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

// Jitter bounds applied to every valuation.
const (
	MinJitter = 0.95
	MaxJitter = 1.05
)

type anchor struct {
	skill int
	value float64
}

// schedule is the piecewise-linear base value curve. Above the last anchor
// the value grows by topSlope per skill point.
var schedule = []anchor{
	{50, 0.1},
	{70, 1},
	{75, 4},
	{79, 16},
	{80, 20},
	{85, 50},
	{90, 100},
}

const topSlope = 15.0

// BaseValue returns the pre-multiplier value for skill.
func BaseValue(skill int) float64 {
	first := schedule[0]
	if skill <= first.skill {
		return first.value
	}
	for i := 1; i < len(schedule); i++ {
		lo, hi := schedule[i-1], schedule[i]
		if skill <= hi.skill {
			return lo.value + float64(skill-lo.skill)*(hi.value-lo.value)/float64(hi.skill-lo.skill)
		}
	}
	last := schedule[len(schedule)-1]
	return last.value + float64(skill-last.skill)*topSlope
}

// PositionCoefficient scales value by how the market prices a role.
func PositionCoefficient(pos model.Position) float64 {
	switch pos {
	case model.Striker:
		return 1.0
	case model.WingerLeft, model.WingerRight, model.AttackingMidfielder:
		return 0.95
	case model.CentralMidfielder:
		return 0.85
	case model.FullbackLeft, model.FullbackRight:
		return 0.75
	case model.CentreBack:
		return 0.70
	case model.Goalkeeper:
		return 0.60
	default:
		return 1.0
	}
}

// AgeCoefficient peaks at 1.0 between 22 and 30 with a premium for youth.
func AgeCoefficient(age int) float64 {
	switch {
	case age <= 19:
		return 2.5
	case age <= 21:
		return 1.8
	case age <= 24:
		return 1.4
	case age <= 27:
		return 1.1
	case age <= 30:
		return 1.0
	case age <= 32:
		return 0.75
	case age <= 34:
		return 0.45
	default:
		return 0.15
	}
}

// RoundForDisplay keeps whole millions above 20, one decimal above 1, two below.
func RoundForDisplay(v float64) float64 {
	switch {
	case v > 20:
		return math.Round(v)
	case v > 1:
		return math.Round(v*10) / 10
	default:
		return math.Round(v*100) / 100
	}
}

// ValueWithJitter is the deterministic core of Value for a given jitter draw.
func ValueWithJitter(pos model.Position, skill, age int, jitter float64) float64 {
	v := BaseValue(skill) * PositionCoefficient(pos) * AgeCoefficient(age) * jitter
	if v < 0 {
		v = 0
	}
	return RoundForDisplay(v)
}

// Value draws a jitter in [0.95, 1.05] from src and prices the player.
func Value(src random.Source, pos model.Position, skill, age int) float64 {
	return ValueWithJitter(pos, skill, age, random.Uniform(src, MinJitter, MaxJitter))
}
