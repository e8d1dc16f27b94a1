// Package wage maps a player record to an annual wage in millions.
package wage

import (
	"math"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

// Minimum is the wage floor applied after every multiplier.
const Minimum = 0.05

const valueShare = 0.20

// SkillFloor is the minimum pre-multiplier wage a skill level commands.
func SkillFloor(skill int) float64 {
	switch {
	case skill >= 90:
		return 12.0
	case skill >= 85:
		return 8.0
	case skill >= 80:
		return 4.0
	case skill >= 75:
		return 1.5
	default:
		return 0
	}
}

// StatusCoefficient scales wage by squad role. An unset status counts as FIRST_XI.
func StatusCoefficient(status *model.SquadStatus) float64 {
	if status == nil {
		return 1.0
	}
	switch *status {
	case model.StatusStar:
		return 1.6
	case model.StatusImportant:
		return 1.3
	case model.StatusRotation:
		return 0.8
	case model.StatusImpact:
		return 0.7
	case model.StatusJoker:
		return 0.5
	case model.StatusSurplus:
		return 0.3
	default:
		return 1.0
	}
}

// Annual computes the wage the club would offer p.
func Annual(p model.Player, homeNation string) float64 {
	w := math.Max(valueShare*p.Value, SkillFloor(p.Skill))
	w *= StatusCoefficient(p.SquadStatus)

	switch {
	case p.Age <= 21:
		w *= 0.6
	case p.Age >= 33 && p.Skill >= 80:
		w *= 1.3
	case p.Age >= 33:
		w *= 0.9
	}
	if p.Nationality == homeNation {
		w *= 0.7
	}
	if w < Minimum {
		w = Minimum
	}
	return math.Round(w*100) / 100
}

// Effective returns the contracted wage if one is set, else the computed one.
func Effective(p model.Player, homeNation string) float64 {
	if p.Wage != nil {
		return *p.Wage
	}
	return Annual(p, homeNation)
}

// Total sums the effective wages of a roster.
func Total(players []model.Player, homeNation string) float64 {
	var sum float64
	for _, p := range players {
		sum += Effective(p, homeNation)
	}
	return sum
}
