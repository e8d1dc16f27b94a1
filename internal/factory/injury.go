package factory

import "github.com/ardakvanc11/fmtest-sub003/internal/random"

const (
	agePenaltyFrom     = 28
	agePenaltyPerYear  = 2
	lowPhysical        = 60
	lowPhysicalPenalty = 10
	wildcardChance     = 0.10
	wildcardPenalty    = 30
)

// injuryProneness scores how easily a player gets hurt, clamped to [1,100].
func injuryProneness(src random.Source, age, physical int) int {
	v := random.Between(src, 1, 20)
	if age > agePenaltyFrom {
		v += (age - agePenaltyFrom) * agePenaltyPerYear
	}
	if physical < lowPhysical {
		v += lowPhysicalPenalty
	}
	if random.Chance(src, wildcardChance) {
		v += wildcardPenalty
	}
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}
