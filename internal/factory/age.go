package factory

import "github.com/ardakvanc11/fmtest-sub003/internal/random"

// Age bounds at generation.
const (
	MinAge = 17
	MaxAge = 36
)

// ageRule suppresses an implausible (age, skill, nationality) combination.
// Every matching rule fires with its own probability, in table order.
type ageRule struct {
	name        string
	applies     func(d *draft) bool
	probability float64
	apply       func(src random.Source, d *draft)
}

var ageRules = []ageRule{
	{
		name:        "young_foreigner",
		applies:     func(d *draft) bool { return d.foreign && d.age >= 18 && d.age <= 22 },
		probability: 0.85,
		apply:       func(src random.Source, d *draft) { d.age = random.Between(src, 23, 35) },
	},
	{
		name:        "old_elite",
		applies:     func(d *draft) bool { return d.age > 32 && d.skill >= 86 },
		probability: 0.95,
		apply: func(src random.Source, d *draft) {
			if random.Chance(src, 0.5) {
				d.age = random.Between(src, 27, 31)
				return
			}
			d.skill = random.Between(src, 79, 85)
		},
	},
	{
		name:        "young_elite",
		applies:     func(d *draft) bool { return d.age < 22 && d.skill >= 80 },
		probability: 0.95,
		apply:       func(src random.Source, d *draft) { d.age = random.Between(src, 23, 34) },
	},
}

// applyAgeRules runs the reroll table and returns the names of the rules that fired.
func applyAgeRules(src random.Source, d *draft) []string {
	var fired []string
	for _, r := range ageRules {
		if !r.applies(d) {
			continue
		}
		if random.Chance(src, r.probability) {
			r.apply(src, d)
			fired = append(fired, r.name)
		}
	}
	return fired
}
