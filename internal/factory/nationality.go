package factory

import "github.com/ardakvanc11/fmtest-sub003/internal/random"

// foreignRule gives the chance a player is foreign when applies matches.
// Rules are evaluated in order; the first match decides.
type foreignRule struct {
	name    string
	applies func(d *draft) bool
	chance  float64
}

var foreignRules = []foreignRule{
	{"home_only_club", func(d *draft) bool { return !d.req.CanBeForeign }, 0},
	{"elite", func(d *draft) bool { return d.skill > 82 }, 0.90},
	{"high_target", func(d *draft) bool { return d.req.TargetSkill >= 75 }, 0.20},
	{"default", func(*draft) bool { return true }, 0.05},
}

// ForeignChance returns the probability that a player with the given
// parameters is drawn from the foreign pool.
func ForeignChance(canBeForeign bool, targetSkill, skill int) float64 {
	d := &draft{req: Request{CanBeForeign: canBeForeign, TargetSkill: targetSkill}, skill: skill}
	return foreignChance(d)
}

func foreignChance(d *draft) float64 {
	for _, r := range foreignRules {
		if r.applies(d) {
			return r.chance
		}
	}
	return 0
}

// identity settles nationality and name, marking the draft foreign when drawn abroad.
func (f *Factory) identity(d *draft) (name, nation string) {
	chance := foreignChance(d)
	if chance > 0 && random.Chance(f.src, chance) {
		d.foreign = true
		who := f.pools.Abroad(f.src)
		return who.Name, who.Nation
	}
	return f.pools.Home(f.src), f.homeNation
}
