package factory

import (
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

// SecondaryChance is the probability an outfield player gets a secondary position.
const SecondaryChance = 0.35

// compatible lists the secondary positions each primary may carry.
// Goalkeepers are absent and therefore never receive one.
var compatible = map[model.Position][]model.Position{
	model.FullbackLeft:        {model.FullbackRight, model.CentreBack, model.WingerLeft},
	model.FullbackRight:       {model.FullbackLeft, model.CentreBack, model.WingerRight},
	model.CentreBack:          {model.FullbackLeft, model.FullbackRight, model.CentralMidfielder},
	model.WingerLeft:          {model.WingerRight, model.AttackingMidfielder, model.Striker},
	model.WingerRight:         {model.WingerLeft, model.AttackingMidfielder, model.Striker},
	model.CentralMidfielder:   {model.AttackingMidfielder, model.CentreBack},
	model.AttackingMidfielder: {model.CentralMidfielder, model.WingerLeft, model.WingerRight, model.Striker},
	model.Striker:             {model.AttackingMidfielder, model.WingerLeft, model.WingerRight},
}

// CompatibleSecondaries returns the secondary positions allowed for primary.
func CompatibleSecondaries(primary model.Position) []model.Position {
	return compatible[primary]
}

func (f *Factory) secondaryFor(primary model.Position) *model.Position {
	options := compatible[primary]
	if len(options) == 0 {
		return nil
	}
	if !random.Chance(f.src, SecondaryChance) {
		return nil
	}
	pos := random.Pick(f.src, options)
	return &pos
}
