package factory

import (
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

// Trait probabilities, applied only when the skin tone allows the trait.
const (
	BeardChance    = 0.40
	TattooChance   = 0.04
	FrecklesChance = 0.15
)

// Region buckets nations for the skin-tone distribution.
type Region int

const (
	RegionOther Region = iota
	RegionHome
	RegionSouthAmerica
	RegionAfrica
	RegionEurope
	RegionNorthAmerica
)

var regionOf = map[string]Region{
	"Brazil": RegionSouthAmerica, "Argentina": RegionSouthAmerica, "Uruguay": RegionSouthAmerica,
	"Colombia": RegionSouthAmerica, "Chile": RegionSouthAmerica, "Paraguay": RegionSouthAmerica,
	"Senegal": RegionAfrica, "Nigeria": RegionAfrica, "Cameroon": RegionAfrica, "Morocco": RegionAfrica,
	"Ghana": RegionAfrica, "Algeria": RegionAfrica, "Ivory Coast": RegionAfrica, "Mali": RegionAfrica,
	"Germany": RegionEurope, "Poland": RegionEurope, "France": RegionEurope, "Italy": RegionEurope,
	"Spain": RegionEurope, "Portugal": RegionEurope, "Belgium": RegionEurope, "Netherlands": RegionEurope,
	"Bosnia": RegionEurope, "Croatia": RegionEurope, "Serbia": RegionEurope, "Denmark": RegionEurope,
	"Sweden": RegionEurope, "England": RegionEurope,
	"United States": RegionNorthAmerica, "Canada": RegionNorthAmerica, "Mexico": RegionNorthAmerica,
}

// RegionFor buckets a nation. The home nation always maps to RegionHome.
func (f *Factory) RegionFor(nation string) Region {
	if nation == f.homeNation {
		return RegionHome
	}
	if r, ok := regionOf[nation]; ok {
		return r
	}
	return RegionOther
}

type tone = random.Weighted[int]

// skinTones is the per-region distribution over skin tones 1..5.
var skinTones = map[Region][]tone{
	RegionHome:         {{Value: 1, Weight: 0.45}, {Value: 3, Weight: 0.45}, {Value: 4, Weight: 0.10}},
	RegionSouthAmerica: {{Value: 1, Weight: 0.30}, {Value: 3, Weight: 0.35}, {Value: 4, Weight: 0.20}, {Value: 5, Weight: 0.15}},
	RegionAfrica:       {{Value: 4, Weight: 0.30}, {Value: 5, Weight: 0.70}},
	RegionEurope:       {{Value: 1, Weight: 0.70}, {Value: 2, Weight: 0.15}, {Value: 3, Weight: 0.10}, {Value: 5, Weight: 0.05}},
	RegionNorthAmerica: {{Value: 1, Weight: 0.40}, {Value: 3, Weight: 0.25}, {Value: 4, Weight: 0.15}, {Value: 5, Weight: 0.20}},
	RegionOther:        {{Value: 2, Weight: 0.60}, {Value: 1, Weight: 0.20}, {Value: 3, Weight: 0.20}},
}

// traitSet lists the variants a skin tone may wear. An empty list forbids the trait.
type traitSet struct {
	hair      []int
	hairColor []int
	beard     []int
	tattoo    []int
	freckles  bool
}

var traitsBySkin = map[int]traitSet{
	1: {hair: []int{1, 2, 3, 4, 5, 6, 7, 8}, hairColor: []int{1, 2, 3, 4, 5}, beard: []int{1, 2, 3, 4}, tattoo: []int{1, 2, 3}, freckles: true},
	2: {hair: []int{1, 2, 3, 9}, hairColor: []int{1}, tattoo: []int{1}},
	3: {hair: []int{1, 2, 3, 4, 5, 6, 7, 8}, hairColor: []int{1, 2, 3}, beard: []int{1, 2, 3}, tattoo: []int{1, 2, 3}, freckles: true},
	4: {hair: []int{1, 4, 5, 10, 11}, hairColor: []int{1, 2}, beard: []int{1, 2, 3}, tattoo: []int{2, 3}},
	5: {hair: []int{4, 5, 10, 11, 12}, hairColor: []int{1}, beard: []int{1, 2, 3}, tattoo: []int{2, 3}},
}

// AllowedBeards returns the beard variants compatible with skin.
func AllowedBeards(skin int) []int { return traitsBySkin[skin].beard }

// AllowedTattoos returns the tattoo variants compatible with skin.
func AllowedTattoos(skin int) []int { return traitsBySkin[skin].tattoo }

func (f *Factory) appearance(nation string) model.Face {
	skin := random.PickWeighted(f.src, skinTones[f.RegionFor(nation)])
	traits, ok := traitsBySkin[skin]
	if !ok {
		skin = 1
		traits = traitsBySkin[1]
	}
	face := model.Face{
		Skin:      skin,
		Hair:      random.Pick(f.src, traits.hair),
		HairColor: random.Pick(f.src, traits.hairColor),
	}
	if len(traits.beard) > 0 && random.Chance(f.src, BeardChance) {
		face.Beard = random.Pick(f.src, traits.beard)
	}
	if len(traits.tattoo) > 0 && random.Chance(f.src, TattooChance) {
		face.Tattoo = random.Pick(f.src, traits.tattoo)
	}
	if traits.freckles && random.Chance(f.src, FrecklesChance) {
		face.Freckles = true
	}
	return face
}
