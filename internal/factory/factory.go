// Package factory mints fully specified players from a handful of design parameters.
//
// Every probabilistic step is a table of ordered rules evaluated against a
// draft player; the tables live next to the step they drive (nationality.go,
// age.go, secondary.go, appearance.go, injury.go).
package factory

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ardakvanc11/fmtest-sub003/internal/attributes"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/names"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
	"github.com/ardakvanc11/fmtest-sub003/internal/valuation"
)

// Defaults for fields the factory does not derive.
const (
	DefaultMorale    = 75
	DefaultCondition = 100
	skillJitter      = 4
)

// Request describes the player to mint.
type Request struct {
	Position     model.Position
	TargetSkill  int
	TeamID       string
	CanBeForeign bool
	JerseyTag    string
}

// Factory creates players. It is not safe for concurrent use unless its Source is.
type Factory struct {
	src        random.Source
	pools      *names.Pools
	homeNation string
	newID      func() string
	log        zerolog.Logger
}

// Option customises a Factory.
type Option func(*Factory)

// WithIDGenerator replaces the uuid-based id generator.
func WithIDGenerator(fn func() string) Option {
	return func(f *Factory) { f.newID = fn }
}

// New wires a factory. A nil pools uses the embedded defaults; an empty homeNation
// falls back to the pools' home nation.
func New(src random.Source, pools *names.Pools, homeNation string, logger zerolog.Logger, opts ...Option) *Factory {
	if pools == nil {
		pools = names.Default()
	}
	if homeNation == "" {
		homeNation = pools.HomeNation
	}
	l := logger.With().Str("module", "factory").Str("component", "player").Logger()
	f := &Factory{
		src:        src,
		pools:      pools,
		homeNation: homeNation,
		newID:      uuid.NewString,
		log:        l,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// HomeNation is the nation treated as domestic.
func (f *Factory) HomeNation() string { return f.homeNation }

// draft is the mutable working state threaded through the rule tables.
type draft struct {
	req     Request
	skill   int
	age     int
	foreign bool
}

// Create mints a player. It never fails: out-of-range inputs are clamped.
func (f *Factory) Create(req Request) model.Player {
	d := &draft{req: req}
	d.skill = clampSkill(req.TargetSkill + random.Between(f.src, -skillJitter, skillJitter))

	name, nation := f.identity(d)
	d.age = random.Between(f.src, MinAge, MaxAge)
	applied := applyAgeRules(f.src, d)

	secondary := f.secondaryFor(req.Position)
	value := valuation.Value(f.src, req.Position, d.skill, d.age)
	if secondary != nil {
		if alt := valuation.Value(f.src, *secondary, d.skill, d.age); alt > value {
			value = alt
		}
	}

	stats := attributes.Generate(f.src, req.Position, d.skill)
	face := f.appearance(nation)

	p := model.Player{
		ID:                f.newID(),
		Name:              name,
		Position:          req.Position,
		SecondaryPosition: secondary,
		Skill:             d.skill,
		Stats:             stats,
		Age:               d.age,
		Value:             value,
		Nationality:       nation,
		TeamID:            req.TeamID,
		Jersey:            req.JerseyTag,
		Morale:            DefaultMorale,
		Condition:         DefaultCondition,
		InjuryProneness:   injuryProneness(f.src, d.age, stats.Physical),
		InjuryHistory:     []model.InjuryRecord{},
		Face:              face,
	}

	f.log.Debug().
		Str("player_id", p.ID).
		Str("team_id", req.TeamID).
		Str("position", string(req.Position)).
		Int("target_skill", req.TargetSkill).
		Int("skill", p.Skill).
		Int("age", p.Age).
		Bool("foreign", d.foreign).
		Strs("age_rules", applied).
		Float64("value", p.Value).
		Msg("player created")
	return p
}

func clampSkill(v int) int {
	if v < model.MinSkill {
		return model.MinSkill
	}
	if v > model.MaxSkill {
		return model.MaxSkill
	}
	return v
}
