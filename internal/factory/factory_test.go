package factory_test

import (
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardakvanc11/fmtest-sub003/internal/factory"
	"github.com/ardakvanc11/fmtest-sub003/internal/invariant"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/names"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
)

func newFactory(t *testing.T, seed int64) *factory.Factory {
	t.Helper()
	src, _ := random.New(seed)
	n := 0
	return factory.New(src, names.Default(), "", zerolog.New(io.Discard),
		factory.WithIDGenerator(func() string { n++; return fmt.Sprintf("p-%d", n) }))
}

func TestCreate_HomeOnlyClubNeverForeign(t *testing.T) {
	f := newFactory(t, 1)
	for i := 0; i < 500; i++ {
		p := f.Create(factory.Request{Position: model.Striker, TargetSkill: 90, TeamID: "t1", CanBeForeign: false})
		require.Equal(t, f.HomeNation(), p.Nationality, "run %d", i)
	}
}

func TestCreate_GoalkeeperNeverHasSecondary(t *testing.T) {
	f := newFactory(t, 2)
	for i := 0; i < 500; i++ {
		p := f.Create(factory.Request{Position: model.Goalkeeper, TargetSkill: 70, CanBeForeign: true})
		require.Nil(t, p.SecondaryPosition)
	}
}

func TestCreate_SecondaryIsCompatible(t *testing.T) {
	f := newFactory(t, 3)
	seen := 0
	for _, pos := range model.Positions {
		for i := 0; i < 200; i++ {
			p := f.Create(factory.Request{Position: pos, TargetSkill: 70, CanBeForeign: true})
			if p.SecondaryPosition == nil {
				continue
			}
			seen++
			assert.NotEqual(t, pos, *p.SecondaryPosition)
			assert.Contains(t, factory.CompatibleSecondaries(pos), *p.SecondaryPosition)
		}
	}
	assert.Greater(t, seen, 0)
}

func TestCreate_FieldsWithinBounds(t *testing.T) {
	f := newFactory(t, 4)
	for _, target := range []int{-20, 40, 60, 75, 85, 99, 150} {
		for _, pos := range model.Positions {
			p := f.Create(factory.Request{Position: pos, TargetSkill: target, TeamID: "t", CanBeForeign: true, JerseyTag: "10"})
			require.NoError(t, invariant.Player(p), "target=%d pos=%s", target, pos)
			assert.GreaterOrEqual(t, p.Age, factory.MinAge)
			assert.LessOrEqual(t, p.Age, factory.MaxAge)
			assert.Equal(t, "t", p.TeamID)
			assert.Equal(t, "10", p.Jersey)
			assert.Equal(t, factory.DefaultMorale, p.Morale)
			assert.Equal(t, factory.DefaultCondition, p.Condition)
			assert.Empty(t, p.InjuryHistory)
			assert.NotNil(t, p.InjuryHistory)
			assert.Nil(t, p.Injury)
			assert.Zero(t, p.Season)
		}
	}
}

func TestCreate_SkillNearTarget(t *testing.T) {
	f := newFactory(t, 5)
	for i := 0; i < 300; i++ {
		p := f.Create(factory.Request{Position: model.CentralMidfielder, TargetSkill: 65, CanBeForeign: false})
		assert.InDelta(t, 65, p.Skill, 4)
	}
}

func TestCreate_FacesRespectSkinCompatibility(t *testing.T) {
	f := newFactory(t, 6)
	for i := 0; i < 2000; i++ {
		p := f.Create(factory.Request{Position: model.WingerLeft, TargetSkill: 80, CanBeForeign: true})
		if p.Face.Beard != 0 {
			assert.Contains(t, factory.AllowedBeards(p.Face.Skin), p.Face.Beard)
		}
		if p.Face.Tattoo != 0 {
			assert.Contains(t, factory.AllowedTattoos(p.Face.Skin), p.Face.Tattoo)
		}
		if p.Face.Skin == 2 {
			assert.Zero(t, p.Face.Beard)
		}
		if p.Face.Beard == 4 {
			assert.Equal(t, 1, p.Face.Skin)
		}
	}
}

func TestCreate_UniqueIDs(t *testing.T) {
	src, _ := random.New(7)
	f := factory.New(src, nil, "", zerolog.Nop())
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		p := f.Create(factory.Request{Position: model.Striker, TargetSkill: 70})
		require.False(t, seen[p.ID])
		seen[p.ID] = true
	}
}

func TestCreate_EliteHomePlayersAreRare(t *testing.T) {
	f := newFactory(t, 8)
	foreign, elite := 0, 0
	for i := 0; i < 3000; i++ {
		p := f.Create(factory.Request{Position: model.Striker, TargetSkill: 92, CanBeForeign: true})
		if p.Skill <= 82 {
			continue
		}
		elite++
		if p.Nationality != f.HomeNation() {
			foreign++
		}
	}
	require.Greater(t, elite, 0)
	assert.InDelta(t, 0.9, float64(foreign)/float64(elite), 0.05)
}

func TestForeignChance(t *testing.T) {
	cases := []struct {
		name   string
		can    bool
		target int
		skill  int
		want   float64
	}{
		{"gate overrides elite", false, 90, 90, 0},
		{"elite", true, 80, 83, 0.90},
		{"elite boundary not elite", true, 80, 82, 0.20},
		{"high target", true, 75, 74, 0.20},
		{"low target", true, 74, 78, 0.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, factory.ForeignChance(tc.can, tc.target, tc.skill))
		})
	}
}

func TestRegionFor(t *testing.T) {
	f := newFactory(t, 9)
	assert.Equal(t, factory.RegionHome, f.RegionFor(f.HomeNation()))
	assert.Equal(t, factory.RegionSouthAmerica, f.RegionFor("Brazil"))
	assert.Equal(t, factory.RegionAfrica, f.RegionFor("Senegal"))
	assert.Equal(t, factory.RegionEurope, f.RegionFor("France"))
	assert.Equal(t, factory.RegionNorthAmerica, f.RegionFor("Mexico"))
	assert.Equal(t, factory.RegionOther, f.RegionFor("Japan"))
}
