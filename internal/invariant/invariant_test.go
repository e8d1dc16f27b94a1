package invariant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ardakvanc11/fmtest-sub003/internal/invariant"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

func validPlayer(id string) model.Player {
	return model.Player{
		ID: id, Name: "Test Player", Position: model.CentreBack, Skill: 70,
		Stats: model.PlayerStats{Pace: 60, Shooting: 40, Passing: 60, Dribbling: 50, Defending: 75,
			Physical: 75, Finishing: 30, Heading: 75, Corners: 30, Stamina: 70},
		Age: 25, Value: 1.2, Nationality: "Türkiye", TeamID: "t1",
		Morale: 75, Condition: 100, InjuryProneness: 10,
	}
}

func TestPlayer_Valid(t *testing.T) {
	require.NoError(t, invariant.Player(validPlayer("p1")))
}

func TestPlayer_Violations(t *testing.T) {
	same := model.CentreBack
	bogus := model.Position("XX")
	neg := -1.0
	cases := []struct {
		name   string
		mutate func(p *model.Player)
		field  string
	}{
		{"skill too high", func(p *model.Player) { p.Skill = 120 }, "Player.Skill"},
		{"skill too low", func(p *model.Player) { p.Skill = 12 }, "Player.Skill"},
		{"stat out of range", func(p *model.Player) { p.Stats.Pace = 100 }, "Player.Stats.Pace"},
		{"secondary equals primary", func(p *model.Player) { p.SecondaryPosition = &same }, "Player.SecondaryPosition"},
		{"unknown secondary", func(p *model.Player) { p.SecondaryPosition = &bogus }, "Player.SecondaryPosition"},
		{"unknown primary", func(p *model.Player) { p.Position = bogus }, "Player.Position"},
		{"negative wage", func(p *model.Player) { p.Wage = &neg }, "Player.Wage"},
		{"injury remaining exceeds total", func(p *model.Player) {
			p.Injury = &model.Injury{Type: "hamstring", TotalDays: 5, RemainingDays: 9}
		}, "Player.Injury.RemainingDays"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPlayer("p1")
			tc.mutate(&p)
			err := invariant.Player(p)
			require.ErrorIs(t, err, invariant.ErrInvariant)
			var fields []string
			for _, fe := range invariant.FieldErrors(err) {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestTeam_OwnershipRules(t *testing.T) {
	team := model.Team{ID: "t1", Name: "Club", Reputation: 2.5, Players: []model.Player{validPlayer("a"), validPlayer("b")}}
	require.NoError(t, invariant.Team(team))

	team.Players[1].TeamID = "other"
	require.ErrorIs(t, invariant.Team(team), invariant.ErrInvariant)

	team.Players[1] = validPlayer("a")
	require.ErrorIs(t, invariant.Team(team), invariant.ErrInvariant)
}

func TestTeam_ReputationRange(t *testing.T) {
	team := model.Team{ID: "t1", Name: "Club", Reputation: 6}
	assert.ErrorIs(t, invariant.Team(team), invariant.ErrInvariant)
}

func TestLeague_SharedPlayerRejected(t *testing.T) {
	a := model.Team{ID: "t1", Name: "A", Reputation: 1, Players: []model.Player{validPlayer("x")}}
	shared := validPlayer("x")
	shared.TeamID = "t2"
	b := model.Team{ID: "t2", Name: "B", Reputation: 1, Players: []model.Player{shared}}
	assert.ErrorIs(t, invariant.League([]model.Team{a, b}), invariant.ErrInvariant)
	assert.NoError(t, invariant.League([]model.Team{a}))
}

func TestFieldErrors_Nil(t *testing.T) {
	assert.Nil(t, invariant.FieldErrors(nil))
}
