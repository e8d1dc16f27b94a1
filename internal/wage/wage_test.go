package wage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/wage"
)

const home = "Türkiye"

func status(s model.SquadStatus) *model.SquadStatus { return &s }

func TestAnnual(t *testing.T) {
	cases := []struct {
		name string
		p    model.Player
		want float64
	}{
		{"value share beats floor", model.Player{Skill: 85, Value: 60, Age: 27, Nationality: "Brazil"}, 12},
		{"skill floor beats value", model.Player{Skill: 90, Value: 20, Age: 27, Nationality: "Brazil"}, 12},
		{"star status", model.Player{Skill: 80, Value: 10, Age: 27, Nationality: "Brazil", SquadStatus: status(model.StatusStar)}, 6.4},
		{"surplus", model.Player{Skill: 80, Value: 10, Age: 27, Nationality: "Brazil", SquadStatus: status(model.StatusSurplus)}, 1.2},
		{"youth discount", model.Player{Skill: 75, Value: 5, Age: 20, Nationality: "Brazil"}, 0.9},
		{"veteran star", model.Player{Skill: 86, Value: 10, Age: 34, Nationality: "Brazil"}, 10.4},
		{"veteran", model.Player{Skill: 76, Value: 1, Age: 33, Nationality: "Brazil"}, 1.35},
		{"home discount", model.Player{Skill: 80, Value: 10, Age: 27, Nationality: home}, 2.8},
		{"floor", model.Player{Skill: 45, Value: 0.1, Age: 19, Nationality: home}, 0.05},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, wage.Annual(tc.p, home), 1e-9)
		})
	}
}

func TestAnnual_NeverBelowMinimum(t *testing.T) {
	statuses := []*model.SquadStatus{nil, status(model.StatusSurplus), status(model.StatusJoker)}
	for skill := 40; skill <= 99; skill += 3 {
		for age := 17; age <= 40; age += 2 {
			for _, st := range statuses {
				p := model.Player{Skill: skill, Value: 0, Age: age, Nationality: home, SquadStatus: st}
				assert.GreaterOrEqual(t, wage.Annual(p, home), wage.Minimum)
			}
		}
	}
}

func TestEffective_UsesOverride(t *testing.T) {
	w := 3.25
	p := model.Player{Skill: 90, Value: 100, Age: 27, Wage: &w}
	assert.Equal(t, 3.25, wage.Effective(p, home))
	p.Wage = nil
	assert.Equal(t, 20.0, wage.Effective(p, home))
}

func TestTotal(t *testing.T) {
	w := 1.0
	players := []model.Player{
		{Skill: 90, Value: 100, Age: 27, Nationality: "Brazil"},
		{Skill: 60, Value: 0.5, Age: 25, Wage: &w},
	}
	assert.InDelta(t, 21.0, wage.Total(players, home), 1e-9)
}
