// Package reputation ranks a finished season, drifts club reputation, and scores
// the manager's trophy-weighted power.
package reputation

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/strength"
)

// Reputation bounds.
const (
	MinReputation    = 0.1
	MaxReputation    = 5.0
	RelegationSpots  = 3
	defaultLeagueLen = 18
)

// Standing is one row of the final table.
type Standing struct {
	Index          int // position of the team in the input slice
	TeamID         string
	Rank           int // 1-based
	Points         int
	GoalDifference int
	GoalsFor       int
}

// Rank orders teams by points, then goal difference, then goals scored, then name.
func Rank(teams []model.Team) []Standing {
	idx := make([]int, len(teams))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		ta, tb := teams[idx[a]], teams[idx[b]]
		if pa, pb := ta.Stats.Points(), tb.Stats.Points(); pa != pb {
			return pa > pb
		}
		if ga, gb := ta.Stats.GoalDifference(), tb.Stats.GoalDifference(); ga != gb {
			return ga > gb
		}
		if ta.Stats.GoalsFor != tb.Stats.GoalsFor {
			return ta.Stats.GoalsFor > tb.Stats.GoalsFor
		}
		return ta.Name < tb.Name
	})
	out := make([]Standing, len(idx))
	for r, i := range idx {
		t := teams[i]
		out[r] = Standing{
			Index:          i,
			TeamID:         t.ID,
			Rank:           r + 1,
			Points:         t.Stats.Points(),
			GoalDifference: t.Stats.GoalDifference(),
			GoalsFor:       t.Stats.GoalsFor,
		}
	}
	return out
}

// Relegated reports whether rank falls in the bottom RelegationSpots of a league of size n.
func Relegated(rank, n int) bool {
	if n <= 0 {
		n = defaultLeagueLen
	}
	return rank > n-RelegationSpots
}

type outcome struct {
	strength  int
	rank      int
	relegated bool
}

type driftRule struct {
	name    string
	applies func(o outcome) bool
	delta   float64
}

// driftGroups are evaluated independently and summed. Within a group the first
// matching rule wins, so a relegated elite club takes the relegation penalty
// instead of the mid-table one.
var driftGroups = [][]driftRule{
	{
		{"elite_relegated", func(o outcome) bool { return o.strength > 80 && o.relegated }, -1.0},
		{"elite_midtable", func(o outcome) bool { return o.strength > 80 && o.rank > 10 }, -0.1},
	},
	{
		{"strong_bottom", func(o outcome) bool { return o.strength > 75 && o.rank > 15 }, -0.1},
	},
	{
		{"relegated", func(o outcome) bool { return o.strength < 80 && o.relegated }, -0.3},
	},
	{
		{"upper_podium", func(o outcome) bool { return o.strength >= 74 && o.strength <= 80 && o.rank <= 3 }, 0.1},
		{"middle_top5", func(o outcome) bool { return o.strength >= 70 && o.strength < 74 && o.rank <= 5 }, 0.1},
		{"lower_top5", func(o outcome) bool { return o.strength >= 60 && o.strength < 70 && o.rank <= 5 }, 0.1},
	},
}

// SeasonDelta returns the reputation change for a team of the given visible
// strength finishing at rank in a league of leagueSize teams.
func SeasonDelta(strength, rank, leagueSize int) float64 {
	o := outcome{strength: strength, rank: rank, relegated: Relegated(rank, leagueSize)}
	var delta float64
	for _, group := range driftGroups {
		for _, r := range group {
			if r.applies(o) {
				delta += r.delta
				break
			}
		}
	}
	return round1(delta)
}

// Clamp bounds a reputation to [0.1, 5.0] at one decimal.
func Clamp(v float64) float64 {
	return round1(math.Max(MinReputation, math.Min(MaxReputation, v)))
}

// StrengthAdjustment maps a season's reputation drift to the bounded visible
// strength correction applied at season end.
func StrengthAdjustment(delta float64) int {
	switch {
	case delta <= -1.0:
		return -2
	case delta <= -0.3:
		return -1
	case delta >= 0.1:
		return 1
	default:
		return 0
	}
}

// Pass runs the season-end reputation update.
type Pass struct {
	strength *strength.Model
	log      zerolog.Logger
}

// NewPass wires the season-end pass.
func NewPass(logger zerolog.Logger) *Pass {
	l := logger.With().Str("module", "reputation").Str("component", "season_end").Logger()
	return &Pass{strength: strength.New(logger), log: l}
}

// Apply ranks the league, drifts every team's reputation, records the final rank,
// and applies the bounded strength correction. It returns the final table.
func (p *Pass) Apply(teams []model.Team) []Standing {
	table := Rank(teams)
	for _, row := range table {
		t := &teams[row.Index]
		delta := SeasonDelta(t.Strength, row.Rank, len(teams))
		before := t.Reputation
		t.Reputation = Clamp(t.Reputation + delta)
		t.Stats.LastRank = row.Rank
		if adj := StrengthAdjustment(delta); adj != 0 {
			p.strength.SeasonAdjust(t, adj)
		}
		p.log.Debug().
			Str("team_id", t.ID).
			Int("rank", row.Rank).
			Float64("from", before).
			Float64("to", t.Reputation).
			Msg("reputation updated")
	}
	p.log.Info().Int("teams", len(teams)).Msg("season-end reputation pass complete")
	return table
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// ApplySeasonEnd runs a one-off season-end pass over teams.
func ApplySeasonEnd(teams []model.Team, logger zerolog.Logger) []Standing {
	return NewPass(logger).Apply(teams)
}
