// Package strength reduces a roster to a single comparable strength number.
//
// Raw strength is a weighted mean of skills: the best player per formation
// slot counts fully, the next seven count as key reserves and everyone else
// barely moves the number. Visible strength ratchets upward only.
package strength

import (
	"math"
	"sort"

	"github.com/rs/zerolog"

	"github.com/ardakvanc11/fmtest-sub003/internal/model"
)

// Tier weights.
const (
	StarterWeight     = 1.00
	KeyReserveWeight  = 0.35
	RotationWeight    = 0.10
	StartersCount     = 11
	KeyReservesCount  = 7
	transferRefOffset = 4
)

// Importance weights a player's contribution by primary position.
func Importance(pos model.Position) float64 {
	switch pos {
	case model.CentralMidfielder, model.AttackingMidfielder:
		return 1.10
	case model.Striker:
		return 1.05
	case model.Goalkeeper:
		return 1.00
	case model.CentreBack:
		return 0.95
	case model.WingerLeft, model.WingerRight:
		return 0.90
	case model.FullbackLeft, model.FullbackRight:
		return 0.80
	default:
		return 1.00
	}
}

type slot struct {
	accepts []model.Position
	count   int
}

// formation is the starting slot layout filled greedily, in order.
var formation = []slot{
	{[]model.Position{model.Goalkeeper}, 1},
	{[]model.Position{model.FullbackLeft}, 1},
	{[]model.Position{model.FullbackRight}, 1},
	{[]model.Position{model.CentreBack}, 2},
	{[]model.Position{model.WingerLeft}, 1},
	{[]model.Position{model.WingerRight}, 1},
	{[]model.Position{model.CentralMidfielder, model.AttackingMidfielder}, 2},
	{[]model.Position{model.Striker}, 2},
}

func (s slot) takes(pos model.Position) bool {
	for _, p := range s.accepts {
		if p == pos {
			return true
		}
	}
	return false
}

// Tiers is the partition of a roster. Every input player appears in exactly one tier.
type Tiers struct {
	Starters    []model.Player
	KeyReserves []model.Player
	Rotation    []model.Player
}

// Partition splits players into starters, key reserves and rotation.
func Partition(players []model.Player) Tiers {
	order := make([]int, len(players))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return players[order[a]].Skill > players[order[b]].Skill
	})

	// pool holds indices into players in skill order; claimed entries are removed.
	pool := order
	claim := func(k int) int {
		idx := pool[k]
		pool = append(pool[:k:k], pool[k+1:]...)
		return idx
	}

	var tiers Tiers
	for _, s := range formation {
		for n := 0; n < s.count; n++ {
			for k, idx := range pool {
				if s.takes(players[idx].Position) {
					tiers.Starters = append(tiers.Starters, players[claim(k)])
					break
				}
			}
		}
	}
	for len(tiers.Starters) < StartersCount && len(pool) > 0 {
		tiers.Starters = append(tiers.Starters, players[claim(0)])
	}
	for len(tiers.KeyReserves) < KeyReservesCount && len(pool) > 0 {
		tiers.KeyReserves = append(tiers.KeyReserves, players[claim(0)])
	}
	for len(pool) > 0 {
		tiers.Rotation = append(tiers.Rotation, players[claim(0)])
	}
	return tiers
}

// CalculateRaw returns the weighted roster strength rounded to one decimal.
// An empty roster scores 0.
func CalculateRaw(players []model.Player) float64 {
	if len(players) == 0 {
		return 0
	}
	tiers := Partition(players)
	var num, den float64
	add := func(ps []model.Player, weight float64) {
		for _, p := range ps {
			w := Importance(p.Position) * weight
			num += float64(p.Skill) * w
			den += w
		}
	}
	add(tiers.Starters, StarterWeight)
	add(tiers.KeyReserves, KeyReserveWeight)
	add(tiers.Rotation, RotationWeight)
	if den == 0 {
		return 0
	}
	return round1(num / den)
}

// TransferImpact is the heuristic nudge transfer logic applies to visible strength
// when buying or selling a player. It is independent of the raw recomputation.
func TransferImpact(visible, skill int, buying bool) float64 {
	ref := visible - transferRefOffset
	diff := float64(skill - ref)
	if buying {
		if skill > ref {
			return 0.3 + 0.05*diff
		}
		return 0
	}
	if skill < ref {
		return -0.1
	}
	return -(0.4 + 0.1*diff)
}

// Model applies the ratchet to team records.
type Model struct {
	log zerolog.Logger
}

// New wires a strength model with a component-scoped logger.
func New(logger zerolog.Logger) *Model {
	l := logger.With().Str("module", "strength").Str("component", "ratchet").Logger()
	return &Model{log: l}
}

// Initialize sets a freshly built team's visible strength to target and freezes
// the delta between the template's intent and the bottom-up raw strength.
func (m *Model) Initialize(team *model.Team, target int) {
	raw := CalculateRaw(team.Players)
	team.RawStrength = raw
	team.Strength = target
	team.StrengthDelta = round1(float64(target) - raw)
	m.log.Debug().Str("team_id", team.ID).Int("strength", target).Float64("raw", raw).Float64("delta", team.StrengthDelta).Msg("strength initialized")
}

// Recalculate refreshes raw strength and raises visible strength only if the
// potential (raw + frozen delta, capped at MaxVisible) is strictly higher.
// It reports whether it raised.
func (m *Model) Recalculate(team *model.Team) bool {
	raw := CalculateRaw(team.Players)
	team.RawStrength = raw
	potential := min(int(math.Round(raw+team.StrengthDelta)), MaxVisible)
	if potential <= team.Strength {
		return false
	}
	m.log.Info().Str("team_id", team.ID).Int("from", team.Strength).Int("to", potential).Msg("visible strength raised")
	team.Strength = potential
	return true
}

// Visible strength bounds used by explicit adjustments.
const (
	MinVisible = 1
	MaxVisible = 99
)

// SeasonAdjust is the explicit, bounded path that may move visible strength down.
func (m *Model) SeasonAdjust(team *model.Team, delta int) {
	next := team.Strength + delta
	if next < MinVisible {
		next = MinVisible
	}
	if next > MaxVisible {
		next = MaxVisible
	}
	m.log.Debug().Str("team_id", team.ID).Int("from", team.Strength).Int("to", next).Msg("season strength adjustment")
	team.Strength = next
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
