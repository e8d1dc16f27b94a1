// Package squad assembles full club rosters from templates.
package squad

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ardakvanc11/fmtest-sub003/internal/factory"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/names"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
	"github.com/ardakvanc11/fmtest-sub003/internal/strength"
)

// PlayerMaker is the slice of the player factory the builder needs.
type PlayerMaker interface {
	Create(req factory.Request) model.Player
	HomeNation() string
}

// Foreign caps by target strength.
const (
	eliteTarget     = 80
	eliteForeignCap = 11
	baseForeignCap  = 5
)

// ForeignCap returns the foreign-player limit for a club of the given target strength.
func ForeignCap(target int) int {
	if target >= eliteTarget {
		return eliteForeignCap
	}
	return baseForeignCap
}

type rosterSlot struct {
	pos    model.Position
	offset int
}

// shape is the fixed roster: 11 starters, 7 key bench players, 6 reserves.
var shape = []rosterSlot{
	{model.Goalkeeper, 0},
	{model.FullbackLeft, 0},
	{model.FullbackRight, 0},
	{model.CentreBack, 0},
	{model.CentreBack, 0},
	{model.CentralMidfielder, 0},
	{model.CentralMidfielder, 0},
	{model.AttackingMidfielder, 0},
	{model.WingerLeft, 0},
	{model.WingerRight, 0},
	{model.Striker, 0},

	{model.Goalkeeper, -5},
	{model.CentreBack, -5},
	{model.FullbackLeft, -5},
	{model.CentralMidfielder, -5},
	{model.AttackingMidfielder, -5},
	{model.WingerLeft, -5},
	{model.Striker, -5},

	{model.FullbackRight, -8},
	{model.CentreBack, -8},
	{model.CentralMidfielder, -8},
	{model.WingerRight, -10},
	{model.Striker, -10},
	{model.Goalkeeper, -10},
}

// RosterSize is the number of players every built club starts with.
var RosterSize = len(shape)

// Builder turns club templates into teams. A Builder is not safe for concurrent
// use; build clubs in parallel with one Builder per goroutine.
type Builder struct {
	players  PlayerMaker
	strength *strength.Model
	newID    func() string
	log      zerolog.Logger
}

// NewBuilder wires a roster builder around a player maker.
func NewBuilder(players PlayerMaker, logger zerolog.Logger) *Builder {
	l := logger.With().Str("module", "squad").Str("component", "builder").Logger()
	return &Builder{
		players:  players,
		strength: strength.New(logger),
		newID:    uuid.NewString,
		log:      l,
	}
}

// Build creates the team and its roster. The foreign counter is local to the call.
func (b *Builder) Build(tpl ClubTemplate) model.Team {
	start := time.Now()
	teamID := tpl.ID
	if teamID == "" {
		teamID = b.newID()
	}
	limit := ForeignCap(tpl.TargetStrength)
	if tpl.HomeGrownOnly {
		limit = 0
	}
	home := b.players.HomeNation()

	roster := make([]model.Player, 0, len(shape))
	foreign := 0
	for i, s := range shape {
		p := b.players.Create(factory.Request{
			Position:     s.pos,
			TargetSkill:  tpl.TargetStrength + s.offset,
			TeamID:       teamID,
			CanBeForeign: foreign < limit,
			JerseyTag:    strconv.Itoa(i + 1),
		})
		if p.Nationality != home {
			foreign++
		}
		roster = append(roster, p)
	}

	team := model.Team{
		ID:              teamID,
		Name:            tpl.Name,
		Players:         roster,
		Reputation:      reputationOrDefault(tpl.Reputation),
		Budget:          tpl.Budget,
		WageBudget:      tpl.WageBudget,
		FanBase:         tpl.FanBase,
		StadiumCapacity: tpl.StadiumCapacity,
		Finance: model.FinanceRecords{
			Income:  map[string]float64{},
			Expense: map[string]float64{},
		},
		PendingTransfers: []model.PendingTransfer{},
	}
	b.strength.Initialize(&team, tpl.TargetStrength)

	b.log.Info().
		Str("team_id", teamID).
		Str("name", tpl.Name).
		Int("target", tpl.TargetStrength).
		Float64("raw", team.RawStrength).
		Int("foreign", foreign).
		Int("foreign_cap", limit).
		Dur("took", time.Since(start)).
		Msg("roster built")
	return team
}

// templates written without a reputation start mid-table
func reputationOrDefault(r float64) float64 {
	if r <= 0 {
		return 1.0
	}
	return r
}

// BuildLeague builds every template sequentially, preserving order.
func (b *Builder) BuildLeague(templates []ClubTemplate) []model.Team {
	teams := make([]model.Team, 0, len(templates))
	for _, tpl := range templates {
		teams = append(teams, b.Build(tpl))
	}
	return teams
}

// ParallelOptions configures BuildLeagueParallel.
type ParallelOptions struct {
	Seed       int64
	Workers    int
	Pools      *names.Pools
	HomeNation string
}

// BuildLeagueParallel builds each club on its own goroutine with an independent
// random stream seeded from opts.Seed and the club's index. For a fixed seed every
// generated attribute is independent of scheduling; only the uuids differ.
func BuildLeagueParallel(templates []ClubTemplate, opts ParallelOptions, logger zerolog.Logger) []model.Team {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	if opts.Pools == nil {
		opts.Pools = names.Default()
	}

	teams := make([]model.Team, len(templates))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				src, _ := random.New(opts.Seed + int64(i) + 1)
				f := factory.New(src, opts.Pools, opts.HomeNation, logger)
				teams[i] = NewBuilder(f, logger).Build(templates[i])
			}
		}()
	}
	for i := range templates {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return teams
}
