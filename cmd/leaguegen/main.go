package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/ardakvanc11/fmtest-sub003/internal/config"
	"github.com/ardakvanc11/fmtest-sub003/internal/finance"
	"github.com/ardakvanc11/fmtest-sub003/internal/invariant"
	"github.com/ardakvanc11/fmtest-sub003/internal/logger"
	"github.com/ardakvanc11/fmtest-sub003/internal/model"
	"github.com/ardakvanc11/fmtest-sub003/internal/odds"
	"github.com/ardakvanc11/fmtest-sub003/internal/random"
	"github.com/ardakvanc11/fmtest-sub003/internal/reputation"
	"github.com/ardakvanc11/fmtest-sub003/internal/save"
	"github.com/ardakvanc11/fmtest-sub003/internal/squad"
	"github.com/ardakvanc11/fmtest-sub003/internal/wage"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	out := flag.String("out", "", "write the generated league snapshot to this file")
	managerName := flag.String("manager", "", "manager name; the manager takes over the first club")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	templates, err := loadTemplates(cfg.Simulation.Templates)
	if err != nil {
		appLogger.Fatal().Err(err).Str("path", cfg.Simulation.Templates).Msg("club templates")
	}

	_, seed := random.New(cfg.Simulation.Seed)
	appLogger.Info().Int64("seed", seed).Int("clubs", len(templates)).Msg("🚀 Generating league")

	teams := squad.BuildLeagueParallel(templates, squad.ParallelOptions{
		Seed:       seed,
		Workers:    cfg.Simulation.Workers,
		HomeNation: cfg.Simulation.HomeNation,
	}, appLogger)

	if err := invariant.League(teams); err != nil {
		for _, fe := range invariant.FieldErrors(err) {
			appLogger.Error().Str("field", fe.Field).Str("reason", fe.Message).Msg("invariant violated")
		}
		appLogger.Fatal().Err(err).Msg("generated league is inconsistent")
	}

	var manager *model.ManagerProfile
	if *managerName != "" && len(teams) > 0 {
		manager = &model.ManagerProfile{
			Name:     *managerName,
			Contract: model.ManagerContract{TeamID: teams[0].ID},
		}
		reputation.RefreshManagerPower(manager)
		appLogger.Info().Str("manager", manager.Name).Int("power", manager.Power).Str("club", teams[0].Name).Msg("manager appointed")
	}

	report(appLogger, cfg.Simulation, teams, manager)

	if *out != "" {
		data, err := save.Encode(save.Snapshot{Teams: teams, Manager: manager})
		if err != nil {
			appLogger.Fatal().Err(err).Msg("encode snapshot")
		}
		if err := os.WriteFile(*out, data, 0o644); err != nil {
			appLogger.Fatal().Err(err).Str("path", *out).Msg("write snapshot")
		}
		appLogger.Info().Str("path", *out).Msg("✅ Snapshot written")
	}
}

func loadTemplates(path string) ([]squad.ClubTemplate, error) {
	if path == "" {
		return squad.DefaultTemplates(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return squad.ParseTemplates(data)
}

// report logs each club's opening-month picture and the first round's prices.
func report(l zerolog.Logger, sim config.SimulationConfig, teams []model.Team, manager *model.ManagerProfile) {
	for i := range teams {
		t := &teams[i]
		flow := finance.Monthly(finance.Input{
			Team:           t,
			Year:           sim.Season,
			Month:          time.August,
			Matches:        4,
			HomeMatches:    2,
			HomeNation:     sim.HomeNation,
			Manager:        manager,
			IsManagersClub: manager != nil && manager.Contract.TeamID == t.ID,
		})
		l.Info().
			Str("club", t.Name).
			Int("strength", t.Strength).
			Float64("raw", t.RawStrength).
			Float64("wage_bill", wage.Total(t.Players, sim.HomeNation)).
			Float64("august_net", flow.Net).
			Msg("club ready")
	}

	for i := 0; i+1 < len(teams); i += 2 {
		home, away := teams[i], teams[i+1]
		o := odds.Calculate(float64(home.Strength), float64(away.Strength))
		l.Info().
			Str("home", home.Name).
			Str("away", away.Name).
			Float64("1", o.Home).
			Float64("X", o.Draw).
			Float64("2", o.Away).
			Msg("opening fixture")
	}
}
