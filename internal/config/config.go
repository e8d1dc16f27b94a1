package config

import (
	"github.com/ardakvanc11/fmtest-sub003/internal/logger"
)

type Config struct {
	Logger     logger.LoggerConfig `mapstructure:"logger"`
	Simulation SimulationConfig    `mapstructure:"simulation"`
}

// SimulationConfig drives league generation. Seed 0 picks a time-based seed.
type SimulationConfig struct {
	Seed       int64  `mapstructure:"seed"`
	HomeNation string `mapstructure:"home_nation" validate:"required"`
	Season     int    `mapstructure:"season" validate:"min=1900"`
	Workers    int    `mapstructure:"workers" validate:"min=0"`
	Templates  string `mapstructure:"templates"` // optional club template file; empty uses the built-in league
}
