package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// defaults apply before the file and the APP_* environment are read
var defaults = map[string]any{
	"simulation.seed":        0,
	"simulation.home_nation": "Türkiye",
	"simulation.season":      2025,
	"simulation.workers":     0,
	"simulation.templates":   "",
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	for k, val := range defaults {
		v.SetDefault(k, val)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config file not found: %w", err)
	}
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := validator.New().Struct(config.Simulation); err != nil {
		return nil, fmt.Errorf("invalid simulation config: %w", err)
	}
	return &config, nil
}
