// Package config loads runtime configuration from an optional YAML file,
// the environment (COURSETABLE_* variables) and a local .env file. Every
// knob has a documented default; an absent file or unset key falls back
// rather than failing.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/csit-dept/coursetable/internal/catalog"
	"github.com/csit-dept/coursetable/internal/solver"
)

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Solver SolverConfig `mapstructure:"solver"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SolverConfig mirrors solver.Config with clock thresholds expressed as
// "HH:MM" strings, the way they read in a config file. Empty clock values
// leave the corresponding knob at its default.
type SolverConfig struct {
	EarliestStart      string        `mapstructure:"earliest_start"`
	LatestEnd          string        `mapstructure:"latest_end"`
	EarlyPenaltyBefore string        `mapstructure:"early_penalty_before"`
	LatePenaltyAfter   string        `mapstructure:"late_penalty_after"`
	MaxDailyLoad       int           `mapstructure:"max_daily_load"`
	PenalizeBackToBack bool          `mapstructure:"penalize_back_to_back"`
	EarlyWeight        int           `mapstructure:"early_weight"`
	LateWeight         int           `mapstructure:"late_weight"`
	OverloadWeight     int           `mapstructure:"overload_weight"`
	BackToBackWeight   int           `mapstructure:"back_to_back_weight"`
	MaxSteps           uint64        `mapstructure:"max_steps"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// Load reads configuration from path (or ./coursetable.yaml when path is
// empty) with environment overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("coursetable")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix("COURSETABLE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// A missing default config file is fine; an explicit path is not.
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return &cfg, nil
}

// SolverConfig converts the clock-string thresholds into the solver's
// minute-of-day representation.
func (c *Config) SolverConfig() (solver.Config, error) {
	cfg := solver.Config{
		MaxDailyLoad:       c.Solver.MaxDailyLoad,
		PenalizeBackToBack: c.Solver.PenalizeBackToBack,
		EarlyWeight:        c.Solver.EarlyWeight,
		LateWeight:         c.Solver.LateWeight,
		OverloadWeight:     c.Solver.OverloadWeight,
		BackToBackWeight:   c.Solver.BackToBackWeight,
		MaxSteps:           c.Solver.MaxSteps,
		Timeout:            c.Solver.Timeout,
	}

	for _, clock := range []struct {
		value  string
		target *int
		name   string
	}{
		{c.Solver.EarliestStart, &cfg.EarliestStart, "earliest_start"},
		{c.Solver.LatestEnd, &cfg.LatestEnd, "latest_end"},
		{c.Solver.EarlyPenaltyBefore, &cfg.EarlyPenaltyBefore, "early_penalty_before"},
		{c.Solver.LatePenaltyAfter, &cfg.LatePenaltyAfter, "late_penalty_after"},
	} {
		if clock.value == "" {
			continue
		}
		minutes, err := catalog.ParseClock(clock.value)
		if err != nil {
			return solver.Config{}, fmt.Errorf("%s: %w", clock.name, err)
		}
		*clock.target = minutes
	}

	return cfg, nil
}
