package solver

import "time"

// Defaults applied by withDefaults for zero-valued knobs.
const (
	DefaultEarlyThreshold = 8 * 60  // 08:00
	DefaultLateThreshold  = 18 * 60 // 18:00
	DefaultMaxDailyLoad   = 4
	DefaultMaxSteps       = 200_000
	DefaultTimeout        = 30 * time.Second
)

// Config tunes domain filtering, soft-constraint scoring and the search
// budget. The zero value is usable: unset knobs fall back to defaults
// rather than failing.
type Config struct {
	// EarliestStart and LatestEnd define a hard scheduling window in
	// minutes from midnight. Slots outside the window are removed from
	// every domain. Zero disables the corresponding bound.
	EarliestStart int `mapstructure:"earliest_start"`
	LatestEnd     int `mapstructure:"latest_end"`

	// Soft thresholds: assignments starting before EarlyPenaltyBefore or
	// ending after LatePenaltyAfter accrue penalty but are never rejected.
	EarlyPenaltyBefore int `mapstructure:"early_penalty_before"`
	LatePenaltyAfter   int `mapstructure:"late_penalty_after"`

	// MaxDailyLoad is the same-day class count per section (and per
	// instructor) above which the overload penalty applies.
	MaxDailyLoad int `mapstructure:"max_daily_load"`

	// PenalizeBackToBack penalizes candidates adjacent to an existing
	// same-day assignment of the section or instructor.
	PenalizeBackToBack bool `mapstructure:"penalize_back_to_back"`

	EarlyWeight      int `mapstructure:"early_weight"`
	LateWeight       int `mapstructure:"late_weight"`
	OverloadWeight   int `mapstructure:"overload_weight"`
	BackToBackWeight int `mapstructure:"back_to_back_weight"`

	// MaxSteps bounds search tree nodes visited; Timeout bounds wall-clock
	// search time. Hitting either aborts with OutcomeBudgetExceeded.
	MaxSteps uint64        `mapstructure:"max_steps"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{}.withDefaults()
}

func (cfg Config) withDefaults() Config {
	if cfg.EarlyPenaltyBefore == 0 {
		cfg.EarlyPenaltyBefore = DefaultEarlyThreshold
	}
	if cfg.LatePenaltyAfter == 0 {
		cfg.LatePenaltyAfter = DefaultLateThreshold
	}
	if cfg.MaxDailyLoad == 0 {
		cfg.MaxDailyLoad = DefaultMaxDailyLoad
	}
	if cfg.EarlyWeight == 0 {
		cfg.EarlyWeight = 1
	}
	if cfg.LateWeight == 0 {
		cfg.LateWeight = 1
	}
	if cfg.OverloadWeight == 0 {
		cfg.OverloadWeight = 1
	}
	if cfg.BackToBackWeight == 0 {
		cfg.BackToBackWeight = 1
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	return cfg
}
