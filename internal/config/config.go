// Package config provides YAML-based configuration loading for the
// Threes rules engine and its front ends.
package config

import (
	"errors"
	"fmt"
)

// ThreesConfig contains all configuration for the Threes game.
type ThreesConfig struct {
	Rules   RulesConfig   `yaml:"rules"`
	Display DisplayConfig `yaml:"display"`
}

// RulesConfig holds the gameplay tuning constants.
type RulesConfig struct {
	StartTiles     int    `yaml:"start_tiles"`     // Tiles placed on a fresh board
	BonusOdds      int    `yaml:"bonus_odds"`      // 1 in N chance of a bonus draw
	BonusThreshold uint32 `yaml:"bonus_threshold"` // High card needed before bonus draws
	BonusDivisor   uint32 `yaml:"bonus_divisor"`   // Largest bonus candidate is high card / divisor
}

// DisplayConfig controls what the front ends show next to the grid.
type DisplayConfig struct {
	ShowNext bool `yaml:"show_next"`
	ShowHigh bool `yaml:"show_high"`
}

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// maxStartTiles leaves at least one empty cell on a 4x4 grid.
const maxStartTiles = 15

// Validate checks that the rules describe a playable game.
func (c ThreesConfig) Validate() error {
	r := c.Rules
	if r.StartTiles < 1 || r.StartTiles > maxStartTiles {
		return fmt.Errorf("%w: start_tiles must be in [1,%d], got %d", ErrInvalidConfig, maxStartTiles, r.StartTiles)
	}
	if r.BonusOdds <= 0 {
		return fmt.Errorf("%w: bonus_odds must be positive, got %d", ErrInvalidConfig, r.BonusOdds)
	}
	if r.BonusDivisor == 0 {
		return fmt.Errorf("%w: bonus_divisor must be positive", ErrInvalidConfig)
	}
	return nil
}
