package config

import (
	_ "embed"
)

//go:embed defaults/threes.yaml
var defaultThreesYAML []byte

// DefaultThreesConfig returns the default Threes configuration.
func DefaultThreesConfig() ThreesConfig {
	return ThreesConfig{
		Rules: RulesConfig{
			StartTiles:     9,
			BonusOdds:      21,
			BonusThreshold: 48,
			BonusDivisor:   8,
		},
		Display: DisplayConfig{
			ShowNext: true,
			ShowHigh: true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultThreesYAML
}
