package threes

import "github.com/vovakirdan/tui-threes/internal/config"

// Rand is the randomness a Board draws from.
// *math/rand.Rand satisfies it; tests pass a seeded one.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// basicSet is the composition of one basic supply bag.
var basicSet = [...]uint32{1, 1, 1, 1, 2, 2, 2, 2, 3, 3, 3, 3}

// Rules holds the tuning constants of tile supply.
type Rules struct {
	StartTiles     int    // Tiles placed on a fresh board
	BonusOdds      int    // 1 in BonusOdds chance of a bonus draw
	BonusThreshold uint32 // High card needed before bonus draws happen
	BonusDivisor   uint32 // Largest bonus candidate is high card / BonusDivisor
}

// DefaultRules returns the standard Threes tuning.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultThreesConfig().Rules)
}

// RulesFromConfig converts loaded configuration into engine rules.
func RulesFromConfig(cfg config.RulesConfig) Rules {
	return Rules{
		StartTiles:     cfg.StartTiles,
		BonusOdds:      cfg.BonusOdds,
		BonusThreshold: cfg.BonusThreshold,
		BonusDivisor:   cfg.BonusDivisor,
	}
}

// BasicSupply returns a freshly shuffled bag of four 1s, four 2s and four 3s.
func BasicSupply(rng Rand) []uint32 {
	bag := make([]uint32, len(basicSet))
	copy(bag, basicSet[:])
	rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// BonusSupply returns the shuffled bonus candidates for a high card:
// highCard/divisor, halved repeatedly while the value stays above 3.
// The result is empty when highCard/divisor is 3 or less.
func (r Rules) BonusSupply(rng Rand, highCard uint32) []uint32 {
	var bag []uint32
	if r.BonusDivisor == 0 {
		return bag
	}
	for v := highCard / r.BonusDivisor; v > 3; v /= 2 {
		bag = append(bag, v)
	}
	rng.Shuffle(len(bag), func(i, j int) {
		bag[i], bag[j] = bag[j], bag[i]
	})
	return bag
}

// bonusEligible reports whether the high card unlocks bonus draws.
func (r Rules) bonusEligible(highCard uint32) bool {
	return r.BonusOdds > 0 && highCard >= r.BonusThreshold
}

// pop removes and returns the last value of a bag.
func pop(bag []uint32) (uint32, []uint32) {
	n := len(bag) - 1
	return bag[n], bag[:n]
}
