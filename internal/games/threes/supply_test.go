package threes

import (
	"math/rand"
	"slices"
	"testing"
)

// fixedRand always returns n from Intn and never shuffles.
type fixedRand struct{ n int }

func (r fixedRand) Intn(int) int              { return r.n }
func (fixedRand) Shuffle(int, func(i, j int)) {}

func TestBasicSupplyComposition(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		bag := BasicSupply(rand.New(rand.NewSource(seed)))
		if len(bag) != 12 {
			t.Fatalf("seed %d: len = %d, want 12", seed, len(bag))
		}

		counts := map[uint32]int{}
		for _, v := range bag {
			counts[v]++
		}
		if counts[1] != 4 || counts[2] != 4 || counts[3] != 4 || len(counts) != 3 {
			t.Errorf("seed %d: composition = %v, want four each of 1, 2, 3", seed, counts)
		}
	}
}

func TestBasicSupplyShuffles(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	first := BasicSupply(rng)
	for range 10 {
		if !slices.Equal(first, BasicSupply(rng)) {
			return
		}
	}
	t.Error("BasicSupply returned the same order eleven times in a row")
}

func TestBonusSupply(t *testing.T) {
	tests := []struct {
		highCard uint32
		want     []uint32
	}{
		{24, nil},
		{48, []uint32{6}},
		{96, []uint32{6, 12}},
		{192, []uint32{6, 12, 24}},
		{384, []uint32{6, 12, 24, 48}},
	}

	rules := DefaultRules()
	rng := rand.New(rand.NewSource(3))
	for _, tt := range tests {
		got := rules.BonusSupply(rng, tt.highCard)
		slices.Sort(got)
		if !slices.Equal(got, tt.want) {
			t.Errorf("BonusSupply(%d) = %v, want %v", tt.highCard, got, tt.want)
		}
	}
}

func TestBonusSupplyZeroDivisor(t *testing.T) {
	rules := DefaultRules()
	rules.BonusDivisor = 0
	if got := rules.BonusSupply(fixedRand{}, 384); len(got) != 0 {
		t.Errorf("BonusSupply with zero divisor = %v, want empty", got)
	}
}

func TestDefaultRules(t *testing.T) {
	want := Rules{StartTiles: 9, BonusOdds: 21, BonusThreshold: 48, BonusDivisor: 8}
	if got := DefaultRules(); got != want {
		t.Errorf("DefaultRules() = %+v, want %+v", got, want)
	}
}
