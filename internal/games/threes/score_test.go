package threes

import "testing"

func TestTileScore(t *testing.T) {
	tests := []struct {
		value uint32
		want  int
	}{
		{0, 0},
		{1, 0},
		{2, 0},
		{3, 3},
		{6, 9},
		{12, 27},
		{24, 81},
		{48, 243},
		{768, 19683},
	}

	for _, tt := range tests {
		if got := TileScore(tt.value); got != tt.want {
			t.Errorf("TileScore(%d) = %d, want %d", tt.value, got, tt.want)
		}
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want int
	}{
		{
			name: "ones and twos",
			grid: Grid{
				{1, 2, 1, 2},
				{2, 1, 2, 1},
				{1, 1, 2, 2},
				{2, 2, 1, 1},
			},
			want: 0,
		},
		{
			name: "low tiles",
			grid: Grid{
				{3, 6, 3, 2},
				{2, 3, 6, 3},
				{3, 12, 1, 6},
				{12, 48, 6, 3},
			},
			want: 351,
		},
		{
			name: "mid game",
			grid: Grid{
				{1, 3, 48, 1},
				{6, 2, 12, 24},
				{3, 6, 24, 2},
				{768, 384, 96, 3},
			},
			want: 27432,
		},
		{
			name: "late game",
			grid: Grid{
				{2, 3, 96, 3},
				{12, 6, 48, 2},
				{6, 48, 24, 6},
				{1536, 768, 384, 192},
			},
			want: 88836,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(tt.grid); got != tt.want {
				t.Errorf("Score() = %d, want %d", got, tt.want)
			}
		})
	}
}
