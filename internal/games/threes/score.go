package threes

// TileScore returns the score contribution of a single tile.
// 1s, 2s and empty cells are worth nothing; 3·2^(c-1) is worth 3^c.
func TileScore(v uint32) int {
	if v < 3 {
		return 0
	}
	score := 3
	for t := uint32(3); t < v; t *= 2 {
		score *= 3
	}
	return score
}

// Score sums the tile scores of the whole grid.
func Score(grid Grid) int {
	total := 0
	for row := range BoardSize {
		for col := range BoardSize {
			total += TileScore(grid[row][col])
		}
	}
	return total
}
