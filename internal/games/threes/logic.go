package threes

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// BoardSize is the grid dimension.
const BoardSize = 4

// Grid is the 4x4 tile matrix, indexed [row][col]. Zero is an empty cell.
type Grid [BoardSize][BoardSize]uint32

// Cell is a grid position.
type Cell struct {
	Row, Col int
}

// Collide resolves a source tile moving into a destination cell.
// Returns the value left in the destination and whether anything happened.
// An empty destination always accepts the source, even an empty one.
func Collide(dst, src uint32) (uint32, bool) {
	switch {
	case dst == 0:
		return src, true
	case dst == 1 && src == 2, dst == 2 && src == 1:
		return 3, true
	case dst == src && dst > 2:
		return dst * 2, true
	default:
		return 0, false
	}
}

// Slide performs a single sweep in the given direction.
// Only adjacent pairs are compared, leading edge first, so a merge at one
// position is visible to the next comparison in the same line.
// Returns the new grid and whether any collision occurred.
func Slide(grid Grid, dir Direction) (Grid, bool) {
	moved := false
	resolve := func(dst, src Cell) {
		v, ok := Collide(grid[dst.Row][dst.Col], grid[src.Row][src.Col])
		if !ok {
			return
		}
		grid[dst.Row][dst.Col] = v
		grid[src.Row][src.Col] = 0
		moved = true
	}

	switch dir {
	case DirUp:
		for col := range BoardSize {
			for row := 0; row < BoardSize-1; row++ {
				resolve(Cell{row, col}, Cell{row + 1, col})
			}
		}
	case DirDown:
		for col := range BoardSize {
			for row := BoardSize - 1; row > 0; row-- {
				resolve(Cell{row, col}, Cell{row - 1, col})
			}
		}
	case DirLeft:
		for row := range BoardSize {
			for col := 0; col < BoardSize-1; col++ {
				resolve(Cell{row, col}, Cell{row, col + 1})
			}
		}
	case DirRight:
		for row := range BoardSize {
			for col := BoardSize - 1; col > 0; col-- {
				resolve(Cell{row, col}, Cell{row, col - 1})
			}
		}
	}

	return grid, moved
}

// HasMoves returns true if any adjacent pair would collide in either order.
func HasMoves(grid Grid) bool {
	collides := func(a, b uint32) bool {
		_, ok := Collide(a, b)
		if ok {
			return true
		}
		_, ok = Collide(b, a)
		return ok
	}

	for row := range BoardSize {
		for col := range BoardSize {
			// Check right neighbor
			if col < BoardSize-1 && collides(grid[row][col], grid[row][col+1]) {
				return true
			}
			// Check bottom neighbor
			if row < BoardSize-1 && collides(grid[row][col], grid[row+1][col]) {
				return true
			}
		}
	}
	return false
}

// TrailingEdge returns the empty cells of the edge tiles moved away from.
func TrailingEdge(grid Grid, dir Direction) []Cell {
	var cells []Cell
	for i := range BoardSize {
		var c Cell
		switch dir {
		case DirUp:
			c = Cell{BoardSize - 1, i}
		case DirDown:
			c = Cell{0, i}
		case DirLeft:
			c = Cell{i, BoardSize - 1}
		case DirRight:
			c = Cell{i, 0}
		default:
			return nil
		}
		if grid[c.Row][c.Col] == 0 {
			cells = append(cells, c)
		}
	}
	return cells
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(grid Grid) uint32 {
	var maxVal uint32
	for row := range BoardSize {
		for col := range BoardSize {
			maxVal = max(maxVal, grid[row][col])
		}
	}
	return maxVal
}

// CountTiles returns the number of non-empty cells.
func CountTiles(grid Grid) int {
	n := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if grid[row][col] != 0 {
				n++
			}
		}
	}
	return n
}
