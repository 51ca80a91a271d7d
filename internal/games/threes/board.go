package threes

// initialHighCard is the high card of a fresh board.
const initialHighCard = 3

// Board owns the grid, the tile supply and all move logic of one game.
// A Board is not safe for concurrent use.
type Board struct {
	rng   Rand
	rules Rules

	grid     Grid
	highCard uint32   // Highest tile ever placed
	nextCard uint32   // Tile placed after the next successful move
	basic    []uint32 // Consumed from the end
	bonus    []uint32 // Leftovers of the last bonus draw
}

// NewBoard creates a playable board with the default rules.
func NewBoard(rng Rand) *Board {
	return NewBoardWithRules(rng, DefaultRules())
}

// NewBoardWithRules creates a playable board: StartTiles values from a
// shuffled basic supply are dropped onto random empty cells and the next
// value becomes the next card.
func NewBoardWithRules(rng Rand, rules Rules) *Board {
	b := &Board{
		rng:      rng,
		rules:    rules,
		highCard: initialHighCard,
		basic:    BasicSupply(rng),
	}

	for placed := 0; placed < rules.StartTiles && placed < BoardSize*BoardSize; {
		row, col := rng.Intn(BoardSize), rng.Intn(BoardSize)
		if b.grid[row][col] != 0 {
			continue
		}
		b.grid[row][col] = b.drawBasic()
		placed++
	}

	b.nextCard = b.drawBasic()
	return b
}

// RestoreBoard resumes play from a known position. The basic supply
// starts full and the high card is the larger of the grid maximum and 3.
func RestoreBoard(rng Rand, rules Rules, grid Grid, nextCard uint32) *Board {
	return &Board{
		rng:      rng,
		rules:    rules,
		grid:     grid,
		highCard: max(initialHighCard, MaxTile(grid)),
		nextCard: nextCard,
		basic:    BasicSupply(rng),
	}
}

// Move applies a move in the given direction.
// Returns false, leaving the board untouched, if nothing collided.
func (b *Board) Move(dir Direction) bool {
	grid, moved := Slide(b.grid, dir)
	if !moved {
		return false
	}

	b.grid = grid
	b.highCard = max(b.highCard, MaxTile(grid))
	b.spawn(dir)
	return true
}

// MoveUp moves tiles towards the top row.
func (b *Board) MoveUp() bool { return b.Move(DirUp) }

// MoveDown moves tiles towards the bottom row.
func (b *Board) MoveDown() bool { return b.Move(DirDown) }

// MoveLeft moves tiles towards the left column.
func (b *Board) MoveLeft() bool { return b.Move(DirLeft) }

// MoveRight moves tiles towards the right column.
func (b *Board) MoveRight() bool { return b.Move(DirRight) }

// spawn places the next card on a random empty trailing-edge cell and
// draws a new next card.
func (b *Board) spawn(dir Direction) {
	cells := TrailingEdge(b.grid, dir)
	if len(cells) == 0 {
		// A collision always empties the trailing cell of its line.
		return
	}

	c := cells[b.rng.Intn(len(cells))]
	b.grid[c.Row][c.Col] = b.nextCard
	b.highCard = max(b.highCard, b.nextCard)
	b.nextCard = b.drawNext()
}

// drawNext picks the next card, occasionally from the bonus supply.
func (b *Board) drawNext() uint32 {
	if b.rules.bonusEligible(b.highCard) && b.rng.Intn(b.rules.BonusOdds) == 0 {
		b.bonus = b.rules.BonusSupply(b.rng, b.highCard)
		if len(b.bonus) > 0 {
			var v uint32
			v, b.bonus = pop(b.bonus)
			return v
		}
	}
	return b.drawBasic()
}

// drawBasic pops from the basic supply, refilling it first when empty.
func (b *Board) drawBasic() uint32 {
	if len(b.basic) == 0 {
		b.basic = BasicSupply(b.rng)
	}
	var v uint32
	v, b.basic = pop(b.basic)
	return v
}

// Grid returns a copy of the grid.
func (b *Board) Grid() Grid {
	return b.grid
}

// NextCard returns the value placed after the next successful move.
func (b *Board) NextCard() uint32 {
	return b.nextCard
}

// HighCard returns the highest tile value ever placed on the grid.
func (b *Board) HighCard() uint32 {
	return b.highCard
}

// HasMoves reports whether any move is still possible.
func (b *Board) HasMoves() bool {
	return HasMoves(b.grid)
}

// Score returns the score of the current grid.
func (b *Board) Score() int {
	return Score(b.grid)
}

// BasicRemaining returns how many values are left in the basic supply.
func (b *Board) BasicRemaining() int {
	return len(b.basic)
}

// BonusSupply returns a copy of what is left of the last bonus draw.
func (b *Board) BonusSupply() []uint32 {
	out := make([]uint32, len(b.bonus))
	copy(out, b.bonus)
	return out
}
