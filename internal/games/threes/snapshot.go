package threes

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Grid     Grid
	NextCard uint32
	HighCard uint32
	Score    int // Score of the grid as it stands
	Moves    int
	Rejected int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:     g.tick,
		Grid:     g.board.Grid(),
		NextCard: g.board.NextCard(),
		HighCard: g.board.HighCard(),
		Score:    g.board.Score(),
		Moves:    g.moves,
		Rejected: g.rejected,
		State:    state,
	}
}
