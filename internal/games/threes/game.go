package threes

import (
	"math/rand"

	"github.com/vovakirdan/tui-threes/internal/config"
	"github.com/vovakirdan/tui-threes/internal/core"
	"github.com/vovakirdan/tui-threes/internal/registry"
)

// GameID is the registry identifier of the game.
const GameID = "threes"

// Status messages shown under the board.
const (
	StatusInvalidMove = "Invalid move"
	StatusGameOver    = "Game over!"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path used by games created from the registry.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Board to the platform's tick-driven Game interface.
type Game struct {
	cfg    config.ThreesConfig
	custom *config.ThreesConfig // Overrides file-based config when set
	rng    *rand.Rand
	board  *Board
	tick   uint64

	moves    int // Successful moves
	rejected int // Moves that changed nothing
	status   string

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// New creates a game that loads its config from the configured path.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with a fixed configuration.
func NewWithConfig(cfg config.ThreesConfig) *Game {
	return &Game{custom: &cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Threes"
}

// Reset starts a new game, replacing the board wholly.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.board = NewBoardWithRules(g.rng, RulesFromConfig(g.cfg.Rules))
	g.tick = 0
	g.moves = 0
	g.rejected = 0
	g.status = ""
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = !g.board.HasMoves()
	g.paused = false

	g.checkScreenSize()
}

// loadConfig returns the fixed config, or the file-based one.
func (g *Game) loadConfig() config.ThreesConfig {
	if g.custom != nil {
		return *g.custom
	}
	cfg, _, err := config.LoadThrees(configPath)
	if err != nil {
		// The CLI reports config errors before a game is created
		return config.DefaultThreesConfig()
	}
	return cfg
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Resize adapts to a new screen size without touching the board.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// Board returns the underlying board.
func (g *Game) Board() *Board {
	return g.board
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	// Restart is handled by the platform calling Reset
	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if dir, ok := directionFor(in); ok {
		g.processMove(dir)
	}

	return core.StepResult{State: g.State()}
}

// directionFor picks the move requested by an input frame.
func directionFor(in core.InputFrame) (Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return DirUp, true
	case in.Has(core.ActionDown):
		return DirDown, true
	case in.Has(core.ActionLeft):
		return DirLeft, true
	case in.Has(core.ActionRight):
		return DirRight, true
	}
	return 0, false
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) {
	if !g.board.Move(dir) {
		g.rejected++
		g.status = StatusInvalidMove
		return
	}

	g.moves++
	g.status = ""

	if !g.board.HasMoves() {
		g.gameOver = true
		g.status = StatusGameOver
	}
}

// Status returns the message shown under the board, if any.
func (g *Game) Status() string {
	return g.status
}

// State returns the current game state.
// The score is only reported once the game is over.
func (g *Game) State() core.GameState {
	score := 0
	if g.gameOver {
		score = g.board.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
