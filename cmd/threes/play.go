package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-threes/internal/core"
	"github.com/vovakirdan/tui-threes/internal/games/threes"
	"github.com/vovakirdan/tui-threes/internal/platform/tui"
	"github.com/vovakirdan/tui-threes/internal/registry"
)

var flagFPS int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen TUI",
	Long: `Start a game in the full-screen terminal UI.

Controls:
  Arrows/WASD  - Move
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  threes play
  threes play --seed 7
  threes play --config ./my-threes.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	// Fail early on a bad config file instead of silently using defaults
	if _, err := loadConfig(); err != nil {
		return err
	}
	threes.SetConfigPath(flagConfig)

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	rate := flagFPS
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: rate,
		Seed:     resolveSeed(),
	}

	game, err := registry.Create(threes.GameID)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	res, err := tui.Run(game, cfg)
	if err != nil {
		return fmt.Errorf("run game: %w", err)
	}

	if res.State.GameOver {
		logger.Info("game over", "score", res.State.Score, "games", res.Games)
	} else {
		logger.Debug("quit", "games", res.Games)
	}
	return nil
}
