package main

import (
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-threes/internal/games/threes"
	"github.com/vovakirdan/tui-threes/internal/platform/terminal"
)

var terminalCmd = &cobra.Command{
	Use:   "terminal",
	Short: "Play in line mode",
	Long: `Play one game reading commands from standard input.

The board is printed after every move with X marking empty cells.
Enter W, A, S or D (any case) followed by enter to move.
Input ending before the game is over stops the game without a score.`,
	Args: cobra.NoArgs,
	RunE: runTerminal,
}

func runTerminal(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(resolveSeed()))
	board := threes.NewBoardWithRules(rng, threes.RulesFromConfig(cfg.Rules))

	res, err := terminal.NewSession(board, cmd.InOrStdin(), cmd.OutOrStdout(), logger).Run()
	if err != nil {
		return err
	}
	if !res.Finished {
		logger.Debug("input closed before game over", "moves", res.Moves, "score", res.Score)
	}
	return nil
}
