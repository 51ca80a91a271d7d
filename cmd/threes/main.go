// threes plays the sliding-tile puzzle Threes in the terminal.
//
// Usage:
//
//	threes                   - Play in the full-screen TUI
//	threes play              - Same as above
//	threes terminal          - Line mode: type W, A, S or D and press enter
//	threes config            - Print the effective configuration
//
// Global flags:
//
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Load rules from a custom YAML file
//	--verbose        - Log debug output to stderr
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-threes/internal/config"
)

var (
	// Global flags
	flagSeed    int64
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.Kitchen,
	Prefix:          "threes",
})

const rulesText = `How to play:
Slide the board with W, A, S and D (or the arrow keys) to move tiles
up, left, down or right.

Rules:
- A move shifts every tile that can go one step in that direction
- A 1 tile collides with a 2 tile to make a 3 tile
- Tiles above 2 with the same value join into one tile of double the value,
  e.g. two 6 tiles make one 12 tile
- After every move the next card joins the board on the edge you moved away from
- The game ends when no move can change the board

Scoring:
A 3 is worth 3 points and every doubling triples the value,
so a 6 scores 9, a 12 scores 27 and a 48 scores 243.`

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("threes failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "threes",
	Short: "Threes - slide and combine numbered tiles in your terminal",
	Long: `A terminal version of the popular mobile game, Threes.

` + rulesText + `

Available commands:
  play      - Full-screen game (default)
  terminal  - Line mode, one command per line
  config    - Print the effective configuration

Examples:
  threes
  threes play --seed 42
  threes terminal
  threes config --config ./my-threes.yaml`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom rules config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(terminalCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig resolves the rules config and logs where it came from.
func loadConfig() (config.ThreesConfig, error) {
	cfg, src, err := config.LoadThrees(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("config loaded", "source", src, "start_tiles", cfg.Rules.StartTiles, "bonus_odds", cfg.Rules.BonusOdds)
	return cfg, nil
}

// resolveSeed returns the seed flag or a time-based seed, logging the
// result so a game can be replayed.
func resolveSeed() int64 {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("using seed", "seed", seed)
	return seed
}
