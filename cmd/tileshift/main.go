// tileshift is a terminal puzzle game about shifting numbered tiles until
// every row and column of a 3x3 board clears.
//
// Usage:
//
//	tileshift list              - List available modes
//	tileshift play <mode>       - Play a mode
//	tileshift menu              - Start menu to pick modes interactively
//	tileshift serve             - Start SSH server for remote play
//	tileshift scores <mode>     - Show high scores and level stats
//	tileshift levels list       - List campaign levels
//	tileshift levels check      - Validate and solve every level file
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible random puzzles
//	--db <path>      - Set database path (default: ~/.tileshift/scores.db)
//	--config <path>  - Use a custom config YAML
//	--levels <dir>   - Load campaign levels from a directory
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLevels     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "tileshift",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tileshift",
	Short: "TileShift - a 3x3 shifting puzzle for your terminal",
	Long: `TileShift is a terminal puzzle. Mark tiles to shift their values up or
down by one, then resolve: every row or column of three equal values
cascades away. Clear the whole board to win.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores and level stats
  levels   - List or check level files

Examples:
  tileshift play tileshift
  tileshift play tileshift_random --difficulty hard
  tileshift menu --levels ./my-levels
  tileshift serve --ssh :2222
  tileshift levels check ./my-levels`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tileshift/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Directory of campaign level files")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(levelsCmd)
}

// configureGame hands the global flags to the game package. It must run
// before the registry creates a game.
func configureGame() {
	preset := config.DifficultyPreset(flagDifficulty)
	switch preset {
	case "", config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
	default:
		logger.Fatal("unknown difficulty preset", "preset", flagDifficulty)
	}

	tileshift.Configure(tileshift.Settings{
		ConfigPath: flagConfig,
		LevelsDir:  flagLevels,
		Difficulty: preset,
	})
}

// preflightCampaign loads every campaign level once so a broken level file
// stops the program before the terminal switches to the alt screen.
func preflightCampaign() {
	lvls, err := tileshift.CampaignLevels()
	if err != nil {
		logger.Fatal("cannot load campaign", "error", err)
	}
	logger.Debug("campaign loaded", "levels", len(lvls))
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
