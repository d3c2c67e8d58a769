package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileshift/internal/config"
	"github.com/vovakirdan/tileshift/internal/core"
	"github.com/vovakirdan/tileshift/internal/games/tileshift"
	"github.com/vovakirdan/tileshift/internal/platform/tui"
	"github.com/vovakirdan/tileshift/internal/registry"
	"github.com/vovakirdan/tileshift/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  + or X           - Toggle a plus mark (left click)
  - or Z           - Toggle a minus mark (right click)
  Enter/Space      - Resolve, continue after a win
  ?                - Hint
  R                - Reset the attempt, retry after a loss
  P                - Pause
  B/Esc            - Back
  Q/Ctrl+C         - Quit

Difficulty options (random mode):
  easy   - Small puzzles, one spare mark
  normal - Grows harder as you solve
  hard   - Starts hard, misleading starting marks
  fixed  - No progression

Examples:
  tileshift play tileshift
  tileshift play tileshift --levels ./my-levels
  tileshift play tileshift_random --difficulty easy --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tileshift list' to see available modes.")
		os.Exit(1)
	}

	configureGame()
	cfg := runtimeConfig()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	ok, err := chooseStart(gameID, store, cfg)
	if err != nil {
		logger.Error("selector failed", "error", err)
		return
	}
	if !ok {
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("cannot create game", "game", gameID, "error", err)
		return
	}

	if _, err := tui.Run(game, store, cfg); err != nil {
		logger.Error("game failed", "game", gameID, "error", err)
	}
}

// chooseStart runs the per-mode selector before a game starts. It returns
// false when the player backed out.
func chooseStart(gameID string, store *storage.Store, cfg core.RuntimeConfig) (bool, error) {
	switch gameID {
	case tileshift.IDCampaign:
		preflightCampaign()

		sel, err := tui.RunCampaignSelector(store, cfg)
		if err != nil || sel == nil {
			return false, err
		}
		tileshift.SetStartLevel(sel.Level)

	case tileshift.IDRandom:
		if flagDifficulty != "" {
			return true, nil
		}
		current := tileshift.CurrentSettings()
		if current.Difficulty == "" {
			current.Difficulty = config.DifficultyNormal
		}
		preset, err := tui.RunDifficultySelector(current.Difficulty, cfg)
		if err != nil || preset == nil {
			return false, err
		}
		current.Difficulty = *preset
		tileshift.Configure(current)
	}
	return true, nil
}
