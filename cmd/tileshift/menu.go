package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileshift/internal/platform/tui"
	"github.com/vovakirdan/tileshift/internal/registry"
	"github.com/vovakirdan/tileshift/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start TileShift with a mode picker menu",
	Long: `Start TileShift in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press B or Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - Scores and level stats
  Q            - Quit

Examples:
  tileshift menu
  tileshift menu --fps 60
  tileshift menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset for random mode")
}

func runMenu(_ *cobra.Command, _ []string) {
	configureGame()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			logger.Error("menu failed", "error", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				logger.Error("scoreboard failed", "error", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		gameID := menuResult.GameID
		if gameID == "" {
			break
		}

		ok, selErr := chooseStart(gameID, store, cfg)
		if selErr != nil {
			logger.Error("selector failed", "error", selErr)
			continue
		}
		if !ok {
			continue
		}

		game, err := registry.Create(gameID)
		if err != nil {
			logger.Error("cannot create game", "game", gameID, "error", err)
			continue
		}

		// New seed for each run unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, store, cfg)
		if err != nil {
			logger.Error("game failed", "game", gameID, "error", err)
		}
		if !back {
			break
		}
	}

	if store != nil {
		store.Close()
	}
}
