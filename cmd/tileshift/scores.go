package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileshift/internal/registry"
	"github.com/vovakirdan/tileshift/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores and level stats for a mode",
	Long: `Display the top 10 high scores and per-level statistics for the
specified mode.

Examples:
  tileshift scores tileshift
  tileshift scores tileshift_random
  tileshift scores tileshift --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores, attempts and progress of the mode")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tileshift list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("cannot create game", "game", gameID, "error", err)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("cannot open scores database", "error", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			logger.Error("cannot clear scores", "error", err)
			return
		}
		fmt.Printf("Cleared all records of %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		logger.Error("cannot retrieve scores", "error", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tileshift play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, err := store.GetGameStats(gameID); err == nil {
			fmt.Println()
			fmt.Printf("Best: %d  Games: %d  Average: %.0f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
		}
	}

	printLevelStats(store, gameID)
}

func printLevelStats(store *storage.Store, gameID string) {
	stats, err := store.LevelStats(gameID)
	if err != nil {
		logger.Error("cannot retrieve level stats", "error", err)
		return
	}
	if len(stats) == 0 {
		return
	}

	progress, err := store.Progress(gameID)
	if err != nil {
		logger.Warn("cannot read progress", "error", err)
	}

	fmt.Println()
	fmt.Printf("Levels - furthest cleared: %d\n", progress)
	fmt.Println()
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "No.", "Level", "Tries", "Wins", "Fewest marks")
	fmt.Printf("  %-4s  %-10s  %-6s  %-5s  %s\n", "---", "-----", "-----", "----", "------------")
	for _, s := range stats {
		best := "-"
		if s.BestMarks >= 0 {
			best = fmt.Sprint(s.BestMarks)
		}
		fmt.Printf("  %-4d  %-10s  %-6d  %-5d  %s\n", s.Number, s.LevelID, s.Attempts, s.Wins, best)
	}
}
