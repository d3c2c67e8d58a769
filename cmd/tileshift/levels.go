package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tileshift/internal/games/tileshift"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/board"
	"github.com/vovakirdan/tileshift/internal/games/tileshift/levels"
)

var (
	flagGenCount  int
	flagGenMarks  int
	flagGenLines  int
	flagGenSpare  int
	flagGenWrong  float64
	flagGenNumber int
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Inspect, check and generate level files",
}

var levelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaign levels",
	Long: `List the campaign levels in play order. Uses the built-in campaign
unless --levels or levels.dir in the config points elsewhere.`,
	Args: cobra.NoArgs,
	Run:  runLevelsList,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check [dir]",
	Short: "Validate and solve every level",
	Long: `Load every level file and verify that it can be won.

Any invalid file fails the whole check, the same way the game refuses
to start. Without a directory the configured campaign is checked.

Examples:
  tileshift levels check
  tileshift levels check ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLevelsCheck,
}

var levelsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Print random solvable levels as YAML",
	Long: `Generate random solvable levels and print them as YAML documents.
Use --seed for reproducible output.

Examples:
  tileshift levels generate --count 3 --seed 42
  tileshift levels generate --marks 4 --spare 1 > lvl20.yaml`,
	Args: cobra.NoArgs,
	Run:  runLevelsGenerate,
}

func init() {
	defaults := levels.DefaultGenParams()
	levelsGenerateCmd.Flags().IntVar(&flagGenCount, "count", 1, "Number of levels")
	levelsGenerateCmd.Flags().IntVar(&flagGenNumber, "number", 1, "Number of the first level")
	levelsGenerateCmd.Flags().IntVar(&flagGenMarks, "marks", defaults.MaxMarks, "Maximum marks needed")
	levelsGenerateCmd.Flags().IntVar(&flagGenLines, "lines", defaults.MaxLines, "Maximum full lines in the target")
	levelsGenerateCmd.Flags().IntVar(&flagGenSpare, "spare", defaults.SpareMoves, "Spare marks (par)")
	levelsGenerateCmd.Flags().Float64Var(&flagGenWrong, "wrong", defaults.WrongMarks, "Chance of a misleading starting mark")

	levelsCmd.AddCommand(levelsListCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
	levelsCmd.AddCommand(levelsGenerateCmd)
}

func runLevelsList(_ *cobra.Command, _ []string) {
	configureGame()

	lvls, err := tileshift.CampaignLevels()
	if err != nil {
		logger.Fatal("cannot load campaign", "error", err)
	}

	fmt.Printf("  %-4s  %-8s  %-18s  %-5s  %s\n", "No.", "ID", "Name", "Marks", "Spare")
	fmt.Printf("  %-4s  %-8s  %-18s  %-5s  %s\n", "---", "--", "----", "-----", "-----")
	for _, l := range lvls {
		fmt.Printf("  %-4d  %-8s  %-18s  %-5d  %d\n", l.Number, l.ID, l.Name, l.MoveBudget+l.InitialMarks(), l.Par)
	}
}

func runLevelsCheck(_ *cobra.Command, args []string) {
	configureGame()

	var (
		lvls []levels.Level
		err  error
	)
	if len(args) == 1 {
		lvls, err = tileshift.LoaderFor(args[0]).LoadAll()
	} else {
		lvls, err = tileshift.CampaignLevels()
	}
	if err != nil {
		logger.Fatal("level check failed", "error", err)
	}

	failed := 0
	for _, l := range lvls {
		name := l.FilePath
		if name == "" {
			name = l.ID
		}

		sol, ok := board.Solve(l.LevelState)
		switch {
		case !ok:
			failed++
			fmt.Printf("FAIL  %-24s no winning layout\n", name)
		case sol.Changes == 0:
			fmt.Printf("WARN  %-24s already won without any mark\n", name)
		default:
			fmt.Printf("ok    %-24s %d request(s)\n", name, sol.Changes)
		}
	}

	fmt.Println()
	fmt.Printf("%d level(s), %d unsolvable\n", len(lvls), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

func runLevelsGenerate(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	params := levels.DefaultGenParams()
	params.MaxMarks = flagGenMarks
	params.MaxLines = flagGenLines
	params.SpareMoves = flagGenSpare
	params.WrongMarks = flagGenWrong

	gen := levels.NewGenerator(seed, params)
	for i := range max(flagGenCount, 1) {
		lvl, err := gen.Generate(flagGenNumber + i)
		if err != nil {
			logger.Fatal("generation failed", "error", err)
		}
		data, err := levels.MarshalYAML(lvl.LevelState)
		if err != nil {
			logger.Fatal("cannot encode level", "id", lvl.ID, "error", err)
		}
		if i > 0 {
			fmt.Println("---")
		}
		fmt.Print(string(data))
	}
}
