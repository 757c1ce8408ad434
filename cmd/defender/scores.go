package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/space-defender/internal/defender"
	"github.com/vovakirdan/space-defender/internal/platform/tui"
	"github.com/vovakirdan/space-defender/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top Space Defender runs.

Examples:
  defender scores
  defender scores --limit 25
  defender scores -i        # Browse in the interactive scoreboard
  defender scores --clear   # Delete every recorded run`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database: %v", err)
	}
	defer store.Close() //nolint:errcheck

	switch {
	case flagClear:
		if err := store.ClearScores(defender.GameID); err != nil {
			fatal("clearing scores: %v", err)
		}
		fmt.Println("All scores cleared.")
		return

	case flagInteractive:
		rt := runtimeConfig()
		if err := tui.RunScoreboard(store, rt.ScreenW, rt.ScreenH); err != nil {
			fatal("%v", err)
		}
		return
	}

	if err := printScores(store, flagLimit); err != nil {
		fatal("%v", err)
	}
}

// printScores writes the top runs as a plain table.
func printScores(store *storage.Store, limit int) error {
	scores, err := store.TopScores(defender.GameID, limit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Space Defender")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'defender play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "Rank", "Score", "Level", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-16s  %s\n", "----", "-----", "-----", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-5d  %-16s  %s\n",
			i+1, entry.Score, entry.Level, player, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, statsErr := store.GetGameStats(defender.GameID); statsErr == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d   Best: %d   Average: %.0f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	}
	return nil
}
