package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-quest/internal/storage"
)

var flagLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores of finished runs.

Examples:
  junglequest scores
  junglequest scores --limit 25`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	var stats *storage.Stats
	if len(scores) > 0 {
		// Stats are a nicety; the listing works without them
		stats, _ = store.GetStats()
	}

	printScores(os.Stdout, scores, stats)
	return nil
}

func printScores(w io.Writer, scores []storage.ScoreEntry, stats *storage.Stats) {
	fmt.Fprintln(w, "High Scores - Jungle Quest")
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 'junglequest play' to set the first high score!")
		return
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-14s  %-8s  %-5s  %-7s  %-6s  %s\n", "Rank", "Player", "Score", "Level", "Bananas", "Result", "Date")
	fmt.Fprintf(w, "  %-4s  %-14s  %-8s  %-5s  %-7s  %-6s  %s\n", "----", "------", "-----", "-----", "-------", "------", "----")

	for i, e := range scores {
		result := "lost"
		if e.Won {
			result = "won"
		}
		fmt.Fprintf(w, "  %-4d  %-14s  %-8d  %-5d  %-7d  %-6s  %s\n",
			i+1, e.Player, e.Score, e.Level, e.Bananas, result, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best: %d  Runs: %d  Wins: %d  Average: %.0f\n", stats.HighScore, stats.Runs, stats.Wins, stats.AvgScore)
	}
}
