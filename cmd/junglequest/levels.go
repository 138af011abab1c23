package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-quest/internal/jungle"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long:  `Shows every level with its goal.`,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	printLevels(os.Stdout, jungle.Levels())
	return nil
}

func printLevels(w io.Writer, levels []jungle.LevelInfo) {
	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, l := range levels {
		maxNameLen = max(maxNameLen, len(l.Name))
	}

	fmt.Fprintln(w, "Levels:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-2s  %-*s  %s\n", "#", maxNameLen, "Name", "Goal")
	fmt.Fprintf(w, "  %-2s  %-*s  %s\n", "-", maxNameLen, "----", "----")

	for _, l := range levels {
		fmt.Fprintf(w, "  %-2d  %-*s  %s\n", l.Number, maxNameLen, l.Name, l.Goal)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'junglequest play --level <n>' to start on a level.")
}
