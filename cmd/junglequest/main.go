// junglequest is a terminal platformer: run, jump and bend time through four
// jungle levels.
//
// Usage:
//
//	junglequest                 - Open the main menu
//	junglequest play            - Start playing right away
//	junglequest menu            - Open the main menu
//	junglequest levels          - List the levels
//	junglequest scores          - Show high scores
//	junglequest progress        - Show or clear save slots
//	junglequest serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.junglequest/jungle.db)
//	--log-file <path>    - Set log file for local play
//	--config <path>      - Use a custom tuning file
//	--difficulty <name>  - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagLogFile    string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "junglequest",
	Short: "Jungle Quest - a time-bending platformer in your terminal",
	Long: `Jungle Quest is a terminal platformer. Collect bananas and keys, spend
quantum energy on scans, time jumps and entanglement, and defeat the temporal
guardian across four levels.

Available commands:
  play      - Start playing right away
  menu      - Main menu (default)
  levels    - List the levels
  scores    - View high scores
  progress  - Show or clear save slots
  serve     - Start SSH server for remote play

Examples:
  junglequest
  junglequest play --level 3 --difficulty hard
  junglequest play --continue
  junglequest serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runMenu,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.junglequest/jungle.db", "Path to save and scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.junglequest/junglequest.log", "Log file for local play")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}
