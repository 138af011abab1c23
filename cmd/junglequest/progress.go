package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jungle-quest/internal/storage"
)

var (
	flagSlot  string
	flagClear bool
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show or clear save slots",
	Long: `Show the saved run of a slot, or every slot when --slot is omitted.
Local play saves into the "default" slot; SSH players save under their user name.

Examples:
  junglequest progress
  junglequest progress --slot alice
  junglequest progress --slot default --clear`,
	RunE: runProgress,
}

func init() {
	progressCmd.Flags().StringVar(&flagSlot, "slot", "", "Save slot name")
	progressCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the slot's saved progress")
}

func runProgress(_ *cobra.Command, _ []string) error {
	if flagClear && flagSlot == "" {
		return errors.New("--clear needs --slot")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearProgress(flagSlot); err != nil {
			return err
		}
		fmt.Printf("Cleared slot %q.\n", flagSlot)
		return nil

	case flagSlot != "":
		p, err := store.LoadProgress(flagSlot)
		if errors.Is(err, storage.ErrNoProgress) {
			fmt.Printf("Slot %q has no saved progress.\n", flagSlot)
			return nil
		}
		if err != nil {
			return err
		}
		printSlots(os.Stdout, []storage.SlotInfo{{Slot: flagSlot, Progress: p}})
		return nil
	}

	slots, err := store.Slots()
	if err != nil {
		return err
	}
	printSlots(os.Stdout, slots)
	return nil
}

func printSlots(w io.Writer, slots []storage.SlotInfo) {
	if len(slots) == 0 {
		fmt.Fprintln(w, "No saved progress.")
		return
	}

	fmt.Fprintf(w, "  %-14s  %-5s  %-8s  %-5s  %-7s  %-4s  %s\n", "Slot", "Level", "Score", "Lives", "Bananas", "Keys", "Saved")
	fmt.Fprintf(w, "  %-14s  %-5s  %-8s  %-5s  %-7s  %-4s  %s\n", "----", "-----", "-----", "-----", "-------", "----", "-----")

	for _, s := range slots {
		saved := "-"
		if !s.UpdatedAt.IsZero() {
			saved = s.UpdatedAt.Format("2006-01-02 15:04")
		}
		p := s.Progress
		fmt.Fprintf(w, "  %-14s  %-5d  %-8d  %-5d  %-7d  %-4d  %s\n",
			s.Slot, p.Level, p.Score, p.Lives, p.Bananas, p.Keys, saved)
	}
}
