package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/model"
	"github.com/hvasconcelos/horas/internal/storage"
	"github.com/hvasconcelos/horas/internal/timecalc"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the work timer",
	Args:  cobra.NoArgs,
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	now := time.Now()

	_, store, _, err := loadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	// Check for an existing running timer and auto-stop it.
	open, err := store.FindOpen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if open != nil {
		fmt.Fprintf(os.Stderr, "Warning: auto-stopping timer running since %s\n",
			open.StartTime.Format("15:04:05"))
		if _, err := closeEntry(store, open, now); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	entry, err := store.Save(model.Entry{
		Date:      timecalc.LocalDate(now),
		StartTime: now,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Started timer at %s (entry %s)\n", now.Format("15:04:05"), entry.ID)
	return nil
}

// closeEntry stamps the clock-out on a running entry. The persisted minutes
// come from the wall-clock timestamps, never from any display counter.
func closeEntry(store *storage.Store, entry *model.Entry, stopTime time.Time) (int, error) {
	minutes := timecalc.Minutes(entry.StartTime, stopTime)
	end := stopTime
	err := store.Update(entry.ID, storage.Patch{
		EndTime:      &end,
		TotalMinutes: &minutes,
	})
	return minutes, err
}
