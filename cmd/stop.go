package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/timecalc"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the currently running timer",
	Args:  cobra.NoArgs,
	RunE:  runStop,
}

func runStop(cmd *cobra.Command, args []string) error {
	now := time.Now()

	cfg, store, fmtr, err := loadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	open, err := store.FindOpen()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if open == nil {
		fmt.Fprintln(os.Stderr, "No running timer to stop.")
		os.Exit(1)
	}

	minutes, err := closeEntry(store, open, now)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Stopped timer. Worked %s (%s)\n",
		timecalc.FormatHHMM(minutes),
		fmtr.Currency(timecalc.Billing(minutes, cfg.HourlyRate)))
	return nil
}
