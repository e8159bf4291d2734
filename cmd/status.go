package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current timer status",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	_, store, _, err := loadApp()
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
		fmt.Println("No timer running.")
	} else {
		fmt.Printf("Timer running since %s (elapsed %s)\n",
			sinceLabel(open.StartTime, now),
			timecalc.FormatClock(now.Sub(open.StartTime)))
	}

	today, err := store.ByDate(timecalc.LocalDate(now))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	fmt.Printf("Today: %s\n", timecalc.FormatHHMM(timecalc.DayTotal(today)))
	return nil
}

// sinceLabel renders a timer's start for the status line. A timer left
// running across midnight shows its full start date, not just the clock.
func sinceLabel(start, now time.Time) string {
	if timecalc.SameDay(start, now) {
		return start.Format("15:04:05")
	}
	return start.Format("2006-01-02 15:04:05")
}
