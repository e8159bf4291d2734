package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/locale"
	"github.com/hvasconcelos/horas/internal/model"
	"github.com/hvasconcelos/horas/internal/timecalc"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's entries as paired shifts",
	Args:  cobra.NoArgs,
	RunE:  runToday,
}

func init() {
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Show a specific date (YYYY-MM-DD)")
}

func runToday(cmd *cobra.Command, args []string) error {
	date := timecalc.LocalDate(time.Now())
	if todayDate != "" {
		if _, err := locale.ParseDate(todayDate); err != nil {
			fmt.Fprintf(os.Stderr, "invalid --date value %q: %v\n", todayDate, err)
			os.Exit(1)
		}
		date = todayDate
	}

	cfg, store, fmtr, err := loadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entries, err := store.ByDate(date)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if len(entries) == 0 {
		fmt.Println("No entries for", date)
		return nil
	}

	fmt.Printf("%-12s%-10s%-10s%-10s%-10s%s\n",
		"Data", "Entrada", "Saída", "Entrada", "Saída", "Total")
	for _, row := range dayRows(entries) {
		fmt.Printf("%-12s%-10s%-10s%-10s%-10s%s\n",
			row[0], row[1], row[2], row[3], row[4], row[5])
	}

	total := timecalc.DayTotal(entries)
	fmt.Println()
	fmt.Printf("Total: %s (%.2fh) – %s\n",
		timecalc.FormatHHMM(total),
		timecalc.MinutesToHours(total),
		fmtr.Currency(timecalc.Billing(total, cfg.HourlyRate)))
	return nil
}

// dayRows renders one table row per shift pair. Missing clock-outs and
// missing second shifts show as "-".
func dayRows(entries []model.Entry) [][6]string {
	var rows [][6]string
	for _, pair := range model.Pairs(entries) {
		row := [6]string{
			dateCell(pair.First.Date),
			locale.ClockTime(pair.First.StartTime),
			clockOutCell(pair.First),
			"-",
			"-",
			timecalc.FormatHHMM(pair.TotalMinutes()),
		}
		if pair.Second != nil {
			row[3] = locale.ClockTime(pair.Second.StartTime)
			row[4] = clockOutCell(*pair.Second)
		}
		rows = append(rows, row)
	}
	return rows
}

func dateCell(date string) string {
	d, err := locale.ParseDate(date)
	if err != nil {
		return date
	}
	return locale.Date(d)
}

func clockOutCell(e model.Entry) string {
	if e.EndTime == nil {
		return "-"
	}
	return locale.ClockTime(*e.EndTime)
}
