package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/export"
)

var (
	exportMonth int
	exportYear  int
	exportOut   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a month's entries to a CSV file",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().IntVar(&exportMonth, "month", 0, "Month 1-12 (default: current)")
	exportCmd.Flags().IntVar(&exportYear, "year", 0, "Year (default: current)")
	exportCmd.Flags().StringVar(&exportOut, "out", ".", "Directory to write the CSV into")
}

func runExport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if exportYear != 0 {
		year = exportYear
	}
	if exportMonth != 0 {
		if exportMonth < 1 || exportMonth > 12 {
			fmt.Fprintf(os.Stderr, "invalid --month value %d: must be 1-12\n", exportMonth)
			os.Exit(1)
		}
		month = time.Month(exportMonth)
	}

	_, store, _, err := loadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entries, err := store.ByMonth(year, month)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	path, err := export.WriteFile(exportOut, entries, year, month)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Printf("Exported %d entries to %s\n", len(entries), path)
	return nil
}
