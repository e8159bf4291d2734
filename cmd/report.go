package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/locale"
	"github.com/hvasconcelos/horas/internal/timecalc"
)

var (
	reportMonth int
	reportYear  int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the monthly hours, billing and cap progress",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().IntVar(&reportMonth, "month", 0, "Month 1-12 (default: current)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "Year (default: current)")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if reportYear != 0 {
		year = reportYear
	}
	if reportMonth != 0 {
		if reportMonth < 1 || reportMonth > 12 {
			fmt.Fprintf(os.Stderr, "invalid --month value %d: must be 1-12\n", reportMonth)
			os.Exit(1)
		}
		month = time.Month(reportMonth)
	}

	cfg, store, fmtr, err := loadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	entries, err := store.ByMonth(year, month)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	minutes := timecalc.MonthTotal(entries)
	hours := timecalc.MinutesToHours(minutes)
	percent := timecalc.ProgressPercent(minutes, cfg.MonthlyCapHours)
	remaining := float64(cfg.MonthlyCapHours) - hours

	fmt.Printf("%s/%d\n", locale.MonthName(month), year)
	fmt.Println("--------------------------------")
	fmt.Printf("%-12s%s (%.2fh)\n", "Hours", timecalc.FormatHHMM(minutes), hours)
	fmt.Printf("%-12s%s\n", "Billing", fmtr.Currency(timecalc.Billing(minutes, cfg.HourlyRate)))
	fmt.Printf("%-12s%.1fh of %dh\n", "Remaining", remaining, cfg.MonthlyCapHours)
	fmt.Println("--------------------------------")
	fmt.Printf("%s %.1f%% of monthly cap\n", renderProgress(percent/100, 24), percent)
	return nil
}

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

var (
	styleBarOK   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
	styleBarWarn = lipgloss.NewStyle().Foreground(lipgloss.Color("#fabd2f"))
	styleBarOver = lipgloss.NewStyle().Foreground(lipgloss.Color("#fb4934"))
)

// renderProgress renders a cap-usage bar like [████░░░░]. The bar itself is
// clamped at full; callers print the raw percentage next to it. Color warns
// as the cap approaches: green, yellow from 80%, red at 100%.
func renderProgress(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	style := styleBarOK
	if frac >= 1 {
		style = styleBarOver
		frac = 1
	} else if frac >= 0.8 {
		style = styleBarWarn
	}
	if width < 2 {
		width = 2
	}

	filled := int(frac * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s]", style.Render(bar))
}
