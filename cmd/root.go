package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/config"
	"github.com/hvasconcelos/horas/internal/locale"
	"github.com/hvasconcelos/horas/internal/storage"
)

var rootCmd = &cobra.Command{
	Use:   "horas",
	Short: "Controle de Horas – a personal work-hours and billing tracker",
	Long: `horas is a single-binary work-hours tracker with billing.
Start and stop a timer, review daily and monthly totals, follow progress
against the monthly hour cap, and export a month as CSV.
All data is stored as human-readable JSON in ~/.horas/.`,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(todayCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(timerCmd)
}

// loadApp wires the per-invocation collaborators: configuration, the entry
// store and the display formatter, all rooted at ~/.horas.
func loadApp() (config.Config, *storage.Store, *locale.Formatter, error) {
	dir, err := config.Dir()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return cfg, nil, nil, err
	}
	return cfg, storage.New(dir), locale.New(cfg.Locale, cfg.Currency), nil
}
