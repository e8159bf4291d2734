package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hvasconcelos/horas/internal/ui"
)

var timerCmd = &cobra.Command{
	Use:   "timer",
	Short: "Interactive timer view with live stats",
	Args:  cobra.NoArgs,
	RunE:  runTimer,
}

func runTimer(cmd *cobra.Command, args []string) error {
	cfg, store, fmtr, err := loadApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	m := ui.NewModel(cfg, store, fmtr)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run timer view: %w", err)
	}
	return nil
}
