// Package ui owns the Bubble Tea timer view: a live elapsed clock over the
// day's and month's aggregates. The one-second tick is presentation only;
// persisted minutes are always recomputed from the entry timestamps when
// the timer stops.
package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hvasconcelos/horas/internal/config"
	"github.com/hvasconcelos/horas/internal/locale"
	"github.com/hvasconcelos/horas/internal/model"
	"github.com/hvasconcelos/horas/internal/storage"
	"github.com/hvasconcelos/horas/internal/timecalc"
)

var (
	styleClock  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ebdbb2"))
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#fe8019"))
	styleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("#928374"))
	styleActive = lipgloss.NewStyle().Foreground(lipgloss.Color("#8ec07c"))
)

// Model owns Bubble Tea state for the timer view.
type Model struct {
	cfg   config.Config
	store *storage.Store
	fmtr  *locale.Formatter

	open         *model.Entry
	todayMinutes int
	monthMinutes int

	bar       progress.Model
	now       time.Time
	errorLine string
}

type tickMsg time.Time

// NewModel seeds the timer view with its collaborators.
func NewModel(cfg config.Config, store *storage.Store, fmtr *locale.Formatter) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	m := Model{
		cfg:   cfg,
		store: store,
		fmtr:  fmtr,
		bar:   bar,
		now:   time.Now(),
	}
	m.refresh()
	return m
}

// Init starts the one-second display tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses and the display tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "s":
			m.toggle()
			return m, nil
		}
	case tickMsg:
		m.now = time.Time(msg)
		return m, tick()
	}
	return m, nil
}

// toggle starts a new entry or closes the running one.
func (m *Model) toggle() {
	now := time.Now()
	m.errorLine = ""

	if m.open == nil {
		_, err := m.store.Save(model.Entry{
			Date:      timecalc.LocalDate(now),
			StartTime: now,
		})
		if err != nil {
			m.errorLine = err.Error()
			return
		}
	} else {
		minutes := timecalc.Minutes(m.open.StartTime, now)
		end := now
		err := m.store.Update(m.open.ID, storage.Patch{
			EndTime:      &end,
			TotalMinutes: &minutes,
		})
		if err != nil {
			m.errorLine = err.Error()
			return
		}
	}
	m.refresh()
}

// refresh reloads the open entry and the day/month aggregates.
func (m *Model) refresh() {
	now := time.Now()

	open, err := m.store.FindOpen()
	if err != nil {
		m.errorLine = err.Error()
		return
	}
	m.open = open

	today, err := m.store.ByDate(timecalc.LocalDate(now))
	if err != nil {
		m.errorLine = err.Error()
		return
	}
	m.todayMinutes = timecalc.DayTotal(today)

	monthEntries, err := m.store.ByMonth(now.Year(), now.Month())
	if err != nil {
		m.errorLine = err.Error()
		return
	}
	m.monthMinutes = timecalc.MonthTotal(monthEntries)
}

// View renders the timer clock, the day/month stats and the cap progress.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Controle de Horas"))
	b.WriteString("\n\n")

	if m.open != nil {
		b.WriteString(styleClock.Render(timecalc.FormatClock(m.now.Sub(m.open.StartTime))))
		b.WriteString(styleActive.Render("  ● running"))
	} else {
		b.WriteString(styleClock.Render("00:00:00"))
		b.WriteString(styleDim.Render("  ○ stopped"))
	}
	b.WriteString("\n\n")

	monthHours := timecalc.MinutesToHours(m.monthMinutes)
	percent := timecalc.ProgressPercent(m.monthMinutes, m.cfg.MonthlyCapHours)

	fmt.Fprintf(&b, "Today  %s\n", timecalc.FormatHHMM(m.todayMinutes))
	fmt.Fprintf(&b, "Month  %s (%.1fh / %dh)  %s\n",
		timecalc.FormatHHMM(m.monthMinutes),
		monthHours,
		m.cfg.MonthlyCapHours,
		m.fmtr.Currency(timecalc.Billing(m.monthMinutes, m.cfg.HourlyRate)))
	b.WriteString("\n")

	frac := percent / 100
	if frac > 1 {
		frac = 1
	}
	b.WriteString(m.bar.ViewAs(frac))
	fmt.Fprintf(&b, " %.1f%%\n", percent)

	if m.errorLine != "" {
		b.WriteString("\n")
		b.WriteString(styleDim.Render(m.errorLine))
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render("space start/stop · q quit"))
	b.WriteString("\n")
	return b.String()
}
