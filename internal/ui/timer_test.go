package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/hvasconcelos/horas/internal/config"
	"github.com/hvasconcelos/horas/internal/locale"
	"github.com/hvasconcelos/horas/internal/storage"
)

func testModel(t *testing.T) Model {
	t.Helper()
	cfg := config.Config{
		Locale:          "pt-BR",
		Currency:        "BRL",
		HourlyRate:      46.31,
		MonthlyCapHours: 176,
	}
	return NewModel(cfg, storage.New(t.TempDir()), locale.New(cfg.Locale, cfg.Currency))
}

func TestViewStopped(t *testing.T) {
	m := testModel(t)
	view := m.View()

	if !strings.Contains(view, "00:00:00") {
		t.Errorf("stopped view missing zero clock:\n%s", view)
	}
	if !strings.Contains(view, "stopped") {
		t.Errorf("stopped view missing state marker:\n%s", view)
	}
	if !strings.Contains(view, "0:00") {
		t.Errorf("stopped view missing day total:\n%s", view)
	}
}

func TestToggleStartsAndStops(t *testing.T) {
	m := testModel(t)

	m.toggle()
	if m.open == nil {
		t.Fatal("toggle did not start a timer")
	}
	if !strings.Contains(m.View(), "running") {
		t.Error("running view missing state marker")
	}

	m.toggle()
	if m.open != nil {
		t.Fatal("toggle did not stop the timer")
	}

	entries, err := m.store.All()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Open() {
		t.Errorf("persisted entries = %+v, want one closed entry", entries)
	}
}

func TestTickReschedules(t *testing.T) {
	m := testModel(t)
	updated, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick did not reschedule")
	}
	if _, ok := updated.(Model); !ok {
		t.Errorf("Update returned %T, want Model", updated)
	}
}
