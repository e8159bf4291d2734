package timecalc_test

import (
	"math"
	"testing"
	"time"

	"github.com/hvasconcelos/horas/internal/model"
	"github.com/hvasconcelos/horas/internal/timecalc"
)

func TestMinutes(t *testing.T) {
	base := time.Date(2026, 2, 27, 9, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"zero", base, base, 0},
		{"whole hours", base, base.Add(3 * time.Hour), 180},
		{"truncates seconds", base, base.Add(2*time.Minute + 59*time.Second), 2},
		{"full day", base, base.Add(24 * time.Hour), 1440},
		{"end before start goes negative", base, base.Add(-90 * time.Minute), -90},
	}
	for _, tt := range tests {
		got := timecalc.Minutes(tt.start, tt.end)
		if got != tt.want {
			t.Errorf("%s: Minutes = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestFormatHHMM(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0:00"},
		{59, "0:59"},
		{60, "1:00"},
		{125, "2:05"},
		{420, "7:00"},
		{600, "10:00"},
	}
	for _, tt := range tests {
		got := timecalc.FormatHHMM(tt.minutes)
		if got != tt.want {
			t.Errorf("FormatHHMM(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestDayTotalTreatsOpenEntriesAsZero(t *testing.T) {
	m30, m45 := 30, 45
	entries := []model.Entry{
		{TotalMinutes: &m30},
		{TotalMinutes: &m45},
		{}, // still running
	}
	if got := timecalc.DayTotal(entries); got != 75 {
		t.Errorf("DayTotal = %d, want 75", got)
	}
	if got := timecalc.MonthTotal(entries); got != 75 {
		t.Errorf("MonthTotal = %d, want 75", got)
	}
}

func TestDayTotalEmpty(t *testing.T) {
	if got := timecalc.DayTotal(nil); got != 0 {
		t.Errorf("DayTotal(nil) = %d, want 0", got)
	}
}

func TestBilling(t *testing.T) {
	if got := timecalc.Billing(60, 46.31); got != 46.31 {
		t.Errorf("Billing(60) = %v, want 46.31", got)
	}
	if got := timecalc.Billing(30, 46.31); math.Abs(got-23.155) > 1e-9 {
		t.Errorf("Billing(30) = %v, want 23.155", got)
	}
	if got := timecalc.Billing(0, 46.31); got != 0 {
		t.Errorf("Billing(0) = %v, want 0", got)
	}
}

func TestMinutesToHours(t *testing.T) {
	if got := timecalc.MinutesToHours(90); got != 1.5 {
		t.Errorf("MinutesToHours(90) = %v, want 1.5", got)
	}
}

func TestProgressPercent(t *testing.T) {
	if got := timecalc.ProgressPercent(176*60, 176); got != 100 {
		t.Errorf("ProgressPercent at cap = %v, want 100", got)
	}
	if got := timecalc.ProgressPercent(88*60, 176); got != 50 {
		t.Errorf("ProgressPercent at half = %v, want 50", got)
	}
	// Past the cap stays unclamped.
	if got := timecalc.ProgressPercent(2*176*60, 176); got != 200 {
		t.Errorf("ProgressPercent past cap = %v, want 200", got)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{61 * time.Second, "00:01:01"},
		{time.Hour + time.Minute + time.Second, "01:01:01"},
		{10 * time.Hour, "10:00:00"},
	}
	for _, tt := range tests {
		got := timecalc.FormatClock(tt.d)
		if got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatDateUsesUTC(t *testing.T) {
	// 23:30 in São Paulo is already the next day in UTC.
	sp := time.FixedZone("BRT", -3*60*60)
	late := time.Date(2026, 2, 27, 23, 30, 0, 0, sp)

	if got := timecalc.FormatDate(late); got != "2026-02-28" {
		t.Errorf("FormatDate = %q, want %q", got, "2026-02-28")
	}
	if got := timecalc.FormatDateTime(late); got != "2026-02-28T02:30:00Z" {
		t.Errorf("FormatDateTime = %q, want %q", got, "2026-02-28T02:30:00Z")
	}
}

func TestLocalDate(t *testing.T) {
	sp := time.FixedZone("BRT", -3*60*60)
	late := time.Date(2026, 2, 27, 23, 30, 0, 0, sp)
	if got := timecalc.LocalDate(late); got != "2026-02-27" {
		t.Errorf("LocalDate = %q, want %q", got, "2026-02-27")
	}
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 2, 27, 10, 0, 0, 0, time.UTC)
	b := time.Date(2026, 2, 27, 23, 59, 59, 0, time.UTC)
	c := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	if !timecalc.SameDay(a, b) {
		t.Error("SameDay: expected same day for a and b")
	}
	if timecalc.SameDay(a, c) {
		t.Error("SameDay: expected different day for a and c")
	}
}
