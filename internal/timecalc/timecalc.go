package timecalc

import (
	"fmt"
	"math"
	"time"

	"github.com/hvasconcelos/horas/internal/model"
)

// Minutes returns the whole minutes elapsed between start and end, rounded
// down. No validation is performed: an end before start yields a negative
// value, matching the stored-entry contract that callers only close timers
// with end >= start.
func Minutes(start, end time.Time) int {
	return int(math.Floor(end.Sub(start).Minutes()))
}

// MinutesToHours converts minutes to fractional hours.
func MinutesToHours(minutes int) float64 {
	return float64(minutes) / 60
}

// FormatHHMM renders minutes as "H:MM" with no leading zero on the hours
// and a two-digit minutes remainder, e.g. 125 -> "2:05".
func FormatHHMM(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

// DayTotal sums TotalMinutes over the entries, counting open entries as 0.
func DayTotal(entries []model.Entry) int {
	var total int
	for _, e := range entries {
		total += e.Minutes()
	}
	return total
}

// MonthTotal sums TotalMinutes over a month's entries. Same commutative sum
// as DayTotal; kept as its own name so call sites read correctly.
func MonthTotal(entries []model.Entry) int {
	return DayTotal(entries)
}

// Billing returns the amount earned for the given minutes at an hourly rate.
func Billing(minutes int, hourlyRate float64) float64 {
	return MinutesToHours(minutes) * hourlyRate
}

// ProgressPercent returns how far the month's minutes have progressed
// against the monthly cap, in percent. The value is not clamped; display
// code caps the bar at 100 while reporting the raw figure in text.
func ProgressPercent(monthMinutes, capHours int) float64 {
	return MinutesToHours(monthMinutes) / float64(capHours) * 100
}

// FormatClock renders an elapsed duration as HH:MM:SS.
func FormatClock(d time.Duration) string {
	s := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", s/3600, (s%3600)/60, s%60)
}

// FormatDate returns the UTC calendar date of t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// FormatDateTime returns t as an RFC 3339 UTC timestamp.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// LocalDate returns the calendar date of t in its own location as
// YYYY-MM-DD. Entries are keyed by this, so a timer started late at night
// lands on the day the user actually worked.
func LocalDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
