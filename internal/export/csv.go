// Package export serializes a month of entries into the CSV layout the
// user's spreadsheet expects: one row per shift pair, a grand-total line,
// and a UTF-8 BOM so accented characters survive common spreadsheet
// importers.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/hvasconcelos/horas/internal/locale"
	"github.com/hvasconcelos/horas/internal/model"
	"github.com/hvasconcelos/horas/internal/timecalc"
)

// bom is the UTF-8 byte-order mark prefixed to the CSV output.
const bom = "\ufeff"

const header = "Data,,Entrada,Saída,Entrada,Saída,Total"

// Build serializes the entries into the exported CSV. Entries are grouped
// by date, dates ordered chronologically, and each date's entries rendered
// two per row (first and second shift). Open entries leave their clock-out
// column empty. The trailing total line sums every entry passed in.
func Build(entries []model.Entry) []byte {
	byDate := make(map[string][]model.Entry)
	var dates []string
	for _, e := range entries {
		if _, seen := byDate[e.Date]; !seen {
			dates = append(dates, e.Date)
		}
		byDate[e.Date] = append(byDate[e.Date], e)
	}
	// YYYY-MM-DD keys sort lexicographically into chronological order.
	sort.Strings(dates)

	var b strings.Builder
	b.WriteString(bom)
	b.WriteString(header)
	b.WriteString("\n")

	for _, date := range dates {
		dayLabel := date
		dayName := ""
		if d, err := locale.ParseDate(date); err == nil {
			dayLabel = locale.Date(d)
			dayName = locale.DayName(d)
		}

		for _, pair := range model.Pairs(byDate[date]) {
			second, secondEnd := "", ""
			if pair.Second != nil {
				second = locale.ClockTime(pair.Second.StartTime)
				secondEnd = clockOut(*pair.Second)
			}
			fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s\n",
				dayLabel,
				dayName,
				locale.ClockTime(pair.First.StartTime),
				clockOut(pair.First),
				second,
				secondEnd,
				timecalc.FormatHHMM(pair.TotalMinutes()),
			)
		}
	}

	fmt.Fprintf(&b, "\nTotal do Mês:,,,,,%s\n",
		timecalc.FormatHHMM(timecalc.DayTotal(entries)))

	return []byte(b.String())
}

// clockOut renders an entry's end time, or empty while it is still running.
func clockOut(e model.Entry) string {
	if e.EndTime == nil {
		return ""
	}
	return locale.ClockTime(*e.EndTime)
}

// Filename returns the download name for a month's export, e.g.
// "horas-trabalhadas-janeiro-2026.csv".
func Filename(year int, month time.Month) string {
	return fmt.Sprintf("horas-trabalhadas-%s-%d.csv", locale.MonthName(month), year)
}

// WriteFile builds the CSV for the entries and writes it into dir under the
// month's standard filename, returning the full path.
func WriteFile(dir string, entries []model.Entry, year int, month time.Month) (string, error) {
	path := filepath.Join(dir, Filename(year, month))
	if err := os.WriteFile(path, Build(entries), 0o644); err != nil {
		return "", fmt.Errorf("writing export file: %w", err)
	}
	return path, nil
}
