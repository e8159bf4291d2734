package model

import "time"

// Entry represents a single clock-in/clock-out record.
//
// EndTime and TotalMinutes are both nil while the timer is running and are
// set together exactly once when it stops. Date is the local calendar date
// of StartTime in YYYY-MM-DD form and is what all grouping and filtering
// key on.
type Entry struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      *time.Time `json:"end_time"`
	TotalMinutes *int       `json:"total_minutes"`
}

// Open reports whether the entry is still running (no clock-out yet).
func (e Entry) Open() bool {
	return e.EndTime == nil
}

// Minutes returns TotalMinutes, treating an open entry as zero.
func (e Entry) Minutes() int {
	if e.TotalMinutes == nil {
		return 0
	}
	return *e.TotalMinutes
}

// Pair groups two consecutive same-day entries into one display/export row:
// a first and a second shift. Second is nil when the day has an odd number
// of entries.
type Pair struct {
	First  Entry
	Second *Entry
}

// TotalMinutes sums the closed minutes of both shifts in the pair.
func (p Pair) TotalMinutes() int {
	total := p.First.Minutes()
	if p.Second != nil {
		total += p.Second.Minutes()
	}
	return total
}

// Pairs groups entries into consecutive pairs (index 0&1, 2&3, ...) in the
// order given. Both the daily table and the CSV export render one row per
// pair.
func Pairs(entries []Entry) []Pair {
	var pairs []Pair
	for i := 0; i < len(entries); i += 2 {
		p := Pair{First: entries[i]}
		if i+1 < len(entries) {
			p.Second = &entries[i+1]
		}
		pairs = append(pairs, p)
	}
	return pairs
}
