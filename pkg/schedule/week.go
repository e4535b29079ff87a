// Package schedule holds the date arithmetic behind the weekly board: every
// reference date maps to a fixed Monday-start window of seven calendar days,
// and fetched clients are partitioned into per-day buckets for display.
package schedule

import "time"

// KeyLayout is the canonical day key format, used both as the fetch
// parameter and as the bucket key.
const KeyLayout = "2006-01-02"

// WeekStart returns the Monday on or before t at local midnight. Go numbers
// Sunday as 0, so the offset back to Monday is (weekday+6)%7.
func WeekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// WeekDays returns monday and the six days after it. The caller is expected
// to pass a Monday; the result is whatever seven days follow the input.
func WeekDays(monday time.Time) [7]time.Time {
	var days [7]time.Time
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// DayKey formats t's local calendar date as YYYY-MM-DD. A lesson at 23:50
// local time keys to its own day, never the next one.
func DayKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// WeekWindow is the Monday-start seven-day span currently displayed.
// Windows are values: navigation produces a new window, never mutates one.
type WeekWindow struct {
	Start time.Time
	End   time.Time
	Days  [7]time.Time
}

// NewWindow computes the window containing the reference date.
func NewWindow(ref time.Time) WeekWindow {
	monday := WeekStart(ref)
	days := WeekDays(monday)
	return WeekWindow{Start: monday, End: days[6], Days: days}
}

// Offset returns the window the given number of weeks away.
func (w WeekWindow) Offset(weeks int) WeekWindow {
	return NewWindow(w.Start.AddDate(0, 0, 7*weeks))
}

// Key is the window's Monday in fetch-key form.
func (w WeekWindow) Key() string {
	return DayKey(w.Start)
}

// Contains reports whether t's calendar date falls inside the window.
func (w WeekWindow) Contains(t time.Time) bool {
	key := DayKey(t)
	for _, d := range w.Days {
		if DayKey(d) == key {
			return true
		}
	}
	return false
}
