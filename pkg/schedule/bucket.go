package schedule

import (
	"sort"

	"beethoven.dev/beethoven/pkg/model"
)

// Buckets maps each day key of a window to the cards whose lesson falls on
// that day. Derived on demand, never stored.
type Buckets struct {
	byDay map[string][]model.ClientCard
	// Stray counts cards whose lesson date matched none of the window's
	// days. The fetch boundary should make this impossible; a nonzero
	// count is a data-integrity signal for the caller to surface.
	Stray int
}

// Bucket partitions cards across the window's days. Within a day, cards are
// ordered by ascending lesson time; ties keep their fetch order so repeated
// derivations render identically.
func Bucket(w WeekWindow, cards []model.ClientCard) Buckets {
	b := Buckets{byDay: make(map[string][]model.ClientCard, len(w.Days))}
	for _, d := range w.Days {
		b.byDay[DayKey(d)] = nil
	}
	for _, c := range cards {
		key := DayKey(c.LessonDatetime)
		if _, ok := b.byDay[key]; !ok {
			b.Stray++
			continue
		}
		b.byDay[key] = append(b.byDay[key], c)
	}
	for key, day := range b.byDay {
		sort.SliceStable(day, func(i, j int) bool {
			return day[i].LessonDatetime.Before(day[j].LessonDatetime)
		})
		b.byDay[key] = day
	}
	return b
}

// Day returns the cards for one day key, in display order.
func (b Buckets) Day(key string) []model.ClientCard {
	return b.byDay[key]
}

// Total counts the cards that were assigned to a day.
func (b Buckets) Total() int {
	n := 0
	for _, day := range b.byDay {
		n += len(day)
	}
	return n
}
