// Package weekgrid tracks the cursor over the board's seven day columns.
// It knows nothing about fetching or rendering; the board model feeds it
// fresh buckets and asks which card is active.
package weekgrid

import (
	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/schedule"
)

// Grid holds the per-day card columns and the cursor position.
type Grid struct {
	days  [7]string // day keys, Monday first
	cards [7][]model.ClientCard

	dayIndex  int
	cardIndex int
}

// New constructs an empty grid.
func New() *Grid {
	return &Grid{}
}

// SetWeek replaces the columns from a window and its buckets. The cursor
// keeps its position where possible and clamps where the new week is
// shorter; a vanished selection never panics.
func (g *Grid) SetWeek(w schedule.WeekWindow, b schedule.Buckets) {
	for i, d := range w.Days {
		key := schedule.DayKey(d)
		g.days[i] = key
		g.cards[i] = b.Day(key)
	}
	g.clamp()
}

// DayKey returns the key of column i.
func (g *Grid) DayKey(i int) string { return g.days[i] }

// Cards returns the cards of column i in display order.
func (g *Grid) Cards(i int) []model.ClientCard { return g.cards[i] }

// Cursor returns the active day and card indices.
func (g *Grid) Cursor() (int, int) { return g.dayIndex, g.cardIndex }

// MoveDay moves the cursor across columns, clamping at the week's edges.
// It reports whether the cursor actually moved, so the caller can treat a
// push past the edge as week navigation instead.
func (g *Grid) MoveDay(delta int) bool {
	next := g.dayIndex + delta
	if next < 0 || next > 6 {
		return false
	}
	g.dayIndex = next
	g.clamp()
	return true
}

// MoveCard moves the cursor within the active column, clamping at the ends.
func (g *Grid) MoveCard(delta int) {
	g.cardIndex += delta
	g.clamp()
}

// SelectDay jumps the cursor to column i.
func (g *Grid) SelectDay(i int) {
	if i < 0 {
		i = 0
	}
	if i > 6 {
		i = 6
	}
	g.dayIndex = i
	g.clamp()
}

// ActiveCard returns the card under the cursor, or nil for an empty column.
func (g *Grid) ActiveCard() *model.ClientCard {
	col := g.cards[g.dayIndex]
	if len(col) == 0 {
		return nil
	}
	c := col[g.cardIndex]
	return &c
}

// Reset puts the cursor back on the first column.
func (g *Grid) Reset() {
	g.dayIndex = 0
	g.cardIndex = 0
}

func (g *Grid) clamp() {
	if g.dayIndex < 0 {
		g.dayIndex = 0
	}
	if g.dayIndex > 6 {
		g.dayIndex = 6
	}
	col := g.cards[g.dayIndex]
	if len(col) == 0 {
		g.cardIndex = 0
		return
	}
	if g.cardIndex < 0 {
		g.cardIndex = 0
	}
	if g.cardIndex >= len(col) {
		g.cardIndex = len(col) - 1
	}
}
