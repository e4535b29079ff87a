package schedule

import (
	"testing"
	"time"

	"beethoven.dev/beethoven/pkg/model"
)

func card(id string, t time.Time) model.ClientCard {
	return model.ClientCard{ID: id, Name: "client " + id, LessonDatetime: t}
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestBucketScenario(t *testing.T) {
	w := NewWindow(at(2024, time.June, 10, 0, 0))
	cards := []model.ClientCard{
		card("a", at(2024, time.June, 10, 15, 0)),
		card("b", at(2024, time.June, 10, 11, 0)),
		card("c", at(2024, time.June, 12, 9, 30)),
	}

	b := Bucket(w, cards)

	mon := b.Day("2024-06-10")
	if len(mon) != 2 {
		t.Fatalf("monday bucket has %d cards, want 2", len(mon))
	}
	if mon[0].ID != "b" || mon[1].ID != "a" {
		t.Fatalf("monday bucket not ordered by lesson time: %s, %s", mon[0].ID, mon[1].ID)
	}
	if got := b.Day("2024-06-12"); len(got) != 1 || got[0].ID != "c" {
		t.Fatalf("wednesday bucket = %v", got)
	}
	for _, key := range []string{"2024-06-11", "2024-06-13", "2024-06-14", "2024-06-15", "2024-06-16"} {
		if got := b.Day(key); len(got) != 0 {
			t.Fatalf("bucket %s should be empty, has %d", key, len(got))
		}
	}
}

func TestBucketTotalCoverage(t *testing.T) {
	w := NewWindow(at(2024, time.June, 13, 0, 0))
	var cards []model.ClientCard
	for i, d := range w.Days {
		cards = append(cards,
			card(DayKey(d)+"-1", d.Add(time.Duration(10+i)*time.Hour)),
			card(DayKey(d)+"-2", d.Add(time.Duration(12+i)*time.Hour)),
		)
	}

	b := Bucket(w, cards)

	if b.Stray != 0 {
		t.Fatalf("stray = %d, want 0", b.Stray)
	}
	if b.Total() != len(cards) {
		t.Fatalf("total = %d, want %d", b.Total(), len(cards))
	}
	seen := make(map[string]bool)
	for _, d := range w.Days {
		for _, c := range b.Day(DayKey(d)) {
			if seen[c.ID] {
				t.Fatalf("card %s appears twice", c.ID)
			}
			seen[c.ID] = true
		}
	}
}

func TestBucketExcludesOutOfWindowCards(t *testing.T) {
	w := NewWindow(at(2024, time.June, 10, 0, 0))
	cards := []model.ClientCard{
		card("in", at(2024, time.June, 11, 10, 0)),
		card("out", at(2024, time.June, 20, 10, 0)),
	}

	b := Bucket(w, cards)

	if b.Stray != 1 {
		t.Fatalf("stray = %d, want 1", b.Stray)
	}
	if b.Total() != 1 {
		t.Fatalf("total = %d, want 1", b.Total())
	}
}

func TestBucketTiesKeepFetchOrder(t *testing.T) {
	w := NewWindow(at(2024, time.June, 10, 0, 0))
	same := at(2024, time.June, 10, 14, 0)
	cards := []model.ClientCard{card("first", same), card("second", same), card("third", same)}

	day := Bucket(w, cards).Day("2024-06-10")

	for i, want := range []string{"first", "second", "third"} {
		if day[i].ID != want {
			t.Fatalf("position %d = %s, want %s", i, day[i].ID, want)
		}
	}
}
