package board

import (
	"errors"
	"testing"
	"time"

	"beethoven.dev/beethoven/pkg/model"
)

func ref(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func cards(ids ...string) []model.ClientCard {
	out := make([]model.ClientCard, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.ClientCard{ID: id, LessonDatetime: ref(2024, time.June, 10)})
	}
	return out
}

func TestInitializeSetsWindowAndLoads(t *testing.T) {
	s := NewStore(model.Astana)
	req := s.Initialize(ref(2024, time.June, 13))

	if req.WeekKey != "2024-06-10" || req.City != model.Astana {
		t.Fatalf("req = %+v", req)
	}
	if !s.Loading() {
		t.Fatal("store should be loading after Initialize")
	}
	if ok := s.Apply(req, cards("a"), nil); !ok {
		t.Fatal("response for the current request must apply")
	}
	if s.Status() != StatusIdle || len(s.Records()) != 1 {
		t.Fatalf("status %v records %d", s.Status(), len(s.Records()))
	}
}

func TestGoToOffsetMovesOneWeek(t *testing.T) {
	s := NewStore(model.Astana)
	s.Apply(s.Initialize(ref(2024, time.June, 13)), nil, nil)

	req := s.GoToOffset(1)
	if req.WeekKey != "2024-06-17" {
		t.Fatalf("offset +1 week key = %s", req.WeekKey)
	}
	req = s.GoToOffset(-2)
	if req.WeekKey != "2024-06-10" {
		t.Fatalf("after -2 week key = %s", req.WeekKey)
	}
}

func TestJumpToIsIdempotent(t *testing.T) {
	s := NewStore(model.Astana)
	s.Apply(s.Initialize(ref(2024, time.June, 13)), nil, nil)

	first := s.JumpTo(ref(2024, time.July, 4))
	s.Apply(first, cards("a"), nil)
	windowAfterFirst := s.Window()

	second := s.JumpTo(ref(2024, time.July, 4))
	if second.WeekKey != first.WeekKey {
		t.Fatalf("same jump produced different keys: %s vs %s", second.WeekKey, first.WeekKey)
	}
	if !s.Window().Start.Equal(windowAfterFirst.Start) {
		t.Fatal("same jump should yield the same window")
	}
	s.Apply(second, cards("a"), nil)
	if len(s.Records()) != 1 {
		t.Fatalf("records = %d", len(s.Records()))
	}
}

func TestStaleResponseIsDiscarded(t *testing.T) {
	s := NewStore(model.Astana)
	reqA := s.Initialize(ref(2024, time.June, 13)) // week W1
	reqB := s.GoToOffset(1)                        // week W2, issued while A is in flight

	// B resolves first, then A arrives late.
	if ok := s.Apply(reqB, cards("b1", "b2"), nil); !ok {
		t.Fatal("current request must apply")
	}
	if ok := s.Apply(reqA, cards("a1"), nil); ok {
		t.Fatal("superseded response must be discarded")
	}

	if len(s.Records()) != 2 || s.Records()[0].ID != "b1" {
		t.Fatalf("records = %+v, want B's result", s.Records())
	}
	if s.Window().Key() != "2024-06-17" {
		t.Fatalf("window = %s", s.Window().Key())
	}
}

func TestFetchFailureKeepsPreviousRecords(t *testing.T) {
	s := NewStore(model.Astana)
	s.Apply(s.Initialize(ref(2024, time.June, 13)), cards("a"), nil)

	req := s.Refetch()
	s.Apply(req, nil, errors.New("connection refused"))

	if s.Status() != StatusError {
		t.Fatalf("status = %v", s.Status())
	}
	if s.Err() == nil {
		t.Fatal("err should be set")
	}
	if len(s.Records()) != 1 || s.Records()[0].ID != "a" {
		t.Fatal("previous records must survive a failed fetch")
	}

	// the next successful navigation clears the error
	s.Apply(s.GoToOffset(1), cards("b"), nil)
	if s.Status() != StatusIdle || s.Err() != nil {
		t.Fatalf("status %v err %v after recovery", s.Status(), s.Err())
	}
}

func TestFailedNavigationRollsBackWindowAndCity(t *testing.T) {
	s := NewStore(model.Astana)
	s.Apply(s.Initialize(ref(2024, time.June, 13)), cards("a"), nil)

	req := s.GoToOffset(1)
	if req.WeekKey != "2024-06-17" {
		t.Fatalf("req key = %s", req.WeekKey)
	}
	s.Apply(req, nil, errors.New("connection refused"))

	if got := s.Window().Key(); got != "2024-06-10" {
		t.Fatalf("window = %s, want the last loaded week back", got)
	}
	if len(s.Records()) != 1 || s.Records()[0].ID != "a" {
		t.Fatalf("records = %+v", s.Records())
	}

	req = s.SetCity(model.UstKamenogorsk)
	s.Apply(req, nil, errors.New("connection refused"))
	if s.City() != model.Astana {
		t.Fatalf("city = %s, want rolled back", s.City())
	}

	// the next successful navigation moves forward again
	s.Apply(s.GoToOffset(1), cards("b"), nil)
	if got := s.Window().Key(); got != "2024-06-17" {
		t.Fatalf("window = %s after recovery", got)
	}
}

func TestRefetchKeepsWindow(t *testing.T) {
	s := NewStore(model.Astana)
	s.Apply(s.Initialize(ref(2024, time.June, 13)), cards("a"), nil)

	req := s.Refetch()
	if req.WeekKey != "2024-06-10" {
		t.Fatalf("refetch key = %s", req.WeekKey)
	}
	s.Apply(req, cards("a", "b"), nil)
	if len(s.Records()) != 2 {
		t.Fatalf("records = %d", len(s.Records()))
	}
}

func TestSetCityRefetchesSameWeek(t *testing.T) {
	s := NewStore(model.Astana)
	s.Apply(s.Initialize(ref(2024, time.June, 13)), cards("a"), nil)

	req := s.SetCity(model.UstKamenogorsk)
	if req.City != model.UstKamenogorsk || req.WeekKey != "2024-06-10" {
		t.Fatalf("req = %+v", req)
	}
	if s.City() != model.UstKamenogorsk {
		t.Fatalf("city = %s", s.City())
	}
}

func TestBucketsDeriveFromCurrentRecords(t *testing.T) {
	s := NewStore(model.Astana)
	req := s.Initialize(ref(2024, time.June, 13))
	s.Apply(req, []model.ClientCard{
		{ID: "x", LessonDatetime: time.Date(2024, time.June, 12, 10, 0, 0, 0, time.Local)},
	}, nil)

	b := s.Buckets()
	if got := b.Day("2024-06-12"); len(got) != 1 || got[0].ID != "x" {
		t.Fatalf("bucket = %+v", got)
	}
}
