// Package board is the state machine behind the weekly scheduling board:
// which week is shown, which clients were fetched for it, and which detail,
// edit, or delete surface is open. The bubbletea model in ui.go is a thin
// projection over the types here; everything is unit-testable without a
// terminal.
package board

import (
	"time"

	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/schedule"
)

// Status is the store's fetch state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusError
)

// FetchRequest identifies one outstanding fetch: the (city, weekKey) pair
// the response belongs to plus a sequence number, so a response for a week
// that is no longer current is recognizably stale.
type FetchRequest struct {
	City    model.City
	WeekKey string
	Seq     uint64
}

// ScheduleStore exclusively owns the current week window and the fetched
// client list. Navigation methods replace the window and hand back the
// FetchRequest the caller must execute; Apply feeds the result back in.
type ScheduleStore struct {
	city    model.City
	window  schedule.WeekWindow
	records []model.ClientCard
	status  Status
	err     error

	seq     uint64
	pending *FetchRequest

	// last (window, city) pair that loaded successfully; a failed
	// navigation rolls back to it so the header never disagrees with
	// the retained records.
	good     schedule.WeekWindow
	goodCity model.City
	hasGood  bool
}

// NewStore creates an empty store tied to a city.
func NewStore(city model.City) *ScheduleStore {
	return &ScheduleStore{city: city}
}

func (s *ScheduleStore) begin() FetchRequest {
	s.seq++
	req := FetchRequest{City: s.city, WeekKey: s.window.Key(), Seq: s.seq}
	s.pending = &req
	s.status = StatusLoading
	s.err = nil
	return req
}

// Initialize sets the window containing the reference date and starts the
// first fetch.
func (s *ScheduleStore) Initialize(ref time.Time) FetchRequest {
	s.window = schedule.NewWindow(ref)
	return s.begin()
}

// GoToOffset moves the window by whole weeks. Used for the ±1 arrows.
func (s *ScheduleStore) GoToOffset(weeks int) FetchRequest {
	s.window = s.window.Offset(weeks)
	return s.begin()
}

// JumpTo replaces the window with the one containing date.
func (s *ScheduleStore) JumpTo(date time.Time) FetchRequest {
	s.window = schedule.NewWindow(date)
	return s.begin()
}

// Refetch re-issues the fetch for the current window, e.g. after an edit or
// delete succeeded.
func (s *ScheduleStore) Refetch() FetchRequest {
	return s.begin()
}

// SetCity switches the city filter and refetches the same week.
func (s *ScheduleStore) SetCity(city model.City) FetchRequest {
	s.city = city
	return s.begin()
}

// Apply feeds a completed fetch back into the store. Only the most recently
// issued request may land; responses for superseded requests are discarded
// and Apply reports false. A failed fetch keeps the previous records on
// screen rather than blanking the board, and rolls the window and city back
// to the week those records were loaded for.
func (s *ScheduleStore) Apply(req FetchRequest, records []model.ClientCard, err error) bool {
	if s.pending == nil || req.Seq != s.pending.Seq {
		return false
	}
	s.pending = nil
	if err != nil {
		if s.hasGood {
			s.window = s.good
			s.city = s.goodCity
		}
		s.status = StatusError
		s.err = err
		return true
	}
	s.records = records
	s.good, s.goodCity, s.hasGood = s.window, s.city, true
	s.status = StatusIdle
	s.err = nil
	return true
}

// Window returns the current week window.
func (s *ScheduleStore) Window() schedule.WeekWindow { return s.window }

// Records returns the fetched client list for the current window.
func (s *ScheduleStore) Records() []model.ClientCard { return s.records }

// Buckets derives the per-day view of the current records.
func (s *ScheduleStore) Buckets() schedule.Buckets {
	return schedule.Bucket(s.window, s.records)
}

// City returns the active city filter.
func (s *ScheduleStore) City() model.City { return s.city }

// Status returns the fetch state.
func (s *ScheduleStore) Status() Status { return s.status }

// Err returns the last fetch error, if the store is in StatusError.
func (s *ScheduleStore) Err() error { return s.err }

// Loading reports whether a fetch is outstanding.
func (s *ScheduleStore) Loading() bool { return s.status == StatusLoading }
