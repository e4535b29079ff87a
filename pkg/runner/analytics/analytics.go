// Package analytics provides the runner logic for printing aggregates.
package analytics

import (
	"context"
	"errors"
	"time"

	"beethoven.dev/beethoven/pkg/api"
	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/printers"
	"beethoven.dev/beethoven/pkg/schedule"
)

// Analytics fetches server-computed aggregates for a city and date range
// and prints them. The computation itself is entirely backend-owned.
type Analytics struct {
	Client *api.Client
	City   model.City
	From   string
	To     string
}

// Do validates the range, fetches, and prints.
func (n *Analytics) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not fetch analytics, no api client")
	}

	// default to the last 30 days
	if n.To == "" {
		n.To = schedule.DayKey(time.Now())
	}
	if n.From == "" {
		n.From = schedule.DayKey(time.Now().AddDate(0, 0, -30))
	}
	for _, d := range []string{n.From, n.To} {
		if _, err := time.ParseInLocation(schedule.KeyLayout, d, time.Local); err != nil {
			return errors.New("analytics: dates must be YYYY-MM-DD")
		}
	}

	report, err := n.Client.Analytics(ctx, n.City, n.From, n.To)
	if err != nil {
		return err
	}

	printers.Analytics(n.City, n.From, n.To, report)
	return nil
}
