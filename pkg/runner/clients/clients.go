// Package clients provides the runner logic for printing one week's board.
package clients

import (
	"context"
	"errors"
	"time"

	"beethoven.dev/beethoven/pkg/api"
	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/printers"
	"beethoven.dev/beethoven/pkg/schedule"
)

// Clients fetches and prints the week containing the reference date, or a
// single client's detail when ID is set.
type Clients struct {
	Client *api.Client
	City   model.City
	// ID selects one client instead of a week.
	ID string
	// Date is the reference date; zero means today.
	Date time.Time
	// WeekOffset shifts the window by whole weeks after Date resolves.
	WeekOffset int
}

// Do fetches the week and prints it day by day.
func (n *Clients) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not list clients, no api client")
	}

	if n.ID != "" {
		d, err := n.Client.ClientDetail(ctx, n.ID)
		if err != nil {
			return err
		}
		printers.Detail(d)
		return nil
	}

	ref := n.Date
	if ref.IsZero() {
		ref = time.Now()
	}
	w := schedule.NewWindow(ref).Offset(n.WeekOffset)

	cards, err := n.Client.FetchClients(ctx, n.City, w.Key())
	if err != nil {
		return err
	}

	printers.Week(w, cards)
	return nil
}
