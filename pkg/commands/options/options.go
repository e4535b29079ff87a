// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/model"
	"beethoven.dev/beethoven/pkg/schedule"
)

// CityOptions captures the city filter flag.
type CityOptions struct {
	City string
}

// AddCityArg wires the city flag on the provided command. An empty value
// falls back to the session's persisted preference.
func AddCityArg(cmd *cobra.Command, o *CityOptions) {
	cmd.Flags().StringVarP(&o.City, "city", "c", "",
		"City filter (astana, ust_kamenogorsk). Defaults to the saved preference.")
}

// Resolve parses the flag, using fallback when the flag was not given.
func (o *CityOptions) Resolve(fallback string) (model.City, error) {
	raw := o.City
	if raw == "" {
		raw = fallback
	}
	return model.ParseCity(raw)
}

// WeekOptions captures the reference date for week-scoped commands.
type WeekOptions struct {
	Date   string
	Offset int
}

// AddWeekArgs wires the date and week-offset flags.
func AddWeekArgs(cmd *cobra.Command, o *WeekOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Reference date (YYYY-MM-DD) for the week to show. Defaults to today.")
	cmd.Flags().IntVarP(&o.Offset, "week", "w", 0,
		"Shift the week by this many weeks (e.g. -1 for last week).")
}

// ResolveDate parses the date flag; zero time means today.
func (o *WeekOptions) ResolveDate() (time.Time, error) {
	if o.Date == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(schedule.KeyLayout, o.Date, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --date %q, want YYYY-MM-DD", o.Date)
	}
	return t, nil
}

// RangeOptions captures the analytics date range.
type RangeOptions struct {
	From string
	To   string
}

// AddRangeArgs wires the from/to flags.
func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		"Range start (YYYY-MM-DD). Defaults to 30 days ago.")
	cmd.Flags().StringVar(&o.To, "to", "",
		"Range end (YYYY-MM-DD). Defaults to today.")
}
