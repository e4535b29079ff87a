package commands

import (
	"context"

	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/commands/options"
	"beethoven.dev/beethoven/pkg/runner/analytics"
)

func addAnalytics(topLevel *cobra.Command) {
	co := &options.CityOptions{}
	ro := &options.RangeOptions{}

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "print sales and score aggregates for a date range",
		Example: `
beethoven analytics
beethoven analytics --from 2024-06-01 --to 2024-06-30
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if err := e.requireLogin(); err != nil {
				return err
			}
			city, err := co.Resolve(e.session.City(e.cfg.DefaultCity()))
			if err != nil {
				return err
			}

			a := analytics.Analytics{Client: e.client, City: city, From: ro.From, To: ro.To}
			return a.Do(context.Background())
		},
	}

	options.AddCityArg(cmd, co)
	options.AddRangeArgs(cmd, ro)
	topLevel.AddCommand(cmd)
}
