package commands

import (
	"context"

	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/commands/options"
	"beethoven.dev/beethoven/pkg/runner/clients"
)

func addClients(topLevel *cobra.Command) {
	co := &options.CityOptions{}
	wo := &options.WeekOptions{}

	cmd := &cobra.Command{
		Use:   "clients [id]",
		Short: "print one week's lesson board, or one client's detail",
		Example: `
beethoven clients
beethoven clients --date 2024-06-13
beethoven clients --week -1 --city astana
beethoven clients 42
`,
		Args: cobra.MaximumNArgs(1),
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
			date, err := wo.ResolveDate()
			if err != nil {
				return err
			}

			s := clients.Clients{
				Client:     e.client,
				City:       city,
				Date:       date,
				WeekOffset: wo.Offset,
			}
			if len(args) > 0 {
				s.ID = args[0]
			}
			return s.Do(context.Background())
		},
	}

	options.AddCityArg(cmd, co)
	options.AddWeekArgs(cmd, wo)
	topLevel.AddCommand(cmd)
}
