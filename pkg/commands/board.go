package commands

import (
	"context"

	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/commands/options"
	"beethoven.dev/beethoven/pkg/runner/board"
)

func addBoard(topLevel *cobra.Command) {
	co := &options.CityOptions{}

	cmd := &cobra.Command{
		Use:   "board",
		Short: "open the interactive weekly scheduling board",
		Example: `
beethoven board
beethoven board --city ust_kamenogorsk
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
			// remember the last used city for next time
			_ = e.session.SetCity(string(city))

			b := board.Board{Client: e.client, City: city}
			return b.Do(context.Background())
		},
	}

	options.AddCityArg(cmd, co)
	topLevel.AddCommand(cmd)
}
