package commands

import (
	"context"

	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/runner/settings"
)

func addSettings(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "settings [key [value]]",
		Short: "list settings, or set one key to a value",
		Example: `
beethoven settings
beethoven settings greeting_prompt
beethoven settings greeting_prompt "Hello from the school"
`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			if err := e.requireLogin(); err != nil {
				return err
			}

			s := settings.Settings{Client: e.client}
			if len(args) > 0 {
				s.Key = args[0]
			}
			if len(args) > 1 {
				s.Value = args[1]
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
