package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/runner/login"
)

func addLogin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "log in with the staff password",
		Example: `
beethoven login
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			l := login.Login{Client: e.client, Session: e.session}
			return l.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "drop the stored session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv()
			if err != nil {
				return err
			}
			e.session.Invalidate()
			fmt.Println("Logged out.")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
