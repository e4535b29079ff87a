package commands

import (
	"github.com/spf13/cobra"

	"beethoven.dev/beethoven/pkg/api"
	"beethoven.dev/beethoven/pkg/session"
)

// New builds the root command.
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "beethoven",
		Short: "Operations dashboard for the music school: weekly lesson board, analytics, settings.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

// AddCommands attaches every subcommand to the root.
func AddCommands(topLevel *cobra.Command) {
	addBoard(topLevel)
	addClients(topLevel)
	addAnalytics(topLevel)
	addSettings(topLevel)
	addLogin(topLevel)
	addLogout(topLevel)
	addVersion(topLevel)
}

// env bundles the config, session store, and API client most commands need.
// The API client invalidates the stored token on any 401.
type env struct {
	cfg     session.Config
	session *session.Store
	client  *api.Client
}

func loadEnv() (*env, error) {
	cfg, err := session.LoadConfig()
	if err != nil {
		return nil, err
	}
	s, err := session.Load(cfg)
	if err != nil {
		return nil, err
	}
	c := api.New(cfg.APIURL(),
		api.WithTokenSource(s),
		api.WithUnauthorizedHook(s.Invalidate),
	)
	return &env{cfg: cfg, session: s, client: c}, nil
}

func (e *env) requireLogin() error {
	if !e.session.LoggedIn() {
		return session.ErrNotLoggedIn
	}
	return nil
}
