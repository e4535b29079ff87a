// Package login provides the runner logic for obtaining a session token.
package login

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"beethoven.dev/beethoven/pkg/api"
	"beethoven.dev/beethoven/pkg/session"
)

var readPasswordFunc = term.ReadPassword // mockable

// Login prompts for the staff password and stores the returned token.
type Login struct {
	Client  *api.Client
	Session *session.Store
	// Password skips the prompt when set (e.g. from a flag for scripting).
	Password string
}

// Do performs the login exchange.
func (n *Login) Do(ctx context.Context) error {
	if n.Client == nil || n.Session == nil {
		return errors.New("can not log in, no api client or session store")
	}

	password := n.Password
	if password == "" {
		fmt.Print("Password: ")
		raw, err := readPasswordFunc(int(os.Stdin.Fd()))
		fmt.Println("")
		if err != nil {
			return err
		}
		password = string(raw)
	}
	if password == "" {
		return errors.New("login: empty password")
	}

	token, err := n.Client.Login(ctx, password)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			return errors.New("login: wrong password")
		}
		return err
	}
	if err := n.Session.SetToken(token); err != nil {
		return err
	}

	_, _ = color.New(color.FgGreen).Println("Logged in.")
	return nil
}
