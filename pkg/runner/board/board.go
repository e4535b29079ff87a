// Package board provides the runner that opens the interactive weekly board.
package board

import (
	"context"
	"errors"

	"beethoven.dev/beethoven/pkg/api"
	"beethoven.dev/beethoven/pkg/board"
	"beethoven.dev/beethoven/pkg/model"
)

// Board opens the TUI for a city.
type Board struct {
	Client *api.Client
	City   model.City
}

// Do runs the board until the user quits or the session expires.
func (n *Board) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not open board, no api client")
	}
	return board.Run(n.Client, n.City)
}
