// Package settings provides the runner logic for the key-value settings
// editor.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"beethoven.dev/beethoven/pkg/api"
)

// Settings lists all settings, or writes one when Key and Value are set.
type Settings struct {
	Client *api.Client
	Key    string
	Value  string
}

// Do lists or updates settings.
func (n *Settings) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not access settings, no api client")
	}

	if n.Key != "" && n.Value != "" {
		if err := n.Client.UpdateSetting(ctx, n.Key, n.Value); err != nil {
			return err
		}
		_, _ = color.New(color.FgGreen).Printf("Updated %s.\n", n.Key)
		return nil
	}

	all, err := n.Client.Settings(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		_, _ = color.New(color.Faint).Println("No settings.")
		return nil
	}

	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.AddRow("KEY", "VALUE")
	for _, s := range all {
		if n.Key != "" && s.Key != n.Key {
			continue
		}
		tbl.AddRow(s.Key, s.Value)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
