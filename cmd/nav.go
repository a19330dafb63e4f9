package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/models"
	"github.com/desertthunder/spotui/internal/navcache"
	"github.com/desertthunder/spotui/internal/shared"
)

// navStatus is the JSON shape of `nav show`.
type navStatus struct {
	navcache.Entry
	SavedAt time.Time `json:"savedAt"`
	Fresh   bool      `json:"fresh"`
	Restore bool      `json:"restore"`
}

// NavShow prints the cached screen, when it was written and whether the next launch restores it.
func (r *Runner) NavShow(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}

	entry, err := app.Nav.Peek(ctx)
	if errors.Is(err, navcache.ErrEmpty) {
		if cmd.Bool("json") {
			return r.writeJSON(nil, false)
		}
		return r.writePlain("No navigation state cached\n")
	}
	if err != nil {
		return fmt.Errorf("failed to read navigation state: %w", err)
	}

	now := r.clock()
	status := navStatus{
		Entry:   entry,
		SavedAt: entry.Time(),
		Fresh:   entry.Fresh(now, app.Nav.TTL()),
		Restore: app.RestoreScreen(ctx) != "",
	}

	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	r.writePlainHeader("Navigation State")
	r.writePlain("Screen:   %s\n", entry.LastScreen)
	r.writePlain("Saved:    %s (%s)\n", status.SavedAt.Format(time.RFC3339), humanize.RelTime(status.SavedAt, now, "ago", "from now"))
	r.writePlain("TTL:      %s\n", app.Nav.TTL())
	r.writePlain("Fresh:    %t\n", status.Fresh)
	r.writePlain("Restores: %t\n", status.Restore)
	return nil
}

// NavSave writes screen to the cache with the current time.
func (r *Runner) NavSave(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("screen")
	if name == "" {
		return fmt.Errorf("%w: screen", shared.ErrMissingArgument)
	}

	screen, err := models.ParseScreen(name)
	if err != nil {
		return err
	}
	if !screen.IsDrawer() {
		r.logger.Warn("only menu screens are restored on launch", "screen", screen)
	}

	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	app.Nav.Save(ctx, screen.String())

	return r.writePlain("✓ Navigation state saved: %s\n", screen)
}

// NavClear removes the cached screen.
func (r *Runner) NavClear(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	app.Nav.Clear(ctx)
	return r.writePlain("✓ Navigation state cleared\n")
}
