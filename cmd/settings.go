package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/shared"
)

// SettingsNotifications prints the notifications preference, or sets it when given on or off.
func (r *Runner) SettingsNotifications(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}

	value := strings.ToLower(strings.TrimSpace(cmd.StringArg("value")))
	if value == "" {
		return r.writePlain("Notifications: %s\n", onOff(app.Notifications))
	}

	var enabled bool
	switch value {
	case "on", "true", "yes":
		enabled = true
	case "off", "false", "no":
		enabled = false
	default:
		return fmt.Errorf("%w: expected on or off, got %q", shared.ErrInvalidArgument, value)
	}

	if err := app.Prefs.SetNotifications(ctx, enabled); err != nil {
		return fmt.Errorf("failed to save notifications: %w", err)
	}
	return r.writePlain("✓ Notifications %s\n", onOff(enabled))
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
