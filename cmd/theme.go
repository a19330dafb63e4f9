package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/shared"
	"github.com/desertthunder/spotui/internal/theme"
)

// themeStatus is the JSON shape of `theme show`.
type themeStatus struct {
	Mode   theme.Mode         `json:"mode"`
	Custom theme.CustomColors `json:"customColors"`
	Colors theme.Colors       `json:"colors"`
}

// ThemeShow prints the stored mode, the custom colors and the palette they resolve to.
func (r *Runner) ThemeShow(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}

	status := themeStatus{Mode: app.Mode, Custom: app.CustomColors, Colors: app.Colors()}
	if cmd.Bool("json") {
		return r.writeJSON(status, true)
	}

	r.writePlainHeader("Theme")
	r.writePlain("Mode:       %s\n", status.Mode)
	r.writePlain("Primary:    %s\n", status.Colors.Primary)
	r.writePlain("Secondary:  %s\n", status.Colors.Secondary)
	r.writePlain("Background: %s\n", status.Colors.Background)
	r.writePlain("Text:       %s\n", status.Colors.Text)
	r.writePlain("Highlight:  %s\n", status.Colors.Highlight())
	return nil
}

// ThemeSet stores a theme mode.
func (r *Runner) ThemeSet(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("mode")
	if name == "" {
		return fmt.Errorf("%w: mode", shared.ErrMissingArgument)
	}

	mode, err := theme.ParseMode(name)
	if err != nil {
		return err
	}

	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	if err := app.Prefs.SetThemeMode(ctx, mode); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return r.writePlain("✓ Theme set to %s\n", mode)
}

// ThemeToggle flips between light and dark.
func (r *Runner) ThemeToggle(ctx context.Context, cmd *cli.Command) error {
	app, err := r.state(ctx)
	if err != nil {
		return err
	}

	mode, err := app.Prefs.ToggleTheme(ctx)
	if err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}
	return r.writePlain("✓ Theme set to %s\n", mode)
}

// ThemeColors validates and stores the custom palette.
func (r *Runner) ThemeColors(ctx context.Context, cmd *cli.Command) error {
	colors := theme.CustomColors{
		Primary:   cmd.StringArg("primary"),
		Secondary: cmd.StringArg("secondary"),
		Accent:    cmd.StringArg("accent"),
	}
	if colors.Primary == "" || colors.Secondary == "" || colors.Accent == "" {
		return fmt.Errorf("%w: primary, secondary and accent colors", shared.ErrMissingArgument)
	}
	if err := colors.Validate(); err != nil {
		return err
	}

	app, err := r.state(ctx)
	if err != nil {
		return err
	}
	if err := app.Prefs.SetCustomColors(ctx, colors); err != nil {
		return fmt.Errorf("failed to save colors: %w", err)
	}

	colors = colors.Normalize()
	r.writePlain("✓ Custom colors saved: %s %s %s\n", colors.Primary, colors.Secondary, colors.Accent)
	if app.Mode != theme.Custom {
		r.writePlain("Run 'spotui theme set custom' to use them\n")
	}
	return nil
}

// ThemePresets lists the preset swatches.
func (r *Runner) ThemePresets(ctx context.Context, cmd *cli.Command) error {
	for _, p := range theme.Presets {
		r.writePlain("%-14s %s\n", p.Name, p.Hex)
	}
	return nil
}
