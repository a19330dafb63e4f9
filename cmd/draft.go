package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/spotui/internal/draft"
	"github.com/desertthunder/spotui/internal/formatter"
	"github.com/desertthunder/spotui/internal/shared"
)

// DraftRun applies the action tokens to an empty draft and prints the result.
func (r *Runner) DraftRun(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("%w: at least one action", shared.ErrMissingArgument)
	}

	actions, err := draft.ParseScript(args)
	if err != nil {
		return err
	}

	engine := draft.NewEngine()
	for _, a := range actions {
		state := engine.Dispatch(a)
		r.logger.Debug("dispatched", "action", fmt.Sprintf("%T", a), "songs", len(state.Songs), "history", len(state.History))
	}
	r.logger.Info("draft applied", "actions", len(actions))

	data, err := formatter.Draft(engine.State(), format)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
