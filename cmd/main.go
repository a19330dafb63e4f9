package main

import (
	"context"
	"os"

	"github.com/desertthunder/spotui/internal/shared"
)

func main() {
	logger := shared.WithLogger(shared.NewLogger(nil), "session", shared.GenerateID())

	runner := NewRunner(RunnerOpts{Logger: logger})
	if err := runner.command().Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
