package main

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/fx"
)

// run drives the app until ctx is cancelled or fx asks to shut down and returns the exit code.
// A signal during start lets start finish and then stops cleanly.
func run(ctx context.Context, app *fx.App, stderr io.Writer) int {
	startCtx, cancel := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		fmt.Fprintf(stderr, "foodfront: start: %v\n", err)
		return 1
	}

	select {
	case <-ctx.Done():
	case sig := <-app.Done():
		fmt.Fprintf(stderr, "foodfront: shutting down on %s\n", sig)
	}

	stopCtx, cancelStop := context.WithTimeout(context.Background(), app.StopTimeout())
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		fmt.Fprintf(stderr, "foodfront: stop: %v\n", err)
		return 1
	}
	return 0
}
