// Package main is the entry point for the dockq docking tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/dockq/cmd/dockq/commands"
	"go.trai.ch/dockq/internal/app"
	_ "go.trai.ch/dockq/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Close() }, nil
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
