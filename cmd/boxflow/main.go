// Command boxflow lays out, previews and shows scene files.
//
// Usage:
//
//	boxflow layout [--cells] [--json] scene.toml
//	boxflow preview [--color] [--interactive] scene.toml
//	boxflow show scene.toml
//	boxflow check scene.toml...
//	boxflow version
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/grindlemire/go-boxflow/internal/cli"
)

// Set via ldflags.
var (
	version = "dev"
	commit  string
	date    string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cli.SetVersion(version, commit, date)

	c := cli.New(os.Stderr, cli.LogInfo)
	c.NewApp = func() fyne.App { return app.NewWithID("io.github.grindlemire.boxflow") }

	return c.RootCommand().ExecuteContext(ctx)
}
