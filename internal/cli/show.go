package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/scene"
	"github.com/grindlemire/go-boxflow/pkg/fynehost"
)

// showCommand creates the show command, which opens a native window.
func (c *CLI) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [scene]",
		Short: "Open a scene as a native window",
		Long: `Open a scene as a native window backed by Fyne.

Button presses are logged. Closing the window exits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runShow(cmd, args[0])
		},
	}
}

func (c *CLI) runShow(cmd *cobra.Command, path string) error {
	if c.NewApp == nil {
		return errors.New("show is not available in this build")
	}
	logger := loggerFromContext(cmd.Context())

	doc, err := loadScene(logger, path)
	if err != nil {
		return err
	}

	a := c.NewApp()
	host := fynehost.New(a)
	s, err := doc.Build(host,
		scene.WithLogger(logger),
		scene.WithOnClick(func(name string) {
			logger.Info("button clicked", "button", name)
		}),
		scene.WithWindowOptions(boxflow.WithOnDestroy(a.Quit)),
	)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	if err := s.Window.Open(); err != nil {
		logger.Warn("some nodes failed to initialize", "err", err)
	}

	handle := s.Window.Handle()
	host.NotifyClose(handle, func() { s.Window.Close() })
	if err := host.Show(handle); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-cmd.Context().Done():
			a.Quit()
		case <-done:
		}
	}()
	a.Run()
	return nil
}
