// Package cli implements the boxflow command-line interface.
//
// # Commands
//
//   - layout: Print the resolved rect of every node in a scene
//   - preview: Paint a scene in the terminal, optionally live
//   - show: Open a scene as a native window
//   - check: Validate scene files
//   - version: Print version information
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging and
// --log-file to send logs to a file instead of stderr. Loggers are passed
// through context.Context.
package cli

import (
	"fmt"
	"io"

	"fyne.io/fyne/v2"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-boxflow/internal/debug"
	"github.com/grindlemire/go-boxflow/internal/scene"
)

const appName = "boxflow"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version and the
// version command. Typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// NewApp creates the Fyne application used by show. Nil disables show.
	NewApp func() fyne.App

	verbose bool
	logFile string
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "boxflow lays out windows of buttons, text and panels",
		Long: `boxflow resolves box layouts: every node gets its rect from its own style,
the rect of the sibling before it and the rect of its parent.

Scenes are TOML or YAML files describing a window, style classes and a node tree.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := LogInfo
			if c.verbose {
				level = LogDebug
			}
			if c.logFile != "" {
				if err := debug.Init(c.logFile, level); err != nil {
					return err
				}
				c.Logger = debug.Logger()
			} else {
				c.SetLogLevel(level)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if c.logFile != "" {
				return debug.Close()
			}
			return nil
		},
	}

	root.SetVersionTemplate(versionText())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// loadScene reads a scene file and logs how many nodes it declares.
func loadScene(logger *log.Logger, path string) (*scene.Document, error) {
	doc, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("scene loaded", "path", path, "nodes", len(doc.Nodes))
	return doc, nil
}

func versionText() string {
	return fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date)
}
