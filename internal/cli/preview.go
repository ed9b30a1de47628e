package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/debug"
	"github.com/grindlemire/go-boxflow/internal/scene"
	"github.com/grindlemire/go-boxflow/pkg/termhost"
)

type previewOptions struct {
	width       int
	height      int
	color       bool
	interactive bool
}

// previewCommand creates the preview command, which paints a scene as text.
func (c *CLI) previewCommand() *cobra.Command {
	var opts previewOptions

	cmd := &cobra.Command{
		Use:   "preview [scene]",
		Short: "Paint a scene in the terminal",
		Long: `Paint a scene in the terminal, one cell per pixel unit.

With --interactive the scene fills the terminal and reflows as it is resized.
Click buttons with the mouse; press q to quit. Logs go to --log-file or to the
file named by ` + debug.EnvVar + ` since the terminal is in use.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fitTerminal(cmd, &opts)
			return c.runPreview(cmd, args[0], opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", termhost.DefaultWidth, "window width when the scene gives none (default: terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", termhost.DefaultHeight, "window height when the scene gives none (default: terminal height)")
	cmd.Flags().BoolVar(&opts.color, "color", false, "paint colors with ANSI escapes")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "fill the terminal and reflow on resize")

	return cmd
}

// fitTerminal sizes the window to the terminal on stdout unless the size was
// given on the command line. The last row is left for the shell prompt.
func fitTerminal(cmd *cobra.Command, opts *previewOptions) {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return
	}
	w, h, err := termhost.TerminalSize(int(f.Fd()))
	if err != nil || w <= 0 || h <= 1 {
		return
	}
	if !cmd.Flags().Changed("width") {
		opts.width = w
	}
	if !cmd.Flags().Changed("height") {
		opts.height = h - 1
	}
}

func (c *CLI) runPreview(cmd *cobra.Command, path string, opts previewOptions) error {
	logger := loggerFromContext(cmd.Context())
	if opts.interactive && c.logFile == "" {
		if _, err := debug.FromEnv(); err != nil {
			return err
		}
		logger = debug.Logger()
		defer debug.Close()
	}

	doc, err := loadScene(logger, path)
	if err != nil {
		return err
	}

	var clicked []string
	host := termhost.New(termhost.WithSize(opts.width, opts.height))
	s, err := doc.Build(host,
		scene.WithLogger(logger),
		scene.WithOnClick(func(name string) {
			logger.Info("button clicked", "button", name)
			clicked = append(clicked, name)
		}),
	)
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	if err := s.Window.Open(); err != nil {
		logger.Warn("some nodes failed to initialize", "err", err)
	}
	defer s.Window.Close()

	if opts.interactive {
		m := newPreviewModel(host, s.Window, &clicked, logger)
		_, err := tea.NewProgram(m,
			tea.WithContext(cmd.Context()),
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
		).Run()
		return err
	}

	out := cmd.OutOrStdout()
	if opts.color {
		fmt.Fprintln(out, host.RenderANSI(s.Window.Handle()))
	} else {
		fmt.Fprintln(out, host.Render(s.Window.Handle()))
	}
	return nil
}

// previewModel drives a live preview. The window follows the terminal size
// and the last line shows the most recent click.
type previewModel struct {
	host    *termhost.Host
	window  *boxflow.Window
	clicked *[]string
	logger  *log.Logger
}

func newPreviewModel(host *termhost.Host, window *boxflow.Window, clicked *[]string, logger *log.Logger) previewModel {
	return previewModel{host: host, window: window, clicked: clicked, logger: logger}
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Keep the last row for the status line
		m.host.Resize(m.window.Handle(), msg.Width, max(msg.Height-1, 0))
		m.logger.Debug("terminal resized", "width", msg.Width, "height", msg.Height)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.host.Click(m.window.Handle(), msg.X, msg.Y)
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	status := "q quit"
	if n := len(*m.clicked); n > 0 {
		status = fmt.Sprintf("clicked %s  ·  %s", (*m.clicked)[n-1], status)
	}
	return m.host.RenderANSI(m.window.Handle()) + "\n" + styleDim.Render(status)
}

