package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/measure"
	"github.com/grindlemire/go-boxflow/internal/scene"
	"github.com/grindlemire/go-boxflow/pkg/termhost"
)

// Window size used by layout when neither the scene nor the flags give one.
const (
	defaultPixelWidth  = 640
	defaultPixelHeight = 480
)

type layoutOptions struct {
	cells  bool
	json   bool
	width  int
	height int
}

// layoutCommand creates the layout command, which prints resolved rects.
func (c *CLI) layoutCommand() *cobra.Command {
	var opts layoutOptions

	cmd := &cobra.Command{
		Use:   "layout [scene]",
		Short: "Print the resolved rect of every node in a scene",
		Long: `Print the resolved rect of every node in a scene.

Text is measured in pixels with a 7x13 bitmap font by default, or in terminal
cells with --cells. Rects are relative to the client area of the node's parent.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.cells, "cells", false, "measure text in terminal cells instead of pixels")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print JSON instead of a table")
	cmd.Flags().IntVar(&opts.width, "width", 0, "window width when the scene gives none")
	cmd.Flags().IntVar(&opts.height, "height", 0, "window height when the scene gives none")

	return cmd
}

// layoutResult is the JSON form of a laid out scene.
type layoutResult struct {
	Title string       `json:"title"`
	Rect  rectJSON     `json:"rect"`
	Nodes []nodeResult `json:"nodes"`
}

type nodeResult struct {
	Name  string   `json:"name"`
	Kind  string   `json:"kind"`
	Depth int      `json:"depth"`
	Rect  rectJSON `json:"rect"`
}

type rectJSON struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

func toRectJSON(r boxflow.Rect) rectJSON {
	return rectJSON{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
}

func runLayout(cmd *cobra.Command, path string, opts layoutOptions) error {
	logger := loggerFromContext(cmd.Context())

	doc, err := loadScene(logger, path)
	if err != nil {
		return err
	}

	hostOpts := []termhost.Option{termhost.WithMeasurer(measure.NewFace(nil))}
	w, h := defaultPixelWidth, defaultPixelHeight
	if opts.cells {
		hostOpts = []termhost.Option{termhost.WithMeasurer(measure.Cells{})}
		w, h = termhost.DefaultWidth, termhost.DefaultHeight
	}
	if opts.width > 0 {
		w = opts.width
	}
	if opts.height > 0 {
		h = opts.height
	}
	host := termhost.New(append(hostOpts, termhost.WithSize(w, h))...)

	s, err := doc.Build(host, scene.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build %s: %w", path, err)
	}
	if err := s.Window.Open(); err != nil {
		logger.Warn("some nodes failed to initialize", "err", err)
	}
	defer s.Window.Close()

	result := layoutResult{Title: s.Window.Title(), Rect: toRectJSON(s.Window.Rect())}
	for _, e := range s.Entries {
		result.Nodes = append(result.Nodes, nodeResult{
			Name:  e.Name,
			Kind:  e.Kind,
			Depth: e.Depth,
			Rect:  toRectJSON(e.Node.Rect()),
		})
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}
	printLayoutTable(out, result)
	return nil
}

func printLayoutTable(w io.Writer, r layoutResult) {
	title := r.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(title),
		styleDim.Render(fmt.Sprintf("%dx%d", r.Rect.Right-r.Rect.Left, r.Rect.Bottom-r.Rect.Top)))

	rows := make([][]string, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		rows = append(rows, []string{
			strings.Repeat("  ", n.Depth) + n.Name,
			n.Kind,
			strconv.Itoa(n.Rect.Left),
			strconv.Itoa(n.Rect.Top),
			strconv.Itoa(n.Rect.Right),
			strconv.Itoa(n.Rect.Bottom),
			strconv.Itoa(n.Rect.Right - n.Rect.Left),
			strconv.Itoa(n.Rect.Bottom - n.Rect.Top),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers("Node", "Kind", "Left", "Top", "Right", "Bottom", "Width", "Height").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(w, t.Render())
}
