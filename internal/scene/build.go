package scene

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	boxflow "github.com/grindlemire/go-boxflow"
	"github.com/grindlemire/go-boxflow/internal/layout"
)

// Node kinds accepted in scene files.
const (
	KindButton = "button"
	KindText   = "text"
	KindPanel  = "panel"
)

// Scene is a built window and a flat, depth-first listing of its nodes.
type Scene struct {
	Window  *boxflow.Window
	Entries []Entry
}

// Entry names one built node. Name is the node id, or its path in the
// document when it has none.
type Entry struct {
	Name  string
	Kind  string
	Depth int
	Node  boxflow.Node
}

// Option configures Build.
type Option func(*builder)

// WithLogger receives style warnings and is passed to the window.
func WithLogger(logger *log.Logger) Option {
	return func(b *builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithOnClick is called with the entry name whenever a button is pressed.
func WithOnClick(fn func(name string)) Option {
	return func(b *builder) {
		b.onClick = fn
	}
}

// WithWindowOptions adds options to the built window. Title, style and
// logger come from the document and the builder.
func WithWindowOptions(opts ...boxflow.WindowOption) Option {
	return func(b *builder) {
		b.windowOpts = append(b.windowOpts, opts...)
	}
}

type builder struct {
	doc        *Document
	logger     *log.Logger
	onClick    func(name string)
	windowOpts []boxflow.WindowOption
	entries    []Entry
	warnings   []error
}

func newBuilder(doc *Document, opts ...Option) *builder {
	b := &builder{doc: doc, logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build creates an unopened window holding the document's nodes. Style
// warnings are logged and never fail the build.
func (d *Document) Build(host boxflow.Host, opts ...Option) (*Scene, error) {
	b := newBuilder(d, opts...)
	style, nodes, err := b.build()
	if err != nil {
		return nil, err
	}
	for _, w := range b.warnings {
		b.logger.Warn("style fallback", "err", w)
	}

	win := boxflow.NewWindow(host, append([]boxflow.WindowOption{
		boxflow.WithTitle(d.Window.Title),
		boxflow.WithStyle(style),
		boxflow.WithLogger(b.logger),
	}, b.windowOpts...)...)
	if err := win.Append(nodes...); err != nil {
		return nil, err
	}
	return &Scene{Window: win, Entries: b.entries}, nil
}

// Check validates the document without building a window. Warnings are
// style problems that Build would recover from; err is what would make
// Build fail.
func (d *Document) Check() (warnings []error, err error) {
	b := newBuilder(d)
	_, _, err = b.build()
	return b.warnings, err
}

func (b *builder) build() (layout.Style, []boxflow.Node, error) {
	win := b.doc.Window
	style := b.style("window", win.Class, win.Style)
	if !style.Width.IsSet() && win.Width > 0 {
		style.Width = layout.Pixels(win.Width)
	}
	if !style.Height.IsSet() && win.Height > 0 {
		style.Height = layout.Pixels(win.Height)
	}

	nodes, err := b.nodes(b.doc.Nodes, "nodes", 0)
	if err != nil {
		return layout.Style{}, nil, err
	}
	return style, nodes, nil
}

func (b *builder) nodes(specs []Node, path string, depth int) ([]boxflow.Node, error) {
	out := make([]boxflow.Node, 0, len(specs))
	for i, spec := range specs {
		name := spec.ID
		if name == "" {
			name = fmt.Sprintf("%s[%d]", path, i)
		}
		n, err := b.node(spec, name, fmt.Sprintf("%s[%d].children", path, i), depth)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func (b *builder) node(spec Node, name, childPath string, depth int) (boxflow.Node, error) {
	if spec.Kind != KindPanel && len(spec.Children) > 0 {
		return nil, fmt.Errorf("%s: only panels have children, got %s", name, spec.Kind)
	}
	style := b.style(name, spec.Class, spec.Style)

	var n boxflow.Node
	switch spec.Kind {
	case KindButton:
		var opts []boxflow.ButtonOption
		if b.onClick != nil {
			fn := b.onClick
			opts = append(opts, boxflow.WithOnClick(func() { fn(name) }))
		}
		n = boxflow.NewButton(spec.Text, style, opts...)
	case KindText:
		n = boxflow.NewText(spec.Text, style)
	case KindPanel:
		idx := len(b.entries)
		b.entries = append(b.entries, Entry{Name: name, Kind: spec.Kind, Depth: depth})
		children, err := b.nodes(spec.Children, childPath, depth+1)
		if err != nil {
			return nil, err
		}
		p := boxflow.NewPanel(style, children...)
		b.entries[idx].Node = p
		return p, nil
	case "":
		return nil, fmt.Errorf("%s: missing kind", name)
	default:
		return nil, fmt.Errorf("%s: unknown kind %q, want button, text or panel", name, spec.Kind)
	}
	b.entries = append(b.entries, Entry{Name: name, Kind: spec.Kind, Depth: depth, Node: n})
	return n, nil
}

// style resolves class and inline keys, recording every problem as a
// warning against name.
func (b *builder) style(name, class string, inline map[string]any) layout.Style {
	style, err := b.doc.Styles.Resolve(class, inline)
	for _, e := range split(err) {
		b.warnings = append(b.warnings, fmt.Errorf("%s: %w", name, e))
	}
	return style
}

// split flattens a joined error.
func split(err error) []error {
	if err == nil {
		return nil
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []error
		for _, e := range joined.Unwrap() {
			out = append(out, split(e)...)
		}
		return out
	}
	return []error{err}
}

