package boxflow

import "fmt"

// State is a node's position in its lifecycle.
type State uint8

const (
	StateUnattached  State = iota // Style set, no container
	StateAttached                 // Appended to a container
	StateInitialized              // Native resources created
	StateLive                     // At least one rect applied
	StateDestroyed                // Native resources released; terminal
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateAttached:
		return "attached"
	case StateInitialized:
		return "initialized"
	case StateLive:
		return "live"
	case StateDestroyed:
		return "destroyed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Node is an element placed by the flow pass.
type Node interface {
	// Style returns the node's resolved style.
	Style() Style

	// Rect returns the last resolved rect.
	Rect() Rect

	// State returns the node's lifecycle state.
	State() State

	// Handle returns the node's outer native handle, or 0.
	Handle() Handle

	// CalcRect resolves the node's rect without applying it.
	CalcRect(previous, parent Frame) Rect

	// Init creates the node's native resources inside its container.
	Init() error

	// Update resolves the node's rect and pushes it to the host.
	Update(previous, parent Frame)

	// Destroy releases native resources. The node cannot be reused.
	Destroy()

	attach(t *tree, id ContainerID) error
	attachable() error
}

// Component is the state every node shares: style, resolved rect, native
// handle, container reference and lifecycle state.
type Component struct {
	style     Style
	rect      Rect
	applied   Rect
	handle    Handle
	tree      *tree
	container ContainerID
	state     State
}

func newComponent(style Style) Component {
	return Component{style: style}
}

// Style returns the node's style.
func (c *Component) Style() Style {
	return c.style
}

// Rect returns the last resolved rect.
func (c *Component) Rect() Rect {
	return c.rect
}

// Handle returns the outer native handle, or 0 before Init.
func (c *Component) Handle() Handle {
	return c.handle
}

// State returns the lifecycle state.
func (c *Component) State() State {
	return c.state
}

// Container returns the ID of the container the node was appended to.
func (c *Component) Container() ContainerID {
	return c.container
}

// attachable reports why the node cannot be appended to a container.
func (c *Component) attachable() error {
	if c.state == StateDestroyed {
		return ErrDestroyed
	}
	if !c.container.IsZero() {
		return ErrAlreadyAttached
	}
	return nil
}

func (c *Component) attach(t *tree, id ContainerID) error {
	if err := c.attachable(); err != nil {
		return err
	}
	c.tree = t
	c.container = id
	c.state = StateAttached
	return nil
}

// begin checks that the node may be initialized and returns the host and the
// native handle of its container.
func (c *Component) begin(kind Kind, text string) (Host, Handle, error) {
	switch c.state {
	case StateDestroyed:
		return nil, 0, ErrDestroyed
	case StateInitialized, StateLive:
		return nil, 0, fmt.Errorf("boxflow: %s already initialized", kind)
	}
	if c.tree == nil {
		return nil, 0, &MissingParentError{Kind: kind, Text: text}
	}
	parent, ok := c.tree.handle(c.container)
	if !ok {
		return nil, 0, &MissingParentError{Kind: kind, Text: text}
	}
	return c.tree.host, parent, nil
}

// measure returns the intrinsic size of text. Unattached nodes have no
// measurer and measure as empty.
func (c *Component) measure(text string) Size {
	if c.tree == nil || c.tree.host == nil {
		return Size{}
	}
	w, h := c.tree.host.MeasureText(text)
	return Size{Width: w, Height: h}
}

// setRect records rect and pushes it to the host. It reports false when the
// push was skipped because the node has no native handle or the rect is the
// one last applied.
func (c *Component) setRect(rect Rect) bool {
	c.rect.Update(rect)
	if c.handle == 0 || c.state == StateDestroyed {
		return false
	}
	if c.state == StateLive && c.applied == rect {
		return false
	}
	c.tree.host.ApplyRect(c.handle, rect)
	c.applied = rect
	c.state = StateLive
	return true
}

// release destroys the given handles in order and marks the node destroyed.
func (c *Component) release(handles ...Handle) {
	if c.state == StateDestroyed {
		return
	}
	if c.tree != nil && c.tree.host != nil {
		for _, h := range handles {
			if h != 0 {
				c.tree.host.Destroy(h)
			}
		}
	}
	c.handle = 0
	c.state = StateDestroyed
}
