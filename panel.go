package boxflow

import (
	"errors"
	"fmt"
)

var _ Node = (*Panel)(nil)

// Panel is a nested container. It is placed by the flow like any other node
// and flows its own children inside its rect, with its own style as the
// parent style. A panel has no content of its own, so its intrinsic size is
// zero.
type Panel struct {
	Component
	self     ContainerID
	children []Node
}

// NewPanel creates an unattached panel holding children.
func NewPanel(style Style, children ...Node) *Panel {
	return &Panel{Component: newComponent(style), children: children}
}

// Children returns the panel's children in flow order.
func (p *Panel) Children() []Node {
	return p.children
}

// Append adds children to the panel. Children appended to an initialized panel
// are initialized immediately and placed on the next flow pass.
func (p *Panel) Append(nodes ...Node) error {
	var errs []error
	for i, n := range nodes {
		if !p.self.IsZero() {
			if err := n.attach(p.tree, p.self); err != nil {
				errs = append(errs, fmt.Errorf("append child %d: %w", i, err))
				continue
			}
		}
		p.children = append(p.children, n)
		if p.state == StateInitialized || p.state == StateLive {
			if err := n.Init(); err != nil {
				errs = append(errs, fmt.Errorf("init child %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// attachable checks the panel and its whole subtree, so a failed append
// leaves every node untouched.
func (p *Panel) attachable() error {
	if err := p.Component.attachable(); err != nil {
		return err
	}
	var errs []error
	for i, n := range p.children {
		if err := n.attachable(); err != nil {
			errs = append(errs, fmt.Errorf("attach child %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func (p *Panel) attach(t *tree, id ContainerID) error {
	if err := p.attachable(); err != nil {
		return err
	}
	p.Component.attach(t, id)
	p.self = t.add()
	for _, n := range p.children {
		n.attach(t, p.self)
	}
	return nil
}

func (p *Panel) CalcRect(previous, parent Frame) Rect {
	return Calculate(p.style, Size{}, previous, parent)
}

// Init creates the native panel, then initializes every child inside it.
func (p *Panel) Init() error {
	host, parent, err := p.begin(KindPanel, "")
	if err != nil {
		return err
	}
	h, err := host.Create(NativeSpec{Kind: KindPanel, Style: p.style, Parent: parent})
	if err != nil {
		return fmt.Errorf("create panel: %w", err)
	}
	p.handle = h
	p.tree.setHandle(p.self, h)
	p.state = StateInitialized

	var errs []error
	for i, n := range p.children {
		if err := n.Init(); err != nil {
			errs = append(errs, fmt.Errorf("init child %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Update places the panel, then flows its children against the panel's
// client area. Children always see the normalized rect since their rects
// are relative to the panel.
func (p *Panel) Update(previous, parent Frame) {
	if p.state == StateDestroyed {
		return
	}
	rect := p.CalcRect(previous, parent)
	p.setRect(rect)
	flow(p.children, Frame{Rect: rect.Normalized(), Style: p.style})
}

// Destroy releases every child, then the panel itself.
func (p *Panel) Destroy() {
	if p.state == StateDestroyed {
		return
	}
	for i := len(p.children) - 1; i >= 0; i-- {
		p.children[i].Destroy()
	}
	p.release(p.handle)
	if p.tree != nil {
		p.tree.setHandle(p.self, 0)
	}
}
