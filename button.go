package boxflow

import "fmt"

var _ Node = (*Button)(nil)

// Button is a push button. It is backed by two native controls: a wrapper
// panel positioned by the flow, and the button itself filling the wrapper.
type Button struct {
	Component
	text    string
	inner   Handle
	onClick func()
}

// ButtonOption configures a Button.
type ButtonOption func(*Button)

// WithOnClick sets the function invoked when the button is pressed.
func WithOnClick(fn func()) ButtonOption {
	return func(b *Button) {
		b.onClick = fn
	}
}

// NewButton creates an unattached button.
func NewButton(text string, style Style, opts ...ButtonOption) *Button {
	b := &Button{Component: newComponent(style), text: text}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Text returns the button label.
func (b *Button) Text() string {
	return b.text
}

// Inner returns the handle of the button control inside the wrapper.
func (b *Button) Inner() Handle {
	return b.inner
}

// Click invokes the click handler, if any.
func (b *Button) Click() {
	if b.onClick != nil && b.state != StateDestroyed {
		b.onClick()
	}
}

// CalcRect resolves the wrapper rect from the measured label.
func (b *Button) CalcRect(previous, parent Frame) Rect {
	return Calculate(b.style, b.measure(b.text), previous, parent)
}

// Init creates the wrapper and the inner button.
func (b *Button) Init() error {
	host, parent, err := b.begin(KindButton, b.text)
	if err != nil {
		return err
	}

	wrapper, err := host.Create(NativeSpec{
		Kind:   KindPanel,
		Style:  Style{Background: TransparentBrush()},
		Parent: parent,
	})
	if err != nil {
		return fmt.Errorf("create button wrapper: %w", err)
	}
	inner, err := host.Create(NativeSpec{
		Kind:       KindButton,
		Text:       b.text,
		Style:      b.style,
		Parent:     wrapper,
		OnActivate: b.Click,
	})
	if err != nil {
		host.Destroy(wrapper)
		return fmt.Errorf("create button: %w", err)
	}

	b.handle = wrapper
	b.inner = inner
	b.state = StateInitialized
	return nil
}

// Update resolves and applies the wrapper rect, then sizes the inner button
// to fill it.
func (b *Button) Update(previous, parent Frame) {
	if b.state == StateDestroyed {
		return
	}
	rect := b.CalcRect(previous, parent)
	if b.setRect(rect) && b.inner != 0 {
		b.tree.host.ApplyRect(b.inner, rect.Normalized())
	}
}

// Destroy releases the inner button, then the wrapper.
func (b *Button) Destroy() {
	b.release(b.inner, b.handle)
	b.inner = 0
}
