package boxflow

import "fmt"

var _ Node = (*Text)(nil)

// Text is a static label.
type Text struct {
	Component
	text string
}

// NewText creates an unattached label.
func NewText(text string, style Style) *Text {
	return &Text{Component: newComponent(style), text: text}
}

// Text returns the label.
func (t *Text) Text() string {
	return t.text
}

func (t *Text) CalcRect(previous, parent Frame) Rect {
	return Calculate(t.style, t.measure(t.text), previous, parent)
}

func (t *Text) Init() error {
	host, parent, err := t.begin(KindText, t.text)
	if err != nil {
		return err
	}
	h, err := host.Create(NativeSpec{Kind: KindText, Text: t.text, Style: t.style, Parent: parent})
	if err != nil {
		return fmt.Errorf("create text: %w", err)
	}
	t.handle = h
	t.state = StateInitialized
	return nil
}

func (t *Text) Update(previous, parent Frame) {
	if t.state == StateDestroyed {
		return
	}
	t.setRect(t.CalcRect(previous, parent))
}

func (t *Text) Destroy() {
	t.release(t.handle)
}
