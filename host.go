package boxflow

// Handle is an opaque reference to a native resource issued by a Host.
// The zero Handle refers to nothing.
type Handle uint64

// Kind identifies the native control a node asks its host to create.
type Kind uint8

const (
	KindWindow Kind = iota
	KindPanel
	KindButton
	KindText
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindWindow:
		return "window"
	case KindPanel:
		return "panel"
	case KindButton:
		return "button"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// NativeSpec describes a native control to create.
type NativeSpec struct {
	Kind  Kind
	Text  string // Label, or the title for KindWindow
	Style Style

	// Parent is the control this one is placed in. Rects applied to the new
	// control are relative to the parent's client area. Zero for windows.
	Parent Handle

	// OnActivate is invoked by the host when a button is pressed.
	OnActivate func()
}

// Measurer reports the intrinsic size of text.
type Measurer interface {
	MeasureText(text string) (width, height int)
}

// Host owns native resources. Layout never touches a native control directly:
// it asks the host to create it, pushes every resolved rect through
// ApplyRect, and asks the host to release it.
type Host interface {
	Measurer

	// Create makes a native control and returns its handle.
	Create(spec NativeSpec) (Handle, error)

	// ApplyRect moves and resizes a control and requests a repaint.
	// Applying the same rect twice must have no visible effect.
	ApplyRect(h Handle, r Rect)

	// Destroy releases a control. Unknown handles are ignored.
	Destroy(h Handle)

	// ClientRect returns the current client area of a control.
	ClientRect(h Handle) Rect
}

// ResizeNotifier is implemented by hosts that report client area changes.
// The callback must not be invoked from within NotifyResize itself.
type ResizeNotifier interface {
	NotifyResize(h Handle, fn func(Rect))
}
