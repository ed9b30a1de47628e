package layout

// IntrinsicPad is added to the measured text width to form a node's default
// and minimum width. Height gets no such padding.
const IntrinsicPad = 8

// Frame pairs a resolved rect with the style that produced it. It is the
// unit threaded through a flow pass as "previous" and "parent".
type Frame struct {
	Rect  Rect
	Style Style
}

// Calculate resolves the rect of a node with style own and measured content
// size intrinsic, placed after previous inside parent.
//
// previous is the zero Frame for the first child. Explicit left/right and
// top/bottom anchors override flow placement, with left beating right and top
// beating bottom. Without a vertical anchor the node is placed below the
// previous sibling, separated by both margins.
func Calculate(own Style, intrinsic Size, previous, parent Frame) Rect {
	var rect Rect

	// 1. Resolve spacing against the parent rect
	ppad := ResolvePadding(parent.Style, parent.Rect)
	pmarg := ResolveMargin(previous.Style, parent.Rect)
	marg := ResolveMargin(own, parent.Rect)

	// 2. Width within the parent's padding box
	availW := parent.Rect.Width() - ppad.Horizontal() - marg.Horizontal()
	width := own.Width.Or(Pixels(intrinsic.Width + IntrinsicPad)).Resolve(availW)
	if own.Overflow == OverflowUnset || own.Overflow == OverflowNone {
		width = clamp(width, intrinsic.Width+IntrinsicPad, availW)
	}
	width = nonDegenerate(width, availW)

	// 3. Horizontal position
	switch {
	case width >= availW:
		// Full bleed: no room for anchors to matter
		rect.Left = ppad.Left + marg.Left
	case own.Left.IsSet():
		rect.Left = ppad.Left + own.Left.Resolve(parent.Rect.Width()) + marg.Left
	case own.Right.IsSet():
		rect.Left = parent.Rect.Right - own.Right.Resolve(parent.Rect.Width()) - ppad.Right - width - marg.Right
	default:
		rect.Left = ppad.Left + marg.Left
	}
	rect.Right = rect.Left + width

	// 4. Height; the floor is the bare text height
	availH := parent.Rect.Height() - ppad.Vertical() - marg.Vertical()
	height := own.Height.Or(Pixels(intrinsic.Height + IntrinsicPad)).Resolve(availH)
	height = clamp(height, intrinsic.Height, availH)
	height = nonDegenerate(height, availH)

	// 5. Vertical position
	switch {
	case own.Top.IsSet():
		rect.Top = ppad.Top + own.Top.Resolve(parent.Rect.Height()) + marg.Top
	case own.Bottom.IsSet():
		rect.Top = parent.Rect.Bottom - own.Bottom.Resolve(parent.Rect.Height()) - ppad.Bottom - height - marg.Bottom
	default:
		rect.Top = previous.Rect.Bottom + pmarg.Bottom + marg.Top
		if previous.Rect.Bottom == 0 {
			// First in flow starts inside the padding box
			rect.Top += ppad.Top
		} else {
			rect.Top += parent.Style.Gap.Resolve(parent.Rect.Height())
		}
	}
	rect.Bottom = rect.Top + height

	return rect
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins so content is never cut below its footprint.
func clamp(v, minVal, maxVal int) int {
	if v > maxVal {
		v = maxVal
	}
	if v < minVal {
		v = minVal
	}
	return v
}

// nonDegenerate zeroes a dimension when there is negative space to put it in,
// and never returns a negative size.
func nonDegenerate(size, available int) int {
	if available < 0 || size < 0 {
		return 0
	}
	return size
}
