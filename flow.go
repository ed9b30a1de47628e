package boxflow

// flow places children in order inside parent. Each child is resolved against
// the rect and style of the child before it, so the pass is sequential.
// Destroyed children take no space.
func flow(children []Node, parent Frame) {
	var previous Frame
	for _, child := range children {
		if child.State() == StateDestroyed {
			continue
		}
		child.Update(previous, parent)
		previous = Frame{Rect: child.Rect(), Style: child.Style()}
	}
}

// Flow resolves the rects of nodes without a host, as a fresh flow pass
// inside parent would. Nodes are not modified.
func Flow(nodes []Node, parent Frame) []Rect {
	rects := make([]Rect, len(nodes))
	var previous Frame
	for i, n := range nodes {
		rects[i] = n.CalcRect(previous, parent)
		previous = Frame{Rect: rects[i], Style: n.Style()}
	}
	return rects
}
