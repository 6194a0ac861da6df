package physics

import "github.com/vovakirdan/paddle-arcade/internal/core"

// Edge is the viewport side a body left through.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
	EdgeTop
	EdgeBottom
)

// String returns the edge name.
func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	default:
		return "none"
	}
}

// ExitNotifier fires once when a tracked body leaves the viewport completely.
// It re-arms as soon as the body overlaps the viewport again.
type ExitNotifier struct {
	Viewport core.RectF

	exited    bool
	observers []func(Edge)
}

// NewExitNotifier creates a notifier for the given viewport.
func NewExitNotifier(viewport core.RectF) *ExitNotifier {
	return &ExitNotifier{Viewport: viewport}
}

// OnExit registers an observer called with the exit edge.
func (n *ExitNotifier) OnExit(fn func(Edge)) {
	n.observers = append(n.observers, fn)
}

// Check tests bounds against the viewport and returns the edge if this call fired.
func (n *ExitNotifier) Check(bounds core.RectF) Edge {
	if bounds.Intersects(n.Viewport) {
		n.exited = false
		return EdgeNone
	}
	if n.exited {
		return EdgeNone
	}
	n.exited = true

	edge := n.edgeOf(bounds)
	for _, fn := range n.observers {
		fn(edge)
	}
	return edge
}

// Rearm clears the fired flag, e.g. after the body was teleported back.
func (n *ExitNotifier) Rearm() {
	n.exited = false
}

func (n *ExitNotifier) edgeOf(b core.RectF) Edge {
	vp := n.Viewport
	switch {
	case b.Right() <= vp.X:
		return EdgeLeft
	case b.X >= vp.Right():
		return EdgeRight
	case b.Bottom() <= vp.Y:
		return EdgeTop
	default:
		return EdgeBottom
	}
}
