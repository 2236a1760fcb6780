package timeline

import "time"

// Kind tells how a node combines its children.
type Kind int

const (
	KindLeaf Kind = iota
	KindSequential
	KindParallel
)

func (k Kind) String() string {
	switch k {
	case KindLeaf:
		return "leaf"
	case KindSequential:
		return "sequential"
	case KindParallel:
		return "parallel"
	}
	return "unknown"
}

// Spec describes one primitive effect on one visual element. Pivot is only
// meaningful for rotations.
type Spec struct {
	Target   Target
	Property Property
	From     float64
	To       float64
	Pivot    Pivot
	Duration time.Duration
}

// Timeline is an immutable-shape tree of Spec leaves. Only the root's easing
// curve is honoured by the Player; completion callbacks may hang off any node.
type Timeline struct {
	kind       Kind
	spec       Spec
	children   []*Timeline
	easing     Curve
	onComplete func()
}

// Leaf wraps a single Spec.
func Leaf(s Spec) *Timeline {
	if s.Duration < 0 {
		s.Duration = 0
	}
	return &Timeline{kind: KindLeaf, spec: s}
}

// Sequential plays children one after another. Nil children are skipped.
func Sequential(children ...*Timeline) *Timeline {
	return &Timeline{kind: KindSequential, children: compact(children)}
}

// Parallel starts all children together.
func Parallel(children ...*Timeline) *Timeline {
	return &Timeline{kind: KindParallel, children: compact(children)}
}

func compact(in []*Timeline) []*Timeline {
	out := make([]*Timeline, 0, len(in))
	for _, c := range in {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (t *Timeline) Kind() Kind {
	return t.kind
}

// Spec returns the leaf description; zero for group nodes.
func (t *Timeline) Spec() Spec {
	return t.spec
}

func (t *Timeline) Children() []*Timeline {
	out := make([]*Timeline, len(t.children))
	copy(out, t.children)
	return out
}

// Duration is the sum of the children for sequential nodes and the maximum
// for parallel ones.
func (t *Timeline) Duration() time.Duration {
	switch t.kind {
	case KindLeaf:
		return t.spec.Duration
	case KindSequential:
		var total time.Duration
		for _, c := range t.children {
			total += c.Duration()
		}
		return total
	default:
		var longest time.Duration
		for _, c := range t.children {
			if d := c.Duration(); d > longest {
				longest = d
			}
		}
		return longest
	}
}

// WithEasing sets the curve applied to this node's progress when it is played
// as a root.
func (t *Timeline) WithEasing(c Curve) *Timeline {
	t.easing = c
	return t
}

// Easing returns the node's curve, Linear when none was set.
func (t *Timeline) Easing() Curve {
	if t.easing == nil {
		return Linear
	}
	return t.easing
}

// OnComplete registers the single callback fired when this node finishes.
// A later call replaces the earlier one.
func (t *Timeline) OnComplete(fn func()) *Timeline {
	t.onComplete = fn
	return t
}

// HasCallback reports whether a completion callback is attached.
func (t *Timeline) HasCallback() bool {
	return t.onComplete != nil
}

// Leaves returns every leaf spec in depth-first order.
func (t *Timeline) Leaves() []Spec {
	var out []Spec
	t.walk(func(n *Timeline) {
		if n.kind == KindLeaf {
			out = append(out, n.spec)
		}
	})
	return out
}

func (t *Timeline) walk(fn func(*Timeline)) {
	fn(t)
	for _, c := range t.children {
		c.walk(fn)
	}
}
