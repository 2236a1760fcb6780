// Package choreo drives the open, close and select choreography of a folding
// menu. It owns no clock: timelines are handed to a Runner which is advanced
// by the host's frame loop.
package choreo

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/automoto/foldmenu/shared/timeline"
)

// DefaultDuration is the length of a single item animation.
const DefaultDuration = 100 * time.Millisecond

// State is the menu's position in its transition cycle.
type State int

const (
	Closed State = iota
	Opening
	Open
	Closing
	Selecting
)

func (s State) String() string {
	switch s {
	case Closed:
		return "closed"
	case Opening:
		return "opening"
	case Open:
		return "open"
	case Closing:
		return "closing"
	case Selecting:
		return "selecting"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Busy reports whether a transition is in flight.
func (s State) Busy() bool {
	return s == Opening || s == Closing || s == Selecting
}

// Item is one row of the menu. Index is assigned by New.
type Item struct {
	Index int
	ID    string
	Icon  timeline.Target
	Label timeline.Target
}

// Gesture is the set of listeners a click arms.
type Gesture uint8

const (
	GestureClick Gesture = 1 << iota
	GestureLongClick
)

// Click is a selection request coming from the host's input layer.
type Click struct {
	Index   int
	ID      string
	Gesture Gesture
}

// Runner plays a root timeline; *timeline.Player is the usual implementation.
type Runner interface {
	Play(root *timeline.Timeline)
}

type Options struct {
	Size        float64 // layout unit: item height and icon width
	LabelOffset float64 // distance a hidden label is shifted by
	Gravity     Gravity
	Direction   TextDirection
	Duration    time.Duration // per item; zero means DefaultDuration
	Curve       timeline.Curve
	Runner      Runner
	Logger      *slog.Logger
}

// Menu is the choreographer. It is not safe for concurrent use; all calls are
// expected from the goroutine that advances the Runner.
type Menu struct {
	items    []Item
	registry map[timeline.Target]int

	size      float64
	offset    float64
	gravity   Gravity
	direction TextDirection
	duration  time.Duration
	curve     timeline.Curve
	runner    Runner
	log       *slog.Logger

	state State
	last  *timeline.Timeline

	onSelect     func(Item)
	onLongSelect func(Item)
}

// New validates the construction inputs and returns a closed menu.
func New(items []Item, opts Options) (*Menu, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if !opts.Gravity.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGravity, int(opts.Gravity))
	}
	if !opts.Direction.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, int(opts.Direction))
	}
	if opts.Size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, opts.Size)
	}

	m := &Menu{
		items:     make([]Item, len(items)),
		registry:  make(map[timeline.Target]int, 2*len(items)),
		size:      opts.Size,
		offset:    opts.LabelOffset,
		gravity:   opts.Gravity,
		direction: opts.Direction,
		duration:  opts.Duration,
		curve:     opts.Curve,
		runner:    opts.Runner,
		log:       opts.Logger,
	}
	if m.duration <= 0 {
		m.duration = DefaultDuration
	}
	if m.curve == nil {
		m.curve = timeline.Hesitate
	}
	if m.runner == nil {
		m.runner = timeline.NewPlayer()
	}
	if m.log == nil {
		m.log = slog.Default()
	}

	for i, it := range items {
		if it.Icon == nil || it.Label == nil {
			return nil, fmt.Errorf("%w: item %d", ErrNilTarget, i)
		}
		it.Index = i
		m.items[i] = it
		m.registry[it.Icon] = i
		m.registry[it.Label] = i
	}

	// Hidden until the first open.
	b := m.builder()
	for _, it := range m.items {
		b.resetLabel(it.Label, true)
		if it.Index == 0 {
			b.resetAnchor(it.Icon, true)
		} else {
			b.resetFollower(it.Icon, false, true)
		}
	}
	return m, nil
}

func (m *Menu) OnSelect(fn func(Item)) {
	m.onSelect = fn
}

func (m *Menu) OnLongSelect(fn func(Item)) {
	m.onLongSelect = fn
}

// SetAnimationDuration applies to the next transition only.
func (m *Menu) SetAnimationDuration(millis int) {
	if millis < 0 {
		millis = 0
	}
	m.duration = time.Duration(millis) * time.Millisecond
	m.log.Debug("menu duration changed", "millis", millis)
}

func (m *Menu) AnimationDuration() time.Duration {
	return m.duration
}

func (m *Menu) ItemCount() int {
	return len(m.items)
}

func (m *Menu) IsOpen() bool {
	return m.state == Open
}

func (m *Menu) State() State {
	return m.state
}

func (m *Menu) Gravity() Gravity {
	return m.gravity
}

func (m *Menu) Direction() TextDirection {
	return m.direction
}

// Items returns a copy of the item list.
func (m *Menu) Items() []Item {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out
}

// IndexOf resolves an icon or label target back to its item index.
func (m *Menu) IndexOf(t timeline.Target) (int, bool) {
	i, ok := m.registry[t]
	return i, ok
}

// Timeline returns the root of the most recently started transition.
func (m *Menu) Timeline() *timeline.Timeline {
	return m.last
}

func (m *Menu) Runner() Runner {
	return m.runner
}

func (m *Menu) Toggle() {
	if m.state == Open {
		m.Close()
		return
	}
	m.Open()
}

func (m *Menu) Open() {
	if !m.accept("open", Closed) {
		return
	}
	root := m.openClose(false)
	root.OnComplete(func() { m.settle(Open) })
	m.start(Opening, root)
}

func (m *Menu) Close() {
	if !m.accept("close", Open) {
		return
	}
	root := m.openClose(true)
	root.OnComplete(func() { m.settle(Closed) })
	m.start(Closing, root)
}

// Select collapses the menu onto item i and fires the click listener. An
// index outside the list is a caller error.
func (m *Menu) Select(i int) error {
	if i < 0 || i >= len(m.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, i, len(m.items))
	}
	m.selectItem(i, GestureClick)
	return nil
}

// Click handles a selection gesture from the input layer. Clicks that no
// longer point at a menu item are dropped.
func (m *Menu) Click(c Click) {
	if c.Index < 0 || c.Index >= len(m.items) || m.items[c.Index].ID != c.ID {
		m.log.Debug("menu click dropped", "index", c.Index, "id", c.ID)
		return
	}
	g := c.Gesture
	if g == 0 {
		g = GestureClick
	}
	m.selectItem(c.Index, g)
}

func (m *Menu) selectItem(i int, g Gesture) {
	if !m.accept("select", Open) {
		return
	}

	item := m.items[i]
	var listeners []func(Item)
	if g&GestureClick != 0 && m.onSelect != nil {
		listeners = append(listeners, m.onSelect)
	}
	if g&GestureLongClick != 0 && m.onLongSelect != nil {
		listeners = append(listeners, m.onLongSelect)
	}

	plan := m.planSelection(i)
	plan.chosen.icon.OnComplete(func() {
		m.settle(Closed)
		for _, fn := range listeners {
			fn(item)
		}
	})
	m.start(Selecting, plan.root)
}

// accept applies the debounce rule and the state precondition.
func (m *Menu) accept(request string, want State) bool {
	if m.state.Busy() {
		m.log.Debug("menu request debounced", "request", request, "state", m.state)
		return false
	}
	if m.state != want {
		m.log.Debug("menu request ignored", "request", request, "state", m.state)
		return false
	}
	return true
}

func (m *Menu) start(s State, root *timeline.Timeline) {
	m.state = s
	m.last = root
	m.log.Info("menu transition started", "state", s, "items", len(m.items), "duration", root.Duration())
	m.runner.Play(root)
}

func (m *Menu) settle(s State) {
	m.state = s
	m.log.Info("menu transition finished", "state", s)
}

func (m *Menu) builder() builder {
	return builder{
		res:      Resolve(m.gravity, m.direction),
		size:     m.size,
		offset:   m.offset,
		duration: m.duration,
	}
}

// openClose resets every item to a known pose and chains the item groups,
// top-down when opening and bottom-up when closing.
func (m *Menu) openClose(closing bool) *timeline.Timeline {
	b := m.builder()
	closed := m.state == Closed
	for _, it := range m.items {
		b.resetLabel(it.Label, closed)
		if it.Index == 0 {
			b.resetAnchor(it.Icon, closed)
		} else {
			b.resetFollower(it.Icon, false, closed)
		}
	}

	groups := make([]itemGroup, 0, len(m.items))
	for k := range m.items {
		i := k
		if closing {
			i = len(m.items) - 1 - k
		}
		groups = append(groups, b.group(m.items[i], roleFor(i, closing), false))
	}
	icons, labels := chain(groups)
	return timeline.Parallel(labels, icons).WithEasing(m.curve)
}
