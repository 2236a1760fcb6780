package choreo

import (
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/automoto/foldmenu/shared/timeline"
)

const (
	testSize   = 48.0
	testOffset = 16.0
	ms         = time.Millisecond
)

type fixture struct {
	menu   *Menu
	player *timeline.Player
	icons  []*timeline.Transform
	labels []*timeline.Transform
}

func newFixture(t *testing.T, n int, g Gravity, d TextDirection) *fixture {
	t.Helper()
	return newFixtureWith(t, n, Options{Gravity: g, Direction: d})
}

func newFixtureWith(t *testing.T, n int, opts Options) *fixture {
	t.Helper()
	fx := &fixture{player: timeline.NewPlayer()}
	items := make([]Item, n)
	for i := range items {
		icon, label := timeline.NewTransform(), timeline.NewTransform()
		fx.icons = append(fx.icons, icon)
		fx.labels = append(fx.labels, label)
		items[i] = Item{ID: fmt.Sprintf("item-%d", i), Icon: icon, Label: label}
	}
	opts.Size = testSize
	opts.LabelOffset = testOffset
	opts.Runner = fx.player
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

	m, err := New(items, opts)
	require.NoError(t, err)
	fx.menu = m
	return fx
}

func (fx *fixture) openFully(t *testing.T) {
	t.Helper()
	fx.menu.Open()
	fx.finish(t)
	require.Equal(t, Open, fx.menu.State())
}

func snapshot(ts []*timeline.Transform) []timeline.Transform {
	out := make([]timeline.Transform, len(ts))
	for i, tr := range ts {
		out[i] = *tr
	}
	return out
}

func requireSameTransforms(t *testing.T, want []timeline.Transform, got []*timeline.Transform) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDelta(t, want[i].RotationX, got[i].RotationX, 1e-9, "item %d RotationX", i)
		require.InDelta(t, want[i].RotationY, got[i].RotationY, 1e-9, "item %d RotationY", i)
		require.InDelta(t, want[i].TranslationX, got[i].TranslationX, 1e-9, "item %d TranslationX", i)
		require.InDelta(t, want[i].Alpha, got[i].Alpha, 1e-9, "item %d Alpha", i)
		require.Equal(t, want[i].Pivot, got[i].Pivot, "item %d Pivot", i)
	}
}

func TestNewValidation(t *testing.T) {
	icon, label := timeline.NewTransform(), timeline.NewTransform()
	one := []Item{{Icon: icon, Label: label}}

	_, err := New(nil, Options{Size: 1})
	require.ErrorIs(t, err, ErrNoItems)

	_, err = New(one, Options{Size: 1, Gravity: Gravity(7)})
	require.ErrorIs(t, err, ErrInvalidGravity)

	_, err = New(one, Options{Size: 1, Direction: TextDirection(3)})
	require.ErrorIs(t, err, ErrInvalidDirection)

	_, err = New(one, Options{})
	require.ErrorIs(t, err, ErrInvalidSize)

	_, err = New([]Item{{Icon: icon}}, Options{Size: 1})
	require.ErrorIs(t, err, ErrNilTarget)

	m, err := New(one, Options{Size: 1})
	require.NoError(t, err)
	require.Equal(t, Closed, m.State())
	require.Equal(t, DefaultDuration, m.AnimationDuration())
	require.NotNil(t, m.Runner())
}

func TestNewAssignsIndexesAndRegistry(t *testing.T) {
	fx := newFixture(t, 4, GravityEnd, LTR)

	for i, it := range fx.menu.Items() {
		require.Equal(t, i, it.Index)
		idx, ok := fx.menu.IndexOf(fx.icons[i])
		require.True(t, ok)
		require.Equal(t, i, idx)
		idx, ok = fx.menu.IndexOf(fx.labels[i])
		require.True(t, ok)
		require.Equal(t, i, idx)
	}
	_, ok := fx.menu.IndexOf(timeline.NewTransform())
	require.False(t, ok)
	require.Equal(t, 4, fx.menu.ItemCount())
}

func TestNewStartsHidden(t *testing.T) {
	fx := newFixture(t, 3, GravityEnd, LTR)

	require.Equal(t, -90.0, fx.icons[0].RotationY)
	for i := 1; i < 3; i++ {
		require.Equal(t, -90.0, fx.icons[i].RotationX)
		require.Equal(t, timeline.Pivot{X: testSize / 2, Y: 0}, fx.icons[i].Pivot)
	}
	for _, l := range fx.labels {
		require.Zero(t, l.Alpha)
		require.Equal(t, testOffset, l.TranslationX)
	}
}

// Three items, start gravity, left-to-right text, 100ms per item.
func TestOpenThenSelectScenario(t *testing.T) {
	fx := newFixtureWith(t, 3, Options{Gravity: GravityStart, Direction: LTR, Duration: 100 * ms})

	var selected []Item
	var stateAtCallback State
	fx.menu.OnSelect(func(it Item) {
		selected = append(selected, it)
		stateAtCallback = fx.menu.State()
	})

	fx.menu.Open()
	require.Equal(t, Opening, fx.menu.State())
	root := fx.menu.Timeline()
	require.Equal(t, 300*ms, root.Duration())

	anchor := leafFor(t, root, fx.icons[0], timeline.RotateY)
	require.Equal(t, 90.0, anchor.From)
	for i := 1; i < 3; i++ {
		leaf := leafFor(t, root, fx.icons[i], timeline.RotateX)
		require.Equal(t, -90.0, leaf.From)
		require.Equal(t, 0.0, leaf.To)
		require.Equal(t, -90.0, fx.icons[i].RotationX)
	}

	require.True(t, fx.player.Advance(300*ms))
	require.Equal(t, Open, fx.menu.State())
	require.True(t, fx.menu.IsOpen())
	require.Equal(t, 0.0, fx.icons[0].RotationY)
	for i := 1; i < 3; i++ {
		require.Equal(t, 0.0, fx.icons[i].RotationX)
	}

	require.NoError(t, fx.menu.Select(1))
	require.Equal(t, Selecting, fx.menu.State())

	plan := fx.menu.planSelection(1)
	require.Len(t, plan.above, 1)
	require.Len(t, plan.below, 1)
	require.True(t, plan.aboveLonger)

	sel := fx.menu.Timeline()
	require.Equal(t, 200*ms, sel.Duration())
	icons := sel.Children()[0]
	gate := icons.Children()[0]
	require.Same(t, fx.icons[0], gate.Children()[0].Leaves()[0].Target, "above chain gates the chosen fold")
	chosen := icons.Children()[1].Spec()
	require.Same(t, fx.icons[1], chosen.Target)
	require.Equal(t, timeline.RotateY, chosen.Property)
	require.Equal(t, 90.0, chosen.To)

	require.False(t, fx.player.Advance(100*ms))
	require.Empty(t, selected)
	require.Equal(t, Selecting, fx.menu.State())

	require.True(t, fx.player.Advance(100*ms))
	require.Len(t, selected, 1)
	require.Equal(t, 1, selected[0].Index)
	require.Equal(t, "item-1", selected[0].ID)
	require.Equal(t, Closed, stateAtCallback)
	require.Equal(t, Closed, fx.menu.State())
}

func TestOpenCloseRoundTrip(t *testing.T) {
	combos := []struct {
		g Gravity
		d TextDirection
	}{
		{GravityStart, LTR}, {GravityStart, RTL}, {GravityEnd, LTR}, {GravityEnd, RTL},
	}

	for n := 1; n <= 5; n++ {
		for _, c := range combos {
			t.Run(fmt.Sprintf("%d/%s/%s", n, c.g, c.d), func(t *testing.T) {
				fx := newFixture(t, n, c.g, c.d)
				icons, labels := snapshot(fx.icons), snapshot(fx.labels)

				fx.openFully(t)
				for _, l := range fx.labels {
					require.Equal(t, 1.0, l.Alpha)
					require.Equal(t, 0.0, l.TranslationX)
				}

				fx.menu.Close()
				require.Equal(t, Closing, fx.menu.State())
				fx.finish(t)
				require.Equal(t, Closed, fx.menu.State())

				requireSameTransforms(t, icons, fx.icons)
				requireSameTransforms(t, labels, fx.labels)
			})
		}
	}
}

func TestOpenCloseOrder(t *testing.T) {
	fx := newFixture(t, 3, GravityEnd, LTR)

	fx.menu.Open()
	open := fx.menu.Timeline()
	labels, icons := open.Children()[0], open.Children()[1]
	require.Equal(t, timeline.KindParallel, open.Kind())
	require.Equal(t, timeline.KindSequential, icons.Kind())
	for i, child := range icons.Children() {
		require.Same(t, fx.icons[i], child.Spec().Target)
	}
	for i, child := range labels.Children() {
		require.Len(t, child.Children(), 2, "label group fades and slides together")
		require.Same(t, fx.labels[i], child.Children()[0].Spec().Target)
	}
	fx.finish(t)

	fx.menu.Close()
	icons = fx.menu.Timeline().Children()[1]
	for k, child := range icons.Children() {
		require.Same(t, fx.icons[2-k], child.Spec().Target)
	}
}

func TestToggle(t *testing.T) {
	fx := newFixture(t, 2, GravityEnd, RTL)

	fx.menu.Toggle()
	require.Equal(t, Opening, fx.menu.State())
	fx.finish(t)
	require.True(t, fx.menu.IsOpen())

	fx.menu.Toggle()
	require.Equal(t, Closing, fx.menu.State())
	fx.finish(t)
	require.False(t, fx.menu.IsOpen())
}

func TestRequestsDuringTransitionAreDropped(t *testing.T) {
	for _, busy := range []State{Opening, Closing, Selecting} {
		t.Run(busy.String(), func(t *testing.T) {
			fx := newFixture(t, 3, GravityStart, LTR)
			fired := 0
			fx.menu.OnSelect(func(Item) { fired++ })

			switch busy {
			case Opening:
				fx.menu.Open()
			case Closing:
				fx.openFully(t)
				fx.menu.Close()
			case Selecting:
				fx.openFully(t)
				require.NoError(t, fx.menu.Select(2))
			}
			require.Equal(t, busy, fx.menu.State())
			root := fx.menu.Timeline()
			playing := fx.player.Root()

			fx.menu.Open()
			fx.menu.Close()
			fx.menu.Toggle()
			require.NoError(t, fx.menu.Select(0))
			fx.menu.Click(Click{Index: 1, ID: "item-1", Gesture: GestureClick})

			require.Equal(t, busy, fx.menu.State())
			require.Same(t, root, fx.menu.Timeline())
			require.Same(t, playing, fx.player.Root())

			fx.finish(t)
			if busy == Selecting {
				require.Equal(t, 1, fired)
			} else {
				require.Zero(t, fired)
			}
		})
	}
}

func TestInvalidStateRequestsAreIgnored(t *testing.T) {
	fx := newFixture(t, 2, GravityStart, LTR)
	fired := 0
	fx.menu.OnSelect(func(Item) { fired++ })

	fx.menu.Close()
	require.NoError(t, fx.menu.Select(1))
	require.Equal(t, Closed, fx.menu.State())
	require.Nil(t, fx.menu.Timeline())
	require.False(t, fx.player.Live())

	fx.openFully(t)
	open := fx.menu.Timeline()
	fx.menu.Open()
	require.Same(t, open, fx.menu.Timeline())
	require.Zero(t, fired)
}

func TestSelectionPartitionSizes(t *testing.T) {
	const n = 6
	for i := 0; i < n; i++ {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			fx := newFixture(t, n, GravityEnd, LTR)
			fx.openFully(t)

			plan := fx.menu.planSelection(i)
			require.Len(t, plan.above, i)
			require.Len(t, plan.below, n-1-i)
			require.Equal(t, i, plan.chosen.index)

			for k, g := range plan.above {
				require.Equal(t, i-1-k, g.index, "above chain runs nearest first")
				spec := g.icon.Spec()
				require.Equal(t, timeline.Pivot{X: testSize / 2, Y: testSize}, spec.Pivot)
				require.Equal(t, -90.0, spec.To)
			}
			for k, g := range plan.below {
				require.Equal(t, i+1+k, g.index, "below chain runs nearest first")
				require.Equal(t, timeline.Pivot{X: testSize / 2, Y: 0}, g.icon.Spec().Pivot)
			}

			chosen := plan.chosen.icon.Spec()
			require.Equal(t, timeline.RotateY, chosen.Property)
			require.Equal(t, timeline.Pivot{X: testSize, Y: testSize / 2}, chosen.Pivot)

			longest := max(i, n-1-i)
			require.Equal(t, time.Duration(longest+1)*DefaultDuration, plan.root.Duration())
		})
	}
}

func TestSelectionTieBreak(t *testing.T) {
	tests := []struct {
		n, i        int
		aboveLonger bool
	}{
		{5, 2, true},
		{3, 1, true},
		{1, 0, true},
		{4, 1, false},
		{4, 2, true},
		{4, 0, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.n, tt.i), func(t *testing.T) {
			fx := newFixture(t, tt.n, GravityStart, LTR)
			fx.openFully(t)

			plan := fx.menu.planSelection(tt.i)
			require.Equal(t, tt.aboveLonger, plan.aboveLonger)
			if len(plan.longer()) == 0 {
				return
			}
			gate := plan.root.Children()[0].Children()[0]
			first := gate.Children()[0].Leaves()[0].Target
			require.Same(t, plan.longer()[0].icon.Spec().Target, first)
		})
	}
}

func TestSelectionWaitsForLongerChain(t *testing.T) {
	fx := newFixtureWith(t, 4, Options{Gravity: GravityEnd, Direction: LTR, Curve: timeline.Linear})
	fx.openFully(t)

	var got []int
	fx.menu.OnSelect(func(it Item) { got = append(got, it.Index) })
	require.NoError(t, fx.menu.Select(0))

	fx.player.Advance(300 * ms)
	require.Equal(t, -90.0, fx.icons[3].RotationX)
	require.Equal(t, 0.0, fx.icons[0].RotationY, "chosen item waits for the chain")
	require.Empty(t, got)

	fx.player.Advance(100 * ms)
	require.Equal(t, []int{0}, got)
	require.Equal(t, -90.0, fx.icons[0].RotationY)
	require.Zero(t, fx.labels[0].Alpha)
}

func TestDurationChangeAppliesToNextTransition(t *testing.T) {
	fx := newFixture(t, 3, GravityEnd, LTR)

	fx.menu.Open()
	running := fx.menu.Timeline()
	fx.menu.SetAnimationDuration(250)
	require.Equal(t, 300*ms, running.Duration())

	require.True(t, fx.player.Advance(300*ms), "running transition keeps its length")
	require.Equal(t, Open, fx.menu.State())

	fx.menu.Close()
	require.Equal(t, 750*ms, fx.menu.Timeline().Duration())

	fx.menu.SetAnimationDuration(-5)
	require.Zero(t, fx.menu.AnimationDuration())
}

func TestSelectOutOfRange(t *testing.T) {
	fx := newFixture(t, 3, GravityEnd, LTR)
	fx.openFully(t)

	for _, i := range []int{-1, 3, 42} {
		err := fx.menu.Select(i)
		require.ErrorIs(t, err, ErrIndexOutOfRange)
	}
	require.Equal(t, Open, fx.menu.State())
}

func TestClickUnresolvableTargetIsDropped(t *testing.T) {
	fx := newFixture(t, 3, GravityEnd, LTR)
	fx.openFully(t)
	open := fx.menu.Timeline()
	fired := 0
	fx.menu.OnSelect(func(Item) { fired++ })

	fx.menu.Click(Click{Index: 7, ID: "item-7"})
	fx.menu.Click(Click{Index: -1})
	fx.menu.Click(Click{Index: 1, ID: "gone"})

	require.Equal(t, Open, fx.menu.State())
	require.Same(t, open, fx.menu.Timeline())
	require.False(t, fx.player.Live())
	require.Zero(t, fired)
}

func TestClickGestures(t *testing.T) {
	tests := []struct {
		name      string
		gesture   Gesture
		wantClick int
		wantLong  int
	}{
		{"default is click", 0, 1, 0},
		{"click", GestureClick, 1, 0},
		{"long", GestureLongClick, 0, 1},
		{"both", GestureClick | GestureLongClick, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t, 3, GravityStart, RTL)
			fx.openFully(t)

			var clicks, longs []string
			fx.menu.OnSelect(func(it Item) { clicks = append(clicks, it.ID) })
			fx.menu.OnLongSelect(func(it Item) { longs = append(longs, it.ID) })

			fx.menu.Click(Click{Index: 2, ID: "item-2", Gesture: tt.gesture})
			require.Equal(t, Selecting, fx.menu.State())
			fx.finish(t)

			require.Len(t, clicks, tt.wantClick)
			require.Len(t, longs, tt.wantLong)
			for _, id := range append(clicks, longs...) {
				require.Equal(t, "item-2", id)
			}
		})
	}
}

func TestSelectWithoutListeners(t *testing.T) {
	fx := newFixture(t, 2, GravityStart, LTR)
	fx.openFully(t)

	require.NoError(t, fx.menu.Select(0))
	fx.finish(t)
	require.Equal(t, Closed, fx.menu.State())
}

func TestReopenAfterSelection(t *testing.T) {
	fx := newFixture(t, 4, GravityEnd, RTL)
	hidden := snapshot(fx.icons)
	fx.openFully(t)
	fx.menu.OnSelect(func(Item) { fx.menu.Open() })

	require.NoError(t, fx.menu.Select(2))
	require.True(t, fx.player.Advance(time.Hour))

	require.Equal(t, Opening, fx.menu.State(), "listener may start the next transition")
	fx.finish(t)
	require.Equal(t, Open, fx.menu.State())

	fx.menu.Close()
	fx.finish(t)
	requireSameTransforms(t, hidden, fx.icons)
}
