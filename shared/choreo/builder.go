package choreo

import (
	"time"

	"github.com/automoto/foldmenu/shared/timeline"
)

const (
	sideFold     = 90.0
	verticalFold = -90.0
)

type role int

const (
	roleOpenAnchor role = iota
	roleOpenFollower
	roleCloseAnchor
	roleCloseFollower
)

// itemGroup is everything one item plays during a transition: the icon fold
// and the label fade+slide.
type itemGroup struct {
	index int
	icon  *timeline.Timeline
	label *timeline.Timeline
}

// builder produces leaf animations for a single transition. It is rebuilt for
// every transition so a duration change never reaches a running timeline.
type builder struct {
	res      Resolution
	size     float64
	offset   float64
	duration time.Duration
}

func (b builder) anchorPivot() timeline.Pivot {
	return timeline.Pivot{X: b.res.PivotSide.Offset(b.size), Y: b.size / 2}
}

func (b builder) followerPivot(toTop bool) timeline.Pivot {
	p := timeline.Pivot{X: b.size / 2}
	if toTop {
		p.Y = b.size
	}
	return p
}

// resetAnchor sets the side pivot and, when the menu is closed, snaps the
// icon to its folded pose.
func (b builder) resetAnchor(icon timeline.Target, closed bool) {
	if closed {
		icon.Set(timeline.RotateX, 0)
		icon.Set(timeline.RotateY, b.res.FoldAngle())
	}
	icon.SetPivot(b.anchorPivot())
}

func (b builder) resetFollower(icon timeline.Target, toTop, closed bool) {
	if closed {
		icon.Set(timeline.RotateY, 0)
		icon.Set(timeline.RotateX, verticalFold)
	}
	icon.SetPivot(b.followerPivot(toTop))
}

func (b builder) resetLabel(label timeline.Target, closed bool) {
	if closed {
		label.Set(timeline.Alpha, 0)
		label.Set(timeline.TranslateX, b.res.LabelShift(b.offset))
		return
	}
	label.Set(timeline.Alpha, 1)
	label.Set(timeline.TranslateX, 0)
}

func (b builder) rotation(t timeline.Target, p timeline.Property, from, to float64, pivot timeline.Pivot) *timeline.Timeline {
	return timeline.Leaf(timeline.Spec{
		Target:   t,
		Property: p,
		From:     from,
		To:       to,
		Pivot:    pivot,
		Duration: b.duration,
	})
}

func (b builder) anchorIcon(icon timeline.Target, closing bool) *timeline.Timeline {
	from, to := b.res.FoldAngle(), 0.0
	if closing {
		from, to = to, from
	}
	return b.rotation(icon, timeline.RotateY, from, to, b.anchorPivot())
}

func (b builder) followerIcon(icon timeline.Target, closing, toTop bool) *timeline.Timeline {
	from, to := verticalFold, 0.0
	if closing {
		from, to = to, from
	}
	return b.rotation(icon, timeline.RotateX, from, to, b.followerPivot(toTop))
}

// labelGroup fades and slides a label in parallel.
func (b builder) labelGroup(label timeline.Target, closing bool) *timeline.Timeline {
	shift := b.res.LabelShift(b.offset)
	alphaFrom, alphaTo := 0.0, 1.0
	moveFrom, moveTo := shift, 0.0
	if closing {
		alphaFrom, alphaTo = alphaTo, alphaFrom
		moveFrom, moveTo = moveTo, moveFrom
	}
	return timeline.Parallel(
		timeline.Leaf(timeline.Spec{Target: label, Property: timeline.Alpha, From: alphaFrom, To: alphaTo, Duration: b.duration}),
		timeline.Leaf(timeline.Spec{Target: label, Property: timeline.TranslateX, From: moveFrom, To: moveTo, Duration: b.duration}),
	)
}

// group builds the animation of one item in one of the four open/close roles.
// toTop only affects followers.
func (b builder) group(it Item, r role, toTop bool) itemGroup {
	g := itemGroup{index: it.Index}
	switch r {
	case roleOpenAnchor:
		g.icon = b.anchorIcon(it.Icon, false)
	case roleCloseAnchor:
		g.icon = b.anchorIcon(it.Icon, true)
	case roleOpenFollower:
		g.icon = b.followerIcon(it.Icon, false, toTop)
	case roleCloseFollower:
		g.icon = b.followerIcon(it.Icon, true, toTop)
	}
	closing := r == roleCloseAnchor || r == roleCloseFollower
	g.label = b.labelGroup(it.Label, closing)
	return g
}

func roleFor(index int, closing bool) role {
	switch {
	case index == 0 && closing:
		return roleCloseAnchor
	case index == 0:
		return roleOpenAnchor
	case closing:
		return roleCloseFollower
	}
	return roleOpenFollower
}

// chain plays the groups one after another on two parallel tracks.
func chain(groups []itemGroup) (icons, labels *timeline.Timeline) {
	iconList := make([]*timeline.Timeline, 0, len(groups))
	labelList := make([]*timeline.Timeline, 0, len(groups))
	for _, g := range groups {
		iconList = append(iconList, g.icon)
		labelList = append(labelList, g.label)
	}
	return timeline.Sequential(iconList...), timeline.Sequential(labelList...)
}
