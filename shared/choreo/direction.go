package choreo

import (
	"fmt"
	"strings"
)

// Gravity is the logical side the menu is attached to, before any mirroring.
type Gravity int

const (
	GravityStart Gravity = iota
	GravityEnd
)

func (g Gravity) String() string {
	switch g {
	case GravityStart:
		return "start"
	case GravityEnd:
		return "end"
	}
	return fmt.Sprintf("Gravity(%d)", int(g))
}

func (g Gravity) valid() bool {
	return g == GravityStart || g == GravityEnd
}

// ParseGravity accepts "start" or "end", case-insensitively.
func ParseGravity(s string) (Gravity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return GravityStart, nil
	case "end":
		return GravityEnd, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidGravity, s)
}

// TextDirection is supplied by the host at construction.
type TextDirection int

const (
	LTR TextDirection = iota
	RTL
)

func (d TextDirection) String() string {
	switch d {
	case LTR:
		return "ltr"
	case RTL:
		return "rtl"
	}
	return fmt.Sprintf("TextDirection(%d)", int(d))
}

func (d TextDirection) valid() bool {
	return d == LTR || d == RTL
}

// PivotSide selects which vertical edge of the anchor stays fixed during the
// side fold.
type PivotSide int

const (
	NearEdge PivotSide = iota
	FarEdge
)

func (s PivotSide) String() string {
	if s == FarEdge {
		return "far"
	}
	return "near"
}

// Offset converts the side into an x coordinate inside an item of the given size.
func (s PivotSide) Offset(size float64) float64 {
	if s == FarEdge {
		return size
	}
	return 0
}

// Resolution is the outcome of Resolve.
type Resolution struct {
	RotationSign float64
	PivotSide    PivotSide
}

// Resolve maps the menu's side and the text direction to the side-fold sign
// and the anchor's pivot edge.
//
//	End   + LTR -> -1, far
//	End   + RTL -> +1, near
//	Start + LTR -> +1, near
//	Start + RTL -> -1, far
func Resolve(g Gravity, d TextDirection) Resolution {
	mirrored := d == RTL
	if g == GravityEnd {
		mirrored = !mirrored
	}
	if mirrored {
		return Resolution{RotationSign: -1, PivotSide: FarEdge}
	}
	return Resolution{RotationSign: 1, PivotSide: NearEdge}
}

// FoldAngle is the anchor's folded RotateY.
func (r Resolution) FoldAngle() float64 {
	return 90 * r.RotationSign
}

// LabelShift is the signed translation of a hidden label. Labels tuck in
// toward the icon column, opposite to the fold.
func (r Resolution) LabelShift(offset float64) float64 {
	return -r.RotationSign * offset
}
