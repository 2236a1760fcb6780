// Package layout places menu rows on screen and projects folded icons onto
// flat rectangles.
package layout

import (
	"github.com/automoto/foldmenu/shared/choreo"
	"github.com/automoto/foldmenu/shared/timeline"
)

// LabelPadding separates label text from the icon column.
const LabelPadding = 12.0

type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Column is a vertical stack of rows. Icons hug the screen edge the anchor
// folds toward; labels sit on the inner side.
type Column struct {
	X, Y       float64 // Top-left of the first icon
	Size       float64
	LabelWidth float64
	IconsLeft  bool
	Count      int
}

// Params describes the column to build.
type Params struct {
	ScreenWidth float64
	Count       int
	Size        float64
	LabelWidth  float64
	MarginX     float64
	MarginY     float64
	Resolution  choreo.Resolution
}

// NewColumn puts icons on the left when the anchor pivots on its near edge
// and on the right otherwise.
func NewColumn(p Params) Column {
	c := Column{
		Y:          p.MarginY,
		Size:       p.Size,
		LabelWidth: p.LabelWidth,
		IconsLeft:  p.Resolution.PivotSide == choreo.NearEdge,
		Count:      p.Count,
	}
	if c.IconsLeft {
		c.X = p.MarginX
	} else {
		c.X = p.ScreenWidth - p.MarginX - p.Size
	}
	return c
}

func (c Column) Icon(i int) Rect {
	return Rect{X: c.X, Y: c.Y + float64(i)*c.Size, W: c.Size, H: c.Size}
}

func (c Column) Label(i int) Rect {
	icon := c.Icon(i)
	if c.IconsLeft {
		return Rect{X: icon.X + c.Size, Y: icon.Y, W: c.LabelWidth, H: c.Size}
	}
	return Rect{X: icon.X - c.LabelWidth, Y: icon.Y, W: c.LabelWidth, H: c.Size}
}

// Row is the clickable area of row i: its icon and label together.
func (c Column) Row(i int) Rect {
	icon, label := c.Icon(i), c.Label(i)
	x := icon.X
	if label.X < x {
		x = label.X
	}
	return Rect{X: x, Y: icon.Y, W: icon.W + label.W, H: icon.H}
}

// Height of the whole column.
func (c Column) Height() float64 {
	return float64(c.Count) * c.Size
}

// Project flattens a rotated square: it shrinks along each fold axis
// toward the transform's pivot.
func Project(r Rect, t *timeline.Transform) Rect {
	sx, sy := t.Scale()
	return Rect{
		X: r.X + t.Pivot.X*(1-sx),
		Y: r.Y + t.Pivot.Y*(1-sy),
		W: r.W * sx,
		H: r.H * sy,
	}
}

// TextX returns where a label of the given text width starts. Text is
// aligned toward the icons and shifted by the label's translation.
func (c Column) TextX(i int, textWidth float64, t *timeline.Transform) float64 {
	label := c.Label(i)
	x := label.X + label.W - LabelPadding - textWidth
	if c.IconsLeft {
		x = label.X + LabelPadding
	}
	return x + t.TranslationX
}
