// Package hitbox maps pointer positions to menu rows using a resolv space.
package hitbox

import "github.com/solarlune/resolv"

// ResolvItem tags every row object in the space.
const ResolvItem = "menuitem"

// Grid owns one resolv object per row. Rows never move, so objects are placed
// once and looked up by probing the space with a 1x1 object.
type Grid struct {
	space   *resolv.Space
	objects []*resolv.Object
}

// New creates a grid covering a width x height area.
func New(width, height, cellSize int) *Grid {
	if cellSize <= 0 {
		cellSize = 1
	}
	return &Grid{space: resolv.NewSpace(width, height, cellSize, cellSize)}
}

// Place registers row index at the given rectangle.
func (g *Grid) Place(index int, x, y, w, h float64) {
	obj := resolv.NewObject(x, y, w, h, ResolvItem)
	obj.Data = index
	g.space.Add(obj)
	g.objects = append(g.objects, obj)
}

// Clear removes every row.
func (g *Grid) Clear() {
	g.space.Remove(g.objects...)
	g.objects = g.objects[:0]
}

func (g *Grid) Len() int {
	return len(g.objects)
}

// At returns the row under (x, y).
func (g *Grid) At(x, y float64) (int, bool) {
	probe := resolv.NewObject(x, y, 1, 1)
	g.space.Add(probe)
	defer g.space.Remove(probe)

	check := probe.Check(0, 0, ResolvItem)
	if check == nil {
		return -1, false
	}
	for _, obj := range check.ObjectsByTags(ResolvItem) {
		if !contains(obj, x, y) {
			continue
		}
		if index, ok := obj.Data.(int); ok {
			return index, true
		}
	}
	return -1, false
}

// contains filters out broadphase neighbours that share a cell but not the point.
func contains(obj *resolv.Object, x, y float64) bool {
	return x >= obj.X && x < obj.X+obj.W && y >= obj.Y && y < obj.Y+obj.H
}
