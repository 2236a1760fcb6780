package timeline

import (
	"fmt"
	"math"
)

// Property identifies one animatable channel of a visual element.
type Property int

const (
	RotateX Property = iota
	RotateY
	TranslateX
	Alpha
)

func (p Property) String() string {
	switch p {
	case RotateX:
		return "RotateX"
	case RotateY:
		return "RotateY"
	case TranslateX:
		return "TranslateX"
	case Alpha:
		return "Alpha"
	default:
		return fmt.Sprintf("Property(%d)", int(p))
	}
}

// IsRotation reports whether the property is applied around a pivot.
func (p Property) IsRotation() bool {
	return p == RotateX || p == RotateY
}

// Pivot is the point, in element-local units, held fixed during a rotation.
type Pivot struct {
	X, Y float64
}

// Target receives animated values. Implementations must be comparable
// (pointer types) because the menu keys its registry on them.
type Target interface {
	Set(p Property, v float64)
	SetPivot(p Pivot)
}

// Transform is the default Target: the full animatable state of one element.
type Transform struct {
	RotationX    float64 // degrees
	RotationY    float64 // degrees
	TranslationX float64
	Alpha        float64
	Pivot        Pivot
}

// NewTransform returns a fully visible, untransformed element.
func NewTransform() *Transform {
	return &Transform{Alpha: 1}
}

func (t *Transform) Set(p Property, v float64) {
	switch p {
	case RotateX:
		t.RotationX = v
	case RotateY:
		t.RotationY = v
	case TranslateX:
		t.TranslationX = v
	case Alpha:
		t.Alpha = v
	}
}

func (t *Transform) SetPivot(p Pivot) {
	t.Pivot = p
}

// Get returns the current value of a property.
func (t *Transform) Get(p Property) float64 {
	switch p {
	case RotateX:
		return t.RotationX
	case RotateY:
		return t.RotationY
	case TranslateX:
		return t.TranslationX
	case Alpha:
		return t.Alpha
	}
	return 0
}

// Scale projects the two fold rotations onto a flat surface: a rotation
// around the Y axis narrows the element, a rotation around X flattens it.
func (t *Transform) Scale() (sx, sy float64) {
	sx = math.Abs(math.Cos(t.RotationY * math.Pi / 180))
	sy = math.Abs(math.Cos(t.RotationX * math.Pi / 180))
	return sx, sy
}
