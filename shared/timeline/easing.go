package timeline

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Curve maps linear progress in [0, 1] to eased progress in [0, 1].
type Curve func(t float64) float64

// Linear leaves progress untouched.
func Linear(t float64) float64 {
	return t
}

// Hesitate decelerates into the midpoint and accelerates out of it.
var Hesitate = NewHesitate(3)

// NewHesitate returns 0.5*(sgn(x)*|x|^power + 1) with x = 2t-1. A power of 1
// is linear; anything above 1 flattens the slope at t = 0.5 to zero.
func NewHesitate(power float64) Curve {
	if power < 1 {
		power = 1
	}
	return func(t float64) float64 {
		t = clamp01(t)
		x := 2*t - 1
		y := math.Pow(math.Abs(x), power)
		if x < 0 {
			y = -y
		}
		return 0.5 * (y + 1)
	}
}

// FromTween wraps a gween easing function, such as ease.OutCubic, as a Curve.
func FromTween(fn ease.TweenFunc) Curve {
	return func(t float64) float64 {
		return float64(fn(float32(clamp01(t)), 0, 1, 1))
	}
}

// Tween adapts the curve to gween's (time, begin, change, duration) signature.
func (c Curve) Tween() ease.TweenFunc {
	return func(t, b, change, d float32) float32 {
		if d <= 0 {
			return b + change
		}
		return b + change*float32(c(float64(t/d)))
	}
}

func clamp01(t float64) float64 {
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}
