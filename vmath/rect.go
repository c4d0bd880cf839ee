package vmath

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned box, Min is the top-left corner
type Rect struct {
	Min, Max mgl64.Vec2
}

// RectAround returns a box of the given size centered on c
func RectAround(c mgl64.Vec2, w, h float64) Rect {
	hw, hh := w/2, h/2
	return Rect{
		Min: mgl64.Vec2{c[0] - hw, c[1] - hh},
		Max: mgl64.Vec2{c[0] + hw, c[1] + hh},
	}
}

// Overlaps reports strict intersection, touching edges do not count
func (r Rect) Overlaps(o Rect) bool {
	return r.Min[0] < o.Max[0] && r.Max[0] > o.Min[0] &&
		r.Min[1] < o.Max[1] && r.Max[1] > o.Min[1]
}

// Grow expands every side by d
func (r Rect) Grow(d float64) Rect {
	return Rect{
		Min: mgl64.Vec2{r.Min[0] - d, r.Min[1] - d},
		Max: mgl64.Vec2{r.Max[0] + d, r.Max[1] + d},
	}
}

func (r Rect) Center() mgl64.Vec2 {
	return mgl64.Vec2{(r.Min[0] + r.Max[0]) / 2, (r.Min[1] + r.Max[1]) / 2}
}
