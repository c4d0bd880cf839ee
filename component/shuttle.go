package component

import "github.com/go-gl/mathgl/mgl64"

// Shuttle is the shuttlecock state
// The match machine holds the authoritative copy, lookahead works on value copies
type Shuttle struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	PrevPos mgl64.Vec2 // Position before the last integration step, for swept net tests
	Radius  float64

	LastHitter Side
	InPlay     bool
}

// Bottom returns the y of the lowest edge
func (s *Shuttle) Bottom() float64 {
	return s.Pos[1] + s.Radius
}
