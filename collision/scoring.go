package collision

import (
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
)

// SideOf returns the half containing x
func SideOf(x float64) component.Side {
	if x < parameter.CourtMidX {
		return component.SideHuman
	}
	return component.SideAI
}

// InBounds reports whether x lies within the court lines
func InBounds(x float64) bool {
	return x >= 0 && x <= parameter.CourtWidth
}

// Escaped reports a shuttle past the court lines by more than OutMargin
func Escaped(s *component.Shuttle) bool {
	return s.Pos[0] < -parameter.OutMargin || s.Pos[0] > parameter.CourtWidth+parameter.OutMargin
}

// Grounded reports a shuttle whose bottom edge reached the floor
func Grounded(s *component.Shuttle) bool {
	return s.Bottom() >= parameter.GroundY
}

// DecideWinner credits the rally for a shuttle that landed or left the court
// Serve with no hitter: the receiver wins
// In bounds: the side whose half it landed on loses
// Out of bounds: the last hitter loses
func DecideWinner(s *component.Shuttle, server component.Side) component.Side {
	if s.LastHitter == component.SideNone {
		return server.Opponent()
	}
	if !InBounds(s.Pos[0]) {
		return s.LastHitter.Opponent()
	}
	return SideOf(s.Pos[0]).Opponent()
}
