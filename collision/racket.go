package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/actor"
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/vmath"
)

// ShuttleBox returns the shuttle's bounding square
func ShuttleBox(s *component.Shuttle) vmath.Rect {
	return vmath.RectAround(s.Pos, 2*s.Radius, 2*s.Radius)
}

// RacketContact reports whether a's live racket overlaps the shuttle
// A side may not strike twice in a row, so the last hitter never connects
func RacketContact(a *component.Actor, s *component.Shuttle) bool {
	if !actor.Swinging(a) || s.LastHitter == a.Side {
		return false
	}
	return actor.RacketBox(a).Overlaps(ShuttleBox(s))
}

// HumanHitVelocity returns the outgoing velocity of a human strike:
// base power plus the prep charge, launched at HumanHitAngle toward the opponent
func HumanHitVelocity(a *component.Actor) mgl64.Vec2 {
	power := parameter.HumanBasePower + a.PrepPower
	return mgl64.Vec2{
		a.Facing.Dir() * power * math.Cos(parameter.HumanHitAngle),
		-power * math.Sin(parameter.HumanHitAngle),
	}
}
