package physics

import (
	"math"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/vmath"
)

// NetContact classifies a net interaction
type NetContact uint8

const (
	NetNone NetContact = iota
	// NetTape is a clip over the top, the shuttle bounces back
	NetTape
	// NetBody is a drive into the mesh, the shuttle drops
	NetBody
)

// ResolveNet applies the net rule to s and reports the contact kind
// The approach side comes from PrevPos so a fast shuttle cannot tunnel through the band
func ResolveNet(s *component.Shuttle) NetContact {
	left := parameter.NetX - parameter.NetHalfWidth
	right := parameter.NetX + parameter.NetHalfWidth

	overlapX := s.Pos[0]+s.Radius > left && s.Pos[0]-s.Radius < right
	crossed := (s.PrevPos[0]-parameter.NetX)*(s.Pos[0]-parameter.NetX) < 0
	if !overlapX && !crossed {
		return NetNone
	}
	// Band spans NetTopY..GroundY
	if s.Pos[1]+s.Radius <= parameter.NetTopY {
		return NetNone
	}

	approach := approachDir(s)

	if s.Pos[1] < parameter.NetTopY {
		s.Vel[0] = -s.Vel[0] * parameter.NetBounceDamping
		s.Pos[0] = parameter.NetX - approach*(parameter.NetHalfWidth+s.Radius+parameter.NetClearance)
		return NetTape
	}

	s.Vel[0] *= parameter.NetCatchDamping
	s.Vel[1] = math.Max(s.Vel[1], parameter.NetDropSpeed)
	s.Pos[0] = parameter.NetX - approach*(parameter.NetHalfWidth+parameter.NetClearance)
	return NetBody
}

// approachDir is +1 when the shuttle came from the left half, -1 from the right
func approachDir(s *component.Shuttle) float64 {
	if d := vmath.Sign(parameter.NetX - s.PrevPos[0]); d != 0 {
		return d
	}
	if d := vmath.Sign(s.Vel[0]); d != 0 {
		return d
	}
	return 1
}
