package collision

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/physics"
	"github.com/lixenwraith/rally/vmath"
)

// Shot is an AI stroke type
type Shot uint8

const (
	ShotNone Shot = iota
	ShotSmash
	ShotDrop
	ShotClear
)

func (s Shot) String() string {
	switch s {
	case ShotSmash:
		return "smash"
	case ShotDrop:
		return "drop"
	case ShotClear:
		return "clear"
	default:
		return "none"
	}
}

// ShotProfile maps a stroke to a landing depth and launch angle
type ShotProfile struct {
	Depth     float64 // Target distance past the net into the opponent half
	Elevation float64 // Launch angle above horizontal, negative drives down
}

var shotProfiles = [...]ShotProfile{
	ShotSmash: {Depth: 200, Elevation: -5 * math.Pi / 180},
	ShotDrop:  {Depth: 80, Elevation: 50 * math.Pi / 180},
	ShotClear: {Depth: 320, Elevation: 55 * math.Pi / 180},
}

// Profile returns the flight profile of a stroke
func Profile(shot Shot) ShotProfile {
	if int(shot) >= len(shotProfiles) || shot == ShotNone {
		return shotProfiles[ShotClear]
	}
	return shotProfiles[shot]
}

// SelectShot picks a stroke from shuttle height and the striker's distance to the net
// High near the net smashes, low near the net drops, everything else clears
func SelectShot(a *component.Actor, s *component.Shuttle) Shot {
	height := parameter.GroundY - s.Pos[1]
	nearNet := math.Abs(a.Pos[0]-parameter.NetX) < parameter.ShotNearNetDist

	switch {
	case nearNet && height > parameter.ShotHighHeight:
		return ShotSmash
	case nearNet:
		return ShotDrop
	default:
		return ShotClear
	}
}

// ShotTarget returns the jittered landing x of a stroke played by a
func ShotTarget(a *component.Actor, shot Shot, rng vmath.Rand) float64 {
	depth := Profile(shot).Depth + vmath.Spread(rng, parameter.ShotTargetJitter)
	return parameter.NetX + a.Facing.Dir()*depth
}

// ShotVelocity aims the shuttle from its current position at the stroke target
func ShotVelocity(a *component.Actor, s *component.Shuttle, shot Shot, rng vmath.Rand) mgl64.Vec2 {
	return physics.Aim(s.Pos, ShotTarget(a, shot, rng), Profile(shot).Elevation, a.Facing.Dir())
}
