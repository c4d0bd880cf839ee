package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/vmath"
)

// Step advances the shuttle by one tick: quadratic drag, gravity, then position by the new velocity
func Step(s *component.Shuttle) {
	s.Vel = ApplyDrag(s.Vel, parameter.ShuttleDrag)
	s.Vel[1] += parameter.ShuttleGravity
	sanitize(&s.Vel)

	s.PrevPos = s.Pos
	s.Pos = s.Pos.Add(s.Vel)
}

// ApplyDrag returns v after dv = -k*v*|v|
// The factor is floored at 0 so drag can only shrink the magnitude
func ApplyDrag(v mgl64.Vec2, k float64) mgl64.Vec2 {
	speed := v.Len()
	if speed == 0 {
		return v
	}
	factor := 1 - k*speed
	if factor < 0 {
		factor = 0
	}
	return v.Mul(factor)
}

// SetImpulse overrides velocity (hit, serve)
func SetImpulse(s *component.Shuttle, v mgl64.Vec2) {
	sanitize(&v)
	s.Vel = v
}

// Aim searches the launch speed along elevation (radians above horizontal, toward dir)
// whose predicted landing is nearest targetX, net rule included
func Aim(from mgl64.Vec2, targetX, elevation, dir float64) mgl64.Vec2 {
	lo, hi := parameter.AimMinSpeed, parameter.AimMaxSpeed
	probe := component.Shuttle{Pos: from, PrevPos: from, Radius: parameter.ShuttleRadius}
	for i := 0; i < parameter.AimIterations; i++ {
		mid := (lo + hi) / 2
		probe.Vel = launch(mid, elevation, dir)
		if (PredictLanding(probe)-targetX)*dir < 0 {
			lo = mid
		} else {
			hi = mid
		}
	}
	v := launch((lo+hi)/2, elevation, dir)
	sanitize(&v)
	return v
}

func launch(speed, elevation, dir float64) mgl64.Vec2 {
	return mgl64.Vec2{dir * speed * math.Cos(elevation), -speed * math.Sin(elevation)}
}

// Speed returns |v|
func Speed(s *component.Shuttle) float64 {
	return s.Vel.Len()
}

// sanitize zeroes non-finite components
func sanitize(v *mgl64.Vec2) {
	for i := range v {
		if !vmath.Finite(v[i]) {
			v[i] = 0
		}
	}
}
