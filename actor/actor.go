// Package actor holds the player body model shared by the human and AI sides
package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/vmath"
)

// New creates an actor standing at its home position, facing the net
func New(side component.Side) *component.Actor {
	a := &component.Actor{Side: side}
	halfW := parameter.ActorWidth / 2
	switch side {
	case component.SideAI:
		a.Facing = component.FacingLeft
		a.MinX = parameter.NetX + parameter.ActorNetMargin + halfW
		a.MaxX = parameter.CourtWidth - parameter.ActorWallMargin - halfW
	default:
		a.Facing = component.FacingRight
		a.MinX = parameter.ActorWallMargin + halfW
		a.MaxX = parameter.NetX - parameter.ActorNetMargin - halfW
	}
	Reset(a)
	return a
}

// Reset returns the actor to its home position with a fresh swing state
func Reset(a *component.Actor) {
	a.Pos = mgl64.Vec2{HomeX(a.Side), parameter.GroundY}
	a.Vel = mgl64.Vec2{}
	a.OnGround = true
	a.SwingTimer = 0
	a.SwingCooldown = 0
	a.SwingStarted = false
	a.PrepPower = 0
}

// HomeX returns the rest position of a side
func HomeX(side component.Side) float64 {
	if side == component.SideAI {
		return parameter.AIHomeX
	}
	return parameter.HumanHomeX
}

// Update advances the actor one tick under the given intent
func Update(a *component.Actor, in component.Intent) {
	a.SwingStarted = false
	if a.SwingTimer > 0 {
		a.SwingTimer--
	}
	if a.SwingCooldown > 0 {
		a.SwingCooldown--
	}

	ChargePrep(a, in.Charge)

	if in.Swing {
		StartSwing(a)
	}

	// Horizontal
	a.Vel[0] = vmath.Clamp(in.DesiredVx, -parameter.ActorMoveSpeed, parameter.ActorMoveSpeed)
	a.Pos[0] = vmath.Clamp(a.Pos[0]+a.Vel[0], a.MinX, a.MaxX)

	// Vertical
	if in.Jump && a.OnGround {
		a.Vel[1] = parameter.ActorJumpVelocity
		a.OnGround = false
	}
	if !a.OnGround {
		a.Vel[1] += parameter.ActorGravity
		a.Pos[1] += a.Vel[1]
		if a.Pos[1] >= parameter.GroundY {
			a.Pos[1] = parameter.GroundY
			a.Vel[1] = 0
			a.OnGround = true
		}
	}
}

// StartSwing opens the swing window if the cooldown has elapsed
func StartSwing(a *component.Actor) bool {
	if a.SwingCooldown > 0 {
		return false
	}
	a.SwingTimer = parameter.SwingActiveTicks
	a.SwingCooldown = parameter.SwingCooldownTicks
	a.SwingStarted = true
	return true
}

// ConsumeSwing closes the live window after a hit and restarts the cooldown
func ConsumeSwing(a *component.Actor) {
	a.SwingTimer = 0
	a.SwingCooldown = parameter.SwingCooldownTicks
}

// ChargePrep builds power while held and bleeds it off otherwise
func ChargePrep(a *component.Actor, held bool) {
	if held {
		a.PrepPower = math.Min(a.PrepPower+parameter.PrepChargeRate, parameter.MaxPrep)
		return
	}
	a.PrepPower = math.Max(a.PrepPower-parameter.PrepDecayRate, 0)
}

// Swinging reports a live racket
func Swinging(a *component.Actor) bool {
	return a.SwingTimer > 0
}

// ArmAngle returns the arm angle from vertical, sweeping forward through the active window
func ArmAngle(a *component.Actor) float64 {
	if a.SwingTimer <= 0 {
		return parameter.ArmReadyAngle
	}
	progress := 1 - float64(a.SwingTimer)/float64(parameter.SwingActiveTicks)
	return vmath.Lerp(parameter.ArmReadyAngle, parameter.ArmFollowAngle, progress)
}

// Shoulder returns the arm pivot
func Shoulder(a *component.Actor) mgl64.Vec2 {
	return mgl64.Vec2{
		a.Pos[0] + a.Facing.Dir()*parameter.ShoulderOffsetX,
		a.Pos[1] - parameter.ShoulderHeight,
	}
}

// RacketHand returns the racket head center for the current arm angle
func RacketHand(a *component.Actor) mgl64.Vec2 {
	theta := ArmAngle(a)
	s := Shoulder(a)
	return mgl64.Vec2{
		s[0] + a.Facing.Dir()*parameter.ArmLength*math.Sin(theta),
		s[1] - parameter.ArmLength*math.Cos(theta),
	}
}

// RacketBox returns the hit square around the racket hand
func RacketBox(a *component.Actor) vmath.Rect {
	return vmath.RectAround(RacketHand(a), parameter.RacketBoxSize, parameter.RacketBoxSize)
}

// ReachBox is the region the racket sweeps during a swing, used for AI commit decisions
func ReachBox(a *component.Actor) vmath.Rect {
	s := Shoulder(a)
	r := parameter.ArmLength + parameter.RacketBoxSize/2
	return vmath.Rect{
		Min: mgl64.Vec2{s[0] - r, s[1] - r},
		Max: mgl64.Vec2{s[0] + r, s[1] + r},
	}.Grow(parameter.ReachPadding)
}

// Body returns the actor's bounding box
func Body(a *component.Actor) vmath.Rect {
	c := mgl64.Vec2{a.Pos[0], a.Pos[1] - parameter.ActorHeight/2}
	return vmath.RectAround(c, parameter.ActorWidth, parameter.ActorHeight)
}
