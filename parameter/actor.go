package parameter

import "math"

// Actor body, in world units
const (
	ActorWidth  = 30.0
	ActorHeight = 60.0

	// ActorMoveSpeed caps |desiredVx| per tick
	ActorMoveSpeed = 5.0

	ActorJumpVelocity = -9.0
	ActorGravity      = 0.5

	// ActorNetMargin keeps actors this far from the net line
	ActorNetMargin = 20.0

	// ActorWallMargin keeps actors inside the back line
	ActorWallMargin = 10.0

	HumanHomeX = 150.0
	AIHomeX    = 650.0
)

// Swing timing in ticks, cooldown must exceed the active window
const (
	SwingActiveTicks   = 10
	SwingCooldownTicks = 24
)

// Racket geometry
const (
	ShoulderHeight  = 48.0
	ShoulderOffsetX = 4.0
	ArmLength       = 34.0
	RacketBoxSize   = 28.0

	// Arm angle measured from straight up toward the facing direction
	ArmReadyAngle  = -30.0 * math.Pi / 180
	ArmFollowAngle = 110.0 * math.Pi / 180

	// ReachPadding grows the racket box when the AI judges whether a shuttle is hittable
	ReachPadding = 14.0
)

// Power charge
const (
	MaxPrep        = 6.0
	PrepChargeRate = 0.15
	PrepDecayRate  = 0.3

	HumanBasePower = 12.0
	HumanHitAngle  = 55.0 * math.Pi / 180
)
