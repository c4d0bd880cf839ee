package parameter

import "math"

// Shuttle flight, all rates are per tick
const (
	ShuttleRadius = 6.0

	// ShuttleGravity is added to vy every tick
	ShuttleGravity = 0.25

	// ShuttleDrag is the quadratic drag coefficient k in dv = -k*v*|v|
	ShuttleDrag = 0.0015

	// PredictMaxSteps caps landing lookahead for near-zero vertical velocity
	PredictMaxSteps = 600

	// ServeElevation is the launch angle of a serve above horizontal
	ServeElevation = 40.0 * math.Pi / 180

	// ServeHoldOffsetX/Y park the shuttle beside the server's racket hand
	ServeHoldOffsetX = 18.0
	ServeHoldOffsetY = 52.0
)

// Shooting-method aim, binary search over launch speed
const (
	AimMinSpeed   = 2.0
	AimMaxSpeed   = 28.0
	AimIterations = 20
)
