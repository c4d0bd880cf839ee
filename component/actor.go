package component

import "github.com/go-gl/mathgl/mgl64"

// Actor is the shared body and swing state of a player
// Pos is the feet position: x at body center, y at the sole
type Actor struct {
	Side   Side
	Pos    mgl64.Vec2
	Vel    mgl64.Vec2
	Facing Facing

	OnGround bool

	// Swing window, SwingTimer > 0 implies SwingCooldown > 0
	SwingTimer    int  // Ticks remaining with a live racket
	SwingCooldown int  // Ticks until a new swing may start
	SwingStarted  bool // Set on the tick a swing began

	// PrepPower is the accumulated power charge in [0, parameter.MaxPrep]
	PrepPower float64

	// MinX/MaxX bound the body center to this actor's half
	MinX, MaxX float64
}

// Intent is the per-tick output of a controller
type Intent struct {
	DesiredVx float64
	Jump      bool
	Swing     bool
	Charge    bool
}
