package parameter

// Court geometry in world units, x grows right and y grows down
const (
	CourtWidth  = 800.0
	CourtHeight = 600.0

	// GroundY is the floor height, the shuttle lands when its bottom edge reaches it
	GroundY = 520.0

	// CourtMidX splits the human half (left) from the AI half (right)
	CourtMidX = CourtWidth / 2

	// OutMargin is how far past the court lines the shuttle may travel before the rally ends
	OutMargin = 40.0
)

// Net
const (
	NetX         = CourtMidX
	NetHalfWidth = 3.0
	NetHeight    = 90.0
	NetTopY      = GroundY - NetHeight

	// NetBounceDamping scales the reversed vx when the shuttle clips the tape from above
	NetBounceDamping = 0.35

	// NetCatchDamping scales vx when the shuttle drives into the net body
	NetCatchDamping = 0.1

	// NetDropSpeed is the downward velocity forced on a shuttle caught in the net
	NetDropSpeed = 1.5

	// NetClearance keeps a repositioned shuttle just outside the band
	NetClearance = 0.5
)

// Service boxes, measured from the net on the receiver's side
const (
	ServiceShort = 80.0
	ServiceLong  = 300.0
)
