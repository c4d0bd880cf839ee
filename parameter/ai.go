package parameter

// Reaction latency in ticks, reactionTicks = max(ReactionMin, ReactionBase - rank*ReactionScale)
const (
	ReactionBase  = 18
	ReactionScale = 3
	ReactionMin   = 4
)

// Positioning noise in world units, shrinking with rank
const (
	NoiseBase  = 60.0
	NoiseScale = 9.0
	NoiseMin   = 6.0
)

// Decision probabilities per roll
const (
	SwingCommitChance    = 0.85
	SwingCommitRankBonus = 0.02
	ServeChancePerTick   = 0.02
	ServeChanceRankBonus = 0.01
	JumpChancePerTick    = 0.08
	JumpWindowX          = 40.0
	JumpMinAbove         = 20.0
	JumpMaxAbove         = 150.0
	TrackDeadZone        = 4.0
)

// Shot selection thresholds
const (
	// ShotNearNetDist is the AI distance to the net under which it plays net shots
	ShotNearNetDist = 160.0

	// ShotHighHeight is the shuttle height above ground that permits a smash
	ShotHighHeight = 110.0

	// ShotTargetJitter spreads AI targets around the nominal point
	ShotTargetJitter = 30.0
)
