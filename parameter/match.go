package parameter

// Scoring
const (
	WinScore   = 21
	WinMargin  = 2
	DeuceScore = 20
)

// PointPauseTicks holds PointScored before the next serve is set up
const PointPauseTicks = 45
