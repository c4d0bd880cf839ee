package events

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/component"
)

// HitPayload describes a racket contact
type HitPayload struct {
	Side  component.Side
	Serve bool
	Shot  string // AI stroke name, empty for human hits and serves
	Pos   mgl64.Vec2
	Speed float64 // Launch speed after the hit
}

// NetTouchPayload carries the net contact kind
type NetTouchPayload struct {
	Tape bool // Tape rebound rather than a body catch
	Pos  mgl64.Vec2
}

// PointScoredPayload carries the rally result and the updated score
type PointScoredPayload struct {
	Winner    component.Side
	Score     component.Score
	Deuce     bool
	RallyHits int
	LandingX  float64
	Out       bool // Decided by leaving the court rather than a ground landing
}

// ServeReadyPayload names the side about to serve
type ServeReadyPayload struct {
	Server component.Side
	Score  component.Score
}

// MatchOverPayload carries the final result and the ledger state after it was applied
type MatchOverPayload struct {
	Winner  component.Side
	Score   component.Score
	Rallies int
	Hits    int
	Rank    int
	Tier    int
	Points  int
}
