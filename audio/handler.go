package audio

import (
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/events"
	"github.com/lixenwraith/rally/match"
)

// Player is the cue surface the handler drives
type Player interface {
	PlayHit(speed float64, serve bool)
	PlayNet(tape bool)
	PlayPoint(humanWon bool)
	PlayMatchOver(humanWon bool)
}

// Handler maps match events to sound cues
// Trigger: router dispatch after each tick | Consumer of Hit, NetTouch, PointScored, MatchOver
type Handler[T any] struct {
	player Player
}

func NewHandler[T any](p Player) *Handler[T] {
	return &Handler[T]{player: p}
}

func (h *Handler[T]) EventTypes() []events.EventType {
	return []events.EventType{
		events.EventHit,
		events.EventNetTouch,
		events.EventPointScored,
		events.EventMatchOver,
	}
}

func (h *Handler[T]) HandleEvent(_ T, ev events.GameEvent) {
	switch p := ev.Payload.(type) {
	case *events.HitPayload:
		h.player.PlayHit(p.Speed, p.Serve)
	case *events.NetTouchPayload:
		h.player.PlayNet(p.Tape)
	case *events.PointScoredPayload:
		// The deciding point is announced by MatchOver alone
		if !match.Decided(p.Score) {
			h.player.PlayPoint(p.Winner == component.SideHuman)
		}
	case *events.MatchOverPayload:
		h.player.PlayMatchOver(p.Winner == component.SideHuman)
	}
}
