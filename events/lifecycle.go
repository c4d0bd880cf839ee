package events

import "github.com/lixenwraith/rally/component"

// Lifecycle receives the coarse match transitions the UI reacts to
type Lifecycle interface {
	OnPointScored(winner component.Side, score component.Score)
	OnMatchOver(winner component.Side, score component.Score)
	OnServeReady(server component.Side)
}

// LifecycleHandler adapts a Lifecycle to the router
type LifecycleHandler[T any] struct {
	Target Lifecycle
}

func NewLifecycleHandler[T any](target Lifecycle) *LifecycleHandler[T] {
	return &LifecycleHandler[T]{Target: target}
}

func (h *LifecycleHandler[T]) EventTypes() []EventType {
	return []EventType{EventPointScored, EventMatchOver, EventServeReady}
}

func (h *LifecycleHandler[T]) HandleEvent(_ T, ev GameEvent) {
	switch p := ev.Payload.(type) {
	case *PointScoredPayload:
		h.Target.OnPointScored(p.Winner, p.Score)
	case *MatchOverPayload:
		h.Target.OnMatchOver(p.Winner, p.Score)
	case *ServeReadyPayload:
		h.Target.OnServeReady(p.Server)
	}
}
