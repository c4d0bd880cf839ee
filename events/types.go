package events

// EventType represents the type of match event
type EventType int

const (
	// EventHit signals a racket contact or a serve
	// Trigger: MatchMachine on serve launch and on every resolved hit
	// Consumer: AudioHandler, status | Payload: *HitPayload
	EventHit EventType = iota

	// EventNetTouch signals the shuttle clipped the tape or hit the net body
	// Trigger: MatchMachine on a net outcome
	// Consumer: AudioHandler | Payload: *NetTouchPayload
	EventNetTouch

	// EventPointScored signals a finished rally
	// Trigger: MatchMachine entering PointScored or MatchOver
	// Consumer: LifecycleHandler, AudioHandler | Payload: *PointScoredPayload
	EventPointScored

	// EventServeReady signals the shuttle is parked beside the server
	// Trigger: MatchMachine entering AwaitingServe
	// Consumer: LifecycleHandler | Payload: *ServeReadyPayload
	EventServeReady

	// EventMatchOver signals the terminal score was reached
	// Trigger: MatchMachine after the deciding point, ledger already applied
	// Consumer: LifecycleHandler, AudioHandler | Payload: *MatchOverPayload
	EventMatchOver
)

var eventNames = [...]string{
	EventHit:         "Hit",
	EventNetTouch:    "NetTouch",
	EventPointScored: "PointScored",
	EventServeReady:  "ServeReady",
	EventMatchOver:   "MatchOver",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "Unknown"
	}
	return eventNames[t]
}

// GameEvent represents a single match event with metadata
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64 // Simulation tick that produced the event
}
