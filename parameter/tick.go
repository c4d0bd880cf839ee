package parameter

import "time"

// Engine timing
const (
	TickRate     = 60
	TickInterval = time.Second / TickRate

	// EventQueueSize must be a power of two
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
