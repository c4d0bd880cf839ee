package parameter

import "time"

// InputHoldWindow keeps a movement key held this long after its last press event
// Terminals report key repeats but no releases, the window must outlast the repeat interval
const InputHoldWindow = 180 * time.Millisecond
