package match

// Phase is the match state machine position
type Phase uint8

const (
	// PhaseAwaitingServe parks the shuttle beside the server until its swing
	PhaseAwaitingServe Phase = iota
	// PhaseServing is a serve in flight that has not crossed the net or been returned
	PhaseServing
	// PhaseRallying is open play
	PhaseRallying
	// PhasePointScored holds the landed shuttle before the next serve
	PhasePointScored
	// PhaseMatchOver is terminal until Restart
	PhaseMatchOver
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingServe:
		return "AwaitingServe"
	case PhaseServing:
		return "Serving"
	case PhaseRallying:
		return "Rallying"
	case PhasePointScored:
		return "PointScored"
	case PhaseMatchOver:
		return "MatchOver"
	default:
		return "Unknown"
	}
}

// Live reports whether the shuttle is integrated this phase
func (p Phase) Live() bool {
	return p == PhaseServing || p == PhaseRallying
}
