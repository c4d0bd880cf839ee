package component

// Side identifies a court half and the actor playing it
type Side uint8

const (
	SideNone Side = iota
	SideHuman
	SideAI
)

// Opponent returns the other playing side, SideNone for SideNone
func (s Side) Opponent() Side {
	switch s {
	case SideHuman:
		return SideAI
	case SideAI:
		return SideHuman
	default:
		return SideNone
	}
}

func (s Side) String() string {
	switch s {
	case SideHuman:
		return "human"
	case SideAI:
		return "ai"
	default:
		return "none"
	}
}

// Facing is the horizontal direction an actor looks
type Facing int8

const (
	FacingLeft  Facing = -1
	FacingRight Facing = 1
)

// Dir returns the facing as a unit x multiplier
func (f Facing) Dir() float64 {
	return float64(f)
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}
