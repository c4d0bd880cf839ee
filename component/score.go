package component

// Score is the point tally of one match
type Score struct {
	Human int
	AI    int
}

// Of returns the points of a side, 0 for SideNone
func (s Score) Of(side Side) int {
	switch side {
	case SideHuman:
		return s.Human
	case SideAI:
		return s.AI
	default:
		return 0
	}
}

// Add credits one point to side
func (s *Score) Add(side Side) {
	switch side {
	case SideHuman:
		s.Human++
	case SideAI:
		s.AI++
	}
}

// Leader returns the side ahead, SideNone when level
func (s Score) Leader() Side {
	switch {
	case s.Human > s.AI:
		return SideHuman
	case s.AI > s.Human:
		return SideAI
	default:
		return SideNone
	}
}

// Margin returns the absolute point difference
func (s Score) Margin() int {
	if s.Human > s.AI {
		return s.Human - s.AI
	}
	return s.AI - s.Human
}

// Max returns the higher of the two tallies
func (s Score) Max() int {
	if s.Human > s.AI {
		return s.Human
	}
	return s.AI
}
