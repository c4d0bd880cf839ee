// Package rank implements the persisted progression ledger
package rank

import (
	"github.com/lixenwraith/rally/parameter"
)

// State is the persisted progression record
type State struct {
	Rank   int `json:"rankIndex"`
	Tier   int `json:"tierIndex"`
	Points int `json:"points"`
}

// Default is the fresh-player record
func Default() State {
	return State{}
}

// Valid reports whether every field is inside its range
func (s State) Valid() bool {
	return s.Rank >= 0 && s.Rank <= parameter.MaxRank &&
		s.Tier >= 0 && s.Tier <= parameter.MaxTier &&
		s.Points >= 0
}

// AtCap reports the top of the ladder
func (s State) AtCap() bool {
	return s.Rank == parameter.MaxRank && s.Tier == parameter.MaxTier
}

// AtFloor reports the bottom of the ladder
func (s State) AtFloor() bool {
	return s.Rank == 0 && s.Tier == 0
}

// PointsNeeded returns the threshold to leave tier t of rank r
func PointsNeeded(r, t int) int {
	return parameter.RankBase + r*parameter.RankScale + t*parameter.TierScale
}

// Apply returns the state after one match result
// Promotion carries surplus points into the next tier, wrapping into the next rank, and stops at the cap
// Demotion borrows the previous tier's threshold until points are non-negative, floored at {0,0,0}
func Apply(s State, won bool) State {
	if won {
		s.Points += parameter.RankWinReward
		for !s.AtCap() && s.Points >= PointsNeeded(s.Rank, s.Tier) {
			s.Points -= PointsNeeded(s.Rank, s.Tier)
			s = s.next()
		}
		return s
	}

	s.Points -= parameter.RankLossPenalty
	for s.Points < 0 {
		if s.AtFloor() {
			s.Points = 0
			break
		}
		s = s.prev()
		s.Points += PointsNeeded(s.Rank, s.Tier)
	}
	return s
}

func (s State) next() State {
	s.Tier++
	if s.Tier > parameter.MaxTier {
		s.Tier = 0
		s.Rank++
	}
	return s
}

func (s State) prev() State {
	s.Tier--
	if s.Tier < 0 {
		s.Tier = parameter.MaxTier
		s.Rank--
	}
	return s
}
