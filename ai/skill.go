package ai

import (
	"math"

	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/vmath"
)

// ReactionTicks returns the latency before the AI re-reads the shuttle, never below ReactionMin
func ReactionTicks(rank int) int {
	rank = vmath.ClampInt(rank, 0, parameter.MaxRank)
	t := parameter.ReactionBase - rank*parameter.ReactionScale
	if t < parameter.ReactionMin {
		return parameter.ReactionMin
	}
	return t
}

// NoiseAmplitude returns the positioning error bound, shrinking with rank
func NoiseAmplitude(rank int) float64 {
	rank = vmath.ClampInt(rank, 0, parameter.MaxRank)
	return math.Max(parameter.NoiseBase-float64(rank)*parameter.NoiseScale, parameter.NoiseMin)
}

// CommitChance is the probability of swinging at a reachable shuttle
func CommitChance(rank int) float64 {
	rank = vmath.ClampInt(rank, 0, parameter.MaxRank)
	return math.Min(parameter.SwingCommitChance+float64(rank)*parameter.SwingCommitRankBonus, 0.97)
}

// ServeChance is the per-tick probability of starting a serve
func ServeChance(rank int) float64 {
	rank = vmath.ClampInt(rank, 0, parameter.MaxRank)
	return parameter.ServeChancePerTick + float64(rank)*parameter.ServeChanceRankBonus
}
