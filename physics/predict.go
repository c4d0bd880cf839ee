package physics

import (
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
)

// PredictLanding simulates a copy of s until its bottom edge reaches the ground
// and returns the landing x, or the last simulated x when PredictMaxSteps runs out
func PredictLanding(s component.Shuttle) float64 {
	return PredictLandingSteps(s, parameter.PredictMaxSteps)
}

// PredictLandingSteps is PredictLanding with an explicit iteration cap
func PredictLandingSteps(s component.Shuttle, maxSteps int) float64 {
	if s.Bottom() >= parameter.GroundY {
		return s.Pos[0]
	}
	for i := 0; i < maxSteps; i++ {
		Step(&s)
		ResolveNet(&s)
		if s.Bottom() >= parameter.GroundY {
			return s.Pos[0]
		}
	}
	return s.Pos[0]
}
