// Package collision resolves racket, net, ground and boundary contacts for the shuttle
package collision

import (
	"github.com/lixenwraith/rally/actor"
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/physics"
	"github.com/lixenwraith/rally/vmath"
)

// OutcomeKind classifies the result of one resolution pass
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeHit
	OutcomeNet
	OutcomeGround
	OutcomeOut
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeHit:
		return "hit"
	case OutcomeNet:
		return "net"
	case OutcomeGround:
		return "ground"
	case OutcomeOut:
		return "out"
	default:
		return "none"
	}
}

// Outcome is what the match machine consumes each tick
type Outcome struct {
	Kind   OutcomeKind
	Hitter component.Side     // OutcomeHit
	Shot   Shot               // OutcomeHit by the AI
	Net    physics.NetContact // OutcomeNet
	Winner component.Side     // OutcomeGround, OutcomeOut
	X      float64            // Shuttle x at resolution
}

// RallyOver reports a terminal outcome for the rally
func (o Outcome) RallyOver() bool {
	return o.Kind == OutcomeGround || o.Kind == OutcomeOut
}

// Resolver runs the contact checks against an already integrated shuttle
type Resolver struct {
	rng vmath.Rand
}

func NewResolver(rng vmath.Rand) *Resolver {
	return &Resolver{rng: rng}
}

// Resolve checks rackets, then the net, then ground and bounds
// A shuttle already at the floor cannot be struck
func (r *Resolver) Resolve(s *component.Shuttle, human, ai *component.Actor, server component.Side) Outcome {
	if !Grounded(s) {
		if RacketContact(human, s) {
			physics.SetImpulse(s, HumanHitVelocity(human))
			human.PrepPower = 0
			r.strike(human, s)
			return Outcome{Kind: OutcomeHit, Hitter: human.Side, X: s.Pos[0]}
		}
		if RacketContact(ai, s) {
			shot := SelectShot(ai, s)
			physics.SetImpulse(s, ShotVelocity(ai, s, shot, r.rng))
			r.strike(ai, s)
			return Outcome{Kind: OutcomeHit, Hitter: ai.Side, Shot: shot, X: s.Pos[0]}
		}
	}

	contact := physics.ResolveNet(s)

	switch {
	case Grounded(s):
		return Outcome{Kind: OutcomeGround, Winner: DecideWinner(s, server), X: s.Pos[0]}
	case Escaped(s):
		return Outcome{Kind: OutcomeOut, Winner: DecideWinner(s, server), X: s.Pos[0]}
	case contact != physics.NetNone:
		return Outcome{Kind: OutcomeNet, Net: contact, X: s.Pos[0]}
	}
	return Outcome{Kind: OutcomeNone, X: s.Pos[0]}
}

func (r *Resolver) strike(a *component.Actor, s *component.Shuttle) {
	actor.ConsumeSwing(a)
	s.LastHitter = a.Side
}
