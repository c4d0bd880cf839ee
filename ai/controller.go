// Package ai drives the AI actor from shuttle perception
package ai

import (
	"math"

	"github.com/lixenwraith/rally/actor"
	"github.com/lixenwraith/rally/collision"
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/physics"
	"github.com/lixenwraith/rally/vmath"
)

// State is the controller decision phase
type State uint8

const (
	// StateIdle holds position until the reaction timer fires
	StateIdle State = iota
	// StateTracking moves toward the predicted landing point
	StateTracking
	// StateCommitted has a swing in flight
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateTracking:
		return "tracking"
	case StateCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// Perception is what the AI may read each tick
type Perception struct {
	Shuttle       component.Shuttle
	AwaitingServe bool
	IsServer      bool
}

// Controller owns the AI actor and produces its intent each tick
type Controller struct {
	actor *component.Actor
	rng   vmath.Rand
	rank  int

	state         State
	reactionTimer int
	targetX       float64

	seenHitter component.Side // Last hitter at the previous read, a change restarts the reaction delay
	rolled     bool           // Commit roll already spent on the current approach
}

// NewController creates a controller for the given rank index
func NewController(rng vmath.Rand, rank int) *Controller {
	c := &Controller{
		actor: actor.New(component.SideAI),
		rng:   rng,
	}
	c.SetRank(rank)
	c.Reset()
	return c
}

// SetRank changes the skill level, effective from the next reaction reload
func (c *Controller) SetRank(rank int) {
	c.rank = vmath.ClampInt(rank, 0, parameter.MaxRank)
}

func (c *Controller) Rank() int { return c.rank }

func (c *Controller) Actor() *component.Actor { return c.actor }

func (c *Controller) State() State { return c.state }

func (c *Controller) TargetX() float64 { return c.targetX }

// Reset returns the actor home and clears decision state
func (c *Controller) Reset() {
	actor.Reset(c.actor)
	c.idle()
	c.seenHitter = component.SideNone
}

// Step computes the intent and applies it to the owned actor
func (c *Controller) Step(p Perception) {
	actor.Update(c.actor, c.Intent(p))
}

// Intent runs one decision pass
func (c *Controller) Intent(p Perception) component.Intent {
	a := c.actor
	if c.state == StateCommitted && !actor.Swinging(a) {
		c.state = StateTracking
	}

	if p.AwaitingServe {
		return c.serveIntent(p)
	}

	s := &p.Shuttle
	if !s.InPlay {
		c.idle()
		return component.Intent{DesiredVx: c.steer(actor.HomeX(a.Side))}
	}

	if s.LastHitter != c.seenHitter {
		c.seenHitter = s.LastHitter
		c.idle()
	}

	c.reactionTimer--
	if c.reactionTimer <= 0 {
		c.retarget(s)
	}

	var in component.Intent
	if c.state != StateIdle {
		in.DesiredVx = c.steer(c.targetX)
	}
	in.Swing = c.commit(s)
	in.Jump = c.jump(s)
	return in
}

// serveIntent parks at home and, as server, rolls the per-tick serve chance
func (c *Controller) serveIntent(p Perception) component.Intent {
	c.idle()
	c.seenHitter = component.SideNone
	in := component.Intent{DesiredVx: c.steer(actor.HomeX(c.actor.Side))}
	if p.IsServer && c.actor.SwingCooldown == 0 && vmath.Chance(c.rng, ServeChance(c.rank)) {
		in.Swing = true
		c.state = StateCommitted
	}
	return in
}

// retarget reloads the reaction timer and aims at the predicted landing plus rank-scaled noise
func (c *Controller) retarget(s *component.Shuttle) {
	c.reactionTimer = ReactionTicks(c.rank)
	if c.state == StateIdle {
		c.state = StateTracking
	}

	landing := physics.PredictLanding(*s)
	if collision.SideOf(landing) != c.actor.Side || s.LastHitter == c.actor.Side {
		c.targetX = actor.HomeX(c.actor.Side)
		return
	}
	noisy := landing + vmath.Spread(c.rng, NoiseAmplitude(c.rank))
	c.targetX = vmath.Clamp(noisy, c.actor.MinX, c.actor.MaxX)
}

// commit rolls once per approach when the shuttle is inside racket reach
func (c *Controller) commit(s *component.Shuttle) bool {
	a := c.actor
	inReach := s.LastHitter != a.Side && actor.ReachBox(a).Overlaps(collision.ShuttleBox(s))
	if !inReach {
		c.rolled = false
		return false
	}
	if c.rolled || c.state != StateTracking || a.SwingCooldown > 0 {
		return false
	}
	c.rolled = true
	if !vmath.Chance(c.rng, CommitChance(c.rank)) {
		return false
	}
	c.state = StateCommitted
	return true
}

// jump leaps for shuttles passing overhead within the horizontal window
func (c *Controller) jump(s *component.Shuttle) bool {
	a := c.actor
	if !a.OnGround || s.LastHitter == a.Side {
		return false
	}
	if math.Abs(s.Pos[0]-a.Pos[0]) > parameter.JumpWindowX {
		return false
	}
	above := actor.Shoulder(a)[1] - s.Pos[1]
	if above < parameter.JumpMinAbove || above > parameter.JumpMaxAbove {
		return false
	}
	return vmath.Chance(c.rng, parameter.JumpChancePerTick)
}

// steer returns the clamped velocity toward x, zero inside the dead zone
func (c *Controller) steer(x float64) float64 {
	dx := x - c.actor.Pos[0]
	if math.Abs(dx) <= parameter.TrackDeadZone {
		return 0
	}
	return vmath.Clamp(dx, -parameter.ActorMoveSpeed, parameter.ActorMoveSpeed)
}

func (c *Controller) idle() {
	c.state = StateIdle
	c.reactionTimer = ReactionTicks(c.rank)
	c.targetX = c.actor.Pos[0]
	c.rolled = false
}
