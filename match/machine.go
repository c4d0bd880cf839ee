// Package match runs the serve, rally and scoring state machine
package match

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rally/collision"
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/events"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/physics"
	"github.com/lixenwraith/rally/rank"
	"github.com/lixenwraith/rally/vmath"
)

// Ledger receives the human's result once per finished match
type Ledger interface {
	Record(won bool) (rank.State, error)
}

// State is the externally visible match state
type State struct {
	Score  component.Score
	Server component.Side
	Phase  Phase
	Deuce  bool
	Winner component.Side // Set in PhaseMatchOver
}

// Stats are per-match counters, cleared by Restart
type Stats struct {
	Rallies      int
	Hits         int
	RallyHits    int // Hits in the current rally, serve included
	LongestRally int
}

// Machine owns the match state and the authoritative shuttle
type Machine struct {
	state   State
	stats   Stats
	shuttle component.Shuttle

	resolver *collision.Resolver
	rng      vmath.Rand
	ledger   Ledger
	queue    *events.EventQueue
	log      zerolog.Logger

	pauseTicks int
	tick       int64
}

// New creates a machine in AwaitingServe with the human serving
// ledger and queue may be nil
func New(rng vmath.Rand, ledger Ledger, queue *events.EventQueue, log zerolog.Logger) *Machine {
	m := &Machine{
		resolver: collision.NewResolver(rng),
		rng:      rng,
		ledger:   ledger,
		queue:    queue,
		log:      log,
	}
	m.Restart()
	return m
}

func (m *Machine) State() State { return m.state }

func (m *Machine) Stats() Stats { return m.stats }

// Shuttle returns a copy of the authoritative shuttle
func (m *Machine) Shuttle() component.Shuttle { return m.shuttle }

// PauseRemaining is the number of PointScored ticks left before the next serve
func (m *Machine) PauseRemaining() int { return m.pauseTicks }

// Restart clears scores and statistics and sets up the human's serve
func (m *Machine) Restart() {
	m.state = State{Server: component.SideHuman}
	m.stats = Stats{}
	m.pauseTicks = 0
	m.shuttle = component.Shuttle{Radius: parameter.ShuttleRadius}
	m.awaitServe()
	m.log.Debug().Msg("Match restarted")
}

// Step advances the machine one tick after both actors moved
func (m *Machine) Step(tick int64, human, ai *component.Actor) collision.Outcome {
	m.tick = tick
	server := human
	if m.state.Server == component.SideAI {
		server = ai
	}

	switch m.state.Phase {
	case PhaseAwaitingServe:
		m.park(server)
		if server.SwingStarted {
			m.serve(server)
		}
		return collision.Outcome{X: m.shuttle.Pos[0]}

	case PhasePointScored:
		m.pauseTicks--
		if m.pauseTicks <= 0 {
			m.awaitServe()
		}
		return collision.Outcome{X: m.shuttle.Pos[0]}

	case PhaseMatchOver:
		return collision.Outcome{X: m.shuttle.Pos[0]}
	}

	physics.Step(&m.shuttle)
	out := m.resolver.Resolve(&m.shuttle, human, ai, m.state.Server)

	switch out.Kind {
	case collision.OutcomeHit:
		m.stats.Hits++
		m.stats.RallyHits++
		m.emit(events.EventHit, &events.HitPayload{
			Side:  out.Hitter,
			Shot:  shotName(out),
			Pos:   m.shuttle.Pos,
			Speed: physics.Speed(&m.shuttle),
		})
		m.state.Phase = PhaseRallying
	case collision.OutcomeNet:
		m.emit(events.EventNetTouch, &events.NetTouchPayload{
			Tape: out.Net == physics.NetTape,
			Pos:  m.shuttle.Pos,
		})
	case collision.OutcomeGround, collision.OutcomeOut:
		m.award(out)
		return out
	}

	if m.state.Phase == PhaseServing && collision.SideOf(m.shuttle.Pos[0]) == m.state.Server.Opponent() {
		m.state.Phase = PhaseRallying
	}
	return out
}

// awaitServe parks the shuttle out of play for the current server
func (m *Machine) awaitServe() {
	m.state.Phase = PhaseAwaitingServe
	m.stats.RallyHits = 0
	m.shuttle.InPlay = false
	m.shuttle.LastHitter = component.SideNone
	m.shuttle.Vel = mgl64.Vec2{}
	m.emit(events.EventServeReady, &events.ServeReadyPayload{Server: m.state.Server, Score: m.state.Score})
}

// park holds the shuttle beside the server's racket hand
func (m *Machine) park(server *component.Actor) {
	m.shuttle.Pos = mgl64.Vec2{
		server.Pos[0] + server.Facing.Dir()*parameter.ServeHoldOffsetX,
		server.Pos[1] - parameter.ServeHoldOffsetY,
	}
	m.shuttle.PrevPos = m.shuttle.Pos
	m.shuttle.Vel = mgl64.Vec2{}
}

// serve launches toward a random point of the receiver's service box
func (m *Machine) serve(server *component.Actor) {
	dir := server.Facing.Dir()
	targetX := parameter.NetX + dir*vmath.Range(m.rng, parameter.ServiceShort, parameter.ServiceLong)

	physics.SetImpulse(&m.shuttle, physics.Aim(m.shuttle.Pos, targetX, parameter.ServeElevation, dir))
	m.shuttle.InPlay = true
	m.shuttle.LastHitter = server.Side
	m.state.Phase = PhaseServing

	m.stats.Hits++
	m.stats.RallyHits++
	m.emit(events.EventHit, &events.HitPayload{
		Side:  server.Side,
		Serve: true,
		Pos:   m.shuttle.Pos,
		Speed: physics.Speed(&m.shuttle),
	})
	m.log.Debug().Stringer("server", server.Side).Float64("target", targetX).Msg("Serve")
}

// award credits the rally winner and moves to PointScored or MatchOver
func (m *Machine) award(out collision.Outcome) {
	winner := out.Winner
	m.state.Score.Add(winner)
	m.state.Deuce = m.state.Score.Human >= parameter.DeuceScore && m.state.Score.AI >= parameter.DeuceScore

	m.stats.Rallies++
	if m.stats.RallyHits > m.stats.LongestRally {
		m.stats.LongestRally = m.stats.RallyHits
	}

	m.shuttle.InPlay = false
	if out.Kind == collision.OutcomeGround {
		m.shuttle.Pos[1] = parameter.GroundY - m.shuttle.Radius
		m.shuttle.Vel = mgl64.Vec2{}
	}

	m.emit(events.EventPointScored, &events.PointScoredPayload{
		Winner:    winner,
		Score:     m.state.Score,
		Deuce:     m.state.Deuce,
		RallyHits: m.stats.RallyHits,
		LandingX:  out.X,
		Out:       out.Kind == collision.OutcomeOut,
	})
	m.log.Debug().
		Stringer("winner", winner).
		Stringer("kind", out.Kind).
		Int("human", m.state.Score.Human).
		Int("ai", m.state.Score.AI).
		Msg("Point scored")

	if Decided(m.state.Score) {
		m.finish(winner)
		return
	}

	m.state.Server = winner
	m.state.Phase = PhasePointScored
	m.pauseTicks = parameter.PointPauseTicks
}

// finish enters MatchOver and applies the ledger exactly once
func (m *Machine) finish(winner component.Side) {
	m.state.Phase = PhaseMatchOver
	m.state.Winner = winner

	payload := &events.MatchOverPayload{
		Winner:  winner,
		Score:   m.state.Score,
		Rallies: m.stats.Rallies,
		Hits:    m.stats.Hits,
	}
	if m.ledger != nil {
		rs, err := m.ledger.Record(winner == component.SideHuman)
		if err != nil {
			m.log.Error().Err(err).Msg("Rank ledger update not persisted")
		}
		payload.Rank, payload.Tier, payload.Points = rs.Rank, rs.Tier, rs.Points
	}
	m.emit(events.EventMatchOver, payload)
	m.log.Info().
		Stringer("winner", winner).
		Int("human", m.state.Score.Human).
		Int("ai", m.state.Score.AI).
		Int("rallies", m.stats.Rallies).
		Int("longest", m.stats.LongestRally).
		Msg("Match over")
}

func (m *Machine) emit(t events.EventType, payload any) {
	if m.queue != nil {
		m.queue.Emit(t, payload, m.tick)
	}
}

// Decided reports the terminal condition: WinScore reached with a WinMargin lead
func Decided(s component.Score) bool {
	return s.Max() >= parameter.WinScore && s.Margin() >= parameter.WinMargin
}

func shotName(out collision.Outcome) string {
	if out.Shot == collision.ShotNone {
		return ""
	}
	return out.Shot.String()
}
