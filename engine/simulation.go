// Package engine owns every simulation component and advances them one fixed tick at a time
package engine

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/rally/actor"
	"github.com/lixenwraith/rally/ai"
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/events"
	"github.com/lixenwraith/rally/match"
	"github.com/lixenwraith/rally/physics"
	"github.com/lixenwraith/rally/rank"
	"github.com/lixenwraith/rally/status"
	"github.com/lixenwraith/rally/vmath"
)

// Simulation is the explicit context object of one match session
// Not safe for concurrent use, the Clock is the only caller while running
type Simulation struct {
	rng    *vmath.FastRand
	human  *actor.HumanController
	ai     *ai.Controller
	match  *match.Machine
	ledger *rank.Ledger
	queue  *events.EventQueue
	reg    *status.Registry
	log    zerolog.Logger

	tick   int64
	paused bool

	// Previous tick's one-shot buttons, actions fire on the rising edge
	prevPause   bool
	prevRestart bool

	// Cached metric pointers
	statTicks   *atomic.Int64
	statPaused  *atomic.Bool
	statRallies *atomic.Int64
	statHits    *atomic.Int64
	statLongest *atomic.Int64
	statRank    *atomic.Int64
	statPhase   *status.AtomicString
	statSpeed   *status.AtomicFloat
	statPeak    *status.AtomicFloat
}

// New creates a simulation seeded for reproducible play
// ledger may be nil, the AI then plays at rank 0 and results are not recorded
func New(seed uint64, ledger *rank.Ledger, reg *status.Registry, log zerolog.Logger) *Simulation {
	if reg == nil {
		reg = status.NewRegistry()
	}
	s := &Simulation{
		rng:    vmath.NewFastRand(seed),
		human:  actor.NewHumanController(),
		ledger: ledger,
		queue:  events.NewEventQueue(),
		reg:    reg,
		log:    log,

		statTicks:   reg.Ints.Get("engine.ticks"),
		statPaused:  reg.Bools.Get("engine.paused"),
		statRallies: reg.Ints.Get("match.rallies"),
		statHits:    reg.Ints.Get("match.hits"),
		statLongest: reg.Ints.Get("match.longest"),
		statRank:    reg.Ints.Get("ai.rank"),
		statPhase:   reg.Strings.Get("match.phase"),
		statSpeed:   reg.Floats.Get("shuttle.speed"),
		statPeak:    reg.Floats.Get("shuttle.peak"),
	}
	s.ai = ai.NewController(s.rng, s.rankIndex())

	// A nil *rank.Ledger inside the interface would not compare equal to nil
	var l match.Ledger
	if ledger != nil {
		l = ledger
	}
	s.match = match.New(s.rng, l, s.queue, log)
	s.publishStats()
	log.Info().Uint64("seed", seed).Int("rank", s.rankIndex()).Msg("Simulation created")
	return s
}

func (s *Simulation) rankIndex() int {
	if s.ledger == nil {
		return 0
	}
	return s.ledger.State().Rank
}

// Queue exposes the event queue to the boundary dispatcher
func (s *Simulation) Queue() *events.EventQueue { return s.queue }

// Status exposes the metric registry
func (s *Simulation) Status() *status.Registry { return s.reg }

func (s *Simulation) Paused() bool { return s.paused }

func (s *Simulation) TickCount() int64 { return s.tick }

// SetPaused freezes or resumes tick advancement
func (s *Simulation) SetPaused(p bool) {
	if s.paused == p {
		return
	}
	s.paused = p
	s.statPaused.Store(p)
	s.log.Debug().Bool("paused", p).Int64("tick", s.tick).Msg("Pause toggled")
}

// Reset starts a new match, picking up any rank change from the last one
func (s *Simulation) Reset() {
	_ = s.queue.Consume()
	s.human.Reset()
	s.ai.SetRank(s.rankIndex())
	s.ai.Reset()
	s.match.Restart()
	s.SetPaused(false)
	s.statPeak.Set(0)
	s.publishStats()
}

// Tick runs one update pass: buttons, human, AI, then shuttle and collisions through the match machine
// A paused simulation only watches the buttons
func (s *Simulation) Tick(in component.Input) {
	pausePressed := in.Pause && !s.prevPause
	restartPressed := in.Restart && !s.prevRestart
	s.prevPause, s.prevRestart = in.Pause, in.Restart

	if restartPressed {
		s.Reset()
		return
	}
	if pausePressed {
		s.SetPaused(!s.paused)
	}
	if s.paused {
		return
	}

	s.tick++
	st := s.match.State()

	s.human.Step(in)
	s.ai.Step(ai.Perception{
		Shuttle:       s.match.Shuttle(),
		AwaitingServe: st.Phase == match.PhaseAwaitingServe,
		IsServer:      st.Server == component.SideAI,
	})
	s.match.Step(s.tick, s.human.Actor(), s.ai.Actor())

	s.publishStats()
}

func (s *Simulation) publishStats() {
	st := s.match.State()
	stats := s.match.Stats()
	sh := s.match.Shuttle()

	s.statTicks.Store(s.tick)
	s.statRallies.Store(int64(stats.Rallies))
	s.statHits.Store(int64(stats.Hits))
	s.statLongest.Store(int64(stats.LongestRally))
	s.statRank.Store(int64(s.ai.Rank()))
	s.statPhase.Store(st.Phase.String())

	speed := physics.Speed(&sh)
	s.statSpeed.Set(speed)
	s.statPeak.Max(speed)
}
