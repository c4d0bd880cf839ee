package engine

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/zeebo/xxh3"

	"github.com/lixenwraith/rally/actor"
	"github.com/lixenwraith/rally/ai"
	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/match"
	"github.com/lixenwraith/rally/rank"
)

// ActorPose is the render view of one actor
type ActorPose struct {
	Side       component.Side
	Pos        mgl64.Vec2
	Facing     component.Facing
	OnGround   bool
	Swinging   bool
	ArmAngle   float64
	Shoulder   mgl64.Vec2
	RacketHand mgl64.Vec2
	PrepPower  float64
}

func poseOf(a *component.Actor) ActorPose {
	return ActorPose{
		Side:       a.Side,
		Pos:        a.Pos,
		Facing:     a.Facing,
		OnGround:   a.OnGround,
		Swinging:   actor.Swinging(a),
		ArmAngle:   actor.ArmAngle(a),
		Shoulder:   actor.Shoulder(a),
		RacketHand: actor.RacketHand(a),
		PrepPower:  a.PrepPower,
	}
}

// Snapshot is an immutable copy of everything the boundary may show
type Snapshot struct {
	Tick    int64
	Human   ActorPose
	AI      ActorPose
	Shuttle component.Shuttle

	Match          match.State
	Stats          match.Stats
	PauseRemaining int
	Paused         bool

	Rank    rank.State
	AIRank  int
	AIState ai.State
}

// Snapshot copies the current state, call only between ticks
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:           s.tick,
		Human:          poseOf(s.human.Actor()),
		AI:             poseOf(s.ai.Actor()),
		Shuttle:        s.match.Shuttle(),
		Match:          s.match.State(),
		Stats:          s.match.Stats(),
		PauseRemaining: s.match.PauseRemaining(),
		Paused:         s.paused,
		AIRank:         s.ai.Rank(),
		AIState:        s.ai.State(),
	}
	if s.ledger != nil {
		snap.Rank = s.ledger.State()
	}
	return snap
}

// Digest hashes the simulation-relevant fields, equal digests mean equal states
func (sn *Snapshot) Digest() uint64 {
	buf := make([]byte, 0, 256)
	u := func(v uint64) { buf = binary.LittleEndian.AppendUint64(buf, v) }
	f := func(v float64) { u(math.Float64bits(v)) }
	b := func(v bool) {
		if v {
			u(1)
		} else {
			u(0)
		}
	}
	vec := func(v mgl64.Vec2) { f(v[0]); f(v[1]) }
	pose := func(p *ActorPose) {
		vec(p.Pos)
		b(p.OnGround)
		b(p.Swinging)
		f(p.ArmAngle)
		f(p.PrepPower)
	}

	u(uint64(sn.Tick))
	pose(&sn.Human)
	pose(&sn.AI)
	vec(sn.Shuttle.Pos)
	vec(sn.Shuttle.Vel)
	u(uint64(sn.Shuttle.LastHitter))
	b(sn.Shuttle.InPlay)
	u(uint64(sn.Match.Score.Human))
	u(uint64(sn.Match.Score.AI))
	u(uint64(sn.Match.Server))
	u(uint64(sn.Match.Phase))
	b(sn.Match.Deuce)
	u(uint64(sn.Match.Winner))
	u(uint64(sn.PauseRemaining))
	b(sn.Paused)
	u(uint64(sn.AIState))

	return xxh3.Hash(buf)
}
