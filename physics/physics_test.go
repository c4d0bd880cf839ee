package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
)

func newShuttle(x, y, vx, vy float64) component.Shuttle {
	return component.Shuttle{
		Pos:     mgl64.Vec2{x, y},
		PrevPos: mgl64.Vec2{x, y},
		Vel:     mgl64.Vec2{vx, vy},
		Radius:  parameter.ShuttleRadius,
		InPlay:  true,
	}
}

// TestDragStrictlyDampsSpeed verifies one drag application shrinks |v| before gravity
func TestDragStrictlyDampsSpeed(t *testing.T) {
	v := mgl64.Vec2{12, -5}
	before := v.Len()
	after := ApplyDrag(v, parameter.ShuttleDrag).Len()

	if !(after < before) {
		t.Errorf("Expected speed below %f after drag, got %f", before, after)
	}

	expected := before * (1 - parameter.ShuttleDrag*before)
	if math.Abs(after-expected) > 1e-9 {
		t.Errorf("Expected speed %f, got %f", expected, after)
	}
}

// TestDragNeverReverses checks huge speeds are clamped to zero rather than flipped
func TestDragNeverReverses(t *testing.T) {
	v := mgl64.Vec2{1e6, -1e6}
	out := ApplyDrag(v, parameter.ShuttleDrag)
	if out.Len() != 0 {
		t.Errorf("Expected zero velocity for runaway speed, got %v", out)
	}

	zero := ApplyDrag(mgl64.Vec2{}, parameter.ShuttleDrag)
	if zero.Len() != 0 {
		t.Errorf("Expected zero velocity to stay zero, got %v", zero)
	}
}

func TestStepSemiImplicitEuler(t *testing.T) {
	s := newShuttle(100, 200, 12, -5)
	Step(&s)

	v := ApplyDrag(mgl64.Vec2{12, -5}, parameter.ShuttleDrag)
	v[1] += parameter.ShuttleGravity

	if math.Abs(s.Vel[0]-v[0]) > 1e-9 || math.Abs(s.Vel[1]-v[1]) > 1e-9 {
		t.Errorf("Expected velocity %v, got %v", v, s.Vel)
	}
	// Position uses the updated velocity
	if math.Abs(s.Pos[0]-(100+v[0])) > 1e-9 || math.Abs(s.Pos[1]-(200+v[1])) > 1e-9 {
		t.Errorf("Expected position %v, got %v", mgl64.Vec2{100 + v[0], 200 + v[1]}, s.Pos)
	}
	if s.PrevPos != (mgl64.Vec2{100, 200}) {
		t.Errorf("Expected PrevPos (100,200), got %v", s.PrevPos)
	}
}

func TestStepSanitizesNonFinite(t *testing.T) {
	s := newShuttle(100, 200, math.NaN(), math.Inf(1))
	Step(&s)
	for i := 0; i < 2; i++ {
		if math.IsNaN(s.Vel[i]) || math.IsInf(s.Vel[i], 0) {
			t.Fatalf("Expected finite velocity, got %v", s.Vel)
		}
	}
}

// TestVelocityStaysFinite runs a long flight from a large impulse
func TestVelocityStaysFinite(t *testing.T) {
	s := newShuttle(100, 100, 500, -500)
	prevSpeed := s.Vel.Len()
	for i := 0; i < 1000; i++ {
		s.Vel = ApplyDrag(s.Vel, parameter.ShuttleDrag)
		if sp := s.Vel.Len(); sp > prevSpeed {
			t.Fatalf("Tick %d: drag increased speed %f -> %f", i, prevSpeed, sp)
		}
		s.Vel[1] += parameter.ShuttleGravity
		prevSpeed = s.Vel.Len()
	}
	if math.IsInf(prevSpeed, 0) || math.IsNaN(prevSpeed) {
		t.Errorf("Expected finite speed, got %f", prevSpeed)
	}
}

func TestPredictLandingDoesNotMutate(t *testing.T) {
	s := newShuttle(200, 300, 4, -6)
	orig := s

	x := PredictLanding(s)

	if s != orig {
		t.Errorf("Expected shuttle unchanged, got %+v", s)
	}
	if x <= s.Pos[0] {
		t.Errorf("Expected landing right of %f, got %f", s.Pos[0], x)
	}
}

func TestPredictLandingMatchesLiveFlight(t *testing.T) {
	s := newShuttle(150, 380, 5, -7)
	predicted := PredictLanding(s)

	live := s
	for i := 0; i < parameter.PredictMaxSteps; i++ {
		Step(&live)
		ResolveNet(&live)
		if live.Bottom() >= parameter.GroundY {
			break
		}
	}
	if predicted != live.Pos[0] {
		t.Errorf("Expected prediction %f to equal live landing %f", predicted, live.Pos[0])
	}
}

func TestPredictLandingIterationCap(t *testing.T) {
	s := newShuttle(300, 100, 1, 0)
	x := PredictLandingSteps(s, 3)

	copyS := s
	for i := 0; i < 3; i++ {
		Step(&copyS)
		ResolveNet(&copyS)
	}
	if x != copyS.Pos[0] {
		t.Errorf("Expected last computed x %f at cap, got %f", copyS.Pos[0], x)
	}
}

func TestPredictLandingAlreadyGrounded(t *testing.T) {
	s := newShuttle(250, parameter.GroundY, 3, 0)
	if x := PredictLanding(s); x != 250 {
		t.Errorf("Expected 250 for grounded shuttle, got %f", x)
	}
}

func TestNetTapeBounce(t *testing.T) {
	// Just above the tape, moving right from the left half
	s := newShuttle(parameter.NetX-2, parameter.NetTopY-2, 6, 1)
	s.PrevPos = mgl64.Vec2{parameter.NetX - 8, parameter.NetTopY - 3}

	contact := ResolveNet(&s)
	if contact != NetTape {
		t.Fatalf("Expected NetTape, got %d", contact)
	}
	if s.Vel[0] >= 0 {
		t.Errorf("Expected reversed vx, got %f", s.Vel[0])
	}
	if math.Abs(s.Vel[0]) >= 6 {
		t.Errorf("Expected damped vx, got %f", s.Vel[0])
	}
	if s.Pos[0]+s.Radius >= parameter.NetX-parameter.NetHalfWidth {
		t.Errorf("Expected shuttle repositioned left of band, got x=%f", s.Pos[0])
	}
}

func TestNetBodyCatch(t *testing.T) {
	s := newShuttle(parameter.NetX+4, parameter.NetTopY+30, -8, -2)
	s.PrevPos = mgl64.Vec2{parameter.NetX + 12, parameter.NetTopY + 31}

	contact := ResolveNet(&s)
	if contact != NetBody {
		t.Fatalf("Expected NetBody, got %d", contact)
	}
	if math.Abs(s.Vel[0]) > 1 {
		t.Errorf("Expected strongly damped vx, got %f", s.Vel[0])
	}
	if s.Vel[1] < parameter.NetDropSpeed {
		t.Errorf("Expected downward vy >= %f, got %f", parameter.NetDropSpeed, s.Vel[1])
	}
	if s.Pos[0] <= parameter.NetX {
		t.Errorf("Expected shuttle kept on the approach (right) side, got x=%f", s.Pos[0])
	}
}

func TestNetSweptCrossing(t *testing.T) {
	// Jumped across the band in one tick, low enough to hit the mesh
	s := newShuttle(parameter.NetX+15, parameter.NetTopY+20, 15, 0)
	s.PrevPos = mgl64.Vec2{parameter.NetX - 15, parameter.NetTopY + 20}

	if contact := ResolveNet(&s); contact != NetBody {
		t.Fatalf("Expected NetBody for swept crossing, got %d", contact)
	}
	if s.Pos[0] >= parameter.NetX {
		t.Errorf("Expected shuttle pulled back to the left side, got x=%f", s.Pos[0])
	}
}

func TestNetNoContactAboveTape(t *testing.T) {
	s := newShuttle(parameter.NetX, parameter.NetTopY-50, 5, 0)
	s.PrevPos = mgl64.Vec2{parameter.NetX - 5, parameter.NetTopY - 50}
	if contact := ResolveNet(&s); contact != NetNone {
		t.Errorf("Expected no contact well above the net, got %d", contact)
	}
}

func TestAimLandsOnTarget(t *testing.T) {
	cases := []struct {
		name      string
		from      mgl64.Vec2
		targetX   float64
		elevation float64
		dir       float64
	}{
		{"serve from left", mgl64.Vec2{168, 468}, 580, parameter.ServeElevation, 1},
		{"clear from right", mgl64.Vec2{650, 442}, 110, 55 * math.Pi / 180, -1},
	}
	for _, tc := range cases {
		v := Aim(tc.from, tc.targetX, tc.elevation, tc.dir)
		probe := component.Shuttle{Pos: tc.from, PrevPos: tc.from, Vel: v, Radius: parameter.ShuttleRadius}
		landing := PredictLanding(probe)
		if math.Abs(landing-tc.targetX) > 3 {
			t.Errorf("%s: expected landing near %f, got %f", tc.name, tc.targetX, landing)
		}
		if v[0]*tc.dir <= 0 || v[1] >= 0 {
			t.Errorf("%s: expected upward launch toward dir %f, got %v", tc.name, tc.dir, v)
		}
	}
}
