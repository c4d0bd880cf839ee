package actor

import (
	"testing"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/parameter"
)

// TestSwingTimersNeverNegative drives random-ish swing spam and checks the timer invariants every tick
func TestSwingTimersNeverNegative(t *testing.T) {
	a := New(component.SideHuman)
	for tick := 0; tick < 500; tick++ {
		Update(a, component.Intent{Swing: tick%3 == 0})

		if a.SwingTimer < 0 || a.SwingCooldown < 0 {
			t.Fatalf("Tick %d: negative timers (timer=%d cooldown=%d)", tick, a.SwingTimer, a.SwingCooldown)
		}
		if a.SwingTimer > 0 && a.SwingCooldown == 0 {
			t.Fatalf("Tick %d: live swing with zero cooldown", tick)
		}
	}
}

func TestSwingBlockedDuringCooldown(t *testing.T) {
	a := New(component.SideHuman)

	Update(a, component.Intent{Swing: true})
	if !a.SwingStarted || a.SwingTimer != parameter.SwingActiveTicks {
		t.Fatalf("Expected swing to start, got timer=%d", a.SwingTimer)
	}

	for i := 1; i < parameter.SwingCooldownTicks; i++ {
		Update(a, component.Intent{Swing: true})
		if a.SwingStarted {
			t.Fatalf("Swing restarted after %d ticks with cooldown %d", i, a.SwingCooldown)
		}
	}

	// Cooldown reaches zero on this tick, then the swing may start
	Update(a, component.Intent{Swing: true})
	if !a.SwingStarted {
		t.Errorf("Expected swing to start once cooldown elapsed")
	}
}

func TestConsumeSwingRestartsCooldown(t *testing.T) {
	a := New(component.SideAI)
	StartSwing(a)
	Update(a, component.Intent{})

	ConsumeSwing(a)
	if a.SwingTimer != 0 {
		t.Errorf("Expected timer 0, got %d", a.SwingTimer)
	}
	if a.SwingCooldown != parameter.SwingCooldownTicks {
		t.Errorf("Expected cooldown %d, got %d", parameter.SwingCooldownTicks, a.SwingCooldown)
	}
}

func TestHorizontalClampToHalf(t *testing.T) {
	h := New(component.SideHuman)
	for i := 0; i < 200; i++ {
		Update(h, component.Intent{DesiredVx: 50})
	}
	if h.Pos[0] != h.MaxX {
		t.Errorf("Expected human clamped at %f, got %f", h.MaxX, h.Pos[0])
	}
	if h.Pos[0]+parameter.ActorWidth/2 >= parameter.NetX {
		t.Errorf("Human body crosses the net at x=%f", h.Pos[0])
	}

	ai := New(component.SideAI)
	for i := 0; i < 200; i++ {
		Update(ai, component.Intent{DesiredVx: -50})
	}
	if ai.Pos[0] != ai.MinX {
		t.Errorf("Expected AI clamped at %f, got %f", ai.MinX, ai.Pos[0])
	}
	if ai.Pos[0]-parameter.ActorWidth/2 <= parameter.NetX {
		t.Errorf("AI body crosses the net at x=%f", ai.Pos[0])
	}
}

func TestJumpAndLand(t *testing.T) {
	a := New(component.SideHuman)
	Update(a, component.Intent{Jump: true})
	if a.OnGround {
		t.Fatal("Expected actor airborne after jump")
	}
	if a.Pos[1] >= parameter.GroundY {
		t.Errorf("Expected actor above ground, got y=%f", a.Pos[1])
	}

	for i := 0; i < 100 && !a.OnGround; i++ {
		Update(a, component.Intent{})
	}
	if !a.OnGround {
		t.Fatal("Expected actor to land")
	}
	if a.Pos[1] != parameter.GroundY || a.Vel[1] != 0 {
		t.Errorf("Expected rest on ground, got y=%f vy=%f", a.Pos[1], a.Vel[1])
	}
}

func TestNoDoubleJump(t *testing.T) {
	a := New(component.SideHuman)
	Update(a, component.Intent{Jump: true})
	vy := a.Vel[1]
	Update(a, component.Intent{Jump: true})
	if a.Vel[1] != vy+parameter.ActorGravity {
		t.Errorf("Expected airborne jump to be ignored, vy %f -> %f", vy, a.Vel[1])
	}
}

func TestPrepPowerBounds(t *testing.T) {
	a := New(component.SideHuman)
	for i := 0; i < 1000; i++ {
		ChargePrep(a, true)
	}
	if a.PrepPower != parameter.MaxPrep {
		t.Errorf("Expected prep capped at %f, got %f", parameter.MaxPrep, a.PrepPower)
	}
	for i := 0; i < 1000; i++ {
		ChargePrep(a, false)
	}
	if a.PrepPower != 0 {
		t.Errorf("Expected prep drained to 0, got %f", a.PrepPower)
	}
}

func TestRacketSweepsForward(t *testing.T) {
	a := New(component.SideHuman)
	rest := RacketHand(a)
	if rest[0] >= a.Pos[0] {
		t.Errorf("Expected ready racket behind the body, got hand x=%f body x=%f", rest[0], a.Pos[0])
	}

	StartSwing(a)
	for i := 0; i < parameter.SwingActiveTicks-2; i++ {
		Update(a, component.Intent{})
	}
	late := RacketHand(a)
	if late[0] <= a.Pos[0] {
		t.Errorf("Expected follow-through in front of the body, got hand x=%f body x=%f", late[0], a.Pos[0])
	}

	// AI mirrors the sweep
	ai := New(component.SideAI)
	if h := RacketHand(ai); h[0] <= ai.Pos[0] {
		t.Errorf("Expected AI ready racket behind (right of) the body, got %f", h[0])
	}
}

func TestHumanIntentPrecedence(t *testing.T) {
	h := NewHumanController()

	cases := []struct {
		name string
		in   component.Input
		vx   float64
	}{
		{"none", component.Input{}, 0},
		{"left", component.Input{MoveLeft: true}, -parameter.ActorMoveSpeed},
		{"right", component.Input{MoveRight: true}, parameter.ActorMoveSpeed},
		{"both cancel", component.Input{MoveLeft: true, MoveRight: true}, 0},
	}
	for _, tc := range cases {
		if got := h.Intent(tc.in).DesiredVx; got != tc.vx {
			t.Errorf("%s: expected vx %f, got %f", tc.name, tc.vx, got)
		}
	}

	in := component.Input{Jump: true, Swing: true, ChargePower: true}
	intent := h.Intent(in)
	if !intent.Jump || !intent.Swing || !intent.Charge {
		t.Errorf("Expected jump/swing/charge forwarded, got %+v", intent)
	}
}
