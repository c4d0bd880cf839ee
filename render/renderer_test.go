package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/engine"
	"github.com/lixenwraith/rally/parameter"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func TestViewportMapping(t *testing.T) {
	v := newViewport(100, 33)

	if got := v.col(0); got != 0 {
		t.Errorf("Expected left edge at column 0, got %d", got)
	}
	if got := v.col(parameter.CourtWidth); got != 99 {
		t.Errorf("Expected right edge clamped to 99, got %d", got)
	}
	if got := v.col(parameter.NetX); got != 50 {
		t.Errorf("Expected net at column 50, got %d", got)
	}
	if got := v.row(-500); got != hudRows {
		t.Errorf("Expected sky clamped below the HUD, got %d", got)
	}
	if got := v.row(parameter.CourtHeight * 2); got != 33-footerRows-1 {
		t.Errorf("Expected floor clamped above the footer, got %d", got)
	}
}

func TestDrawCourtAndHUD(t *testing.T) {
	screen := newTestScreen(t, 100, 33)
	r := NewRenderer(screen)
	sim := engine.New(1, nil, nil, zerolog.Nop())
	snap := sim.Snapshot()

	r.Draw(&snap, "Your serve")

	hud := rowText(screen, 0)
	if !strings.Contains(hud, "YOU  0 : 0  AI") {
		t.Errorf("Expected score in HUD, got %q", hud)
	}
	if !strings.Contains(hud, "serve: you") || !strings.Contains(hud, "AwaitingServe") {
		t.Errorf("Expected server and phase in HUD, got %q", hud)
	}
	if strings.Contains(hud, "PAUSED") || strings.Contains(hud, "DEUCE") {
		t.Errorf("Unexpected marker in HUD %q", hud)
	}
	if !strings.Contains(rowText(screen, 1), "rank 0 tier 0") {
		t.Errorf("Expected rank line, got %q", rowText(screen, 1))
	}

	v := newViewport(100, 33)
	netCol := v.col(parameter.NetX)
	mainc, _, _, _ := screen.GetContent(netCol, v.row(parameter.NetTopY))
	if mainc != glyphNetTape {
		t.Errorf("Expected net tape at column %d, got %q", netCol, mainc)
	}
	mainc, _, _, _ = screen.GetContent(0, v.row(parameter.GroundY))
	if mainc != glyphFloor {
		t.Errorf("Expected floor at ground row, got %q", mainc)
	}

	if !strings.Contains(rowText(screen, v.top+1), "Your serve") {
		t.Errorf("Expected banner text, got %q", rowText(screen, v.top+1))
	}
	if !strings.Contains(rowText(screen, 32), "q quit") {
		t.Errorf("Expected footer help, got %q", rowText(screen, 32))
	}
}

func TestDrawShuttleAndActors(t *testing.T) {
	screen := newTestScreen(t, 100, 33)
	r := NewRenderer(screen)
	sim := engine.New(2, nil, nil, zerolog.Nop())
	snap := sim.Snapshot()
	snap.Shuttle.Pos = mgl64.Vec2{600, 200}
	snap.Shuttle.InPlay = true

	r.Draw(&snap, "")

	x, y := r.Cell(snap.Shuttle.Pos)
	mainc, _, style, _ := screen.GetContent(x, y)
	if mainc != glyphShuttle {
		t.Fatalf("Expected shuttle at (%d,%d), got %q", x, y, mainc)
	}
	fg, _, _ := style.Decompose()
	if fg != RgbShuttle {
		t.Errorf("Expected in-play shuttle color, got %v", fg)
	}

	for _, pose := range []engine.ActorPose{snap.Human, snap.AI} {
		col, _ := r.Cell(pose.Pos)
		head := newViewport(100, 33).row(pose.Pos[1] - parameter.ActorHeight)
		mainc, _, style, _ := screen.GetContent(col, head)
		if mainc != glyphHead {
			t.Errorf("Expected %s head at (%d,%d), got %q", pose.Side, col, head, mainc)
		}
		fg, _, _ := style.Decompose()
		if fg != sideColor(pose.Side == component.SideHuman) {
			t.Errorf("Expected %s color, got %v", pose.Side, fg)
		}
	}
}

func TestDrawMarkers(t *testing.T) {
	screen := newTestScreen(t, 120, 30)
	r := NewRenderer(screen)
	snap := engine.New(3, nil, nil, zerolog.Nop()).Snapshot()
	snap.Paused = true
	snap.Match.Deuce = true
	snap.Match.Score = component.Score{Human: 20, AI: 20}

	r.Draw(&snap, "")

	hud := rowText(screen, 0)
	if !strings.Contains(hud, "DEUCE") || !strings.Contains(hud, "PAUSED") {
		t.Errorf("Expected deuce and pause markers, got %q", hud)
	}
	if !strings.Contains(hud, "YOU 20 : 20 AI") {
		t.Errorf("Expected 20-20, got %q", hud)
	}
}

func TestDrawTinyScreen(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	r := NewRenderer(screen)
	snap := engine.New(4, nil, nil, zerolog.Nop()).Snapshot()

	defer func() {
		if rec := recover(); rec != nil {
			t.Fatalf("Draw panicked on a tiny screen: %v", rec)
		}
	}()
	r.Draw(&snap, "a banner longer than the screen")
	r.Draw(nil, "")
}

func TestBannerLifecycle(t *testing.T) {
	b := NewBanner()
	if b.Text() != "" {
		t.Fatalf("Expected empty banner, got %q", b.Text())
	}

	b.OnServeReady(component.SideAI)
	if b.Text() != "AI to serve" {
		t.Errorf("Unexpected serve banner %q", b.Text())
	}

	b.OnPointScored(component.SideHuman, component.Score{Human: 5, AI: 3})
	if b.Text() != "Point: You  5 - 3" {
		t.Errorf("Unexpected point banner %q", b.Text())
	}

	b.OnMatchOver(component.SideAI, component.Score{Human: 15, AI: 21})
	if !strings.HasPrefix(b.Text(), "AI wins 21 - 15") {
		t.Errorf("Unexpected match banner %q", b.Text())
	}
}
