// Package render draws simulation snapshots onto a tcell screen
package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/component"
	"github.com/lixenwraith/rally/engine"
	"github.com/lixenwraith/rally/match"
	"github.com/lixenwraith/rally/parameter"
	"github.com/lixenwraith/rally/rank"
)

// Glyphs
const (
	glyphFloor       = '▀'
	glyphNet         = '┃'
	glyphNetTape     = '╤'
	glyphServiceLine = '╵'
	glyphHead        = 'O'
	glyphBody        = '█'
	glyphRacketLive  = '@'
	glyphRacketIdle  = 'o'
	glyphArm         = '·'
	glyphShuttle     = '*'
)

const footerText = "←/→ a/d move  ↑/w/space jump  j/x swing  k charge  p pause  r restart  q quit"

// Renderer owns the screen for drawing, it never writes back into the simulation
type Renderer struct {
	screen tcell.Screen
	base   tcell.Style
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// Draw renders one frame, banner may be empty
func (r *Renderer) Draw(snap *engine.Snapshot, banner string) {
	w, h := r.screen.Size()
	if w <= 0 || h <= 0 || snap == nil {
		return
	}
	v := newViewport(w, h)

	r.screen.SetStyle(r.base)
	r.screen.Clear()

	r.drawCourt(v)
	r.drawActor(v, &snap.Human)
	r.drawActor(v, &snap.AI)
	r.drawShuttle(v, &snap.Shuttle)
	r.drawHUD(v, snap)
	if banner != "" {
		r.drawCentered(v.top+1, banner, r.base.Foreground(RgbBanner).Bold(true))
	}
	r.drawText(0, h-1, footerText, r.base.Foreground(RgbDim))

	r.screen.Show()
}

func (r *Renderer) drawCourt(v viewport) {
	ground := v.row(parameter.GroundY)
	floor := r.base.Foreground(RgbFloor)
	for x := 0; x < v.width; x++ {
		for y := ground; y < v.top+v.rows; y++ {
			r.screen.SetContent(x, y, glyphFloor, nil, floor)
		}
	}

	// Short service lines on both sides of the net
	line := r.base.Foreground(RgbLine)
	for _, dx := range []float64{-parameter.ServiceShort, parameter.ServiceShort} {
		r.screen.SetContent(v.col(parameter.NetX+dx), ground-1, glyphServiceLine, nil, line)
	}

	netCol := v.col(parameter.NetX)
	top := v.row(parameter.NetTopY)
	r.screen.SetContent(netCol, top, glyphNetTape, nil, r.base.Foreground(RgbNetTape))
	for y := top + 1; y < ground; y++ {
		r.screen.SetContent(netCol, y, glyphNet, nil, r.base.Foreground(RgbNet))
	}
}

func (r *Renderer) drawActor(v viewport, p *engine.ActorPose) {
	style := r.base.Foreground(sideColor(p.Side == component.SideHuman))
	x := v.col(p.Pos[0])
	feet := v.row(p.Pos[1] - 1)
	head := v.row(p.Pos[1] - parameter.ActorHeight)
	if head >= feet {
		head = feet - 1
	}

	// Arm from shoulder to racket hand
	sx, sy := v.cell(p.Shoulder)
	hx, hy := v.cell(p.RacketHand)
	steps := maxInt(absInt(hx-sx), absInt(hy-sy))
	for i := 1; i < steps; i++ {
		t := float64(i) / float64(steps)
		ax := sx + int(math.Round(t*float64(hx-sx)))
		ay := sy + int(math.Round(t*float64(hy-sy)))
		r.screen.SetContent(ax, ay, glyphArm, nil, style)
	}

	racket, racketStyle := glyphRacketIdle, r.base.Foreground(RgbRacketIdle)
	if p.Swinging {
		racket, racketStyle = glyphRacketLive, r.base.Foreground(RgbRacketLive).Bold(true)
	}
	r.screen.SetContent(hx, hy, racket, nil, racketStyle)

	// Body drawn over the arm
	for y := head + 1; y <= feet; y++ {
		r.screen.SetContent(x, y, glyphBody, nil, style)
	}
	r.screen.SetContent(x, head, glyphHead, nil, style)

	// Prep power meter under the feet
	if p.PrepPower > 0 && feet+1 < v.height-footerRows {
		cells := int(math.Ceil(p.PrepPower / parameter.MaxPrep * 5))
		bar := r.base.Foreground(RgbChargeBar)
		for i := 0; i < cells; i++ {
			r.screen.SetContent(x-2+i, feet+1, '▪', nil, bar)
		}
	}
}

func (r *Renderer) drawShuttle(v viewport, s *component.Shuttle) {
	style := r.base.Foreground(RgbShuttleDead)
	if s.InPlay {
		style = r.base.Foreground(RgbShuttle).Bold(true)
	}
	x, y := v.cell(s.Pos)
	r.screen.SetContent(x, y, glyphShuttle, nil, style)
}

func (r *Renderer) drawHUD(v viewport, snap *engine.Snapshot) {
	st := &snap.Match
	text := r.base.Foreground(RgbStatusBar)
	dim := r.base.Foreground(RgbDim)

	score := fmt.Sprintf(" YOU %2d : %-2d AI ", st.Score.Human, st.Score.AI)
	x := r.drawText(0, 0, score, text.Bold(true))
	x = r.drawText(x, 0, fmt.Sprintf(" serve: %s  %s", serverLabel(st.Server), st.Phase), dim)
	if st.Deuce {
		x = r.drawText(x, 0, "  DEUCE", r.base.Foreground(RgbDeuce).Bold(true))
	}
	if snap.Paused {
		r.drawText(x, 0, "  PAUSED", r.base.Foreground(RgbPaused).Bold(true))
	}

	r.drawText(0, 1, rankLine(snap), dim)
}

func rankLine(snap *engine.Snapshot) string {
	rs := snap.Rank
	need := rank.PointsNeeded(rs.Rank, rs.Tier)
	line := fmt.Sprintf(" rank %d tier %d  %d/%d pts  AI level %d  rally %d  best %d",
		rs.Rank, rs.Tier, rs.Points, need, snap.AIRank, snap.Stats.RallyHits, snap.Stats.LongestRally)
	if snap.Match.Phase == match.PhasePointScored {
		line += fmt.Sprintf("  next serve in %d", snap.PauseRemaining)
	}
	return line
}

func serverLabel(s component.Side) string {
	if s == component.SideHuman {
		return "you"
	}
	return "AI"
}

// drawText writes s from (x, y), clipped at the right edge, and returns the column after it
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) int {
	w, _ := r.screen.Size()
	for _, ch := range s {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	n := len([]rune(s))
	r.drawText(maxInt((w-n)/2, 0), y, s, style)
}

// Cell returns the screen cell of a world point for the current screen size
func (r *Renderer) Cell(p mgl64.Vec2) (int, int) {
	w, h := r.screen.Size()
	return newViewport(w, h).cell(p)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
