package render

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/rally/parameter"
)

// Screen rows reserved outside the court drawing
const (
	hudRows    = 2
	footerRows = 1
)

// viewport maps world units onto terminal cells
// The whole court is stretched over the area between the HUD and the footer
type viewport struct {
	width, height int
	top, rows     int
}

func newViewport(width, height int) viewport {
	rows := height - hudRows - footerRows
	if rows < 1 {
		rows = 1
	}
	return viewport{width: width, height: height, top: hudRows, rows: rows}
}

func (v viewport) col(x float64) int {
	c := int(x / parameter.CourtWidth * float64(v.width))
	return clampInt(c, 0, v.width-1)
}

func (v viewport) row(y float64) int {
	r := v.top + int(y/parameter.CourtHeight*float64(v.rows))
	return clampInt(r, v.top, v.top+v.rows-1)
}

func (v viewport) cell(p mgl64.Vec2) (int, int) {
	return v.col(p[0]), v.row(p[1])
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
