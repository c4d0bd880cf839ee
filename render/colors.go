package render

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(86, 95, 137)   // Muted blue-gray court floor
	RgbLine       = tcell.NewRGBColor(180, 180, 180) // Service lines
	RgbNet        = tcell.NewRGBColor(220, 220, 220) // Net mesh
	RgbNetTape    = tcell.NewRGBColor(255, 255, 255) // Net tape

	RgbHuman       = tcell.NewRGBColor(100, 150, 255) // Blue human actor
	RgbAI          = tcell.NewRGBColor(255, 80, 80)   // Red AI actor
	RgbRacketLive  = tcell.NewRGBColor(255, 255, 0)   // Racket during the active window
	RgbRacketIdle  = tcell.NewRGBColor(140, 140, 140) // Racket at rest
	RgbChargeBar   = tcell.NewRGBColor(255, 165, 0)   // Prep power meter
	RgbShuttle     = tcell.NewRGBColor(255, 255, 255) // Shuttle in play
	RgbShuttleDead = tcell.NewRGBColor(120, 120, 120) // Parked or landed shuttle

	RgbStatusBar = tcell.NewRGBColor(255, 255, 255) // HUD text
	RgbDim       = tcell.NewRGBColor(120, 120, 120) // Secondary HUD text
	RgbDeuce     = tcell.NewRGBColor(255, 165, 0)   // Deuce marker
	RgbPaused    = tcell.NewRGBColor(255, 255, 0)   // Pause marker
	RgbBanner    = tcell.NewRGBColor(0, 200, 200)   // Overlay messages
)

func sideColor(human bool) tcell.Color {
	if human {
		return RgbHuman
	}
	return RgbAI
}
