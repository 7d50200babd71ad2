package tui

import (
	"fmt"

	"github.com/tapclimb/climb/internal/climb"
	"github.com/tapclimb/climb/internal/core"
)

// Visual characters for rendering
const (
	RailChar     = '│'
	HoldChar     = '▪'
	ObstacleChar = '▓'
	ClimberChar  = '◉'
	BarFullChar  = '█'
	BarEmptyChar = '░'
)

// Wall layout constants
const (
	wallHalfWidth = 9    // Rail distance from the center column
	holdSpread    = 3    // Max jitter offset of a hold from its rail, columns
	reachFlash    = 0.15 // Seconds the climber stays highlighted after a move
	staminaBarLen = 20
)

// DrawSnapshot renders a read-only game snapshot into the screen buffer.
// The renderer owns no gameplay state; everything it needs is in the snapshot.
func DrawSnapshot(dst *core.Screen, snap climb.Snapshot) {
	dst.Clear()

	w := dst.Width()
	h := dst.Height()
	centerX := w / 2
	leftRail := centerX - wallHalfWidth
	rightRail := centerX + wallHalfWidth

	// Rails
	for y := 1; y < h; y++ {
		dst.SetCell(leftRail, y, RailChar, core.ColorGray)
		dst.SetCell(rightRail, y, RailChar, core.ColorGray)
	}

	// Segments, climbable head at the bottom
	for i, seg := range snap.Segments {
		y := h - 2 - i*climb.RowsPerSegment
		if y < 1 {
			break
		}
		drawSegment(dst, seg, y, leftRail, rightRail)
	}

	// Climber sits on the head segment
	climberY := h - 2
	climberColor := core.ColorBrightYellow
	if snap.LastMove == climb.MoveOutcomeAccepted && snap.SinceMove < reachFlash {
		climberColor = core.ColorBrightWhite
	}
	if snap.Phase == climb.PhaseOver {
		climberColor = core.ColorRed
	}
	dst.SetCell(centerX, climberY, ClimberChar, climberColor)

	drawHUD(dst, snap)

	switch snap.Phase {
	case climb.PhaseReady:
		drawMessageBox(dst, "TAP CLIMB", []string{
			"A/H reach left   D/L reach right",
			"Dodge the overhangs, beat the clock",
			"Press Space to start",
		})
	case climb.PhaseOver:
		drawMessageBox(dst, "GAME OVER", []string{
			snap.OverReason,
			fmt.Sprintf("Score: %d   Best: %d", snap.Score, snap.Best),
			"Press R to climb again",
		})
	}
}

// drawSegment renders one wall segment: a hold on each side, with the
// obstacle side replaced by an overhang. Jitter shifts holds off their rail.
func drawSegment(dst *core.Screen, seg climb.Segment, y, leftRail, rightRail int) {
	leftX := leftRail + 1 + int(seg.LeftJitter*holdSpread)
	rightX := rightRail - 1 - int(seg.RightJitter*holdSpread)

	switch seg.Obstacle {
	case climb.SideLeft:
		for x := leftRail + 1; x <= leftRail+holdSpread+1; x++ {
			dst.SetCell(x, y, ObstacleChar, core.ColorBrightRed)
		}
		dst.SetCell(rightX, y, HoldChar, core.ColorGreen)
	case climb.SideRight:
		for x := rightRail - holdSpread - 1; x <= rightRail-1; x++ {
			dst.SetCell(x, y, ObstacleChar, core.ColorBrightRed)
		}
		dst.SetCell(leftX, y, HoldChar, core.ColorGreen)
	default:
		dst.SetCell(leftX, y, HoldChar, core.ColorGreen)
		dst.SetCell(rightX, y, HoldChar, core.ColorGreen)
	}
}

// drawHUD renders the score line and the stamina bar.
func drawHUD(dst *core.Screen, snap climb.Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d   Best: %d ", snap.Score, snap.Best))

	filled := int(snap.Stamina*staminaBarLen + 0.5)
	filled = core.Clamp(filled, 0, staminaBarLen)

	barColor := core.ColorBrightGreen
	switch {
	case snap.Stamina < 0.25:
		barColor = core.ColorBrightRed
	case snap.Stamina < 0.5:
		barColor = core.ColorYellow
	}

	barX := dst.Width() - staminaBarLen - 4
	dst.Set(barX-1, 0, '[')
	for i := 0; i < staminaBarLen; i++ {
		if i < filled {
			dst.SetCell(barX+i, 0, BarFullChar, barColor)
		} else {
			dst.SetCell(barX+i, 0, BarEmptyChar, core.ColorGray)
		}
	}
	dst.Set(barX+staminaBarLen, 0, ']')
}

// drawMessageBox draws a centered box with a title and body lines.
func drawMessageBox(dst *core.Screen, title string, lines []string) {
	w := dst.Width()
	h := dst.Height()

	boxW := len(title)
	for _, line := range lines {
		boxW = core.Max(boxW, len(line))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	for i, line := range lines {
		dst.DrawText(boxX+(boxW-len(line))/2, boxY+2+i, line)
	}
}
