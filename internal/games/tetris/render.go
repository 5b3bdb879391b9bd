package tetris

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
)

const (
	cellW     = 2  // Terminal columns per board cell
	hudHeight = 1  // Status line above the board
	panelW    = 12 // Side panel width
	panelGap  = 2
)

const (
	blockRune = '█'
	ghostRune = '░'
)

// layout holds screen positions computed from the terminal and board size.
type layout struct {
	board platformcore.Rect // Board frame including the border
	panel platformcore.Rect // Side panel
}

// minSize returns the smallest terminal that fits the board and panel.
func (g *Game) minSize() (w, h int) {
	w = g.cfg.Board.Width*cellW + 2 + panelGap + panelW
	h = g.cfg.Board.Height + 2 + hudHeight
	return w, h
}

func (g *Game) layout() layout {
	minW, _ := g.minSize()
	x := max((g.screenW-minW)/2, 0)
	board := platformcore.NewRect(x, hudHeight, g.cfg.Board.Width*cellW+2, g.cfg.Board.Height+2)
	panel := platformcore.NewRect(board.Right()+panelGap, hudHeight, panelW, board.H)
	return layout{board: board, panel: panel}
}

// Render draws the board, the falling piece, its ghost and the side panel.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		minW, minH := g.minSize()
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minW, minH))
		return
	}

	snap := g.engine.Snapshot()
	l := g.layout()

	g.renderHUD(dst, snap)
	dst.DrawBox(l.board, platformcore.ColorGray)

	for _, c := range snap.Board {
		drawBlock(dst, l.board, c.X, c.Y, blockRune, c.Color)
	}
	if snap.State == core.StateFalling {
		for _, c := range snap.Ghost.Cells {
			drawBlock(dst, l.board, c.X, c.Y, ghostRune, platformcore.ColorGray)
		}
		for _, c := range snap.Active.Cells {
			drawBlock(dst, l.board, c.X, c.Y, blockRune, c.Color)
		}
	}

	g.renderPanel(dst, l.panel, snap)

	switch {
	case g.won:
		g.renderOverlay(dst, "Sprint complete!", fmt.Sprintf("%d lines in %s", g.summary.Lines, platformcore.FormatElapsed(g.summary.Elapsed)))
	case g.gameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// drawBlock draws one board cell. Rows above the board are hidden.
func drawBlock(dst *platformcore.Screen, frame platformcore.Rect, x, y int, r rune, c platformcore.Color) {
	if y < 0 {
		return
	}
	sx := frame.X + 1 + x*cellW
	sy := frame.Y + 1 + y
	for i := 0; i < cellW; i++ {
		dst.SetCell(sx+i, sy, r, c)
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *platformcore.Screen, snap core.Snapshot) {
	elapsed := g.engine.Stats().Elapsed
	hud := fmt.Sprintf(" %s | Lines: %d | Time: %s", g.Title(), snap.Lines, platformcore.FormatElapsed(elapsed))
	if g.mode == ModeSprint {
		hud += " | " + g.goalText()
	}
	dst.DrawText(0, 0, hud)
}

// renderPanel draws the preview queue, the hold slot and the counters.
func (g *Game) renderPanel(dst *platformcore.Screen, panel platformcore.Rect, snap core.Snapshot) {
	y := panel.Y
	dst.DrawTextColored(panel.X, y, "NEXT", platformcore.ColorBrightWhite)
	y += 2
	for _, k := range snap.Next {
		y += drawPreview(dst, panel.X+1, y, k, k.Color()) + 1
	}

	dst.DrawTextColored(panel.X, y, "HOLD", platformcore.ColorBrightWhite)
	y += 2
	if snap.HasHeld {
		c := snap.Held.Color()
		if snap.UsedHold {
			c = platformcore.ColorGray
		}
		y += drawPreview(dst, panel.X+1, y, snap.Held, c)
	}
	y++

	dst.DrawText(panel.X, y, fmt.Sprintf("Lines %d", snap.Lines))
	if g.mode == ModeSprint {
		dst.DrawText(panel.X, y+1, g.goalText())
	}
}

// drawPreview draws a kind in its spawn orientation and returns the rows it used.
func drawPreview(dst *platformcore.Screen, x, y int, k core.Kind, c platformcore.Color) int {
	rows := 0
	for _, off := range core.Shape(k, core.OrientUp) {
		for i := 0; i < cellW; i++ {
			dst.SetCell(x+off.X*cellW+i, y+off.Y, blockRune, c)
		}
		rows = max(rows, off.Y+1)
	}
	return rows
}

// renderOverlay draws a centered box with two lines of text.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, platformcore.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
