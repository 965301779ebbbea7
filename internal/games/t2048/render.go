package t2048

import (
	"fmt"
	"math"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	slotWidth  = 7 // Screen columns per board cell, including the gap
	slotHeight = 4 // Screen rows per board cell, including the gap
	tileWidth  = 6
	tileHeight = 3
	hudHeight  = 3
)

// boardSize returns the outer size of the board box in screen cells.
func (g *Game) boardSize() (w, h int) {
	return g.cfg.Board.Cols*slotWidth + 1, g.cfg.Board.Rows*slotHeight + 1
}

// minScreenSize returns the smallest screen the board and HUD fit into.
func (g *Game) minScreenSize() (w, h int) {
	boardW, boardH := g.boardSize()
	return max(boardW, 30), hudHeight + 1 + boardH
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY, boardW, boardH)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	minW, minH := g.minScreenSize()
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws the title, max tile, move count and mode.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Max: %d", frameMaxTile(g.frame)))

	movesStr := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(max(boardX, boardX+boardW-len(movesStr)), 1, movesStr)

	if g.hasLast && g.last.Outcome() == OutcomeNoOp {
		status := "Nothing moved"
		dst.DrawTextColor(boardX+(boardW-len(status))/2, 2, status, core.ColorGray, core.ColorDefault)
	}
}

// renderBoard draws the board outline and every tile of the current frame
// at its continuous position.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	dst.DrawBox(core.Rect{X: boardX, Y: boardY, W: boardW, H: boardH}, core.ColorBoard)

	f := g.frame
	if f.CellWidth <= 0 || f.CellHeight <= 0 {
		return
	}

	for _, t := range f.Tiles {
		x := boardX + 1 + int(math.Round(t.X/f.CellWidth*slotWidth))
		y := boardY + 1 + int(math.Round(t.Y/f.CellHeight*slotHeight))

		bg := core.TileColor(t.Value)
		fg := core.ColorWhite
		if t.Value <= 4 {
			fg = core.ColorBlack
		}

		dst.FillRect(core.Rect{X: x, Y: y, W: tileWidth, H: tileHeight}, core.Cell{Rune: ' ', BG: bg})

		valStr := strconv.Itoa(t.Value)
		if len(valStr) > tileWidth {
			valStr = valStr[:tileWidth]
		}
		dst.DrawTextColor(x+(tileWidth-len(valStr))/2, y+tileHeight/2, valStr, fg, bg)
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver && !g.Animating() {
		lines := []string{"GAME OVER", fmt.Sprintf("Max tile: %d", frameMaxTile(g.frame))}
		if g.engine.Board().CanMove() {
			// Occupancy rule: the board filled up with a merge still available
			lines = append(lines, "(a merge was still possible)")
		}
		lines = append(lines, "Press R to restart")
		g.drawOverlay(dst, centerX, centerY, lines...)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.Rect{W: maxLen + 4, H: len(lines) + 2}
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	// Clear area behind overlay
	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
