package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/twenty48/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including borders; fits "16384"
	cellHeight = 2 // Height of each cell including borders
	hudHeight  = 3
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	size := g.board.Size()
	boardW := size*cellWidth + 1
	boardH := size*cellHeight + 1

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score line above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColor(titleX, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.board.Score())
	dst.DrawText(boardX, 1, scoreStr)

	maxStr := fmt.Sprintf("Max: %d", g.board.MaxTile())
	maxX := boardX + boardW - len(maxStr)
	if maxX < boardX {
		maxX = boardX
	}
	dst.DrawText(maxX, 1, maxStr)

	// Legal directions, dimmed when absent.
	moves := g.board.PossibleMoves()
	arrows := []struct {
		glyph rune
		legal bool
	}{
		{'←', moves.Left},
		{'↑', moves.Up},
		{'↓', moves.Down},
		{'→', moves.Right},
	}
	ax := boardX + (boardW-7)/2
	for i, a := range arrows {
		color := core.ColorGray
		if a.legal {
			color = core.ColorBrightWhite
		}
		dst.SetCell(ax+i*2, 2, a.glyph, color)
	}
}

// renderBoard draws the grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	size := g.board.Size()
	grid := g.board.Grid()

	// Grid borders
	for y := range size + 1 {
		for x := range size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == size:
				corner = '┐'
			case y == size && x == 0:
				corner = '└'
			case y == size && x == size:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == size:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == size:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Tiles
	for y := range size {
		for x := range size {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColor(cellX+padLeft, cellY, valStr, core.TileColor(val))
		}
	}
}

// renderOverlays draws pause/win/game-over overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", g.board.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		return
	}

	if g.won {
		// Banner only; normal play continues underneath.
		banner := fmt.Sprintf("%d reached!", g.winTarget)
		bx := boardX + (boardW-len(banner))/2
		dst.DrawTextColor(bx, boardY+boardH+1, banner, core.ColorBrightGreen)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | P: Pause | Ctrl+S: Save | R: Restart | Q: Quit"
}
