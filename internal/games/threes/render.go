package threes

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-threes/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = BoardSize*cellWidth + 1  // +1 for right border
	boardH = BoardSize*cellHeight + 1 // +1 for bottom border

	minScreenW = boardW + 4
	minScreenH = hudHeight + boardH + 3
)

// TileColor returns the display color of a tile value.
func TileColor(v uint32) core.Color {
	switch v {
	case 0:
		return core.ColorGray
	case 1:
		return core.ColorBlue
	case 2:
		return core.ColorRed
	default:
		return core.ColorBrightWhite
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)

	if g.status != "" && !g.gameOver {
		x := boardX + (boardW-len(g.status))/2
		dst.DrawTextColored(x, boardY+boardH+1, g.status, core.ColorYellow)
	}

	g.renderOverlays(dst, core.NewRect(boardX, boardY, boardW, boardH))
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, next card and high card.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := "THREES"
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	if g.cfg.Display.ShowNext {
		next := g.board.NextCard()
		label := "Next: "
		dst.DrawText(boardX, 1, label)
		dst.DrawTextColored(boardX+len(label), 1, strconv.FormatUint(uint64(next), 10), TileColor(next))
	}

	if g.cfg.Display.ShowHigh {
		high := fmt.Sprintf("High: %d", g.board.HighCard())
		dst.DrawText(boardX+boardW-len(high), 1, high)
	}

	moves := fmt.Sprintf("Moves: %d", g.moves)
	dst.DrawText(boardX+(boardW-len(moves))/2, 2, moves)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridCorner(x, y))

			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	grid := g.board.Grid()
	for row := range BoardSize {
		for col := range BoardSize {
			val := grid[row][col]
			text := "·"
			if val != 0 {
				text = strconv.FormatUint(uint64(val), 10)
			}

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1
			padLeft := max((cellWidth-1-len([]rune(text)))/2, 0)
			dst.DrawTextColored(cellX+padLeft, cellY, text, TileColor(val))
		}
	}
}

// gridCorner returns the box-drawing rune at a grid intersection.
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == BoardSize:
		return '┐'
	case y == BoardSize && x == 0:
		return '└'
	case y == BoardSize && x == BoardSize:
		return '┘'
	case y == 0:
		return '┬'
	case y == BoardSize:
		return '┴'
	case x == 0:
		return '├'
	case x == BoardSize:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.paused {
		drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.gameOver {
		score := fmt.Sprintf("You scored: %d", g.board.Score())
		drawOverlay(dst, centerX, centerY, "GAME OVER", score, "R: restart  Q: quit")
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	// Clear area behind overlay
	for y := box.Y; y < box.Bottom(); y++ {
		for x := box.X; x < box.Right(); x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
