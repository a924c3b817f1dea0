package tetris

import (
	"fmt"

	"github.com/vovakirdan/brickgame/internal/core"
)

// Layout of the rendered frame. Every board cell is two characters wide so
// that blocks look square in a terminal.
const (
	cellW = 2

	panelX = Width*cellW + 3
	panelW = 16

	// ScreenW and ScreenH are the dimensions Render needs.
	ScreenW = panelX + panelW
	ScreenH = Height + 2
)

// pieceColors maps a board color identifier to a screen color.
var pieceColors = [KindCount + 1]core.Color{
	core.ColorDefault,
	core.ColorCyan,    // I
	core.ColorYellow,  // O
	core.ColorMagenta, // T
	core.ColorOrange,  // L
	core.ColorBlue,    // J
	core.ColorGreen,   // S
	core.ColorRed,     // Z
}

// ColorFor returns the screen color of a board identifier.
func ColorFor(id int) core.Color {
	if id < 0 || id >= len(pieceColors) {
		return core.ColorDefault
	}
	return pieceColors[id]
}

// Render draws the board, the falling piece, the next-piece preview and the
// score panel into dst.
func (s *Session) Render(dst *core.Screen) {
	dst.Clear()

	well := core.NewRect(0, 0, Width*cellW+2, Height+2)
	dst.DrawBox(well, core.ColorGray)
	s.renderBoard(dst, well.Inner())

	if s.state == StateMoving || s.state == StateShifting || s.state == StateAttaching {
		s.renderPiece(dst, well.Inner())
	}

	s.renderPanel(dst)

	switch {
	case s.state == StateStart:
		renderOverlay(dst, well, "BRICK GAME", "Press Enter")
	case s.state == StateGameOver:
		renderOverlay(dst, well, "GAME OVER", fmt.Sprintf("Score %d", s.info.Score))
	case s.info.Pause:
		renderOverlay(dst, well, "PAUSED", "Press P")
	}
}

func (s *Session) renderBoard(dst *core.Screen, area core.Rect) {
	for y := range Height {
		for x := range Width {
			sx := area.X + x*cellW
			sy := area.Y + y
			if id := s.board[y][x]; id != 0 {
				drawBlock(dst, sx, sy, ColorFor(id))
			} else {
				dst.SetCell(sx, sy, ' ', core.ColorDefault)
				dst.SetCell(sx+1, sy, '.', core.ColorGray)
			}
		}
	}
}

func (s *Session) renderPiece(dst *core.Screen, area core.Rect) {
	c := ColorFor(s.piece.Color)
	for i := range ShapeSize {
		for j := range ShapeSize {
			if s.piece.Shape[i][j] == 0 {
				continue
			}
			bx := s.piece.X + j
			by := s.piece.Y + i
			if by < 0 || by >= Height || bx < 0 || bx >= Width {
				continue
			}
			drawBlock(dst, area.X+bx*cellW, area.Y+by, c)
		}
	}
}

func (s *Session) renderPanel(dst *core.Screen) {
	next := core.NewRect(panelX, 0, panelW, ShapeSize+2)
	dst.DrawBox(next, core.ColorGray)
	dst.DrawText(panelX+2, 0, " NEXT ")

	shape := ShapeOf(Kind(s.next))
	c := ColorFor(Kind(s.next).Color())
	inner := next.Inner()
	offsetX := inner.X + (inner.W-ShapeSize*cellW)/2
	for i := range ShapeSize {
		for j := range ShapeSize {
			if shape[i][j] != 0 {
				drawBlock(dst, offsetX+j*cellW, inner.Y+i, c)
			}
		}
	}

	y := next.Bottom() + 1
	rows := []struct {
		label string
		value int
	}{
		{"SCORE", s.info.Score},
		{"HIGH", s.info.HighScore},
		{"LEVEL", s.info.Level},
		{"LINES", s.lines},
	}
	for _, r := range rows {
		dst.DrawTextColor(panelX+1, y, r.label, core.ColorGray)
		dst.DrawTextColor(panelX+1, y+1, fmt.Sprintf("%d", r.value), core.ColorWhite)
		y += 3
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	dst.SetCell(x, y, '█', c)
	dst.SetCell(x+1, y, '█', c)
}

// renderOverlay draws a boxed two-line message centered over area.
func renderOverlay(dst *core.Screen, area core.Rect, line1, line2 string) {
	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect(area.X+(area.W-boxW)/2, area.Y+(area.H-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box, box.Y+1, line1)
	dst.DrawTextCentered(box, box.Y+3, line2)
}
