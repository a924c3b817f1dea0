package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/brickgame/internal/core"
)

func TestRenderStartScreen(t *testing.T) {
	s := New(nil, testConfig(1))
	scr := core.NewScreen(ScreenW, ScreenH)

	s.Render(scr)

	out := scr.String()
	assert.Contains(t, out, "BRICK GAME")
	assert.Contains(t, out, "Press Enter")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "LEVEL")
}

func TestRenderBoardCells(t *testing.T) {
	s := startGame(t, 1)
	s.board[19][0] = KindI.Color()
	scr := core.NewScreen(ScreenW, ScreenH)

	s.Render(scr)

	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorCyan}, scr.GetCell(1, 20))
	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorCyan}, scr.GetCell(2, 20))
	// Empty cells show a dot in the right half.
	assert.Equal(t, core.Cell{Rune: '.', Color: core.ColorGray}, scr.GetCell(4, 20))
	assert.Equal(t, '┌', scr.Get(0, 0))
	assert.Equal(t, '┘', scr.Get(Width*cellW+1, Height+1))
}

func TestRenderFallingPiece(t *testing.T) {
	s := startGame(t, 1)
	s.piece = Piece{Shape: ShapeOf(KindO), X: 4, Y: 5, Color: KindO.Color()}
	scr := core.NewScreen(ScreenW, ScreenH)

	s.Render(scr)

	// Box cell (1,1) is board (5,6), drawn at screen (1+2*5, 1+6).
	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorYellow}, scr.GetCell(11, 7))
	assert.Equal(t, core.Cell{Rune: '█', Color: core.ColorYellow}, scr.GetCell(14, 8))
}

func TestRenderScorePanel(t *testing.T) {
	s := startGame(t, 1)
	s.info.Score = 1500
	s.info.HighScore = 2300
	scr := core.NewScreen(ScreenW, ScreenH)

	s.Render(scr)

	out := scr.String()
	assert.Contains(t, out, "1500")
	assert.Contains(t, out, "2300")
	assert.NotContains(t, out, "BRICK GAME")
}

func TestRenderOverlays(t *testing.T) {
	s := startGame(t, 1)
	s.Step(core.ActionPause)
	scr := core.NewScreen(ScreenW, ScreenH)

	s.Render(scr)
	assert.Contains(t, scr.String(), "PAUSED")

	s.Step(core.ActionTerminate)
	s.Render(scr)
	out := scr.String()
	assert.Contains(t, out, "GAME OVER")
	assert.Contains(t, out, "Score 0")
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, core.ColorDefault, ColorFor(0))
	assert.Equal(t, core.ColorRed, ColorFor(KindZ.Color()))
	assert.Equal(t, core.ColorDefault, ColorFor(99))
	assert.Equal(t, core.ColorDefault, ColorFor(-1))
}
