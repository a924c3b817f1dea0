package tetris

// Board dimensions. They never change for the lifetime of the process.
const (
	Width  = 10
	Height = 20
)

// Board is the playfield indexed [row][column]. 0 is empty, 1..7 is the color
// of the settled block.
type Board [Height][Width]int

// Piece is the falling piece: its current orientation, the board position of
// the top-left corner of its 4x4 box and its color.
type Piece struct {
	Shape Shape
	X, Y  int
	Color int
}

// Rotate turns the piece 90° clockwise in place.
//
// The result is not checked against the board. Callers must snapshot the
// piece first and restore it when the rotated piece collides.
func (p *Piece) Rotate() {
	p.Shape = p.Shape.Rotated()
}

// Collides reports whether p is in an illegal position on b.
//
// A set cell is illegal when it lies left of column 0, right of the last
// column or below the last row, or when it lies on an occupied board cell.
// Cells above the board (negative row) are never checked for occupancy, which
// lets a freshly spawned piece hang partly out of view.
func (b *Board) Collides(p *Piece) bool {
	for i := range ShapeSize {
		for j := range ShapeSize {
			if p.Shape[i][j] == 0 {
				continue
			}
			bx := p.X + j
			by := p.Y + i
			if bx < 0 || bx >= Width || by >= Height {
				return true
			}
			if by >= 0 && b[by][bx] != 0 {
				return true
			}
		}
	}
	return false
}

// Cell returns the value at column x, row y, or 0 when out of bounds.
func (b *Board) Cell(x, y int) int {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return b[y][x]
}
