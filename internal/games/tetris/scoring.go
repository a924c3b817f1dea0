package tetris

// Level progression.
const (
	PointsPerLevel = 600
	MaxLevel       = 10
)

// lineBonus is indexed by the number of rows cleared at once.
var lineBonus = [...]int{0, 100, 300, 700, 1500}

// Info is the score panel of a game.
type Info struct {
	Score     int
	HighScore int
	Level     int
	Speed     int // unused, always 0
	Pause     bool
}

// Imprint writes the piece color into every board cell it covers.
// Cells outside the board are dropped.
func (b *Board) Imprint(p *Piece) {
	for i := range ShapeSize {
		for j := range ShapeSize {
			if p.Shape[i][j] == 0 {
				continue
			}
			by := p.Y + i
			bx := p.X + j
			if by >= 0 && by < Height && bx >= 0 && bx < Width {
				b[by][bx] = p.Color
			}
		}
	}
}

// ClearLines removes every full row, moving the rows above it down, and
// returns how many rows were removed.
//
// Rows are scanned bottom to top. After a shift the same index is examined
// again since it now holds the row that was above it.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := Height - 1; y >= 0; {
		if !b.rowFull(y) {
			y--
			continue
		}
		cleared++
		for k := y; k > 0; k-- {
			b[k] = b[k-1]
		}
		b[0] = [Width]int{}
	}
	return cleared
}

func (b *Board) rowFull(y int) bool {
	for x := range Width {
		if b[y][x] == 0 {
			return false
		}
	}
	return true
}

// ScoreAndLevel credits the bonus for clearing n rows at once, raises the
// high score if needed and recomputes the level from the score.
func ScoreAndLevel(info *Info, n int) {
	if n > 0 && n < len(lineBonus) {
		info.Score += lineBonus[n]
	}
	if info.Score > info.HighScore {
		info.HighScore = info.Score
	}
	info.Level = LevelForScore(info.Score)
}

// LevelForScore returns min(MaxLevel, score/PointsPerLevel + 1).
func LevelForScore(score int) int {
	return min(MaxLevel, score/PointsPerLevel+1)
}

// LineBonus returns the points for clearing n rows at once, 0 if undefined.
func LineBonus(n int) int {
	if n < 0 || n >= len(lineBonus) {
		return 0
	}
	return lineBonus[n]
}
