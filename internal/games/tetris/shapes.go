package tetris

// ShapeSize is the side of the square bounding box every piece lives in.
const ShapeSize = 4

// Shape is a 4x4 binary template. 1 marks an occupied cell.
type Shape [ShapeSize][ShapeSize]int

// Kind identifies one of the seven pieces.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindL
	KindJ
	KindS
	KindZ
)

// KindCount is the number of distinct pieces.
const KindCount = 7

// shapes is indexed by Kind. Each template keeps at least one empty row and
// column so that rotation stays inside the box.
var shapes = [KindCount]Shape{
	{{0, 0, 0, 0}, {0, 0, 0, 0}, {1, 1, 1, 1}, {0, 0, 0, 0}}, // I
	{{0, 0, 0, 0}, {0, 1, 1, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}}, // O
	{{0, 0, 0, 0}, {0, 1, 0, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}}, // T
	{{0, 0, 0, 0}, {0, 0, 1, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}}, // L
	{{0, 0, 0, 0}, {1, 0, 0, 0}, {1, 1, 1, 0}, {0, 0, 0, 0}}, // J
	{{0, 0, 0, 0}, {0, 1, 1, 0}, {1, 1, 0, 0}, {0, 0, 0, 0}}, // S
	{{0, 0, 0, 0}, {1, 1, 0, 0}, {0, 1, 1, 0}, {0, 0, 0, 0}}, // Z
}

// ShapeOf returns a copy of the template for kind k.
func ShapeOf(k Kind) Shape {
	return shapes[k]
}

// Color returns the board identifier used for cells of this kind.
func (k Kind) Color() int {
	return int(k) + 1
}

// String returns the conventional letter for the kind.
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Rotated returns the shape turned 90° clockwise: transpose, then reverse
// each row.
func (s Shape) Rotated() Shape {
	var t Shape
	for i := range ShapeSize {
		for j := range ShapeSize {
			t[i][j] = s[j][i]
		}
	}
	for i := range ShapeSize {
		for j := range ShapeSize / 2 {
			t[i][j], t[i][ShapeSize-1-j] = t[i][ShapeSize-1-j], t[i][j]
		}
	}
	return t
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	n := 0
	for i := range ShapeSize {
		for j := range ShapeSize {
			if s[i][j] != 0 {
				n++
			}
		}
	}
	return n
}
