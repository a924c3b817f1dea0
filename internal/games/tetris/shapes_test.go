package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func allKinds() []Kind {
	return []Kind{KindI, KindO, KindT, KindL, KindJ, KindS, KindZ}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, k := range allKinds() {
		t.Run(k.String(), func(t *testing.T) {
			s := ShapeOf(k)
			r := s.Rotated().Rotated().Rotated().Rotated()
			assert.Equal(t, s, r)
		})
	}
}

func TestRotateChangesAsymmetricShapes(t *testing.T) {
	for _, k := range []Kind{KindI, KindT, KindL, KindJ, KindS, KindZ} {
		t.Run(k.String(), func(t *testing.T) {
			s := ShapeOf(k)
			assert.NotEqual(t, s, s.Rotated())
			assert.Equal(t, s.CellCount(), s.Rotated().CellCount())
		})
	}
}

func TestRotateSquareKeepsCells(t *testing.T) {
	s := ShapeOf(KindO)
	assert.Equal(t, s, s.Rotated())
}

func TestRotateClockwise(t *testing.T) {
	tests := []struct {
		name     string
		kind     Kind
		expected Shape
	}{
		{
			name: "T points right",
			kind: KindT,
			expected: Shape{
				{0, 1, 0, 0},
				{0, 1, 1, 0},
				{0, 1, 0, 0},
				{0, 0, 0, 0},
			},
		},
		{
			name: "I stands in column 1",
			kind: KindI,
			expected: Shape{
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 0, 0},
			},
		},
		{
			name: "L",
			kind: KindL,
			expected: Shape{
				{0, 1, 0, 0},
				{0, 1, 0, 0},
				{0, 1, 1, 0},
				{0, 0, 0, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShapeOf(tt.kind).Rotated())
		})
	}
}

func TestShapesHaveFourCells(t *testing.T) {
	for _, k := range allKinds() {
		assert.Equal(t, 4, ShapeOf(k).CellCount(), "kind %s", k)
	}
}

func TestShapeOfReturnsCopy(t *testing.T) {
	s := ShapeOf(KindT)
	s[0][0] = 1
	s[3][3] = 1

	assert.Equal(t, 0, ShapeOf(KindT)[0][0])
	assert.Equal(t, 0, ShapeOf(KindT)[3][3])
}

func TestKindColorAndName(t *testing.T) {
	names := "IOTLJSZ"
	for i, k := range allKinds() {
		assert.Equal(t, i+1, k.Color())
		assert.Equal(t, string(names[i]), k.String())
	}
	assert.Equal(t, "?", Kind(42).String())
}

func TestPieceRotateMutatesInPlace(t *testing.T) {
	p := Piece{Shape: ShapeOf(KindS), X: 3, Y: 5, Color: KindS.Color()}
	p.Rotate()

	assert.Equal(t, ShapeOf(KindS).Rotated(), p.Shape)
	assert.Equal(t, 3, p.X)
	assert.Equal(t, 5, p.Y)
}
