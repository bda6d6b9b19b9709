package layout

import (
	"errors"
	"image"
	"testing"

	"github.com/deitrix/blockpuzzle/cell"
	"github.com/stretchr/testify/assert"
)

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{0, 40, 0},
		{39, 40, 0},
		{40, 40, 1},
		{-1, 40, -1},
		{-40, 40, -1},
		{-41, 40, -2},
		{173, 40, 4},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, floorDiv(test.a, test.b), "floorDiv(%d, %d)", test.a, test.b)
	}
}

func TestCellAt(t *testing.T) {
	l := Default()
	tests := []struct {
		x, y int
		want cell.Cell
	}{
		{180, 250, cell.Cell{Row: 4, Col: 4}},
		{7, 55, cell.Cell{Row: 0, Col: 0}},
		{6, 55, cell.Cell{Row: 0, Col: -1}},
		{7, 54, cell.Cell{Row: -1, Col: 0}},
		{4, 22, cell.Cell{Row: -1, Col: -1}},
		{366, 414, cell.Cell{Row: 8, Col: 8}},
		{367, 415, cell.Cell{Row: 9, Col: 9}},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, l.CellAt(test.x, test.y), "CellAt(%d, %d)", test.x, test.y)
	}
}

func TestInsideGrid(t *testing.T) {
	l := Default()
	assert.True(t, l.InsideGrid(180, 250, 9, 9))
	assert.False(t, l.InsideGrid(4, 22, 9, 9))
	assert.True(t, l.InsideGrid(366, 414, 9, 9))
	assert.False(t, l.InsideGrid(367, 250, 9, 9))
	assert.False(t, l.InsideGrid(366, 414, 8, 8))
}

func TestCellRect(t *testing.T) {
	l := Default()
	assert.Equal(t, image.Rect(7, 55, 47, 95), l.CellRect(cell.Cell{}))
	assert.Equal(t, image.Rect(87, 175, 127, 215), l.CellRect(cell.Cell{Row: 3, Col: 2}))
	assert.Equal(t, image.Rect(7, 55, 367, 415), l.GridRect(9, 9))
	// Every cell's own top-left pixel maps back to it.
	c := cell.Cell{Row: 5, Col: 7}
	r := l.CellRect(c)
	assert.Equal(t, c, l.CellAt(r.Min.X, r.Min.Y))
	assert.Equal(t, c, l.CellAt(r.Max.X-1, r.Max.Y-1))
}

func TestPaletteSlots(t *testing.T) {
	l := Default()
	got := l.PaletteSlots([]int{4, 3, 2})
	assert.Equal(t, []image.Point{{10, 475}, {165, 475}, {300, 475}}, got)
	assert.Empty(t, l.PaletteSlots(nil))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	l := Default()
	l.GridCellSize = 0
	assert.True(t, errors.Is(l.Validate(), ErrInvalidLayout))

	l = Default()
	l.PaletteSpacing = -1
	assert.True(t, errors.Is(l.Validate(), ErrInvalidLayout))
}

func TestFromScreen(t *testing.T) {
	assert.Equal(t, image.Pt(17, 40), Default().FromScreen(10, 10))
}
