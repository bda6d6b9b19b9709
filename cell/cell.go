package cell

import (
	"fmt"
	"image/color"
)

// Cell is a position in grid space. Row grows downwards, Col grows to the right.
type Cell struct {
	Row, Col int
}

// Add returns c offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// In reports whether c lies within [0,rows) x [0,cols).
func (c Cell) In(rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Tint is the colour a cell is drawn with.
type Tint int

const (
	None Tint = iota
	Cyan
	Blue
	Orange
	Yellow
	Green
	Purple
	Red
	Ghost
	Preview
	Grid
)

var tints = map[Tint]color.NRGBA{
	None:    {0, 0, 0, 0},
	Cyan:    {0, 240, 240, 255},
	Blue:    {0, 90, 240, 255},
	Orange:  {240, 160, 0, 255},
	Yellow:  {240, 240, 0, 255},
	Green:   {0, 200, 60, 255},
	Purple:  {160, 0, 240, 255},
	Red:     {240, 0, 0, 255},
	Ghost:   {0, 255, 255, 128},
	Preview: {0, 0, 0, 128},
	Grid:    {128, 128, 128, 255},
}

// NRGBA returns the colour for t. Unknown tints are transparent.
func (t Tint) NRGBA() color.NRGBA {
	return tints[t]
}

// Pieces is the set of tints handed out to palette pieces, in rotation.
var Pieces = []Tint{Cyan, Blue, Orange, Yellow, Green, Purple, Red}
