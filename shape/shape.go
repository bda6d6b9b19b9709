package shape

import (
	"slices"
	"strings"

	"github.com/deitrix/blockpuzzle/cell"
)

// Shape is an immutable set of cells plus the bounding size it was declared with. Cells are
// relative to the shape's own origin until the shape is translated into grid space.
//
// A nil *Shape is a valid "no shape" value: methods on it report an empty shape.
type Shape struct {
	cells         []cell.Cell
	width, height int
}

// New returns a shape made of cells with the given declared width and height. The declared
// size is not checked against the cells.
func New(cells []cell.Cell, width, height int) *Shape {
	return &Shape{
		cells:  slices.Clone(cells),
		width:  width,
		height: height,
	}
}

// Cells returns a copy of the shape's cells in construction order.
func (s *Shape) Cells() []cell.Cell {
	if s == nil {
		return nil
	}
	return slices.Clone(s.cells)
}

// Len is the number of cells in the shape.
func (s *Shape) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cells)
}

// Width is the declared number of columns the shape spans.
func (s *Shape) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// Height is the declared number of rows the shape spans.
func (s *Shape) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Each calls f for every cell until f returns false.
func (s *Shape) Each(f func(c cell.Cell) bool) {
	if s == nil {
		return
	}
	for _, c := range s.cells {
		if !f(c) {
			return
		}
	}
}

// Translate returns a new shape with every cell offset by d. The receiver is not modified.
func (s *Shape) Translate(d cell.Cell) *Shape {
	if s == nil {
		return nil
	}
	cells := make([]cell.Cell, len(s.cells))
	for i, c := range s.cells {
		cells[i] = c.Add(d)
	}
	return &Shape{cells: cells, width: s.width, height: s.height}
}

// Bounds computes the width and height actually covered by the cells. It may differ from the
// declared size if the shape was constructed carelessly.
func (s *Shape) Bounds() (width, height int) {
	if s.Len() == 0 {
		return 0, 0
	}
	minR, minC, maxR, maxC := s.cells[0].Row, s.cells[0].Col, s.cells[0].Row, s.cells[0].Col
	for _, c := range s.cells[1:] {
		minR, maxR = min(minR, c.Row), max(maxR, c.Row)
		minC, maxC = min(minC, c.Col), max(maxC, c.Col)
	}
	return maxC - minC + 1, maxR - minR + 1
}

// String draws the shape as rows of '#' and '.' within its declared size.
func (s *Shape) String() string {
	if s == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for r := 0; r < s.height; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < s.width; c++ {
			if slices.Contains(s.cells, cell.Cell{Row: r, Col: c}) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// FromMask builds a shape from a row-major mask of the given width, where non-zero entries
// are filled. Empty rows and columns around the filled cells are trimmed so the result sits
// at the origin. An empty mask yields an empty shape.
func FromMask(mask []int, width int) *Shape {
	if width <= 0 {
		return New(nil, 0, 0)
	}
	minX, minY, maxX, maxY := width, len(mask)/width, -1, -1
	for i := range mask {
		if mask[i] == 0 {
			continue
		}
		x := i % width
		y := i / width
		minX, minY = min(minX, x), min(minY, y)
		maxX, maxY = max(maxX, x), max(maxY, y)
	}
	if maxX < 0 {
		return New(nil, 0, 0)
	}
	var cells []cell.Cell
	for i := range mask {
		if mask[i] == 0 {
			continue
		}
		cells = append(cells, cell.Cell{Row: i/width - minY, Col: i%width - minX})
	}
	return &Shape{
		cells:  cells,
		width:  maxX - minX + 1,
		height: maxY - minY + 1,
	}
}
