// Package layout maps between the pixel space pieces are dragged in and the cell space the
// grid works in. Nothing here knows about occupancy.
package layout

import (
	"errors"
	"fmt"
	"image"

	"github.com/deitrix/blockpuzzle/cell"
)

var ErrInvalidLayout = errors.New("invalid layout")

// Layout holds the pixel geometry of the board and the palette lane.
type Layout struct {
	// GridCellSize is the side of a grid cell, and of a dragged piece's cells, in pixels.
	GridCellSize int `json:"grid_cell_size"`
	// PaletteCellSize is the side of a cell of a piece waiting in the palette.
	PaletteCellSize int `json:"palette_cell_size"`
	// FrameX and FrameY offset pointer positions from the window frame to its contents.
	FrameX int `json:"frame_x"`
	FrameY int `json:"frame_y"`
	// GridX and GridY are the pixel position, in piece space, of the grid's top-left cell.
	GridX int `json:"grid_x"`
	GridY int `json:"grid_y"`
	// PaletteX and PaletteY are where the first palette piece is laid out.
	PaletteX int `json:"palette_x"`
	PaletteY int `json:"palette_y"`
	// PaletteSpacing is the gap between palette pieces.
	PaletteSpacing int `json:"palette_spacing"`
}

// Default is the layout of the classic window: 40px cells, a 20px palette, and a window
// frame of (7,30) with the grid starting 55px down.
func Default() Layout {
	return Layout{
		GridCellSize:    40,
		PaletteCellSize: 20,
		FrameX:          7,
		FrameY:          30,
		GridX:           7,
		GridY:           55,
		PaletteX:        10,
		PaletteY:        475,
		PaletteSpacing:  75,
	}
}

func (l Layout) Validate() error {
	if l.GridCellSize <= 0 || l.PaletteCellSize <= 0 {
		return fmt.Errorf("%w: cell sizes %d/%d must be positive", ErrInvalidLayout, l.GridCellSize, l.PaletteCellSize)
	}
	if l.PaletteSpacing < 0 {
		return fmt.Errorf("%w: palette spacing %d is negative", ErrInvalidLayout, l.PaletteSpacing)
	}
	return nil
}

// floorDiv divides rounding towards negative infinity, so pixels just left of or above the
// grid map to cell -1 rather than 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// CellAt returns the grid cell containing the pixel (x, y). The result may lie outside the
// grid.
func (l Layout) CellAt(x, y int) cell.Cell {
	return cell.Cell{
		Row: floorDiv(y-l.GridY, l.GridCellSize),
		Col: floorDiv(x-l.GridX, l.GridCellSize),
	}
}

// InsideGrid reports whether the pixel (x, y) falls on a cell of a rows x cols grid.
func (l Layout) InsideGrid(x, y, rows, cols int) bool {
	return l.CellAt(x, y).In(rows, cols)
}

// CellRect is the pixel rectangle covered by grid cell c.
func (l Layout) CellRect(c cell.Cell) image.Rectangle {
	x := l.GridX + c.Col*l.GridCellSize
	y := l.GridY + c.Row*l.GridCellSize
	return image.Rect(x, y, x+l.GridCellSize, y+l.GridCellSize)
}

// GridRect is the pixel rectangle covered by a rows x cols grid.
func (l Layout) GridRect(rows, cols int) image.Rectangle {
	return image.Rect(l.GridX, l.GridY, l.GridX+cols*l.GridCellSize, l.GridY+rows*l.GridCellSize)
}

// PaletteSlots returns the top-left corner of each palette piece given the widths, in cells,
// of the pieces in display order. Each piece starts after the previous piece's width plus
// the spacing.
func (l Layout) PaletteSlots(widths []int) []image.Point {
	slots := make([]image.Point, len(widths))
	x := l.PaletteX
	for i, w := range widths {
		slots[i] = image.Pt(x, l.PaletteY)
		x += w*l.PaletteCellSize + l.PaletteSpacing
	}
	return slots
}

// FromScreen converts a pointer position in window-content space to the frame space that
// hit tests use.
func (l Layout) FromScreen(x, y int) image.Point {
	return image.Pt(x+l.FrameX, y+l.FrameY)
}
