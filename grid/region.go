package grid

import (
	"fmt"

	"github.com/deitrix/blockpuzzle/cell"
	"github.com/deitrix/blockpuzzle/shape"
	"github.com/kamstrup/intmap"
)

// RegionKind is the kind of line or block a region is.
type RegionKind int

const (
	Row RegionKind = iota
	Column
	Square
)

func (k RegionKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Square:
		return "square"
	}
	return fmt.Sprintf("RegionKind(%d)", int(k))
}

// Region is a full row, column or sub-square. Index is the row number, the column number,
// or the row-major block number respectively.
type Region struct {
	Kind  RegionKind
	Index int
	Shape *shape.Shape
}

func (r Region) String() string {
	return fmt.Sprintf("%s %d", r.Kind, r.Index)
}

// ClearResult describes one call to ClearFullRegions.
type ClearResult struct {
	// Regions are the regions that were full, in FullRegions order.
	Regions []Region
	// Cells is the number of distinct cells emptied. A cell shared by two regions counts once.
	Cells int
}

// Points is the score the clear earned: one per region.
func (r ClearResult) Points() int {
	return len(r.Regions)
}

// Count returns how many of the cleared regions were of kind k.
func (r ClearResult) Count(k RegionKind) int {
	n := 0
	for _, region := range r.Regions {
		if region.Kind == k {
			n++
		}
	}
	return n
}

func (o occupancy) rowFull(row int) bool {
	for col := 0; col < o.cols; col++ {
		if !o.cells[row*o.cols+col] {
			return false
		}
	}
	return true
}

func (o occupancy) columnFull(col int) bool {
	for row := 0; row < o.rows; row++ {
		if !o.cells[row*o.cols+col] {
			return false
		}
	}
	return true
}

func (o occupancy) squareFull(startRow, startCol, size int) bool {
	for row := startRow; row < startRow+size; row++ {
		for col := startCol; col < startCol+size; col++ {
			if !o.cells[row*o.cols+col] {
				return false
			}
		}
	}
	return true
}

func (g *Grid) rowShape(row int) *shape.Shape {
	cells := make([]cell.Cell, g.cols)
	for col := range cells {
		cells[col] = cell.Cell{Row: row, Col: col}
	}
	return shape.New(cells, g.cols, 1)
}

func (g *Grid) columnShape(col int) *shape.Shape {
	cells := make([]cell.Cell, g.rows)
	for row := range cells {
		cells[row] = cell.Cell{Row: row, Col: col}
	}
	return shape.New(cells, 1, g.rows)
}

func (g *Grid) squareShape(startRow, startCol int) *shape.Shape {
	cells := make([]cell.Cell, 0, g.blockSize*g.blockSize)
	for row := startRow; row < startRow+g.blockSize; row++ {
		for col := startCol; col < startCol+g.blockSize; col++ {
			cells = append(cells, cell.Cell{Row: row, Col: col})
		}
	}
	return shape.New(cells, g.blockSize, g.blockSize)
}

// fullRegions lists the full regions of o: rows top to bottom, then columns left to right,
// then block-aligned squares in row-major order.
func (g *Grid) fullRegions(o occupancy) []Region {
	var regions []Region
	for row := 0; row < o.rows; row++ {
		if o.rowFull(row) {
			regions = append(regions, Region{Kind: Row, Index: row, Shape: g.rowShape(row)})
		}
	}
	for col := 0; col < o.cols; col++ {
		if o.columnFull(col) {
			regions = append(regions, Region{Kind: Column, Index: col, Shape: g.columnShape(col)})
		}
	}
	blocksPerRow := o.cols / g.blockSize
	for row := 0; row < o.rows; row += g.blockSize {
		for col := 0; col < o.cols; col += g.blockSize {
			if o.squareFull(row, col, g.blockSize) {
				index := (row/g.blockSize)*blocksPerRow + col/g.blockSize
				regions = append(regions, Region{Kind: Square, Index: index, Shape: g.squareShape(row, col)})
			}
		}
	}
	return regions
}

// FullRegions returns every region that is currently full.
func (g *Grid) FullRegions() []Region {
	return g.fullRegions(g.occupancy)
}

// ClearFullRegions empties every cell belonging to a full region and adds one point per
// region to the score. Regions are found before any cell is cleared, so a cell shared by a
// full row and a full column is emptied once but both regions score.
func (g *Grid) ClearFullRegions() ClearResult {
	regions := g.FullRegions()
	cleared := intmap.New[int, struct{}](len(regions) * max(g.rows, g.cols))
	for _, region := range regions {
		region.Shape.Each(func(c cell.Cell) bool {
			i := g.index(c)
			g.cells[i] = false
			cleared.Put(i, struct{}{})
			return true
		})
	}
	g.score += len(regions)
	return ClearResult{Regions: regions, Cells: cleared.Len()}
}

// PoppableRegions reports the regions that would be full if candidate were placed, without
// touching the grid. ok is false if candidate is nil or has any cell outside the grid. The
// candidate's cells need not be empty.
func (g *Grid) PoppableRegions(candidate *shape.Shape) (regions []Region, ok bool) {
	if candidate == nil || !g.inBounds(candidate) {
		return nil, false
	}
	preview := g.clone()
	preview.set(candidate, true)
	return g.fullRegions(preview), true
}
