// Package grid holds the authoritative board state: which cells are filled, whether a shape
// may be placed, which rows, columns and sub-squares are full, and the score earned by
// clearing them.
//
// A Grid is not safe for concurrent use.
package grid

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/deitrix/blockpuzzle/cell"
	"github.com/deitrix/blockpuzzle/shape"
)

// ErrInvalidConfig is returned (wrapped) when a grid cannot be built from its Config.
var ErrInvalidConfig = errors.New("invalid grid config")

// Config describes the dimensions of a grid.
type Config struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
	// BlockSize is the side length of the square regions. It must divide both Rows and Cols.
	BlockSize int `json:"block_size"`
}

// DefaultConfig is the standard 9x9 board with 3x3 sub-squares.
func DefaultConfig() Config {
	return Config{Rows: 9, Cols: 9, BlockSize: 3}
}

// Validate reports why c cannot describe a grid, if it can't.
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Rows, c.Cols)
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d must be positive", ErrInvalidConfig, c.BlockSize)
	case c.Rows%c.BlockSize != 0 || c.Cols%c.BlockSize != 0:
		return fmt.Errorf("%w: block size %d does not divide %dx%d", ErrInvalidConfig, c.BlockSize, c.Rows, c.Cols)
	}
	return nil
}

// occupancy is a row-major matrix of filled cells. The grid keeps one, and previews work on
// copies of it.
type occupancy struct {
	rows, cols int
	cells      []bool
}

func (o occupancy) index(c cell.Cell) int {
	return c.Row*o.cols + c.Col
}

func (o occupancy) filled(c cell.Cell) bool {
	return o.cells[o.index(c)]
}

func (o occupancy) clone() occupancy {
	o.cells = slices.Clone(o.cells)
	return o
}

// fits reports whether every cell of s is in bounds and empty.
func (o occupancy) fits(s *shape.Shape) bool {
	ok := true
	s.Each(func(c cell.Cell) bool {
		ok = c.In(o.rows, o.cols) && !o.filled(c)
		return ok
	})
	return ok
}

func (o occupancy) inBounds(s *shape.Shape) bool {
	ok := true
	s.Each(func(c cell.Cell) bool {
		ok = c.In(o.rows, o.cols)
		return ok
	})
	return ok
}

func (o occupancy) set(s *shape.Shape, filled bool) {
	s.Each(func(c cell.Cell) bool {
		o.cells[o.index(c)] = filled
		return true
	})
}

type Grid struct {
	occupancy
	blockSize int
	score     int
	finder    MoveFinder
}

// New builds an empty grid. It fails if the config is invalid.
func New(cfg Config) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Grid{
		occupancy: occupancy{
			rows:  cfg.Rows,
			cols:  cfg.Cols,
			cells: make([]bool, cfg.Rows*cfg.Cols),
		},
		blockSize: cfg.BlockSize,
		finder:    Exhaustive{},
	}, nil
}

func (g *Grid) Rows() int      { return g.rows }
func (g *Grid) Cols() int      { return g.cols }
func (g *Grid) BlockSize() int { return g.blockSize }

// Score is the number of regions cleared since the grid was created or last reset.
func (g *Grid) Score() int { return g.score }

// Config returns the dimensions the grid was built with.
func (g *Grid) Config() Config {
	return Config{Rows: g.rows, Cols: g.cols, BlockSize: g.blockSize}
}

// Filled reports whether c is occupied. Cells outside the grid are reported empty.
func (g *Grid) Filled(c cell.Cell) bool {
	return c.In(g.rows, g.cols) && g.filled(c)
}

// FilledCount is the number of occupied cells.
func (g *Grid) FilledCount() int {
	n := 0
	for _, f := range g.cells {
		if f {
			n++
		}
	}
	return n
}

// Snapshot returns a copy of the occupancy as [row][col].
func (g *Grid) Snapshot() [][]bool {
	out := make([][]bool, g.rows)
	for r := range out {
		out[r] = slices.Clone(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return out
}

// CanPlace reports whether s, already in grid coordinates, lies entirely inside the grid
// on empty cells. A nil shape cannot be placed.
func (g *Grid) CanPlace(s *shape.Shape) bool {
	if s == nil {
		return false
	}
	return g.fits(s)
}

// Place marks every cell of s as filled. It does not check legality: callers must check
// CanPlace first. Placing a shape with cells outside the grid panics.
func (g *Grid) Place(s *shape.Shape) {
	g.set(s, true)
}

// Reset empties the grid and zeroes the score.
func (g *Grid) Reset() {
	clear(g.cells)
	g.score = 0
}

func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			if g.cells[r*g.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
