package grid

import (
	"github.com/deitrix/blockpuzzle/cell"
	"github.com/deitrix/blockpuzzle/shape"
)

// Catalog is anything that can list the shapes still available to the player.
type Catalog interface {
	Shapes() []*shape.Shape
}

// Move is a placement that fits: shape number Shape of the catalog anchored at Anchor.
type Move struct {
	Anchor cell.Cell
	Shape  int
}

// MoveFinder looks for any shape in shapes that fits somewhere on g.
type MoveFinder interface {
	FindMove(g *Grid, shapes []*shape.Shape) (Move, bool)
}

// Exhaustive tries every cell as an anchor for every shape and stops at the first fit.
// Anchors are visited row-major and shapes in catalog order.
type Exhaustive struct{}

func (Exhaustive) FindMove(g *Grid, shapes []*shape.Shape) (Move, bool) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			anchor := cell.Cell{Row: row, Col: col}
			for i, s := range shapes {
				if s.Len() == 0 {
					continue
				}
				if g.CanPlace(s.Translate(anchor)) {
					return Move{Anchor: anchor, Shape: i}, true
				}
			}
		}
	}
	return Move{}, false
}

// SetMoveFinder replaces the search used by FindMove and IsGameOver. A nil finder restores
// the exhaustive search.
func (g *Grid) SetMoveFinder(f MoveFinder) {
	if f == nil {
		f = Exhaustive{}
	}
	g.finder = f
}

// FindMove returns a placement of one of c's shapes that fits on the grid as it is now.
func (g *Grid) FindMove(c Catalog) (Move, bool) {
	return g.finder.FindMove(g, c.Shapes())
}

// IsGameOver reports whether none of c's shapes fit anywhere on the grid.
func (g *Grid) IsGameOver(c Catalog) bool {
	_, ok := g.FindMove(c)
	return !ok
}
