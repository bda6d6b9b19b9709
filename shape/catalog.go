package shape

import (
	"fmt"

	"github.com/deitrix/blockpuzzle/cell"
)

// Entry is a named shape in a catalog along with the tint its pieces are drawn in.
type Entry struct {
	Name  string
	Shape *Shape
	Tint  cell.Tint
}

// Catalog is an ordered, read-only list of the shapes pieces are generated from.
type Catalog []Entry

// Shapes returns the catalog's shapes in order.
func (c Catalog) Shapes() []*Shape {
	shapes := make([]*Shape, len(c))
	for i, e := range c {
		shapes[i] = e.Shape
	}
	return shapes
}

var (
	// I is four cells in a horizontal line.
	I = FromMask([]int{
		1, 1, 1, 1,
	}, 4)

	// T is three cells across with one hanging below the middle.
	T = FromMask([]int{
		1, 1, 1,
		0, 1, 0,
	}, 3)

	// O is a 2x2 square.
	O = FromMask([]int{
		1, 1,
		1, 1,
	}, 2)

	J = FromMask([]int{
		1, 0, 0,
		1, 1, 1,
		0, 0, 0,
	}, 3)

	L = FromMask([]int{
		0, 0, 1,
		1, 1, 1,
		0, 0, 0,
	}, 3)

	S = FromMask([]int{
		0, 1, 1,
		1, 1, 0,
		0, 0, 0,
	}, 3)

	Z = FromMask([]int{
		1, 1, 0,
		0, 1, 1,
		0, 0, 0,
	}, 3)
)

// Classic is the three-shape set the game has always dealt: I, T and O.
func Classic() Catalog {
	return Catalog{
		{Name: "I", Shape: I, Tint: cell.Cyan},
		{Name: "T", Shape: T, Tint: cell.Purple},
		{Name: "O", Shape: O, Tint: cell.Yellow},
	}
}

// Tetrominoes is all seven four-cell shapes.
func Tetrominoes() Catalog {
	return Catalog{
		{Name: "I", Shape: I, Tint: cell.Cyan},
		{Name: "J", Shape: J, Tint: cell.Blue},
		{Name: "L", Shape: L, Tint: cell.Orange},
		{Name: "O", Shape: O, Tint: cell.Yellow},
		{Name: "S", Shape: S, Tint: cell.Green},
		{Name: "T", Shape: T, Tint: cell.Purple},
		{Name: "Z", Shape: Z, Tint: cell.Red},
	}
}

const (
	CatalogClassic   = "classic"
	CatalogTetromino = "tetromino"
)

// CatalogByName resolves a catalog name as written in config files.
func CatalogByName(name string) (Catalog, error) {
	switch name {
	case "", CatalogClassic:
		return Classic(), nil
	case CatalogTetromino:
		return Tetrominoes(), nil
	}
	return nil, fmt.Errorf("unknown shape catalog %q", name)
}
