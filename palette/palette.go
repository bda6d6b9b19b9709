// Package palette keeps the pieces on offer to the player, laid out side by side in a lane
// below the grid, and deals new ones when the set is refreshed.
package palette

import (
	"fmt"
	"image"
	"slices"

	"github.com/deitrix/blockpuzzle/layout"
	"github.com/deitrix/blockpuzzle/piece"
	"github.com/deitrix/blockpuzzle/shape"
)

// RefreshPolicy decides when AfterCommit deals a fresh set.
type RefreshPolicy int

const (
	// RefreshWhenEmpty deals a new set only once every piece has been used.
	RefreshWhenEmpty RefreshPolicy = iota
	// RefreshAlways deals a new set after every commit attempt, discarding unused pieces.
	RefreshAlways
)

func (p RefreshPolicy) String() string {
	switch p {
	case RefreshWhenEmpty:
		return "empty"
	case RefreshAlways:
		return "always"
	}
	return fmt.Sprintf("RefreshPolicy(%d)", int(p))
}

// ParseRefreshPolicy reads a policy as written by String.
func ParseRefreshPolicy(s string) (RefreshPolicy, error) {
	switch s {
	case "", "empty":
		return RefreshWhenEmpty, nil
	case "always":
		return RefreshAlways, nil
	}
	return 0, fmt.Errorf("unknown refresh policy %q", s)
}

// Palette is the ordered set of pieces the player can pick from. Order is display order.
type Palette struct {
	gen    Generator
	layout layout.Layout
	policy RefreshPolicy
	pieces []*piece.Piece
	// slots remembers, by piece, the lane index it was dealt into so a returned piece goes
	// back between the same neighbours.
	slots map[*piece.Piece]int
}

// New returns a palette already filled from gen.
func New(gen Generator, l layout.Layout, policy RefreshPolicy) *Palette {
	p := &Palette{
		gen:    gen,
		layout: l,
		policy: policy,
	}
	p.Refresh()
	return p
}

func (p *Palette) Policy() RefreshPolicy { return p.policy }

// Pieces returns the live pieces in display order. The slice is a copy; the pieces are not.
func (p *Palette) Pieces() []*piece.Piece {
	return slices.Clone(p.pieces)
}

func (p *Palette) Len() int {
	return len(p.pieces)
}

// Shapes returns the shapes of the live pieces, in display order.
func (p *Palette) Shapes() []*shape.Shape {
	shapes := make([]*shape.Shape, len(p.pieces))
	for i, pc := range p.pieces {
		shapes[i] = pc.Shape
	}
	return shapes
}

// PieceAt returns the first piece whose palette-sized bounding box contains pt, or nil.
func (p *Palette) PieceAt(pt image.Point) *piece.Piece {
	for _, pc := range p.pieces {
		if pc.Contains(pt, p.layout.PaletteCellSize, p.layout) {
			return pc
		}
	}
	return nil
}

// Take removes pc from the palette. It reports false if pc was not in it.
func (p *Palette) Take(pc *piece.Piece) bool {
	i := slices.Index(p.pieces, pc)
	if i < 0 {
		return false
	}
	p.pieces = slices.Delete(p.pieces, i, i+1)
	return true
}

// Return puts a piece taken earlier back into its original place in the lane. Pieces from
// an earlier deal are ignored.
func (p *Palette) Return(pc *piece.Piece) bool {
	slot, ok := p.slots[pc]
	if !ok || slices.Contains(p.pieces, pc) {
		return false
	}
	i := 0
	for i < len(p.pieces) && p.slots[p.pieces[i]] < slot {
		i++
	}
	p.pieces = slices.Insert(p.pieces, i, pc)
	home := pc.Home()
	pc.MoveTo(home.X, home.Y)
	return true
}

// Refresh discards every remaining piece and deals a fresh set, laid out from the start of
// the lane.
func (p *Palette) Refresh() {
	entries := p.gen.Generate()
	widths := make([]int, len(entries))
	for i, e := range entries {
		widths[i] = e.Shape.Width()
	}
	slots := p.layout.PaletteSlots(widths)

	p.pieces = make([]*piece.Piece, len(entries))
	p.slots = make(map[*piece.Piece]int, len(entries))
	for i, e := range entries {
		pc := piece.New(e.Shape, slots[i].X, slots[i].Y, p.layout.GridCellSize)
		pc.Tint = e.Tint
		p.pieces[i] = pc
		p.slots[pc] = i
	}
}

// AfterCommit applies the refresh policy once a drag has ended, placed or not. It reports
// whether a fresh set was dealt.
func (p *Palette) AfterCommit() bool {
	if p.policy == RefreshAlways || len(p.pieces) == 0 {
		p.Refresh()
		return true
	}
	return false
}
