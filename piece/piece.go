package piece

import (
	"errors"
	"fmt"
	"image"

	"github.com/deitrix/blockpuzzle/cell"
	"github.com/deitrix/blockpuzzle/layout"
	"github.com/deitrix/blockpuzzle/shape"
	"github.com/google/uuid"
)

// State is where a piece is in its life.
type State int

const (
	// InPalette pieces wait in the palette to be picked.
	InPalette State = iota
	// InPlay pieces are being dragged.
	InPlay
	// Placed pieces have been committed to the grid. This is final.
	Placed
)

func (s State) String() string {
	switch s {
	case InPalette:
		return "in-palette"
	case InPlay:
		return "in-play"
	case Placed:
		return "placed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

var ErrInvalidTransition = errors.New("invalid piece state transition")

// Piece is a shape the player can pick up and drag. X and Y are the pixel position of the
// piece's top-left corner.
type Piece struct {
	ID       uuid.UUID
	Shape    *shape.Shape
	Tint     cell.Tint
	X, Y     int
	CellSize int
	State    State

	home image.Point
}

// New returns a piece waiting in the palette at (x, y). That position is remembered as the
// piece's home.
func New(s *shape.Shape, x, y, cellSize int) *Piece {
	return &Piece{
		ID:       uuid.New(),
		Shape:    s,
		X:        x,
		Y:        y,
		CellSize: cellSize,
		State:    InPalette,
		home:     image.Pt(x, y),
	}
}

// Home is the palette position the piece was laid out at.
func (p *Piece) Home() image.Point {
	return p.home
}

func (p *Piece) MoveBy(dx, dy int) {
	p.X += dx
	p.Y += dy
}

func (p *Piece) MoveTo(x, y int) {
	p.X, p.Y = x, y
}

// SetHome moves the piece to a new palette position and remembers it.
func (p *Piece) SetHome(x, y int) {
	p.home = image.Pt(x, y)
	p.X, p.Y = x, y
}

// SnapToGrid returns the piece's shape translated to the grid cell under its top-left
// corner. It returns nil if that anchor cell is outside a rows x cols grid. Only the anchor
// is checked: cells further along the shape may still fall off the grid.
func (p *Piece) SnapToGrid(l layout.Layout, rows, cols int) *shape.Shape {
	anchor := l.CellAt(p.X, p.Y)
	if !anchor.In(rows, cols) {
		return nil
	}
	return p.Shape.Translate(anchor)
}

// Contains reports whether pt, in frame space, falls on the piece's bounding box drawn with
// cells of cellSize pixels. Edges are inclusive.
func (p *Piece) Contains(pt image.Point, cellSize int, l layout.Layout) bool {
	left := p.X + l.FrameX
	top := p.Y + l.FrameY
	right := left + p.Shape.Width()*cellSize
	bottom := top + p.Shape.Height()*cellSize
	return pt.X >= left && pt.X <= right && pt.Y >= top && pt.Y <= bottom
}

func (p *Piece) transition(from, to State) error {
	if p.State != from {
		return fmt.Errorf("%w: %s to %s from %s", ErrInvalidTransition, from, to, p.State)
	}
	p.State = to
	return nil
}

// Select takes the piece out of the palette for dragging.
func (p *Piece) Select() error {
	return p.transition(InPalette, InPlay)
}

// Commit marks a dragged piece as placed on the grid.
func (p *Piece) Commit() error {
	return p.transition(InPlay, Placed)
}

// Return sends a dragged piece back to the palette, at its home position.
func (p *Piece) Return() error {
	if err := p.transition(InPlay, InPalette); err != nil {
		return err
	}
	p.X, p.Y = p.home.X, p.home.Y
	return nil
}

func (p *Piece) String() string {
	return fmt.Sprintf("piece %s (%dx%d, %s) at (%d,%d)", p.ID.String()[:8], p.Shape.Width(), p.Shape.Height(), p.State, p.X, p.Y)
}
