// Package game runs one session of the puzzle: it turns pointer picks, drags and releases
// into piece moves, placements, clears and the game-over check.
//
// A Session is driven from a single goroutine (the UI's update loop) and is not safe for
// concurrent use.
package game

import (
	"image"
	"log"

	"github.com/deitrix/blockpuzzle/config"
	"github.com/deitrix/blockpuzzle/grid"
	"github.com/deitrix/blockpuzzle/layout"
	"github.com/deitrix/blockpuzzle/palette"
	"github.com/deitrix/blockpuzzle/piece"
	"github.com/deitrix/blockpuzzle/shape"
)

// Logf is the package-level diagnostic logger. It defaults to log.Printf and may be
// replaced by SetLogger.
var Logf func(format string, v ...any) = log.Printf

// SetLogger replaces the package logger. Passing nil mutes it.
func SetLogger(f func(format string, v ...any)) {
	if f == nil {
		Logf = func(string, ...any) {}
		return
	}
	Logf = f
}

// Stats counts what has happened in the session.
type Stats struct {
	Moves   int
	Rows    int
	Columns int
	Squares int
}

// Outcome is what a Release did.
type Outcome struct {
	// Placed is true if the piece was committed to the grid.
	Placed bool
	// Cleared holds the regions the placement completed.
	Cleared grid.ClearResult
	// Refreshed is true if the palette dealt a new set.
	Refreshed bool
	// GameOver is true if no palette piece fits anywhere any more.
	GameOver bool
}

type Session struct {
	grid    *grid.Grid
	palette *palette.Palette
	layout  layout.Layout

	selected *piece.Piece
	last     image.Point
	ghost    *shape.Shape
	preview  []grid.Region

	stats    Stats
	gameOver bool
}

// New starts a session from cfg, which is validated first.
func New(cfg config.Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(cfg.Grid)
	if err != nil {
		return nil, err
	}
	s := &Session{
		grid:    g,
		palette: palette.New(cfg.Generator(), cfg.Layout, cfg.RefreshPolicy()),
		layout:  cfg.Layout,
	}
	s.gameOver = g.IsGameOver(s.palette)
	return s, nil
}

func (s *Session) Grid() *grid.Grid          { return s.grid }
func (s *Session) Palette() *palette.Palette { return s.palette }
func (s *Session) Layout() layout.Layout     { return s.layout }
func (s *Session) Selected() *piece.Piece    { return s.selected }
func (s *Session) Score() int                { return s.grid.Score() }
func (s *Session) GameOver() bool            { return s.gameOver }
func (s *Session) Stats() Stats              { return s.stats }

// Ghost is where the dragged piece would land if released now, or nil if it can't be
// placed there.
func (s *Session) Ghost() *shape.Shape { return s.ghost }

// Preview lists the regions the dragged piece would complete at its snapped position.
func (s *Session) Preview() []grid.Region { return s.preview }

// Pick selects the palette piece under pt, in frame space, and takes it out of the palette.
// It reports whether a piece was picked. Nothing can be picked once the game is over or
// while another piece is being dragged.
func (s *Session) Pick(pt image.Point) bool {
	if s.gameOver || s.selected != nil {
		return false
	}
	pc := s.palette.PieceAt(pt)
	if pc == nil {
		return false
	}
	if err := pc.Select(); err != nil {
		Logf("pick: %v", err)
		return false
	}
	s.palette.Take(pc)
	s.selected = pc
	s.last = pt
	return true
}

// Drag moves the selected piece by the distance the pointer moved since the last Pick or
// Drag, then refreshes the ghost and the preview.
func (s *Session) Drag(pt image.Point) {
	if s.selected == nil {
		return
	}
	s.selected.MoveBy(pt.X-s.last.X, pt.Y-s.last.Y)
	s.last = pt
	s.updateGhost()
}

func (s *Session) updateGhost() {
	s.ghost, s.preview = nil, nil
	pc := s.selected
	if !s.layout.InsideGrid(pc.X, pc.Y, s.grid.Rows(), s.grid.Cols()) {
		return
	}
	snapped := pc.SnapToGrid(s.layout, s.grid.Rows(), s.grid.Cols())
	if !s.grid.CanPlace(snapped) {
		return
	}
	s.ghost = snapped
	s.preview, _ = s.grid.PoppableRegions(snapped)
}

// Release tries to commit the selected piece where it was dropped. A piece that doesn't fit
// goes back to the palette. Either way the palette refresh policy is applied and the game
// over check re-run.
func (s *Session) Release() Outcome {
	var out Outcome
	pc := s.selected
	if pc == nil {
		return out
	}
	s.selected, s.ghost, s.preview = nil, nil, nil

	snapped := pc.SnapToGrid(s.layout, s.grid.Rows(), s.grid.Cols())
	if s.grid.CanPlace(snapped) {
		s.grid.Place(snapped)
		out.Cleared = s.grid.ClearFullRegions()
		if err := pc.Commit(); err != nil {
			Logf("release: %v", err)
		}
		out.Placed = true
		s.stats.Moves++
		s.stats.Rows += out.Cleared.Count(grid.Row)
		s.stats.Columns += out.Cleared.Count(grid.Column)
		s.stats.Squares += out.Cleared.Count(grid.Square)
		if n := out.Cleared.Points(); n > 0 {
			Logf("cleared %d region(s), %d cells; score %d", n, out.Cleared.Cells, s.grid.Score())
		}
	} else {
		s.putBack(pc)
	}

	out.Refreshed = s.palette.AfterCommit()
	s.gameOver = s.grid.IsGameOver(s.palette)
	out.GameOver = s.gameOver
	if s.gameOver {
		Logf("game over: score %d after %d moves", s.grid.Score(), s.stats.Moves)
	}
	return out
}

// Cancel abandons the current drag. The grid is left untouched and the piece returns to
// the palette.
func (s *Session) Cancel() {
	pc := s.selected
	if pc == nil {
		return
	}
	s.selected, s.ghost, s.preview = nil, nil, nil
	s.putBack(pc)
}

func (s *Session) putBack(pc *piece.Piece) {
	if err := pc.Return(); err != nil {
		Logf("return: %v", err)
		return
	}
	s.palette.Return(pc)
}

// Reset starts a new game on the same settings.
func (s *Session) Reset() {
	s.grid.Reset()
	s.palette.Refresh()
	s.selected, s.ghost, s.preview = nil, nil, nil
	s.stats = Stats{}
	s.gameOver = s.grid.IsGameOver(s.palette)
}
