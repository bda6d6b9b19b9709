package game

import (
	"errors"
	"image"
	"testing"

	"github.com/deitrix/blockpuzzle/cell"
	"github.com/deitrix/blockpuzzle/config"
	"github.com/deitrix/blockpuzzle/grid"
	"github.com/deitrix/blockpuzzle/piece"
	"github.com/deitrix/blockpuzzle/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T, modify func(*config.Config)) *Session {
	t.Helper()
	SetLogger(t.Logf)
	t.Cleanup(func() { SetLogger(nil) })
	cfg := config.Default()
	if modify != nil {
		modify(&cfg)
	}
	s, err := New(cfg)
	require.NoError(t, err)
	return s
}

// grab picks the palette piece at index i by pointing just inside its top-left corner.
func grab(t *testing.T, s *Session, i int) *piece.Piece {
	t.Helper()
	pc := s.Palette().Pieces()[i]
	l := s.Layout()
	require.True(t, s.Pick(image.Pt(pc.X+l.FrameX+1, pc.Y+l.FrameY+1)))
	return pc
}

// dragTo drags the selected piece so its top-left corner sits on the pixel corner of c.
func dragTo(s *Session, c cell.Cell) {
	pc := s.Selected()
	target := s.Layout().CellRect(c).Min
	s.Drag(s.last.Add(target.Sub(image.Pt(pc.X, pc.Y))))
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.BlockSize = 4
	_, err := New(cfg)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

func TestPlacePiece(t *testing.T) {
	s := newSession(t, nil)
	require.False(t, s.GameOver())

	pc := grab(t, s, 0)
	assert.Equal(t, piece.InPlay, pc.State)
	assert.Same(t, pc, s.Selected())
	assert.Equal(t, 2, s.Palette().Len())

	dragTo(s, cell.Cell{Row: 4, Col: 4})
	require.NotNil(t, s.Ghost())
	assert.Equal(t, []cell.Cell{{4, 4}, {4, 5}, {4, 6}, {4, 7}}, s.Ghost().Cells())
	assert.Empty(t, s.Preview())
	assert.Equal(t, 0, s.Grid().FilledCount(), "dragging must not touch the grid")

	out := s.Release()
	assert.True(t, out.Placed)
	assert.False(t, out.Refreshed)
	assert.False(t, out.GameOver)
	assert.Equal(t, piece.Placed, pc.State)
	assert.Nil(t, s.Selected())
	assert.Nil(t, s.Ghost())
	assert.Equal(t, 4, s.Grid().FilledCount())
	assert.True(t, s.Grid().Filled(cell.Cell{Row: 4, Col: 7}))
	assert.Equal(t, 2, s.Palette().Len())
	assert.Equal(t, Stats{Moves: 1}, s.Stats())
}

func TestDragOutsideGrid(t *testing.T) {
	s := newSession(t, nil)
	grab(t, s, 0)

	dragTo(s, cell.Cell{Row: 4, Col: 4})
	require.NotNil(t, s.Ghost())

	dragTo(s, cell.Cell{Row: -1, Col: 4})
	assert.Nil(t, s.Ghost())
	assert.Nil(t, s.Preview())
}

func TestReleaseOffGrid_ReturnsPiece(t *testing.T) {
	s := newSession(t, nil)
	before := s.Palette().Pieces()
	pc := grab(t, s, 0)

	// Anchor is on the grid but the I runs off the right edge.
	dragTo(s, cell.Cell{Row: 0, Col: 6})
	assert.Nil(t, s.Ghost())

	out := s.Release()
	assert.False(t, out.Placed)
	assert.Equal(t, piece.InPalette, pc.State)
	assert.Equal(t, pc.Home(), image.Pt(pc.X, pc.Y))
	assert.Equal(t, before, s.Palette().Pieces())
	assert.Equal(t, 0, s.Grid().FilledCount())
	assert.Equal(t, 0, s.Stats().Moves)
}

func TestReleaseOnOccupied_ReturnsPiece(t *testing.T) {
	s := newSession(t, nil)
	grab(t, s, 2)
	dragTo(s, cell.Cell{Row: 0, Col: 0})
	require.True(t, s.Release().Placed)

	grab(t, s, 0)
	dragTo(s, cell.Cell{Row: 1, Col: 0})
	assert.Nil(t, s.Ghost())
	assert.False(t, s.Release().Placed)
	assert.Equal(t, 2, s.Palette().Len())
	assert.Equal(t, 4, s.Grid().FilledCount())
}

func TestClearRow(t *testing.T) {
	s := newSession(t, func(c *config.Config) {
		c.Grid = grid.Config{Rows: 8, Cols: 8, BlockSize: 4}
		c.Refresh = "always"
	})

	grab(t, s, 0)
	dragTo(s, cell.Cell{Row: 0, Col: 0})
	out := s.Release()
	require.True(t, out.Placed)
	assert.True(t, out.Refreshed)
	assert.Equal(t, 3, s.Palette().Len())

	grab(t, s, 0)
	dragTo(s, cell.Cell{Row: 0, Col: 4})
	require.Len(t, s.Preview(), 1)
	assert.Equal(t, grid.Row, s.Preview()[0].Kind)
	assert.Equal(t, 0, s.Score(), "preview must not score")

	out = s.Release()
	assert.True(t, out.Placed)
	assert.Equal(t, 1, out.Cleared.Points())
	assert.Equal(t, 8, out.Cleared.Cells)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 0, s.Grid().FilledCount())
	assert.Equal(t, Stats{Moves: 2, Rows: 1}, s.Stats())
}

func TestRefreshWhenEmpty(t *testing.T) {
	s := newSession(t, nil)
	targets := []cell.Cell{{0, 0}, {2, 0}, {4, 0}}
	for i, target := range targets {
		grab(t, s, 0)
		dragTo(s, target)
		out := s.Release()
		require.True(t, out.Placed, "move %d", i)
		assert.Equal(t, i == len(targets)-1, out.Refreshed, "move %d", i)
	}
	assert.Equal(t, 3, s.Palette().Len())
}

func TestCancel(t *testing.T) {
	s := newSession(t, nil)
	before := s.Palette().Pieces()
	pc := grab(t, s, 1)
	dragTo(s, cell.Cell{Row: 3, Col: 3})
	require.NotNil(t, s.Ghost())

	s.Cancel()
	assert.Nil(t, s.Selected())
	assert.Nil(t, s.Ghost())
	assert.Equal(t, piece.InPalette, pc.State)
	assert.Equal(t, before, s.Palette().Pieces())
	assert.Equal(t, 0, s.Grid().FilledCount())

	// Nothing to cancel or release now.
	s.Cancel()
	assert.Equal(t, Outcome{}, s.Release())
}

func TestPick_Misses(t *testing.T) {
	s := newSession(t, nil)
	assert.False(t, s.Pick(image.Pt(0, 0)))
	assert.Nil(t, s.Selected())

	grab(t, s, 0)
	other := s.Palette().Pieces()[0]
	l := s.Layout()
	assert.False(t, s.Pick(image.Pt(other.X+l.FrameX+1, other.Y+l.FrameY+1)), "already dragging")
}

func TestDrag_NoSelection(t *testing.T) {
	s := newSession(t, nil)
	s.Drag(image.Pt(100, 100))
	assert.Nil(t, s.Ghost())
}

func TestGameOver_AfterMove(t *testing.T) {
	s := newSession(t, func(c *config.Config) {
		c.Grid = grid.Config{Rows: 3, Cols: 3, BlockSize: 3}
	})
	require.False(t, s.GameOver())

	grab(t, s, 2)
	dragTo(s, cell.Cell{Row: 1, Col: 1})
	out := s.Release()
	require.True(t, out.Placed)
	assert.True(t, out.GameOver)
	assert.True(t, s.GameOver())
	assert.Equal(t, []*shape.Shape{shape.I, shape.T}, s.Palette().Shapes())

	pc := s.Palette().Pieces()[0]
	l := s.Layout()
	assert.False(t, s.Pick(image.Pt(pc.X+l.FrameX+1, pc.Y+l.FrameY+1)))
}

func TestGameOver_AtStart(t *testing.T) {
	s := newSession(t, func(c *config.Config) {
		c.Grid = grid.Config{Rows: 1, Cols: 1, BlockSize: 1}
	})
	assert.True(t, s.GameOver())
}

func TestReset(t *testing.T) {
	s := newSession(t, func(c *config.Config) {
		c.Grid = grid.Config{Rows: 3, Cols: 3, BlockSize: 3}
	})
	grab(t, s, 2)
	dragTo(s, cell.Cell{Row: 1, Col: 1})
	s.Release()
	require.True(t, s.GameOver())

	s.Reset()
	assert.False(t, s.GameOver())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 0, s.Grid().FilledCount())
	assert.Equal(t, 3, s.Palette().Len())
	assert.Equal(t, Stats{}, s.Stats())
}
