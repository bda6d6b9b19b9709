package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"strings"
	"time"

	"github.com/deitrix/blockpuzzle/cell"
	"github.com/deitrix/blockpuzzle/config"
	"github.com/deitrix/blockpuzzle/game"
	"github.com/deitrix/blockpuzzle/grid"
	"github.com/deitrix/blockpuzzle/piece"
	"github.com/deitrix/blockpuzzle/sprite"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/opentype"
)

const (
	// margin is the empty space kept right of the grid and below the palette, in pixels.
	margin = 40
	// blockBorder is the width of the lines drawn around each sub-square.
	blockBorder = 2
)

type Game struct {
	// Session is the game being played.
	Session *game.Session
	// ShowDebug is a flag that indicates whether debug information should be shown
	ShowDebug bool
	// ScreenWidth is the width of the screen in pixels
	ScreenWidth int
	// ScreenHeight is the height of the screen in pixels
	ScreenHeight int
}

func NewGame(cfg config.Config) (*Game, error) {
	s, err := game.New(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{Session: s}, nil
}

// pointer returns the cursor position in the frame space pieces are hit-tested in.
func (g *Game) pointer() image.Point {
	x, y := ebiten.CursorPosition()
	return g.Session.Layout().FromScreen(x, y)
}

func (g *Game) Update() error {
	s := g.Session

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.Reset()
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		g.ShowDebug = !g.ShowDebug
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.Cancel()
		return nil
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		s.Pick(g.pointer())
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		s.Release()
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		s.Drag(g.pointer())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawGrid(screen)
	g.drawBlocks(screen)
	g.drawGhost(screen)
	g.drawPreview(screen)
	g.drawPalette(screen)
	g.drawSelected(screen)
	g.drawScore(screen)
	g.drawDebug(screen)
}

func (g *Game) Layout(_, _ int) (screenWidth, screenHeight int) {
	l := g.Session.Layout()
	gr := g.Session.Grid()
	g.ScreenWidth = l.GridRect(gr.Rows(), gr.Cols()).Max.X + margin
	g.ScreenHeight = max(l.GridRect(gr.Rows(), gr.Cols()).Max.Y, l.PaletteY) + margin
	for _, p := range g.Session.Palette().Pieces() {
		g.ScreenWidth = max(g.ScreenWidth, p.Home().X+p.Shape.Width()*l.PaletteCellSize+margin)
		g.ScreenHeight = max(g.ScreenHeight, p.Home().Y+p.Shape.Height()*l.PaletteCellSize+margin)
	}
	return g.ScreenWidth, g.ScreenHeight
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	l := g.Session.Layout()
	gr := g.Session.Grid()
	lines := cell.Grid.NRGBA()
	for row := 0; row < gr.Rows(); row++ {
		for col := 0; col < gr.Cols(); col++ {
			r := l.CellRect(cell.Cell{Row: row, Col: col})
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, lines, false)
		}
	}
	n := gr.BlockSize()
	for row := 0; row < gr.Rows(); row += n {
		for col := 0; col < gr.Cols(); col += n {
			r := l.CellRect(cell.Cell{Row: row, Col: col})
			vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(n*r.Dx()), float32(n*r.Dy()), blockBorder, color.Black, false)
		}
	}
}

func (g *Game) drawBlocks(screen *ebiten.Image) {
	l := g.Session.Layout()
	gr := g.Session.Grid()
	for row, cols := range gr.Snapshot() {
		for col, filled := range cols {
			if !filled {
				continue
			}
			r := l.CellRect(cell.Cell{Row: row, Col: col})
			drawCell(screen, sprite.Cell, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), cell.Green, 255)
		}
	}
}

func (g *Game) drawGhost(screen *ebiten.Image) {
	ghost := g.Session.Ghost()
	if ghost == nil {
		return
	}
	l := g.Session.Layout()
	for _, c := range ghost.Cells() {
		r := l.CellRect(c)
		drawCell(screen, sprite.Ghost, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), cell.Ghost, 128)
	}
}

func (g *Game) drawPreview(screen *ebiten.Image) {
	l := g.Session.Layout()
	for _, region := range g.Session.Preview() {
		for _, c := range region.Shape.Cells() {
			r := l.CellRect(c)
			vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), cell.Preview.NRGBA(), false)
		}
	}
}

func (g *Game) drawPalette(screen *ebiten.Image) {
	l := g.Session.Layout()
	for _, p := range g.Session.Palette().Pieces() {
		renderPiece(screen, p, l.PaletteCellSize, 255)
	}
}

func (g *Game) drawSelected(screen *ebiten.Image) {
	if p := g.Session.Selected(); p != nil && p.State == piece.InPlay {
		renderPiece(screen, p, p.CellSize, 220)
	}
}

func (g *Game) drawScore(screen *ebiten.Image) {
	l := g.Session.Layout()
	drawText(screen, sprite.Bold, fmt.Sprintf("Score: %d", g.Session.Score()), 24, l.GridX, l.GridY-16, color.White)
	if g.Session.GameOver() {
		drawText(screen, sprite.Bold, "Game Over!", 24, l.GridX+200, l.GridY-16, cell.Red.NRGBA())
	}
}

func (g *Game) drawDebug(screen *ebiten.Image) {
	if !g.ShowDebug {
		return
	}
	s := g.Session
	stats := s.Stats()
	hint := "none"
	if move, ok := s.Grid().FindMove(s.Palette()); ok {
		hint = fmt.Sprintf("piece %d at %v", move.Shape, move.Anchor)
	}
	selected := "none"
	if p := s.Selected(); p != nil {
		selected = p.String()
	}
	drawText(screen, sprite.Regular, strings.Join([]string{
		fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()),
		fmt.Sprintf("Selected: %s", selected),
		fmt.Sprintf("Ghost: %t", s.Ghost() != nil),
		fmt.Sprintf("Preview: %d region(s)", len(s.Preview())),
		fmt.Sprintf("Moves: %d", stats.Moves),
		fmt.Sprintf("Cleared: %d %s, %d %s, %d %s", stats.Rows, grid.Row, stats.Columns, grid.Column, stats.Squares, grid.Square),
		fmt.Sprintf("Palette: %d (%s)", s.Palette().Len(), s.Palette().Policy()),
		fmt.Sprintf("Hint: %s", hint),
	}, "\n"), 14, 8, 16, color.White)
}

func drawText(img *ebiten.Image, f *opentype.Font, t string, size float64, x, y int, c color.Color) {
	face, err := sprite.Face(f, size)
	if err != nil {
		log.Fatalf("failed to create face: %v", err)
	}
	text.Draw(img, t, face, x, y, c)
}

func renderPiece(screen *ebiten.Image, p *piece.Piece, cellSize int, opacity uint8) {
	for _, c := range p.Shape.Cells() {
		x := p.X + c.Col*cellSize
		y := p.Y + c.Row*cellSize
		drawCell(screen, sprite.Cell, x, y, cellSize, cellSize, p.Tint, opacity)
	}
}

func drawCell(screen *ebiten.Image, img *ebiten.Image, x, y, width, height int, tint cell.Tint, opacity uint8) {
	var op ebiten.DrawImageOptions
	op.ColorScale.ScaleWithColor(tint.NRGBA())
	op.ColorScale.ScaleAlpha(float32(opacity) / 255)
	op.GeoM.Scale(float64(width)/float64(img.Bounds().Dx()), float64(height)/float64(img.Bounds().Dy()))
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, &op)
}

func main() {
	configPath := flag.String("config", config.DefaultPath(), "path to the JSON config file")
	seed := flag.Uint64("seed", 0, "seed for random piece deals (0 keeps the config's seed)")
	flag.Parse()

	log.SetFlags(0)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if err := sprite.Load(); err != nil {
		log.Fatalf("failed to load sprites: %v", err)
	}

	g, err := NewGame(cfg)
	if err != nil {
		log.Fatalf("failed to start game: %v", err)
	}

	ebiten.SetWindowTitle("Block Puzzle")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("failed to run game: %v", err)
	}
}
