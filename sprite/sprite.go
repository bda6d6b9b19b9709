package sprite

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// size is the side of the generated sprites in pixels. They are scaled when drawn.
const size = 64

// Cell is a solid bevelled block, Ghost an outlined one. Both are white so they can be
// tinted when drawn.
var Cell, Ghost *ebiten.Image

var spriteMap = map[string]struct {
	img  **ebiten.Image
	draw func(*ebiten.Image)
}{
	"cell":  {&Cell, drawCell},
	"ghost": {&Ghost, drawGhost},
}

func Load() error {
	for _, s := range spriteMap {
		img := ebiten.NewImage(size, size)
		s.draw(img)
		*s.img = img
	}
	if err := loadFonts(); err != nil {
		return fmt.Errorf("loading fonts: %w", err)
	}
	return nil
}

func drawCell(img *ebiten.Image) {
	vector.DrawFilledRect(img, 0, 0, size, size, color.NRGBA{200, 200, 200, 255}, false)
	vector.DrawFilledRect(img, 6, 6, size-12, size-12, color.White, false)
	vector.StrokeRect(img, 1, 1, size-2, size-2, 2, color.NRGBA{90, 90, 90, 255}, false)
}

func drawGhost(img *ebiten.Image) {
	vector.DrawFilledRect(img, 0, 0, size, size, color.NRGBA{255, 255, 255, 96}, false)
	vector.StrokeRect(img, 2, 2, size-4, size-4, 4, color.White, false)
}
