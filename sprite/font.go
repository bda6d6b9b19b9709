package sprite

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular *opentype.Font
	Bold    *opentype.Font
)

var fontMap = map[string]struct {
	f   **opentype.Font
	ttf []byte
}{
	"regular": {&Regular, goregular.TTF},
	"bold":    {&Bold, gobold.TTF},
}

func loadFonts() error {
	for name, entry := range fontMap {
		f, err := opentype.Parse(entry.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
		*entry.f = f
	}
	return nil
}

var faceCache = make(map[*opentype.Font]map[float64]font.Face)

// Face returns f at size points, creating it on first use.
func Face(f *opentype.Font, size float64) (font.Face, error) {
	if _, ok := faceCache[f]; !ok {
		faceCache[f] = make(map[float64]font.Face)
	}
	if face, ok := faceCache[f][size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("creating face: %w", err)
	}
	faceCache[f][size] = face
	return face, nil
}
