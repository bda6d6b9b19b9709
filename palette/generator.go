package palette

import (
	"math/rand/v2"

	"github.com/deitrix/blockpuzzle/shape"
)

// Generator deals a fresh set of shapes each time the palette is refilled.
type Generator interface {
	Generate() []shape.Entry
}

// Fixed deals the whole catalog, in order, every time.
type Fixed struct {
	Catalog shape.Catalog
}

func (f Fixed) Generate() []shape.Entry {
	return append([]shape.Entry(nil), f.Catalog...)
}

// Random deals Count entries drawn from the catalog with replacement.
type Random struct {
	Catalog shape.Catalog
	Count   int
	Rand    *rand.Rand
}

// NewRandom returns a Random generator seeded with seed, so a game can be replayed.
func NewRandom(c shape.Catalog, count int, seed uint64) *Random {
	return &Random{
		Catalog: c,
		Count:   count,
		Rand:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

func (r *Random) Generate() []shape.Entry {
	if len(r.Catalog) == 0 {
		return nil
	}
	out := make([]shape.Entry, r.Count)
	for i := range out {
		out[i] = r.Catalog[r.Rand.IntN(len(r.Catalog))]
	}
	return out
}
