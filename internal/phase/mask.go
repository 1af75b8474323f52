package phase

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// MaskGenerator produces random phase masks from an injected random source.
// Passing the source explicitly keeps mask creation deterministic under a
// seeded rand, which the ambient global source cannot guarantee.
type MaskGenerator struct {
	rng *rand.Rand
}

func NewMaskGenerator(rng *rand.Rand) *MaskGenerator {
	return &MaskGenerator{rng: rng}
}

// Random returns a flat mask of size*size elements, each exp(i*2*pi*U) for
// an independent uniform U in [0,1). Every element has unit magnitude. The
// caller reshapes the slice, typically with field.ReshapeMask.
func (g *MaskGenerator) Random(size int) ([]complex128, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: mask size %d", field.ErrDegenerateInput, size)
	}

	mask := make([]complex128, size*size)
	for i := range mask {
		a := 2 * math.Pi * g.rng.Float64()
		mask[i] = complex(math.Cos(a), math.Sin(a))
	}

	return mask, nil
}
