package search

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// Interference is the simulated propagation step this collaborator feeds
// into the pipeline: each output sample is the normalized coherent sum of
// the field over a square neighborhood. Neighboring phases interfere, so
// the screen intensity depends on the mask. This is a stand-in for a real
// optical path, not a diffraction model.
type Interference struct {
	// Radius of the neighborhood; 0 reduces to the identity.
	Radius int
}

func (p Interference) Propagate(f *mat.CDense) (*mat.CDense, error) {
	if p.Radius < 0 {
		return nil, fmt.Errorf("%w: interference radius %d", field.ErrDomainViolation, p.Radius)
	}

	rows, cols := f.Dims()
	out := mat.NewCDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			var sum complex128
			count := 0
			for dy := -p.Radius; dy <= p.Radius; dy++ {
				for dx := -p.Radius; dx <= p.Radius; dx++ {
					sy, sx := y+dy, x+dx
					if sy < 0 || sy >= rows || sx < 0 || sx >= cols {
						continue
					}
					sum += f.At(sy, sx)
					count++
				}
			}
			out.Set(y, x, sum/complex(float64(count), 0))
		}
	}

	return out, nil
}
