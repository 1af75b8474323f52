// Package phase implements the core optical transform chain: the binarizing
// pixel-to-angle scale mapping, the complex-exponential phase encoding, the
// decoding paths back to pixel intensities, and random phase mask generation.
package phase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// Threshold splits the 8-bit range for the binarizing forward map. Samples
// strictly above it are treated as white.
const Threshold = 127

// ToAngleDomain converts an 8-bit pixel grid to phase angles. The map is a
// binarizer, not a linear rescale: values above Threshold become angle 0,
// values at or below it become pi. The inversion is intentional — bright
// pixels carry zero phase delay.
func ToAngleDomain(pixels *field.PixelGrid) *mat.Dense {
	rows, cols := pixels.Dims()
	angles := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if pixels.At(y, x) > Threshold {
				angles.Set(y, x, 0)
			} else {
				angles.Set(y, x, math.Pi)
			}
		}
	}

	return angles
}

// ToPixelDomain converts angles back to the 0..255 pixel scale with the
// plain linear map angle*255/pi. Unlike the forward map it is continuous,
// and it neither rounds nor clamps: the [0,255] range guarantee only holds
// when every input angle lies in [0, pi].
func ToPixelDomain(angles *mat.Dense) *mat.Dense {
	rows, cols := angles.Dims()
	pixels := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			pixels.Set(y, x, angles.At(y, x)*255.0/math.Pi)
		}
	}

	return pixels
}

// CheckAngleDomain reports whether every angle lies in [0, pi], the range
// for which ToPixelDomain stays inside the pixel scale.
func CheckAngleDomain(angles *mat.Dense) error {
	rows, cols := angles.Dims()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			a := angles.At(y, x)
			if a < 0 || a > math.Pi {
				return fmt.Errorf("%w: angle %g at (%d,%d)", field.ErrDomainViolation, a, y, x)
			}
		}
	}

	return nil
}
