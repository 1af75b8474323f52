package phase

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// ExtractAngle returns the principal argument of each element, in (-pi, pi].
func ExtractAngle(f *mat.CDense) *mat.Dense {
	rows, cols := f.Dims()
	angles := mat.NewDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			angles.Set(y, x, cmplx.Phase(f.At(y, x)))
		}
	}

	return angles
}

// DecodeToPixels inverts a phase-only field back to the pixel scale via the
// principal argument and the continuous linear rescale. No binarization and
// no rounding happen on this path; elements with negative phase come back
// negative.
func DecodeToPixels(f *mat.CDense) *mat.Dense {
	return ToPixelDomain(ExtractAngle(f))
}

// DemodulateMagnitude turns a complex field into a displayable 8-bit grid:
// |z| is pushed through the 255/pi rescale, rounded to nearest, and clamped
// to [0,255] before the cast. Clamping rather than wrapping is a deliberate
// policy: magnitudes above pi would otherwise alias to dark pixels.
func DemodulateMagnitude(f *mat.CDense) *field.PixelGrid {
	scaled := ToPixelDomain(field.Magnitude(f))

	rows, cols := scaled.Dims()
	pixels, _ := field.NewPixelGrid(rows, cols)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := math.Round(scaled.At(y, x))
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			pixels.Set(y, x, uint8(v))
		}
	}

	return pixels
}
