package phase

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// LiftToComplex maps each angle to the unit-magnitude sample exp(i*angle).
// It accepts arbitrary angles, not only the two-level output of
// ToAngleDomain, so continuous mask phases can be lifted too.
func LiftToComplex(angles *mat.Dense) *mat.CDense {
	rows, cols := angles.Dims()
	out := mat.NewCDense(rows, cols, nil)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			a := angles.At(y, x)
			out.Set(y, x, complex(math.Cos(a), math.Sin(a)))
		}
	}

	return out
}

// EncodePhase converts a pixel grid to a phase-only complex field:
// exp(i*ToAngleDomain(pixels)). Every element has unit magnitude; samples
// above Threshold encode to 1+0i and the rest to -1+0i, up to floating-point
// rounding.
func EncodePhase(pixels *field.PixelGrid) *mat.CDense {
	return LiftToComplex(ToAngleDomain(pixels))
}
