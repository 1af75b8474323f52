package phase

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

func TestEncodePhaseTwoLevels(t *testing.T) {
	pixels, err := field.NewPixelGridFrom(1, 4, []uint8{255, 128, 127, 0})
	require.NoError(t, err)

	encoded := EncodePhase(pixels)

	// Bright pixels encode to 1, dark ones to exp(i*pi) = -1.
	require.InDelta(t, 1.0, real(encoded.At(0, 0)), 1e-9)
	require.InDelta(t, 0.0, imag(encoded.At(0, 0)), 1e-9)
	require.InDelta(t, 1.0, real(encoded.At(0, 1)), 1e-9)
	require.InDelta(t, -1.0, real(encoded.At(0, 2)), 1e-9)
	require.InDelta(t, 0.0, imag(encoded.At(0, 2)), 1e-9)
	require.InDelta(t, -1.0, real(encoded.At(0, 3)), 1e-9)
}

func TestEncodePhaseUnitMagnitude(t *testing.T) {
	data := make([]uint8, 64)
	for i := range data {
		data[i] = uint8(i * 4)
	}
	pixels, err := field.NewPixelGridFrom(8, 8, data)
	require.NoError(t, err)

	encoded := EncodePhase(pixels)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			require.InDelta(t, 1.0, cmplx.Abs(encoded.At(y, x)), 1e-9)
		}
	}
}

func TestLiftToComplex(t *testing.T) {
	angles := mat.NewDense(1, 4, []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2})
	lifted := LiftToComplex(angles)

	cases := []complex128{1, 1i, -1, -1i}
	for i, want := range cases {
		got := lifted.At(0, i)
		require.InDelta(t, real(want), real(got), 1e-9, "element %d", i)
		require.InDelta(t, imag(want), imag(got), 1e-9, "element %d", i)
	}
}

func TestLiftToComplexUnitMagnitude(t *testing.T) {
	angles := mat.NewDense(1, 5, []float64{-2.5, -0.3, 0.7, 4.1, 100})
	lifted := LiftToComplex(angles)

	for i := 0; i < 5; i++ {
		require.InDelta(t, 1.0, cmplx.Abs(lifted.At(0, i)), 1e-9)
	}
}
