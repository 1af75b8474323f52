package phase

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

func TestMaskGeneratorSizeAndMagnitude(t *testing.T) {
	gen := NewMaskGenerator(rand.New(rand.NewSource(7)))

	mask, err := gen.Random(9)
	require.NoError(t, err)
	require.Len(t, mask, 81)

	for i, z := range mask {
		require.InDelta(t, 1.0, cmplx.Abs(z), 1e-9, "element %d", i)
	}
}

func TestMaskGeneratorDeterministicUnderSeed(t *testing.T) {
	first, err := NewMaskGenerator(rand.New(rand.NewSource(42))).Random(5)
	require.NoError(t, err)
	second, err := NewMaskGenerator(rand.New(rand.NewSource(42))).Random(5)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestMaskGeneratorDegenerateSize(t *testing.T) {
	gen := NewMaskGenerator(rand.New(rand.NewSource(1)))

	for _, size := range []int{0, -3} {
		_, err := gen.Random(size)
		require.ErrorIs(t, err, field.ErrDegenerateInput)
	}
}

func TestMaskGeneratorPhaseDistribution(t *testing.T) {
	gen := NewMaskGenerator(rand.New(rand.NewSource(11)))

	mask, err := gen.Random(150)
	require.NoError(t, err)

	phases := make([]float64, len(mask))
	for i, z := range mask {
		p := cmplx.Phase(z)
		if p < 0 {
			p += 2 * math.Pi
		}
		phases[i] = p
	}

	// Uniform on [0, 2pi): mean pi, variance (2pi)^2/12.
	mean := stat.Mean(phases, nil)
	variance := stat.Variance(phases, nil)

	require.InDelta(t, math.Pi, mean, 0.05)
	require.InDelta(t, 4*math.Pi*math.Pi/12, variance, 0.1)
}

func TestMaskReshapeRoundTrip(t *testing.T) {
	gen := NewMaskGenerator(rand.New(rand.NewSource(3)))

	flat, err := gen.Random(4)
	require.NoError(t, err)

	grid, err := field.ReshapeMask(flat, 4)
	require.NoError(t, err)

	for i, z := range flat {
		require.Equal(t, z, grid.At(i/4, i%4))
	}
}
