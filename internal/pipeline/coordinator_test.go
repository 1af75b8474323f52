package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/classify"
	"github.com/yoavsyo/optic-classifier/internal/field"
)

func uniformMask(size int) *mat.CDense {
	mask := mat.NewCDense(size, size, nil)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			mask.Set(y, x, 1)
		}
	}
	return mask
}

func testGrid(t *testing.T, size int) *field.PixelGrid {
	t.Helper()
	grid, err := field.NewPixelGrid(size, size)
	require.NoError(t, err)
	return grid
}

func TestClassifyIdentityMask(t *testing.T) {
	c := NewCoordinator(nil, nil)

	result, err := c.Classify(context.Background(), testGrid(t, 4), uniformMask(4))
	require.NoError(t, err)

	// A phase-only field through a unit mask has uniform intensity, so
	// every quadrant ties and the priority order picks upper-left.
	require.Equal(t, classify.UpperLeft, result.Label)
	require.Equal(t, result.Energies[0], result.Energies[3])

	// Unit magnitude everywhere demodulates to the 255/pi constant.
	require.Equal(t, uint8(81), result.Demodulated.At(0, 0))
}

func TestClassifyShapeMismatch(t *testing.T) {
	c := NewCoordinator(nil, nil)

	_, err := c.Classify(context.Background(), testGrid(t, 4), uniformMask(3))
	require.ErrorIs(t, err, field.ErrShapeMismatch)
}

func TestClassifyCancelledContext(t *testing.T) {
	c := NewCoordinator(nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Classify(ctx, testGrid(t, 4), uniformMask(4))
	require.ErrorIs(t, err, context.Canceled)
}

func TestLatestCachesResult(t *testing.T) {
	c := NewCoordinator(nil, nil)
	require.Nil(t, c.Latest())

	result, err := c.Classify(context.Background(), testGrid(t, 4), uniformMask(4))
	require.NoError(t, err)
	require.Same(t, result, c.Latest())
}

// quadrantDamper attenuates everything outside one quadrant, steering the
// energy maximum deterministically.
type quadrantDamper struct {
	label classify.Label
}

func (q quadrantDamper) Propagate(f *mat.CDense) (*mat.CDense, error) {
	rows, cols := f.Dims()
	midRow, midCol := rows/2, cols/2

	out := mat.NewCDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			label := classify.UpperLeft
			if y >= midRow {
				label += 2
			}
			if x >= midCol {
				label++
			}
			if label == q.label {
				out.Set(y, x, f.At(y, x))
			} else {
				out.Set(y, x, f.At(y, x)*0.1)
			}
		}
	}
	return out, nil
}

func TestClassifyWithPropagator(t *testing.T) {
	for _, want := range []classify.Label{classify.UpperLeft, classify.UpperRight, classify.LowerLeft, classify.LowerRight} {
		c := NewCoordinator(nil, quadrantDamper{label: want})

		result, err := c.Classify(context.Background(), testGrid(t, 6), uniformMask(6))
		require.NoError(t, err)
		require.Equal(t, want, result.Label)
	}
}
