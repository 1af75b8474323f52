package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPixelGrid(t *testing.T) {
	grid, err := NewPixelGrid(3, 4)
	require.NoError(t, err)

	rows, cols := grid.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 4, cols)
	require.Equal(t, uint8(0), grid.At(2, 3))
}

func TestNewPixelGridDegenerate(t *testing.T) {
	for _, dims := range [][2]int{{0, 4}, {4, 0}, {-1, 4}, {0, 0}} {
		_, err := NewPixelGrid(dims[0], dims[1])
		require.ErrorIs(t, err, ErrDegenerateInput, "dims %v", dims)
	}
}

func TestNewPixelGridFrom(t *testing.T) {
	data := []uint8{1, 2, 3, 4, 5, 6}
	grid, err := NewPixelGridFrom(2, 3, data)
	require.NoError(t, err)

	require.Equal(t, uint8(1), grid.At(0, 0))
	require.Equal(t, uint8(6), grid.At(1, 2))

	// The grid must own its storage.
	data[0] = 99
	require.Equal(t, uint8(1), grid.At(0, 0))
}

func TestNewPixelGridFromWrongLength(t *testing.T) {
	_, err := NewPixelGridFrom(2, 3, []uint8{1, 2, 3})
	require.True(t, errors.Is(err, ErrShapeMismatch))
}

func TestCloneIsIndependent(t *testing.T) {
	grid, err := NewPixelGridFrom(2, 2, []uint8{10, 20, 30, 40})
	require.NoError(t, err)

	clone := grid.Clone()
	clone.Set(0, 0, 99)

	require.Equal(t, uint8(10), grid.At(0, 0))
	require.Equal(t, uint8(99), clone.At(0, 0))
}
