package field

import "fmt"

// PixelGrid is a rows x cols grid of 8-bit grayscale samples. Transforms in
// this repository treat grids as immutable values: every stage returns a new
// grid rather than writing through its input, so a grid may be shared
// read-only across parallel classification calls.
type PixelGrid struct {
	rows, cols int
	pix        []uint8
}

// NewPixelGrid creates a zero-filled grid.
func NewPixelGrid(rows, cols int) (*PixelGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrDegenerateInput, rows, cols)
	}

	return &PixelGrid{
		rows: rows,
		cols: cols,
		pix:  make([]uint8, rows*cols),
	}, nil
}

// NewPixelGridFrom creates a grid backed by a copy of data, laid out in
// row-major order.
func NewPixelGridFrom(rows, cols int, data []uint8) (*PixelGrid, error) {
	grid, err := NewPixelGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d samples for %dx%d grid", ErrShapeMismatch, len(data), rows, cols)
	}

	copy(grid.pix, data)
	return grid, nil
}

// Dims returns the grid dimensions.
func (g *PixelGrid) Dims() (rows, cols int) {
	return g.rows, g.cols
}

// At returns the sample at row y, column x.
func (g *PixelGrid) At(y, x int) uint8 {
	return g.pix[y*g.cols+x]
}

// Set writes the sample at row y, column x.
func (g *PixelGrid) Set(y, x int, value uint8) {
	g.pix[y*g.cols+x] = value
}

// Clone returns an independent copy of the grid.
func (g *PixelGrid) Clone() *PixelGrid {
	pix := make([]uint8, len(g.pix))
	copy(pix, g.pix)

	return &PixelGrid{rows: g.rows, cols: g.cols, pix: pix}
}
