// Package imaging bridges pixel grids to image files and displayable
// images. File loading goes through OpenCV; display conversions are pure.
package imaging

import (
	"fmt"

	"gocv.io/x/gocv"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// LoadGrayscale reads an image file as 8-bit grayscale and copies it into a
// pixel grid.
func LoadGrayscale(path string) (*field.PixelGrid, error) {
	m := gocv.IMRead(path, gocv.IMReadGrayScale)
	if m.Empty() {
		return nil, fmt.Errorf("failed to read image %q", path)
	}
	defer m.Close()

	return matToGrid(&m)
}

func matToGrid(m *gocv.Mat) (*field.PixelGrid, error) {
	rows := m.Rows()
	cols := m.Cols()

	grid, err := field.NewPixelGrid(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("image %dx%d: %w", rows, cols, err)
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			grid.Set(y, x, m.GetUCharAt(y, x))
		}
	}

	return grid, nil
}
