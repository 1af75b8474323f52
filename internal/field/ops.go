package field

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ReshapeMask arranges a flat mask of size*size unit-magnitude elements into
// a size x size complex grid. Mask generators emit flat slices; callers own
// the reshape.
func ReshapeMask(flat []complex128, size int) (*mat.CDense, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: mask size %d", ErrDegenerateInput, size)
	}
	if len(flat) != size*size {
		return nil, fmt.Errorf("%w: %d elements for %dx%d mask", ErrShapeMismatch, len(flat), size, size)
	}

	data := make([]complex128, len(flat))
	copy(data, flat)
	return mat.NewCDense(size, size, data), nil
}

// ApplyMask multiplies a complex field element-wise by a phase mask. This is
// the simulated modulator interaction: the mask is an external multiplicand
// supplied by the caller, never generated here.
func ApplyMask(f, mask *mat.CDense) (*mat.CDense, error) {
	fr, fc := f.Dims()
	mr, mc := mask.Dims()
	if fr != mr || fc != mc {
		return nil, fmt.Errorf("%w: field %dx%d, mask %dx%d", ErrShapeMismatch, fr, fc, mr, mc)
	}

	out := mat.NewCDense(fr, fc, nil)
	for y := 0; y < fr; y++ {
		for x := 0; x < fc; x++ {
			out.Set(y, x, f.At(y, x)*mask.At(y, x))
		}
	}

	return out, nil
}

// Magnitude returns |z| per element.
func Magnitude(f *mat.CDense) *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out.Set(y, x, cmplx.Abs(f.At(y, x)))
		}
	}

	return out
}

// Intensity returns the optical intensity |z|^2 per element. The result is
// non-negative everywhere and shares the field's shape.
func Intensity(f *mat.CDense) *mat.Dense {
	rows, cols := f.Dims()
	out := mat.NewDense(rows, cols, nil)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			z := f.At(y, x)
			out.Set(y, x, real(z)*real(z)+imag(z)*imag(z))
		}
	}

	return out
}
