// Package classify assigns a discrete label to an intensity pattern by
// comparing the optical energy landing in each spatial quadrant.
package classify

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
)

// Label identifies the quadrant carrying the most energy: 0 upper-left,
// 1 upper-right, 2 lower-left, 3 lower-right.
type Label int

const (
	UpperLeft Label = iota
	UpperRight
	LowerLeft
	LowerRight
)

func (l Label) String() string {
	switch l {
	case UpperLeft:
		return "upper-left"
	case UpperRight:
		return "upper-right"
	case LowerLeft:
		return "lower-left"
	case LowerRight:
		return "lower-right"
	}
	return fmt.Sprintf("label(%d)", int(l))
}

// QuadrantEnergies sums intensity per quadrant, ordered upper-left,
// upper-right, lower-left, lower-right. The array splits at the
// floor-division midpoint of each axis, so with odd dimensions the lower and
// right quadrants are one row or column larger.
func QuadrantEnergies(intensity *mat.Dense) ([4]float64, error) {
	var energies [4]float64

	rows, cols := intensity.Dims()
	if rows == 0 || cols == 0 {
		return energies, fmt.Errorf("%w: %dx%d intensity array", field.ErrDegenerateInput, rows, cols)
	}

	midRow := rows / 2
	midCol := cols / 2

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			q := 0
			if y >= midRow {
				q = 2
			}
			if x >= midCol {
				q++
			}
			energies[q] += intensity.At(y, x)
		}
	}

	return energies, nil
}

// ByQuadrant labels an intensity pattern by its dominant quadrant. The
// checks run in fixed priority order — upper-left, upper-right, lower-left,
// then lower-right as the default — so an exact tie always resolves to the
// earliest quadrant matching the maximum. A tie between upper-left and
// lower-right yields 0, not 3.
func ByQuadrant(intensity *mat.Dense) (Label, error) {
	energies, err := QuadrantEnergies(intensity)
	if err != nil {
		return 0, err
	}

	maxEnergy := energies[0]
	for _, e := range energies[1:] {
		if e > maxEnergy {
			maxEnergy = e
		}
	}

	switch {
	case energies[0] == maxEnergy:
		return UpperLeft, nil
	case energies[1] == maxEnergy:
		return UpperRight, nil
	case energies[2] == maxEnergy:
		return LowerLeft, nil
	default:
		return LowerRight, nil
	}
}
