package imaging

import (
	"image"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/yoavsyo/optic-classifier/internal/field"
	"github.com/yoavsyo/optic-classifier/internal/phase"
)

// GridImage converts a pixel grid to a grayscale image for display.
func GridImage(pixels *field.PixelGrid) *image.Gray {
	rows, cols := pixels.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Pix[y*img.Stride+x] = pixels.At(y, x)
		}
	}

	return img
}

// AngleImage renders a complex mask through its phase angle, mapping the
// principal-argument range (-pi, pi] linearly onto [0,255]. This is how a
// phase mask is made visible: magnitude is uniformly 1 and carries nothing.
func AngleImage(mask *mat.CDense) *image.Gray {
	angles := phase.ExtractAngle(mask)

	rows, cols := angles.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := (angles.At(y, x) + math.Pi) / (2 * math.Pi) * 255.0
			img.Pix[y*img.Stride+x] = uint8(math.Round(v))
		}
	}

	return img
}

// IntensityImage renders an intensity array normalized to the full
// grayscale range. A flat array renders black.
func IntensityImage(intensity *mat.Dense) *image.Gray {
	rows, cols := intensity.Dims()
	img := image.NewGray(image.Rect(0, 0, cols, rows))

	lo := math.Inf(1)
	hi := math.Inf(-1)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := intensity.At(y, x)
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if hi <= lo {
		return img
	}

	scale := 255.0 / (hi - lo)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			img.Pix[y*img.Stride+x] = uint8(math.Round((intensity.At(y, x) - lo) * scale))
		}
	}

	return img
}
