package views

import (
	"fmt"
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/yoavsyo/optic-classifier/internal/classify"
)

// NewExampleView lays out the composite classification example: the source
// image, the mask rendered through its phase angle, and the intensity
// pattern on the output screen, captioned with the predicted label.
func NewExampleView(original, mask, output image.Image, label classify.Label) fyne.CanvasObject {
	panels := container.NewGridWithColumns(3,
		NewImagePanel(original, "Original Image"),
		NewImagePanel(mask, "Optimal Mask"),
		NewImagePanel(output, "Output Image"),
	)

	caption := widget.NewLabelWithStyle(
		fmt.Sprintf("Predicted digit: %d", int(label)),
		fyne.TextAlignCenter,
		fyne.TextStyle{Bold: true},
	)

	return container.NewBorder(nil, caption, nil, nil, panels)
}
