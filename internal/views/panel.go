// Package views renders pipeline outputs with fyne: single grayscale
// panels, the three-panel classification example, and the score curve.
// Views consume core outputs unmodified and impose no contract on them.
package views

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	PanelWidth  = 320
	PanelHeight = 320
)

// NewImagePanel shows one grayscale image under a bold title. Nearest
// neighbor scaling keeps small grids crisp instead of smearing them.
func NewImagePanel(img image.Image, title string) fyne.CanvasObject {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.ScaleMode = canvas.ImageScalePixels
	c.SetMinSize(fyne.NewSize(PanelWidth, PanelHeight))

	label := widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	return container.NewBorder(label, nil, nil, nil, c)
}
