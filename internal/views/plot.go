package views

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	plotWidth  = 520
	plotHeight = 320
	plotMargin = 30
)

// NewScorePlot draws the best score per generation as a percentage line:
// score/size*100 against generation index.
func NewScorePlot(scores []int, size int) fyne.CanvasObject {
	title := widget.NewLabelWithStyle("Optimization Process", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	caption := widget.NewLabelWithStyle("Generation vs Best Score (%)", fyne.TextAlignCenter, fyne.TextStyle{Italic: true})

	background := canvas.NewRectangle(color.White)
	background.SetMinSize(fyne.NewSize(plotWidth, plotHeight))

	area := container.NewWithoutLayout()

	axisColor := color.Gray{Y: 60}
	xAxis := canvas.NewLine(axisColor)
	xAxis.Position1 = fyne.NewPos(plotMargin, plotHeight-plotMargin)
	xAxis.Position2 = fyne.NewPos(plotWidth-plotMargin, plotHeight-plotMargin)
	yAxis := canvas.NewLine(axisColor)
	yAxis.Position1 = fyne.NewPos(plotMargin, plotMargin)
	yAxis.Position2 = fyne.NewPos(plotMargin, plotHeight-plotMargin)
	area.Add(xAxis)
	area.Add(yAxis)

	for _, line := range scoreSegments(scores, size) {
		area.Add(line)
	}

	final := ""
	if len(scores) > 0 && size > 0 {
		final = fmt.Sprintf("final: %.1f%%", float64(scores[len(scores)-1])/float64(size)*100)
	}
	finalLabel := widget.NewLabel(final)

	plot := container.NewStack(background, area)
	return container.NewVBox(title, plot, caption, finalLabel)
}

// scoreSegments converts the score curve into line segments inside the plot
// area. The vertical axis is fixed at 0..100 percent.
func scoreSegments(scores []int, size int) []*canvas.Line {
	if len(scores) < 2 || size <= 0 {
		return nil
	}

	innerWidth := float32(plotWidth - 2*plotMargin)
	innerHeight := float32(plotHeight - 2*plotMargin)
	stepX := innerWidth / float32(len(scores)-1)

	lineColor := color.NRGBA{R: 30, G: 90, B: 200, A: 255}

	position := func(i int) fyne.Position {
		percent := float32(scores[i]) / float32(size) * 100
		x := plotMargin + stepX*float32(i)
		y := plotHeight - plotMargin - innerHeight*percent/100
		return fyne.NewPos(x, y)
	}

	segments := make([]*canvas.Line, 0, len(scores)-1)
	for i := 1; i < len(scores); i++ {
		line := canvas.NewLine(lineColor)
		line.StrokeWidth = 2
		line.Position1 = position(i - 1)
		line.Position2 = position(i)
		segments = append(segments, line)
	}

	return segments
}
