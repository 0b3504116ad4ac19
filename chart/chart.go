// Package chart renders the pv curve to a raster line chart.
package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gostonefire/mygrid-pv/export"
)

// Options controls the chart frame and axis ranges.
type Options struct {
	Title  string
	XMax   float64
	YMax   float64
	Width  vg.Length
	Height vg.Length
}

// HoursOptions frames a smoothed or stretched curve in hour units.
func HoursOptions() Options {
	return Options{
		Title:  "Sun and PVPower",
		XMax:   24,
		YMax:   50,
		Width:  32 * vg.Centimeter,
		Height: 12 * vg.Centimeter,
	}
}

// NormalizedOptions frames a unit-interval curve with a little headroom on
// both axes.
func NormalizedOptions() Options {
	o := HoursOptions()
	o.XMax = 1.1
	o.YMax = 1.5
	return o
}

// Render draws the series as a red line on a gridded frame and saves it as
// PNG to path.
func Render(points []export.CurvePoint, opts Options, path string) error {
	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Min, p.X.Max = 0, opts.XMax
	p.Y.Min, p.Y.Max = 0, opts.YMax
	p.Add(plotter.NewGrid())

	xys := make(plotter.XYs, len(points))
	for i, pt := range points {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	line, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("build line series: %w", err)
	}
	line.Color = color.RGBA{R: 255, A: 255}
	p.Add(line)
	p.Legend.Add("pvPower", line)
	p.Legend.Top = true

	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("save chart: %w", err)
	}
	return nil
}
