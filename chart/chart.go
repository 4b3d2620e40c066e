package chart

import (
	"errors"
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/prodmix/sensitivity"
)

// ErrEmptySeries is returned when there is nothing to plot.
var ErrEmptySeries = errors.New("chart: empty series")

// ErrNoOutputPath is returned when Config.OutPath is empty.
var ErrNoOutputPath = errors.New("chart: no output path")

// Config describes one chart: labels and the destination file. The output
// format follows the OutPath extension (".png" in the reference scenario).
type Config struct {
	// Title is the chart title, e.g. "Profit vs Pumps (Breakpoint marked)".
	Title string
	// XLabel labels the swept resource axis, e.g. "Pumps Available".
	XLabel string
	// OutPath is the file the chart is saved to.
	OutPath string
}

// Render draws the profit curve for series, marks result.Breakpoint with a
// dashed vertical line spanning the observed profit range, and saves the
// chart to cfg.OutPath.
func Render(series sensitivity.Series, result sensitivity.Result, cfg Config) error {
	if len(series) == 0 {
		return ErrEmptySeries
	}
	if cfg.OutPath == "" {
		return ErrNoOutputPath
	}

	p := plot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = cfg.XLabel
	p.Y.Label.Text = "Profit ($)"
	p.Add(plotter.NewGrid())

	// Profit curve.
	xys := make(plotter.XYs, len(series))
	for i, pt := range series {
		xys[i].X = pt.Value
		xys[i].Y = pt.Profit
	}
	curve, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("chart: profit line: %w", err)
	}
	curve.LineStyle.Width = vg.Points(1.5)
	curve.LineStyle.Color = color.RGBA{B: 196, A: 255}
	p.Add(curve)
	p.Legend.Add("profit", curve)

	// Breakpoint marker: a dashed vertical line at the reported value.
	// The reference chart draws it even when no deviation was found, in
	// which case it sits at the last tested value.
	marker, err := verticalMarker(result.Breakpoint, series)
	if err != nil {
		return fmt.Errorf("chart: breakpoint marker: %w", err)
	}
	p.Add(marker)
	p.Legend.Add(fmt.Sprintf("breakpoint ~%.0f", result.Breakpoint), marker)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, cfg.OutPath); err != nil {
		return fmt.Errorf("chart: save %s: %w", cfg.OutPath, err)
	}

	return nil
}

// verticalMarker builds a dashed vertical line at x spanning the profit
// range of the series.
func verticalMarker(x float64, series sensitivity.Series) (*plotter.Line, error) {
	ymin, ymax := series[0].Profit, series[0].Profit
	var pt sensitivity.Point
	for _, pt = range series[1:] {
		if pt.Profit < ymin {
			ymin = pt.Profit
		}
		if pt.Profit > ymax {
			ymax = pt.Profit
		}
	}
	if ymin == ymax {
		// Flat curve: give the marker a little height so it stays visible.
		ymin, ymax = ymin-1, ymax+1
	}

	line, err := plotter.NewLine(plotter.XYs{{X: x, Y: ymin}, {X: x, Y: ymax}})
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = vg.Points(1)
	line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	line.LineStyle.Color = color.RGBA{R: 196, A: 255}

	return line, nil
}
