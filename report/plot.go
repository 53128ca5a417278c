package report

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/katalvlaran/wayfarer/tour"
)

// ErrEmptyTour is returned by the plotters for a tour with no stops.
var ErrEmptyTour = errors.New("report: nothing to plot")

var (
	routeColor = color.RGBA{R: 135, G: 206, B: 250, A: 255} // light sky blue
	stopColor  = color.RGBA{R: 75, G: 0, B: 130, A: 255}    // indigo
	firstColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}    // dark blue
	lastColor  = color.RGBA{R: 148, G: 0, B: 211, A: 255}   // dark violet
)

// PlotOptions sizes and titles a rendered route.
type PlotOptions struct {
	Title  string
	Width  vg.Length
	Height vg.Length
}

// DefaultPlotOptions returns a 13x7 inch canvas titled with the tour distance.
func DefaultPlotOptions(t tour.Tour) PlotOptions {
	return PlotOptions{
		Title:  fmt.Sprintf("Optimised route, total distance %.2f", t.Distance()),
		Width:  13 * vg.Inch,
		Height: 7 * vg.Inch,
	}
}

// WritePNG draws t as a closed polyline over longitude/latitude axes with
// numbered stop labels. The first stop is drawn dark blue, the last dark violet.
func WritePNG(w io.Writer, t tour.Tour, o PlotOptions) error {
	p, err := routePlot(t, o.Title)
	if err != nil {
		return err
	}
	if o.Width <= 0 || o.Height <= 0 {
		d := DefaultPlotOptions(t)
		o.Width, o.Height = d.Width, d.Height
	}

	wt, err := p.WriterTo(o.Width, o.Height, "png")
	if err != nil {
		return fmt.Errorf("report: create png writer: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: write png: %w", err)
	}
	return nil
}

func routePlot(t tour.Tour, title string) (*plot.Plot, error) {
	var n = t.Len()
	if n == 0 {
		return nil, ErrEmptyTour
	}
	wps := t.Waypoints()

	route := make(plotter.XYs, 0, n+1)
	labels := make([]string, 0, n)
	for i, wp := range wps {
		route = append(route, plotter.XY{X: wp.X, Y: wp.Y})
		labels = append(labels, strconv.Itoa(i+1)+") "+wp.Label)
	}
	route = append(route, route[0])

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Longitude"
	p.Y.Label.Text = "Latitude"

	line, err := plotter.NewLine(route)
	if err != nil {
		return nil, fmt.Errorf("report: route line: %w", err)
	}
	line.LineStyle.Color = routeColor
	line.LineStyle.Width = vg.Points(1.5)

	stops, err := plotter.NewScatter(route[:n])
	if err != nil {
		return nil, fmt.Errorf("report: stops: %w", err)
	}
	stops.GlyphStyle.Color = stopColor
	stops.GlyphStyle.Radius = vg.Points(2.5)
	stops.GlyphStyle.Shape = draw.CircleGlyph{}
	stops.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		gs := stops.GlyphStyle
		switch i {
		case 0:
			gs.Color = firstColor
			gs.Radius = vg.Points(4)
		case n - 1:
			gs.Color = lastColor
			gs.Radius = vg.Points(4)
		}
		return gs
	}

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: route[:n], Labels: labels})
	if err != nil {
		return nil, fmt.Errorf("report: labels: %w", err)
	}
	for i := range names.TextStyle {
		names.TextStyle[i].Color = stopColor
		names.TextStyle[i].Font.Size = vg.Points(8)
	}
	names.TextStyle[0].Color = firstColor
	names.TextStyle[n-1].Color = lastColor

	p.Add(line, stops, names)
	p.Legend.Add("route", line)
	p.Legend.Top = true

	return p, nil
}
