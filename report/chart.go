package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/katalvlaran/wayfarer/geo"
	"github.com/katalvlaran/wayfarer/tour"
)

// ChartOptions configures the HTML route chart.
type ChartOptions struct {
	Title string
	// AssetsHost overrides the echarts JS location; empty uses the go-echarts default CDN.
	AssetsHost string
}

// WriteHTML renders t as an interactive page: the closed route as a line over
// value axes and the stops as a labelled scatter overlay.
func WriteHTML(w io.Writer, t tour.Tour, o ChartOptions) error {
	var n = t.Len()
	if n == 0 {
		return ErrEmptyTour
	}
	if o.Title == "" {
		o.Title = "Optimised route"
	}
	wps := t.Waypoints()

	route := make([]opts.LineData, 0, n+1)
	stops := make([]opts.ScatterData, 0, n)
	for i, wp := range wps {
		route = append(route, opts.LineData{Name: wp.Label, Value: []interface{}{wp.X, wp.Y}})
		stops = append(stops, opts.ScatterData{
			Name:  fmt.Sprintf("%d) %s", i+1, wp.Label),
			Value: []interface{}{wp.X, wp.Y},
		})
	}
	route = append(route, route[0])

	box := geo.Bounds(wps)
	padX, padY := pad(box.Width()), pad(box.Height())

	initOpts := opts.Initialization{PageTitle: o.Title, Width: "1200px", Height: "720px"}
	if o.AssetsHost != "" {
		initOpts.AssetsHost = o.AssetsHost
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(initOpts),
		charts.WithTitleOpts(opts.Title{
			Title:    o.Title,
			Subtitle: fmt.Sprintf("stops=%d distance=%.2f metric=%s", n, t.Distance(), t.Metric().Name()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value", Name: "Longitude", NameLocation: "middle", NameGap: 25,
			Min: box.MinX - padX, Max: box.MaxX + padX,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value", Name: "Latitude", NameLocation: "middle", NameGap: 30,
			Min: box.MinY - padY, Max: box.MaxY + padY,
		}),
	)
	line.AddSeries("route", route)

	scatter := charts.NewScatter()
	scatter.AddSeries("stops", stops,
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}),
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	line.Overlap(scatter)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("report: render html: %w", err)
	}
	return nil
}

// pad returns 5% of span, or 1 for a degenerate span.
func pad(span float64) float64 {
	if span == 0 {
		return 1
	}
	return span * 0.05
}
