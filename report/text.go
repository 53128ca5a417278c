package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/wayfarer/cities"
	"github.com/katalvlaran/wayfarer/search"
	"github.com/katalvlaran/wayfarer/tour"
)

// WriteCities prints one row per city with coordinates rounded to two decimals.
func WriteCities(w io.Writer, cs []cities.City) error {
	var sb strings.Builder
	sb.WriteString("State City Latitude Longitude\n")
	for _, c := range cs {
		fmt.Fprintf(&sb, "%s %s %.2f %.2f\n", c.State, c.Name, c.Latitude, c.Longitude)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteRoute prints the closed route, each stop followed by the cost of the
// leg to the next stop.
func WriteRoute(w io.Writer, t tour.Tour) error {
	if t.Len() == 0 {
		_, err := io.WriteString(w, "(empty route)\n")
		return err
	}

	var (
		sb     strings.Builder
		labels = t.Labels()
		legs   = t.EdgeLengths()
	)
	for i, label := range labels {
		fmt.Fprintf(&sb, "%d) %s (%.2f) -> ", i+1, label, legs[i])
	}
	fmt.Fprintf(&sb, "1) %s\n", labels[0])

	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteSummary prints distances and counters of a finished run.
func WriteSummary(w io.Writer, res search.Result) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Stops:             %d\n", res.Tour.Len())
	fmt.Fprintf(&sb, "Metric:            %s\n", res.Tour.Metric().Name())
	fmt.Fprintf(&sb, "Initial distance:  %.2f\n", res.InitialDistance)
	fmt.Fprintf(&sb, "Final distance:    %.2f\n", res.Distance)
	fmt.Fprintf(&sb, "Improvement:       %.2f (%.1f%%)\n", res.Improvement(), 100*res.ImprovementRatio())
	fmt.Fprintf(&sb, "Iterations:        %d\n", res.Iterations)
	fmt.Fprintf(&sb, "Accepted moves:    %d\n", res.Accepted)
	fmt.Fprintf(&sb, "Elapsed:           %s\n", res.Duration.Round(time.Microsecond))
	fmt.Fprintf(&sb, "Stopped:           %s\n", res.Stopped)

	_, err := io.WriteString(w, sb.String())
	return err
}
