package tour

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfarer/geo"
)

// Tour is a closed visiting order over a fixed set of waypoints.
// The zero Tour is empty, measured with the Euclidean metric, and has
// distance 0.
type Tour struct {
	stops    []geo.Waypoint
	metric   geo.Metric
	distance float64
}

// New builds a Tour visiting wps in the given order, measured with m.
// The input slice is copied. A nil metric selects geo.Euclidean.
//
// Complexity: O(n).
func New(m geo.Metric, wps []geo.Waypoint) Tour {
	if m == nil {
		m = geo.Euclidean{}
	}
	stops := make([]geo.Waypoint, len(wps))
	copy(stops, wps)

	return build(m, stops)
}

// build takes ownership of stops and computes the cached total.
func build(m geo.Metric, stops []geo.Waypoint) Tour {
	return Tour{
		stops:    stops,
		metric:   m,
		distance: geo.TotalDistance(m, stops),
	}
}

// Len returns the number of stops.
func (t Tour) Len() int { return len(t.stops) }

// At returns the stop at position i.
func (t Tour) At(i int) (geo.Waypoint, error) {
	if i < 0 || i >= len(t.stops) {
		return geo.Waypoint{}, ErrIndexOutOfRange
	}
	return t.stops[i], nil
}

// Distance returns the cached total distance of the closed tour.
func (t Tour) Distance() float64 { return t.distance }

// Metric returns the metric the tour is measured with.
func (t Tour) Metric() geo.Metric {
	if t.metric == nil {
		return geo.Euclidean{}
	}
	return t.metric
}

// Waypoints returns a copy of the visiting order.
func (t Tour) Waypoints() []geo.Waypoint {
	out := make([]geo.Waypoint, len(t.stops))
	copy(out, t.stops)
	return out
}

// Labels returns the stop labels in visiting order.
func (t Tour) Labels() []string {
	out := make([]string, len(t.stops))
	for i, w := range t.stops {
		out[i] = w.Label
	}
	return out
}

// EdgeLengths returns the cost of leaving each stop for the next one,
// wrap-around edge last (see geo.EdgeLengths).
func (t Tour) EdgeLengths() []float64 {
	return geo.EdgeLengths(t.Metric(), t.stops)
}

// String renders the tour as "[a b c | a] 4.000".
func (t Tour) String() string {
	if len(t.stops) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	for i, w := range t.stops {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(w.Label)
	}
	sb.WriteString(" | ")
	sb.WriteString(t.stops[0].Label)
	sb.WriteByte(']')
	fmt.Fprintf(&sb, " %.3f", t.distance)

	return sb.String()
}

// SamePermutation reports whether a and b visit exactly the same multiset of
// waypoints (same length, each waypoint the same number of times).
//
// Complexity: O(n) time, O(n) space.
func SamePermutation(a, b Tour) bool {
	if len(a.stops) != len(b.stops) {
		return false
	}
	seen := make(map[geo.Waypoint]int, len(a.stops))
	for _, w := range a.stops {
		seen[w]++
	}
	for _, w := range b.stops {
		if seen[w] == 0 {
			return false
		}
		seen[w]--
	}
	return true
}

// EqualModuloRotation reports whether b is a cyclic rotation of a in the same
// direction.
//
// Complexity: O(n²) worst case when a waypoint value repeats, O(n) otherwise.
func EqualModuloRotation(a, b Tour) bool {
	var n = len(a.stops)
	if n != len(b.stops) {
		return false
	}
	if n == 0 {
		return true
	}

	var p, i int
	for p = 0; p < n; p++ {
		if b.stops[p] != a.stops[0] {
			continue
		}
		for i = 0; i < n; i++ {
			if a.stops[i] != b.stops[(p+i)%n] {
				break
			}
		}
		if i == n {
			return true
		}
	}
	return false
}
