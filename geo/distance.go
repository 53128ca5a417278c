package geo

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// roundScale controls total-distance stabilization precision (1e-9).
const roundScale = 1e9

// Distance returns the Euclidean distance between p1 and p2.
// Symmetric by construction: Distance(a, b) == Distance(b, a).
//
// Complexity: O(1).
func Distance(p1, p2 Waypoint) float64 {
	var (
		dx = p2.X - p1.X
		dy = p2.Y - p1.Y
	)
	return math.Sqrt(dx*dx + dy*dy)
}

// EdgeLengths returns the n edge costs of the closed tour wps measured with m:
// entry i is the distance from stop i to stop i+1, the last entry closes the
// cycle back to stop 0. A nil metric selects Euclidean.
//
//	n == 0 → empty slice
//	n == 1 → [0]
//
// Complexity: O(n) time, O(n) space.
func EdgeLengths(m Metric, wps []Waypoint) []float64 {
	var n = len(wps)
	if n == 0 {
		return []float64{}
	}
	if m == nil {
		m = Euclidean{}
	}

	out := make([]float64, n)

	var i int
	for i = 1; i < n; i++ {
		out[i-1] = m.Distance(wps[i], wps[i-1])
	}
	out[n-1] = m.Distance(wps[0], wps[n-1])

	return out
}

// TotalDistance sums EdgeLengths(m, wps) and rounds the sum to 1e-9.
// The result can differ from a plain sum of the legs by up to 5e-10: the
// rounding makes every rotation of a tour cost exactly the same, and a move
// that saves less than the rounding step does not count as shorter.
// Tours with fewer than two stops have no edges and cost 0.
//
// Complexity: O(n).
func TotalDistance(m Metric, wps []Waypoint) float64 {
	if len(wps) <= 1 {
		return 0
	}

	return round1e9(floats.Sum(EdgeLengths(m, wps)))
}

// Bounds returns the bounding box of wps. The zero Box is returned for an
// empty slice.
func Bounds(wps []Waypoint) Box {
	if len(wps) == 0 {
		return Box{}
	}
	b := Box{MinX: wps[0].X, MaxX: wps[0].X, MinY: wps[0].Y, MaxY: wps[0].Y}
	for _, w := range wps[1:] {
		b.MinX = math.Min(b.MinX, w.X)
		b.MaxX = math.Max(b.MaxX, w.X)
		b.MinY = math.Min(b.MinY, w.Y)
		b.MaxY = math.Max(b.MaxY, w.Y)
	}

	return b
}

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
