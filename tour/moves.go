package tour

import "github.com/katalvlaran/wayfarer/geo"

// Shift rotates t right by one position: the last stop becomes first and
// every other stop advances by one. Deterministic; tours with fewer than two
// stops come back unchanged (as a fresh copy).
//
// Complexity: O(n).
func Shift(t Tour) Tour {
	var n = len(t.stops)
	stops := make([]geo.Waypoint, n)
	if n > 0 {
		stops[0] = t.stops[n-1]
		copy(stops[1:], t.stops[:n-1])
	}

	return build(t.Metric(), stops)
}

// Swap returns a copy of t with the stops at positions i and j exchanged.
// All other positions are untouched.
//
// Errors:
//   - ErrIndexOutOfRange if i or j is outside [0, n-1].
//   - ErrSameIndex if i == j.
//
// Complexity: O(n).
func Swap(t Tour, i, j int) (Tour, error) {
	var n = len(t.stops)
	if i < 0 || i >= n || j < 0 || j >= n {
		return Tour{}, ErrIndexOutOfRange
	}
	if i == j {
		return Tour{}, ErrSameIndex
	}

	stops := make([]geo.Waypoint, n)
	copy(stops, t.stops)
	stops[i], stops[j] = stops[j], stops[i]

	return build(t.Metric(), stops), nil
}
