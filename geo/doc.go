// Package geo is the distance model of wayfarer: labelled 2-D waypoints and
// the metrics used to measure a closed tour over them.
//
// 🚀 What lives here?
//
//	• Waypoint  : immutable {Label, X, Y}; X is longitude, Y is latitude
//	• Metric    : pluggable point-to-point distance (Euclidean, Haversine)
//	• EdgeLengths / TotalDistance: cyclic tour accounting
//
// Edge ordering:
//
//	For a sequence [w0 w1 … w(n-1)] EdgeLengths returns
//
//	  [d(w1,w0), d(w2,w1), …, d(w(n-1),w(n-2)), d(w0,w(n-1))]
//
//	so entry i is the cost of leaving stop i for stop i+1, and the wrap-around
//	edge comes last. Reports line costs up with stops using this order.
//
// Stability:
//
//	TotalDistance is rounded to 1e-9 absolute precision so that the same set of
//	edges summed in a different order (a rotated tour) compares equal.
//
// Complexity:
//
//   - Distance:      O(1)
//   - EdgeLengths:   O(n) time, O(n) space
//   - TotalDistance: O(n) time, O(n) space
package geo
