// Package tour holds the mutable subject of the search, the Tour, together
// with the neighborhood moves that produce candidate tours from it.
//
// A Tour is an ordered, implicitly cyclic sequence of geo.Waypoint values with
// its total distance cached at construction. Tours are values: the backing
// slice is never exposed or shared, and every move (Shift, Swap) returns a new,
// independently owned Tour. Callers can keep a retained tour while evaluating
// a candidate without any aliasing between the two.
//
// Moves:
//
//   - Shift(t)      : rotate right by one: [t[n-1], t[0], …, t[n-2]].
//   - Swap(t, i, j) : exchange positions i and j (distinct, in range).
//
// Picking the swap indices is left to the caller (see package search).
//
// Complexity: every move and constructor is O(n) time and O(n) space; the
// total is recomputed from scratch for every new Tour.
package tour
