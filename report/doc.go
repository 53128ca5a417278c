// Package report renders search input and output for people: a city table,
// the optimized route with per-leg costs, a run summary, a PNG route plot
// (gonum.org/v1/plot) and an interactive HTML route chart (go-echarts).
//
// The route line pairs every stop with the cost of leaving it for the next
// stop, taken from tour.Tour.EdgeLengths, and closes back on the first stop:
//
//	1) Montgomery (12.41) -> 2) Atlanta (3.08) -> … -> 1) Montgomery
package report
