// Package wayfarer finds short closed tours through a set of waypoints
// with a seeded, budgeted hill-climbing search.
//
// 🚀 What is wayfarer?
//
//	A small toolkit plus a CLI that brings together:
//		• Geometry: waypoints, Euclidean & great-circle metrics, per-leg costs
//		• Tours: value-semantic closed routes with cached total distance
//		• Search: shift + random swap hill climbing, reproducible by seed
//		• Input: tab-separated city lists (state, city, latitude, longitude)
//		• Output: console report, PNG plot, interactive HTML chart
//		• History: every run recorded in SQLite, best run per data source
//
// Everything is organized under these packages:
//
//	geo/      - Waypoint, Metric, EdgeLengths, TotalDistance, Bounds
//	tour/     - Tour value type, Shift and Swap moves
//	search/   - Engine, Config, Result, improvement observer
//	cities/   - city file reader and label styles
//	report/   - text, PNG (gonum/plot) and HTML (go-echarts) renderers
//	history/  - SQLite run store with embedded migrations
//	config/   - YAML run configuration
//	logging/  - line-oriented slog handler
//	cmd/wayfarer - the command-line front end
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    D───C
//
//	the tour [A B C D] around a unit square costs 4; any swap only makes it worse.
//
//	go install github.com/katalvlaran/wayfarer/cmd/wayfarer@latest
package wayfarer
