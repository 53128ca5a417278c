package geo

import "errors"

// ErrUnknownMetric is returned by MetricByName for an unrecognized name.
var ErrUnknownMetric = errors.New("geo: unknown metric")

// Waypoint is a labelled point. X carries longitude and Y carries latitude;
// the label is used for reporting only and never takes part in geometry.
type Waypoint struct {
	Label string
	X     float64
	Y     float64
}

// Lon returns the longitude of w (its X coordinate).
func (w Waypoint) Lon() float64 { return w.X }

// Lat returns the latitude of w (its Y coordinate).
func (w Waypoint) Lat() float64 { return w.Y }

// Metric measures the distance between two waypoints.
// Implementations must be symmetric and return 0 for identical points.
type Metric interface {
	Distance(a, b Waypoint) float64
	Name() string
}

// Box is an axis-aligned bounding box over waypoint coordinates.
type Box struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns MaxX-MinX.
func (b Box) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Box) Height() float64 { return b.MaxY - b.MinY }
