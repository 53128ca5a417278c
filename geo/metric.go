package geo

import (
	"math"
	"strings"
)

const (
	// MetricEuclidean names the planar metric over raw (lon, lat) degrees.
	MetricEuclidean = "euclidean"
	// MetricHaversine names the great-circle metric in kilometres.
	MetricHaversine = "haversine"

	earthRadiusKm = 6371.0
)

// Euclidean is the planar distance sqrt((x2-x1)^2 + (y2-y1)^2).
// It is the default metric and treats degrees as plane coordinates.
type Euclidean struct{}

// Distance implements Metric.
func (Euclidean) Distance(a, b Waypoint) float64 {
	return Distance(a, b)
}

// Name implements Metric.
func (Euclidean) Name() string { return MetricEuclidean }

// Haversine is the great-circle distance in kilometres on a spherical Earth,
// reading Y as latitude and X as longitude.
type Haversine struct{}

// Distance implements Metric.
func (Haversine) Distance(a, b Waypoint) float64 {
	var (
		lat1 = a.Y * math.Pi / 180
		lat2 = b.Y * math.Pi / 180
		dLat = (b.Y - a.Y) * math.Pi / 180
		dLon = (b.X - a.X) * math.Pi / 180
	)
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h > 1 {
		h = 1
	}

	return 2 * earthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// Name implements Metric.
func (Haversine) Name() string { return MetricHaversine }

// MetricByName resolves a metric from its configuration name.
// The empty string selects Euclidean.
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", MetricEuclidean:
		return Euclidean{}, nil
	case MetricHaversine:
		return Haversine{}, nil
	default:
		return nil, ErrUnknownMetric
	}
}
