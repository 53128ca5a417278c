package cities

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/wayfarer/geo"
)

const fieldsPerRow = 4

// Read parses every row of r. Blank lines are skipped.
func Read(r io.Reader) ([]City, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1 // counted below so the error carries our sentinel
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	var out []City
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, &ParseError{Line: pe.Line, Err: pe.Err}
			}
			return nil, fmt.Errorf("cities: read: %w", err)
		}
		line, _ := cr.FieldPos(0)

		c, err := parseRow(rec, line)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}

	if len(out) == 0 {
		return nil, ErrNoCities
	}
	return out, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) ([]City, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cities: open data file: %w", err)
	}
	defer f.Close()

	cs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cs, nil
}

func parseRow(rec []string, line int) (City, error) {
	if len(rec) != fieldsPerRow {
		return City{}, &ParseError{Line: line, Err: fmt.Errorf("%w (got %d)", ErrFieldCount, len(rec))}
	}

	var (
		c   = City{State: strings.TrimSpace(rec[0]), Name: strings.TrimSpace(rec[1])}
		err error
	)
	if c.Name == "" {
		return City{}, &ParseError{Line: line, Field: "city", Err: ErrEmptyName}
	}
	if c.Latitude, err = parseCoordinate(rec[2], 90); err != nil {
		return City{}, &ParseError{Line: line, Field: "latitude", Err: err}
	}
	if c.Longitude, err = parseCoordinate(rec[3], 180); err != nil {
		return City{}, &ParseError{Line: line, Field: "longitude", Err: err}
	}
	return c, nil
}

func parseCoordinate(s string, limit float64) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q", ErrBadCoordinate, s)
	}
	if math.Abs(v) > limit {
		return 0, fmt.Errorf("%w: %v", ErrCoordinateRange, v)
	}
	return v, nil
}

// Waypoints converts cs into waypoints in the same order, X = longitude and
// Y = latitude, labelled according to style.
func Waypoints(cs []City, style LabelStyle) []geo.Waypoint {
	out := make([]geo.Waypoint, len(cs))
	for i, c := range cs {
		out[i] = geo.Waypoint{
			Label: c.Label(style),
			X:     c.Longitude,
			Y:     c.Latitude,
		}
	}
	return out
}
