package cities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoCities is returned when the input holds no data rows.
	ErrNoCities = errors.New("cities: no cities in input")

	// ErrFieldCount is returned for a row without exactly four fields.
	ErrFieldCount = errors.New("cities: expected 4 tab-separated fields")

	// ErrBadCoordinate is returned for a latitude or longitude that is not a finite number.
	ErrBadCoordinate = errors.New("cities: coordinate is not a finite number")

	// ErrCoordinateRange is returned for |latitude| > 90 or |longitude| > 180.
	ErrCoordinateRange = errors.New("cities: coordinate out of range")

	// ErrEmptyName is returned when the city field is blank.
	ErrEmptyName = errors.New("cities: empty city name")

	// ErrUnknownLabelStyle is returned by ParseLabelStyle.
	ErrUnknownLabelStyle = errors.New("cities: unknown label style")
)

// ParseError locates a malformed row.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Field string // offending field name, empty for row-level errors
	Err   error
}

func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Field, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// City is one parsed row of the input file.
type City struct {
	State     string
	Name      string
	Latitude  float64
	Longitude float64
}

// LabelStyle chooses how a City is labelled once converted to a waypoint.
type LabelStyle string

const (
	// LabelCity labels waypoints with the city name.
	LabelCity LabelStyle = "city"
	// LabelState labels waypoints with the state name.
	LabelState LabelStyle = "state"
	// LabelStateCity labels waypoints "State/City".
	LabelStateCity LabelStyle = "state-city"
)

// ParseLabelStyle resolves a label style from its name; "" selects LabelCity.
func ParseLabelStyle(s string) (LabelStyle, error) {
	switch LabelStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", LabelCity:
		return LabelCity, nil
	case LabelState:
		return LabelState, nil
	case LabelStateCity:
		return LabelStateCity, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownLabelStyle, s)
	}
}

// Label returns the city's label under style.
func (c City) Label(style LabelStyle) string {
	switch style {
	case LabelState:
		return c.State
	case LabelStateCity:
		return c.State + "/" + c.Name
	default:
		return c.Name
	}
}
