package cities_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/cities"
	"github.com/katalvlaran/wayfarer/geo"
)

const sample = "Alabama\tMontgomery\t32.361538\t-86.279118\n" +
	"Alaska\tJuneau\t58.301935\t-134.419740\n" +
	"\n" +
	"Arizona\tPhoenix\t33.448457\t-112.073844\n"

func TestRead_ParsesRows(t *testing.T) {
	cs, err := cities.Read(strings.NewReader(sample))
	require.NoError(t, err)

	want := []cities.City{
		{State: "Alabama", Name: "Montgomery", Latitude: 32.361538, Longitude: -86.279118},
		{State: "Alaska", Name: "Juneau", Latitude: 58.301935, Longitude: -134.419740},
		{State: "Arizona", Name: "Phoenix", Latitude: 33.448457, Longitude: -112.073844},
	}
	if diff := cmp.Diff(want, cs); diff != "" {
		t.Fatalf("cities mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		field string
		want  error
	}{
		{"too few fields", "Alabama\tMontgomery\t32.3\n", 1, "", cities.ErrFieldCount},
		{"too many fields", "A\tB\t1\t2\t3\n", 1, "", cities.ErrFieldCount},
		{"bad latitude", sample + "Ohio\tColumbus\tnorth\t-82.9\n", 5, "latitude", cities.ErrBadCoordinate},
		{"bad longitude", "Ohio\tColumbus\t39.9\t\n", 1, "longitude", cities.ErrBadCoordinate},
		{"nan", "Ohio\tColumbus\tNaN\t-82.9\n", 1, "latitude", cities.ErrBadCoordinate},
		{"latitude range", "Ohio\tColumbus\t91\t-82.9\n", 1, "latitude", cities.ErrCoordinateRange},
		{"longitude range", "Ohio\tColumbus\t39.9\t-182.9\n", 1, "longitude", cities.ErrCoordinateRange},
		{"empty name", "Ohio\t \t39.9\t-82.9\n", 1, "city", cities.ErrEmptyName},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := cities.Read(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.want)

			var pe *cities.ParseError
			require.True(t, errors.As(err, &pe))
			require.Equal(t, tc.line, pe.Line)
			require.Equal(t, tc.field, pe.Field)
		})
	}
}

func TestRead_Empty(t *testing.T) {
	_, err := cities.Read(strings.NewReader("\n\n"))
	require.ErrorIs(t, err, cities.ErrNoCities)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "city-data.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cs, err := cities.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, cs, 3)

	_, err = cities.ReadFile(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWaypoints_LongitudeIsX(t *testing.T) {
	cs := []cities.City{{State: "Alaska", Name: "Juneau", Latitude: 58.3, Longitude: -134.4}}

	got := cities.Waypoints(cs, cities.LabelCity)
	require.Equal(t, []geo.Waypoint{{Label: "Juneau", X: -134.4, Y: 58.3}}, got)
	require.Equal(t, -134.4, got[0].Lon())
	require.Equal(t, 58.3, got[0].Lat())

	require.Equal(t, "Alaska", cities.Waypoints(cs, cities.LabelState)[0].Label)
	require.Equal(t, "Alaska/Juneau", cities.Waypoints(cs, cities.LabelStateCity)[0].Label)
}

func TestParseLabelStyle(t *testing.T) {
	for in, want := range map[string]cities.LabelStyle{
		"":           cities.LabelCity,
		"city":       cities.LabelCity,
		"STATE":      cities.LabelState,
		"state-city": cities.LabelStateCity,
	} {
		got, err := cities.ParseLabelStyle(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := cities.ParseLabelStyle("zip")
	require.ErrorIs(t, err, cities.ErrUnknownLabelStyle)
}

func TestReadFile_Sample(t *testing.T) {
	cs, err := cities.ReadFile(filepath.Join("..", "testdata", "city-data.txt"))
	require.NoError(t, err)
	require.Len(t, cs, 20)
	require.Equal(t, "Little Rock", cs[3].Name)
}
