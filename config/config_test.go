package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/cities"
	"github.com/katalvlaran/wayfarer/config"
	"github.com/katalvlaran/wayfarer/geo"
	"github.com/katalvlaran/wayfarer/logging"
	"github.com/katalvlaran/wayfarer/search"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, "city-data.txt", cfg.Data)
	require.Equal(t, search.DefaultConfig(), cfg.SearchConfig())
	require.Equal(t, cities.LabelCity, cfg.LabelStyle())
	require.Equal(t, geo.MetricEuclidean, cfg.DistanceMetric().Name())
}

func TestLoad_FullFile(t *testing.T) {
	path := writeFile(t, "run.yaml", `
data: data/us-capitals.txt
label: state-city
metric: haversine
iterations: 25000
seed: 42
timeout: 30s
output:
  png: out/route.png
  html: out/route.html
history: runs.db
log_level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Config{
		Data:       "data/us-capitals.txt",
		Label:      "state-city",
		Metric:     "haversine",
		Iterations: 25000,
		Seed:       42,
		Timeout:    30 * time.Second,
		Output:     config.Output{PNG: "out/route.png", HTML: "out/route.html"},
		History:    "runs.db",
		LogLevel:   "debug",
	}, cfg)
	require.Equal(t, search.Config{Iterations: 25000, Seed: 42}, cfg.SearchConfig())
	require.Equal(t, geo.MetricHaversine, cfg.DistanceMetric().Name())
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "run.yml", "seed: 7\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	want := config.Default()
	want.Seed = 7
	require.Equal(t, want, cfg)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownKey(t *testing.T) {
	_, err := config.Parse([]byte("iteratons: 5\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "iteratons")
}

func TestLoad_Extension(t *testing.T) {
	path := writeFile(t, "run.json", "{}")
	_, err := config.Load(path)
	require.ErrorIs(t, err, config.ErrExtension)
}

func TestLoad_Missing(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_TooLarge(t *testing.T) {
	path := writeFile(t, "big.yaml", "# "+strings.Repeat("x", 1<<20)+"\n")
	_, err := config.Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "too large")
}

func TestValidate_CollectsProblems(t *testing.T) {
	cfg := config.Config{
		Data:       " ",
		Label:      "zip",
		Metric:     "manhattan",
		Iterations: -1,
		Timeout:    -time.Second,
		LogLevel:   "loud",
	}
	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	for _, want := range []string{"data path", "label style", "manhattan", "iterations", "timeout", "loud"} {
		require.Contains(t, err.Error(), want)
	}
}

func TestValidate_LogLevelsMatchLogging(t *testing.T) {
	for _, level := range []string{"", "debug", "INFO", "warn", "warning", "error", "verbose"} {
		cfg := config.Default()
		cfg.LogLevel = level
		_, parseErr := logging.ParseLevel(level)
		if parseErr != nil {
			require.ErrorIs(t, cfg.Validate(), config.ErrInvalid, level)
			continue
		}
		require.NoError(t, cfg.Validate(), level)
	}
}

func TestLoad_SampleConfig(t *testing.T) {
	cfg, err := config.Load(filepath.Join("..", "testdata", "run.yaml"))
	require.NoError(t, err)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, cities.LabelStateCity, cfg.LabelStyle())
}
