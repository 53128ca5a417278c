// Package config loads the YAML run configuration of the wayfarer CLI.
//
// Example file:
//
//	data: city-data.txt
//	label: city          # city | state | state-city
//	metric: euclidean    # euclidean | haversine
//	iterations: 10000
//	seed: 42
//	timeout: 30s
//	output:
//	  png: route.png
//	  html: route.html
//	history: runs.db
//	log_level: info
//
// Keys missing from the file keep the values of Default; unknown keys are
// rejected so that typos do not silently fall back to defaults.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wayfarer/cities"
	"github.com/katalvlaran/wayfarer/geo"
	"github.com/katalvlaran/wayfarer/logging"
	"github.com/katalvlaran/wayfarer/search"
)

// maxFileSize caps the size of a configuration file (1 MiB).
const maxFileSize = 1 << 20

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrExtension is returned for files not ending in .yaml or .yml.
	ErrExtension = errors.New("config: file must have .yaml or .yml extension")
)

// Output lists optional rendered artifacts; empty paths are skipped.
type Output struct {
	PNG  string `yaml:"png"`
	HTML string `yaml:"html"`
}

// Config is the full CLI configuration.
type Config struct {
	Data       string        `yaml:"data"`
	Label      string        `yaml:"label"`
	Metric     string        `yaml:"metric"`
	Iterations int           `yaml:"iterations"`
	Seed       int64         `yaml:"seed"`
	Timeout    time.Duration `yaml:"timeout"`
	Output     Output        `yaml:"output"`
	History    string        `yaml:"history"`
	LogLevel   string        `yaml:"log_level"`
}

// Default returns the reference run: city-data.txt, 10000 iterations,
// Euclidean metric, city labels, no outputs and no history.
func Default() Config {
	return Config{
		Data:       "city-data.txt",
		Label:      string(cities.LabelCity),
		Metric:     geo.MetricEuclidean,
		Iterations: search.DefaultIterations,
		Seed:       0,
		LogLevel:   "info",
	}
}

// Load reads the YAML file at path on top of Default and validates the result.
func Load(path string) (Config, error) {
	clean := filepath.Clean(path)
	switch filepath.Ext(clean) {
	case ".yaml", ".yml":
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrExtension, path)
	}

	info, err := os.Stat(clean)
	if err != nil {
		return Config{}, fmt.Errorf("config: stat %s: %w", clean, err)
	}
	if info.Size() > maxFileSize {
		return Config{}, fmt.Errorf("config: %s too large: %d bytes (max %d)", clean, info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(clean)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", clean, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", clean, err)
	}
	return cfg, nil
}

// Parse decodes YAML bytes on top of Default and validates the result.
// An empty document yields Default.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.Data) == "" {
		problems = append(problems, "data path is empty")
	}
	if _, err := cities.ParseLabelStyle(c.Label); err != nil {
		problems = append(problems, err.Error())
	}
	if _, err := geo.MetricByName(c.Metric); err != nil {
		problems = append(problems, fmt.Sprintf("%v %q", err, c.Metric))
	}
	if c.Iterations < 0 {
		problems = append(problems, fmt.Sprintf("iterations must be >= 0 (got %d)", c.Iterations))
	}
	if c.Timeout < 0 {
		problems = append(problems, fmt.Sprintf("timeout must be >= 0 (got %s)", c.Timeout))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// SearchConfig returns the engine configuration.
func (c Config) SearchConfig() search.Config {
	return search.Config{Iterations: c.Iterations, Seed: c.Seed}
}

// LabelStyle returns the parsed label style. Call after Validate.
func (c Config) LabelStyle() cities.LabelStyle {
	s, _ := cities.ParseLabelStyle(c.Label)
	return s
}

// DistanceMetric returns the parsed metric. Call after Validate.
func (c Config) DistanceMetric() geo.Metric {
	m, err := geo.MetricByName(c.Metric)
	if err != nil {
		return geo.Euclidean{}
	}
	return m
}
