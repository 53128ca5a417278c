// Command wayfarer reads a tab-separated city file, searches for a short
// closed tour through every city and reports the result.
//
// Usage:
//
//	wayfarer [-config run.yaml] [-data city-data.txt] [-iterations 10000] [-seed 0]
//	         [-metric euclidean|haversine] [-label city|state|state-city]
//	         [-timeout 0] [-png route.png] [-html route.html] [-history runs.db]
//	         [-log-level info] [-quiet]
//
// Flags override values read from -config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"github.com/katalvlaran/wayfarer/cities"
	"github.com/katalvlaran/wayfarer/config"
	"github.com/katalvlaran/wayfarer/history"
	"github.com/katalvlaran/wayfarer/logging"
	"github.com/katalvlaran/wayfarer/report"
	"github.com/katalvlaran/wayfarer/search"
	"github.com/katalvlaran/wayfarer/tour"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

const banner = `
 _      __           ___
| | /| / /__ ___ __ / _/__ ________ ____
| |/ |/ / _ '/ // / _/ _ '/ __/ -_) __/
|__/|__/\_,_/\_, /_/ \_,_/_/  \__/_/
            /___/

`

// errUsage marks configuration problems (exit code 2).
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, quiet, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "wayfarer:", err)
		return exitUsage
	}

	level, _ := logging.ParseLevel(cfg.LogLevel)
	log := logging.New(stderr, level)

	if quiet {
		stdout = io.Discard
	}
	if err := execute(ctx, cfg, stdout, log); err != nil {
		log.Error("run failed", "err", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitFailed
	}
	return exitOK
}

func parseArgs(args []string, stderr io.Writer) (config.Config, bool, error) {
	fs := flag.NewFlagSet("wayfarer", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "path to a YAML run configuration")
		data       = fs.String("data", "", "tab-separated city file (state, city, latitude, longitude)")
		iterations = fs.Int("iterations", 0, "iteration budget")
		seed       = fs.Int64("seed", 0, "random seed (0 selects the fixed default)")
		metric     = fs.String("metric", "", "distance metric: euclidean | haversine")
		label      = fs.String("label", "", "stop labels: city | state | state-city")
		timeout    = fs.Duration("timeout", 0, "stop the search after this long; 0 disables")
		png        = fs.String("png", "", "write a PNG route plot to this path")
		html       = fs.String("html", "", "write an HTML route chart to this path")
		hist       = fs.String("history", "", "record the run in this SQLite file")
		logLevel   = fs.String("log-level", "", "debug | info | warn | error")
		quiet      = fs.Bool("quiet", false, "suppress the console report")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}
	if fs.NArg() > 0 {
		return config.Config{}, false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.Config{}, false, err
		}
		cfg = loaded
	}

	// Only explicitly set flags override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "data":
			cfg.Data = *data
		case "iterations":
			cfg.Iterations = *iterations
		case "seed":
			cfg.Seed = *seed
		case "metric":
			cfg.Metric = *metric
		case "label":
			cfg.Label = *label
		case "timeout":
			cfg.Timeout = *timeout
		case "png":
			cfg.Output.PNG = *png
		case "html":
			cfg.Output.HTML = *html
		case "history":
			cfg.History = *hist
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, err
	}
	return cfg, *quiet, nil
}

func execute(ctx context.Context, cfg config.Config, stdout io.Writer, log *slog.Logger) error {
	started := time.Now()

	fmt.Fprint(stdout, banner)
	log.Info("reading cities", "file", cfg.Data)
	cs, err := cities.ReadFile(cfg.Data)
	if err != nil {
		return err
	}
	if err := report.WriteCities(stdout, cs); err != nil {
		return err
	}

	initial := tour.New(cfg.DistanceMetric(), cities.Waypoints(cs, cfg.LabelStyle()))
	fmt.Fprintf(stdout, "\nInitial distance is %.2f\n\n", initial.Distance())

	engine, err := search.New(cfg.SearchConfig(), search.WithObserver(func(imp search.Improvement) {
		log.Debug("improved",
			"iteration", imp.Iteration,
			"swap", fmt.Sprintf("%d<->%d", imp.I, imp.J),
			"distance", imp.Distance)
	}))
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	runCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	fmt.Fprintf(stdout, "Proceeding with %d iterations.\nOptimising best cycle...\n\n", cfg.Iterations)
	log.Info("searching", "stops", initial.Len(), "iterations", cfg.Iterations, "seed", cfg.Seed, "metric", cfg.Metric)
	res, err := engine.Run(runCtx, initial)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn("search stopped early; reporting best tour so far", "iterations", res.Iterations, "err", err)
	default:
		return err
	}

	fmt.Fprintln(stdout, "Road map after optimising (city and cost of each leg)")
	if err := report.WriteRoute(stdout, res.Tour); err != nil {
		return err
	}
	fmt.Fprintln(stdout)
	if err := report.WriteSummary(stdout, res); err != nil {
		return err
	}

	if err := writeArtifacts(cfg, res.Tour, log); err != nil {
		return err
	}

	if cfg.History != "" {
		if err := recordRun(ctx, cfg, started, res, log); err != nil {
			return err
		}
	}

	log.Info("search finished",
		"distance", res.Distance,
		"initial", res.InitialDistance,
		"accepted", res.Accepted,
		"stopped", string(res.Stopped),
		"elapsed", res.Duration)
	return nil
}

func writeArtifacts(cfg config.Config, t tour.Tour, log *slog.Logger) error {
	if cfg.Output.PNG != "" {
		if err := writeFile(cfg.Output.PNG, func(w io.Writer) error {
			return report.WritePNG(w, t, report.DefaultPlotOptions(t))
		}); err != nil {
			return err
		}
		log.Info("wrote route plot", "file", cfg.Output.PNG)
	}
	if cfg.Output.HTML != "" {
		if err := writeFile(cfg.Output.HTML, func(w io.Writer) error {
			return report.WriteHTML(w, t, report.ChartOptions{
				Title: fmt.Sprintf("Optimised route, total distance %.2f", t.Distance()),
			})
		}); err != nil {
			return err
		}
		log.Info("wrote route chart", "file", cfg.Output.HTML)
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func recordRun(ctx context.Context, cfg config.Config, started time.Time, res search.Result, log *slog.Logger) error {
	store, err := history.Open(cfg.History, history.WithLogger(migrationLogger{log}))
	if err != nil {
		return err
	}
	defer store.Close()

	// The search context may already be canceled; the record is still wanted.
	recCtx := context.WithoutCancel(ctx)

	run, err := store.Record(recCtx, history.Run{
		StartedAt:       started,
		Source:          cfg.Data,
		Stops:           res.Tour.Len(),
		Budget:          cfg.Iterations,
		Seed:            cfg.Seed,
		Metric:          res.Tour.Metric().Name(),
		InitialDistance: res.InitialDistance,
		FinalDistance:   res.Distance,
		Iterations:      res.Iterations,
		Accepted:        res.Accepted,
		Duration:        res.Duration,
		Stopped:         string(res.Stopped),
		Route:           res.Tour.Labels(),
	})
	if err != nil {
		return err
	}

	best, err := store.Best(recCtx, cfg.Data, res.Tour.Metric().Name())
	if err != nil {
		return err
	}
	log.Info("recorded run", "id", run.ID, "best_distance", best.FinalDistance, "best_seed", best.Seed)
	return nil
}

// migrationLogger adapts slog to history.Logger.
type migrationLogger struct{ log *slog.Logger }

func (m migrationLogger) Printf(format string, v ...any) {
	m.log.Debug(strings.TrimSpace(fmt.Sprintf(format, v...)))
}
