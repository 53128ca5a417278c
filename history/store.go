package history

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// routeSep joins stop labels in the stored route column.
const routeSep = "\x1f"

// ErrNotFound is returned when no run matches a lookup.
var ErrNotFound = errors.New("history: run not found")

// Run is one recorded search.
type Run struct {
	ID              string
	StartedAt       time.Time
	Source          string // data file or other identifier of the input set
	Stops           int
	Budget          int
	Seed            int64
	Metric          string
	InitialDistance float64
	FinalDistance   float64
	Iterations      int
	Accepted        int
	Duration        time.Duration
	Stopped         string
	Route           []string // stop labels in visiting order
}

// Logger receives migration progress messages.
type Logger interface {
	Printf(format string, v ...any)
}

// Store is a SQLite-backed run history.
type Store struct {
	db *sql.DB
}

// Option customizes Open.
type Option func(*openConfig)

type openConfig struct {
	logger Logger
}

// WithLogger routes migration messages to l.
func WithLogger(l Logger) Option {
	return func(c *openConfig) { c.logger = l }
}

// Open opens (creating if needed) the SQLite database at path and migrates it
// to the latest schema.
func Open(path string, opts ...Option) (*Store, error) {
	var cfg openConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("history: open %s: %w", path, err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY between pool members.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("history: configure %s: %w", path, err)
	}
	if err := migrateUp(db, cfg.logger); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func migrateUp(db *sql.DB, logger Logger) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("history: load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("history: create sqlite driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("history: create migrate instance: %w", err)
	}
	// m is not closed: closing it would close db as well.
	if logger != nil {
		m.Log = migrateLogger{logger}
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("history: migration up failed: %w", err)
	}
	return nil
}

// migrateLogger implements migrate.Logger.
type migrateLogger struct{ l Logger }

func (m migrateLogger) Printf(format string, v ...any) {
	m.l.Printf("[migrate] "+format, v...)
}

func (migrateLogger) Verbose() bool { return false }

// Close releases the database.
func (s *Store) Close() error { return s.db.Close() }

// Record inserts r, assigning a new UUID when r.ID is empty and the current
// time when r.StartedAt is zero. The stored run is returned.
func (s *Store) Record(ctx context.Context, r Run) (Run, error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.StartedAt.IsZero() {
		r.StartedAt = time.Now()
	}
	r.StartedAt = r.StartedAt.UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (
			run_id, started_at, source, stops, budget, seed, metric,
			initial_distance, final_distance, iterations, accepted,
			duration_ns, stopped, route
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.StartedAt.UnixNano(), r.Source, r.Stops, r.Budget, r.Seed, r.Metric,
		r.InitialDistance, r.FinalDistance, r.Iterations, r.Accepted,
		int64(r.Duration), r.Stopped, strings.Join(r.Route, routeSep),
	)
	if err != nil {
		return Run{}, fmt.Errorf("history: insert run %s: %w", r.ID, err)
	}
	return r, nil
}

const selectRun = `
	SELECT run_id, started_at, source, stops, budget, seed, metric,
	       initial_distance, final_distance, iterations, accepted,
	       duration_ns, stopped, route
	FROM runs`

// Get returns the run with the given ID.
func (s *Store) Get(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, selectRun+` WHERE run_id = ?`, id)
	return scanRun(row)
}

// Best returns the shortest run recorded for source under metric. Distances
// from different metrics are not comparable, so runs under other metrics are
// ignored.
func (s *Store) Best(ctx context.Context, source, metric string) (Run, error) {
	row := s.db.QueryRowContext(ctx,
		selectRun+` WHERE source = ? AND metric = ? ORDER BY final_distance ASC, started_at ASC LIMIT 1`,
		source, metric)
	return scanRun(row)
}

// Recent returns up to limit runs, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, selectRun+` ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: query recent runs: %w", err)
	}
	defer rows.Close()

	var out []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("history: iterate runs: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var (
		r         Run
		startedAt int64
		duration  int64
		route     string
	)
	err := sc.Scan(
		&r.ID, &startedAt, &r.Source, &r.Stops, &r.Budget, &r.Seed, &r.Metric,
		&r.InitialDistance, &r.FinalDistance, &r.Iterations, &r.Accepted,
		&duration, &r.Stopped, &route,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrNotFound
	}
	if err != nil {
		return Run{}, fmt.Errorf("history: scan run: %w", err)
	}

	r.StartedAt = time.Unix(0, startedAt).UTC()
	r.Duration = time.Duration(duration)
	if route != "" {
		r.Route = strings.Split(route, routeSep)
	}
	return r, nil
}
