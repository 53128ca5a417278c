package history_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wayfarer/history"
)

type captureLogger struct {
	mu    sync.Mutex
	lines []string
}

func (c *captureLogger) Printf(format string, v ...any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = append(c.lines, fmt.Sprintf(format, v...))
}

func openStore(t *testing.T) (*history.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "history.db")
	s, err := history.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func sampleRun(source string, final float64, started time.Time) history.Run {
	return history.Run{
		StartedAt:       started,
		Source:          source,
		Stops:           3,
		Budget:          10000,
		Seed:            42,
		Metric:          "euclidean",
		InitialDistance: 12,
		FinalDistance:   final,
		Iterations:      10000,
		Accepted:        2,
		Duration:        250 * time.Millisecond,
		Stopped:         "budget",
		Route:           []string{"Juneau", "Phoenix", "Montgomery"},
	}
}

func TestRecordAndGet(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	started := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	stored, err := s.Record(ctx, sampleRun("city-data.txt", 8.5, started))
	require.NoError(t, err)
	_, err = uuid.Parse(stored.ID)
	require.NoError(t, err, "record must assign a UUID")

	got, err := s.Get(ctx, stored.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(stored, got); diff != "" {
		t.Fatalf("round trip mismatch (-stored +got):\n%s", diff)
	}
}

func TestRecord_KeepsGivenID(t *testing.T) {
	s, _ := openStore(t)
	r := sampleRun("a.txt", 1, time.Time{})
	r.ID = "fixed-id"

	stored, err := s.Record(context.Background(), r)
	require.NoError(t, err)
	require.Equal(t, "fixed-id", stored.ID)
	require.False(t, stored.StartedAt.IsZero())

	_, err = s.Record(context.Background(), r)
	require.Error(t, err, "duplicate id must be rejected")
}

func TestGet_NotFound(t *testing.T) {
	s, _ := openStore(t)
	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, history.ErrNotFound)

	_, err = s.Best(context.Background(), "nothing.txt", "euclidean")
	require.ErrorIs(t, err, history.ErrNotFound)
}

func TestBest_PerSource(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, final := range []float64{9, 7.25, 8} {
		_, err := s.Record(ctx, sampleRun("us.txt", final, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}
	_, err := s.Record(ctx, sampleRun("eu.txt", 1, base))
	require.NoError(t, err)

	best, err := s.Best(ctx, "us.txt", "euclidean")
	require.NoError(t, err)
	require.Equal(t, 7.25, best.FinalDistance)
	require.Equal(t, "us.txt", best.Source)
}

func TestRecent_NewestFirst(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := s.Record(ctx, sampleRun("r.txt", float64(10-i), base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	runs, err := s.Recent(ctx, 3)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	require.Equal(t, []float64{6, 7, 8}, []float64{runs[0].FinalDistance, runs[1].FinalDistance, runs[2].FinalDistance})

	none, err := s.Recent(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	logger := &captureLogger{}

	s, err := history.Open(path, history.WithLogger(logger))
	require.NoError(t, err)
	stored, err := s.Record(context.Background(), sampleRun("x.txt", 3, time.Time{}))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = history.Open(path, history.WithLogger(logger))
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(context.Background(), stored.ID)
	require.NoError(t, err)
	require.Equal(t, stored.Route, got.Route)
}

func TestBest_SeparatesMetrics(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	km := sampleRun("city-data.txt", 18000, base)
	km.Metric = "haversine"
	_, err := s.Record(ctx, km)
	require.NoError(t, err)
	_, err = s.Record(ctx, sampleRun("city-data.txt", 310, base.Add(time.Minute)))
	require.NoError(t, err)

	best, err := s.Best(ctx, "city-data.txt", "haversine")
	require.NoError(t, err)
	require.Equal(t, "haversine", best.Metric)
	require.Equal(t, 18000.0, best.FinalDistance)

	best, err = s.Best(ctx, "city-data.txt", "euclidean")
	require.NoError(t, err)
	require.Equal(t, "euclidean", best.Metric)
	require.Equal(t, 310.0, best.FinalDistance)
}
