// Package logging provides the line-oriented slog handler used by the
// wayfarer CLI:
//
//	2026/10/19 09:30:00 INFO search finished distance=812.4 accepted=37
package logging

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/exp/slog"
)

const timeFormat = "2006/01/02 15:04:05"

// Handler writes one line per record: time, level, message and key=value
// attributes. Handlers derived with WithAttrs/WithGroup share the writer lock.
type Handler struct {
	level  slog.Leveler
	pre    string // attrs from WithAttrs, already formatted
	groups []string
	mu     *sync.Mutex
	out    io.Writer
}

// NewHandler returns a Handler writing to o. A nil opts logs at Info and above.
func NewHandler(o io.Writer, opts *slog.HandlerOptions) *Handler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &Handler{
		level: level,
		mu:    &sync.Mutex{},
		out:   o,
	}
}

// New returns a logger backed by a Handler at the given level.
func New(o io.Writer, level slog.Level) *slog.Logger {
	return slog.New(NewHandler(o, &slog.HandlerOptions{Level: level}))
}

// ParseLevel maps debug|info|warn|error (any case) to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var sb strings.Builder
	sb.WriteString(h.pre)
	for _, a := range attrs {
		writeAttr(&sb, h.prefix(), a)
	}
	nh := *h
	nh.pre = sb.String()
	return &nh
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string(nil), h.groups...), name)
	return &nh
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(r.Time.Format(timeFormat))
	sb.WriteByte(' ')
	sb.WriteString(r.Level.String())
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	sb.WriteString(h.pre)
	prefix := h.prefix()
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.WriteString(h.out, sb.String())
	return err
}

// prefix returns the open groups as "g1.g2.", or "" outside any group.
func (h *Handler) prefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

// writeAttr appends " prefix+key=value". Group values are flattened to
// "prefix+group.key=value"; a group with an empty key is inlined.
func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if v.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range v.Group() {
			writeAttr(sb, prefix, ga)
		}
		return
	}
	if a.Key == "" {
		return
	}

	s := v.String()
	sb.WriteByte(' ')
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	if strings.ContainsAny(s, " \t\"") {
		fmt.Fprintf(sb, "%q", s)
		return
	}
	sb.WriteString(s)
}
