package xslog

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level is a log level as written in config files and LOG_LEVEL.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

const Default = LevelInfo

// levels is ordered from most to least verbose.
var levels = []struct {
	level Level
	slog  slog.Level
}{
	{LevelDebug, slog.LevelDebug},
	{LevelInfo, slog.LevelInfo},
	{LevelWarn, slog.LevelWarn},
	{LevelError, slog.LevelError},
}

// Parse is case-insensitive and ignores surrounding space.
func Parse(s string) (Level, error) {
	want := Level(strings.ToLower(strings.TrimSpace(s)))
	names := make([]string, 0, len(levels))
	for _, l := range levels {
		if l.level == want {
			return l.level, nil
		}
		names = append(names, string(l.level))
	}
	return "", fmt.Errorf("unknown log level %q, want one of %s", s, strings.Join(names, ", "))
}

// ParseOr is Parse with a fallback for empty or unknown input.
func ParseOr(s string, fallback Level) Level {
	if level, err := Parse(s); err == nil {
		return level
	}
	return fallback
}

// ToSlog maps l onto slog. Unknown levels log at info.
func (l Level) ToSlog() slog.Level {
	for _, known := range levels {
		if known.level == l {
			return known.slog
		}
	}
	return slog.LevelInfo
}

func (l Level) String() string { return string(l) }

// NewLogger writes JSON records at or above level to w, one per line, so a
// log file can be followed with tail -f while the TUI holds the terminal.
func NewLogger(w io.Writer, level Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level.ToSlog(),
	}))
}

// Discard returns a logger that drops every record. The TUI owns the
// terminal, so this is what runs when no log file is configured.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
