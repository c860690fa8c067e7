package xslog

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/garrettladley/calm/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Hue(h int) slog.Attr {
	const hueKey = "hue"
	return slog.Int(hueKey, h)
}

func Preset(name string) slog.Attr {
	const presetKey = "preset"
	return slog.String(presetKey, name)
}

func Phase(phase string) slog.Attr {
	const phaseKey = "phase"
	return slog.String(phaseKey, phase)
}

func Round(round int) slog.Attr {
	const roundKey = "round"
	return slog.Int(roundKey, round)
}

func BatchID(id uuid.UUID) slog.Attr {
	const batchIDKey = "batch_id"
	return slog.String(batchIDKey, id.String())
}

func WishID(id uuid.UUID) slog.Attr {
	const wishIDKey = "wish_id"
	return slog.String(wishIDKey, id.String())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Enabled(on bool) slog.Attr {
	const enabledKey = "enabled"
	return slog.Bool(enabledKey, on)
}

func Field(field string) slog.Attr {
	const fieldKey = "field"
	return slog.String(fieldKey, field)
}

func Path(path string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, path)
}
