package tui

import (
	"log/slog"
	"math/rand/v2"
	"time"
)

type Deps struct {
	Logger *slog.Logger
	Clock  func() time.Time
	Rand   *rand.Rand
}

func (d Deps) withDefaults() Deps {
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Clock == nil {
		d.Clock = time.Now
	}
	if d.Rand == nil {
		d.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return d
}
