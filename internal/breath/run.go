package breath

import (
	"context"
	"errors"
	"time"
)

var ErrBusy = errors.New("breath: session already running")

// Run drives g through one full session with real timers, speeding every
// phase up by speed. It returns nil once the guide is back to Idle and the
// context error if ctx ends first, in which case the guide is stopped.
func Run(ctx context.Context, g *Guide, speed float64) error {
	if speed <= 0 {
		speed = 1
	}

	step, ok := g.Start()
	if !ok {
		return ErrBusy
	}

	timer := time.NewTimer(scale(step.After, speed))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			g.Stop()
			return ctx.Err()
		case <-timer.C:
			next, changed := g.Elapsed(step.Token)
			if !changed || !next.Scheduled() {
				return nil
			}
			step = next
			timer.Reset(scale(step.After, speed))
		}
	}
}

func scale(d time.Duration, speed float64) time.Duration {
	return time.Duration(float64(d) / speed)
}
