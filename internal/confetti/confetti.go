// Package confetti models a confetti burst as a pool of value particles that
// are positioned from their spawn time, not from per-frame mutation.
package confetti

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/garrettladley/calm/internal/mood"
)

const (
	// Count is the number of particles in one batch.
	Count = 60
	// Lifetime is how long a batch exists before it is torn down.
	Lifetime = 2300 * time.Millisecond
	// FallDuration is how long a particle takes to reach its end point.
	FallDuration = 2200 * time.Millisecond
	// FadeIn is how long a particle takes to reach full opacity.
	FadeIn = 900 * time.Millisecond
	// HueSpread is the maximum distance of a particle hue from the mood hue.
	HueSpread = 30

	startY = -0.02
)

type Particle struct {
	X         float64 // horizontal position as a fraction of the width
	EndY      float64 // final vertical position, below the bottom edge
	Hue       mood.Hue
	Lightness float64
	Rotation  float64 // starting rotation, degrees
	Spin      float64 // rotation added over the fall, degrees
}

// Frame is a particle's computed state at one moment.
type Frame struct {
	X, Y     float64
	Rotation float64
	Opacity  float64
}

// At positions the particle elapsed into its batch.
func (p Particle) At(elapsed time.Duration) Frame {
	fall := progress(elapsed, FallDuration)
	return Frame{
		X:        p.X,
		Y:        startY + (p.EndY-startY)*easeOut(fall),
		Rotation: p.Rotation + p.Spin*fall,
		Opacity:  progress(elapsed, FadeIn),
	}
}

type Batch struct {
	ID        uuid.UUID
	Born      time.Time
	Particles []Particle
}

func (b *Batch) Expired(now time.Time) bool {
	return now.Sub(b.Born) >= Lifetime
}

// Field holds at most one batch. Launching while a batch is active replaces
// it, so particles from two bursts never coexist.
type Field struct {
	rng   *rand.Rand
	batch *Batch
}

func NewField(rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Field{rng: rng}
}

// Launch spawns a fresh batch coloured around hue and returns it. The caller
// schedules Expire(batch.ID) after Lifetime.
func (f *Field) Launch(hue mood.Hue, now time.Time) *Batch {
	b := &Batch{
		ID:        uuid.New(),
		Born:      now,
		Particles: make([]Particle, Count),
	}
	for i := range b.Particles {
		b.Particles[i] = Particle{
			X:         f.rng.Float64(),
			EndY:      1 + f.rng.Float64()*0.2,
			Hue:       hue.Shift(f.rng.IntN(2*HueSpread+1) - HueSpread),
			Lightness: 0.50 + f.rng.Float64()*0.10,
			Rotation:  f.rng.Float64() * 360,
			Spin:      f.rng.Float64() * 720,
		}
	}
	f.batch = b
	return b
}

// Expire removes the batch with id. A timer from a replaced batch finds a
// different id and does nothing.
func (f *Field) Expire(id uuid.UUID) bool {
	if f.batch == nil || f.batch.ID != id {
		return false
	}
	f.batch = nil
	return true
}

// Prune removes the batch once its lifetime is over.
func (f *Field) Prune(now time.Time) bool {
	if f.batch == nil || !f.batch.Expired(now) {
		return false
	}
	f.batch = nil
	return true
}

// Reset tears the field down, dropping any live particles.
func (f *Field) Reset() {
	f.batch = nil
}

func (f *Field) Active() bool { return f.batch != nil }

// Batch returns the live batch or nil.
func (f *Field) Batch() *Batch { return f.batch }

func (f *Field) Len() int {
	if f.batch == nil {
		return 0
	}
	return len(f.batch.Particles)
}

func progress(elapsed, total time.Duration) float64 {
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	default:
		return float64(elapsed) / float64(total)
	}
}

// easeOut approximates cubic-bezier(.2,.8,.2,1): fast start, soft landing.
func easeOut(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}
