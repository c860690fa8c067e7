// Package wish launches shooting stars. Each launch is independent and
// cleans itself up after Lifetime, whatever else is in flight.
package wish

import (
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/google/uuid"

	"github.com/garrettladley/calm/internal/xerrors"
)

const (
	// Lifetime is how long a star exists after launch.
	Lifetime = 1400 * time.Millisecond
	// FadeIn is how long a star takes to become fully visible.
	FadeIn = 300 * time.Millisecond

	// flight target relative to the launch point, in cells
	DriftCols = 18
	RiseRows  = -16

	angularFrequency = 6.0
	dampingRatio     = 0.8
)

// Star is one launched wish. X and Y are its offset from the launch point.
type Star struct {
	ID   uuid.UUID
	Born time.Time
	X, Y float64

	vx, vy float64
}

func (s Star) Opacity(now time.Time) float64 {
	elapsed := now.Sub(s.Born)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= FadeIn:
		return 1
	default:
		return float64(elapsed) / float64(FadeIn)
	}
}

func (s Star) Expired(now time.Time) bool {
	return now.Sub(s.Born) >= Lifetime
}

type Launcher struct {
	spring harmonica.Spring
	stars  []Star
}

// NewLauncher steps star flight at fps frames per second.
func NewLauncher(fps int) *Launcher {
	return &Launcher{
		spring: harmonica.NewSpring(harmonica.FPS(fps), angularFrequency, dampingRatio),
	}
}

// Launch spawns a star for text. The text content is not shown; blank text is
// rejected with an error wrapping xerrors.ErrBlank. The caller schedules
// Expire(id) after Lifetime and clears its input buffer.
func (l *Launcher) Launch(text string, now time.Time) (uuid.UUID, error) {
	if strings.TrimSpace(text) == "" {
		return uuid.Nil, xerrors.Blank("wish")
	}
	s := Star{ID: uuid.New(), Born: now}
	l.stars = append(l.stars, s)
	return s.ID, nil
}

// Step advances every star by one frame towards its target.
func (l *Launcher) Step() {
	for i := range l.stars {
		s := &l.stars[i]
		s.X, s.vx = l.spring.Update(s.X, s.vx, DriftCols)
		s.Y, s.vy = l.spring.Update(s.Y, s.vy, RiseRows)
	}
}

// Expire removes the star with id, if it is still around.
func (l *Launcher) Expire(id uuid.UUID) bool {
	i := slices.IndexFunc(l.stars, func(s Star) bool { return s.ID == id })
	if i < 0 {
		return false
	}
	l.stars = slices.Delete(l.stars, i, i+1)
	return true
}

// Prune removes every star past its lifetime and returns how many went.
func (l *Launcher) Prune(now time.Time) int {
	before := len(l.stars)
	l.stars = slices.DeleteFunc(l.stars, func(s Star) bool { return s.Expired(now) })
	return before - len(l.stars)
}

func (l *Launcher) Reset() { l.stars = nil }

func (l *Launcher) Stars() []Star { return slices.Clone(l.stars) }

func (l *Launcher) Len() int { return len(l.stars) }
