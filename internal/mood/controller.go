package mood

import "time"

const (
	// VibeStep is how far a single "vibe" nudge moves the hue.
	VibeStep = 30
	// AutoInterval is the period of the auto-advance timer.
	AutoInterval = 140 * time.Millisecond
	autoStep     = 1
)

// Token identifies one run of the auto-advance timer. A tick carrying an old
// token belongs to a timer that was switched off and must be dropped.
type Token uint64

// Controller holds the current hue and the auto-advance switch. It is owned
// by a single UI model and is not safe for concurrent use.
type Controller struct {
	hue   Hue
	auto  bool
	token Token
}

func NewController(initial Hue) *Controller {
	return &Controller{hue: Wrap(int(initial))}
}

func (c *Controller) Hue() Hue { return c.hue }

// Set moves the hue to v, wrapping out-of-range input.
func (c *Controller) Set(v int) Hue {
	c.hue = Wrap(v)
	return c.hue
}

func (c *Controller) Shift(delta int) Hue {
	c.hue = c.hue.Shift(delta)
	return c.hue
}

func (c *Controller) Vibe() Hue {
	return c.Shift(VibeStep)
}

func (c *Controller) Apply(p Preset) Hue {
	return c.Set(int(p.Hue))
}

func (c *Controller) Auto() bool { return c.auto }

// ToggleAuto flips auto-advance. When it turns on, the returned token must be
// attached to the first scheduled tick. Either way, every token handed out
// before this call is invalidated.
func (c *Controller) ToggleAuto() (Token, bool) {
	c.token++
	c.auto = !c.auto
	return c.token, c.auto
}

// Tick applies one auto-advance step. It reports false for stale tokens or
// when auto-advance is off; the caller must not reschedule in that case.
func (c *Controller) Tick(tok Token) bool {
	if !c.auto || tok != c.token {
		return false
	}
	c.Shift(autoStep)
	return true
}
