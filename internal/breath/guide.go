// Package breath implements the 4-7-8 breathing guide as a token-guarded
// state machine. It schedules nothing itself: every transition returns the
// timer the caller has to arm.
package breath

import "time"

// Token identifies one breathing session. Stop and Start both move to a new
// token, so a timer armed for an earlier session can never fire a transition.
type Token uint64

// Step is a timer the caller must schedule. When it fires, the caller passes
// Token back to Elapsed.
type Step struct {
	Token Token
	Phase Phase
	Round int
	After time.Duration
}

// Scheduled reports whether the step needs a timer at all.
func (s Step) Scheduled() bool { return s.After > 0 }

type Observer interface {
	PhaseChanged(phase Phase, round int)
}

type ObserverFunc func(phase Phase, round int)

func (f ObserverFunc) PhaseChanged(phase Phase, round int) { f(phase, round) }

type Option func(*Guide)

func WithObserver(o Observer) Option {
	return func(g *Guide) {
		g.observer = o
	}
}

// Guide is the breathing session state. It is owned by one caller and is not
// safe for concurrent use.
type Guide struct {
	phase       Phase
	round       int
	running     bool
	token       Token
	transitions int
	observer    Observer
}

func NewGuide(opts ...Option) *Guide {
	g := &Guide{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Guide) Phase() Phase     { return g.phase }
func (g *Guide) Round() int       { return g.round }
func (g *Guide) Running() bool    { return g.running }
func (g *Guide) Token() Token     { return g.token }
func (g *Guide) Transitions() int { return g.transitions }

// Start begins a session. It only succeeds from Idle, so a second start
// cannot spawn a parallel sequence.
func (g *Guide) Start() (Step, bool) {
	if g.phase != PhaseIdle {
		return Step{}, false
	}
	g.token++
	g.running = true
	g.round = 1
	g.transitions = 0
	return g.enter(PhaseInhale), true
}

// Stop aborts the session and returns to Idle. Timers that are already in
// flight become stale.
func (g *Guide) Stop() bool {
	if g.phase == PhaseIdle {
		return false
	}
	g.token++
	g.running = false
	g.round = 0
	g.enter(PhaseIdle)
	return true
}

// Toggle stops a running session or starts a new one. The returned step is
// only meaningful when ok is true.
func (g *Guide) Toggle() (step Step, ok bool) {
	if g.running {
		g.Stop()
		return Step{}, false
	}
	return g.Start()
}

// Elapsed handles a fired timer. Stale tokens are ignored and report false.
// On a transition the new step is returned; it may or may not need a timer.
func (g *Guide) Elapsed(tok Token) (Step, bool) {
	if tok != g.token {
		return Step{}, false
	}

	switch g.phase {
	case PhaseInhale:
		return g.enter(PhaseHold), true
	case PhaseHold:
		return g.enter(PhaseExhale), true
	case PhaseExhale:
		if g.round < Rounds {
			g.round++
			return g.enter(PhaseInhale), true
		}
		g.running = false
		return g.enter(PhaseDone), true
	case PhaseDone:
		g.round = 0
		return g.enter(PhaseIdle), true
	default:
		return Step{}, false
	}
}

func (g *Guide) enter(p Phase) Step {
	g.phase = p
	if p.Breathing() {
		g.transitions++
	}
	if g.observer != nil {
		g.observer.PhaseChanged(p, g.round)
	}
	return Step{
		Token: g.token,
		Phase: p,
		Round: g.round,
		After: p.Duration(),
	}
}
