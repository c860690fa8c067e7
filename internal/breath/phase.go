package breath

import "time"

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseInhale
	PhaseHold
	PhaseExhale
	PhaseDone
)

const (
	// Rounds is how many inhale-hold-exhale cycles one session runs.
	Rounds = 3
	// DoneDelay is how long "Done" stays up before returning to Idle.
	DoneDelay = 1200 * time.Millisecond
)

func (p Phase) String() string {
	switch p {
	case PhaseInhale:
		return "Inhale"
	case PhaseHold:
		return "Hold"
	case PhaseExhale:
		return "Exhale"
	case PhaseDone:
		return "Done"
	default:
		return "Idle"
	}
}

// Label is the text shown inside the ring.
func (p Phase) Label() string {
	if p == PhaseIdle {
		return "Tap to breathe"
	}
	return p.String()
}

// Duration is how long the phase lasts before the next transition. Idle has
// no timer.
func (p Phase) Duration() time.Duration {
	switch p {
	case PhaseInhale:
		return 4 * time.Second
	case PhaseHold:
		return 7 * time.Second
	case PhaseExhale:
		return 8 * time.Second
	case PhaseDone:
		return DoneDelay
	default:
		return 0
	}
}

// Breathing reports whether p is one of the three timed breathing phases.
func (p Phase) Breathing() bool {
	return p == PhaseInhale || p == PhaseHold || p == PhaseExhale
}
