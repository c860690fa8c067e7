package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/garrettladley/calm/internal/affirm"
	"github.com/garrettladley/calm/internal/breath"
	"github.com/garrettladley/calm/internal/confetti"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/tui/page/splash"
	"github.com/garrettladley/calm/internal/wish"
)

func splashTickCmd() tea.Cmd {
	return tea.Tick(splash.Duration, func(time.Time) tea.Msg {
		return splash.TickMsg{}
	})
}

func affirmTickCmd() tea.Cmd {
	return tea.Tick(affirm.Interval, func(time.Time) tea.Msg {
		return affirmTickMsg{}
	})
}

func autoHueTickCmd(tok mood.Token) tea.Cmd {
	return tea.Tick(mood.AutoInterval, func(time.Time) tea.Msg {
		return autoHueTickMsg{token: tok}
	})
}

// breathTimerCmd arms the timer for step, or nothing when the step ends the
// session.
func breathTimerCmd(step breath.Step) tea.Cmd {
	if !step.Scheduled() {
		return nil
	}
	return tea.Tick(step.After, func(time.Time) tea.Msg {
		return breathTimerMsg{token: step.Token}
	})
}

func confettiDoneCmd(id uuid.UUID) tea.Cmd {
	return tea.Tick(confetti.Lifetime, func(time.Time) tea.Msg {
		return confettiDoneMsg{id: id}
	})
}

func wishDoneCmd(id uuid.UUID) tea.Cmd {
	return tea.Tick(wish.Lifetime, func(time.Time) tea.Msg {
		return wishDoneMsg{id: id}
	})
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}
