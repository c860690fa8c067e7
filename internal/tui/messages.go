package tui

import (
	"time"

	"github.com/google/uuid"

	"github.com/garrettladley/calm/internal/breath"
	"github.com/garrettladley/calm/internal/mood"
)

const (
	fps           = 30
	frameInterval = time.Second / fps
)

// ShutdownMsg asks the model to tear down and quit, as if the user had
// pressed ctrl+c. It is sent when the process is signalled.
type ShutdownMsg struct{}

type affirmTickMsg struct{}

// autoHueTickMsg carries the token of the auto-advance run that scheduled it.
type autoHueTickMsg struct {
	token mood.Token
}

type breathTimerMsg struct {
	token breath.Token
}

type confettiDoneMsg struct {
	id uuid.UUID
}

type wishDoneMsg struct {
	id uuid.UUID
}

type frameMsg struct{}
