package tui

import (
	"log/slog"
	"strconv"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/calm/internal/affirm"
	"github.com/garrettladley/calm/internal/breath"
	"github.com/garrettladley/calm/internal/config"
	"github.com/garrettladley/calm/internal/confetti"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/notes"
	"github.com/garrettladley/calm/internal/tui/components/footer"
	"github.com/garrettladley/calm/internal/tui/components/sky"
	"github.com/garrettladley/calm/internal/tui/page/calm"
	"github.com/garrettladley/calm/internal/tui/page/splash"
	"github.com/garrettladley/calm/internal/tui/theme"
	"github.com/garrettladley/calm/internal/wish"
	"github.com/garrettladley/calm/internal/xerrors"
	"github.com/garrettladley/calm/internal/xslog"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	splashPage page = iota
	calmPage
)

type focus uint8

const (
	focusNone focus = iota
	focusWish
	focusNote
)

const (
	inputWidth     = 40
	inputCharLimit = 120
)

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	name           string
	presets        []mood.Preset
	deps           Deps
	logger         *slog.Logger

	hue           *mood.Controller
	affirm        *affirm.Cycler
	breath        *breath.Guide
	breathStarted time.Time
	confetti      *confetti.Field
	notes         *notes.List
	wishes        *wish.Launcher

	wishInput textinput.Model
	noteInput textinput.Model
	focus     focus

	// animating is set while a frame loop is scheduled, so there is never
	// more than one.
	animating bool

	keys keyMap
	help help.Model
}

func New(cfg config.Config, deps Deps) Model {
	deps = deps.withDefaults()
	logger := deps.Logger

	m := Model{
		page:     splashPage,
		theme:    theme.New(cfg.Hue),
		name:     cfg.Name,
		presets:  cfg.Presets,
		deps:     deps,
		logger:   logger,
		hue:      mood.NewController(cfg.Hue),
		affirm:   affirm.New(cfg.Affirmations, cfg.Name),
		confetti: confetti.NewField(deps.Rand),
		notes:    notes.New(cfg.Notes...),
		wishes:   wish.NewLauncher(fps),
		help:     help.New(),
	}
	if m.name == "" {
		m.name = config.DefaultName
	}
	if len(m.presets) == 0 {
		m.presets = mood.Presets()
	}
	m.keys = newKeyMap(len(m.presets))

	m.breath = breath.NewGuide(breath.WithObserver(breath.ObserverFunc(func(p breath.Phase, round int) {
		logger.Debug("breath phase", xslog.Phase(p.String()), xslog.Round(round))
	})))

	m.wishInput = newInput("type a wish…")
	m.noteInput = newInput("one good thing…")

	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = placeholder
	ti.CharLimit = inputCharLimit
	ti.SetWidth(inputWidth)
	return ti
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		splashTickCmd(),
		affirmTickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case ShutdownMsg:
		return m, m.quit()

	// splash timer expired - transition to the calm page
	case splash.TickMsg:
		m.page = calmPage
		return m, nil

	case affirmTickMsg:
		m.affirm.Advance()
		return m, affirmTickCmd()

	case autoHueTickMsg:
		if !m.hue.Tick(msg.token) {
			return m, nil
		}
		m.retheme()
		return m, autoHueTickCmd(msg.token)

	case breathTimerMsg:
		step, ok := m.breath.Elapsed(msg.token)
		if !ok {
			return m, nil
		}
		return m, breathTimerCmd(step)

	case confettiDoneMsg:
		if m.confetti.Expire(msg.id) {
			m.logger.Debug("confetti cleared", xslog.BatchID(msg.id))
		}
		return m, nil

	case wishDoneMsg:
		m.wishes.Expire(msg.id)
		return m, nil

	case frameMsg:
		return m, m.frame()
	}

	return m, m.updateInput(msg)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" || (m.focus == focusNone && key.Matches(msg, m.keys.Quit)) {
		return m.quit()
	}
	if m.page == splashPage {
		return nil
	}
	if m.focus != focusNone {
		return m.handleInputKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Vibe):
		m.setHue(m.hue.Vibe())
	case key.Matches(msg, m.keys.Presets):
		m.applyPreset(msg.String())
	case key.Matches(msg, m.keys.Slide):
		m.slide(msg.String(), 1)
	case key.Matches(msg, m.keys.SlideBig):
		m.slide(msg.String(), 10)
	case key.Matches(msg, m.keys.Auto):
		return m.toggleAuto()
	case key.Matches(msg, m.keys.Breathe):
		return m.toggleBreath()
	case key.Matches(msg, m.keys.Gentle):
		m.affirm.Advance()
	case key.Matches(msg, m.keys.Confetti):
		return m.launchConfetti()
	case key.Matches(msg, m.keys.Focus):
		return m.focusInput(focusWish)
	}
	return nil
}

func (m *Model) handleInputKey(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Blur):
		m.focusInput(focusNone)
		return nil
	case key.Matches(msg, m.keys.Focus):
		if m.focus == focusWish {
			return m.focusInput(focusNote)
		}
		return m.focusInput(focusWish)
	}
	return m.updateInput(msg)
}

func (m *Model) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case focusWish:
		m.wishInput, cmd = m.wishInput.Update(msg)
	case focusNote:
		m.noteInput, cmd = m.noteInput.Update(msg)
	}
	return cmd
}

func (m *Model) focusInput(f focus) tea.Cmd {
	m.wishInput.Blur()
	m.noteInput.Blur()
	m.focus = f

	switch f {
	case focusWish:
		return m.wishInput.Focus()
	case focusNote:
		return m.noteInput.Focus()
	}
	return nil
}

// submit sends the focused input. Blank text is ignored and the buffer kept.
func (m *Model) submit() tea.Cmd {
	switch m.focus {
	case focusWish:
		id, err := m.wishes.Launch(m.wishInput.Value(), m.now())
		if err != nil {
			m.logRejected(err)
			return nil
		}
		m.wishInput.Reset()
		m.logger.Debug("wish launched", xslog.WishID(id))
		return tea.Batch(wishDoneCmd(id), m.ensureFrames())

	case focusNote:
		if err := m.notes.Add(m.noteInput.Value()); err != nil {
			m.logRejected(err)
			return nil
		}
		m.noteInput.Reset()
		m.logger.Debug("note added", xslog.Count(m.notes.Len()))
	}
	return nil
}

// logRejected records input that was not accepted. Blank input is expected
// and only shows up at debug level.
func (m *Model) logRejected(err error) {
	attrs := []any{xslog.Error(err)}
	if xe := xerrors.As(err); xe != nil {
		attrs = append(attrs, xslog.Field(xe.Field))
	}
	if xerrors.IsBlank(err) {
		m.logger.Debug("input rejected", attrs...)
		return
	}
	m.logger.Warn("input rejected", attrs...)
}

func (m *Model) setHue(h mood.Hue) {
	m.retheme()
	m.logger.Debug("hue changed", xslog.Hue(h.Int()))
}

func (m *Model) retheme() {
	m.theme = theme.New(m.hue.Hue())
}

// applyPreset selects the preset under digit key k (1-based).
func (m *Model) applyPreset(k string) {
	i, err := strconv.Atoi(k)
	if err != nil || i < 1 || i > len(m.presets) {
		return
	}
	p := m.presets[i-1]
	m.setHue(m.hue.Apply(p))
	m.logger.Debug("preset applied", xslog.Preset(p.Name))
}

func (m *Model) slide(k string, step int) {
	delta := step
	if k == "left" || k == "[" {
		delta = -step
	}
	m.setHue(m.hue.Set(m.hue.Hue().Int() + delta))
}

func (m *Model) toggleAuto() tea.Cmd {
	tok, on := m.hue.ToggleAuto()
	m.logger.Info("auto hue", xslog.Enabled(on))
	if !on {
		return nil
	}
	return autoHueTickCmd(tok)
}

func (m *Model) toggleBreath() tea.Cmd {
	step, ok := m.breath.Toggle()
	if !ok {
		return nil
	}
	m.breathStarted = m.now()
	return tea.Batch(breathTimerCmd(step), m.ensureFrames())
}

func (m *Model) launchConfetti() tea.Cmd {
	b := m.confetti.Launch(m.hue.Hue(), m.now())
	m.logger.Debug("confetti launched", xslog.BatchID(b.ID), xslog.Hue(m.hue.Hue().Int()))
	return tea.Batch(confettiDoneCmd(b.ID), m.ensureFrames())
}

func (m *Model) ensureFrames() tea.Cmd {
	if m.animating {
		return nil
	}
	m.animating = true
	return frameCmd()
}

// frame advances the animations and prunes expired particles. The loop stops
// itself once nothing is moving.
func (m *Model) frame() tea.Cmd {
	now := m.now()
	m.wishes.Step()
	m.confetti.Prune(now)
	m.wishes.Prune(now)

	if !m.needsFrames() {
		m.animating = false
		return nil
	}
	return frameCmd()
}

func (m *Model) needsFrames() bool {
	return m.confetti.Active() || m.wishes.Len() > 0 || m.breath.Running()
}

func (m *Model) quit() tea.Cmd {
	m.teardown()
	return tea.Quit
}

// teardown stops every timer-driven effect so nothing outlives the program.
func (m *Model) teardown() {
	m.confetti.Reset()
	m.wishes.Reset()
	m.breath.Stop()
	if m.hue.Auto() {
		m.hue.ToggleAuto()
	}
	m.animating = false
	m.logger.Info("calm space closed", xslog.Count(m.notes.Len()))
}

func (m *Model) now() time.Time {
	return m.deps.Clock()
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// splash uses pure black BG, everything else uses default dark
	if m.page == splashPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case splashPage:
		content = splash.View(m.theme, m.name, m.viewportWidth, m.viewportHeight)
	case calmPage:
		content = m.calmView()
	}

	view.SetContent(content)
	return view
}

func (m *Model) calmView() string {
	var (
		w = m.viewportWidth
		h = m.viewportHeight
	)

	bindings := m.keys.ShortHelp()
	if m.focus != focusNone {
		bindings = m.keys.inputHelp()
	}
	foot := footer.New(m.help.ShortHelpView(bindings), w).Render()

	body := calm.View(m.calmState(), m.theme, w, max(h-lipgloss.Height(foot), 0))
	frame := lipgloss.JoinVertical(lipgloss.Left, body, foot)

	now := m.now()
	sprites := confettiSprites(m.confetti.Batch(), now, w, h)
	sprites = append(sprites, wishSprites(m.wishes.Stars(), m.theme.Palette(), now, w/3, h*2/3)...)

	return sky.Compose(frame, w, h, sprites)
}

func (m *Model) calmState() calm.State {
	scale := 1.0
	if m.breath.Running() {
		scale = breath.Pulse(m.now().Sub(m.breathStarted))
	}

	return calm.State{
		Name:        m.name,
		Hue:         m.hue.Hue(),
		Auto:        m.hue.Auto(),
		Presets:     m.presets,
		Affirmation: m.affirm.Current(),
		Phase:       m.breath.Phase(),
		Round:       m.breath.Round(),
		Scale:       scale,
		Notes:       m.notes.All(),
		WishInput:   m.wishInput.View(),
		NoteInput:   m.noteInput.View(),
	}
}
