package tui

import (
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
	go_json "github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/calm/internal/breath"
	"github.com/garrettladley/calm/internal/config"
	"github.com/garrettladley/calm/internal/confetti"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/notes"
	"github.com/garrettladley/calm/internal/tui/page/splash"
	"github.com/garrettladley/calm/internal/wish"
	"github.com/garrettladley/calm/internal/xslog"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestModel(t *testing.T) (*Model, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	m := New(config.Default(), Deps{
		Clock: clock.Now,
		Rand:  rand.New(rand.NewPCG(1, 2)),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 48})
	m.Update(splash.TickMsg{})
	return &m, clock
}

func press(k string) tea.KeyPressMsg {
	switch k {
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	}
	r := []rune(k)[0]
	return tea.KeyPressMsg{Code: r, Text: k}
}

func TestUpdate_SunsetPreset(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	if m.hue.Hue() != 285 {
		t.Fatalf("initial hue = %d, want 285", m.hue.Hue())
	}

	m.Update(press("2"))

	if m.hue.Hue() != 14 {
		t.Fatalf("hue after Sunset = %d, want 14", m.hue.Hue())
	}
	b, c := m.hue.Hue().Companions()
	if b != 54 || c != 334 {
		t.Errorf("companions = %d, %d; want 54, 334", b, c)
	}
	if m.theme.Palette().Hue != 14 {
		t.Errorf("theme not rebuilt: palette hue = %d", m.theme.Palette().Hue)
	}
}

func TestUpdate_HueKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		start int
		keys  []string
		want  mood.Hue
	}{
		{name: "vibe", start: 285, keys: []string{"v"}, want: 315},
		{name: "vibe wraps", start: 345, keys: []string{"v"}, want: 15},
		{name: "slider right", start: 359, keys: []string{"right"}, want: 0},
		{name: "slider left wraps", start: 0, keys: []string{"left"}, want: 359},
		{name: "slider big steps", start: 100, keys: []string{"]", "]", "["}, want: 110},
		{name: "preset out of range", start: 100, keys: []string{"9"}, want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := newTestModel(t)
			m.hue.Set(tt.start)
			for _, k := range tt.keys {
				m.Update(press(k))
			}
			if got := m.hue.Hue(); got != tt.want {
				t.Errorf("hue = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUpdate_KeysIgnoredOnSplash(t *testing.T) {
	t.Parallel()

	m := New(config.Default(), Deps{})
	m.Update(press("v"))
	if m.hue.Hue() != mood.DefaultHue {
		t.Errorf("hue changed on the splash page: %d", m.hue.Hue())
	}
}

func TestUpdate_AutoHueStaleTick(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	_, cmd := m.Update(press("a"))
	if cmd == nil || !m.hue.Auto() {
		t.Fatal("auto-advance did not start")
	}
	tick, ok := cmd().(autoHueTickMsg)
	if !ok {
		t.Fatalf("auto command produced %T", cmd())
	}

	if _, next := m.Update(tick); next == nil || m.hue.Hue() != 286 {
		t.Fatalf("live tick: hue = %d, rescheduled = %v", m.hue.Hue(), next != nil)
	}

	m.Update(press("a"))
	if _, next := m.Update(tick); next != nil {
		t.Error("stale tick was rescheduled")
	}
	if m.hue.Hue() != 286 {
		t.Errorf("stale tick moved the hue to %d", m.hue.Hue())
	}
}

func TestUpdate_BreathStopBeforeFirstTimer(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	m.Update(press("b"))
	if m.breath.Phase() != breath.PhaseInhale || !m.animating {
		t.Fatalf("phase = %s animating = %v", m.breath.Phase(), m.animating)
	}
	stale := m.breath.Token()

	m.Update(press("space"))
	_, cmd := m.Update(breathTimerMsg{token: stale})

	if cmd != nil {
		t.Error("stale breath timer scheduled another timer")
	}
	if m.breath.Phase() != breath.PhaseIdle {
		t.Errorf("phase = %s, want Idle", m.breath.Phase())
	}
}

func TestUpdate_BreathFullSession(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(press("b"))

	var phases []breath.Phase
	for range 20 {
		_, cmd := m.Update(breathTimerMsg{token: m.breath.Token()})
		phases = append(phases, m.breath.Phase())
		if cmd == nil {
			break
		}
	}

	want := []breath.Phase{
		breath.PhaseHold, breath.PhaseExhale,
		breath.PhaseInhale, breath.PhaseHold, breath.PhaseExhale,
		breath.PhaseInhale, breath.PhaseHold, breath.PhaseExhale,
		breath.PhaseDone, breath.PhaseIdle,
	}
	if diff := cmp.Diff(want, phases); diff != "" {
		t.Errorf("phases mismatch (-want +got):\n%s", diff)
	}
	if m.breath.Transitions() != 9 {
		t.Errorf("Transitions() = %d, want 9", m.breath.Transitions())
	}
}

func TestUpdate_ConfettiTwice(t *testing.T) {
	t.Parallel()

	m, clock := newTestModel(t)

	m.Update(press("c"))
	first := m.confetti.Batch().ID
	clock.Advance(80 * time.Millisecond)
	m.Update(press("s"))

	if got := m.confetti.Len(); got != confetti.Count {
		t.Fatalf("particles = %d, want %d", got, confetti.Count)
	}

	m.Update(confettiDoneMsg{id: first})
	if m.confetti.Len() != confetti.Count {
		t.Error("first batch's timer cleared the second batch")
	}

	m.Update(confettiDoneMsg{id: m.confetti.Batch().ID})
	if m.confetti.Active() {
		t.Error("live batch survived its timer")
	}
}

func TestUpdate_FrameLoopStops(t *testing.T) {
	t.Parallel()

	m, clock := newTestModel(t)

	m.Update(press("c"))
	if !m.animating {
		t.Fatal("confetti did not start the frame loop")
	}
	if _, cmd := m.Update(press("c")); cmd == nil {
		t.Fatal("relaunch returned no completion timer")
	}

	if _, cmd := m.Update(frameMsg{}); cmd == nil {
		t.Fatal("frame loop stopped while confetti is live")
	}

	clock.Advance(confetti.Lifetime)
	if _, cmd := m.Update(frameMsg{}); cmd != nil {
		t.Error("frame loop kept running with nothing to draw")
	}
	if m.animating || m.confetti.Active() {
		t.Errorf("animating = %v, confetti active = %v", m.animating, m.confetti.Active())
	}
}

func TestUpdate_Notes(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	m.Update(press("tab"))
	m.Update(press("tab"))
	if m.focus != focusNote {
		t.Fatalf("focus = %d, want note input", m.focus)
	}

	for _, blank := range []string{"", "   "} {
		m.noteInput.SetValue(blank)
		m.Update(press("enter"))
	}
	if diff := cmp.Diff([]string{notes.Seed}, m.notes.All()); diff != "" {
		t.Fatalf("blank notes changed the list (-want +got):\n%s", diff)
	}

	m.noteInput.SetValue("Hello")
	m.Update(press("enter"))

	if got := m.notes.All(); got[0] != "Hello" || len(got) != 2 {
		t.Errorf("notes = %q, want Hello first", got)
	}
	if m.noteInput.Value() != "" {
		t.Errorf("input not cleared: %q", m.noteInput.Value())
	}
}

func TestUpdate_Wish(t *testing.T) {
	t.Parallel()

	m, clock := newTestModel(t)
	m.Update(press("tab"))

	m.wishInput.SetValue("   ")
	m.Update(press("enter"))
	if m.wishes.Len() != 0 {
		t.Fatal("blank wish launched a star")
	}
	if m.wishInput.Value() != "   " {
		t.Errorf("blank wish cleared the buffer: %q", m.wishInput.Value())
	}

	m.wishInput.SetValue("a quiet weekend")
	m.Update(press("enter"))
	m.wishInput.SetValue("more sun")
	m.Update(press("enter"))

	if m.wishes.Len() != 2 || m.wishInput.Value() != "" {
		t.Fatalf("stars = %d, buffer = %q", m.wishes.Len(), m.wishInput.Value())
	}

	first := m.wishes.Stars()[0].ID
	m.Update(wishDoneMsg{id: first})
	if m.wishes.Len() != 1 {
		t.Errorf("stars after one expiry = %d, want 1", m.wishes.Len())
	}

	clock.Advance(wish.Lifetime)
	m.Update(frameMsg{})
	if m.wishes.Len() != 0 || m.animating {
		t.Errorf("stars = %d animating = %v after lifetime", m.wishes.Len(), m.animating)
	}
}

func TestUpdate_InputSwallowsShortcuts(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(press("tab"))

	m.Update(press("v"))
	if m.hue.Hue() != mood.DefaultHue {
		t.Error("typing in the wish input triggered vibe")
	}
	if m.wishInput.Value() != "v" {
		t.Errorf("wish buffer = %q, want v", m.wishInput.Value())
	}

	m.Update(press("esc"))
	if m.focus != focusNone {
		t.Errorf("esc left focus on %d", m.focus)
	}
}

func TestUpdate_AffirmationTick(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)

	_, cmd := m.Update(affirmTickMsg{})
	if cmd == nil {
		t.Error("affirmation loop was not rescheduled")
	}
	m.Update(press("n"))

	if m.affirm.Index() != 2 {
		t.Errorf("Index() = %d, want 2", m.affirm.Index())
	}
}

func TestUpdate_QuitTearsDown(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(press("a"))
	m.Update(press("b"))
	m.Update(press("c"))
	m.Update(press("tab"))
	m.wishInput.SetValue("wish")
	m.Update(press("enter"))

	_, cmd := m.Update(press("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
	if m.confetti.Active() || m.wishes.Len() != 0 || m.breath.Running() || m.hue.Auto() || m.animating {
		t.Error("teardown left effects running")
	}
}

func TestUpdate_ShutdownTearsDown(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(press("a"))
	m.Update(press("b"))
	m.Update(press("c"))

	_, cmd := m.Update(ShutdownMsg{})
	if cmd == nil {
		t.Fatal("shutdown returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("shutdown did not quit")
	}
	if m.confetti.Active() || m.breath.Running() || m.hue.Auto() || m.animating {
		t.Error("shutdown left effects running")
	}
}

func TestUpdate_PresetKeysFollowConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Presets = []mood.Preset{mood.Sunset, mood.Ocean, mood.Forest}
	m := New(cfg, Deps{Rand: rand.New(rand.NewPCG(1, 2))})
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 48})
	m.Update(splash.TickMsg{})

	m.Update(press("3"))
	if m.hue.Hue() != mood.Forest.Hue {
		t.Fatalf("hue after 3 = %d, want %d", m.hue.Hue(), mood.Forest.Hue)
	}
	m.Update(press("4"))
	if m.hue.Hue() != mood.Forest.Hue {
		t.Errorf("4 with three presets changed the hue to %d", m.hue.Hue())
	}

	foot := ansi.Strip(m.calmView())
	if !strings.Contains(foot, "1-3") || strings.Contains(foot, "1-5") {
		t.Error("footer help does not match the configured presets")
	}
}

func TestUpdate_BlankInputLogsField(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	m := New(config.Default(), Deps{
		Logger: xslog.NewLogger(&buf, xslog.LevelDebug),
		Rand:   rand.New(rand.NewPCG(1, 2)),
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 48})
	m.Update(splash.TickMsg{})

	m.Update(press("tab"))
	m.Update(press("tab"))
	m.noteInput.SetValue("  ")
	m.Update(press("enter"))

	var rejected map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var rec map[string]any
		if err := go_json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("log line is not JSON: %v\n%s", err, line)
		}
		if rec["msg"] == "input rejected" {
			rejected = rec
		}
	}
	if rejected == nil {
		t.Fatalf("no rejection logged:\n%s", buf.String())
	}
	if rejected["level"] != "DEBUG" || rejected["field"] != "note" {
		t.Errorf("rejection = %v, want a debug record for field note", rejected)
	}
}

func TestCalmView(t *testing.T) {
	t.Parallel()

	m, _ := newTestModel(t)
	m.Update(press("c"))

	got := ansi.Strip(m.calmView())

	if !strings.Contains(got, "Hi friend") {
		t.Error("calm view is missing the greeting")
	}
	if !strings.Contains(got, "quit") {
		t.Error("calm view is missing the footer help")
	}
	if lines := strings.Split(got, "\n"); len(lines) != 48 {
		t.Errorf("calm view height = %d, want 48", len(lines))
	}
}
