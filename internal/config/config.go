package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/calm/internal/affirm"
	appenv "github.com/garrettladley/calm/internal/env"
	"github.com/garrettladley/calm/internal/mood"
	"github.com/garrettladley/calm/internal/notes"
	"github.com/garrettladley/calm/internal/paths"
	"github.com/garrettladley/calm/internal/validator"
	"github.com/garrettladley/calm/internal/xerrors"
	"github.com/garrettladley/calm/internal/xslog"
)

const (
	DefaultName = "friend"
	maxNameLen  = 40
)

type Config struct {
	Name         string
	Hue          mood.Hue
	LogFile      string
	LogLevel     string
	Env          appenv.Environment
	Affirmations []string
	Presets      []mood.Preset
	Notes        []string

	// File is the config file that was read, empty when none was found.
	File string
}

// envConfig holds what can be set from the environment. Everything is a
// string so an unset variable is distinguishable from a zero value.
type envConfig struct {
	Name     string             `env:"CALM_NAME"`
	Hue      string             `env:"CALM_HUE"`
	File     string             `env:"CALM_CONFIG"`
	LogFile  string             `env:"CALM_LOG_FILE"`
	LogLevel string             `env:"LOG_LEVEL"`
	Env      appenv.Environment `env:"CALM_ENV" envDefault:"production"`
}

type fileConfig struct {
	Name         string       `toml:"name"`
	Hue          *int         `toml:"hue"`
	LogFile      string       `toml:"log_file"`
	LogLevel     string       `toml:"log_level"`
	Affirmations []string     `toml:"affirmations"`
	Notes        *[]string    `toml:"notes"`
	Presets      []filePreset `toml:"preset"`
}

type filePreset struct {
	Name string `toml:"name"`
	Hue  int    `toml:"hue"`
}

func Default() Config {
	return Config{
		Name:         DefaultName,
		Hue:          mood.DefaultHue,
		Env:          appenv.Production,
		Affirmations: affirm.Default(),
		Presets:      mood.Presets(),
		Notes:        []string{notes.Seed},
	}
}

// Read builds the configuration from defaults, the config file and the
// environment, in increasing order of precedence. The file is
// $CALM_CONFIG when set (and must then exist) or ~/.config/calm/config.toml
// when present.
func Read() (Config, error) {
	ev, err := env.ParseAs[envConfig]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	cfg := Default()

	path, required := ev.File, ev.File != ""
	if !required {
		if path, err = paths.ConfigFile(); err != nil {
			path = ""
		}
	}
	if path != "" {
		if err := cfg.loadFile(path, required); err != nil {
			return Config{}, err
		}
	}

	if err := ev.apply(&cfg); err != nil {
		return Config{}, err
	}
	if err := validator.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string, required bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := c.Decode(f); err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	c.File = path
	return nil
}

// Decode overlays TOML from r onto c. Keys that are absent keep their
// current value.
func (c *Config) Decode(r io.Reader) error {
	var fc fileConfig
	if _, err := toml.NewDecoder(r).Decode(&fc); err != nil {
		return err
	}

	if name := strings.TrimSpace(fc.Name); name != "" {
		c.Name = name
	}
	if fc.Hue != nil {
		c.Hue = mood.Wrap(*fc.Hue)
	}
	if fc.LogFile != "" {
		c.LogFile = fc.LogFile
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if len(fc.Affirmations) > 0 {
		c.Affirmations = fc.Affirmations
	}
	if fc.Notes != nil {
		c.Notes = *fc.Notes
	}
	if len(fc.Presets) > 0 {
		presets := make([]mood.Preset, 0, len(fc.Presets))
		for _, p := range fc.Presets {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				continue
			}
			presets = append(presets, mood.Preset{Name: name, Hue: mood.Wrap(p.Hue)})
		}
		if len(presets) > 0 {
			c.Presets = presets
		}
	}
	return nil
}

func (ev envConfig) apply(c *Config) error {
	c.Env = ev.Env
	if name := strings.TrimSpace(ev.Name); name != "" {
		c.Name = name
	}
	if ev.Hue != "" {
		h, err := ParseHue(ev.Hue)
		if err != nil {
			return err
		}
		c.Hue = h
	}
	if ev.LogFile != "" {
		c.LogFile = ev.LogFile
	}
	if ev.LogLevel != "" {
		c.LogLevel = ev.LogLevel
	}
	return nil
}

// Validate reports values that parse but cannot be used.
func (c Config) Validate() map[string]string {
	problems := make(map[string]string)

	if utf8.RuneCountInString(c.Name) > maxNameLen {
		problems["name"] = fmt.Sprintf("longer than %d characters", maxNameLen)
	}
	if c.LogLevel != "" {
		if _, err := xslog.Parse(c.LogLevel); err != nil {
			problems["log_level"] = err.Error()
		}
	}

	seen := make(map[string]struct{}, len(c.Presets))
	for _, p := range c.Presets {
		key := strings.ToLower(p.Name)
		if _, dup := seen[key]; dup {
			problems["preset"] = fmt.Sprintf("duplicate name %q", p.Name)
			break
		}
		seen[key] = struct{}{}
	}

	if len(problems) == 0 {
		return nil
	}
	return problems
}

// ParseHue accepts any integer and wraps it onto the colour wheel.
func ParseHue(s string) (mood.Hue, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, xerrors.Invalid("hue", xerrors.WithMessage("not an integer"), xerrors.WithCause(err))
	}
	return mood.Wrap(v), nil
}

// Level is the configured log level. Development builds default to debug.
func (c Config) Level() xslog.Level {
	fallback := xslog.Default
	if c.Env.IsDevelopment() {
		fallback = xslog.LevelDebug
	}
	return xslog.ParseOr(c.LogLevel, fallback)
}

// LogPath is where logs go, or "" when logging is off. Development logs to
// the default file even when none is configured.
func (c Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return c.LogFile, nil
	}
	if c.Env.IsDevelopment() {
		return paths.LogFile()
	}
	return "", nil
}
