package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/termwin/internal/input/key"
)

// appName is the directory name used under the XDG base directories.
const appName = "termwin"

// Config is the complete termwin configuration.
type Config struct {
	Screen ScreenConfig `toml:"screen"`
	Log    LogConfig    `toml:"log"`
}

// ScreenConfig holds run-loop and terminal settings.
type ScreenConfig struct {
	// Cursor is the cursor visibility: 0 invisible, 1 normal, 2 very visible.
	Cursor int `toml:"cursor"`

	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse"`

	// PollInterval is the idle delay between run-loop iterations.
	// Zero runs the loop without pausing.
	PollInterval Duration `toml:"poll_interval"`

	// FocusKey names the token that moves focus to the next text field.
	// "none" disables focus cycling.
	FocusKey string `toml:"focus_key"`

	// DoubleClick is the longest gap between clicks of a double click.
	DoubleClick Duration `toml:"double_click"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`

	// File is the log destination. Empty selects the default state file;
	// "-" disables logging.
	File string `toml:"file"`
}

// Duration is a time.Duration written as a Go duration string ("5ms").
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Cursor:       1,
			Mouse:        true,
			PollInterval: Duration(5 * time.Millisecond),
			FocusKey:     "tab",
			DoubleClick:  Duration(400 * time.Millisecond),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/termwin/config.toml, creating the
// directory if needed.
func DefaultPath() (string, error) {
	path, err := xdg.ConfigFile(filepath.Join(appName, "config.toml"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigPath, err)
	}
	return path, nil
}

// DefaultLogPath returns $XDG_STATE_HOME/termwin/termwin.log, creating the
// directory if needed.
func DefaultLogPath() (string, error) {
	path, err := xdg.StateFile(filepath.Join(appName, appName+".log"))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoConfigPath, err)
	}
	return path, nil
}

// Load reads the configuration at path. A missing file is not an error;
// the defaults are returned instead.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// Parse decodes TOML data on top of the defaults and validates the result.
// source names the data in error messages.
func Parse(source string, data []byte) (Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, newParseError(source, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func newParseError(source string, err error) *ParseError {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var decErr *toml.DecodeError
	if errors.As(err, &decErr) {
		pe.Line, pe.Column = decErr.Position()
	}
	var strictErr *toml.StrictMissingError
	if errors.As(err, &strictErr) {
		pe.Message = "unknown setting: " + strings.TrimSpace(strictErr.String())
	}
	return pe
}

// Save writes the configuration to path as TOML, creating parent
// directories as needed.
func (c Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// Validate checks every setting against its allowed range.
func (c Config) Validate() error {
	var errs []error

	if c.Screen.Cursor < 0 || c.Screen.Cursor > 2 {
		errs = append(errs, &ValidationError{
			Path: "screen.cursor", Message: "must be 0, 1 or 2", Value: c.Screen.Cursor,
		})
	}
	if c.Screen.PollInterval < 0 {
		errs = append(errs, &ValidationError{
			Path: "screen.poll_interval", Message: "must not be negative", Value: c.Screen.PollInterval.Std(),
		})
	}
	if c.Screen.DoubleClick < 0 {
		errs = append(errs, &ValidationError{
			Path: "screen.double_click", Message: "must not be negative", Value: c.Screen.DoubleClick.Std(),
		})
	}
	if _, err := key.Parse(c.Screen.FocusKey); err != nil {
		errs = append(errs, &ValidationError{
			Path: "screen.focus_key", Message: err.Error(), Value: c.Screen.FocusKey,
		})
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, &ValidationError{
			Path: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level,
		})
	}

	return errors.Join(errs...)
}

// FocusCode returns the focus-cycling token. The second result is false
// when cycling is disabled.
func (s ScreenConfig) FocusCode() (key.Code, bool) {
	c, err := key.Parse(s.FocusKey)
	if err != nil || c == key.None {
		return key.None, false
	}
	return c, true
}
