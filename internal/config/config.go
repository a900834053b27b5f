package config

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/rpgmk/displaylayer/pkg/platform"
	"github.com/rpgmk/displaylayer/pkg/window"
)

// BackendKind selects the window-system backend.
type BackendKind string

const (
	BackendAuto BackendKind = "auto" // X11 when compiled in, otherwise stub.
	BackendX11  BackendKind = "x11"
	BackendStub BackendKind = "stub"
)

// Config is the effective configuration of a glwindow run.
type Config struct {
	// Display names the X server, e.g. ":1". Empty uses $DISPLAY.
	Display string `yaml:"display"`

	Backend  BackendKind `yaml:"backend"`
	LogLevel string      `yaml:"log_level"`

	Window window.Attributes `yaml:"window"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Backend:  BackendAuto,
		LogLevel: "info",
		Window: window.Attributes{
			Title:       "displaylayer",
			IconPath:    "displaylayer",
			X:           0,
			Y:           0,
			Width:       640,
			Height:      480,
			BorderWidth: 0,
		},
	}
}

// ValidationError points at the config key that failed validation.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the backend, the log level and that the window geometry
// fits the X11 protocol ranges. The window package narrows without checks,
// so this is where out-of-range values are rejected.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendAuto, BackendStub:
	case BackendX11:
		if !platform.X11Available {
			return &ValidationError{Path: "backend", Err: fmt.Errorf("x11 backend is not compiled into this build")}
		}
	default:
		return &ValidationError{Path: "backend", Err: fmt.Errorf("unknown backend %q (want auto, x11 or stub)", c.Backend)}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}

	w := c.Window
	if w.X > math.MaxInt16 {
		return &ValidationError{Path: "window.x", Err: fmt.Errorf("must be <= %d, got %d", math.MaxInt16, w.X)}
	}
	if w.Y > math.MaxInt16 {
		return &ValidationError{Path: "window.y", Err: fmt.Errorf("must be <= %d, got %d", math.MaxInt16, w.Y)}
	}
	if w.Width == 0 || w.Width > math.MaxUint16 {
		return &ValidationError{Path: "window.width", Err: fmt.Errorf("must be between 1 and %d, got %d", math.MaxUint16, w.Width)}
	}
	if w.Height == 0 || w.Height > math.MaxUint16 {
		return &ValidationError{Path: "window.height", Err: fmt.Errorf("must be between 1 and %d, got %d", math.MaxUint16, w.Height)}
	}
	if w.BorderWidth > math.MaxUint16 {
		return &ValidationError{Path: "window.border_width", Err: fmt.Errorf("must be <= %d, got %d", math.MaxUint16, w.BorderWidth)}
	}
	return nil
}

// Driver resolves the configured backend.
func (c *Config) Driver() platform.Driver {
	switch c.Backend {
	case BackendStub:
		return platform.StubDriver{}
	case BackendX11:
		if drv := platform.NewX11Driver(); drv != nil {
			return drv
		}
		return platform.StubDriver{}
	default:
		return platform.DefaultDriver()
	}
}

// ParseLogLevel maps debug, info, warn and error to slog levels. Empty means info.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
