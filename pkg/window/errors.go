package window

import (
	"errors"
	"fmt"

	"github.com/rpgmk/displaylayer/pkg/platform"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	ErrConnection       = errors.New("unable to connect to the display")
	ErrVisualSelection  = errors.New("no visual matches the required rendering attributes")
	ErrColormapCreation = errors.New("unable to create colormap")
	ErrWindowCreation   = errors.New("unable to create window")
	ErrTitleAssignment  = errors.New("unable to set window title")
	ErrIconAssignment   = errors.New("unable to set window icon name")
	ErrContextCreation  = errors.New("unable to create rendering context")
	ErrDisplay          = errors.New("unable to map window")
	ErrContextBind      = errors.New("unable to make rendering context current")
	ErrQuery            = errors.New("unable to query window attributes")
	ErrClosed           = errors.New("window is closed")
)

// Error reports a failed native step.
type Error struct {
	Op   string // step that failed, e.g. "create colormap"
	Kind error  // one of the Err* kinds
	Err  error  // native cause, may be nil
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Is matches the error kind.
func (e *Error) Is(target error) bool {
	return target == e.Kind
}

// Unwrap returns the native cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// classify gives err the step's kind when the server answered the request
// with a protocol error, whatever its code. An error that never reached the
// server, such as a broken pipe, is a connection failure.
func classify(op string, kind error, err error) *Error {
	var ne *platform.NativeError
	if errors.As(err, &ne) {
		return &Error{Op: op, Kind: kind, Err: err}
	}
	return &Error{Op: op, Kind: ErrConnection, Err: err}
}
