package platform

import (
	"errors"
	"fmt"
)

var (
	// ErrNoVisual is returned by ChooseVisual when no visual satisfies the request.
	ErrNoVisual = errors.New("no matching visual")

	// ErrIndirectGLX is joined to context-creation failures from servers
	// that refuse indirect GLX contexts.
	ErrIndirectGLX = errors.New("indirect GLX is disabled on this X server (start it with +iglx)")
)

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// ColormapID identifies a colormap on the display.
type ColormapID uint32

// ContextID identifies a rendering context on the display.
type ContextID uint32

// EventMask selects the events a window is registered for.
type EventMask uint32

const (
	EventKeyPress EventMask = 1 << 0
	EventExposure EventMask = 1 << 15
)

// Geometry is a window rectangle in the native protocol ranges.
type Geometry struct {
	X           int16
	Y           int16
	Width       uint16
	Height      uint16
	BorderWidth uint16
}

// VisualRequest lists the capabilities a chosen visual must provide.
type VisualRequest struct {
	RGBA         bool
	DoubleBuffer bool
	DepthSize    int // minimum depth-buffer bits
}

// Visual describes a rendering-capable visual selected on a display.
type Visual struct {
	ID           uint32
	Depth        uint8 // color depth of the window created for this visual
	Class        uint32
	RGBA         bool
	DoubleBuffer bool
	DepthSize    int
}

// Driver opens connections to a window system.
type Driver interface {
	// Name identifies the backend for logs and the CLI.
	Name() string
	// Open connects to the named display. An empty name selects the default.
	Open(display string) (Display, error)
}

// Display is one open connection to a window system plus the native
// operations a Window needs. Methods report protocol failures as *NativeError.
type Display interface {
	RootWindow() WindowID
	ChooseVisual(req VisualRequest) (Visual, error)
	CreateColormap(root WindowID, visual Visual) (ColormapID, error)
	CreateWindow(parent WindowID, geom Geometry, visual Visual, cmap ColormapID, mask EventMask) (WindowID, error)
	SetTitle(win WindowID, title string) error
	SetIconName(win WindowID, name string) error
	CreateContext(visual Visual) (ContextID, error)

	MapWindow(win WindowID) error
	MakeCurrent(win WindowID, ctx ContextID) error
	EnableDepthTest() error

	// Title and IconName report ok=false when the property is not set.
	Title(win WindowID) (title string, ok bool, err error)
	IconName(win WindowID) (name string, ok bool, err error)
	Geometry(win WindowID) (Geometry, error)

	ReleaseCurrent() error
	DestroyContext(ctx ContextID) error
	DestroyWindow(win WindowID) error
	Close() error
}

// ErrorCode enumerates the protocol error codes a request can fail with.
type ErrorCode uint8

const (
	BadRequest        ErrorCode = 1
	BadValue          ErrorCode = 2
	BadWindow         ErrorCode = 3
	BadPixmap         ErrorCode = 4
	BadAtom           ErrorCode = 5
	BadCursor         ErrorCode = 6
	BadFont           ErrorCode = 7
	BadMatch          ErrorCode = 8
	BadDrawable       ErrorCode = 9
	BadAccess         ErrorCode = 10
	BadAlloc          ErrorCode = 11
	BadColor          ErrorCode = 12
	BadGC             ErrorCode = 13
	BadIDChoice       ErrorCode = 14
	BadName           ErrorCode = 15
	BadLength         ErrorCode = 16
	BadImplementation ErrorCode = 17
	BadExtension      ErrorCode = 128 // raised by an extension such as GLX
)

func (c ErrorCode) String() string {
	switch c {
	case BadRequest:
		return "BadRequest"
	case BadValue:
		return "BadValue"
	case BadWindow:
		return "BadWindow"
	case BadPixmap:
		return "BadPixmap"
	case BadAtom:
		return "BadAtom"
	case BadCursor:
		return "BadCursor"
	case BadFont:
		return "BadFont"
	case BadMatch:
		return "BadMatch"
	case BadDrawable:
		return "BadDrawable"
	case BadAccess:
		return "BadAccess"
	case BadAlloc:
		return "BadAlloc"
	case BadColor:
		return "BadColor"
	case BadGC:
		return "BadGC"
	case BadIDChoice:
		return "BadIDChoice"
	case BadName:
		return "BadName"
	case BadLength:
		return "BadLength"
	case BadImplementation:
		return "BadImplementation"
	case BadExtension:
		return "BadExtension"
	default:
		return fmt.Sprintf("error(%d)", uint8(c))
	}
}

// NativeError is a protocol error returned by the window system.
type NativeError struct {
	Code    ErrorCode
	Request string
	Detail  string
}

func (e *NativeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%s: %s", e.Request, e.Code)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Request, e.Code, e.Detail)
}

// HasCode reports whether err is a *NativeError whose code is one of codes.
func HasCode(err error, codes ...ErrorCode) bool {
	var ne *NativeError
	if !errors.As(err, &ne) {
		return false
	}
	for _, c := range codes {
		if ne.Code == c {
			return true
		}
	}
	return false
}
