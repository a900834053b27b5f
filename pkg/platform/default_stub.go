//go:build !linux || nox11

package platform

// X11Available reports whether the X11 backend is compiled in.
const X11Available = false

// DefaultDriver returns the stub backend; this build has no X11 support.
func DefaultDriver() Driver {
	return StubDriver{}
}

// NewX11Driver is unavailable in this build and returns nil.
func NewX11Driver() Driver {
	return nil
}
