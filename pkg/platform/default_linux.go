//go:build linux && !nox11

package platform

// X11Available reports whether the X11 backend is compiled in.
const X11Available = true

// DefaultDriver returns the X11 backend.
func DefaultDriver() Driver {
	return X11Driver{}
}

// NewX11Driver returns the X11 backend.
func NewX11Driver() Driver {
	return X11Driver{}
}
