package x11

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/glx"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
)

// Connection manages the X11 connection and core X resources
type Connection struct {
	XUtil  *xgbutil.XUtil
	Root   xproto.Window
	Screen *xproto.ScreenInfo

	glxReady bool
	// tag of the context made current on this connection, 0 when none
	tag glx.ContextTag
}

// NewConnection establishes a connection to the named X11 display.
// An empty name uses $DISPLAY.
func NewConnection(display string) (*Connection, error) {
	xu, err := xgbutil.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	return &Connection{
		XUtil:  xu,
		Root:   xu.RootWin(),
		Screen: xu.Screen(),
	}, nil
}

// Conn returns the raw xgb connection.
func (c *Connection) Conn() *xgb.Conn {
	return c.XUtil.Conn()
}

// ScreenNumber returns the index of the default screen.
func (c *Connection) ScreenNumber() uint32 {
	return uint32(c.Conn().DefaultScreen)
}

// initGLX loads the GLX extension on first use.
func (c *Connection) initGLX() error {
	if c.glxReady {
		return nil
	}
	if err := glx.Init(c.Conn()); err != nil {
		return err
	}
	c.glxReady = true
	return nil
}

// Close cleanly disconnects from the X11 server
func (c *Connection) Close() {
	c.XUtil.Conn().Close()
}
