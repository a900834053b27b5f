package x11

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
)

type propertySetter func(xu *xgbutil.XUtil, win xproto.Window, value string) error

// Names go to the ICCCM property first (Latin-1 STRING) and then to its
// EWMH counterpart (UTF8_STRING), which modern window managers prefer.
var (
	nameSetters     = []propertySetter{icccm.WmNameSet, ewmh.WmNameSet}
	iconNameSetters = []propertySetter{icccm.WmIconNameSet, ewmh.WmIconNameSet}
)

func setAll(xu *xgbutil.XUtil, win xproto.Window, value string, setters []propertySetter) error {
	for _, set := range setters {
		if err := set(xu, win, value); err != nil {
			return err
		}
	}
	return nil
}

// WindowSpec carries everything CreateWindow needs besides the parent.
type WindowSpec struct {
	X, Y          int16
	Width, Height uint16
	BorderWidth   uint16
	Depth         uint8
	Visual        xproto.Visualid
	Colormap      xproto.Colormap
	EventMask     uint32
}

// CreateColormap creates an AllocNone colormap for visual on the given window's screen.
func (c *Connection) CreateColormap(win xproto.Window, visual xproto.Visualid) (xproto.Colormap, error) {
	cmap, err := xproto.NewColormapId(c.Conn())
	if err != nil {
		return 0, err
	}
	err = xproto.CreateColormapChecked(c.Conn(), xproto.ColormapAllocNone, cmap, win, visual).Check()
	if err != nil {
		return 0, err
	}
	return cmap, nil
}

// CreateWindow creates an InputOutput child of parent.
func (c *Connection) CreateWindow(parent xproto.Window, spec WindowSpec) (xproto.Window, error) {
	win, err := xproto.NewWindowId(c.Conn())
	if err != nil {
		return 0, err
	}

	// Values must follow mask bit order. A border pixel is required because
	// the visual may not match the parent's, which makes CopyFromParent fail.
	mask := uint32(xproto.CwBorderPixel | xproto.CwEventMask | xproto.CwColormap)
	values := []uint32{0, spec.EventMask, uint32(spec.Colormap)}

	err = xproto.CreateWindowChecked(c.Conn(), spec.Depth, win, parent,
		spec.X, spec.Y, spec.Width, spec.Height, spec.BorderWidth,
		xproto.WindowClassInputOutput, spec.Visual, mask, values).Check()
	if err != nil {
		return 0, err
	}
	return win, nil
}

// SetName sets WM_NAME and _NET_WM_NAME.
func (c *Connection) SetName(win xproto.Window, name string) error {
	return setAll(c.XUtil, win, name, nameSetters)
}

// SetIconName sets WM_ICON_NAME and _NET_WM_ICON_NAME.
func (c *Connection) SetIconName(win xproto.Window, name string) error {
	return setAll(c.XUtil, win, name, iconNameSetters)
}

// Name reads WM_NAME. ok is false when the property is not set.
func (c *Connection) Name(win xproto.Window) (string, bool, error) {
	return c.stringProperty(win, xproto.AtomWmName)
}

// IconName reads WM_ICON_NAME. ok is false when the property is not set.
func (c *Connection) IconName(win xproto.Window) (string, bool, error) {
	return c.stringProperty(win, xproto.AtomWmIconName)
}

// stringProperty reads a text property without the "property not found"
// error xprop reports, so an unset property can be told apart from a failure.
func (c *Connection) stringProperty(win xproto.Window, atom xproto.Atom) (string, bool, error) {
	reply, err := xproto.GetProperty(c.Conn(), false, win, atom,
		xproto.GetPropertyTypeAny, 0, (1<<32)-1).Reply()
	if err != nil {
		return "", false, err
	}
	if reply.Format == 0 {
		return "", false, nil
	}
	return string(reply.Value), true, nil
}

// Geometry returns the window position relative to its parent, its size and its border width.
func (c *Connection) Geometry(win xproto.Window) (*xproto.GetGeometryReply, error) {
	return xproto.GetGeometry(c.Conn(), xproto.Drawable(win)).Reply()
}

// MapWindow makes the window viewable.
func (c *Connection) MapWindow(win xproto.Window) error {
	return xproto.MapWindowChecked(c.Conn(), win).Check()
}

// DestroyWindow destroys the window and its subwindows.
func (c *Connection) DestroyWindow(win xproto.Window) error {
	return xproto.DestroyWindowChecked(c.Conn(), win).Check()
}
