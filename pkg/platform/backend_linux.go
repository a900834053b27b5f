//go:build linux && !nox11

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/glx"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rpgmk/displaylayer/internal/x11"
)

// X11Driver opens GLX-capable X11 connections.
type X11Driver struct{}

var _ Driver = X11Driver{}

// Name returns "x11".
func (X11Driver) Name() string { return "x11" }

// Open connects to the named X server.
func (X11Driver) Open(display string) (Display, error) {
	conn, err := x11.NewConnection(display)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	return &LinuxDisplay{conn: conn}, nil
}

// LinuxDisplay wraps one X11 connection behind the platform Display interface.
type LinuxDisplay struct {
	conn *x11.Connection
}

var _ Display = (*LinuxDisplay)(nil)

// RootWindow returns the X11 root window ID.
func (d *LinuxDisplay) RootWindow() WindowID {
	return WindowID(d.conn.Root)
}

// ChooseVisual selects a GLX visual config the same way glXChooseVisual does.
func (d *LinuxDisplay) ChooseVisual(req VisualRequest) (Visual, error) {
	configs, err := d.conn.VisualConfigs()
	if err != nil {
		return Visual{}, fmt.Errorf("%w: %v", ErrNoVisual, nativeError("GetVisualConfigs", err))
	}
	vc, ok := x11.ChooseVisualConfig(configs, req.RGBA, req.DoubleBuffer, req.DepthSize)
	if !ok {
		return Visual{}, ErrNoVisual
	}
	depth, ok := x11.VisualDepth(d.conn.Screen, vc.VisualID)
	if !ok {
		return Visual{}, fmt.Errorf("%w: visual 0x%x is not listed by the screen", ErrNoVisual, vc.VisualID)
	}
	return visualFromConfig(vc, depth), nil
}

func (d *LinuxDisplay) CreateColormap(root WindowID, visual Visual) (ColormapID, error) {
	cmap, err := d.conn.CreateColormap(xproto.Window(root), xproto.Visualid(visual.ID))
	if err != nil {
		return 0, nativeError("CreateColormap", err)
	}
	return ColormapID(cmap), nil
}

func (d *LinuxDisplay) CreateWindow(parent WindowID, geom Geometry, visual Visual, cmap ColormapID, mask EventMask) (WindowID, error) {
	win, err := d.conn.CreateWindow(xproto.Window(parent), x11.WindowSpec{
		X:           geom.X,
		Y:           geom.Y,
		Width:       geom.Width,
		Height:      geom.Height,
		BorderWidth: geom.BorderWidth,
		Depth:       visual.Depth,
		Visual:      xproto.Visualid(visual.ID),
		Colormap:    xproto.Colormap(cmap),
		EventMask:   xEventMask(mask),
	})
	if err != nil {
		return 0, nativeError("CreateWindow", err)
	}
	return WindowID(win), nil
}

func (d *LinuxDisplay) SetTitle(win WindowID, title string) error {
	return nativeError("ChangeProperty(WM_NAME, _NET_WM_NAME)", d.conn.SetName(xproto.Window(win), title))
}

func (d *LinuxDisplay) SetIconName(win WindowID, name string) error {
	return nativeError("ChangeProperty(WM_ICON_NAME, _NET_WM_ICON_NAME)", d.conn.SetIconName(xproto.Window(win), name))
}

func (d *LinuxDisplay) CreateContext(visual Visual) (ContextID, error) {
	ctx, err := d.conn.CreateContext(xproto.Visualid(visual.ID))
	if err != nil {
		return 0, contextError(nativeError("glXCreateContext", err))
	}
	return ContextID(ctx), nil
}

func (d *LinuxDisplay) MapWindow(win WindowID) error {
	return nativeError("MapWindow", d.conn.MapWindow(xproto.Window(win)))
}

func (d *LinuxDisplay) MakeCurrent(win WindowID, ctx ContextID) error {
	return nativeError("glXMakeCurrent", d.conn.MakeCurrent(xproto.Window(win), glx.Context(ctx)))
}

func (d *LinuxDisplay) EnableDepthTest() error {
	return nativeError("glEnable(GL_DEPTH_TEST)", d.conn.EnableDepthTest())
}

func (d *LinuxDisplay) Title(win WindowID) (string, bool, error) {
	title, ok, err := d.conn.Name(xproto.Window(win))
	return title, ok, nativeError("GetProperty(WM_NAME)", err)
}

func (d *LinuxDisplay) IconName(win WindowID) (string, bool, error) {
	name, ok, err := d.conn.IconName(xproto.Window(win))
	return name, ok, nativeError("GetProperty(WM_ICON_NAME)", err)
}

func (d *LinuxDisplay) Geometry(win WindowID) (Geometry, error) {
	reply, err := d.conn.Geometry(xproto.Window(win))
	if err != nil {
		return Geometry{}, nativeError("GetGeometry", err)
	}
	return Geometry{
		X:           reply.X,
		Y:           reply.Y,
		Width:       reply.Width,
		Height:      reply.Height,
		BorderWidth: reply.BorderWidth,
	}, nil
}

func (d *LinuxDisplay) ReleaseCurrent() error {
	return nativeError("glXMakeCurrent(None)", d.conn.ReleaseCurrent())
}

func (d *LinuxDisplay) DestroyContext(ctx ContextID) error {
	return nativeError("glXDestroyContext", d.conn.DestroyContext(glx.Context(ctx)))
}

func (d *LinuxDisplay) DestroyWindow(win WindowID) error {
	return nativeError("DestroyWindow", d.conn.DestroyWindow(xproto.Window(win)))
}

// Close disconnects from the X server.
func (d *LinuxDisplay) Close() error {
	d.conn.Close()
	return nil
}

// VisualConfigs exposes the raw GLX visual list for diagnostics.
func (d *LinuxDisplay) VisualConfigs() ([]x11.VisualConfig, error) {
	return d.conn.VisualConfigs()
}

func visualFromConfig(vc x11.VisualConfig, depth uint8) Visual {
	return Visual{
		ID:           vc.VisualID,
		Depth:        depth,
		Class:        vc.Class,
		RGBA:         vc.RGBA,
		DoubleBuffer: vc.DoubleBuffer,
		DepthSize:    vc.DepthSize,
	}
}

func xEventMask(mask EventMask) uint32 {
	var out uint32
	if mask&EventKeyPress != 0 {
		out |= xproto.EventMaskKeyPress
	}
	if mask&EventExposure != 0 {
		out |= xproto.EventMaskExposure
	}
	return out
}
