// Package window owns a single native window with an OpenGL rendering
// context attached to it.
//
// A Window acquires its display connection, colormap, window and context in
// New and gives them back in reverse order in Close. If New fails partway, the
// resources acquired so far are released before the error is returned.
package window

import (
	"log/slog"

	"github.com/rpgmk/displaylayer/pkg/platform"
)

// Attributes describe the requested or reported state of a window.
// Values must fit the window-system geometry range (see config.Validate);
// they are narrowed without checks.
type Attributes struct {
	Title       string `yaml:"title"`
	IconPath    string `yaml:"icon_path"`
	X           uint32 `yaml:"x"`
	Y           uint32 `yaml:"y"`
	Width       uint32 `yaml:"width"`
	Height      uint32 `yaml:"height"`
	BorderWidth uint32 `yaml:"border_width"`
}

// RequiredVisual is the visual every Window asks for.
var RequiredVisual = platform.VisualRequest{
	RGBA:         true,
	DoubleBuffer: true,
	DepthSize:    24,
}

const eventMask = platform.EventExposure | platform.EventKeyPress

// Options select the backend a Window is built on.
type Options struct {
	Driver  platform.Driver // nil uses platform.DefaultDriver()
	Display string          // empty uses the driver default ($DISPLAY for X11)
	Logger  *slog.Logger    // nil discards
}

// Window is a live window with a rendering context. It owns unique native
// resources and must only be used through the pointer New returns.
// A Window is not safe for concurrent use.
type Window struct {
	logger *slog.Logger

	display platform.Display
	root    platform.WindowID
	visual  platform.Visual

	colormap    platform.ColormapID
	hasColormap bool
	window      platform.WindowID
	hasWindow   bool
	context     platform.ContextID
	hasContext  bool

	closed bool
}

// New opens a display connection and creates a window and a rendering context
// for attrs. The window is not mapped and the context is not current until Show.
func New(attrs Attributes, opts Options) (*Window, error) {
	drv := opts.Driver
	if drv == nil {
		drv = platform.DefaultDriver()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	w := &Window{logger: logger.With("backend", drv.Name())}
	if err := w.acquire(drv, opts.Display, attrs); err != nil {
		w.logger.Debug("window construction failed", "error", err)
		w.release()
		return nil, err
	}
	w.logger.Debug("window created", "window", w.window, "context", w.context, "visual", w.visual.ID)
	return w, nil
}

func (w *Window) acquire(drv platform.Driver, name string, attrs Attributes) error {
	display, err := drv.Open(name)
	if err != nil {
		return &Error{Op: "open display", Kind: ErrConnection, Err: err}
	}
	w.display = display
	w.root = display.RootWindow()

	visual, err := display.ChooseVisual(RequiredVisual)
	if err != nil {
		return &Error{Op: "choose visual", Kind: ErrVisualSelection, Err: err}
	}
	w.visual = visual

	cmap, err := display.CreateColormap(w.root, visual)
	if err != nil {
		return classify("create colormap", ErrColormapCreation, err)
	}
	w.colormap, w.hasColormap = cmap, true

	win, err := display.CreateWindow(w.root, nativeGeometry(attrs), visual, cmap, eventMask)
	if err != nil {
		return classify("create window", ErrWindowCreation, err)
	}
	w.window, w.hasWindow = win, true

	if err := display.SetTitle(win, attrs.Title); err != nil {
		return classify("set title", ErrTitleAssignment, err)
	}
	if err := display.SetIconName(win, attrs.IconPath); err != nil {
		return classify("set icon name", ErrIconAssignment, err)
	}

	ctx, err := display.CreateContext(visual)
	if err != nil {
		return &Error{Op: "create context", Kind: ErrContextCreation, Err: err}
	}
	w.context, w.hasContext = ctx, true
	return nil
}

// Show maps the window, makes its context current and enables depth testing.
// Calling Show again repeats all three steps.
func (w *Window) Show() error {
	if w.closed {
		return &Error{Op: "show", Kind: ErrClosed}
	}
	if err := w.display.MapWindow(w.window); err != nil {
		return &Error{Op: "map window", Kind: ErrDisplay, Err: err}
	}
	if err := w.display.MakeCurrent(w.window, w.context); err != nil {
		return &Error{Op: "make current", Kind: ErrContextBind, Err: err}
	}
	if err := w.display.EnableDepthTest(); err != nil {
		return &Error{Op: "enable depth test", Kind: ErrContextBind, Err: err}
	}
	return nil
}

// Attributes reads the window's current title, icon name and geometry from
// the window system. An unset title or icon name is reported as "".
func (w *Window) Attributes() (Attributes, error) {
	if w.closed {
		return Attributes{}, &Error{Op: "query attributes", Kind: ErrClosed}
	}

	title, _, err := w.display.Title(w.window)
	if err != nil {
		return Attributes{}, classify("query title", ErrQuery, err)
	}
	icon, _, err := w.display.IconName(w.window)
	if err != nil {
		return Attributes{}, classify("query icon name", ErrQuery, err)
	}
	geom, err := w.display.Geometry(w.window)
	if err != nil {
		return Attributes{}, classify("query geometry", ErrQuery, err)
	}

	return Attributes{
		Title:       title,
		IconPath:    icon,
		X:           uint32(geom.X),
		Y:           uint32(geom.Y),
		Width:       uint32(geom.Width),
		Height:      uint32(geom.Height),
		BorderWidth: uint32(geom.BorderWidth),
	}, nil
}

// Visual returns the visual the window was created with.
func (w *Window) Visual() platform.Visual {
	return w.visual
}

// Close releases the context, the window and the display connection, in that
// order. Failures are logged and the remaining steps still run. Close is a
// no-op on a closed Window.
func (w *Window) Close() {
	if w == nil || w.closed {
		return
	}
	w.closed = true
	w.release()
	w.logger.Debug("window closed")
}

// release walks the filled slots from last acquired to first.
func (w *Window) release() {
	if w.hasContext {
		w.teardown("release context", w.display.ReleaseCurrent())
		w.teardown("destroy context", w.display.DestroyContext(w.context))
		w.hasContext = false
	}
	if w.hasWindow {
		w.teardown("destroy window", w.display.DestroyWindow(w.window))
		w.hasWindow = false
	}
	// The colormap is freed by the server along with the connection.
	w.hasColormap = false
	if w.display != nil {
		w.teardown("close display", w.display.Close())
		w.display = nil
	}
}

func (w *Window) teardown(step string, err error) {
	if err != nil {
		w.logger.Warn("teardown step failed", "step", step, "error", err)
		return
	}
	w.logger.Debug("released", "step", step)
}

func nativeGeometry(attrs Attributes) platform.Geometry {
	return platform.Geometry{
		X:           int16(attrs.X),
		Y:           int16(attrs.Y),
		Width:       uint16(attrs.Width),
		Height:      uint16(attrs.Height),
		BorderWidth: uint16(attrs.BorderWidth),
	}
}
