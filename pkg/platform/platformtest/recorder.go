// Package platformtest provides an in-memory platform backend that records
// every native call, for testing code built on platform.Driver.
package platformtest

import (
	"fmt"
	"sort"

	"github.com/rpgmk/displaylayer/pkg/platform"
)

// Operation names as they appear in Calls and as keys for Fail.
const (
	OpOpen            = "Open"
	OpChooseVisual    = "ChooseVisual"
	OpCreateColormap  = "CreateColormap"
	OpCreateWindow    = "CreateWindow"
	OpSetTitle        = "SetTitle"
	OpSetIconName     = "SetIconName"
	OpCreateContext   = "CreateContext"
	OpMapWindow       = "MapWindow"
	OpMakeCurrent     = "MakeCurrent"
	OpEnableDepthTest = "EnableDepthTest"
	OpTitle           = "Title"
	OpIconName        = "IconName"
	OpGeometry        = "Geometry"
	OpReleaseCurrent  = "ReleaseCurrent"
	OpDestroyContext  = "DestroyContext"
	OpDestroyWindow   = "DestroyWindow"
	OpClose           = "Close"
)

// TestVisual is the visual every recorder display offers.
var TestVisual = platform.Visual{
	ID:           0x21,
	Depth:        24,
	Class:        4,
	RGBA:         true,
	DoubleBuffer: true,
	DepthSize:    24,
}

type windowState struct {
	geom     platform.Geometry
	title    string
	iconName string
	hasTitle bool
	hasIcon  bool
	mapped   bool
}

// Recorder is a platform.Driver whose displays keep their state in memory.
// It is not safe for concurrent use.
type Recorder struct {
	// OmitTitle and OmitIconName make the property queries report an unset
	// property even after it was assigned.
	OmitTitle    bool
	OmitIconName bool

	failures  map[string]error
	calls     []string
	displays  int
	colormaps int
	windows   map[platform.WindowID]*windowState
	contexts  map[platform.ContextID]bool
	current   platform.ContextID
	bound     platform.WindowID
	depthTest bool
	nextID    uint32
}

var _ platform.Driver = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{
		failures: make(map[string]error),
		windows:  make(map[platform.WindowID]*windowState),
		contexts: make(map[platform.ContextID]bool),
		nextID:   0x400000,
	}
}

// Fail makes every later call of op return err. A nil err clears the failure.
func (r *Recorder) Fail(op string, err error) *Recorder {
	if err == nil {
		delete(r.failures, op)
		return r
	}
	r.failures[op] = err
	return r
}

// Calls returns the operations invoked so far, in order.
func (r *Recorder) Calls() []string {
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Called reports how many times op was invoked.
func (r *Recorder) Called(op string) int {
	n := 0
	for _, c := range r.calls {
		if c == op {
			n++
		}
	}
	return n
}

// Live describes the resources that were acquired and not released.
// Colormaps are listed separately by Colormaps since they are reclaimed with
// the display.
func (r *Recorder) Live() []string {
	var out []string
	for i := 0; i < r.displays; i++ {
		out = append(out, "display")
	}
	for id := range r.windows {
		out = append(out, fmt.Sprintf("window 0x%x", uint32(id)))
	}
	for id := range r.contexts {
		out = append(out, fmt.Sprintf("context 0x%x", uint32(id)))
	}
	if r.current != 0 {
		out = append(out, fmt.Sprintf("current 0x%x", uint32(r.current)))
	}
	sort.Strings(out)
	return out
}

// Colormaps returns the number of colormaps created on open displays.
func (r *Recorder) Colormaps() int { return r.colormaps }

// Current returns the context currently bound and the window it is bound to.
func (r *Recorder) Current() (platform.ContextID, platform.WindowID) {
	return r.current, r.bound
}

// DepthTest reports whether depth testing was enabled on the current context.
func (r *Recorder) DepthTest() bool { return r.depthTest }

// Mapped reports whether win is mapped.
func (r *Recorder) Mapped(win platform.WindowID) bool {
	ws, ok := r.windows[win]
	return ok && ws.mapped
}

// Name returns "recorder".
func (r *Recorder) Name() string { return "recorder" }

// Open starts a new in-memory display.
func (r *Recorder) Open(display string) (platform.Display, error) {
	if err := r.record(OpOpen); err != nil {
		return nil, err
	}
	r.displays++
	return &recorderDisplay{r: r}, nil
}

func (r *Recorder) record(op string) error {
	r.calls = append(r.calls, op)
	return r.failures[op]
}

func (r *Recorder) id() uint32 {
	r.nextID++
	return r.nextID
}

type recorderDisplay struct {
	r *Recorder
}

const rootWindow platform.WindowID = 0x1ab

func (d *recorderDisplay) RootWindow() platform.WindowID { return rootWindow }

func (d *recorderDisplay) ChooseVisual(req platform.VisualRequest) (platform.Visual, error) {
	if err := d.r.record(OpChooseVisual); err != nil {
		return platform.Visual{}, err
	}
	v := TestVisual
	if req.RGBA != v.RGBA || req.DoubleBuffer != v.DoubleBuffer || req.DepthSize > v.DepthSize {
		return platform.Visual{}, platform.ErrNoVisual
	}
	return v, nil
}

func (d *recorderDisplay) CreateColormap(root platform.WindowID, visual platform.Visual) (platform.ColormapID, error) {
	if err := d.r.record(OpCreateColormap); err != nil {
		return 0, err
	}
	if root != rootWindow {
		return 0, &platform.NativeError{Code: platform.BadWindow, Request: OpCreateColormap}
	}
	d.r.colormaps++
	return platform.ColormapID(d.r.id()), nil
}

func (d *recorderDisplay) CreateWindow(parent platform.WindowID, geom platform.Geometry, visual platform.Visual, cmap platform.ColormapID, mask platform.EventMask) (platform.WindowID, error) {
	if err := d.r.record(OpCreateWindow); err != nil {
		return 0, err
	}
	if parent != rootWindow {
		return 0, &platform.NativeError{Code: platform.BadWindow, Request: OpCreateWindow}
	}
	id := platform.WindowID(d.r.id())
	d.r.windows[id] = &windowState{geom: geom}
	return id, nil
}

func (d *recorderDisplay) window(op string, win platform.WindowID) (*windowState, error) {
	if err := d.r.record(op); err != nil {
		return nil, err
	}
	ws, ok := d.r.windows[win]
	if !ok {
		return nil, &platform.NativeError{Code: platform.BadWindow, Request: op}
	}
	return ws, nil
}

func (d *recorderDisplay) SetTitle(win platform.WindowID, title string) error {
	ws, err := d.window(OpSetTitle, win)
	if err != nil {
		return err
	}
	ws.title, ws.hasTitle = title, true
	return nil
}

func (d *recorderDisplay) SetIconName(win platform.WindowID, name string) error {
	ws, err := d.window(OpSetIconName, win)
	if err != nil {
		return err
	}
	ws.iconName, ws.hasIcon = name, true
	return nil
}

func (d *recorderDisplay) CreateContext(visual platform.Visual) (platform.ContextID, error) {
	if err := d.r.record(OpCreateContext); err != nil {
		return 0, err
	}
	id := platform.ContextID(d.r.id())
	d.r.contexts[id] = true
	return id, nil
}

func (d *recorderDisplay) MapWindow(win platform.WindowID) error {
	ws, err := d.window(OpMapWindow, win)
	if err != nil {
		return err
	}
	ws.mapped = true
	return nil
}

func (d *recorderDisplay) MakeCurrent(win platform.WindowID, ctx platform.ContextID) error {
	if _, err := d.window(OpMakeCurrent, win); err != nil {
		return err
	}
	if !d.r.contexts[ctx] {
		return &platform.NativeError{Code: platform.BadExtension, Request: OpMakeCurrent}
	}
	d.r.current, d.r.bound = ctx, win
	d.r.depthTest = false
	return nil
}

func (d *recorderDisplay) EnableDepthTest() error {
	if err := d.r.record(OpEnableDepthTest); err != nil {
		return err
	}
	if d.r.current == 0 {
		return &platform.NativeError{Code: platform.BadExtension, Request: OpEnableDepthTest}
	}
	d.r.depthTest = true
	return nil
}

func (d *recorderDisplay) Title(win platform.WindowID) (string, bool, error) {
	ws, err := d.window(OpTitle, win)
	if err != nil {
		return "", false, err
	}
	if d.r.OmitTitle || !ws.hasTitle {
		return "", false, nil
	}
	return ws.title, true, nil
}

func (d *recorderDisplay) IconName(win platform.WindowID) (string, bool, error) {
	ws, err := d.window(OpIconName, win)
	if err != nil {
		return "", false, err
	}
	if d.r.OmitIconName || !ws.hasIcon {
		return "", false, nil
	}
	return ws.iconName, true, nil
}

func (d *recorderDisplay) Geometry(win platform.WindowID) (platform.Geometry, error) {
	ws, err := d.window(OpGeometry, win)
	if err != nil {
		return platform.Geometry{}, err
	}
	return ws.geom, nil
}

func (d *recorderDisplay) ReleaseCurrent() error {
	if err := d.r.record(OpReleaseCurrent); err != nil {
		return err
	}
	d.r.current, d.r.bound = 0, 0
	d.r.depthTest = false
	return nil
}

func (d *recorderDisplay) DestroyContext(ctx platform.ContextID) error {
	if err := d.r.record(OpDestroyContext); err != nil {
		return err
	}
	if !d.r.contexts[ctx] {
		return &platform.NativeError{Code: platform.BadExtension, Request: OpDestroyContext}
	}
	delete(d.r.contexts, ctx)
	return nil
}

func (d *recorderDisplay) DestroyWindow(win platform.WindowID) error {
	if _, err := d.window(OpDestroyWindow, win); err != nil {
		return err
	}
	delete(d.r.windows, win)
	return nil
}

// Close drops the display. Windows, contexts and colormaps still alive on a
// real server would be reclaimed here; the recorder keeps windows and
// contexts so leaks stay visible in Live.
func (d *recorderDisplay) Close() error {
	if err := d.r.record(OpClose); err != nil {
		return err
	}
	d.r.displays--
	d.r.colormaps = 0
	return nil
}
