package platform

// StubDriver is the backend for systems without graphics. Every operation
// succeeds and no native resources exist.
type StubDriver struct{}

var _ Driver = StubDriver{}

// Name returns "stub".
func (StubDriver) Name() string { return "stub" }

// Open returns an inert Display.
func (StubDriver) Open(string) (Display, error) { return stubDisplay{}, nil }

type stubDisplay struct{}

var _ Display = stubDisplay{}

func (stubDisplay) RootWindow() WindowID { return 0 }

func (stubDisplay) ChooseVisual(req VisualRequest) (Visual, error) {
	return Visual{RGBA: req.RGBA, DoubleBuffer: req.DoubleBuffer, DepthSize: req.DepthSize}, nil
}

func (stubDisplay) CreateColormap(WindowID, Visual) (ColormapID, error) { return 0, nil }

func (stubDisplay) CreateWindow(WindowID, Geometry, Visual, ColormapID, EventMask) (WindowID, error) {
	return 0, nil
}

func (stubDisplay) SetTitle(WindowID, string) error         { return nil }
func (stubDisplay) SetIconName(WindowID, string) error      { return nil }
func (stubDisplay) CreateContext(Visual) (ContextID, error) { return 0, nil }
func (stubDisplay) MapWindow(WindowID) error                { return nil }
func (stubDisplay) MakeCurrent(WindowID, ContextID) error   { return nil }
func (stubDisplay) EnableDepthTest() error                  { return nil }
func (stubDisplay) Title(WindowID) (string, bool, error)    { return "", false, nil }
func (stubDisplay) IconName(WindowID) (string, bool, error) { return "", false, nil }
func (stubDisplay) Geometry(WindowID) (Geometry, error)     { return Geometry{}, nil }
func (stubDisplay) ReleaseCurrent() error                   { return nil }
func (stubDisplay) DestroyContext(ContextID) error          { return nil }
func (stubDisplay) DestroyWindow(WindowID) error            { return nil }
func (stubDisplay) Close() error                            { return nil }
