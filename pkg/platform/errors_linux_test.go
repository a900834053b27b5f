//go:build linux && !nox11

package platform

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestNativeErrorTranslation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"alloc", xproto.AllocError{NiceName: "Alloc"}, BadAlloc},
		{"colormap", xproto.ColormapError{NiceName: "Colormap"}, BadColor},
		{"match", xproto.MatchError{NiceName: "Match"}, BadMatch},
		{"value", xproto.ValueError{NiceName: "Value"}, BadValue},
		{"window", xproto.WindowError{NiceName: "Window"}, BadWindow},
		{"cursor", xproto.CursorError{NiceName: "Cursor"}, BadCursor},
		{"pixmap", xproto.PixmapError{NiceName: "Pixmap"}, BadPixmap},
		{"drawable", xproto.DrawableError{NiceName: "Drawable"}, BadDrawable},
		{"atom", xproto.AtomError{NiceName: "Atom"}, BadAtom},
		{"access", xproto.AccessError{NiceName: "Access"}, BadAccess},
		{"request", xproto.RequestError{NiceName: "Request"}, BadRequest},
		{"font", xproto.FontError{NiceName: "Font"}, BadFont},
		{"gc", xproto.GContextError{NiceName: "GContext"}, BadGC},
		{"id choice", xproto.IDChoiceError{NiceName: "IDChoice"}, BadIDChoice},
		{"name", xproto.NameError{NiceName: "Name"}, BadName},
		{"length", xproto.LengthError{NiceName: "Length"}, BadLength},
		{"implementation", xproto.ImplementationError{NiceName: "Implementation"}, BadImplementation},
		{"extension", extensionError{}, BadExtension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := nativeError("Request", tt.err)
			var ne *NativeError
			if !errors.As(err, &ne) {
				t.Fatalf("nativeError() = %T, want *NativeError", err)
			}
			if ne.Code != tt.want || ne.Request != "Request" {
				t.Fatalf("nativeError() = %+v, want code %v", ne, tt.want)
			}
		})
	}
}

// extensionError stands in for an error type generated for an extension.
type extensionError struct{}

func (extensionError) SequenceId() uint16 { return 0 }
func (extensionError) BadId() uint32      { return 0 }
func (extensionError) Error() string      { return "BadContext {}" }

func TestContextErrorMentionsIndirectGLX(t *testing.T) {
	err := contextError(nativeError("glXCreateContext", xproto.ValueError{NiceName: "Value"}))
	if !errors.Is(err, ErrIndirectGLX) {
		t.Fatalf("BadValue from glXCreateContext = %v, want ErrIndirectGLX", err)
	}
	if !HasCode(err, BadValue) {
		t.Fatalf("expected the native BadValue to stay reachable, got %v", err)
	}
	if !strings.Contains(err.Error(), "+iglx") {
		t.Fatalf("message %q does not say how to enable indirect GLX", err.Error())
	}

	err = contextError(nativeError("glXCreateContext", xproto.AllocError{NiceName: "Alloc"}))
	if errors.Is(err, ErrIndirectGLX) {
		t.Fatalf("BadAlloc must not be reported as disabled indirect GLX: %v", err)
	}
	if contextError(nil) != nil {
		t.Fatal("nil error must stay nil")
	}
}

func TestNativeErrorPassesThroughTransportErrors(t *testing.T) {
	if nativeError("MapWindow", nil) != nil {
		t.Fatal("nil error must stay nil")
	}
	err := nativeError("MapWindow", io.EOF)
	if !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF to be wrapped, got %v", err)
	}
	var ne *NativeError
	if errors.As(err, &ne) {
		t.Fatal("transport error must not become a NativeError")
	}
}

func TestXEventMask(t *testing.T) {
	got := xEventMask(EventExposure | EventKeyPress)
	want := uint32(xproto.EventMaskExposure | xproto.EventMaskKeyPress)
	if got != want {
		t.Fatalf("xEventMask() = %#x, want %#x", got, want)
	}
}
