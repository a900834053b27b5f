package platform

import (
	"errors"
	"fmt"
	"testing"
)

func TestHasCode(t *testing.T) {
	err := &NativeError{Code: BadMatch, Request: "CreateWindow"}
	if !HasCode(err, BadAlloc, BadMatch) {
		t.Fatal("expected BadMatch to be recognized")
	}
	if HasCode(err, BadAlloc, BadWindow) {
		t.Fatal("unexpected match for unlisted code")
	}
	if !HasCode(fmt.Errorf("wrapped: %w", err), BadMatch) {
		t.Fatal("expected wrapped native error to be recognized")
	}
	if HasCode(errors.New("EOF"), BadMatch) {
		t.Fatal("plain error must not match")
	}
	if HasCode(nil, BadMatch) {
		t.Fatal("nil must not match")
	}
}

func TestNativeError_Error(t *testing.T) {
	tests := []struct {
		err  *NativeError
		want string
	}{
		{&NativeError{Code: BadAlloc, Request: "CreateColormap"}, "CreateColormap: BadAlloc"},
		{&NativeError{Code: BadWindow, Request: "MapWindow", Detail: "BadWindow {Sequence: 7}"}, "MapWindow: BadWindow (BadWindow {Sequence: 7})"},
		{&NativeError{Code: BadIDChoice, Request: "CreateWindow"}, "CreateWindow: BadIDChoice"},
		{&NativeError{Code: BadImplementation, Request: "GetProperty"}, "GetProperty: BadImplementation"},
		{&NativeError{Code: ErrorCode(99), Request: "X"}, "X: error(99)"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Fatalf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestStubDriver(t *testing.T) {
	d, err := StubDriver{}.Open(":0")
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	v, err := d.ChooseVisual(VisualRequest{RGBA: true, DoubleBuffer: true, DepthSize: 24})
	if err != nil || !v.RGBA || v.DepthSize != 24 {
		t.Fatalf("ChooseVisual() = (%+v, %v)", v, err)
	}
	if _, ok, err := d.Title(0); ok || err != nil {
		t.Fatalf("stub title should be unset, got ok=%v err=%v", ok, err)
	}
	if err := d.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}
}

func TestDefaultDriver(t *testing.T) {
	want := "stub"
	if X11Available {
		want = "x11"
	}
	if got := DefaultDriver().Name(); got != want {
		t.Fatalf("DefaultDriver().Name() = %q, want %q", got, want)
	}
}
