package x11

import (
	"bytes"
	"testing"
)

func TestEnableCommand(t *testing.T) {
	got := EnableCommand(glDepthTest)
	want := []byte{
		0x08, 0x00, // length
		0x8b, 0x00, // X_GLrop_Enable
		0x71, 0x0b, 0x00, 0x00, // GL_DEPTH_TEST
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("EnableCommand() = % x, want % x", got, want)
	}
}

func TestEnableDepthTest_RequiresCurrentContext(t *testing.T) {
	c := &Connection{}
	if err := c.EnableDepthTest(); err != errNoCurrentContext {
		t.Fatalf("EnableDepthTest() = %v, want %v", err, errNoCurrentContext)
	}
}

func TestReleaseCurrent_WithoutGLXIsNoop(t *testing.T) {
	c := &Connection{}
	if err := c.ReleaseCurrent(); err != nil {
		t.Fatalf("ReleaseCurrent() = %v, want nil", err)
	}
}
