package x11

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

// props builds one fixed-length visual config entry plus trailing pairs.
func props(id uint32, rgba, db bool, depth int, level int32, extra ...uint32) []uint32 {
	b := func(v bool) uint32 {
		if v {
			return 1
		}
		return 0
	}
	p := make([]uint32, fixedVisualProps)
	p[propVisualID] = id
	p[propClass] = 4
	p[propRGBA] = b(rgba)
	p[propRedSize], p[propGreenSize], p[propBlueSize] = 8, 8, 8
	p[propDoubleBuffer] = b(db)
	p[propBufferSize] = 24
	p[propDepthSize] = uint32(depth)
	p[propLevel] = uint32(level)
	return append(p, extra...)
}

func TestParseVisualConfigs(t *testing.T) {
	var list []uint32
	list = append(list, props(0x21, true, true, 24, 0, 0x20, 1)...)
	list = append(list, props(0x22, true, false, 16, -1, 0x20, 0)...)

	configs, err := ParseVisualConfigs(2, fixedVisualProps+2, list)
	if err != nil {
		t.Fatalf("ParseVisualConfigs() error: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("got %d configs, want 2", len(configs))
	}

	first := configs[0]
	if first.VisualID != 0x21 || !first.RGBA || !first.DoubleBuffer || first.DepthSize != 24 {
		t.Fatalf("first config = %+v", first)
	}
	if first.RedSize != 8 || first.BufferSize != 24 || first.Class != 4 {
		t.Fatalf("first config sizes = %+v", first)
	}
	second := configs[1]
	if second.VisualID != 0x22 || second.DoubleBuffer || second.Level != -1 {
		t.Fatalf("second config = %+v", second)
	}
}

func TestParseVisualConfigs_Errors(t *testing.T) {
	if _, err := ParseVisualConfigs(1, 4, make([]uint32, 4)); err == nil {
		t.Fatal("expected error for too few properties per visual")
	}
	if _, err := ParseVisualConfigs(2, fixedVisualProps, props(1, true, true, 24, 0)); err == nil {
		t.Fatal("expected error for truncated list")
	}
	configs, err := ParseVisualConfigs(0, 0, nil)
	if err != nil || len(configs) != 0 {
		t.Fatalf("empty reply = (%v, %v), want no configs", configs, err)
	}
}

func TestChooseVisualConfig(t *testing.T) {
	configs := []VisualConfig{
		{VisualID: 1, RGBA: true, DoubleBuffer: false, DepthSize: 24},
		{VisualID: 2, RGBA: true, DoubleBuffer: true, DepthSize: 16},
		{VisualID: 3, RGBA: true, DoubleBuffer: true, DepthSize: 24},
		{VisualID: 4, RGBA: true, DoubleBuffer: true, DepthSize: 32, Stereo: true},
		{VisualID: 5, RGBA: true, DoubleBuffer: true, DepthSize: 32, Level: 1},
		{VisualID: 6, RGBA: true, DoubleBuffer: true, DepthSize: 24},
		{VisualID: 7, RGBA: false, DoubleBuffer: true, DepthSize: 24},
	}

	got, ok := ChooseVisualConfig(configs, true, true, 24)
	if !ok || got.VisualID != 3 {
		t.Fatalf("ChooseVisualConfig() = (%+v, %v), want visual 3", got, ok)
	}

	configs = append(configs, VisualConfig{VisualID: 8, RGBA: true, DoubleBuffer: true, DepthSize: 32})
	got, ok = ChooseVisualConfig(configs, true, true, 24)
	if !ok || got.VisualID != 8 {
		t.Fatalf("expected largest depth buffer to win, got (%+v, %v)", got, ok)
	}

	if _, ok := ChooseVisualConfig(configs[:2], true, true, 24); ok {
		t.Fatal("expected no match without a 24-bit double-buffered visual")
	}
}

func TestVisualDepth(t *testing.T) {
	screen := &xproto.ScreenInfo{
		AllowedDepths: []xproto.DepthInfo{
			{Depth: 24, Visuals: []xproto.VisualInfo{{VisualId: 0x21}, {VisualId: 0x22}}},
			{Depth: 32, Visuals: []xproto.VisualInfo{{VisualId: 0x5a}}},
		},
	}

	if d, ok := VisualDepth(screen, 0x5a); !ok || d != 32 {
		t.Fatalf("VisualDepth(0x5a) = (%d, %v), want 32", d, ok)
	}
	if d, ok := VisualDepth(screen, 0x22); !ok || d != 24 {
		t.Fatalf("VisualDepth(0x22) = (%d, %v), want 24", d, ok)
	}
	if _, ok := VisualDepth(screen, 0x99); ok {
		t.Fatal("expected unknown visual to be missing")
	}
	if _, ok := VisualDepth(nil, 0x21); ok {
		t.Fatal("expected nil screen to report missing")
	}
}
