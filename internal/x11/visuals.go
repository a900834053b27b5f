package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/glx"
	"github.com/BurntSushi/xgb/xproto"
)

// Every GLX visual config starts with these properties, in this order.
// Anything after them is a list of (attribute, value) pairs.
const (
	propVisualID = iota
	propClass
	propRGBA
	propRedSize
	propGreenSize
	propBlueSize
	propAlphaSize
	propAccumRedSize
	propAccumGreenSize
	propAccumBlueSize
	propAccumAlphaSize
	propDoubleBuffer
	propStereo
	propBufferSize
	propDepthSize
	propStencilSize
	propAuxBuffers
	propLevel

	fixedVisualProps
)

// VisualConfig is one GLX-capable visual reported by the server.
type VisualConfig struct {
	VisualID     uint32
	Class        uint32
	RGBA         bool
	RedSize      int
	GreenSize    int
	BlueSize     int
	AlphaSize    int
	DoubleBuffer bool
	Stereo       bool
	BufferSize   int
	DepthSize    int
	StencilSize  int
	AuxBuffers   int
	Level        int
}

// ParseVisualConfigs decodes the property list of a GLXGetVisualConfigs reply.
func ParseVisualConfigs(numVisuals, numProps uint32, props []uint32) ([]VisualConfig, error) {
	if numVisuals == 0 {
		return nil, nil
	}
	if numProps < fixedVisualProps {
		return nil, fmt.Errorf("visual config has %d properties, need at least %d", numProps, fixedVisualProps)
	}
	if uint64(len(props)) < uint64(numVisuals)*uint64(numProps) {
		return nil, fmt.Errorf("visual config list truncated: %d values for %d visuals of %d properties",
			len(props), numVisuals, numProps)
	}

	configs := make([]VisualConfig, 0, numVisuals)
	for i := uint32(0); i < numVisuals; i++ {
		p := props[i*numProps : (i+1)*numProps]
		configs = append(configs, VisualConfig{
			VisualID:     p[propVisualID],
			Class:        p[propClass],
			RGBA:         p[propRGBA] != 0,
			RedSize:      int(p[propRedSize]),
			GreenSize:    int(p[propGreenSize]),
			BlueSize:     int(p[propBlueSize]),
			AlphaSize:    int(p[propAlphaSize]),
			DoubleBuffer: p[propDoubleBuffer] != 0,
			Stereo:       p[propStereo] != 0,
			BufferSize:   int(p[propBufferSize]),
			DepthSize:    int(p[propDepthSize]),
			StencilSize:  int(p[propStencilSize]),
			AuxBuffers:   int(p[propAuxBuffers]),
			Level:        int(int32(p[propLevel])),
		})
	}
	return configs, nil
}

// ChooseVisualConfig picks a main-plane, monoscopic visual with the requested
// color model and buffering and at least minDepth depth-buffer bits. Like
// glXChooseVisual it prefers the largest depth buffer; ties keep server order.
func ChooseVisualConfig(configs []VisualConfig, rgba, doubleBuffer bool, minDepth int) (VisualConfig, bool) {
	best := -1
	for i, vc := range configs {
		if vc.Level != 0 || vc.Stereo {
			continue
		}
		if vc.RGBA != rgba || vc.DoubleBuffer != doubleBuffer {
			continue
		}
		if vc.DepthSize < minDepth {
			continue
		}
		if best < 0 || vc.DepthSize > configs[best].DepthSize {
			best = i
		}
	}
	if best < 0 {
		return VisualConfig{}, false
	}
	return configs[best], true
}

// VisualConfigs lists the GLX visuals of the default screen.
func (c *Connection) VisualConfigs() ([]VisualConfig, error) {
	if err := c.initGLX(); err != nil {
		return nil, fmt.Errorf("GLX extension unavailable: %w", err)
	}
	reply, err := glx.GetVisualConfigs(c.Conn(), c.ScreenNumber()).Reply()
	if err != nil {
		return nil, err
	}
	return ParseVisualConfigs(reply.NumVisuals, reply.NumProperties, reply.PropertyList)
}

// VisualDepth returns the color depth the screen advertises for a visual.
func VisualDepth(screen *xproto.ScreenInfo, id uint32) (uint8, bool) {
	if screen == nil {
		return 0, false
	}
	for _, d := range screen.AllowedDepths {
		for _, v := range d.Visuals {
			if uint32(v.VisualId) == id {
				return d.Depth, true
			}
		}
	}
	return 0, false
}
