package x11

import (
	"encoding/binary"
	"errors"

	"github.com/BurntSushi/xgb/glx"
	"github.com/BurntSushi/xgb/xproto"
)

const (
	glRopEnable = 139    // X_GLrop_Enable
	glDepthTest = 0x0B71 // GL_DEPTH_TEST
)

var errNoCurrentContext = errors.New("no GLX context is current")

// CreateContext creates an indirect GLX context for visual on the default screen.
func (c *Connection) CreateContext(visual xproto.Visualid) (glx.Context, error) {
	if err := c.initGLX(); err != nil {
		return 0, err
	}
	ctx, err := glx.NewContextId(c.Conn())
	if err != nil {
		return 0, err
	}
	err = glx.CreateContextChecked(c.Conn(), ctx, visual, c.ScreenNumber(), 0, false).Check()
	if err != nil {
		return 0, err
	}
	return ctx, nil
}

// MakeCurrent binds ctx to win and remembers the returned context tag.
func (c *Connection) MakeCurrent(win xproto.Window, ctx glx.Context) error {
	reply, err := glx.MakeCurrent(c.Conn(), glx.Drawable(win), ctx, c.tag).Reply()
	if err != nil {
		return err
	}
	c.tag = reply.ContextTag
	return nil
}

// ReleaseCurrent unbinds whatever context is current on this connection.
func (c *Connection) ReleaseCurrent() error {
	if !c.glxReady {
		return nil
	}
	old := c.tag
	c.tag = 0
	_, err := glx.MakeCurrent(c.Conn(), 0, 0, old).Reply()
	return err
}

// DestroyContext frees ctx on the server.
func (c *Connection) DestroyContext(ctx glx.Context) error {
	return glx.DestroyContextChecked(c.Conn(), ctx).Check()
}

// EnableDepthTest issues glEnable(GL_DEPTH_TEST) on the current context.
func (c *Connection) EnableDepthTest() error {
	if c.tag == 0 {
		return errNoCurrentContext
	}
	return glx.RenderChecked(c.Conn(), c.tag, EnableCommand(glDepthTest)).Check()
}

// EnableCommand encodes a glEnable render command. Render commands use the
// connection byte order, which xgb always negotiates as little-endian.
func EnableCommand(capability uint32) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint16(buf[0:], uint16(len(buf)))
	binary.LittleEndian.PutUint16(buf[2:], glRopEnable)
	binary.LittleEndian.PutUint32(buf[4:], capability)
	return buf
}
