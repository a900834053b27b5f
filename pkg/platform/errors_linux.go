//go:build linux && !nox11

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
)

// nativeError converts an X protocol error into a *NativeError. Errors that
// did not come from the server, such as a closed connection, are only wrapped.
func nativeError(request string, err error) error {
	if err == nil {
		return nil
	}
	xerr, ok := err.(xgb.Error)
	if !ok {
		return fmt.Errorf("%s: %w", request, err)
	}
	return &NativeError{
		Code:    codeOf(xerr),
		Request: request,
		Detail:  xerr.Error(),
	}
}

// contextError joins ErrIndirectGLX to a BadValue from glXCreateContext.
// Servers started without +iglx answer every indirect context request that
// way, and the contexts created here are always indirect.
func contextError(err error) error {
	if HasCode(err, BadValue) {
		return fmt.Errorf("%w: %w", err, ErrIndirectGLX)
	}
	return err
}

func codeOf(err xgb.Error) ErrorCode {
	switch err.(type) {
	case xproto.RequestError:
		return BadRequest
	case xproto.ValueError:
		return BadValue
	case xproto.WindowError:
		return BadWindow
	case xproto.PixmapError:
		return BadPixmap
	case xproto.AtomError:
		return BadAtom
	case xproto.CursorError:
		return BadCursor
	case xproto.FontError:
		return BadFont
	case xproto.MatchError:
		return BadMatch
	case xproto.DrawableError:
		return BadDrawable
	case xproto.AccessError:
		return BadAccess
	case xproto.AllocError:
		return BadAlloc
	case xproto.ColormapError:
		return BadColor
	case xproto.GContextError:
		return BadGC
	case xproto.IDChoiceError:
		return BadIDChoice
	case xproto.NameError:
		return BadName
	case xproto.LengthError:
		return BadLength
	case xproto.ImplementationError:
		return BadImplementation
	default:
		return BadExtension
	}
}
