package device

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/triangle/core"
)

func translateEvent(event sdl.Event) core.Event {
	switch et := event.(type) {
	case *sdl.QuitEvent:
		return core.Event{Type: core.EventQuit}
	case *sdl.KeyboardEvent:
		e := core.Event{
			Type: core.EventKeyDown,
			Key:  translateKey(et.Keysym.Sym),
		}
		if et.Type == sdl.KEYUP {
			e.Type = core.EventKeyUp
		}
		return e
	default:
		return core.Event{Type: core.EventOther}
	}
}

func translateKey(sym sdl.Keycode) core.Keycode {
	switch sym {
	case sdl.K_ESCAPE:
		return core.KeyEscape
	case sdl.K_UNKNOWN:
		return core.KeyUnknown
	default:
		return core.Keycode(sym)
	}
}
