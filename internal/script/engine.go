package script

import (
	"fmt"

	"github.com/charmbracelet/log"
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termwin/internal/logging"
	"github.com/dshills/termwin/internal/ui"
)

// handlerNames maps event kinds to the Lua globals that handle them.
var handlerNames = map[ui.EventKind]string{
	ui.EventKey:    "on_key",
	ui.EventTerm:   "on_term",
	ui.EventMouse:  "on_mouse",
	ui.EventResize: "on_resize",
}

// Engine is a sandboxed Lua state wired to a Screen.
//
// gopher-lua states are not goroutine-safe; an Engine must only be used
// from the goroutine running the Screen's loop.
type Engine struct {
	L      *lua.LState
	screen *ui.Screen
	logger *log.Logger
	closed bool
}

// New creates an engine for screen. A nil logger discards output.
func New(screen *ui.Screen, logger *log.Logger) *Engine {
	if logger == nil {
		logger = logging.Nop()
	}
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(L)

	e := &Engine{
		L:      L,
		screen: screen,
		logger: logging.WithComponent(logger, "script"),
	}
	e.installAPI()
	return e
}

// openSafeLibraries opens the libraries scripts may use. io, os, debug
// and package are left closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Load runs the script at path.
func (e *Engine) Load(path string) error {
	if e.closed {
		return ErrClosed
	}
	if err := e.protect(func() error { return e.L.DoFile(path) }); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	e.logger.Debug("script loaded", "path", path)
	return nil
}

// LoadString runs a script held in memory.
func (e *Engine) LoadString(src string) error {
	if e.closed {
		return ErrClosed
	}
	return e.protect(func() error { return e.L.DoString(src) })
}

// protect converts a Go panic escaping gopher-lua into an error.
func (e *Engine) protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}

// Bind registers a handler on win for each handler function the script
// defines. It returns ErrNoHandlers if there are none.
func (e *Engine) Bind(win *ui.Window) error {
	if e.closed {
		return ErrClosed
	}
	bound := 0
	for kind, name := range handlerNames {
		fn, ok := e.L.GetGlobal(name).(*lua.LFunction)
		if !ok {
			continue
		}
		win.On(kind, e.handler(name, fn))
		bound++
	}
	if bound == 0 {
		return ErrNoHandlers
	}
	e.logger.Debug("handlers bound", "window", win.ID(), "count", bound)
	return nil
}

func (e *Engine) handler(name string, fn *lua.LFunction) ui.HandlerFunc {
	return func(ev ui.Event) error {
		if e.closed {
			return ErrClosed
		}
		err := e.protect(func() error {
			return e.L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true},
				lua.LString(ev.Window.ID()), e.payload(ev))
		})
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	}
}

// payload converts an event's payload to its Lua form.
func (e *Engine) payload(ev ui.Event) lua.LValue {
	switch ev.Kind {
	case ui.EventMouse:
		t := e.L.NewTable()
		t.RawSetString("y", lua.LNumber(ev.Mouse.Y))
		t.RawSetString("x", lua.LNumber(ev.Mouse.X))
		t.RawSetString("buttons", lua.LNumber(ev.Mouse.Buttons))
		return t
	case ui.EventResize:
		t := e.L.NewTable()
		t.RawSetString("h", lua.LNumber(ev.Size.H))
		t.RawSetString("w", lua.LNumber(ev.Size.W))
		return t
	default:
		return lua.LNumber(ev.Key)
	}
}

// Close releases the Lua state. Handlers bound earlier return ErrClosed.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.L.Close()
	e.closed = true
}
