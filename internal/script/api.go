package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
	"github.com/dshills/termwin/internal/ui"
)

// keyConstants are exported to Lua as termwin.KEY_<name>.
var keyConstants = map[string]key.Code{
	"UP":        key.Up,
	"DOWN":      key.Down,
	"LEFT":      key.Left,
	"RIGHT":     key.Right,
	"HOME":      key.Home,
	"END":       key.End,
	"PPAGE":     key.PageUp,
	"NPAGE":     key.PageDown,
	"IC":        key.Insert,
	"DC":        key.DeleteKey,
	"BACKSPACE": key.Backspace,
	"ENTER":     key.LineFeed,
	"TAB":       key.Tab,
	"ESCAPE":    key.Escape,
	"BTAB":      key.BackTab,
}

// buttonConstants are exported to Lua as termwin.<name>.
var buttonConstants = map[string]mouse.ButtonMask{
	"BUTTON1_PRESSED":        mouse.Button1Pressed,
	"BUTTON1_RELEASED":       mouse.Button1Released,
	"BUTTON1_CLICKED":        mouse.Button1Clicked,
	"BUTTON1_DOUBLE_CLICKED": mouse.Button1DoubleClicked,
	"BUTTON1_TRIPLE_CLICKED": mouse.Button1TripleClicked,
}

func (e *Engine) installAPI() {
	mod := e.L.SetFuncs(e.L.NewTable(), map[string]lua.LGFunction{
		"exit":        e.luaExit,
		"move_cursor": e.luaMoveCursor,
		"set_cursor":  e.luaSetCursor,
		"cursor":      e.luaCursor,
		"print":       e.luaPrint,
		"text":        e.luaText,
		"reset_text":  e.luaResetText,
		"focus":       e.luaFocus,
		"focus_next":  e.luaFocusNext,
		"focus_at":    e.luaFocusAt,
		"focused":     e.luaFocused,
		"has":         luaHas,
		"log":         e.luaLog,
	})

	for name, code := range keyConstants {
		mod.RawSetString("KEY_"+name, lua.LNumber(code))
	}
	for n := 1; n <= 12; n++ {
		mod.RawSetString(fmt.Sprintf("KEY_F%d", n), lua.LNumber(key.F(n)))
	}
	for name, mask := range buttonConstants {
		mod.RawSetString(name, lua.LNumber(mask))
	}

	e.L.SetGlobal("termwin", mod)
}

// window resolves the window ID at stack index n, raising a Lua error if
// no registered window has it.
func (e *Engine) window(L *lua.LState, n int) *ui.Window {
	id := L.CheckString(n)
	win := e.screen.WindowByID(id)
	if win == nil {
		L.ArgError(n, fmt.Sprintf("%v %q", ErrUnknownWindow, id))
	}
	return win
}

func (e *Engine) luaExit(L *lua.LState) int {
	e.screen.Exit()
	return 0
}

func (e *Engine) luaMoveCursor(L *lua.LState) int {
	win := e.window(L, 1)
	win.MoveCursorRelative(L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (e *Engine) luaSetCursor(L *lua.LState) int {
	win := e.window(L, 1)
	win.MoveCursor(L.CheckInt(2), L.CheckInt(3))
	return 0
}

func (e *Engine) luaCursor(L *lua.LState) int {
	y, x := e.window(L, 1).Cursor()
	L.Push(lua.LNumber(y))
	L.Push(lua.LNumber(x))
	return 2
}

func (e *Engine) luaPrint(L *lua.LState) int {
	win := e.window(L, 1)
	win.Print(L.CheckInt(2), L.CheckInt(3), L.CheckString(4))
	return 0
}

func (e *Engine) luaText(L *lua.LState) int {
	rows := L.NewTable()
	for _, line := range e.window(L, 1).Text() {
		rows.Append(lua.LString(line))
	}
	L.Push(rows)
	return 1
}

func (e *Engine) luaResetText(L *lua.LState) int {
	if err := e.window(L, 1).ResetText(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (e *Engine) luaFocus(L *lua.LState) int {
	e.screen.SetFocus(e.window(L, 1))
	return 0
}

// luaFocusNext returns true, or false and a message when no text field is
// registered.
func (e *Engine) luaFocusNext(L *lua.LState) int {
	if err := e.screen.SetFocusNext(e.window(L, 1)); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}

// luaFocusAt focuses the most recently registered window enclosing screen
// cell (y, x) and returns its ID, or nil if there is none.
func (e *Engine) luaFocusAt(L *lua.LState) int {
	y, x := L.CheckInt(1), L.CheckInt(2)
	windows := e.screen.Windows()
	for i := len(windows) - 1; i >= 0; i-- {
		if windows[i].Enclose(y, x) {
			e.screen.SetFocus(windows[i])
			L.Push(lua.LString(windows[i].ID()))
			return 1
		}
	}
	L.Push(lua.LNil)
	return 1
}

func (e *Engine) luaFocused(L *lua.LState) int {
	if win := e.screen.Focused(); win != nil {
		L.Push(lua.LString(win.ID()))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}

// luaHas tests mask bits; Lua 5.1 has no bitwise operators.
func luaHas(L *lua.LState) int {
	buttons := mouse.ButtonMask(L.CheckInt64(1))
	mask := mouse.ButtonMask(L.CheckInt64(2))
	L.Push(lua.LBool(buttons.Has(mask)))
	return 1
}

func (e *Engine) luaLog(L *lua.LState) int {
	e.logger.Info(L.CheckString(1))
	return 0
}
