// Package script binds Lua functions to window events.
//
// A script defines any of the global functions on_key, on_term, on_mouse
// and on_resize. Engine.Bind registers each defined function as the
// handler for the matching event kind on a window. Handlers receive the
// window ID and the event payload:
//
//	function on_key(id, code)
//	  if code == termwin.KEY_F4 then termwin.exit() end
//	  if code == termwin.KEY_UP then termwin.move_cursor(id, -1, 0) end
//	end
//
//	function on_mouse(id, ev)
//	  if termwin.has(ev.buttons, termwin.BUTTON1_CLICKED) then
//	    termwin.focus_at(ev.y, ev.x)
//	  end
//	end
//
// The Lua state only opens the base, table, string and math libraries,
// and file loading from Lua is disabled. Lua runs on the goroutine that
// runs the Screen's loop.
package script
