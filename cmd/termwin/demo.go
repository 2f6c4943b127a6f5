package main

import (
	_ "embed"
	"fmt"

	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
	"github.com/dshills/termwin/internal/script"
	"github.com/dshills/termwin/internal/ui"
)

//go:embed demo.lua
var defaultScript string

const infoText = "the quick brown fox jumps over the lazy dog " +
	"THE QUICK BROWN FOX JUMPS OVER THE LAZY DOG " +
	"She sells sea shells on the sea shore"

// navigate moves the cursor of the event's window with the arrow keys and
// exits on F4.
func navigate(s *ui.Screen) ui.HandlerFunc {
	return func(ev ui.Event) error {
		switch ev.Key {
		case key.Up:
			ev.Window.MoveCursorRelative(-1, 0)
		case key.Down:
			ev.Window.MoveCursorRelative(1, 0)
		case key.Left:
			ev.Window.MoveCursorRelative(0, -1)
		case key.Right:
			ev.Window.MoveCursorRelative(0, 1)
		case key.F(4):
			s.Exit()
		}
		return nil
	}
}

// clickFocus gives focus to whichever of fields encloses a button 1
// click.
func clickFocus(s *ui.Screen, fields []*ui.Window) ui.HandlerFunc {
	return func(ev ui.Event) error {
		if !ev.Mouse.Buttons.Has(mouse.Button1Clicked) {
			return nil
		}
		for _, f := range fields {
			if f.Enclose(ev.Mouse.Y, ev.Mouse.X) {
				s.SetFocus(f)
				return nil
			}
		}
		return nil
	}
}

// frame creates the outer window and its banner.
func frame(s *ui.Screen, h int, banner string) (*ui.Window, error) {
	root, err := s.NewWindow(h, 60, 1, 1, true, false)
	if err != nil {
		return nil, fmt.Errorf("terminal too small for demo: %w", err)
	}
	top, err := s.NewChildWindow(root, 3, 50, 2, 5, true, false)
	if err != nil {
		return nil, err
	}
	top.Print(0, 0, banner)
	return root, nil
}

// fields creates n bordered text fields stacked under the banner.
func fields(s *ui.Screen, root *ui.Window, n int) ([]*ui.Window, error) {
	out := make([]*ui.Window, 0, n)
	for i := range n {
		f, err := s.NewChildWindow(root, 5, 50, 5+5*i, 5, true, true)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// buildDemo shows a banner, a wrapped paragraph and a text field. A click
// in the text field exits.
func buildDemo(s *ui.Screen) (func(), error) {
	root, err := frame(s, 20, "Banner")
	if err != nil {
		return nil, err
	}
	info, err := s.NewChildWindow(root, 5, 50, 5, 5, true, false)
	if err != nil {
		return nil, err
	}
	info.Print(0, 0, infoText)

	field, err := s.NewChildWindow(root, 5, 50, 10, 5, true, true)
	if err != nil {
		return nil, err
	}
	field.On(ui.EventKey, navigate(s))
	field.On(ui.EventMouse, func(ev ui.Event) error {
		if ev.Mouse.Buttons.Has(mouse.Button1Clicked) {
			s.Exit()
		}
		return nil
	})

	s.SetFocus(field)
	return nil, nil
}

// buildFocus shows two text fields; the focus key cycles between them.
func buildFocus(s *ui.Screen) (func(), error) {
	root, err := frame(s, 20, "Use TAB to cycle focus")
	if err != nil {
		return nil, err
	}
	fs, err := fields(s, root, 2)
	if err != nil {
		return nil, err
	}
	for _, f := range fs {
		f.On(ui.EventKey, navigate(s))
	}
	s.SetFocus(fs[0])
	return nil, nil
}

// buildMouse shows four text fields; clicking one focuses it.
func buildMouse(s *ui.Screen) (func(), error) {
	s.SetMouse(true)
	root, err := frame(s, 30, "Click on window to focus")
	if err != nil {
		return nil, err
	}
	fs, err := fields(s, root, 4)
	if err != nil {
		return nil, err
	}
	for _, f := range fs {
		f.On(ui.EventKey, navigate(s))
		f.On(ui.EventMouse, clickFocus(s, fs))
	}
	s.SetFocus(fs[0])
	return nil, nil
}

// scriptBuilder returns a builder binding the Lua script at path, or the
// built-in one when path is empty, to two text fields.
func scriptBuilder(path string) builder {
	return func(s *ui.Screen) (func(), error) {
		root, err := frame(s, 20, "Lua handlers, F4 exits")
		if err != nil {
			return nil, err
		}
		fs, err := fields(s, root, 2)
		if err != nil {
			return nil, err
		}

		eng := script.New(s, s.Logger())
		if path == "" {
			err = eng.LoadString(defaultScript)
		} else {
			err = eng.Load(path)
		}
		if err != nil {
			eng.Close()
			return nil, err
		}
		for _, f := range fs {
			if err := eng.Bind(f); err != nil {
				eng.Close()
				return nil, err
			}
		}
		s.SetFocus(fs[0])
		return eng.Close, nil
	}
}
