// Package mouse decodes terminal pointer reports into the event record
// delivered to window mouse handlers.
//
// Terminals report only which button is currently held. The Decoder keeps
// the press position and synthesizes the familiar curses-style masks:
//
//	dec := mouse.NewDecoder(mouse.DefaultConfig())
//	dec.Decode(3, 10, mouse.Button1)    // Button1Pressed
//	dec.Decode(3, 10, mouse.ButtonNone) // Button1Released | Button1Clicked
//
// A release at a different cell than the press yields only the released
// bit. Repeated clicks on the same cell within DoubleClickTime become
// double and triple clicks.
package mouse
