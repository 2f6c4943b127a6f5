// Package region provides curses-style rectangular drawing regions over a
// backend.Backend.
//
// A Terminal owns the backend, the mouse decoder and the cursor visibility
// setting. Regions are created on a Terminal either at the top level, where
// each region owns its own cell surface, or derived from a parent region,
// in which case the child shares the parent's cells through an offset view.
//
// Drawing into a region only updates its cell surface and marks rows as
// changed; nothing reaches the backend until Refresh copies the changed
// rows out, places the hardware cursor and shows the frame. Touch marks
// every row of a region as changed, which is how a parent is repainted
// after one of its children has drawn over it.
//
// Input is read one token at a time with ReadToken, which never blocks and
// returns key.None when nothing is pending. Mouse reports are decoded as
// they arrive; the decoded record is retrieved with GetMouse after a
// key.Mouse token.
package region
