// Package textbuf provides the fixed-capacity text model behind text
// fields.
//
// A LineBuffer is one row of NUL-initialized character slots with an
// insertion index. A FieldBuffer stacks a fixed number of LineBuffers and
// tracks which row is active, delegating column movement and character
// writes to that row.
//
// Both types saturate rather than fail: writes past the last slot
// overwrite it, row advance stops at the last row, and out-of-range moves
// are ignored. None of the operations return errors.
package textbuf
