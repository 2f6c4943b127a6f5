package textbuf

// FieldBuffer is a fixed grid of LineBuffers with one active row.
type FieldBuffer struct {
	rows []*LineBuffer
	cols int
	idx  int
}

// NewFieldBuffer creates a field of numRows rows of numCols characters.
// Non-positive sizes are raised to 1.
func NewFieldBuffer(numRows, numCols int) *FieldBuffer {
	if numRows < 1 {
		numRows = 1
	}
	if numCols < 1 {
		numCols = 1
	}
	f := &FieldBuffer{
		rows: make([]*LineBuffer, numRows),
		cols: numCols,
	}
	for i := range f.rows {
		f.rows[i] = NewLineBuffer(numCols)
	}
	return f
}

// Rows returns the number of rows.
func (f *FieldBuffer) Rows() int {
	return len(f.rows)
}

// Cols returns the capacity of each row.
func (f *FieldBuffer) Cols() int {
	return f.cols
}

// Row returns the index of the active row.
func (f *FieldBuffer) Row() int {
	return f.idx
}

// Col returns the insertion index of the active row.
func (f *FieldBuffer) Col() int {
	return f.rows[f.idx].Index()
}

// Line returns row i, or nil when i is out of range.
func (f *FieldBuffer) Line(i int) *LineBuffer {
	if i < 0 || i >= len(f.rows) {
		return nil
	}
	return f.rows[i]
}

// Current returns the active row.
func (f *FieldBuffer) Current() *LineBuffer {
	return f.rows[f.idx]
}

// MoveRow makes row n active if 0 <= n < Rows.
func (f *FieldBuffer) MoveRow(n int) {
	if n >= 0 && n < len(f.rows) {
		f.idx = n
	}
}

// MoveRowRelative moves the active row by offset if the result stays in
// range.
func (f *FieldBuffer) MoveRowRelative(offset int) {
	f.MoveRow(f.idx + offset)
}

// MoveCol moves the active row's insertion index.
func (f *FieldBuffer) MoveCol(n int) {
	f.rows[f.idx].MoveTo(n)
}

// MoveColRelative moves the active row's insertion index by offset.
func (f *FieldBuffer) MoveColRelative(offset int) {
	f.rows[f.idx].MoveRelative(offset)
}

// MoveTo selects row and then moves to col within it. Each part is
// bounds checked on its own.
func (f *FieldBuffer) MoveTo(row, col int) {
	f.MoveRow(row)
	f.MoveCol(col)
}

// MoveRelative applies a row offset and then a column offset.
func (f *FieldBuffer) MoveRelative(dy, dx int) {
	f.MoveRowRelative(dy)
	f.MoveColRelative(dx)
}

// Put writes c into the active row. When that row fills up the next row
// becomes active. It returns false once the last row is full.
func (f *FieldBuffer) Put(c byte) bool {
	if f.rows[f.idx].Put(c) {
		return true
	}
	if f.idx == len(f.rows)-1 {
		return false
	}
	f.Newline()
	return true
}

// Newline advances to the next row, staying on the last row when there is
// no next one.
func (f *FieldBuffer) Newline() {
	if f.idx < len(f.rows)-1 {
		f.idx++
	}
}

// Backspace deletes the character before the insertion index of the
// active row. The row cursor is not moved; backspacing at column 0 does
// not join rows.
func (f *FieldBuffer) Backspace() {
	if f.idx >= len(f.rows) {
		f.idx = len(f.rows) - 1
	}
	f.rows[f.idx].Backspace()
}

// Lines returns the text of every row.
func (f *FieldBuffer) Lines() []string {
	out := make([]string, len(f.rows))
	for i, r := range f.rows {
		out[i] = r.String()
	}
	return out
}

// Reset clears every row and makes row 0 active.
func (f *FieldBuffer) Reset() {
	for i := range f.rows {
		f.rows[i] = NewLineBuffer(f.cols)
	}
	f.idx = 0
}
