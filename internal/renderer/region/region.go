package region

import (
	"fmt"

	"github.com/dshills/termwin/internal/input/key"
	"github.com/dshills/termwin/internal/input/mouse"
	"github.com/dshills/termwin/internal/renderer/core"
)

// Border runes drawn by Box.
const (
	borderHorizontal  = '─'
	borderVertical    = '│'
	borderTopLeft     = '┌'
	borderTopRight    = '┐'
	borderBottomLeft  = '└'
	borderBottomRight = '┘'
)

// Region is a rectangular drawing area with its own cursor.
//
// A top-level region owns its cells. A derived region is a view into its
// parent's cells at a fixed offset, so drawing into either is visible
// through both.
type Region struct {
	term   *Terminal
	parent *Region

	// cells is only allocated on top-level regions; derived regions
	// resolve to their root.
	cells [][]core.Cell

	// y, x is the origin: screen-relative for top-level regions,
	// parent-relative for derived ones.
	y, x int
	h, w int

	cy, cx  int
	style   core.Style
	changed []bool

	deleted bool
}

func newRoot(t *Terminal, h, w, y, x int) *Region {
	r := &Region{
		term:    t,
		y:       y,
		x:       x,
		h:       h,
		w:       w,
		changed: make([]bool, h),
	}
	r.cells = make([][]core.Cell, h)
	for i := range r.cells {
		row := make([]core.Cell, w)
		for j := range row {
			row[j] = core.EmptyCell()
		}
		r.cells[i] = row
	}
	return r
}

// NewRegion creates a top-level region of h rows and w columns with its
// top-left corner at screen cell (y, x). The region must fit on screen.
func (t *Terminal) NewRegion(h, w, y, x int) (*Region, error) {
	if h <= 0 || w <= 0 || y < 0 || x < 0 || y+h > t.height || x+w > t.width {
		return nil, fmt.Errorf("new %dx%d at (%d,%d) on %dx%d screen: %w",
			h, w, y, x, t.height, t.width, ErrOutOfBounds)
	}
	return newRoot(t, h, w, y, x), nil
}

// Derive creates a region of h rows and w columns at (y, x) relative to
// parent. The child must lie entirely inside its parent.
func Derive(parent *Region, h, w, y, x int) (*Region, error) {
	if parent == nil || parent.deleted {
		return nil, ErrInvalidParent
	}
	if h <= 0 || w <= 0 || y < 0 || x < 0 || y+h > parent.h || x+w > parent.w {
		return nil, fmt.Errorf("derive %dx%d at (%d,%d) in %dx%d parent: %w",
			h, w, y, x, parent.h, parent.w, ErrOutOfBounds)
	}
	return &Region{
		term:    parent.term,
		parent:  parent,
		y:       y,
		x:       x,
		h:       h,
		w:       w,
		changed: make([]bool, h),
	}, nil
}

// Size returns the region's dimensions.
func (r *Region) Size() (h, w int) {
	return r.h, r.w
}

// Origin returns the region's origin as given at creation (or by MoveTo).
func (r *Region) Origin() (y, x int) {
	return r.y, r.x
}

// Parent returns the parent of a derived region, or nil.
func (r *Region) Parent() *Region {
	return r.parent
}

// Bounds returns the region's rectangle in screen coordinates.
func (r *Region) Bounds() core.ScreenRect {
	y, x := r.absOrigin()
	return core.RectFromSize(y, x, r.h, r.w)
}

func (r *Region) absOrigin() (y, x int) {
	for cur := r; cur != nil; cur = cur.parent {
		y += cur.y
		x += cur.x
	}
	return y, x
}

// rootOffset returns the root region and the offset of r inside it.
func (r *Region) rootOffset() (*Region, int, int) {
	root, oy, ox := r, 0, 0
	for root.parent != nil {
		oy += root.y
		ox += root.x
		root = root.parent
	}
	return root, oy, ox
}

func (r *Region) cell(y, x int) core.Cell {
	root, oy, ox := r.rootOffset()
	return root.cells[oy+y][ox+x]
}

func (r *Region) setCell(y, x int, c core.Cell) {
	root, oy, ox := r.rootOffset()
	root.cells[oy+y][ox+x] = c
	r.changed[y] = true
}

// CellAt returns the cell at region-relative (y, x). Out-of-range
// coordinates return an empty cell.
func (r *Region) CellAt(y, x int) core.Cell {
	if !r.inside(y, x) {
		return core.EmptyCell()
	}
	return r.cell(y, x)
}

// Line returns row y as a string, for inspection in tests and logs.
func (r *Region) Line(y int) string {
	if y < 0 || y >= r.h {
		return ""
	}
	runes := make([]rune, r.w)
	for x := 0; x < r.w; x++ {
		runes[x] = r.cell(y, x).Rune
	}
	return string(runes)
}

func (r *Region) inside(y, x int) bool {
	return y >= 0 && y < r.h && x >= 0 && x < r.w
}

// SetStyle sets the style applied to subsequently drawn characters.
func (r *Region) SetStyle(style core.Style) {
	r.style = style
}

// Move places the region's cursor at (y, x).
func (r *Region) Move(y, x int) error {
	if !r.inside(y, x) {
		return ErrOutOfBounds
	}
	r.cy, r.cx = y, x
	return nil
}

// Cursor returns the region's cursor position.
func (r *Region) Cursor() (y, x int) {
	return r.cy, r.cx
}

// AddChar writes c at the cursor and advances it, wrapping to the start of
// the next row at the right edge. A line feed clears the rest of the row
// and moves to the start of the next one; a backspace moves left. Other
// control characters are shown in caret form (^A). The cursor never moves
// below the last row. It returns ErrOutOfBounds if the write could not be
// completed.
func (r *Region) AddChar(c rune) error {
	if r.deleted {
		return ErrDeleted
	}
	switch {
	case c == '\n':
		for x := r.cx; x < r.w; x++ {
			r.setCell(r.cy, x, core.EmptyCell())
		}
		return r.newline()
	case c == '\b':
		if r.cx > 0 {
			r.cx--
		}
		return nil
	case c < ' ':
		if err := r.put('^'); err != nil {
			return err
		}
		return r.put(c + '@')
	case c == 127:
		if err := r.put('^'); err != nil {
			return err
		}
		return r.put('?')
	}
	return r.put(c)
}

func (r *Region) put(c rune) error {
	r.setCell(r.cy, r.cx, core.NewStyledCell(c, r.style))
	r.cx++
	if r.cx >= r.w {
		return r.newline()
	}
	return nil
}

func (r *Region) newline() error {
	r.cx = 0
	if r.cy+1 >= r.h {
		// no scrolling: stay on the last row
		r.cx = r.w - 1
		return ErrOutOfBounds
	}
	r.cy++
	return nil
}

// PrintAt moves the cursor to (y, x) and writes s there with AddChar
// semantics. Writing stops at the bottom-right cell.
func (r *Region) PrintAt(y, x int, s string) error {
	if err := r.Move(y, x); err != nil {
		return err
	}
	return r.Print(s)
}

// Print writes s at the cursor with AddChar semantics.
func (r *Region) Print(s string) error {
	for _, c := range s {
		if err := r.AddChar(c); err != nil {
			return err
		}
	}
	return nil
}

// Box draws a single-line border around the edge of the region in the
// given style. The cursor is not moved.
func (r *Region) Box(style core.Style) {
	if r.deleted || r.h < 2 || r.w < 2 {
		return
	}
	last, right := r.h-1, r.w-1
	for x := 1; x < right; x++ {
		r.setCell(0, x, core.NewStyledCell(borderHorizontal, style))
		r.setCell(last, x, core.NewStyledCell(borderHorizontal, style))
	}
	for y := 1; y < last; y++ {
		r.setCell(y, 0, core.NewStyledCell(borderVertical, style))
		r.setCell(y, right, core.NewStyledCell(borderVertical, style))
	}
	r.setCell(0, 0, core.NewStyledCell(borderTopLeft, style))
	r.setCell(0, right, core.NewStyledCell(borderTopRight, style))
	r.setCell(last, 0, core.NewStyledCell(borderBottomLeft, style))
	r.setCell(last, right, core.NewStyledCell(borderBottomRight, style))
}

// Clear blanks the region, homes the cursor and marks every row changed.
func (r *Region) Clear() {
	if r.deleted {
		return
	}
	for y := 0; y < r.h; y++ {
		for x := 0; x < r.w; x++ {
			r.setCell(y, x, core.EmptyCell())
		}
	}
	r.cy, r.cx = 0, 0
}

// Touch marks every row changed so the next Refresh repaints the whole
// region.
func (r *Region) Touch() {
	for i := range r.changed {
		r.changed[i] = true
	}
}

// Touched reports whether any row is waiting to be refreshed.
func (r *Region) Touched() bool {
	for _, c := range r.changed {
		if c {
			return true
		}
	}
	return false
}

// Refresh copies changed rows to the backend, places the hardware cursor
// at the region's cursor (or hides it) and shows the result.
func (r *Region) Refresh() {
	if r.deleted {
		return
	}
	be := r.term.backend
	ay, ax := r.absOrigin()
	for y, changed := range r.changed {
		if !changed {
			continue
		}
		for x := 0; x < r.w; x++ {
			be.SetCell(ax+x, ay+y, r.cell(y, x))
		}
		r.changed[y] = false
	}
	if r.term.cursor == CursorInvisible {
		be.HideCursor()
	} else {
		be.ShowCursor(ax+r.cx, ay+r.cy)
	}
	be.Show()
}

// MoveTo moves a top-level region so its top-left corner is at screen cell
// (y, x). The whole region is repainted at the next Refresh.
func (r *Region) MoveTo(y, x int) error {
	if r.parent != nil {
		return ErrDerivedMove
	}
	if y < 0 || x < 0 || y+r.h > r.term.height || x+r.w > r.term.width {
		return ErrOutOfBounds
	}
	r.y, r.x = y, x
	r.Touch()
	return nil
}

// Enclose reports whether screen cell (y, x) lies within the region.
func (r *Region) Enclose(y, x int) bool {
	return r.Bounds().Contains(core.NewScreenPos(y, x))
}

// ReadToken reads one input token without blocking.
func (r *Region) ReadToken() key.Code {
	return r.term.ReadToken()
}

// GetMouse returns the mouse event behind the last key.Mouse token.
func (r *Region) GetMouse() (mouse.Event, bool) {
	return r.term.GetMouse()
}

// Delete releases the region. Further drawing is ignored.
func (r *Region) Delete() {
	if r.deleted {
		return
	}
	r.deleted = true
}

// Deleted reports whether Delete has been called.
func (r *Region) Deleted() bool {
	return r.deleted
}
