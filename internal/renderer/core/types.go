// Package core provides shared types for the renderer subsystem.
// This package breaks import cycles between the backend and region packages.
package core

// Attribute represents text attributes (bold, reverse, etc.).
type Attribute uint16

// Text attribute flags.
const (
	AttrNone      Attribute = 0
	AttrBold      Attribute = 1 << iota
	AttrDim                 // Faint/dim text
	AttrUnderline           // Underlined text
	AttrReverse             // Reverse video (swap fg/bg)
)

// Has returns true if the attribute set contains the given attribute.
func (a Attribute) Has(attr Attribute) bool {
	return a&attr != 0
}

// With returns a new attribute set with the given attribute added.
func (a Attribute) With(attr Attribute) Attribute {
	return a | attr
}

// Without returns a new attribute set with the given attribute removed.
func (a Attribute) Without(attr Attribute) Attribute {
	return a &^ attr
}

// Style is the visual style of a cell. Colors are left to the terminal
// defaults; only attributes are carried.
type Style struct {
	Attributes Attribute
}

// DefaultStyle returns the default terminal style.
func DefaultStyle() Style {
	return Style{}
}

// Reverse returns a new style with reverse video added.
func (s Style) Reverse() Style {
	s.Attributes = s.Attributes.With(AttrReverse)
	return s
}

// Bold returns a new style with bold added.
func (s Style) Bold() Style {
	s.Attributes = s.Attributes.With(AttrBold)
	return s
}

// Equals returns true if two styles are identical.
func (s Style) Equals(other Style) bool {
	return s.Attributes == other.Attributes
}

// Cell represents a single terminal cell.
type Cell struct {
	// Rune is the character to display.
	Rune rune

	// Style is the visual style for this cell.
	Style Style
}

// EmptyCell returns a blank cell with default style.
func EmptyCell() Cell {
	return Cell{Rune: ' '}
}

// NewCell creates a cell with the given rune and default style.
func NewCell(r rune) Cell {
	return Cell{Rune: r}
}

// NewStyledCell creates a cell with the given rune and style.
func NewStyledCell(r rune, style Style) Cell {
	return Cell{Rune: r, Style: style}
}

// IsEmpty returns true if this is a blank cell.
func (c Cell) IsEmpty() bool {
	return c.Rune == ' ' || c.Rune == 0
}

// Equals returns true if two cells are identical.
func (c Cell) Equals(other Cell) bool {
	return c.Rune == other.Rune && c.Style.Equals(other.Style)
}

// ScreenPos represents a position on screen (0-indexed).
type ScreenPos struct {
	Row int
	Col int
}

// NewScreenPos creates a screen position.
func NewScreenPos(row, col int) ScreenPos {
	return ScreenPos{Row: row, Col: col}
}

// Add returns a new position offset by the given delta.
func (p ScreenPos) Add(dRow, dCol int) ScreenPos {
	return ScreenPos{Row: p.Row + dRow, Col: p.Col + dCol}
}

// ScreenRect represents a rectangular region on screen.
type ScreenRect struct {
	Top    int // First row (inclusive)
	Left   int // First column (inclusive)
	Bottom int // Last row (exclusive)
	Right  int // Last column (exclusive)
}

// RectFromSize creates a rectangle from position and size.
func RectFromSize(top, left, height, width int) ScreenRect {
	return ScreenRect{Top: top, Left: left, Bottom: top + height, Right: left + width}
}

// Width returns the width of the rectangle.
func (r ScreenRect) Width() int {
	if r.Right <= r.Left {
		return 0
	}
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r ScreenRect) Height() int {
	if r.Bottom <= r.Top {
		return 0
	}
	return r.Bottom - r.Top
}

// IsEmpty returns true if the rectangle has no area.
func (r ScreenRect) IsEmpty() bool {
	return r.Width() <= 0 || r.Height() <= 0
}

// Contains returns true if pos is within the rectangle.
func (r ScreenRect) Contains(pos ScreenPos) bool {
	return pos.Row >= r.Top && pos.Row < r.Bottom &&
		pos.Col >= r.Left && pos.Col < r.Right
}

// ContainsRect returns true if other is entirely within r.
func (r ScreenRect) ContainsRect(other ScreenRect) bool {
	return other.Top >= r.Top && other.Bottom <= r.Bottom &&
		other.Left >= r.Left && other.Right <= r.Right
}

// Translate returns the rectangle shifted by the given offsets.
func (r ScreenRect) Translate(dRow, dCol int) ScreenRect {
	return ScreenRect{
		Top:    r.Top + dRow,
		Left:   r.Left + dCol,
		Bottom: r.Bottom + dRow,
		Right:  r.Right + dCol,
	}
}
