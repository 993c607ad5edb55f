// Package buffer provides a character-cell surface that throbbers render into.
//
// A Buffer is a fixed grid of cells, each holding one glyph and a lipgloss
// style. Wide glyphs occupy two cells; the trailing cell is left with an empty
// symbol and skipped when the buffer is turned back into a string.
package buffer

// Rect is a rectangular region of cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// NewRect returns a rect, clamping negative sizes to zero.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: max(width, 0), Height: max(height, 0)}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Right() int  { return r.X + r.Width }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Bottom() int { return r.Y + r.Height }

// Area returns the number of cells in the rect.
func (r Rect) Area() int {
	return r.Width * r.Height
}

// IsEmpty reports whether the rect holds no cells.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left() && x < r.Right() && y >= r.Top() && y < r.Bottom()
}

// Intersect returns the overlap of two rects, or a zero-sized rect.
func (r Rect) Intersect(o Rect) Rect {
	x1 := max(r.Left(), o.Left())
	y1 := max(r.Top(), o.Top())
	x2 := min(r.Right(), o.Right())
	y2 := min(r.Bottom(), o.Bottom())
	if x2 <= x1 || y2 <= y1 {
		return Rect{X: x1, Y: y1}
	}
	return Rect{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}
