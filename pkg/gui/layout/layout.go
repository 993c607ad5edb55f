package layout

import (
	"throbber/pkg/gui/buffer"
)

const (
	TitleRows        = 1
	FooterRows       = 1
	HorizontalMargin = 1
	DefaultColumns   = 4
)

// Layout splits the screen into a title row, a grid of one-row throbber
// cells and a footer row.
type Layout struct {
	width      int
	height     int
	columns    int
	count      int
	footerRows int

	title  buffer.Rect
	footer buffer.Rect
	cells  []buffer.Rect
}

// NewLayout creates a layout for count cells laid out in the given number of
// columns. Columns below one fall back to DefaultColumns.
func NewLayout(width, height, columns, count int) *Layout {
	l := &Layout{
		width:      width,
		height:     height,
		columns:    normalizeColumns(columns),
		count:      max(count, 0),
		footerRows: FooterRows,
	}
	l.calculate()
	return l
}

func normalizeColumns(columns int) int {
	if columns < 1 {
		return DefaultColumns
	}
	return columns
}

// Update recalculates the layout for new terminal dimensions
func (l *Layout) Update(width, height int) {
	l.width = width
	l.height = height
	l.calculate()
}

// SetColumns changes the number of grid columns.
func (l *Layout) SetColumns(columns int) {
	l.columns = normalizeColumns(columns)
	l.calculate()
}

// SetFooterRows reserves rows at the bottom for the footer.
func (l *Layout) SetFooterRows(rows int) {
	l.footerRows = max(rows, 0)
	l.calculate()
}

// calculate computes every rect from the terminal size
func (l *Layout) calculate() {
	width := max(l.width, 0)
	height := max(l.height, 0)

	usableWidth := max(width-HorizontalMargin*2, 0)
	columnWidth := usableWidth / l.columns

	// Rows that do not fit above the footer get zero height and render nothing.
	gridBottom := max(height-l.footerRows, 0)

	l.title = buffer.NewRect(HorizontalMargin, 0, usableWidth, min(TitleRows, gridBottom))

	l.cells = make([]buffer.Rect, l.count)
	for i := range l.cells {
		row := i / l.columns
		col := i % l.columns
		y := TitleRows + row
		h := 1
		if y >= gridBottom {
			h = 0
		}
		l.cells[i] = buffer.NewRect(HorizontalMargin+col*columnWidth, y, columnWidth, h)
	}

	l.footer = buffer.NewRect(0, gridBottom, width, min(l.footerRows, height))
}

// Title returns the rect of the title row.
func (l *Layout) Title() buffer.Rect {
	return l.title
}

// Footer returns the rect of the footer row.
func (l *Layout) Footer() buffer.Rect {
	return l.footer
}

// Cell returns the rect of grid cell i.
func (l *Layout) Cell(i int) (buffer.Rect, bool) {
	if i < 0 || i >= len(l.cells) {
		return buffer.Rect{}, false
	}
	return l.cells[i], true
}

// Cells returns every grid cell in order.
func (l *Layout) Cells() []buffer.Rect {
	return l.cells
}

// Rows returns the number of grid rows needed for all cells.
func (l *Layout) Rows() int {
	return (l.count + l.columns - 1) / l.columns
}

// VisibleRows returns how many grid rows fit above the footer.
func (l *Layout) VisibleRows() int {
	return min(l.Rows(), max(l.height-l.footerRows-TitleRows, 0))
}

// Screen returns the rect covering the whole terminal.
func (l *Layout) Screen() buffer.Rect {
	return buffer.NewRect(0, 0, l.width, l.height)
}

// Body returns the rect above the footer.
func (l *Layout) Body() buffer.Rect {
	return buffer.NewRect(0, 0, l.width, l.footer.Y)
}

// GetWidth returns the layout width
func (l *Layout) GetWidth() int {
	return l.width
}

// GetHeight returns the layout height
func (l *Layout) GetHeight() int {
	return l.height
}

// GetColumns returns the number of grid columns
func (l *Layout) GetColumns() int {
	return l.columns
}
