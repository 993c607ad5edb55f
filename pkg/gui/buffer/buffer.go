package buffer

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Cell is one character position of a Buffer.
type Cell struct {
	Symbol string
	Style  lipgloss.Style
}

func blankCell() Cell {
	return Cell{Symbol: " ", Style: lipgloss.NewStyle()}
}

// Buffer is a grid of cells covering area.
type Buffer struct {
	area  Rect
	cells []Cell
}

// New creates a buffer filled with blank, unstyled cells.
func New(area Rect) *Buffer {
	area = NewRect(area.X, area.Y, area.Width, area.Height)
	cells := make([]Cell, area.Area())
	for i := range cells {
		cells[i] = blankCell()
	}
	return &Buffer{area: area, cells: cells}
}

// Area returns the region covered by the buffer.
func (b *Buffer) Area() Rect {
	return b.area
}

func (b *Buffer) index(x, y int) (int, bool) {
	if !b.area.Contains(x, y) {
		return 0, false
	}
	return (y-b.area.Y)*b.area.Width + (x - b.area.X), true
}

// Cell returns the cell at (x, y).
func (b *Buffer) Cell(x, y int) (Cell, bool) {
	i, ok := b.index(x, y)
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// SetStyle patches the style of every cell in area. Properties set on style
// replace the cell's; properties style leaves unset are kept.
func (b *Buffer) SetStyle(area Rect, style lipgloss.Style) {
	area = area.Intersect(b.area)
	for y := area.Top(); y < area.Bottom(); y++ {
		for x := area.Left(); x < area.Right(); x++ {
			i, _ := b.index(x, y)
			b.cells[i].Style = style.Inherit(b.cells[i].Style)
		}
	}
}

// SetString writes s starting at (x, y), using at most maxWidth cells and
// never writing past the buffer's right edge. Glyphs that would not fit
// whole are dropped. It returns the position right after the last written
// cell.
func (b *Buffer) SetString(x, y int, s string, style lipgloss.Style, maxWidth int) (int, int) {
	if _, ok := b.index(x, y); !ok {
		return x, y
	}
	limit := min(x+max(maxWidth, 0), b.area.Right())

	col := x
	last := -1
	for _, r := range s {
		// Control characters would break the row apart.
		if unicode.IsControl(r) {
			continue
		}
		w := RuneWidth(r)
		if w == 0 {
			// Combining marks join the previous glyph.
			if last >= 0 {
				b.cells[last].Symbol += string(r)
			}
			continue
		}
		if col+w > limit {
			break
		}
		b.splitWide(col, y)
		b.splitWide(col+w, y)
		i, _ := b.index(col, y)
		b.cells[i] = Cell{Symbol: string(r), Style: style.Inherit(b.cells[i].Style)}
		for k := 1; k < w; k++ {
			b.cells[i+k] = Cell{Symbol: "", Style: b.cells[i].Style}
		}
		last = i
		col += w
	}
	return col, y
}

// splitWide blanks both halves of a wide glyph whose trailing half sits at
// (x, y), so a partial overwrite never leaves half a glyph behind.
func (b *Buffer) splitWide(x, y int) {
	i, ok := b.index(x, y)
	if !ok || b.cells[i].Symbol != "" {
		return
	}
	b.cells[i].Symbol = " "
	if lead, ok := b.index(x-1, y); ok {
		b.cells[lead].Symbol = " "
	}
}

// SetSpan writes span at (x, y) using at most maxWidth cells.
func (b *Buffer) SetSpan(x, y int, span Span, maxWidth int) (int, int) {
	return b.SetString(x, y, span.Content, span.Style, maxWidth)
}

// Lines returns the unstyled content of each row.
func (b *Buffer) Lines() []string {
	lines := make([]string, 0, b.area.Height)
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		var line strings.Builder
		for x := b.area.Left(); x < b.area.Right(); x++ {
			i, _ := b.index(x, y)
			line.WriteString(b.cells[i].Symbol)
		}
		lines = append(lines, line.String())
	}
	return lines
}

// String returns the unstyled content, one line per row.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}

// Render returns the content with every cell rendered through its style.
func (b *Buffer) Render() string {
	rows := make([]string, 0, b.area.Height)
	for y := b.area.Top(); y < b.area.Bottom(); y++ {
		var row strings.Builder
		for x := b.area.Left(); x < b.area.Right(); x++ {
			i, _ := b.index(x, y)
			cell := b.cells[i]
			if cell.Symbol == "" {
				continue
			}
			row.WriteString(cell.Style.Render(cell.Symbol))
		}
		rows = append(rows, row.String())
	}
	return strings.Join(rows, "\n")
}
