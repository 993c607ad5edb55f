package layout

import (
	"testing"

	"throbber/pkg/gui/buffer"
	"throbber/pkg/gui/components"
	"throbber/pkg/symbols"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestGridCellsMatchConfiguredColumns(t *testing.T) {
	layout := NewLayout(82, 10, 4, 10)

	if got := layout.Rows(); got != 3 {
		t.Fatalf("rows = %d want 3", got)
	}

	first, _ := layout.Cell(0)
	if first != (buffer.Rect{X: HorizontalMargin, Y: TitleRows, Width: 20, Height: 1}) {
		t.Fatalf("first cell = %+v", first)
	}

	fifth, _ := layout.Cell(4)
	if fifth.X != HorizontalMargin || fifth.Y != TitleRows+1 {
		t.Fatalf("fifth cell = %+v want start of second row", fifth)
	}

	last, _ := layout.Cell(9)
	if last.X != HorizontalMargin+20 || last.Y != TitleRows+2 {
		t.Fatalf("last cell = %+v", last)
	}

	if _, ok := layout.Cell(10); ok {
		t.Fatalf("expected cell 10 to be out of range")
	}
}

func TestRowsBelowFooterHaveZeroHeight(t *testing.T) {
	layout := NewLayout(40, 4, 2, 8)

	if got := layout.VisibleRows(); got != 2 {
		t.Fatalf("visible rows = %d want 2", got)
	}
	for i, cell := range layout.Cells() {
		wantHeight := 1
		if i >= 4 {
			wantHeight = 0
		}
		if cell.Height != wantHeight {
			t.Fatalf("cell %d height = %d want %d", i, cell.Height, wantHeight)
		}
	}

	footer := layout.Footer()
	if footer.Y != 3 || footer.Height != 1 || footer.Width != 40 {
		t.Fatalf("footer = %+v", footer)
	}
}

func TestTinyTerminal(t *testing.T) {
	layout := NewLayout(1, 0, 0, 3)

	if layout.GetColumns() != DefaultColumns {
		t.Fatalf("columns = %d want %d", layout.GetColumns(), DefaultColumns)
	}
	if !layout.Title().IsEmpty() {
		t.Fatalf("title should be empty, got %+v", layout.Title())
	}
	for i, cell := range layout.Cells() {
		if !cell.IsEmpty() {
			t.Fatalf("cell %d should be empty, got %+v", i, cell)
		}
	}
}

func TestRenderedGridMatchesScreenSize(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	layout := NewLayout(60, 8, 3, len(symbols.Catalog))
	buf := buffer.New(layout.Screen())

	components.New().Label("title").Render(layout.Title(), buf)
	for i, cell := range layout.Cells() {
		state := components.NewState(nil)
		components.New().ThrobberSet(symbols.Catalog[i].Set).Label(symbols.Catalog[i].Name).
			RenderStateful(cell, buf, state)
	}

	view := buf.Render()
	if got := lipgloss.Height(view); got != layout.GetHeight() {
		t.Fatalf("view height = %d want %d", got, layout.GetHeight())
	}
	if got := lipgloss.Width(view); got != layout.GetWidth() {
		t.Fatalf("view width = %d want %d", got, layout.GetWidth())
	}

	layout.Update(30, 8)
	layout.SetColumns(2)
	if cell, _ := layout.Cell(1); cell.Width != 14 {
		t.Fatalf("cell width after resize = %d want 14", cell.Width)
	}
}

func TestFooterRowsShrinkTheGrid(t *testing.T) {
	layout := NewLayout(40, 10, 2, 12)
	layout.SetFooterRows(4)

	if got := layout.VisibleRows(); got != 5 {
		t.Fatalf("visible rows = %d want 5", got)
	}
	if body := layout.Body(); body.Height != 6 {
		t.Fatalf("body height = %d want 6", body.Height)
	}
	if footer := layout.Footer(); footer.Y != 6 || footer.Height != 4 {
		t.Fatalf("footer = %+v", footer)
	}
	if cell, _ := layout.Cell(10); cell.Height != 0 {
		t.Fatalf("cell 10 should be hidden behind the footer, got %+v", cell)
	}
}
