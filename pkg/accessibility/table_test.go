package accessibility_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	a11ytest "github.com/go-drift/accessbridge/pkg/testing"
)

type grid struct {
	accessibility.TableAdapter
	cells    [][]*accessibility.Node
	caption  *accessibility.Node
	headers  []*accessibility.Node
	selected []int
}

func (g *grid) GetCell(e *accessibility.TableEvent) {
	if e.Row >= 0 && e.Row < len(g.cells) && e.Column >= 0 && e.Column < len(g.cells[e.Row]) {
		e.Cell = g.cells[e.Row][e.Column]
	}
}

func (g *grid) GetRowCount(e *accessibility.TableEvent)    { e.Count = len(g.cells) }
func (g *grid) GetColumnCount(e *accessibility.TableEvent) { e.Count = len(g.cells[0]) }
func (g *grid) GetCaption(e *accessibility.TableEvent)     { e.Cell = g.caption }

func (g *grid) GetColumnHeaderCells(e *accessibility.TableEvent) { e.Cells = g.headers }
func (g *grid) GetSelectedRows(e *accessibility.TableEvent)      { e.Indices = g.selected }

func (g *grid) GetRowDescription(e *accessibility.TableEvent) {
	e.Result = fmt.Sprintf("row %d", e.Row)
}

func (g *grid) IsRowSelected(e *accessibility.TableEvent) {
	e.Selected = slices.Contains(g.selected, e.Row)
}

func (g *grid) SelectRow(e *accessibility.TableEvent) {
	g.selected = append(g.selected, e.Row)
	e.Result = accessibility.OK
}

type cellInfo struct {
	accessibility.TableCellAdapter
	table    *accessibility.Node
	row, col int
	rowSpan  int
}

func (c *cellInfo) GetRowIndex(e *accessibility.TableCellEvent)    { e.Index = c.row }
func (c *cellInfo) GetColumnIndex(e *accessibility.TableCellEvent) { e.Index = c.col }
func (c *cellInfo) GetTable(e *accessibility.TableCellEvent)       { e.Table = c.table }

func (c *cellInfo) GetRowSpan(e *accessibility.TableCellEvent) {
	if c.rowSpan > 0 {
		e.Count = c.rowSpan
	}
}

// newGrid builds a 2x2 table whose cells are its first four children,
// followed by a caption and two column headers.
func newGrid(t *testing.T) (*a11ytest.Harness, *accessibility.Node, *grid) {
	t.Helper()
	h := a11ytest.NewHarnessWithT(t)
	table := h.Node(h.Widget("Table"))
	g := &grid{}
	for r := 0; r < 2; r++ {
		var row []*accessibility.Node
		for c := 0; c < 2; c++ {
			cell := h.SubNode(table)
			info := &cellInfo{table: table, row: r, col: c}
			if r == 0 && c == 0 {
				info.rowSpan = 2
			}
			require.NoError(t, cell.AddTableCellListener(info))
			row = append(row, cell)
		}
		g.cells = append(g.cells, row)
	}
	g.caption = h.SubNode(table)
	g.headers = []*accessibility.Node{h.SubNode(table), h.SubNode(table)}
	require.NoError(t, table.AddTableListener(g))
	return h, table, g
}

func TestTableCells(t *testing.T) {
	h, table, g := newGrid(t)
	b := h.Bridge
	handle := h.Handle(table)

	assert.Equal(t, 2, b.RowCount(handle))
	assert.Equal(t, 2, b.ColumnCount(handle))

	cell := b.RefAt(handle, 1, 0)
	assert.Equal(t, h.Handle(g.cells[1][0]), cell)
	require.NoError(t, b.Unref(cell))
	assert.Equal(t, accessibility.NoHandle, b.RefAt(handle, 5, 5))

	assert.Equal(t, 2, b.IndexAt(handle, 1, 0))
	assert.Equal(t, -1, b.IndexAt(handle, 5, 5))
	assert.Equal(t, 1, b.RowAtIndex(handle, 3))
	assert.Equal(t, 1, b.ColumnAtIndex(handle, 3))
	assert.Equal(t, -1, b.RowAtIndex(handle, 4), "the caption is not a cell")

	assert.Equal(t, 2, b.RowExtentAt(handle, 0, 0))
	assert.Equal(t, 1, b.ColumnExtentAt(handle, 0, 0))
}

func TestTableCaptionAndHeaders(t *testing.T) {
	h, table, g := newGrid(t)
	b := h.Bridge
	handle := h.Handle(table)

	assert.Equal(t, h.Handle(g.caption), b.Caption(handle))
	assert.Equal(t, accessibility.NoHandle, b.Summary(handle))
	assert.Equal(t, "row 1", b.RowDescription(handle, 1))
	assert.Equal(t, "", b.ColumnDescription(handle, 1))

	header := b.RefColumnHeader(handle, 1)
	assert.Equal(t, h.Handle(g.headers[1]), header)
	require.NoError(t, b.Unref(header))
	assert.Equal(t, accessibility.NoHandle, b.RefRowHeader(handle, 0))
}

func TestTableSelection(t *testing.T) {
	h, table, _ := newGrid(t)
	b := h.Bridge
	handle := h.Handle(table)

	assert.Empty(t, b.SelectedRows(handle))
	assert.True(t, b.AddRowSelection(handle, 1))
	assert.Equal(t, []int{1}, b.SelectedRows(handle))
	assert.True(t, b.IsRowSelected(handle, 1))
	assert.False(t, b.IsRowSelected(handle, 0))
	assert.False(t, b.RemoveRowSelection(handle, 1), "the listener does not deselect")
	assert.False(t, b.IsColumnSelected(handle, 0))
	assert.False(t, b.IsCellSelected(handle, 1, 1))
}

func TestCellKnowsItsTable(t *testing.T) {
	h, table, g := newGrid(t)
	cell := h.Handle(g.cells[1][0])

	assert.Equal(t, h.Handle(table), h.Bridge.CellTable(cell))
	row, col := h.Bridge.CellPosition(cell)
	assert.Equal(t, 1, row)
	assert.Equal(t, 0, col)

	row, col = h.Bridge.CellPosition(h.Handle(g.caption))
	assert.Equal(t, -1, row)
	assert.Equal(t, -1, col)
}

type linkText struct {
	textSource
	link *accessibility.Node
}

func (l *linkText) GetHyperlinkCount(e *accessibility.TextExtendedEvent) { e.Count = 1 }

func (l *linkText) GetHyperlink(e *accessibility.TextExtendedEvent) {
	if e.Index == 0 {
		e.Link = l.link
	}
}

func (l *linkText) GetHyperlinkIndex(e *accessibility.TextExtendedEvent) {
	if e.Offset >= 6 && e.Offset < 11 {
		e.Index = 0
	}
}

type anchor struct {
	accessibility.HyperlinkAdapter
}

func (anchor) GetAnchorTarget(e *accessibility.HyperlinkEvent) { e.Result = "https://example.com/world" }
func (anchor) GetAnchor(e *accessibility.HyperlinkEvent)       { e.Result = "world" }
func (anchor) GetStartIndex(e *accessibility.HyperlinkEvent)   { e.Index = 6 }
func (anchor) GetEndIndex(e *accessibility.HyperlinkEvent)     { e.Index = 11 }

func TestHypertext(t *testing.T) {
	h := a11ytest.NewHarnessWithT(t)
	doc := h.Node(h.Widget("Browser"))
	link := h.SubNode(doc)
	require.NoError(t, link.AddHyperlinkListener(anchor{}))
	require.NoError(t, doc.AddTextExtendedListener(&linkText{textSource: textSource{text: sample}, link: link}))
	b := h.Bridge
	handle := h.Handle(doc)

	assert.Equal(t, 1, b.LinkCount(handle))
	ref := b.RefLink(handle, 0)
	assert.Equal(t, h.Handle(link), ref)
	require.NoError(t, b.Unref(ref))
	assert.Equal(t, accessibility.NoHandle, b.RefLink(handle, 1))
	assert.Equal(t, 0, b.LinkIndex(handle, 7))
	assert.Equal(t, -1, b.LinkIndex(handle, 2))

	lh := h.Handle(link)
	assert.Equal(t, "https://example.com/world", b.LinkURI(lh, 0))
	assert.Equal(t, "world", b.LinkAnchor(lh, 0))
	assert.Equal(t, 6, b.LinkStartIndex(lh))
	assert.Equal(t, 11, b.LinkEndIndex(lh))
	assert.Equal(t, -1, b.LinkStartIndex(handle))
}
