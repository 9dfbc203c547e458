package accessibility

func (b *Bridge) table(p *Proxy, op string, e *TableEvent, call func(TableListener, *TableEvent)) bool {
	e.Node = p.node
	e.ChildID = p.childID
	return notify(op, p.node.listeners.table.snapshot(), e, call)
}

// cellAt asks the table aspect for the cell node at row, column.
func (b *Bridge) cellAt(p *Proxy, row, column int) *Node {
	e := &TableEvent{Row: row, Column: column}
	if !b.table(p, "GetCell", e, TableListener.GetCell) || e.Cell == nil || e.Cell.disposed {
		return nil
	}
	return e.Cell
}

// cell queries the table-cell aspect of a cell node.
func (b *Bridge) cell(n *Node, op string, e *TableCellEvent, call func(TableCellListener, *TableCellEvent)) bool {
	e.Node = n
	return notify(op, n.listeners.tableCell.snapshot(), e, call)
}

func (b *Bridge) borrowed(n *Node) Handle {
	if n == nil || n.disposed {
		return NoHandle
	}
	return b.proxyFor(n).handle
}

// RefAt returns a retained handle to the cell at row, column.
func (b *Bridge) RefAt(h Handle, row, column int) Handle {
	p, ok := b.enter("RefAt", h)
	if !ok {
		return NoHandle
	}
	n := b.cellAt(p, row, column)
	if n == nil {
		return NoHandle
	}
	return b.retained(b.proxyFor(n))
}

// IndexAt returns the child index of the cell at row, column, or -1.
func (b *Bridge) IndexAt(h Handle, row, column int) int {
	p, ok := b.enter("IndexAt", h)
	if !ok {
		return -1
	}
	n := b.cellAt(p, row, column)
	if n == nil {
		return -1
	}
	b.updateChildren(p)
	for i, c := range p.children {
		if !c.lightweight && c.node == n {
			return i
		}
	}
	return -1
}

func (b *Bridge) cellIndex(op string, h Handle, index int, call func(TableCellListener, *TableCellEvent)) int {
	p, ok := b.enter(op, h)
	if !ok {
		return -1
	}
	b.updateChildren(p)
	c := b.childByIndex(p, index)
	if c == nil || c.lightweight {
		return -1
	}
	e := &TableCellEvent{Index: -1}
	b.cell(c.node, op, e, call)
	return e.Index
}

// RowAtIndex returns the row of the cell at child index, or -1.
func (b *Bridge) RowAtIndex(h Handle, index int) int {
	return b.cellIndex("RowAtIndex", h, index, TableCellListener.GetRowIndex)
}

// ColumnAtIndex returns the column of the cell at child index, or -1.
func (b *Bridge) ColumnAtIndex(h Handle, index int) int {
	return b.cellIndex("ColumnAtIndex", h, index, TableCellListener.GetColumnIndex)
}

func (b *Bridge) tableCount(op string, h Handle, call func(TableListener, *TableEvent)) int {
	p, ok := b.enter(op, h)
	if !ok {
		return 0
	}
	e := &TableEvent{}
	b.table(p, op, e, call)
	return e.Count
}

// RowCount returns the number of rows.
func (b *Bridge) RowCount(h Handle) int {
	return b.tableCount("RowCount", h, TableListener.GetRowCount)
}

// ColumnCount returns the number of columns.
func (b *Bridge) ColumnCount(h Handle) int {
	return b.tableCount("ColumnCount", h, TableListener.GetColumnCount)
}

func (b *Bridge) span(op string, h Handle, row, column int, call func(TableCellListener, *TableCellEvent)) int {
	p, ok := b.enter(op, h)
	if !ok {
		return 0
	}
	n := b.cellAt(p, row, column)
	if n == nil {
		return 0
	}
	e := &TableCellEvent{Count: 1}
	b.cell(n, op, e, call)
	return e.Count
}

// RowExtentAt returns the number of rows the cell at row, column spans.
func (b *Bridge) RowExtentAt(h Handle, row, column int) int {
	return b.span("RowExtentAt", h, row, column, TableCellListener.GetRowSpan)
}

// ColumnExtentAt returns the number of columns the cell spans.
func (b *Bridge) ColumnExtentAt(h Handle, row, column int) int {
	return b.span("ColumnExtentAt", h, row, column, TableCellListener.GetColumnSpan)
}

// Caption returns the borrowed handle of the caption node.
func (b *Bridge) Caption(h Handle) Handle {
	p, ok := b.enter("Caption", h)
	if !ok {
		return NoHandle
	}
	e := &TableEvent{}
	b.table(p, "Caption", e, TableListener.GetCaption)
	return b.borrowed(e.Cell)
}

// Summary returns the borrowed handle of the summary node.
func (b *Bridge) Summary(h Handle) Handle {
	p, ok := b.enter("Summary", h)
	if !ok {
		return NoHandle
	}
	e := &TableEvent{}
	b.table(p, "Summary", e, TableListener.GetSummary)
	return b.borrowed(e.Cell)
}

// RowDescription describes a row.
func (b *Bridge) RowDescription(h Handle, row int) string {
	p, ok := b.enter("RowDescription", h)
	if !ok {
		return ""
	}
	e := &TableEvent{Row: row}
	b.table(p, "RowDescription", e, TableListener.GetRowDescription)
	return e.Result
}

// ColumnDescription describes a column.
func (b *Bridge) ColumnDescription(h Handle, column int) string {
	p, ok := b.enter("ColumnDescription", h)
	if !ok {
		return ""
	}
	e := &TableEvent{Column: column}
	b.table(p, "ColumnDescription", e, TableListener.GetColumnDescription)
	return e.Result
}

// header resolves a header node: first through the table-cell aspect of
// the first cell in the row or column, then through the table's header
// list.
func (b *Bridge) header(p *Proxy, op string, row, column, pos int,
	cellCall func(TableCellListener, *TableCellEvent), tableCall func(TableListener, *TableEvent)) *Node {
	if n := b.cellAt(p, row, column); n != nil {
		ce := &TableCellEvent{}
		if b.cell(n, op, ce, cellCall) && len(ce.Cells) > 0 {
			return ce.Cells[0]
		}
	}
	te := &TableEvent{}
	if !b.table(p, op, te, tableCall) || pos < 0 || pos >= len(te.Cells) {
		return nil
	}
	return te.Cells[pos]
}

// RefRowHeader returns a retained handle to the header of row.
func (b *Bridge) RefRowHeader(h Handle, row int) Handle {
	p, ok := b.enter("RefRowHeader", h)
	if !ok {
		return NoHandle
	}
	n := b.header(p, "RefRowHeader", row, 0, row, TableCellListener.GetRowHeaders, TableListener.GetRowHeaderCells)
	if n == nil || n.disposed {
		return NoHandle
	}
	return b.retained(b.proxyFor(n))
}

// RefColumnHeader returns a retained handle to the header of column.
func (b *Bridge) RefColumnHeader(h Handle, column int) Handle {
	p, ok := b.enter("RefColumnHeader", h)
	if !ok {
		return NoHandle
	}
	n := b.header(p, "RefColumnHeader", 0, column, column, TableCellListener.GetColumnHeaders, TableListener.GetColumnHeaderCells)
	if n == nil || n.disposed {
		return NoHandle
	}
	return b.retained(b.proxyFor(n))
}

func (b *Bridge) indices(op string, h Handle, call func(TableListener, *TableEvent)) []int {
	p, ok := b.enter(op, h)
	if !ok {
		return nil
	}
	e := &TableEvent{}
	b.table(p, op, e, call)
	return e.Indices
}

// SelectedRows lists the selected rows.
func (b *Bridge) SelectedRows(h Handle) []int {
	return b.indices("SelectedRows", h, TableListener.GetSelectedRows)
}

// SelectedColumns lists the selected columns.
func (b *Bridge) SelectedColumns(h Handle) []int {
	return b.indices("SelectedColumns", h, TableListener.GetSelectedColumns)
}

func (b *Bridge) isSelected(op string, h Handle, e *TableEvent, call func(TableListener, *TableEvent)) bool {
	p, ok := b.enter(op, h)
	if !ok {
		return false
	}
	return b.table(p, op, e, call) && e.Selected
}

// IsRowSelected reports whether row is selected.
func (b *Bridge) IsRowSelected(h Handle, row int) bool {
	return b.isSelected("IsRowSelected", h, &TableEvent{Row: row}, TableListener.IsRowSelected)
}

// IsColumnSelected reports whether column is selected.
func (b *Bridge) IsColumnSelected(h Handle, column int) bool {
	return b.isSelected("IsColumnSelected", h, &TableEvent{Column: column}, TableListener.IsColumnSelected)
}

// IsCellSelected asks the table-cell aspect of the cell at row, column.
func (b *Bridge) IsCellSelected(h Handle, row, column int) bool {
	p, ok := b.enter("IsCellSelected", h)
	if !ok {
		return false
	}
	n := b.cellAt(p, row, column)
	if n == nil {
		return false
	}
	e := &TableCellEvent{}
	return b.cell(n, "IsCellSelected", e, TableCellListener.IsSelected) && e.Selected
}

func (b *Bridge) tableCommand(op string, h Handle, e *TableEvent, call func(TableListener, *TableEvent)) bool {
	p, ok := b.enter(op, h)
	if !ok {
		return false
	}
	return b.table(p, op, e, call) && e.Result == OK
}

// AddRowSelection selects row.
func (b *Bridge) AddRowSelection(h Handle, row int) bool {
	return b.tableCommand("AddRowSelection", h, &TableEvent{Row: row}, TableListener.SelectRow)
}

// RemoveRowSelection deselects row.
func (b *Bridge) RemoveRowSelection(h Handle, row int) bool {
	return b.tableCommand("RemoveRowSelection", h, &TableEvent{Row: row}, TableListener.DeselectRow)
}

// AddColumnSelection selects column.
func (b *Bridge) AddColumnSelection(h Handle, column int) bool {
	return b.tableCommand("AddColumnSelection", h, &TableEvent{Column: column}, TableListener.SelectColumn)
}

// RemoveColumnSelection deselects column.
func (b *Bridge) RemoveColumnSelection(h Handle, column int) bool {
	return b.tableCommand("RemoveColumnSelection", h, &TableEvent{Column: column}, TableListener.DeselectColumn)
}

// CellTable returns the borrowed handle of the table containing the cell
// node h.
func (b *Bridge) CellTable(h Handle) Handle {
	p, ok := b.enter("CellTable", h)
	if !ok {
		return NoHandle
	}
	e := &TableCellEvent{}
	b.cell(p.node, "CellTable", e, TableCellListener.GetTable)
	return b.borrowed(e.Table)
}

// CellPosition returns the row and column of the cell node h, -1 when
// unknown.
func (b *Bridge) CellPosition(h Handle) (row, column int) {
	p, ok := b.enter("CellPosition", h)
	if !ok {
		return -1, -1
	}
	re := &TableCellEvent{Index: -1}
	b.cell(p.node, "CellPosition", re, TableCellListener.GetRowIndex)
	ce := &TableCellEvent{Index: -1}
	b.cell(p.node, "CellPosition", ce, TableCellListener.GetColumnIndex)
	return re.Index, ce.Index
}
