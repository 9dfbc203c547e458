package accessibility

// list is an ordered listener collection. Insertion order is invocation
// order; removal drops the first identical entry.
type list[L comparable] struct {
	items []L
}

func (l *list[L]) add(x L) {
	l.items = append(l.items, x)
}

func (l *list[L]) remove(x L) {
	for i, it := range l.items {
		if it == x {
			l.items = append(l.items[:i:i], l.items[i+1:]...)
			return
		}
	}
}

// snapshot returns a copy so listeners may add or remove listeners while
// being invoked.
func (l *list[L]) snapshot() []L {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]L, len(l.items))
	copy(out, l.items)
	return out
}

// registry holds one list per aspect.
type registry struct {
	naming    list[NamingListener]
	control   list[ControlListener]
	text      list[TextListener]
	textExt   list[TextExtendedListener]
	action    list[ActionListener]
	editable  list[EditableTextListener]
	hyperlink list[HyperlinkListener]
	table     list[TableListener]
	tableCell list[TableCellListener]
	value     list[ValueListener]
	attribute list[AttributeListener]
}

// NamingListener supplies names and descriptions.
type NamingListener interface {
	GetName(e *NamingEvent)
	GetHelp(e *NamingEvent)
	GetKeyboardShortcut(e *NamingEvent)
	GetDescription(e *NamingEvent)
}

// ControlListener supplies role, state, geometry, value and children.
type ControlListener interface {
	GetChildAtPoint(e *ControlEvent)
	GetLocation(e *ControlEvent)
	GetChildCount(e *ControlEvent)
	GetChildren(e *ControlEvent)
	GetDefaultAction(e *ControlEvent)
	GetFocus(e *ControlEvent)
	GetRole(e *ControlEvent)
	GetSelection(e *ControlEvent)
	GetState(e *ControlEvent)
	GetValue(e *ControlEvent)
}

// TextListener supplies caret and single selection.
type TextListener interface {
	GetCaretOffset(e *TextEvent)
	GetSelectionRange(e *TextEvent)
}

// TextExtendedListener supplies rich text content, selections, bounds and
// hyperlinks.
type TextExtendedListener interface {
	AddSelection(e *TextExtendedEvent)
	GetCaretOffset(e *TextExtendedEvent)
	GetCharacterCount(e *TextExtendedEvent)
	GetHyperlinkCount(e *TextExtendedEvent)
	GetHyperlink(e *TextExtendedEvent)
	GetHyperlinkIndex(e *TextExtendedEvent)
	GetOffsetAtPoint(e *TextExtendedEvent)
	GetSelection(e *TextExtendedEvent)
	GetSelectionCount(e *TextExtendedEvent)
	GetText(e *TextExtendedEvent)
	GetTextBounds(e *TextExtendedEvent)
	RemoveSelection(e *TextExtendedEvent)
	SetCaretOffset(e *TextExtendedEvent)
	SetSelection(e *TextExtendedEvent)
}

// ActionListener enumerates and performs actions.
type ActionListener interface {
	DoAction(e *ActionEvent)
	GetActionCount(e *ActionEvent)
	GetDescription(e *ActionEvent)
	GetKeyBinding(e *ActionEvent)
	GetName(e *ActionEvent)
}

// EditableTextListener performs text mutations.
type EditableTextListener interface {
	CopyText(e *EditableTextEvent)
	CutText(e *EditableTextEvent)
	PasteText(e *EditableTextEvent)
	ReplaceText(e *EditableTextEvent)
	SetTextAttributes(e *EditableTextEvent)
}

// HyperlinkListener describes a hyperlink node.
type HyperlinkListener interface {
	GetAnchor(e *HyperlinkEvent)
	GetAnchorTarget(e *HyperlinkEvent)
	GetStartIndex(e *HyperlinkEvent)
	GetEndIndex(e *HyperlinkEvent)
}

// TableListener describes table structure and selection.
type TableListener interface {
	DeselectColumn(e *TableEvent)
	DeselectRow(e *TableEvent)
	GetCaption(e *TableEvent)
	GetCell(e *TableEvent)
	GetColumnCount(e *TableEvent)
	GetColumnDescription(e *TableEvent)
	GetColumnHeaderCells(e *TableEvent)
	GetRowCount(e *TableEvent)
	GetRowDescription(e *TableEvent)
	GetRowHeaderCells(e *TableEvent)
	GetSelectedColumns(e *TableEvent)
	GetSelectedRows(e *TableEvent)
	GetSummary(e *TableEvent)
	IsColumnSelected(e *TableEvent)
	IsRowSelected(e *TableEvent)
	SelectColumn(e *TableEvent)
	SelectRow(e *TableEvent)
}

// TableCellListener describes a table cell node.
type TableCellListener interface {
	GetColumnHeaders(e *TableCellEvent)
	GetColumnIndex(e *TableCellEvent)
	GetColumnSpan(e *TableCellEvent)
	GetRowHeaders(e *TableCellEvent)
	GetRowIndex(e *TableCellEvent)
	GetRowSpan(e *TableCellEvent)
	GetTable(e *TableCellEvent)
	IsSelected(e *TableCellEvent)
}

// ValueListener supplies and sets a numeric value.
type ValueListener interface {
	GetCurrentValue(e *ValueEvent)
	SetCurrentValue(e *ValueEvent)
	GetMaximumValue(e *ValueEvent)
	GetMinimumValue(e *ValueEvent)
}

// AttributeListener supplies object and text attributes.
type AttributeListener interface {
	GetAttributes(e *AttributeEvent)
	GetTextAttributes(e *TextAttributeEvent)
}

// NamingAdapter implements NamingListener with no-ops. Embed it and
// override the methods of interest.
type NamingAdapter struct{}

func (NamingAdapter) GetName(*NamingEvent)             {}
func (NamingAdapter) GetHelp(*NamingEvent)             {}
func (NamingAdapter) GetKeyboardShortcut(*NamingEvent) {}
func (NamingAdapter) GetDescription(*NamingEvent)      {}

// ControlAdapter implements ControlListener with no-ops.
type ControlAdapter struct{}

func (ControlAdapter) GetChildAtPoint(*ControlEvent)  {}
func (ControlAdapter) GetLocation(*ControlEvent)      {}
func (ControlAdapter) GetChildCount(*ControlEvent)    {}
func (ControlAdapter) GetChildren(*ControlEvent)      {}
func (ControlAdapter) GetDefaultAction(*ControlEvent) {}
func (ControlAdapter) GetFocus(*ControlEvent)         {}
func (ControlAdapter) GetRole(*ControlEvent)          {}
func (ControlAdapter) GetSelection(*ControlEvent)     {}
func (ControlAdapter) GetState(*ControlEvent)         {}
func (ControlAdapter) GetValue(*ControlEvent)         {}

// TextAdapter implements TextListener with no-ops.
type TextAdapter struct{}

func (TextAdapter) GetCaretOffset(*TextEvent)    {}
func (TextAdapter) GetSelectionRange(*TextEvent) {}

// TextExtendedAdapter implements TextExtendedListener with no-ops.
type TextExtendedAdapter struct{}

func (TextExtendedAdapter) AddSelection(*TextExtendedEvent)      {}
func (TextExtendedAdapter) GetCaretOffset(*TextExtendedEvent)    {}
func (TextExtendedAdapter) GetCharacterCount(*TextExtendedEvent) {}
func (TextExtendedAdapter) GetHyperlinkCount(*TextExtendedEvent) {}
func (TextExtendedAdapter) GetHyperlink(*TextExtendedEvent)      {}
func (TextExtendedAdapter) GetHyperlinkIndex(*TextExtendedEvent) {}
func (TextExtendedAdapter) GetOffsetAtPoint(*TextExtendedEvent)  {}
func (TextExtendedAdapter) GetSelection(*TextExtendedEvent)      {}
func (TextExtendedAdapter) GetSelectionCount(*TextExtendedEvent) {}
func (TextExtendedAdapter) GetText(*TextExtendedEvent)           {}
func (TextExtendedAdapter) GetTextBounds(*TextExtendedEvent)     {}
func (TextExtendedAdapter) RemoveSelection(*TextExtendedEvent)   {}
func (TextExtendedAdapter) SetCaretOffset(*TextExtendedEvent)    {}
func (TextExtendedAdapter) SetSelection(*TextExtendedEvent)      {}

// ActionAdapter implements ActionListener with no-ops.
type ActionAdapter struct{}

func (ActionAdapter) DoAction(*ActionEvent)       {}
func (ActionAdapter) GetActionCount(*ActionEvent) {}
func (ActionAdapter) GetDescription(*ActionEvent) {}
func (ActionAdapter) GetKeyBinding(*ActionEvent)  {}
func (ActionAdapter) GetName(*ActionEvent)        {}

// EditableTextAdapter implements EditableTextListener with no-ops.
type EditableTextAdapter struct{}

func (EditableTextAdapter) CopyText(*EditableTextEvent)          {}
func (EditableTextAdapter) CutText(*EditableTextEvent)           {}
func (EditableTextAdapter) PasteText(*EditableTextEvent)         {}
func (EditableTextAdapter) ReplaceText(*EditableTextEvent)       {}
func (EditableTextAdapter) SetTextAttributes(*EditableTextEvent) {}

// HyperlinkAdapter implements HyperlinkListener with no-ops.
type HyperlinkAdapter struct{}

func (HyperlinkAdapter) GetAnchor(*HyperlinkEvent)       {}
func (HyperlinkAdapter) GetAnchorTarget(*HyperlinkEvent) {}
func (HyperlinkAdapter) GetStartIndex(*HyperlinkEvent)   {}
func (HyperlinkAdapter) GetEndIndex(*HyperlinkEvent)     {}

// TableAdapter implements TableListener with no-ops.
type TableAdapter struct{}

func (TableAdapter) DeselectColumn(*TableEvent)       {}
func (TableAdapter) DeselectRow(*TableEvent)          {}
func (TableAdapter) GetCaption(*TableEvent)           {}
func (TableAdapter) GetCell(*TableEvent)              {}
func (TableAdapter) GetColumnCount(*TableEvent)       {}
func (TableAdapter) GetColumnDescription(*TableEvent) {}
func (TableAdapter) GetColumnHeaderCells(*TableEvent) {}
func (TableAdapter) GetRowCount(*TableEvent)          {}
func (TableAdapter) GetRowDescription(*TableEvent)    {}
func (TableAdapter) GetRowHeaderCells(*TableEvent)    {}
func (TableAdapter) GetSelectedColumns(*TableEvent)   {}
func (TableAdapter) GetSelectedRows(*TableEvent)      {}
func (TableAdapter) GetSummary(*TableEvent)           {}
func (TableAdapter) IsColumnSelected(*TableEvent)     {}
func (TableAdapter) IsRowSelected(*TableEvent)        {}
func (TableAdapter) SelectColumn(*TableEvent)         {}
func (TableAdapter) SelectRow(*TableEvent)            {}

// TableCellAdapter implements TableCellListener with no-ops.
type TableCellAdapter struct{}

func (TableCellAdapter) GetColumnHeaders(*TableCellEvent) {}
func (TableCellAdapter) GetColumnIndex(*TableCellEvent)   {}
func (TableCellAdapter) GetColumnSpan(*TableCellEvent)    {}
func (TableCellAdapter) GetRowHeaders(*TableCellEvent)    {}
func (TableCellAdapter) GetRowIndex(*TableCellEvent)      {}
func (TableCellAdapter) GetRowSpan(*TableCellEvent)       {}
func (TableCellAdapter) GetTable(*TableCellEvent)         {}
func (TableCellAdapter) IsSelected(*TableCellEvent)       {}

// ValueAdapter implements ValueListener with no-ops.
type ValueAdapter struct{}

func (ValueAdapter) GetCurrentValue(*ValueEvent) {}
func (ValueAdapter) SetCurrentValue(*ValueEvent) {}
func (ValueAdapter) GetMaximumValue(*ValueEvent) {}
func (ValueAdapter) GetMinimumValue(*ValueEvent) {}

// AttributeAdapter implements AttributeListener with no-ops.
type AttributeAdapter struct{}

func (AttributeAdapter) GetAttributes(*AttributeEvent)         {}
func (AttributeAdapter) GetTextAttributes(*TextAttributeEvent) {}
