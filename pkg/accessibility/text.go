package accessibility

import (
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/protocol"
	"github.com/go-drift/accessbridge/pkg/textbound"
)

// text returns the text snapshot of p: the inherited text refined by the
// control value and then by a whole-text query to the text-extended
// aspect.
func (b *Bridge) text(p *Proxy) string {
	var parent string
	if base := p.base(); base != nil && base.Text != nil {
		parent = base.Text(p.node.widget)
	}
	ce := &ControlEvent{Node: p.node, ChildID: p.childID, Value: parent}
	if notify("Value", p.node.listeners.control.snapshot(), ce, ControlListener.GetValue) {
		parent = ce.Value
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, End: -1, Result: parent}
	if notify("Text", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetText) {
		parent = e.Result
	}
	if !p.lightweight {
		p.node.lastText = parent
	}
	return parent
}

func clampRange(n, start, end int) (int, int) {
	if end < 0 || end > n {
		end = n
	}
	start = min(max(start, 0), end)
	return start, end
}

// Text returns the characters in [start, end); end -1 means the end of the
// text.
func (b *Bridge) Text(h Handle, start, end int) string {
	p, ok := b.enter("Text", h)
	if !ok {
		return ""
	}
	runes := []rune(b.text(p))
	s, e := clampRange(len(runes), start, end)
	return string(runes[s:e])
}

// CharacterCount returns the length of the text in characters.
func (b *Bridge) CharacterCount(h Handle) int {
	p, ok := b.enter("CharacterCount", h)
	if !ok {
		return 0
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, Count: len([]rune(b.text(p)))}
	notify("CharacterCount", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetCharacterCount)
	return e.Count
}

// CharacterAtOffset returns the character at offset, or 0 out of range.
func (b *Bridge) CharacterAtOffset(h Handle, offset int) rune {
	p, ok := b.enter("CharacterAtOffset", h)
	if !ok {
		return 0
	}
	runes := []rune(b.text(p))
	if offset < 0 || offset >= len(runes) {
		return 0
	}
	return runes[offset]
}

var anchorCounts = [...]int{textbound.Before: -1, textbound.At: 0, textbound.After: 1}

// boundaryQuery asks the text-extended aspect for a unit. The query offset
// is in Offset and the span is seeded with -1; a listener answers by setting
// Start and End, so it may report an empty unit. Otherwise the segmentation
// engine answers.
func (b *Bridge) boundaryQuery(p *Proxy, op string, offset int, bd textbound.Boundary, a textbound.Anchor) (string, int, int) {
	e := &TextExtendedEvent{
		Node:     p.node,
		ChildID:  p.childID,
		Start:    -1,
		End:      -1,
		Offset:   offset,
		Count:    anchorCounts[a],
		Boundary: &bd,
	}
	if notify(op, p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetText) && e.Start >= 0 && e.End >= e.Start {
		return e.Result, e.Start, e.End
	}
	return textbound.Query(b.text(p), offset, bd, a)
}

func (b *Bridge) textAt(op string, h Handle, offset int, bd protocol.TextBoundary, a textbound.Anchor) (string, int, int) {
	p, ok := b.enter(op, h)
	if !ok {
		return "", 0, 0
	}
	return b.boundaryQuery(p, op, offset, bd.Boundary(), a)
}

// TextAtOffset returns the unit containing offset.
func (b *Bridge) TextAtOffset(h Handle, offset int, bd protocol.TextBoundary) (string, int, int) {
	return b.textAt("TextAtOffset", h, offset, bd, textbound.At)
}

// TextBeforeOffset returns the unit before the one containing offset.
func (b *Bridge) TextBeforeOffset(h Handle, offset int, bd protocol.TextBoundary) (string, int, int) {
	return b.textAt("TextBeforeOffset", h, offset, bd, textbound.Before)
}

// TextAfterOffset returns the unit after the one containing offset.
func (b *Bridge) TextAfterOffset(h Handle, offset int, bd protocol.TextBoundary) (string, int, int) {
	return b.textAt("TextAfterOffset", h, offset, bd, textbound.After)
}

// StringAtOffset returns the unit of granularity g at offset. Runtimes
// older than TextChangeVersion do not have the call; it answers ("", -1, -1).
func (b *Bridge) StringAtOffset(h Handle, offset int, g protocol.TextGranularity) (string, int, int) {
	p, ok := b.enter("StringAtOffset", h)
	if !ok || !b.supports(TextChangeVersion) {
		return "", -1, -1
	}
	return b.boundaryQuery(p, "StringAtOffset", offset, g.Boundary(), textbound.At)
}

func (b *Bridge) caretOffset(p *Proxy) int {
	offset := -1
	if base := p.base(); base != nil && base.CaretOffset != nil {
		offset = base.CaretOffset(p.node.widget)
	}
	te := &TextEvent{Node: p.node, ChildID: p.childID, Offset: offset}
	if notify("CaretOffset", p.node.listeners.text.snapshot(), te, TextListener.GetCaretOffset) {
		offset = te.Offset
	}
	xe := &TextExtendedEvent{Node: p.node, ChildID: p.childID, Offset: offset}
	if notify("CaretOffset", p.node.listeners.textExt.snapshot(), xe, TextExtendedListener.GetCaretOffset) {
		offset = xe.Offset
	}
	return offset
}

// CaretOffset returns the caret position, or -1.
func (b *Bridge) CaretOffset(h Handle) int {
	p, ok := b.enter("CaretOffset", h)
	if !ok {
		return -1
	}
	return b.caretOffset(p)
}

func (b *Bridge) textCommand(op string, h Handle, e *TextExtendedEvent, call func(TextExtendedListener, *TextExtendedEvent)) bool {
	p, ok := b.enter(op, h)
	if !ok {
		return false
	}
	e.Node = p.node
	e.ChildID = p.childID
	return notify(op, p.node.listeners.textExt.snapshot(), e, call) && e.Result == OK
}

// SetCaretOffset moves the caret.
func (b *Bridge) SetCaretOffset(h Handle, offset int) bool {
	return b.textCommand("SetCaretOffset", h, &TextExtendedEvent{Offset: offset}, TextExtendedListener.SetCaretOffset)
}

// AddTextSelection selects [start, end) as a new selection.
func (b *Bridge) AddTextSelection(h Handle, start, end int) bool {
	return b.textCommand("AddTextSelection", h, &TextExtendedEvent{Start: start, End: end}, TextExtendedListener.AddSelection)
}

// RemoveTextSelection removes selection i.
func (b *Bridge) RemoveTextSelection(h Handle, i int) bool {
	return b.textCommand("RemoveTextSelection", h, &TextExtendedEvent{Index: i}, TextExtendedListener.RemoveSelection)
}

// SetTextSelection replaces selection i with [start, end).
func (b *Bridge) SetTextSelection(h Handle, i, start, end int) bool {
	return b.textCommand("SetTextSelection", h, &TextExtendedEvent{Index: i, Start: start, End: end}, TextExtendedListener.SetSelection)
}

// selectionRange asks the text aspect for the single selection.
func (b *Bridge) selectionRange(p *Proxy) (int, int, bool) {
	e := &TextEvent{Node: p.node, ChildID: p.childID}
	if !notify("SelectionRange", p.node.listeners.text.snapshot(), e, TextListener.GetSelectionRange) || e.Length == 0 {
		return 0, 0, false
	}
	start, end := e.Offset, e.Offset+e.Length
	if start > end {
		start, end = end, start
	}
	return start, end, true
}

// SelectionsCount returns the number of text selections.
func (b *Bridge) SelectionsCount(h Handle) int {
	p, ok := b.enter("SelectionsCount", h)
	if !ok {
		return 0
	}
	var parent int
	if _, _, has := b.selectionRange(p); has {
		parent = 1
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, Count: parent}
	notify("SelectionsCount", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetSelectionCount)
	return e.Count
}

// TextSelection returns selection i and its bounds.
func (b *Bridge) TextSelection(h Handle, i int) (string, int, int) {
	p, ok := b.enter("TextSelection", h)
	if !ok {
		return "", 0, 0
	}
	start, end, has := b.selectionRange(p)
	if i != 0 || !has {
		start, end = 0, 0
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, Index: i, Start: start, End: end}
	notify("TextSelection", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetSelection)
	runes := []rune(b.text(p))
	s, en := clampRange(len(runes), e.Start, e.End)
	return string(runes[s:en]), e.Start, e.End
}

// rangeExtents answers text bounds in window coordinates. Listeners see the
// default layout first.
func (b *Bridge) rangeExtents(op string, p *Proxy, start, end int) geometry.Rect {
	origin := b.extents(p).Origin()
	r := b.metrics.bounds([]rune(b.text(p)), start, end, origin)
	e := &TextExtendedEvent{
		Node:    p.node,
		ChildID: p.childID,
		Start:   start,
		End:     end,
		X:       r.X,
		Y:       r.Y,
		Width:   r.Width,
		Height:  r.Height,
	}
	if !notify(op, p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetTextBounds) {
		return r
	}
	return e.rect()
}

// CharacterExtents returns the box of the character at offset.
func (b *Bridge) CharacterExtents(h Handle, offset int, coord protocol.CoordType) geometry.Rect {
	p, ok := b.enter("CharacterExtents", h)
	if !ok {
		return geometry.Rect{}
	}
	return b.toCoords(p, b.rangeExtents("CharacterExtents", p, offset, offset+1), coord)
}

// RangeExtents returns the bounding box of [start, end).
func (b *Bridge) RangeExtents(h Handle, start, end int, coord protocol.CoordType) geometry.Rect {
	p, ok := b.enter("RangeExtents", h)
	if !ok {
		return geometry.Rect{}
	}
	return b.toCoords(p, b.rangeExtents("RangeExtents", p, start, end), coord)
}

// OffsetAtPoint returns the character under the point, or -1.
func (b *Bridge) OffsetAtPoint(h Handle, pt geometry.Point, coord protocol.CoordType) int {
	p, ok := b.enter("OffsetAtPoint", h)
	if !ok {
		return -1
	}
	local := b.fromCoords(p, pt, coord)
	origin := b.extents(p).Origin()
	offset := b.metrics.offsetAt([]rune(b.text(p)), local.Sub(origin))
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, X: local.X, Y: local.Y, Offset: offset}
	notify("OffsetAtPoint", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetOffsetAtPoint)
	return e.Offset
}

// textAttributes merges a listener's style and free-form pairs. Names the
// protocol does not model are dropped.
func textAttributes(e *TextAttributeEvent) map[string]string {
	attrs := protocol.StyleAttributes(e.Style)
	for k, v := range e.Attributes {
		if protocol.IsTextAttribute(k) {
			attrs[k] = v
		}
	}
	return attrs
}

// RunAttributes returns the attributes of the run containing offset and the
// run bounds. Without listeners the whole text is one unstyled run.
func (b *Bridge) RunAttributes(h Handle, offset int) (map[string]string, int, int) {
	p, ok := b.enter("RunAttributes", h)
	if !ok {
		return nil, 0, 0
	}
	n := len([]rune(b.text(p)))
	e := &TextAttributeEvent{Node: p.node, ChildID: p.childID, Offset: offset, End: n}
	if !notify("RunAttributes", p.node.listeners.attribute.snapshot(), e, AttributeListener.GetTextAttributes) {
		return map[string]string{}, 0, n
	}
	return textAttributes(e), e.Start, e.End
}

// DefaultAttributes returns the attributes that apply to the whole text.
func (b *Bridge) DefaultAttributes(h Handle) map[string]string {
	p, ok := b.enter("DefaultAttributes", h)
	if !ok {
		return nil
	}
	e := &TextAttributeEvent{Node: p.node, ChildID: p.childID, Offset: -1}
	if !notify("DefaultAttributes", p.node.listeners.attribute.snapshot(), e, AttributeListener.GetTextAttributes) {
		return map[string]string{}
	}
	return textAttributes(e)
}
