package accessibility

import (
	"unicode/utf8"

	"github.com/go-drift/accessbridge/pkg/protocol"
)

// editable runs one editable-text command. Without listeners there is no
// inherited editing and the command fails.
func (b *Bridge) editable(op string, h Handle, e *EditableTextEvent, call func(EditableTextListener, *EditableTextEvent)) bool {
	p, ok := b.enter(op, h)
	if !ok {
		return false
	}
	e.Node = p.node
	e.ChildID = p.childID
	if e.End == -1 {
		e.End = utf8.RuneCountInString(b.text(p))
	}
	return notify(op, p.node.listeners.editable.snapshot(), e, call) && e.Result == OK
}

// SetTextContents replaces the whole text.
func (b *Bridge) SetTextContents(h Handle, text string) bool {
	return b.editable("SetTextContents", h, &EditableTextEvent{End: -1, Text: text}, EditableTextListener.ReplaceText)
}

// InsertText inserts text at pos and returns the offset after it.
func (b *Bridge) InsertText(h Handle, text string, pos int) (int, bool) {
	ok := b.editable("InsertText", h, &EditableTextEvent{Start: pos, End: pos, Text: text}, EditableTextListener.ReplaceText)
	if !ok {
		return pos, false
	}
	return pos + utf8.RuneCountInString(text), true
}

// DeleteText removes [start, end).
func (b *Bridge) DeleteText(h Handle, start, end int) bool {
	return b.editable("DeleteText", h, &EditableTextEvent{Start: start, End: end}, EditableTextListener.ReplaceText)
}

// CopyText copies [start, end) to the clipboard.
func (b *Bridge) CopyText(h Handle, start, end int) bool {
	return b.editable("CopyText", h, &EditableTextEvent{Start: start, End: end}, EditableTextListener.CopyText)
}

// CutText moves [start, end) to the clipboard.
func (b *Bridge) CutText(h Handle, start, end int) bool {
	return b.editable("CutText", h, &EditableTextEvent{Start: start, End: end}, EditableTextListener.CutText)
}

// PasteText pastes the clipboard at pos.
func (b *Bridge) PasteText(h Handle, pos int) bool {
	return b.editable("PasteText", h, &EditableTextEvent{Start: pos, End: pos}, EditableTextListener.PasteText)
}

// SetRunAttributes applies native text attributes to [start, end).
// Attribute names the protocol does not model are dropped.
func (b *Bridge) SetRunAttributes(h Handle, attrs map[string]string, start, end int) bool {
	known := make(map[string]string, len(attrs))
	for k, v := range attrs {
		if protocol.IsTextAttribute(k) {
			known[k] = v
		}
	}
	style := protocol.ParseStyleAttributes(known)
	e := &EditableTextEvent{Start: start, End: end, Style: &style, Attributes: known}
	return b.editable("SetRunAttributes", h, e, EditableTextListener.SetTextAttributes)
}
