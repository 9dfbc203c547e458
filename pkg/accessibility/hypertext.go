package accessibility

// LinkCount returns the number of hyperlinks in the text of h.
func (b *Bridge) LinkCount(h Handle) int {
	p, ok := b.enter("LinkCount", h)
	if !ok {
		return 0
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID}
	notify("LinkCount", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetHyperlinkCount)
	return e.Count
}

// RefLink returns a retained handle to the node of hyperlink i.
func (b *Bridge) RefLink(h Handle, i int) Handle {
	p, ok := b.enter("RefLink", h)
	if !ok {
		return NoHandle
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, Index: i}
	if !notify("RefLink", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetHyperlink) ||
		e.Link == nil || e.Link.disposed {
		return NoHandle
	}
	return b.retained(b.proxyFor(e.Link))
}

// LinkIndex returns the index of the hyperlink covering the character
// offset, or -1.
func (b *Bridge) LinkIndex(h Handle, offset int) int {
	p, ok := b.enter("LinkIndex", h)
	if !ok {
		return -1
	}
	e := &TextExtendedEvent{Node: p.node, ChildID: p.childID, Offset: offset, Index: -1}
	notify("LinkIndex", p.node.listeners.textExt.snapshot(), e, TextExtendedListener.GetHyperlinkIndex)
	return e.Index
}

func (b *Bridge) hyperlink(op string, h Handle, seed int, call func(HyperlinkListener, *HyperlinkEvent)) *HyperlinkEvent {
	p, ok := b.enter(op, h)
	if !ok {
		return nil
	}
	e := &HyperlinkEvent{Node: p.node, Index: seed}
	notify(op, p.node.listeners.hyperlink.snapshot(), e, call)
	return e
}

// LinkURI returns the target of anchor i of the hyperlink node h.
func (b *Bridge) LinkURI(h Handle, i int) string {
	if e := b.hyperlink("LinkURI", h, i, HyperlinkListener.GetAnchorTarget); e != nil {
		return e.Result
	}
	return ""
}

// LinkAnchor returns the text of anchor i of the hyperlink node h.
func (b *Bridge) LinkAnchor(h Handle, i int) string {
	if e := b.hyperlink("LinkAnchor", h, i, HyperlinkListener.GetAnchor); e != nil {
		return e.Result
	}
	return ""
}

// LinkStartIndex returns the offset where the hyperlink starts in its
// parent's text, or -1.
func (b *Bridge) LinkStartIndex(h Handle) int {
	if e := b.hyperlink("LinkStartIndex", h, -1, HyperlinkListener.GetStartIndex); e != nil {
		return e.Index
	}
	return -1
}

// LinkEndIndex returns the offset after the hyperlink, or -1.
func (b *Bridge) LinkEndIndex(h Handle) int {
	if e := b.hyperlink("LinkEndIndex", h, -1, HyperlinkListener.GetEndIndex); e != nil {
		return e.Index
	}
	return -1
}
