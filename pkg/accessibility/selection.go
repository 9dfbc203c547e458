package accessibility

import "github.com/go-drift/accessbridge/pkg/protocol"

// selected returns the selected children of p. Listeners see the children
// whose state set carries selected as a ChildIDMultiple answer and may
// replace it.
func (b *Bridge) selected(p *Proxy) []*Proxy {
	def := b.stateSelected(p)
	e := &ControlEvent{Node: p.node, ChildID: p.childID, Child: ChildID(ChildIDMultiple)}
	for _, c := range def {
		e.Children = append(e.Children, descriptorOf(c))
	}
	if !notify("Selection", p.node.listeners.control.snapshot(), e, ControlListener.GetSelection) {
		return def
	}
	if e.Child.Node == nil && e.Child.ID == ChildIDMultiple {
		out := make([]*Proxy, 0, len(e.Children))
		for _, c := range e.Children {
			if cp := b.resolveChild(p, c); cp != nil && cp != p {
				out = append(out, cp)
			}
		}
		return out
	}
	if cp := b.resolveChild(p, e.Child); cp != nil && cp != p {
		return []*Proxy{cp}
	}
	return nil
}

func (b *Bridge) stateSelected(p *Proxy) []*Proxy {
	b.updateChildren(p)
	var out []*Proxy
	for _, c := range p.children {
		if c.node != nil && !c.node.disposed && b.states(c).Contains(protocol.StateSelected) {
			out = append(out, c)
		}
	}
	return out
}

// descriptorOf is the Child a listener would use to name c.
func descriptorOf(c *Proxy) Child {
	if c.lightweight {
		return ChildID(c.childID)
	}
	return ChildNode(c.node)
}

// SelectionCount returns the number of selected children.
func (b *Bridge) SelectionCount(h Handle) int {
	p, ok := b.enter("SelectionCount", h)
	if !ok {
		return 0
	}
	return len(b.selected(p))
}

// RefSelection returns a retained handle to the i-th selected child.
func (b *Bridge) RefSelection(h Handle, i int) Handle {
	p, ok := b.enter("RefSelection", h)
	if !ok {
		return NoHandle
	}
	sel := b.selected(p)
	if i < 0 || i >= len(sel) {
		return NoHandle
	}
	return b.retained(sel[i])
}

// IsChildSelected reports whether the i-th child is selected.
func (b *Bridge) IsChildSelected(h Handle, i int) bool {
	p, ok := b.enter("IsChildSelected", h)
	if !ok {
		return false
	}
	b.updateChildren(p)
	c := b.childByIndex(p, i)
	if c == nil {
		return false
	}
	for _, s := range b.selected(p) {
		if s == c || (!s.lightweight && !c.lightweight && s.node == c.node) {
			return true
		}
	}
	return false
}

func (b *Bridge) selectChild(op string, h Handle, i int, selected bool) bool {
	p, ok := b.enter(op, h)
	if !ok {
		return false
	}
	base := p.base()
	if base == nil || base.SelectChild == nil {
		return false
	}
	return base.SelectChild(p.node.widget, i, selected)
}

// AddSelection selects the i-th child through the inherited behavior.
func (b *Bridge) AddSelection(h Handle, i int) bool {
	return b.selectChild("AddSelection", h, i, true)
}

// RemoveSelection deselects the i-th selected child through the inherited
// behavior.
func (b *Bridge) RemoveSelection(h Handle, i int) bool {
	p, ok := b.enter("RemoveSelection", h)
	if !ok {
		return false
	}
	b.updateChildren(p)
	sel := b.selected(p)
	if i < 0 || i >= len(sel) {
		return false
	}
	idx := b.indexOf(p, sel[i])
	if idx < 0 {
		return false
	}
	return b.selectChild("RemoveSelection", h, idx, false)
}

// ClearSelection deselects every selected child.
func (b *Bridge) ClearSelection(h Handle) bool {
	p, ok := b.enter("ClearSelection", h)
	if !ok {
		return false
	}
	b.updateChildren(p)
	result := true
	for _, c := range b.selected(p) {
		idx := b.indexOf(p, c)
		if idx < 0 || !b.selectChild("ClearSelection", h, idx, false) {
			result = false
		}
	}
	return result
}

func (b *Bridge) indexOf(p, c *Proxy) int {
	for i, x := range p.children {
		if x == c {
			return i
		}
	}
	return -1
}
