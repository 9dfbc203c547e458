package accessibility

import (
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/protocol"
)

// extents returns the window-relative bounds of p. Listeners start from
// the inherited bounds converted to window coordinates.
func (b *Bridge) extents(p *Proxy) geometry.Rect {
	var parent geometry.Rect
	if base := p.base(); base != nil && base.Extents != nil {
		r := base.Extents(p.node.widget)
		parent = geometry.Rect{Width: r.Width, Height: r.Height}.Translate(b.toWindow(p, r.Origin()))
	}
	e := &ControlEvent{
		Node:    p.node,
		ChildID: p.childID,
		X:       parent.X,
		Y:       parent.Y,
		Width:   parent.Width,
		Height:  parent.Height,
	}
	if !notify("Extents", p.node.listeners.control.snapshot(), e, ControlListener.GetLocation) {
		return parent
	}
	return e.rect()
}

// Extents returns the bounds of h in coord.
func (b *Bridge) Extents(h Handle, coord protocol.CoordType) geometry.Rect {
	p, ok := b.enter("Extents", h)
	if !ok {
		return geometry.Rect{}
	}
	return b.toCoords(p, b.extents(p), coord)
}

// Position returns the origin of h in coord.
func (b *Bridge) Position(h Handle, coord protocol.CoordType) geometry.Point {
	return b.Extents(h, coord).Origin()
}

// Size returns the size of h.
func (b *Bridge) Size(h Handle) geometry.Size {
	return b.Extents(h, protocol.CoordWindow).Size()
}

// Contains reports whether the point lies within the bounds of h.
func (b *Bridge) Contains(h Handle, pt geometry.Point, coord protocol.CoordType) bool {
	p, ok := b.enter("Contains", h)
	if !ok {
		return false
	}
	return b.extents(p).Contains(b.fromCoords(p, pt, coord))
}

// RefAccessibleAtPoint returns a retained handle to the child of h under
// the point. Without a control listener the first child whose bounds
// contain the point wins.
func (b *Bridge) RefAccessibleAtPoint(h Handle, pt geometry.Point, coord protocol.CoordType) Handle {
	p, ok := b.enter("RefAccessibleAtPoint", h)
	if !ok {
		return NoHandle
	}
	local := b.fromCoords(p, pt, coord)
	b.updateChildren(p)
	var parent *Proxy
	for _, c := range p.children {
		if c.node != nil && !c.node.disposed && b.extents(c).Contains(local) {
			parent = c
			break
		}
	}
	e := &ControlEvent{Node: p.node, ChildID: p.childID, X: local.X, Y: local.Y, Child: ChildID(ChildIDNone)}
	if parent != nil {
		e.Child = Child{ID: parent.childID}
		if !parent.lightweight {
			e.Child = ChildNode(parent.node)
		}
	}
	if !notify("RefAccessibleAtPoint", p.node.listeners.control.snapshot(), e, ControlListener.GetChildAtPoint) {
		return b.retained(parent)
	}
	return b.retained(b.resolveChild(p, e.Child))
}
