package accessibility

import (
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/protocol"
)

// windowOrigin walks the parent chain to the first proxy backed by a
// native surface and returns its window's screen origin.
func (b *Bridge) windowOrigin(p *Proxy) (geometry.Point, bool) {
	if b.toolkit == nil {
		return geometry.Point{}, false
	}
	for q := p; q != nil; q = b.parentOf(q) {
		if q.lightweight || q.node == nil || q.node.widget == nil {
			continue
		}
		w := q.node.widget
		s, ok := b.toolkit.Surface(w)
		if !ok {
			if d, has := b.toolkit.DrawableChild(w); has {
				s, ok = b.toolkit.Surface(d)
			}
		}
		if ok {
			return b.toolkit.WindowOrigin(s)
		}
	}
	return geometry.Point{}, false
}

func (b *Bridge) toWindow(p *Proxy, pt geometry.Point) geometry.Point {
	if o, ok := b.windowOrigin(p); ok {
		return pt.Sub(o)
	}
	return pt
}

func (b *Bridge) toScreen(p *Proxy, pt geometry.Point) geometry.Point {
	if o, ok := b.windowOrigin(p); ok {
		return pt.Add(o)
	}
	return pt
}

// fromCoords converts a point given in coord to window-relative.
func (b *Bridge) fromCoords(p *Proxy, pt geometry.Point, coord protocol.CoordType) geometry.Point {
	if coord == protocol.CoordScreen {
		return b.toWindow(p, pt)
	}
	return pt
}

// toCoords converts a window-relative rectangle to coord.
func (b *Bridge) toCoords(p *Proxy, r geometry.Rect, coord protocol.CoordType) geometry.Rect {
	if coord == protocol.CoordScreen {
		return r.Translate(b.toScreen(p, geometry.Point{}))
	}
	return r
}

// ToWindowRelative converts a screen point to coordinates relative to the
// top-level window of h. Without a window the point is returned unchanged.
func (b *Bridge) ToWindowRelative(h Handle, pt geometry.Point) geometry.Point {
	p, ok := b.enter("ToWindowRelative", h)
	if !ok {
		return pt
	}
	return b.toWindow(p, pt)
}

// ToScreen converts a window-relative point to screen coordinates.
func (b *Bridge) ToScreen(h Handle, pt geometry.Point) geometry.Point {
	p, ok := b.enter("ToScreen", h)
	if !ok {
		return pt
	}
	return b.toScreen(p, pt)
}
