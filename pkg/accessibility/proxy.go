package accessibility

import (
	"go.uber.org/zap"

	"github.com/go-drift/accessbridge/pkg/capability"
	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/semantics"
	"github.com/go-drift/accessbridge/pkg/typereg"
)

// Proxy is the native object of a node or of one lightweight child of a
// node. The native runtime only ever sees its Handle.
type Proxy struct {
	handle      Handle
	node        *Node
	parent      *Proxy
	childID     int
	index       int
	lightweight bool
	typ         *typereg.Type
	children    []*Proxy
	refs        int
}

// Handle returns the proxy's native handle.
func (p *Proxy) Handle() Handle { return p.handle }

// Node returns the node the proxy answers for. Lightweight proxies answer
// for their parent node with their own ChildID.
func (p *Proxy) Node() *Node { return p.node }

// ChildID returns ChildIDSelf for node proxies and the application id for
// lightweight ones.
func (p *Proxy) ChildID() int { return p.childID }

// IsLightweight reports whether the proxy has no node of its own.
func (p *Proxy) IsLightweight() bool { return p.lightweight }

// Type returns the native type the proxy was created with.
func (p *Proxy) Type() *typereg.Type { return p.typ }

// Parent returns the proxy that last adopted p as a child.
func (p *Proxy) Parent() *Proxy { return p.parent }

// Refs returns the current reference count.
func (p *Proxy) Refs() int { return p.refs }

// Children returns the child array as of the last update.
func (p *Proxy) Children() []*Proxy {
	out := make([]*Proxy, len(p.children))
	copy(out, p.children)
	return out
}

// base returns the inherited behavior of the proxy's native type. Only
// proxies of widget nodes have one.
func (p *Proxy) base() *Base {
	if p.lightweight || p.node == nil || p.node.widget == nil || p.typ == nil || p.typ.Parent == nil {
		return nil
	}
	impl, _ := p.typ.Parent.Impl.(*Base)
	return impl
}

func (b *Bridge) newProxy(n *Node, parent *Proxy, childID int, typ *typereg.Type) *Proxy {
	p := &Proxy{
		node:        n,
		parent:      parent,
		childID:     childID,
		index:       -1,
		lightweight: childID != ChildIDSelf,
		typ:         typ,
		refs:        1,
	}
	p.handle = b.handles.insert(p)
	b.log.Debug("proxy created",
		zap.Stringer("handle", p.handle),
		zap.String("type", typ.Name),
		zap.Int("child_id", childID))
	return p
}

func (b *Bridge) retain(p *Proxy) {
	p.refs++
}

func (b *Bridge) release(p *Proxy) {
	if p.refs <= 0 {
		_ = b.handleUsage("accessibility.Bridge.release", p.handle, errors.ErrOverRelease)
		return
	}
	p.refs--
	if p.refs == 0 {
		b.finalize(p)
	}
}

// finalize purges the handle and drops the references the proxy held on
// its children.
func (b *Bridge) finalize(p *Proxy) {
	b.handles.remove(p.handle)
	b.log.Debug("proxy finalized", zap.Stringer("handle", p.handle))
	children := p.children
	p.children = nil
	for _, c := range children {
		if c.parent == p {
			c.parent = nil
		}
		b.release(c)
	}
	if p.node != nil && p.node.proxy == p {
		p.node.proxy = nil
	}
}

// semanticRole asks the control aspect for the role of n or one of its
// lightweight children.
func (b *Bridge) semanticRole(n *Node, childID int) semantics.Role {
	e := &ControlEvent{Node: n, ChildID: childID, Role: semantics.RoleUnspecified}
	notify("GetRole", n.listeners.control.snapshot(), e, ControlListener.GetRole)
	return e.Role
}

// typeFor composes the native type for n (childID ChildIDSelf) or for one
// of its lightweight children.
func (b *Bridge) typeFor(n *Node, childID int) *typereg.Type {
	caps := capability.Resolve(b.semanticRole(n, childID))
	host := LightweightHost
	if childID == ChildIDSelf {
		host = n.hostClass()
	}
	t, err := b.types.GetOrCreate(host, caps)
	if err != nil {
		b.log.Warn("host class rejected, using node type",
			zap.String("host", host), zap.Error(err))
		t, _ = b.types.GetOrCreate(NodeHost, caps)
	}
	return t
}

// proxyFor returns the node's proxy, creating or replacing it when the
// node's native type changed. The node owns one reference.
func (b *Bridge) proxyFor(n *Node) *Proxy {
	t := b.typeFor(n, ChildIDSelf)
	old := n.proxy
	if old != nil && old.typ == t {
		return old
	}
	var parent *Proxy
	if old != nil {
		parent = old.parent
	} else if n.parent != nil {
		parent = n.parent.proxy
	}
	p := b.newProxy(n, parent, ChildIDSelf, t)
	n.proxy = p
	if old != nil {
		b.log.Debug("proxy replaced",
			zap.Stringer("old", old.handle),
			zap.Stringer("new", p.handle))
		b.release(old)
	}
	return p
}

// parentOf returns the native parent of p: the adopting proxy, or the
// proxy of the owning node for declared sub-nodes.
func (b *Bridge) parentOf(p *Proxy) *Proxy {
	if p.parent != nil {
		return p.parent
	}
	if p.lightweight || p.node == nil || p.node.parent == nil || p.node.parent.disposed {
		return nil
	}
	return b.proxyFor(p.node.parent)
}

// childDescriptors lists the children of p: the control aspect's answer,
// or the widget's inherited children followed by declared sub-nodes.
func (b *Bridge) childDescriptors(p *Proxy) []Child {
	n := p.node
	e := &ControlEvent{Node: n, ChildID: p.childID}
	if notify("GetChildren", n.listeners.control.snapshot(), e, ControlListener.GetChildren) && e.Children != nil {
		return e.Children
	}
	if p.lightweight {
		return nil
	}
	var out []Child
	if base := p.base(); base != nil && base.ChildCount != nil && base.Child != nil {
		count := base.ChildCount(n.widget)
		for i := 0; i < count; i++ {
			if w := base.Child(n.widget, i); w != nil {
				out = append(out, ChildNode(b.nodeFor(w)))
			}
		}
	}
	for _, c := range n.children {
		if !c.disposed {
			out = append(out, ChildNode(c))
		}
	}
	return out
}

// updateChildren rebuilds the child array of p. Lightweight children are
// reused by id; the previous array is released only after the new one
// holds its references.
func (b *Bridge) updateChildren(p *Proxy) {
	descs := b.childDescriptors(p)
	old := p.children
	byID := make(map[int]*Proxy, len(old))
	for _, c := range old {
		if c.lightweight {
			if _, dup := byID[c.childID]; !dup {
				byID[c.childID] = c
			}
		}
	}
	next := make([]*Proxy, 0, len(descs))
	for _, d := range descs {
		var c *Proxy
		switch {
		case d.Node != nil:
			if d.Node.disposed {
				continue
			}
			c = b.proxyFor(d.Node)
			b.retain(c)
		case d.ID < 0:
			continue
		default:
			if r, ok := byID[d.ID]; ok {
				c = r
				b.retain(c)
			} else {
				c = b.newProxy(p.node, p, d.ID, b.typeFor(p.node, d.ID))
			}
		}
		c.parent = p
		c.index = len(next)
		next = append(next, c)
	}
	p.children = next
	for _, c := range old {
		b.release(c)
	}
}

// childByIndex returns the i-th child as of the last update.
func (b *Bridge) childByIndex(p *Proxy, i int) *Proxy {
	if i < 0 || i >= len(p.children) {
		return nil
	}
	return p.children[i]
}

// childByID resolves a child id. The sentinel ids for "none" and
// "multiple" never match.
func (b *Bridge) childByID(p *Proxy, id int) *Proxy {
	switch id {
	case ChildIDSelf:
		return p
	case ChildIDNone, ChildIDMultiple:
		return nil
	}
	if c := findLightweight(p.children, id); c != nil {
		return c
	}
	b.updateChildren(p)
	return findLightweight(p.children, id)
}

func findLightweight(ps []*Proxy, id int) *Proxy {
	for _, c := range ps {
		if c.lightweight && c.childID == id {
			return c
		}
	}
	return nil
}

// resolveChild maps a listener's Child answer to a proxy.
func (b *Bridge) resolveChild(p *Proxy, c Child) *Proxy {
	if c.Node != nil {
		if c.Node.disposed {
			return nil
		}
		return b.proxyFor(c.Node)
	}
	return b.childByID(p, c.ID)
}

// handleOf returns the handle of p, or NoHandle when p is nil.
func handleOf(p *Proxy) Handle {
	if p == nil {
		return NoHandle
	}
	return p.handle
}

// retained retains p on behalf of the caller and returns its handle.
func (b *Bridge) retained(p *Proxy) Handle {
	if p == nil {
		return NoHandle
	}
	b.retain(p)
	return p.handle
}
