package accessibility

import (
	"strconv"

	"github.com/go-drift/accessbridge/pkg/protocol"
	"github.com/go-drift/accessbridge/pkg/semantics"
)

// RelationEntry is one native relation: a type and its targets. Target
// handles are borrowed; the runtime retains them if it keeps them.
type RelationEntry struct {
	Type    protocol.RelationType
	Targets []Handle
}

// Name returns the accessible name.
func (b *Bridge) Name(h Handle) string {
	p, ok := b.enter("Name", h)
	if !ok {
		return ""
	}
	var parent string
	if base := p.base(); base != nil && base.Name != nil {
		parent = base.Name(p.node.widget)
	}
	e := &NamingEvent{Node: p.node, ChildID: p.childID, Result: parent}
	if !notify("Name", p.node.listeners.naming.snapshot(), e, NamingListener.GetName) {
		return parent
	}
	return e.Result
}

// Description returns the accessible description. Listeners refine the
// inherited description; when it stays empty the help text is used.
func (b *Bridge) Description(h Handle) string {
	p, ok := b.enter("Description", h)
	if !ok {
		return ""
	}
	var parent string
	if base := p.base(); base != nil && base.Description != nil {
		parent = base.Description(p.node.widget)
	}
	ls := p.node.listeners.naming.snapshot()
	e := &NamingEvent{Node: p.node, ChildID: p.childID, Result: parent}
	if !notify("Description", ls, e, NamingListener.GetDescription) {
		return parent
	}
	if e.Result != "" {
		return e.Result
	}
	help := &NamingEvent{Node: p.node, ChildID: p.childID}
	notify("Help", ls, help, NamingListener.GetHelp)
	return help.Result
}

func (b *Bridge) role(p *Proxy) protocol.Role {
	parent := protocol.RoleUnknown
	if base := p.base(); base != nil && base.Role != nil {
		parent = base.Role(p.node.widget)
	}
	e := &ControlEvent{Node: p.node, ChildID: p.childID, Role: semantics.RoleUnspecified}
	if !notify("Role", p.node.listeners.control.snapshot(), e, ControlListener.GetRole) {
		return parent
	}
	if r, ok := protocol.TranslateRole(e.Role); ok {
		return r
	}
	return parent
}

// Role returns the native role. Roles without a translation keep the
// inherited role.
func (b *Bridge) Role(h Handle) protocol.Role {
	p, ok := b.enter("Role", h)
	if !ok {
		return protocol.RoleInvalid
	}
	return b.role(p)
}

// Parent returns the borrowed handle of the native parent.
func (b *Bridge) Parent(h Handle) Handle {
	p, ok := b.enter("Parent", h)
	if !ok {
		return NoHandle
	}
	return handleOf(b.parentOf(p))
}

// Focus returns the borrowed handle of the focused descendant, or NoHandle.
func (b *Bridge) Focus(h Handle) Handle {
	p, ok := b.enter("Focus", h)
	if !ok {
		return NoHandle
	}
	def := ChildID(ChildIDNone)
	if b.states(p).Contains(protocol.StateFocused) {
		def = ChildID(ChildIDSelf)
	}
	e := &ControlEvent{Node: p.node, ChildID: p.childID, Child: def}
	if !notify("Focus", p.node.listeners.control.snapshot(), e, ControlListener.GetFocus) {
		e.Child = def
	}
	return handleOf(b.resolveChild(p, e.Child))
}

// ChildCount refreshes the child array and returns the number of children.
func (b *Bridge) ChildCount(h Handle) int {
	p, ok := b.enter("ChildCount", h)
	if !ok {
		return 0
	}
	b.updateChildren(p)
	e := &ControlEvent{Node: p.node, ChildID: p.childID, Count: len(p.children)}
	if !notify("ChildCount", p.node.listeners.control.snapshot(), e, ControlListener.GetChildCount) {
		return len(p.children)
	}
	return e.Count
}

// RefChild returns a retained handle to the i-th child, or NoHandle when i
// is out of range.
func (b *Bridge) RefChild(h Handle, i int) Handle {
	p, ok := b.enter("RefChild", h)
	if !ok {
		return NoHandle
	}
	b.updateChildren(p)
	return b.retained(b.childByIndex(p, i))
}

// IndexInParent returns the position among the parent's children, or -1.
func (b *Bridge) IndexInParent(h Handle) int {
	p, ok := b.enter("IndexInParent", h)
	if !ok {
		return -1
	}
	if base := p.base(); base != nil && base.IndexInParent != nil {
		return base.IndexInParent(p.node.widget)
	}
	parent := b.parentOf(p)
	if parent == nil {
		return -1
	}
	if c := b.childByIndex(parent, p.index); c == p {
		return p.index
	}
	if i := indexOf(parent.children, p); i >= 0 {
		p.index = i
		return i
	}
	b.updateChildren(parent)
	if i := indexOf(parent.children, p); i >= 0 {
		p.index = i
		return i
	}
	return -1
}

func indexOf(ps []*Proxy, p *Proxy) int {
	for i, c := range ps {
		if c == p {
			return i
		}
	}
	return -1
}

func (b *Bridge) states(p *Proxy) protocol.StateSet {
	var parent protocol.StateSet
	if base := p.base(); base != nil && base.States != nil {
		parent = base.States(p.node.widget)
	}
	e := &ControlEvent{Node: p.node, ChildID: p.childID, State: protocol.ReverseStates(parent)}
	if !notify("StateSet", p.node.listeners.control.snapshot(), e, ControlListener.GetState) {
		return parent
	}
	set := parent.Union(protocol.TranslateStates(e.State))
	for _, s := range protocol.SuppressedStates(e.State).States() {
		set = set.Remove(s)
	}
	return set
}

// RefStateSet returns the native state set. A handle whose node is gone
// reports defunct.
func (b *Bridge) RefStateSet(h Handle) protocol.StateSet {
	p, ok := b.enter("RefStateSet", h)
	if !ok {
		if _, live := b.handles.get(h); live {
			return protocol.NewStateSet(protocol.StateDefunct)
		}
		return 0
	}
	return b.states(p)
}

// RefRelationSet groups the node's relations by native type in order of
// first appearance. Relations without a native type and disposed targets
// are left out.
func (b *Bridge) RefRelationSet(h Handle) []RelationEntry {
	p, ok := b.enter("RefRelationSet", h)
	if !ok || p.lightweight {
		return nil
	}
	var out []RelationEntry
	pos := make(map[protocol.RelationType]int)
	for _, r := range p.node.relations {
		t, ok := protocol.TranslateRelation(r.Kind)
		if !ok || r.Target.disposed {
			continue
		}
		target := b.proxyFor(r.Target).handle
		i, seen := pos[t]
		if !seen {
			i = len(out)
			pos[t] = i
			out = append(out, RelationEntry{Type: t})
		}
		out[i].Targets = append(out[i].Targets, target)
	}
	return out
}

// Attributes returns the object attributes: inherited pairs overlaid with
// listener pairs, plus group position and layout values the listener set.
func (b *Bridge) Attributes(h Handle) map[string]string {
	p, ok := b.enter("Attributes", h)
	if !ok {
		return nil
	}
	attrs := make(map[string]string)
	if base := p.base(); base != nil && base.Attributes != nil {
		for k, v := range base.Attributes(p.node.widget) {
			attrs[k] = v
		}
	}
	e := &AttributeEvent{Node: p.node, ChildID: p.childID}
	if !notify("Attributes", p.node.listeners.attribute.snapshot(), e, AttributeListener.GetAttributes) {
		return attrs
	}
	for k, v := range e.Attributes {
		attrs[k] = v
	}
	setInt := func(key string, v int) {
		if v != 0 {
			attrs[key] = strconv.Itoa(v)
		}
	}
	setInt(protocol.AttrLevel, e.GroupLevel)
	setInt(protocol.AttrSetSize, e.GroupCount)
	setInt(protocol.AttrPosInSet, e.GroupIndex)
	setInt(protocol.AttrLeftMargin, e.LeftMargin)
	setInt(protocol.AttrRightMargin, e.RightMargin)
	setInt(protocol.AttrIndent, e.Indent)
	if e.Alignment != "" {
		attrs[protocol.AttrJustification] = e.Alignment
	}
	return attrs
}

// Interfaces lists the native interfaces of the proxy's type.
func (b *Bridge) Interfaces(h Handle) []string {
	if err := b.checkThread("accessibility.Bridge.Interfaces"); err != nil {
		return nil
	}
	p, ok := b.handles.get(h)
	if !ok {
		return nil
	}
	out := make([]string, len(p.typ.Interfaces))
	copy(out, p.typ.Interfaces)
	return out
}

// TypeName returns the native type name of the proxy.
func (b *Bridge) TypeName(h Handle) string {
	if err := b.checkThread("accessibility.Bridge.TypeName"); err != nil {
		return ""
	}
	p, ok := b.handles.get(h)
	if !ok {
		return ""
	}
	return p.typ.Name
}
