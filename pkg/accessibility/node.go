package accessibility

import (
	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/platform"
	"github.com/go-drift/accessbridge/pkg/semantics"
)

// Relation is a directed edge from a node to Target. Relations compare
// structurally.
type Relation struct {
	Kind   semantics.RelationKind
	Target *Node
}

// Node is an accessible element: the primary node of a widget or a declared
// sub-node owned by its parent node.
type Node struct {
	bridge    *Bridge
	widget    platform.Widget
	parent    *Node
	children  []*Node
	relations []Relation
	listeners registry
	proxy     *Proxy
	lastText  string
	disposed  bool
}

// Widget returns the widget of a primary node, or nil for sub-nodes.
func (n *Node) Widget() platform.Widget {
	return n.widget
}

// Parent returns the owning node of a sub-node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the declared sub-nodes.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// Disposed reports whether the node has been disposed.
func (n *Node) Disposed() bool {
	return n.disposed
}

func (n *Node) hostClass() string {
	if n.widget == nil {
		return NodeHost
	}
	return n.widget.ClassName()
}

// check validates that the node may be used from the caller.
func (n *Node) check(op string) error {
	if err := n.bridge.checkThread(op); err != nil {
		return err
	}
	if n.disposed {
		return n.bridge.usage(op, errors.ErrDisposed)
	}
	return nil
}

// Handle returns the native handle of the node's proxy, creating the proxy
// on first use. When the node's role changed since the proxy was created,
// the proxy is replaced by one of the matching native type.
func (n *Node) Handle() (Handle, error) {
	if err := n.check("accessibility.Node.Handle"); err != nil {
		return NoHandle, err
	}
	return n.bridge.proxyFor(n).handle, nil
}

// Dispose disposes the node and its sub-nodes and releases the node's
// reference on its proxy.
func (n *Node) Dispose() error {
	if err := n.bridge.checkThread("accessibility.Node.Dispose"); err != nil {
		return err
	}
	n.dispose()
	return nil
}

func (n *Node) dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	for _, c := range n.children {
		c.dispose()
	}
	n.children = nil
	if n.parent != nil {
		n.parent.removeChild(n)
	}
	if n.widget != nil && n.bridge.nodes[n.widget] == n {
		delete(n.bridge.nodes, n.widget)
	}
	if p := n.proxy; p != nil {
		n.proxy = nil
		n.bridge.release(p)
	}
}

func (n *Node) removeChild(c *Node) {
	for i, x := range n.children {
		if x == c {
			n.children = append(n.children[:i:i], n.children[i+1:]...)
			return
		}
	}
}

// AddRelation adds a relation to target. Adding an existing relation is a
// no-op; the symmetric relation is not added.
func (n *Node) AddRelation(kind semantics.RelationKind, target *Node) error {
	const op = "accessibility.Node.AddRelation"
	if err := n.check(op); err != nil {
		return err
	}
	if target == nil {
		return n.bridge.usage(op, errors.ErrNilArgument)
	}
	if target.disposed {
		return n.bridge.usage(op, errors.ErrDisposed)
	}
	r := Relation{Kind: kind, Target: target}
	for _, x := range n.relations {
		if x == r {
			return nil
		}
	}
	n.relations = append(n.relations, r)
	return nil
}

// RemoveRelation removes a relation. Removing a missing relation is a no-op.
func (n *Node) RemoveRelation(kind semantics.RelationKind, target *Node) error {
	const op = "accessibility.Node.RemoveRelation"
	if err := n.check(op); err != nil {
		return err
	}
	if target == nil {
		return n.bridge.usage(op, errors.ErrNilArgument)
	}
	r := Relation{Kind: kind, Target: target}
	for i, x := range n.relations {
		if x == r {
			n.relations = append(n.relations[:i:i], n.relations[i+1:]...)
			return nil
		}
	}
	return nil
}

// Relations returns the relation set in insertion order.
func (n *Node) Relations() []Relation {
	out := make([]Relation, len(n.relations))
	copy(out, n.relations)
	return out
}

func addListener[L comparable](n *Node, op string, l *list[L], x L) error {
	if err := n.check(op); err != nil {
		return err
	}
	if any(x) == nil {
		return n.bridge.usage(op, errors.ErrNilArgument)
	}
	l.add(x)
	return nil
}

func removeListener[L comparable](n *Node, op string, l *list[L], x L) error {
	if err := n.check(op); err != nil {
		return err
	}
	if any(x) == nil {
		return n.bridge.usage(op, errors.ErrNilArgument)
	}
	l.remove(x)
	return nil
}

// Listeners are compared by identity on removal; register pointers or
// other comparable values.

func (n *Node) AddNamingListener(l NamingListener) error {
	return addListener(n, "accessibility.Node.AddNamingListener", &n.listeners.naming, l)
}

func (n *Node) RemoveNamingListener(l NamingListener) error {
	return removeListener(n, "accessibility.Node.RemoveNamingListener", &n.listeners.naming, l)
}

func (n *Node) AddControlListener(l ControlListener) error {
	return addListener(n, "accessibility.Node.AddControlListener", &n.listeners.control, l)
}

func (n *Node) RemoveControlListener(l ControlListener) error {
	return removeListener(n, "accessibility.Node.RemoveControlListener", &n.listeners.control, l)
}

func (n *Node) AddTextListener(l TextListener) error {
	return addListener(n, "accessibility.Node.AddTextListener", &n.listeners.text, l)
}

func (n *Node) RemoveTextListener(l TextListener) error {
	return removeListener(n, "accessibility.Node.RemoveTextListener", &n.listeners.text, l)
}

func (n *Node) AddTextExtendedListener(l TextExtendedListener) error {
	return addListener(n, "accessibility.Node.AddTextExtendedListener", &n.listeners.textExt, l)
}

func (n *Node) RemoveTextExtendedListener(l TextExtendedListener) error {
	return removeListener(n, "accessibility.Node.RemoveTextExtendedListener", &n.listeners.textExt, l)
}

func (n *Node) AddActionListener(l ActionListener) error {
	return addListener(n, "accessibility.Node.AddActionListener", &n.listeners.action, l)
}

func (n *Node) RemoveActionListener(l ActionListener) error {
	return removeListener(n, "accessibility.Node.RemoveActionListener", &n.listeners.action, l)
}

func (n *Node) AddEditableTextListener(l EditableTextListener) error {
	return addListener(n, "accessibility.Node.AddEditableTextListener", &n.listeners.editable, l)
}

func (n *Node) RemoveEditableTextListener(l EditableTextListener) error {
	return removeListener(n, "accessibility.Node.RemoveEditableTextListener", &n.listeners.editable, l)
}

func (n *Node) AddHyperlinkListener(l HyperlinkListener) error {
	return addListener(n, "accessibility.Node.AddHyperlinkListener", &n.listeners.hyperlink, l)
}

func (n *Node) RemoveHyperlinkListener(l HyperlinkListener) error {
	return removeListener(n, "accessibility.Node.RemoveHyperlinkListener", &n.listeners.hyperlink, l)
}

func (n *Node) AddTableListener(l TableListener) error {
	return addListener(n, "accessibility.Node.AddTableListener", &n.listeners.table, l)
}

func (n *Node) RemoveTableListener(l TableListener) error {
	return removeListener(n, "accessibility.Node.RemoveTableListener", &n.listeners.table, l)
}

func (n *Node) AddTableCellListener(l TableCellListener) error {
	return addListener(n, "accessibility.Node.AddTableCellListener", &n.listeners.tableCell, l)
}

func (n *Node) RemoveTableCellListener(l TableCellListener) error {
	return removeListener(n, "accessibility.Node.RemoveTableCellListener", &n.listeners.tableCell, l)
}

func (n *Node) AddValueListener(l ValueListener) error {
	return addListener(n, "accessibility.Node.AddValueListener", &n.listeners.value, l)
}

func (n *Node) RemoveValueListener(l ValueListener) error {
	return removeListener(n, "accessibility.Node.RemoveValueListener", &n.listeners.value, l)
}

func (n *Node) AddAttributeListener(l AttributeListener) error {
	return addListener(n, "accessibility.Node.AddAttributeListener", &n.listeners.attribute, l)
}

func (n *Node) RemoveAttributeListener(l AttributeListener) error {
	return removeListener(n, "accessibility.Node.RemoveAttributeListener", &n.listeners.attribute, l)
}
