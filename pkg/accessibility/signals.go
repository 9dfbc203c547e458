package accessibility

import (
	"strings"

	"go.uber.org/zap"

	"github.com/go-drift/accessbridge/pkg/platform"
	"github.com/go-drift/accessbridge/pkg/protocol"
	"github.com/go-drift/accessbridge/pkg/semantics"
)

// Event names a notification forwarded with SendEvent. The value is the
// native signal name, optionally qualified with "::detail".
type Event string

const (
	EventStateChanged          Event = "state-changed"
	EventNameChanged           Event = "property-change::accessible-name"
	EventDescriptionChanged    Event = "property-change::accessible-description"
	EventValueChanged          Event = "property-change::accessible-value"
	EventLocationChanged       Event = "bounds-changed"
	EventAttributeChanged      Event = "attributes-changed"
	EventTextAttributesChanged Event = "text-attributes-changed"
	EventTableChanged          Event = "model-changed"
	EventHyperlinkSelected     Event = "link-selected"
	EventSelectionChanged      Event = "selection-changed"
	EventTextSelectionChanged  Event = "text-selection-changed"
	EventCaretMoved            Event = "text-caret-moved"
)

// TextChange is the kind of a text change notification.
type TextChange int

const (
	TextInsert TextChange = iota
	TextDelete
)

func (k TextChange) String() string {
	if k == TextDelete {
		return "delete"
	}
	return "insert"
}

// emit sends one signal from p. Without a runtime signals are dropped.
func (b *Bridge) emit(p *Proxy, name, detail string, args ...any) error {
	if b.runtime == nil {
		return nil
	}
	s := platform.Signal{Source: uint64(p.handle), Name: name, Detail: detail, Args: args}
	b.log.Debug("emit", zap.Stringer("signal", s))
	return b.runtime.Emit(s)
}

func (n *Node) signalProxy(op string) (*Proxy, error) {
	if err := n.check(op); err != nil {
		return nil, err
	}
	return n.bridge.proxyFor(n), nil
}

// SelectionChanged notifies that the selected children changed.
func (n *Node) SelectionChanged() error {
	p, err := n.signalProxy("accessibility.Node.SelectionChanged")
	if err != nil {
		return err
	}
	return n.bridge.emit(p, string(EventSelectionChanged), "")
}

// FocusChanged notifies that focus moved to the node (ChildIDSelf) or to
// one of its lightweight children.
func (n *Node) FocusChanged(childID int) error {
	p, err := n.signalProxy("accessibility.Node.FocusChanged")
	if err != nil {
		return err
	}
	target := n.bridge.childByID(p, childID)
	if target == nil {
		n.bridge.log.Debug("focus target not found", zap.Int("child_id", childID))
		return nil
	}
	return n.bridge.emit(target, string(EventStateChanged), protocol.StateFocused.String(), true)
}

// TextCaretMoved notifies the new caret offset.
func (n *Node) TextCaretMoved(offset int) error {
	p, err := n.signalProxy("accessibility.Node.TextCaretMoved")
	if err != nil {
		return err
	}
	return n.bridge.emit(p, string(EventCaretMoved), "", offset)
}

// TextSelectionChanged notifies that the text selection changed.
func (n *Node) TextSelectionChanged() error {
	p, err := n.signalProxy("accessibility.Node.TextSelectionChanged")
	if err != nil {
		return err
	}
	return n.bridge.emit(p, string(EventTextSelectionChanged), "")
}

// TextChanged notifies an insertion or deletion of length characters at
// start. Runtimes at TextChangeVersion or later also receive text-insert or
// text-remove carrying the affected text.
func (n *Node) TextChanged(kind TextChange, start, length int) error {
	p, err := n.signalProxy("accessibility.Node.TextChanged")
	if err != nil {
		return err
	}
	b := n.bridge
	previous := n.lastText
	current := b.text(p)
	if err := b.emit(p, "text-changed", kind.String(), start, length); err != nil {
		return err
	}
	if !b.supports(TextChangeVersion) {
		return nil
	}
	source, name := current, "text-insert"
	if kind == TextDelete {
		source, name = previous, "text-remove"
	}
	return b.emit(p, name, "", start, length, runeSlice(source, start, start+length))
}

func runeSlice(s string, start, end int) string {
	runes := []rune(s)
	start, end = clampRange(len(runes), start, end)
	return string(runes[start:end])
}

// SendEvent forwards a named event. A state-changed event with a
// semantics.State payload emits one signal per translated native state.
func (n *Node) SendEvent(event Event, payload any) error {
	p, err := n.signalProxy("accessibility.Node.SendEvent")
	if err != nil {
		return err
	}
	name, detail, _ := strings.Cut(string(event), "::")
	if event == EventStateChanged {
		if s, ok := payload.(semantics.State); ok {
			set := protocol.TranslateStates(s)
			for _, st := range set.States() {
				if err := n.bridge.emit(p, name, st.String(), true); err != nil {
					return err
				}
			}
			for _, st := range protocol.SuppressedStates(s).States() {
				if err := n.bridge.emit(p, name, st.String(), false); err != nil {
					return err
				}
			}
			return nil
		}
	}
	if payload == nil {
		return n.bridge.emit(p, name, detail)
	}
	return n.bridge.emit(p, name, detail, payload)
}

// ChildrenChanged refreshes the child array and notifies every removed and
// added child.
func (n *Node) ChildrenChanged() error {
	p, err := n.signalProxy("accessibility.Node.ChildrenChanged")
	if err != nil {
		return err
	}
	b := n.bridge
	before := make(map[*Proxy]int, len(p.children))
	for i, c := range p.children {
		before[c] = i
		b.retain(c)
	}
	old := p.children
	b.updateChildren(p)
	defer func() {
		for _, c := range old {
			b.release(c)
		}
	}()
	after := make(map[*Proxy]struct{}, len(p.children))
	for _, c := range p.children {
		after[c] = struct{}{}
	}
	for i, c := range old {
		if _, kept := after[c]; !kept {
			if err := b.emit(p, "children-changed", "remove", i, uint64(c.handle)); err != nil {
				return err
			}
		}
	}
	for i, c := range p.children {
		if _, had := before[c]; !had {
			if err := b.emit(p, "children-changed", "add", i, uint64(c.handle)); err != nil {
				return err
			}
		}
	}
	return nil
}
