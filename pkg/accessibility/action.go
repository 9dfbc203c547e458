package accessibility

// ActionCount returns the number of actions.
func (b *Bridge) ActionCount(h Handle) int {
	p, ok := b.enter("ActionCount", h)
	if !ok {
		return 0
	}
	var parent int
	if base := p.base(); base != nil && base.ActionCount != nil {
		parent = base.ActionCount(p.node.widget)
	}
	e := &ActionEvent{Node: p.node, ChildID: p.childID, Count: parent}
	if !notify("ActionCount", p.node.listeners.action.snapshot(), e, ActionListener.GetActionCount) {
		return parent
	}
	return e.Count
}

// DoAction performs action i. With action listeners the call succeeds only
// when a listener answers OK; otherwise the inherited action runs.
func (b *Bridge) DoAction(h Handle, i int) bool {
	p, ok := b.enter("DoAction", h)
	if !ok {
		return false
	}
	ls := p.node.listeners.action.snapshot()
	if len(ls) == 0 {
		if base := p.base(); base != nil && base.DoAction != nil {
			return base.DoAction(p.node.widget, i)
		}
		return false
	}
	e := &ActionEvent{Node: p.node, ChildID: p.childID, Index: i}
	return notify("DoAction", ls, e, ActionListener.DoAction) && e.Result == OK
}

// actionName seeds listeners with the inherited name; the default action
// is named by the control aspect when nothing is inherited.
func (b *Bridge) actionName(op string, h Handle, i int, localized bool) string {
	p, ok := b.enter(op, h)
	if !ok {
		return ""
	}
	var parent string
	if base := p.base(); base != nil && base.ActionName != nil {
		parent = base.ActionName(p.node.widget, i)
	}
	if parent == "" && i == 0 {
		ce := &ControlEvent{Node: p.node, ChildID: p.childID}
		notify("DefaultAction", p.node.listeners.control.snapshot(), ce, ControlListener.GetDefaultAction)
		parent = ce.Result
	}
	e := &ActionEvent{Node: p.node, ChildID: p.childID, Index: i, Localized: localized, Result: parent}
	if !notify(op, p.node.listeners.action.snapshot(), e, ActionListener.GetName) {
		return parent
	}
	return e.Result
}

// ActionName returns the programmatic name of action i.
func (b *Bridge) ActionName(h Handle, i int) string {
	return b.actionName("ActionName", h, i, false)
}

// LocalizedActionName returns the display name of action i.
func (b *Bridge) LocalizedActionName(h Handle, i int) string {
	return b.actionName("LocalizedActionName", h, i, true)
}

// ActionDescription describes action i.
func (b *Bridge) ActionDescription(h Handle, i int) string {
	p, ok := b.enter("ActionDescription", h)
	if !ok {
		return ""
	}
	e := &ActionEvent{Node: p.node, ChildID: p.childID, Index: i}
	notify("ActionDescription", p.node.listeners.action.snapshot(), e, ActionListener.GetDescription)
	return e.Result
}

// ActionKeyBinding returns the key binding of action i. The default
// action falls back to the node's keyboard shortcut.
func (b *Bridge) ActionKeyBinding(h Handle, i int) string {
	p, ok := b.enter("ActionKeyBinding", h)
	if !ok {
		return ""
	}
	e := &ActionEvent{Node: p.node, ChildID: p.childID, Index: i}
	notify("ActionKeyBinding", p.node.listeners.action.snapshot(), e, ActionListener.GetKeyBinding)
	if e.Result != "" || i != 0 {
		return e.Result
	}
	ne := &NamingEvent{Node: p.node, ChildID: p.childID}
	notify("KeyboardShortcut", p.node.listeners.naming.snapshot(), ne, NamingListener.GetKeyboardShortcut)
	return ne.Result
}
