package accessibility

import "github.com/go-drift/accessbridge/pkg/platform"

func (b *Bridge) value(op string, h Handle, slot func(*Base) func(platform.Widget) float64, call func(ValueListener, *ValueEvent)) float64 {
	p, ok := b.enter(op, h)
	if !ok {
		return 0
	}
	var parent float64
	if base := p.base(); base != nil {
		if f := slot(base); f != nil {
			parent = f(p.node.widget)
		}
	}
	e := &ValueEvent{Node: p.node, ChildID: p.childID, Value: parent}
	if !notify(op, p.node.listeners.value.snapshot(), e, call) {
		return parent
	}
	return e.Value
}

// CurrentValue returns the current numeric value.
func (b *Bridge) CurrentValue(h Handle) float64 {
	return b.value("CurrentValue", h,
		func(base *Base) func(platform.Widget) float64 { return base.CurrentValue },
		ValueListener.GetCurrentValue)
}

// MinimumValue returns the lower bound.
func (b *Bridge) MinimumValue(h Handle) float64 {
	return b.value("MinimumValue", h,
		func(base *Base) func(platform.Widget) float64 { return base.MinimumValue },
		ValueListener.GetMinimumValue)
}

// MaximumValue returns the upper bound.
func (b *Bridge) MaximumValue(h Handle) float64 {
	return b.value("MaximumValue", h,
		func(base *Base) func(platform.Widget) float64 { return base.MaximumValue },
		ValueListener.GetMaximumValue)
}

// SetCurrentValue asks the value listeners to apply v. It succeeds only
// when a listener answers OK.
func (b *Bridge) SetCurrentValue(h Handle, v float64) bool {
	p, ok := b.enter("SetCurrentValue", h)
	if !ok {
		return false
	}
	e := &ValueEvent{Node: p.node, ChildID: p.childID, Value: v}
	return notify("SetCurrentValue", p.node.listeners.value.snapshot(), e, ValueListener.SetCurrentValue) && e.Result == OK
}
