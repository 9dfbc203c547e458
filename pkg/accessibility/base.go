package accessibility

import (
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/platform"
	"github.com/go-drift/accessbridge/pkg/protocol"
)

// Base is the inherited behavior of a widget class: what the native type
// answers before any listener is consulted. Nil slots have no inherited
// answer. Extents are in screen coordinates.
type Base struct {
	Name          func(w platform.Widget) string
	Description   func(w platform.Widget) string
	Role          func(w platform.Widget) protocol.Role
	States        func(w platform.Widget) protocol.StateSet
	ChildCount    func(w platform.Widget) int
	Child         func(w platform.Widget, i int) platform.Widget
	IndexInParent func(w platform.Widget) int
	Extents       func(w platform.Widget) geometry.Rect
	ActionCount   func(w platform.Widget) int
	ActionName    func(w platform.Widget, i int) string
	DoAction      func(w platform.Widget, i int) bool
	Text          func(w platform.Widget) string
	CaretOffset   func(w platform.Widget) int
	SelectChild   func(w platform.Widget, i int, selected bool) bool
	CurrentValue  func(w platform.Widget) float64
	MinimumValue  func(w platform.Widget) float64
	MaximumValue  func(w platform.Widget) float64
	Attributes    func(w platform.Widget) map[string]string
}

// Inherit fills nil slots from the ancestor's Base.
func (b *Base) Inherit(parent any) {
	p, ok := parent.(*Base)
	if !ok || p == nil {
		return
	}
	if b.Name == nil {
		b.Name = p.Name
	}
	if b.Description == nil {
		b.Description = p.Description
	}
	if b.Role == nil {
		b.Role = p.Role
	}
	if b.States == nil {
		b.States = p.States
	}
	if b.ChildCount == nil {
		b.ChildCount = p.ChildCount
	}
	if b.Child == nil {
		b.Child = p.Child
	}
	if b.IndexInParent == nil {
		b.IndexInParent = p.IndexInParent
	}
	if b.Extents == nil {
		b.Extents = p.Extents
	}
	if b.ActionCount == nil {
		b.ActionCount = p.ActionCount
	}
	if b.ActionName == nil {
		b.ActionName = p.ActionName
	}
	if b.DoAction == nil {
		b.DoAction = p.DoAction
	}
	if b.Text == nil {
		b.Text = p.Text
	}
	if b.CaretOffset == nil {
		b.CaretOffset = p.CaretOffset
	}
	if b.SelectChild == nil {
		b.SelectChild = p.SelectChild
	}
	if b.CurrentValue == nil {
		b.CurrentValue = p.CurrentValue
	}
	if b.MinimumValue == nil {
		b.MinimumValue = p.MinimumValue
	}
	if b.MaximumValue == nil {
		b.MaximumValue = p.MaximumValue
	}
	if b.Attributes == nil {
		b.Attributes = p.Attributes
	}
}
