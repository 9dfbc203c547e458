package accessibility_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	"github.com/go-drift/accessbridge/pkg/platform"
	"github.com/go-drift/accessbridge/pkg/semantics"
	a11ytest "github.com/go-drift/accessbridge/pkg/testing"
)

type selectableList struct {
	h        *a11ytest.Harness
	list     *accessibility.Node
	items    []*accessibility.Node
	selected map[*accessibility.Node]bool
	calls    []string
}

func newSelectableList(t *testing.T, n int) *selectableList {
	t.Helper()
	s := &selectableList{h: a11ytest.NewHarnessWithT(t), selected: make(map[*accessibility.Node]bool)}
	require.NoError(t, s.h.Bridge.RegisterBase("List", 0, &accessibility.Base{
		SelectChild: func(_ platform.Widget, i int, selected bool) bool {
			s.calls = append(s.calls, fmt.Sprintf("%d:%v", i, selected))
			return true
		},
	}))
	s.list = s.h.Node(s.h.Widget("List"))
	for i := 0; i < n; i++ {
		item := s.h.SubNode(s.list)
		require.NoError(t, item.AddControlListener(&control{
			onState: func(e *accessibility.ControlEvent) {
				if s.selected[item] {
					e.State = e.State.Set(semantics.StateSelected)
				}
			},
		}))
		s.items = append(s.items, item)
	}
	return s
}

func TestSelectionFollowsChildStates(t *testing.T) {
	s := newSelectableList(t, 3)
	b := s.h.Bridge
	handle := s.h.Handle(s.list)

	assert.Equal(t, 0, b.SelectionCount(handle))

	s.selected[s.items[1]] = true
	s.selected[s.items[2]] = true
	assert.Equal(t, 2, b.SelectionCount(handle))
	assert.True(t, b.IsChildSelected(handle, 1))
	assert.False(t, b.IsChildSelected(handle, 0))
	assert.False(t, b.IsChildSelected(handle, 7))

	first := b.RefSelection(handle, 0)
	assert.Equal(t, s.h.Handle(s.items[1]), first)
	require.NoError(t, b.Unref(first))
	assert.Equal(t, accessibility.NoHandle, b.RefSelection(handle, 5))
}

func TestSelectionKeptByListenerThatOnlySetsRole(t *testing.T) {
	s := newSelectableList(t, 3)
	require.NoError(t, s.list.AddControlListener(withRole(semantics.RoleList)))
	handle := s.h.Handle(s.list)
	s.selected[s.items[2]] = true

	assert.Equal(t, 1, s.h.Bridge.SelectionCount(handle))
	assert.True(t, s.h.Bridge.IsChildSelected(handle, 2))
}

func TestSelectionWritesGoThroughInheritedBehavior(t *testing.T) {
	s := newSelectableList(t, 3)
	b := s.h.Bridge
	handle := s.h.Handle(s.list)
	s.selected[s.items[1]] = true
	s.selected[s.items[2]] = true

	assert.True(t, b.AddSelection(handle, 0))
	assert.True(t, b.RemoveSelection(handle, 1))
	assert.False(t, b.RemoveSelection(handle, 4))
	assert.True(t, b.ClearSelection(handle))

	assert.Equal(t, []string{"0:true", "2:false", "1:false", "2:false"}, s.calls)
}

func TestSelectionWithoutInheritedBehaviorFails(t *testing.T) {
	h := a11ytest.NewHarnessWithT(t)
	handle := h.Handle(h.Node(h.Widget("Group")))

	assert.False(t, h.Bridge.AddSelection(handle, 0))
	assert.True(t, h.Bridge.ClearSelection(handle), "nothing selected, nothing to clear")
}

func TestSelectionListenerNamesLightweightChildren(t *testing.T) {
	h := a11ytest.NewHarnessWithT(t)
	node := h.Node(h.Widget("ListBox"))
	ids := []int{10, 11, 12}
	c := lightweightChildren(&ids)
	var answer []int
	c.onSelection = func(e *accessibility.ControlEvent) {
		switch len(answer) {
		case 0:
		case 1:
			e.Child = accessibility.ChildID(answer[0])
		default:
			e.Child = accessibility.ChildID(accessibility.ChildIDMultiple)
			e.Children = nil
			for _, id := range answer {
				e.Children = append(e.Children, accessibility.ChildID(id))
			}
		}
	}
	require.NoError(t, node.AddControlListener(c))
	handle := h.Handle(node)

	assert.Equal(t, 0, h.Bridge.SelectionCount(handle))

	answer = []int{11}
	assert.Equal(t, 1, h.Bridge.SelectionCount(handle))
	assert.True(t, h.Bridge.IsChildSelected(handle, 1))

	answer = []int{10, 12}
	assert.Equal(t, 2, h.Bridge.SelectionCount(handle))
	assert.True(t, h.Bridge.IsChildSelected(handle, 2))
	assert.False(t, h.Bridge.IsChildSelected(handle, 1))

	ref := h.Bridge.RefSelection(handle, 1)
	p, ok := h.Bridge.Lookup(ref)
	require.True(t, ok)
	assert.Equal(t, 12, p.ChildID())
	require.NoError(t, h.Bridge.Unref(ref))
}
