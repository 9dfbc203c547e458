package accessibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/platform"
	"github.com/go-drift/accessbridge/pkg/semantics"
	a11ytest "github.com/go-drift/accessbridge/pkg/testing"
)

func newEntry(t *testing.T, text string, opts ...a11ytest.Option) (*a11ytest.Harness, *accessibility.Node, *textSource) {
	t.Helper()
	h := a11ytest.NewHarnessWithT(t, opts...)
	node := h.Node(h.Widget("Entry"))
	src := &textSource{text: text}
	require.NoError(t, node.AddTextExtendedListener(src))
	h.Handle(node)
	return h, node, src
}

func intArgs(t *testing.T, s platform.Signal, n int) []int {
	t.Helper()
	out := make([]int, n)
	for i := range out {
		v, ok := s.IntArg(i)
		require.True(t, ok, "argument %d of %s", i, s)
		out[i] = v
	}
	return out
}

func TestTextChangedCarriesAffectedText(t *testing.T) {
	h, node, src := newEntry(t, "Hello")

	src.text = "Hello world"
	require.NoError(t, node.TextChanged(accessibility.TextInsert, 5, 6))
	src.text = "Hello"
	require.NoError(t, node.TextChanged(accessibility.TextDelete, 5, 6))

	assert.Equal(t, []string{
		"text-changed::insert", "text-insert",
		"text-changed::delete", "text-remove",
	}, h.Recorder.Names())

	signals := h.Recorder.Signals()
	assert.Equal(t, []int{5, 6}, intArgs(t, signals[0], 2))
	assert.Equal(t, " world", signals[1].StringArg(2))
	assert.Equal(t, " world", signals[3].StringArg(2), "removed text comes from the previous snapshot")
}

func TestTextChangedOnOlderRuntime(t *testing.T) {
	h, node, src := newEntry(t, "Hello", a11ytest.WithRuntimeVersion("v2.8.0"))

	src.text = "Hello!"
	require.NoError(t, node.TextChanged(accessibility.TextInsert, 5, 1))

	assert.Equal(t, []string{"text-changed::insert"}, h.Recorder.Names())
}

func TestStateChangedPayloadIsTranslated(t *testing.T) {
	h, node, _ := newEntry(t, "")

	require.NoError(t, node.SendEvent(accessibility.EventStateChanged, semantics.StateChecked|semantics.StateReadOnly))

	got := make(map[string]any)
	for _, s := range h.Recorder.Signals() {
		require.Equal(t, "state-changed", s.Name)
		require.Len(t, s.Args, 1)
		got[s.Detail] = s.Args[0]
	}
	assert.Equal(t, true, got["checked"])
	assert.Equal(t, true, got["enabled"])
	assert.Equal(t, true, got["showing"])
	assert.Equal(t, false, got["editable"])
	assert.NotContains(t, got, "focused")
}

func TestSendEvent(t *testing.T) {
	h, node, _ := newEntry(t, "")

	require.NoError(t, node.SendEvent(accessibility.EventNameChanged, nil))
	require.NoError(t, node.SendEvent(accessibility.EventCaretMoved, 4))

	assert.Equal(t, []string{"property-change::accessible-name", "text-caret-moved"}, h.Recorder.Names())
	assert.Equal(t, []int{4}, intArgs(t, h.Recorder.Signals()[1], 1))
}

func TestChildrenChanged(t *testing.T) {
	h := a11ytest.NewHarnessWithT(t)
	node := h.Node(h.Widget("ListBox"))
	ids := []int{1, 2}
	require.NoError(t, node.AddControlListener(lightweightChildren(&ids)))
	h.Handle(node)

	require.NoError(t, node.ChildrenChanged())
	assert.Equal(t, []string{"children-changed::add", "children-changed::add"}, h.Recorder.Names())

	h.Recorder.Reset()
	ids = []int{2, 3}
	require.NoError(t, node.ChildrenChanged())
	signals := h.Recorder.Signals()
	require.Len(t, signals, 2)
	assert.Equal(t, "children-changed::remove", signals[0].FullName())
	assert.Equal(t, 0, intArgs(t, signals[0], 1)[0])
	assert.Equal(t, "children-changed::add", signals[1].FullName())
	assert.Equal(t, 1, intArgs(t, signals[1], 1)[0])
}

func TestFocusChanged(t *testing.T) {
	h := a11ytest.NewHarnessWithT(t)
	node := h.Node(h.Widget("ListBox"))
	ids := []int{1, 2}
	require.NoError(t, node.AddControlListener(lightweightChildren(&ids)))
	handle := h.Handle(node)

	require.NoError(t, node.FocusChanged(accessibility.ChildIDSelf))
	require.NoError(t, node.FocusChanged(2))
	require.NoError(t, node.FocusChanged(99))

	signals := h.Recorder.Signals()
	require.Len(t, signals, 2)
	assert.Equal(t, "state-changed::focused", signals[0].FullName())
	assert.Equal(t, uint64(handle), signals[0].Source)
	assert.Equal(t, true, signals[0].Args[0])

	assert.NotEqual(t, uint64(handle), signals[1].Source)
	p, ok := h.Bridge.Lookup(accessibility.Handle(signals[1].Source))
	require.True(t, ok)
	assert.Equal(t, 2, p.ChildID())
}

func TestSignalsFromDisposedNodeFail(t *testing.T) {
	h, node, _ := newEntry(t, "")
	require.NoError(t, node.Dispose())

	err := node.TextCaretMoved(1)
	assert.True(t, errors.Is(err, errors.ErrDisposed))
	assert.Empty(t, h.Recorder.Names())
}
