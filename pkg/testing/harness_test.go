package testing

import (
	"testing"

	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/platform"
)

func TestRecorderDecodesSignals(t *testing.T) {
	h := NewHarnessWithT(t)
	node := h.Node(h.Widget("Entry"))

	if err := node.TextCaretMoved(3); err != nil {
		t.Fatalf("TextCaretMoved: %v", err)
	}

	signals := h.Recorder.Signals()
	if len(signals) != 1 {
		t.Fatalf("expected 1 signal, got %d", len(signals))
	}
	s := signals[0]
	if s.FullName() != "text-caret-moved" {
		t.Errorf("expected text-caret-moved, got %q", s.FullName())
	}
	if offset, ok := s.IntArg(0); !ok || offset != 3 {
		t.Errorf("expected offset 3, got %v (ok=%v)", offset, ok)
	}
	if s.Source != uint64(h.Handle(node)) {
		t.Errorf("source %#x is not the node's handle %v", s.Source, h.Handle(node))
	}

	h.Recorder.Reset()
	if len(h.Recorder.Names()) != 0 {
		t.Error("expected Reset to forget signals")
	}
}

func TestRecorderFailureIsReported(t *testing.T) {
	h := NewHarnessWithT(t)
	node := h.Node(h.Widget("Entry"))
	h.Recorder.Err = platform.NewChannelError("unavailable", "runtime gone")

	if err := node.SelectionChanged(); err == nil {
		t.Fatal("expected an error when the runtime rejects the signal")
	}
	errs := h.Errors.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 reported error, got %d", len(errs))
	}
	if errs[0].Kind != errors.KindPlatform {
		t.Errorf("expected platform error, got %s", errs[0].Kind)
	}
	var ce *platform.ChannelError
	if !errors.As(errs[0], &ce) || ce.Code != "unavailable" {
		t.Errorf("expected the channel error to be wrapped, got %v", errs[0])
	}
}

func TestRecorderRejectsUnknownMethod(t *testing.T) {
	r := &Recorder{}
	_, err := r.InvokeMethod(platform.DefaultChannel, "query", nil)
	var ce *platform.ChannelError
	if !errors.As(err, &ce) || ce.Code != "unknown_method" {
		t.Errorf("expected unknown_method, got %v", err)
	}
}

func TestOffThreadCallsAreUsageErrors(t *testing.T) {
	h := NewHarnessWithT(t)
	h.Toolkit.SetUIThread(false)

	_, err := h.Bridge.NodeFor(h.Widget("Button"))
	if !errors.Is(err, errors.ErrInvalidThread) {
		t.Fatalf("expected ErrInvalidThread, got %v", err)
	}
	if len(h.Errors.Errors()) != 1 {
		t.Errorf("expected the violation to be reported once, got %d", len(h.Errors.Errors()))
	}

	h.Toolkit.SetUIThread(true)
	if _, err := h.Bridge.NodeFor(h.Widget("Button")); err != nil {
		t.Errorf("expected success back on the UI thread, got %v", err)
	}
}

func TestWindowWidgetOrigins(t *testing.T) {
	h := NewHarnessWithT(t)
	a := h.WindowWidget("Frame", 10, 20)
	b := h.WindowWidget("Frame", 300, 400)

	if a.Surface == b.Surface {
		t.Fatal("expected distinct surfaces")
	}
	origin, ok := h.Toolkit.WindowOrigin(b.Surface)
	if !ok || origin != (geometry.Point{X: 300, Y: 400}) {
		t.Errorf("expected origin (300,400), got %v (ok=%v)", origin, ok)
	}
	if _, ok := h.Toolkit.Surface(h.Widget("Label")); ok {
		t.Error("plain widgets should have no surface")
	}
}

func TestRuntimeVersionOption(t *testing.T) {
	h := NewHarnessWithT(t, WithRuntimeVersion("v2.8.0"))
	if got := h.Bridge.RuntimeVersion(); got != "v2.8.0" {
		t.Errorf("expected v2.8.0, got %q", got)
	}
}

func TestCleanupRestoresHandler(t *testing.T) {
	h := NewHarness()
	if errors.Handler() != h.Errors {
		t.Fatal("expected the harness to install its recorder")
	}
	h.Cleanup()
	if _, ok := errors.Handler().(*errors.LogHandler); !ok {
		t.Errorf("expected LogHandler after Cleanup, got %T", errors.Handler())
	}
}

func TestBuildRejectsUnknownNames(t *testing.T) {
	h := NewHarnessWithT(t)
	for _, src := range []string{"role: gizmo", "states: [sparkly]"} {
		f, err := ParseFixture([]byte(src))
		if err != nil {
			t.Fatalf("ParseFixture(%q): %v", src, err)
		}
		if _, err := h.Build(f); err == nil {
			t.Errorf("Build(%q) should fail", src)
		}
	}
}
