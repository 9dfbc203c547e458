package testing

import (
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/go-drift/accessbridge/pkg/accessibility"
	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/platform"
)

// DefaultRuntimeVersion is the runtime version a harness reports unless
// WithRuntimeVersion is given.
const DefaultRuntimeVersion = "v2.38.0"

// Harness wires a bridge to a fake toolkit and a recording native runtime.
// Usage errors and listener panics go to Errors while the harness is live.
type Harness struct {
	Toolkit  *FakeToolkit
	Recorder *Recorder
	Runtime  *platform.ChannelRuntime
	Bridge   *accessibility.Bridge
	Errors   *ErrorRecorder

	nextSurface platform.Surface
}

type config struct {
	version string
	bridge  accessibility.Options
}

// Option configures a Harness.
type Option func(*config)

// WithRuntimeVersion sets the version the native runtime reports.
func WithRuntimeVersion(v string) Option {
	return func(c *config) { c.version = v }
}

// WithLogger sets the bridge logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.bridge.Logger = l }
}

// WithTypePrefix sets the native type name prefix.
func WithTypePrefix(prefix string) Option {
	return func(c *config) { c.bridge.TypePrefix = prefix }
}

// WithRootBase sets the behavior every widget class inherits.
func WithRootBase(b *accessibility.Base) Option {
	return func(c *config) { c.bridge.RootBase = b }
}

// WithBridgeOptions starts from opts, typically built with
// accessibility.OptionsFromConfig. The harness still supplies the toolkit
// and the runtime.
func WithBridgeOptions(opts accessibility.Options) Option {
	return func(c *config) { c.bridge = opts }
}

// NewHarness creates a harness and installs its error recorder as the
// global error handler. Call Cleanup when done, or use NewHarnessWithT.
func NewHarness(opts ...Option) *Harness {
	cfg := config{
		version: DefaultRuntimeVersion,
		bridge:  accessibility.Options{TypePrefix: "Test"},
	}
	for _, o := range opts {
		o(&cfg)
	}
	h := &Harness{
		Toolkit:  NewFakeToolkit(),
		Recorder: &Recorder{},
		Errors:   &ErrorRecorder{},
	}
	h.Runtime = platform.NewChannelRuntime(h.Recorder, cfg.version)
	cfg.bridge.Toolkit = h.Toolkit
	cfg.bridge.Runtime = h.Runtime
	h.Bridge = accessibility.New(cfg.bridge)
	errors.SetHandler(h.Errors)
	return h
}

// NewHarnessWithT creates a harness cleaned up via t.Cleanup().
// This is the recommended constructor for tests.
func NewHarnessWithT(t *testing.T, opts ...Option) *Harness {
	h := NewHarness(opts...)
	t.Cleanup(h.Cleanup)
	return h
}

// Cleanup restores the default global error handler.
func (h *Harness) Cleanup() {
	errors.SetHandler(nil)
}

// Widget returns a new widget of class.
func (h *Harness) Widget(class string) *FakeWidget {
	return &FakeWidget{Class: class}
}

// WindowWidget returns a widget with its own surface whose window sits at
// (x, y) on screen.
func (h *Harness) WindowWidget(class string, x, y int) *FakeWidget {
	h.nextSurface++
	w := &FakeWidget{Class: class, Surface: h.nextSurface}
	h.Toolkit.SetWindowOrigin(w.Surface, geometry.Point{X: x, Y: y})
	return w
}

// Node returns the primary node of w. It panics on usage errors.
func (h *Harness) Node(w platform.Widget) *accessibility.Node {
	n, err := h.Bridge.NodeFor(w)
	if err != nil {
		panic(fmt.Sprintf("NodeFor(%s): %v", w.ClassName(), err))
	}
	return n
}

// SubNode declares a sub-node of parent. It panics on usage errors.
func (h *Harness) SubNode(parent *accessibility.Node) *accessibility.Node {
	n, err := h.Bridge.NewNode(parent)
	if err != nil {
		panic(fmt.Sprintf("NewNode: %v", err))
	}
	return n
}

// Handle returns the native handle of n. It panics on usage errors.
func (h *Harness) Handle(n *accessibility.Node) accessibility.Handle {
	handle, err := n.Handle()
	if err != nil {
		panic(fmt.Sprintf("Handle: %v", err))
	}
	return handle
}

// Capture returns the native view rooted at n.
func (h *Harness) Capture(n *accessibility.Node) *View {
	return Capture(h.Bridge, h.Handle(n))
}

// Find evaluates f on the native view rooted at n.
func (h *Harness) Find(n *accessibility.Node, f Finder) FinderResult {
	return Find(h.Capture(n), f)
}
