// Package accessibility bridges application-defined UI semantics to a native
// assistive-technology runtime.
//
// Every widget (and every declared sub-part) is represented by a [Node].
// Applications describe a node by registering listeners per aspect: naming,
// control semantics, text, actions, tables, values and so on. The native
// runtime sees each node through a [Proxy] addressed by a [Handle]; its
// native type is composed from the node's role, and every native query is
// answered by the node's listeners or, when an aspect has none, by the
// behavior inherited from the widget class ([Base]).
//
// All calls must happen on the toolkit's UI thread.
package accessibility

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/mod/semver"
	"go.uber.org/zap"

	"github.com/go-drift/accessbridge/pkg/config"
	"github.com/go-drift/accessbridge/pkg/errors"
	"github.com/go-drift/accessbridge/pkg/platform"
	"github.com/go-drift/accessbridge/pkg/typereg"
)

// Host classes for proxies without a widget of their own.
const (
	// NodeHost is the host class of declared sub-nodes.
	NodeHost = "Node"
	// LightweightHost is the host class of lightweight children.
	LightweightHost = "Lightweight"
)

// TextChangeVersion is the first runtime version that receives
// text-insert / text-remove signals and supports StringAtOffset.
const TextChangeVersion = "v2.10.0"

// Options configures a Bridge.
type Options struct {
	// Toolkit answers thread, surface and window queries. Nil means every
	// call is on the UI thread and no node has a window.
	Toolkit platform.Toolkit
	// Runtime receives signals. Nil drops them.
	Runtime platform.Runtime
	// Logger receives debug events. Nil disables logging.
	Logger *zap.Logger
	// TypePrefix is prepended to native type names.
	TypePrefix string
	// RootSize is the instance size of the root native type.
	RootSize int
	// RootBase is the behavior inherited by every widget class.
	RootBase *Base
	// Face measures text when no listener supplies text bounds.
	Face font.Face
}

// OptionsFromConfig builds Options from a resolved configuration.
func OptionsFromConfig(c *config.Resolved) (Options, error) {
	logger, err := c.Logger()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Logger:     logger,
		TypePrefix: c.TypePrefix,
		RootSize:   c.RootSize,
		Face:       basicfont.Face7x13,
	}, nil
}

// Bridge owns the node tree, the proxy arena and the native type registry.
type Bridge struct {
	toolkit platform.Toolkit
	runtime platform.Runtime
	log     *zap.Logger
	types   *typereg.Registry
	handles arena
	nodes   map[platform.Widget]*Node
	metrics textMetrics
}

// New creates a bridge.
func New(opts Options) *Bridge {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	face := opts.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	root := opts.RootBase
	if root == nil {
		root = &Base{}
	}
	return &Bridge{
		toolkit: opts.Toolkit,
		runtime: opts.Runtime,
		log:     log,
		types: typereg.New(typereg.Options{
			Prefix:   opts.TypePrefix,
			RootSize: opts.RootSize,
			RootImpl: root,
			Logger:   log,
		}),
		nodes:   make(map[platform.Widget]*Node),
		metrics: textMetrics{face: face},
	}
}

// Types returns the native type registry.
func (b *Bridge) Types() *typereg.Registry {
	return b.types
}

// DeclareClass records a widget class and its superclass for native type
// parent resolution.
func (b *Bridge) DeclareClass(class, super string) error {
	return b.types.DeclareClass(class, super)
}

// RegisterBase registers the inherited behavior of a widget class. Nil
// slots are filled from the nearest registered superclass.
func (b *Bridge) RegisterBase(class string, size int, base *Base) error {
	if base == nil {
		return b.usage("accessibility.Bridge.RegisterBase", errors.ErrNilArgument)
	}
	_, err := b.types.RegisterBase(class, size, base)
	return err
}

// NodeFor returns the primary node of w, creating it on first use.
func (b *Bridge) NodeFor(w platform.Widget) (*Node, error) {
	const op = "accessibility.Bridge.NodeFor"
	if err := b.checkThread(op); err != nil {
		return nil, err
	}
	if w == nil {
		return nil, b.usage(op, errors.ErrNilArgument)
	}
	return b.nodeFor(w), nil
}

func (b *Bridge) nodeFor(w platform.Widget) *Node {
	if n, ok := b.nodes[w]; ok {
		return n
	}
	n := &Node{bridge: b, widget: w}
	b.nodes[w] = n
	return n
}

// NewNode declares a sub-node owned by parent.
func (b *Bridge) NewNode(parent *Node) (*Node, error) {
	const op = "accessibility.Bridge.NewNode"
	if err := b.checkThread(op); err != nil {
		return nil, err
	}
	if parent == nil {
		return nil, b.usage(op, errors.ErrNilArgument)
	}
	if parent.disposed {
		return nil, b.usage(op, errors.ErrDisposed)
	}
	n := &Node{bridge: b, parent: parent}
	parent.children = append(parent.children, n)
	return n, nil
}

// WidgetDisposed disposes the primary node of w, if any.
func (b *Bridge) WidgetDisposed(w platform.Widget) {
	if n, ok := b.nodes[w]; ok {
		n.dispose()
	}
}

// Ref retains the proxy behind h on behalf of the native runtime.
func (b *Bridge) Ref(h Handle) error {
	if err := b.checkThread("accessibility.Bridge.Ref"); err != nil {
		return err
	}
	p, ok := b.handles.get(h)
	if !ok {
		return b.handleUsage("accessibility.Bridge.Ref", h, errors.ErrStaleHandle)
	}
	b.retain(p)
	return nil
}

// Unref releases one reference. The proxy is finalized and its handle
// purged when the count reaches zero.
func (b *Bridge) Unref(h Handle) error {
	if err := b.checkThread("accessibility.Bridge.Unref"); err != nil {
		return err
	}
	p, ok := b.handles.get(h)
	if !ok {
		return b.handleUsage("accessibility.Bridge.Unref", h, errors.ErrStaleHandle)
	}
	b.release(p)
	return nil
}

// Lookup resolves h to its proxy.
func (b *Bridge) Lookup(h Handle) (*Proxy, bool) {
	return b.handles.get(h)
}

// LiveProxies returns the number of proxies in the arena.
func (b *Bridge) LiveProxies() int {
	return b.handles.len()
}

// RuntimeVersion returns the native runtime version, or "" without a runtime.
func (b *Bridge) RuntimeVersion() string {
	if b.runtime == nil {
		return ""
	}
	return b.runtime.Version()
}

func (b *Bridge) supports(min string) bool {
	v := b.RuntimeVersion()
	return semver.IsValid(v) && semver.Compare(v, min) >= 0
}

func (b *Bridge) checkThread(op string) error {
	if b.toolkit == nil || b.toolkit.IsUIThread() {
		return nil
	}
	return b.usage(op, errors.ErrInvalidThread)
}

func (b *Bridge) usage(op string, err error) error {
	be := errors.Usage(op, err)
	errors.Report(be)
	return be
}

func (b *Bridge) handleUsage(op string, h Handle, err error) error {
	be := errors.Usage(op, err)
	be.Handle = uint64(h)
	errors.Report(be)
	return be
}

// enter performs the common prologue of a native call: thread check,
// handle resolution and node liveness. A false result means the caller
// returns its neutral value.
func (b *Bridge) enter(op string, h Handle) (*Proxy, bool) {
	if err := b.checkThread("accessibility.Bridge." + op); err != nil {
		return nil, false
	}
	p, ok := b.handles.get(h)
	if !ok {
		b.log.Debug("unresolved handle", zap.String("op", op), zap.Stringer("handle", h))
		return nil, false
	}
	if p.node == nil || p.node.disposed {
		b.log.Debug("call on disposed node", zap.String("op", op), zap.Stringer("handle", h))
		return nil, false
	}
	return p, true
}

// notify invokes call on every listener in order. It reports false when
// there are no listeners or one of them panicked; the panic is reported
// and the caller falls back to the inherited result.
func notify[L any, E any](op string, ls []L, e E, call func(L, E)) (ok bool) {
	if len(ls) == 0 {
		return false
	}
	ok = true
	defer errors.RecoverWithCallback("accessibility.Bridge."+op, func(any) { ok = false })
	for _, l := range ls {
		call(l, e)
	}
	return ok
}
