// Package typereg materializes native types on demand.
//
// A native type is identified by a composite name built from a host widget
// class and a capability set. The first request for a name registers a new
// type inheriting from the nearest registered base type in the host class
// ancestry (or the root type); later requests return the same *Type.
// Types are never unregistered.
package typereg

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/go-drift/accessbridge/pkg/capability"
	"github.com/go-drift/accessbridge/pkg/errors"
)

// Separator joins the host class and capability suffixes in a composite
// name. Host class names may not contain it.
const Separator = "+"

// baseSuffix marks base type names. It is not a capability name, so base
// names never collide with composite names.
const baseSuffix = Separator + "Base"

// Type is a registered native type.
type Type struct {
	// Name is the unique registered name.
	Name string
	// Host is the widget class the type was created for.
	Host string
	// Parent is the type this one inherits from. Nil only for the root.
	Parent *Type
	// Size is the instance size, cloned from the parent.
	Size int
	// Caps is the optional capability set. Base and root types carry none.
	Caps capability.Set
	// Interfaces lists the attached interfaces, Object and Component first.
	Interfaces []string
	// Impl is the inherited-behavior table of a base or root type.
	Impl any
}

// Implements reports whether the type exposes the named interface.
func (t *Type) Implements(iface string) bool {
	for _, i := range t.Interfaces {
		if i == iface {
			return true
		}
	}
	return false
}

// Inheritor is implemented by Impl values that fill unset behavior from
// their ancestor's Impl at registration.
type Inheritor interface {
	Inherit(parent any)
}

// Options configures a Registry.
type Options struct {
	// Prefix is prepended to every base and composite name.
	Prefix string
	// RootName names the root type.
	RootName string
	// RootSize is the instance size of the root type.
	RootSize int
	// RootImpl is the root type's behavior table.
	RootImpl any
	// Logger receives registration events. Nil disables logging.
	Logger *zap.Logger
}

// Registry is a process-wide cache of native types keyed by name.
// Lookups take a read lock; creation of one name is serialized.
type Registry struct {
	prefix string
	root   *Type
	log    *zap.Logger

	mu      sync.RWMutex
	types   map[string]*Type
	classes map[string]string
	bases   map[string]*Type

	group singleflight.Group
}

// New creates a registry holding only the root type.
func New(opts Options) *Registry {
	if opts.RootName == "" {
		opts.RootName = "AccessibleObject"
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		prefix: opts.Prefix,
		root: &Type{
			Name:       opts.RootName,
			Size:       opts.RootSize,
			Interfaces: []string{capability.InterfaceObject},
			Impl:       opts.RootImpl,
		},
		log:     log,
		types:   make(map[string]*Type),
		classes: make(map[string]string),
		bases:   make(map[string]*Type),
	}
}

// Root returns the root type.
func (r *Registry) Root() *Type {
	return r.root
}

// Prefix returns the name prefix.
func (r *Registry) Prefix() string {
	return r.prefix
}

func validHost(op, class string) error {
	if class == "" || strings.Contains(class, Separator) {
		return errors.Usage(op, fmt.Errorf("%w: %q", errors.ErrInvalidHostClass, class))
	}
	return nil
}

// DeclareClass records that class derives from super. An empty super makes
// class a hierarchy root.
func (r *Registry) DeclareClass(class, super string) error {
	if err := validHost("typereg.DeclareClass", class); err != nil {
		return err
	}
	if super != "" {
		if err := validHost("typereg.DeclareClass", super); err != nil {
			return err
		}
	}
	r.mu.Lock()
	r.classes[class] = super
	r.mu.Unlock()
	return nil
}

// RegisterBase registers the base type for class. It inherits from the
// nearest registered base of a superclass, or the root. A zero size clones
// the parent's size. Registering a class twice returns the first type.
func (r *Registry) RegisterBase(class string, size int, impl any) (*Type, error) {
	if err := validHost("typereg.RegisterBase", class); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if t, ok := r.bases[class]; ok {
		return t, nil
	}
	parent := r.nearestBaseLocked(r.classes[class])
	if size == 0 {
		size = parent.Size
	}
	if inh, ok := impl.(Inheritor); ok && parent.Impl != nil {
		inh.Inherit(parent.Impl)
	}
	t := &Type{
		Name:       r.prefix + class + baseSuffix,
		Host:       class,
		Parent:     parent,
		Size:       size,
		Interfaces: []string{capability.InterfaceObject, capability.InterfaceComponent},
		Impl:       impl,
	}
	r.bases[class] = t
	r.types[t.Name] = t
	r.log.Debug("registered base type",
		zap.String("type", t.Name),
		zap.String("parent", parent.Name),
		zap.Int("size", t.Size))
	return t, nil
}

// nearestBaseLocked walks the ancestry from class to the first class with
// a registered base. r.mu must be held.
func (r *Registry) nearestBaseLocked(class string) *Type {
	seen := make(map[string]bool)
	for c := class; c != "" && !seen[c]; c = r.classes[c] {
		seen[c] = true
		if t, ok := r.bases[c]; ok {
			return t
		}
	}
	return r.root
}

// CompositeName returns the native type name for host and caps: the
// prefixed host followed by one suffix per capability in fixed order.
func (r *Registry) CompositeName(host string, caps capability.Set) string {
	var sb strings.Builder
	sb.WriteString(r.prefix)
	sb.WriteString(host)
	caps.Each(func(c capability.Capability) {
		sb.WriteString(Separator)
		sb.WriteString(c.String())
	})
	return sb.String()
}

// Lookup returns the type registered under name.
func (r *Registry) Lookup(name string) (*Type, bool) {
	if name == r.root.Name {
		return r.root, true
	}
	r.mu.RLock()
	t, ok := r.types[name]
	r.mu.RUnlock()
	return t, ok
}

// GetOrCreate returns the native type for host and caps, registering it on
// first use. The returned type always implements Object and Component.
func (r *Registry) GetOrCreate(host string, caps capability.Set) (*Type, error) {
	if err := validHost("typereg.GetOrCreate", host); err != nil {
		return nil, err
	}
	name := r.CompositeName(host, caps)
	if t, ok := r.Lookup(name); ok {
		return t, nil
	}

	v, _, _ := r.group.Do(name, func() (any, error) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if t, ok := r.types[name]; ok {
			return t, nil
		}
		parent := r.nearestBaseLocked(host)
		t := &Type{
			Name:       name,
			Host:       host,
			Parent:     parent,
			Size:       parent.Size,
			Caps:       caps,
			Interfaces: capability.Interfaces(caps),
		}
		r.types[name] = t
		r.log.Debug("registered type",
			zap.String("type", name),
			zap.String("parent", parent.Name),
			zap.Stringer("caps", caps))
		return t, nil
	})
	return v.(*Type), nil
}

// Names lists every registered name except the root, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	r.mu.RUnlock()
	sort.Strings(names)
	return names
}
