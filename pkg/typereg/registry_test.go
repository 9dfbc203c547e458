package typereg

import (
	"sync"
	"testing"

	"github.com/go-drift/accessbridge/pkg/capability"
	"github.com/go-drift/accessbridge/pkg/errors"
)

func newRegistry() *Registry {
	return New(Options{Prefix: "Drift", RootName: "Root", RootSize: 16})
}

func TestGetOrCreateIsIdempotent(t *testing.T) {
	r := newRegistry()
	caps := capability.Of(capability.Action, capability.Text)

	first, err := r.GetOrCreate("Button", caps)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := r.GetOrCreate("Button", caps)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	if first != second {
		t.Error("GetOrCreate returned different types for the same key")
	}
	if first.Name != "DriftButton+Action+Text" {
		t.Errorf("Name = %q, want %q", first.Name, "DriftButton+Action+Text")
	}
	if first.Parent != r.Root() || first.Size != 16 {
		t.Errorf("parent = %v size = %d, want root and 16", first.Parent.Name, first.Size)
	}
	for _, iface := range []string{"Object", "Component", "Action", "Text"} {
		if !first.Implements(iface) {
			t.Errorf("type does not implement %s", iface)
		}
	}
	if first.Implements("Value") {
		t.Error("type unexpectedly implements Value")
	}
}

func TestCompositeNameIsInjective(t *testing.T) {
	r := newRegistry()
	hosts := []string{"Button", "ButtonAction", "Label", "L", "abel"}
	seen := make(map[string]string)
	for _, host := range hosts {
		for s := capability.Empty; s <= capability.Full; s++ {
			name := r.CompositeName(host, s)
			key := host + "/" + s.String()
			if prev, ok := seen[name]; ok {
				t.Fatalf("name %q produced by %s and %s", name, prev, key)
			}
			seen[name] = key
		}
	}
}

func TestGetOrCreateRejectsSeparatorInHost(t *testing.T) {
	r := newRegistry()
	for _, host := range []string{"", "Button+Action"} {
		_, err := r.GetOrCreate(host, capability.Empty)
		if !errors.Is(err, errors.ErrInvalidHostClass) {
			t.Errorf("GetOrCreate(%q) err = %v, want ErrInvalidHostClass", host, err)
		}
		if !errors.IsUsage(err) {
			t.Errorf("GetOrCreate(%q) err kind is not usage", host)
		}
	}
}

type behavior struct {
	name  func() string
	label func() string
}

func (b *behavior) Inherit(parent any) {
	p := parent.(*behavior)
	if b.name == nil {
		b.name = p.name
	}
	if b.label == nil {
		b.label = p.label
	}
}

func TestParentResolutionWalksAncestry(t *testing.T) {
	r := New(Options{
		Prefix:   "Drift",
		RootSize: 8,
		RootImpl: &behavior{name: func() string { return "root" }, label: func() string { return "root-label" }},
	})
	if err := r.DeclareClass("Control", ""); err != nil {
		t.Fatal(err)
	}
	if err := r.DeclareClass("Button", "Control"); err != nil {
		t.Fatal(err)
	}
	if err := r.DeclareClass("ToggleButton", "Button"); err != nil {
		t.Fatal(err)
	}

	control, err := r.RegisterBase("Control", 24, &behavior{name: func() string { return "control" }})
	if err != nil {
		t.Fatal(err)
	}
	if control.Parent != r.Root() {
		t.Errorf("Control base parent = %s, want root", control.Parent.Name)
	}
	impl := control.Impl.(*behavior)
	if impl.name() != "control" || impl.label() != "root-label" {
		t.Errorf("merged impl = (%q, %q), want (control, root-label)", impl.name(), impl.label())
	}

	toggle, err := r.GetOrCreate("ToggleButton", capability.Of(capability.Action))
	if err != nil {
		t.Fatal(err)
	}
	if toggle.Parent != control {
		t.Errorf("ToggleButton parent = %s, want %s", toggle.Parent.Name, control.Name)
	}
	if toggle.Size != 24 {
		t.Errorf("ToggleButton size = %d, want 24", toggle.Size)
	}

	again, err := r.RegisterBase("Control", 99, nil)
	if err != nil || again != control {
		t.Errorf("RegisterBase twice = (%v, %v), want first type", again, err)
	}

	unrelated, err := r.GetOrCreate("Canvas", capability.Empty)
	if err != nil {
		t.Fatal(err)
	}
	if unrelated.Parent != r.Root() || unrelated.Size != 8 {
		t.Errorf("Canvas parent = %s size = %d, want root and 8", unrelated.Parent.Name, unrelated.Size)
	}
}

func TestBaseAndCompositeNamesDoNotCollide(t *testing.T) {
	r := newRegistry()
	base, err := r.RegisterBase("Button", 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	plain, err := r.GetOrCreate("Button", capability.Empty)
	if err != nil {
		t.Fatal(err)
	}
	if base == plain {
		t.Fatal("composite type with no capabilities aliased the base type")
	}
	if plain.Parent != base {
		t.Errorf("parent = %s, want %s", plain.Parent.Name, base.Name)
	}
}

func TestConcurrentGetOrCreate(t *testing.T) {
	r := newRegistry()
	const workers = 32
	results := make([]*Type, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			typ, err := r.GetOrCreate("List", capability.Of(capability.Selection))
			if err != nil {
				t.Error(err)
				return
			}
			results[i] = typ
		}(i)
	}
	wg.Wait()

	for i, typ := range results {
		if typ != results[0] {
			t.Fatalf("worker %d got a different type", i)
		}
	}
	if n := len(r.Names()); n != 1 {
		t.Errorf("registered %d types, want 1", n)
	}
}
