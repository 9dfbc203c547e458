package testing

import (
	"sync"

	"github.com/go-drift/accessbridge/pkg/geometry"
	"github.com/go-drift/accessbridge/pkg/platform"
)

// FakeWidget is a widget with a class name and an optional native surface.
type FakeWidget struct {
	Class string
	// Surface is the native surface. Zero means the widget has none.
	Surface platform.Surface
	// Drawable is the internal child a composite widget delegates its
	// surface to.
	Drawable *FakeWidget
}

// ClassName returns Class.
func (w *FakeWidget) ClassName() string {
	return w.Class
}

// FakeToolkit is a toolkit whose thread and window geometry are set by the
// test. All methods are safe for concurrent use.
type FakeToolkit struct {
	mu        sync.Mutex
	offThread bool
	origins   map[platform.Surface]geometry.Point
}

// NewFakeToolkit returns a toolkit that reports every call on the UI thread.
func NewFakeToolkit() *FakeToolkit {
	return &FakeToolkit{origins: make(map[platform.Surface]geometry.Point)}
}

// SetUIThread controls what IsUIThread reports.
func (t *FakeToolkit) SetUIThread(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.offThread = !on
}

// SetWindowOrigin places the window of surface s at origin.
func (t *FakeToolkit) SetWindowOrigin(s platform.Surface, origin geometry.Point) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.origins[s] = origin
}

// IsUIThread reports whether calls are treated as on the UI thread.
func (t *FakeToolkit) IsUIThread() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.offThread
}

// Surface returns the surface of a FakeWidget.
func (t *FakeToolkit) Surface(w platform.Widget) (platform.Surface, bool) {
	fw, ok := w.(*FakeWidget)
	if !ok || fw.Surface == 0 {
		return 0, false
	}
	return fw.Surface, true
}

// WindowOrigin returns the origin set with SetWindowOrigin.
func (t *FakeToolkit) WindowOrigin(s platform.Surface) (geometry.Point, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	o, ok := t.origins[s]
	return o, ok
}

// DrawableChild returns the Drawable of a FakeWidget.
func (t *FakeToolkit) DrawableChild(w platform.Widget) (platform.Widget, bool) {
	fw, ok := w.(*FakeWidget)
	if !ok || fw.Drawable == nil {
		return nil, false
	}
	return fw.Drawable, true
}
