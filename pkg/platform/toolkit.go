package platform

import "github.com/go-drift/accessbridge/pkg/geometry"

// Widget is a toolkit control that can carry an accessible node.
type Widget interface {
	// ClassName names the widget's class, used as the host class of its
	// native type.
	ClassName() string
}

// Surface is an opaque native drawing-surface handle.
type Surface uintptr

// Toolkit is the widget toolkit that owns the UI thread and native windows.
type Toolkit interface {
	// IsUIThread reports whether the caller runs on the UI thread.
	IsUIThread() bool

	// Surface returns the native surface backing w, if it has one.
	Surface(w Widget) (Surface, bool)

	// WindowOrigin returns the screen origin of the top-level window
	// containing s.
	WindowOrigin(s Surface) (geometry.Point, bool)

	// DrawableChild returns the internal child a composite widget delegates
	// its native surface to.
	DrawableChild(w Widget) (Widget, bool)
}
