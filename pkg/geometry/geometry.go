// Package geometry provides the integer point, size and rectangle types used
// for on-screen extents.
package geometry

// Point represents a 2D point or vector in device pixels.
type Point struct {
	X int
	Y int
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Size represents width and height dimensions in device pixels.
type Size struct {
	Width  int
	Height int
}

// Rect represents a rectangle by origin and size.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectFromXYWH constructs a Rect from x, y, width, height values.
func RectFromXYWH(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Translate returns r moved by d.
func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Union returns the smallest rectangle containing both r and o.
// An empty rectangle contributes nothing.
func (r Rect) Union(o Rect) Rect {
	if r.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return r
	}
	left := min(r.X, o.X)
	top := min(r.Y, o.Y)
	right := max(r.X+r.Width, o.X+o.Width)
	bottom := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}
