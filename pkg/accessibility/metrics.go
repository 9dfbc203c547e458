package accessibility

import (
	"golang.org/x/image/font"

	"github.com/go-drift/accessbridge/pkg/geometry"
)

// textMetrics lays text out in a single fixed face: lines split on
// newline, one line height per line.
type textMetrics struct {
	face font.Face
}

func (m textMetrics) lineHeight() int {
	return m.face.Metrics().Height.Ceil()
}

func (m textMetrics) advance(r rune) int {
	if r == '\n' {
		return 0
	}
	a, ok := m.face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return a.Ceil()
}

// charRect returns the box of text[i] relative to the text origin.
func (m textMetrics) charRect(text []rune, i int) geometry.Rect {
	line, start := 0, 0
	for j := 0; j < i; j++ {
		if text[j] == '\n' {
			line++
			start = j + 1
		}
	}
	x := font.MeasureString(m.face, string(text[start:i])).Ceil()
	h := m.lineHeight()
	return geometry.RectFromXYWH(x, line*h, m.advance(text[i]), h)
}

// bounds returns the union of the character boxes in [start, end), offset
// by origin. An empty range yields the empty rectangle.
func (m textMetrics) bounds(text []rune, start, end int, origin geometry.Point) geometry.Rect {
	start = max(start, 0)
	end = min(end, len(text))
	var r geometry.Rect
	for i := start; i < end; i++ {
		c := m.charRect(text, i)
		if i == start {
			r = c
		} else {
			r = r.Union(c)
		}
	}
	if start >= end {
		return geometry.Rect{}
	}
	return r.Translate(origin)
}

// offsetAt returns the character under pt, relative to the text origin,
// or -1.
func (m textMetrics) offsetAt(text []rune, pt geometry.Point) int {
	h := m.lineHeight()
	if pt.X < 0 || pt.Y < 0 || h <= 0 {
		return -1
	}
	line := pt.Y / h
	i := 0
	for ; line > 0 && i < len(text); i++ {
		if text[i] == '\n' {
			line--
		}
	}
	if line > 0 {
		return -1
	}
	x := 0
	for ; i < len(text) && text[i] != '\n'; i++ {
		x += m.advance(text[i])
		if pt.X < x {
			return i
		}
	}
	return -1
}
