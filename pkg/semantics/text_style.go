package semantics

import "image/color"

// TextStyle describes the presentation of a run of text.
// Zero values mean "not specified" and are left out of the attribute set.
type TextStyle struct {
	FontFamily string
	// FontSize is in points.
	FontSize   int
	Bold       bool
	Italic     bool
	Foreground color.Color
	Background color.Color
	Underline  bool
	Strikeout  bool
	// Rise is the baseline offset in pixels; positive raises the text.
	Rise int
}

// IsZero reports whether no property is set.
func (s TextStyle) IsZero() bool {
	return s.FontFamily == "" && s.FontSize == 0 && !s.Bold && !s.Italic &&
		s.Foreground == nil && s.Background == nil && !s.Underline &&
		!s.Strikeout && s.Rise == 0
}
