package protocol

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/go-drift/accessbridge/pkg/semantics"
	"github.com/go-drift/accessbridge/pkg/textbound"
)

// CoordType selects the coordinate system of a geometry call.
type CoordType int

const (
	// CoordScreen is relative to the screen origin.
	CoordScreen CoordType = iota
	// CoordWindow is relative to the top-level window origin.
	CoordWindow
)

func (c CoordType) String() string {
	if c == CoordWindow {
		return "window"
	}
	return "screen"
}

// TextBoundary is a native text boundary type.
type TextBoundary int

const (
	BoundaryChar TextBoundary = iota
	BoundaryWordStart
	BoundaryWordEnd
	BoundarySentenceStart
	BoundarySentenceEnd
	BoundaryLineStart
	BoundaryLineEnd
)

var boundaryTable = [...]textbound.Boundary{
	BoundaryChar:          {Unit: textbound.Char, Edge: textbound.Start},
	BoundaryWordStart:     {Unit: textbound.Word, Edge: textbound.Start},
	BoundaryWordEnd:       {Unit: textbound.Word, Edge: textbound.End},
	BoundarySentenceStart: {Unit: textbound.Sentence, Edge: textbound.Start},
	BoundarySentenceEnd:   {Unit: textbound.Sentence, Edge: textbound.End},
	BoundaryLineStart:     {Unit: textbound.Line, Edge: textbound.Start},
	BoundaryLineEnd:       {Unit: textbound.Line, Edge: textbound.End},
}

// Boundary returns the segmentation boundary for b.
// Unknown values fall back to character boundaries.
func (b TextBoundary) Boundary() textbound.Boundary {
	if b < 0 || int(b) >= len(boundaryTable) {
		return boundaryTable[BoundaryChar]
	}
	return boundaryTable[b]
}

// TextGranularity is the unit of a string-at-offset query.
type TextGranularity int

const (
	GranularityChar TextGranularity = iota
	GranularityWord
	GranularitySentence
	GranularityLine
	GranularityParagraph
)

// Boundary returns the start-edged boundary for g. Paragraphs use line
// segmentation.
func (g TextGranularity) Boundary() textbound.Boundary {
	switch g {
	case GranularityWord:
		return textbound.Boundary{Unit: textbound.Word, Edge: textbound.Start}
	case GranularitySentence:
		return textbound.Boundary{Unit: textbound.Sentence, Edge: textbound.Start}
	case GranularityLine, GranularityParagraph:
		return textbound.Boundary{Unit: textbound.Line, Edge: textbound.Start}
	default:
		return textbound.Boundary{Unit: textbound.Char, Edge: textbound.Start}
	}
}

// Text attribute names understood by the native runtime.
const (
	AttrLeftMargin    = "left-margin"
	AttrRightMargin   = "right-margin"
	AttrIndent        = "indent"
	AttrInvisible     = "invisible"
	AttrEditable      = "editable"
	AttrRise          = "rise"
	AttrUnderline     = "underline"
	AttrStrikethrough = "strikethrough"
	AttrSize          = "size"
	AttrScale         = "scale"
	AttrWeight        = "weight"
	AttrLanguage      = "language"
	AttrFamilyName    = "family-name"
	AttrBgColor       = "bg-color"
	AttrFgColor       = "fg-color"
	AttrWrapMode      = "wrap-mode"
	AttrDirection     = "direction"
	AttrJustification = "justification"
	AttrStretch       = "stretch"
	AttrVariant       = "variant"
	AttrStyle         = "style"
	AttrTextPosition  = "text-position"
)

// Object attribute names for group position.
const (
	AttrLevel    = "level"
	AttrSetSize  = "setsize"
	AttrPosInSet = "posinset"
)

var textAttributes = map[string]struct{}{
	AttrLeftMargin: {}, AttrRightMargin: {}, AttrIndent: {}, AttrInvisible: {},
	AttrEditable: {}, AttrRise: {}, AttrUnderline: {}, AttrStrikethrough: {},
	AttrSize: {}, AttrScale: {}, AttrWeight: {}, AttrLanguage: {},
	AttrFamilyName: {}, AttrBgColor: {}, AttrFgColor: {}, AttrWrapMode: {},
	AttrDirection: {}, AttrJustification: {}, AttrStretch: {}, AttrVariant: {},
	AttrStyle: {}, AttrTextPosition: {},
}

// IsTextAttribute reports whether name is a modeled text attribute.
func IsTextAttribute(name string) bool {
	_, ok := textAttributes[name]
	return ok
}

// StyleAttributes converts a text style to native attribute pairs.
// Unset style properties are omitted.
func StyleAttributes(s semantics.TextStyle) map[string]string {
	attrs := make(map[string]string)
	if s.FontFamily != "" {
		attrs[AttrFamilyName] = s.FontFamily
	}
	if s.FontSize > 0 {
		attrs[AttrSize] = strconv.Itoa(s.FontSize)
	}
	if s.Bold {
		attrs[AttrWeight] = "700"
	}
	if s.Italic {
		attrs[AttrStyle] = "italic"
	}
	if s.Foreground != nil {
		attrs[AttrFgColor] = colorString(s.Foreground)
	}
	if s.Background != nil {
		attrs[AttrBgColor] = colorString(s.Background)
	}
	if s.Underline {
		attrs[AttrUnderline] = "single"
	}
	if s.Strikeout {
		attrs[AttrStrikethrough] = "true"
	}
	if s.Rise != 0 {
		attrs[AttrRise] = strconv.Itoa(s.Rise)
	}
	return attrs
}

// colorString formats c as the native "r,g,b" triple of 16-bit channels.
func colorString(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("%d,%d,%d", r, g, b)
}

// ParseStyleAttributes is the inverse of StyleAttributes for the pairs it
// understands. Malformed values are ignored.
func ParseStyleAttributes(attrs map[string]string) semantics.TextStyle {
	var s semantics.TextStyle
	for k, v := range attrs {
		switch k {
		case AttrFamilyName:
			s.FontFamily = v
		case AttrSize:
			s.FontSize, _ = strconv.Atoi(v)
		case AttrWeight:
			w, _ := strconv.Atoi(v)
			s.Bold = w >= 600
		case AttrStyle:
			s.Italic = v == "italic" || v == "oblique"
		case AttrUnderline:
			s.Underline = v != "" && v != "none"
		case AttrStrikethrough:
			s.Strikeout = v == "true"
		case AttrRise:
			s.Rise, _ = strconv.Atoi(v)
		case AttrFgColor:
			if c, ok := parseColor(v); ok {
				s.Foreground = c
			}
		case AttrBgColor:
			if c, ok := parseColor(v); ok {
				s.Background = c
			}
		}
	}
	return s
}

func parseColor(v string) (color.Color, bool) {
	var r, g, b uint16
	if _, err := fmt.Sscanf(v, "%d,%d,%d", &r, &g, &b); err != nil {
		return nil, false
	}
	return color.RGBA64{R: r, G: g, B: b, A: 0xffff}, true
}
