// Package textbound segments a text snapshot into characters, words,
// sentences and lines, and answers "unit before/at/after offset" queries.
//
// Segmentation is a deliberate ASCII heuristic: words end at space, '!',
// '?', '.' or newline; sentences end at '!', '?' or '.'; lines end at
// newline. Offsets are rune offsets. Every query is expressed through four
// scanning primitives so that all unit/edge/anchor combinations agree.
package textbound

// Unit is the segmentation granularity.
type Unit int

const (
	Char Unit = iota
	Word
	Sentence
	Line
)

func (u Unit) String() string {
	switch u {
	case Word:
		return "word"
	case Sentence:
		return "sentence"
	case Line:
		return "line"
	default:
		return "char"
	}
}

// Edge selects whether a unit is measured from its first or its last character.
type Edge int

const (
	// Start places delimiters with the unit before them.
	Start Edge = iota
	// End places delimiters with the unit after them.
	End
)

func (e Edge) String() string {
	if e == End {
		return "end"
	}
	return "start"
}

// Anchor selects the unit relative to the offset.
type Anchor int

const (
	Before Anchor = iota
	At
	After
)

func (a Anchor) String() string {
	switch a {
	case Before:
		return "before"
	case After:
		return "after"
	default:
		return "at"
	}
}

// Boundary is a unit measured from one of its edges.
type Boundary struct {
	Unit Unit
	Edge Edge
}

// Delimiter sets.
const (
	WordDelimiters     = " !?.\n"
	SentenceDelimiters = "!?."
	LineDelimiters     = "\n"
)

// Span is a half-open rune range.
type Span struct {
	Start int
	End   int
}

// Len returns the number of runes in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Query answers a boundary query on text and returns the unit text and its
// rune offsets.
func Query(text string, offset int, b Boundary, a Anchor) (string, int, int) {
	runes := []rune(text)
	span := Locate(runes, offset, b, a)
	return string(runes[span.Start:span.End]), span.Start, span.End
}

// Locate answers a boundary query on runes.
// The offset is clamped to [0, len-1]; empty text yields the empty span at 0.
func Locate(text []rune, offset int, b Boundary, a Anchor) Span {
	n := len(text)
	if n == 0 {
		return Span{}
	}
	o := min(max(offset, 0), n-1)
	if b.Unit == Char {
		return charSpan(n, o, a)
	}
	s := segmenter{text: text, n: n, unit: b.Unit, edge: b.Edge}
	switch a {
	case Before:
		return s.before(o)
	case After:
		return s.after(o)
	default:
		return s.at(o)
	}
}

func charSpan(n, o int, a Anchor) Span {
	switch a {
	case Before:
		if o == 0 {
			return Span{}
		}
		return Span{Start: o - 1, End: o}
	case After:
		if o+1 >= n {
			return Span{Start: n, End: n}
		}
		return Span{Start: o + 1, End: o + 2}
	default:
		return Span{Start: o, End: o + 1}
	}
}

type segmenter struct {
	text []rune
	n    int
	unit Unit
	edge Edge
}

func (s segmenter) delims() string {
	switch s.unit {
	case Sentence:
		return SentenceDelimiters
	case Line:
		return LineDelimiters
	default:
		return WordDelimiters
	}
}

func (s segmenter) isDelim(i int) bool {
	return NextIndexOfAny(s.text, s.delims(), i) == i
}

// orEnd maps a "not found" scan result to the end of the text.
func (s segmenter) orEnd(i int) int {
	if i < 0 {
		return s.n
	}
	return i
}

func (s segmenter) at(o int) Span {
	switch s.unit {
	case Word:
		if s.edge == End {
			return s.endAt(o)
		}
		return s.wordStartAt(o)
	case Sentence:
		if s.edge == End {
			return s.endAt(o)
		}
		return s.sentenceAt(o)
	default:
		if s.edge == End {
			return s.lineEndAt(o)
		}
		return s.lineStartAt(o)
	}
}

// wordStartAt returns the non-delimiter run containing o. A delimiter at o
// belongs to the word before it; leading delimiters belong to the first word.
func (s segmenter) wordStartAt(o int) Span {
	d := s.delims()
	if s.isDelim(o) {
		q := PreviousIndexNotOfAny(s.text, d, o)
		if q < 0 {
			q = NextIndexNotOfAny(s.text, d, o)
			if q < 0 {
				return Span{Start: s.n, End: s.n}
			}
		}
		o = q
	}
	start := PreviousIndexOfAny(s.text, d, o) + 1
	end := s.orEnd(NextIndexOfAny(s.text, d, o))
	return Span{Start: start, End: end}
}

// endAt returns the non-delimiter run containing o together with the
// delimiter run that precedes it. Used by the word and sentence end edges;
// trailing delimiters resolve to the last unit.
func (s segmenter) endAt(o int) Span {
	d := s.delims()
	if s.isDelim(o) {
		q := NextIndexNotOfAny(s.text, d, o)
		if q < 0 {
			q = PreviousIndexNotOfAny(s.text, d, o)
			if q < 0 {
				return Span{Start: s.n, End: s.n}
			}
		}
		o = q
	}
	coreStart := PreviousIndexOfAny(s.text, d, o) + 1
	start := 0
	if coreStart > 0 {
		start = PreviousIndexNotOfAny(s.text, d, coreStart-1) + 1
	}
	end := s.orEnd(NextIndexOfAny(s.text, d, o))
	return Span{Start: start, End: end}
}

// sentenceAt returns the sentence containing o, including its terminator
// run.
func (s segmenter) sentenceAt(o int) Span {
	d := s.delims()
	if s.isDelim(o) {
		if q := PreviousIndexNotOfAny(s.text, d, o); q >= 0 {
			o = q
		}
	}
	start := PreviousIndexOfAny(s.text, d, o-1) + 1
	if s.isDelim(o) {
		// Leading terminator run with no sentence before it.
		start = 0
	}
	coreEnd := NextIndexOfAny(s.text, d, o)
	if coreEnd < 0 {
		return Span{Start: start, End: s.n}
	}
	end := s.orEnd(NextIndexNotOfAny(s.text, d, coreEnd))
	return Span{Start: start, End: end}
}

// lineStartAt returns the line containing o with its terminating newline.
func (s segmenter) lineStartAt(o int) Span {
	d := s.delims()
	start := PreviousIndexOfAny(s.text, d, o-1) + 1
	end := NextIndexOfAny(s.text, d, o)
	if end < 0 {
		return Span{Start: start, End: s.n}
	}
	return Span{Start: start, End: end + 1}
}

// lineEndAt returns the line containing o with the newline that precedes it.
func (s segmenter) lineEndAt(o int) Span {
	d := s.delims()
	if s.isDelim(o) {
		return Span{Start: o, End: s.orEnd(NextIndexOfAny(s.text, d, o+1))}
	}
	start := max(PreviousIndexOfAny(s.text, d, o-1), 0)
	return Span{Start: start, End: s.orEnd(NextIndexOfAny(s.text, d, o))}
}

func (s segmenter) before(o int) Span {
	cur := s.at(o)
	if cur.Start <= 0 {
		return Span{}
	}
	prev := s.at(cur.Start - 1)
	if prev.Start >= cur.Start {
		return Span{}
	}
	if prev.End > cur.Start {
		prev.End = cur.Start
	}
	return prev
}

func (s segmenter) after(o int) Span {
	cur := s.at(o)
	if cur.End >= s.n {
		return Span{Start: s.n, End: s.n}
	}
	next := s.at(cur.End)
	if next.Start < cur.End {
		// cur.End is a delimiter owned by cur; rescan from the next unit's
		// first character.
		k := NextIndexNotOfAny(s.text, s.delims(), cur.End)
		if k < 0 {
			return Span{Start: s.n, End: s.n}
		}
		next = s.at(k)
		if next.Start < cur.End {
			return Span{Start: s.n, End: s.n}
		}
	}
	return next
}
