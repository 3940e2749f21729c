package spans

import (
	"sort"
	"strings"

	"github.com/tsawler/verso/model"
)

// LineBreak is the character that stands in for a line break in the
// flattened stream. A span whose EOL flag is set contributes one of
// these immediately after its last character.
const LineBreak = ' '

// NoChar is the sentinel returned by CharAt for offsets past the end
// of the stream.
const NoChar = rune(0)

// Char is a single positioned character as produced by the layout
// engine. BBox is in device space.
type Char struct {
	Rune rune
	BBox model.Rect
}

// Span is one run of characters laid out together. EOL marks spans
// that end a logical line.
type Span struct {
	Chars []Char
	EOL   bool
}

// Len returns the number of characters in the span
func (s Span) Len() int {
	return len(s.Chars)
}

// Store is the flattened, read-only text of one page. It addresses
// the characters of all spans as a single contiguous stream: each span
// contributes its characters in order, and each line-ending span
// contributes one synthetic space after them. A Store is immutable
// once built and safe for concurrent reads.
type Store struct {
	spans []Span

	// offsets[i] is the linear offset of the first character of
	// spans[i], so locating the span holding an offset is a binary
	// search instead of a walk from the head.
	offsets []int

	length int
}

// NewStore builds a Store over the given spans. The spans are kept by
// reference and must not be mutated afterwards.
func NewStore(sp []Span) *Store {
	s := &Store{
		spans:   sp,
		offsets: make([]int, len(sp)),
	}

	base := 0
	for i, span := range sp {
		s.offsets[i] = base
		base += span.Len()
		if span.EOL {
			base++
		}
	}
	s.length = base

	return s
}

// Len returns the total length of the flattened stream: the sum of
// every span's character count plus one synthetic space per
// line-ending span.
func (s *Store) Len() int {
	return s.length
}

// locate resolves a linear offset to the span holding it. It returns
// the span index and the in-span character index; synthetic is true
// when the offset addresses a line-ending span's synthetic space
// rather than a real character. ok is false past the end of the
// stream.
func (s *Store) locate(offset int) (span, char int, synthetic, ok bool) {
	if offset < 0 || offset >= s.length || len(s.spans) == 0 {
		return 0, 0, false, false
	}

	// Last span whose starting offset is <= offset.
	i := sort.Search(len(s.offsets), func(i int) bool {
		return s.offsets[i] > offset
	}) - 1

	rel := offset - s.offsets[i]
	if rel < s.spans[i].Len() {
		return i, rel, false, true
	}

	// offset == base + len can only be reached for a line-ending
	// span; for any other span the next span's base already covers
	// it. This is where line breaks surface as literal spaces.
	return i, rel, true, true
}

// CharAt returns the character at a linear offset, the synthetic
// space at a line-ending span's boundary offset, or NoChar past the
// end of the stream.
func (s *Store) CharAt(offset int) rune {
	span, char, synthetic, ok := s.locate(offset)
	if !ok {
		return NoChar
	}
	if synthetic {
		return LineBreak
	}
	return s.spans[span].Chars[char].Rune
}

// BoxAt returns the device-space bounding box of the character at a
// linear offset. Synthetic spaces have no geometry, so ok is false for
// them as well as for offsets past the end.
func (s *Store) BoxAt(offset int) (model.Rect, bool) {
	span, char, synthetic, ok := s.locate(offset)
	if !ok || synthetic {
		return model.Rect{}, false
	}
	return s.spans[span].Chars[char].BBox, true
}

// SpanAt returns the span holding the given linear offset.
func (s *Store) SpanAt(offset int) (Span, bool) {
	span, _, _, ok := s.locate(offset)
	if !ok {
		return Span{}, false
	}
	return s.spans[span], true
}

// Spans returns the underlying spans in layout order. The returned
// slice must not be mutated.
func (s *Store) Spans() []Span {
	return s.spans
}

// Text reproduces the page's reading-order text with line breaks
// rendered as single spaces.
func (s *Store) Text() string {
	var b strings.Builder
	b.Grow(s.length)

	for _, span := range s.spans {
		for _, c := range span.Chars {
			b.WriteRune(c.Rune)
		}
		if span.EOL {
			b.WriteRune(LineBreak)
		}
	}

	return b.String()
}
