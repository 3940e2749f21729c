package search

import (
	"errors"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/verso/model"
	"github.com/tsawler/verso/spans"
)

// ErrEmptyPattern is returned by Search when the pattern has no
// characters. An empty pattern is a caller error, not a zero-length
// match.
var ErrEmptyPattern = errors.New("search pattern must not be empty")

// accumulator grows the union bounding box of the characters consumed
// by one match trial. The zero value is the empty accumulator; add
// returns the grown accumulator, so trials thread it by value. The
// explicit set flag replaces the zero-as-unset convention, so glyphs
// sitting exactly on a zero coordinate accumulate correctly.
type accumulator struct {
	rect model.Rect
	set  bool
}

// add folds one character box (device space, Y2 being the top edge)
// into the accumulator. The first character fixes the left and bottom
// edges; later characters only push the right and top edges outward.
func (a accumulator) add(c model.Rect) accumulator {
	if !a.set {
		return accumulator{
			rect: model.Rect{X1: c.X1, Y1: c.Y2, X2: c.X2, Y2: c.Y1},
			set:  true,
		}
	}

	if c.X2 > a.rect.X2 {
		a.rect.X2 = c.X2
	}
	if c.Y2 > a.rect.Y1 {
		a.rect.Y1 = c.Y2
	}

	return a
}

// addAt folds in the character at a linear offset. Synthetic spaces
// have no geometry and leave the accumulator unchanged.
func (a accumulator) addAt(store *spans.Store, offset int) accumulator {
	box, ok := store.BoxAt(offset)
	if !ok {
		return a
	}
	return a.add(box)
}

// MatchAt attempts a single case-insensitive match of pattern against
// the stream starting at offset start. On success it returns the
// number of stream positions consumed, which can exceed the pattern
// length because a space in the pattern greedily absorbs a run of
// consecutive stream spaces. On failure the count is zero and the
// rectangle is meaningless.
//
// The returned rectangle is the union bounding box of every consumed
// character, still in device space.
func MatchAt(store *spans.Store, start int, pattern string) (int, model.Rect) {
	n := start
	var acc accumulator

	for _, c := range pattern {
		if c == ' ' && store.CharAt(n) == ' ' {
			for store.CharAt(n) == ' ' {
				acc = acc.addAt(store, n)
				n++
			}
			continue
		}

		if unicode.ToLower(c) != unicode.ToLower(store.CharAt(n)) {
			return 0, model.Rect{}
		}
		acc = acc.addAt(store, n)
		n++
	}

	return n - start, acc.rect
}

// Search scans the whole stream for pattern, trying a match at every
// offset. One rectangle is produced per successful start offset, in
// increasing offset order, flipped into page coordinates using
// pageHeight. Overlapping matches are all reported; no offset is
// skipped after a hit.
//
// The pattern is NFC-normalized before matching so that composed and
// decomposed queries behave alike. Passing an empty pattern returns
// ErrEmptyPattern.
func Search(store *spans.Store, pattern string, pageHeight float64) ([]model.Rect, error) {
	if pattern == "" {
		return nil, ErrEmptyPattern
	}

	pattern = norm.NFC.String(pattern)

	var results []model.Rect
	length := store.Len()

	for i := 0; i < length; i++ {
		consumed, rect := MatchAt(store, i, pattern)
		if consumed == 0 {
			continue
		}

		rect.Y1 = pageHeight - rect.Y1
		rect.Y2 = pageHeight - rect.Y2

		results = append(results, rect)
	}

	return results, nil
}
