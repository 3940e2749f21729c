// Package spans holds the flattened text model of a single page.
//
// A layout engine extracts a page's text as an ordered sequence of
// [Span] values: runs of positioned characters, some of which end a
// logical line. [Store] linearizes those runs into one contiguous
// character stream so that substring search can address the whole page
// with a single integer offset. Every line-ending span contributes a
// synthetic space to the stream right after its last character, which
// is how a search pattern can match text across a line break.
//
// A Store is built once per page, is immutable, and may be read from
// multiple goroutines.
package spans
