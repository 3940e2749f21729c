// Package search implements case-insensitive substring search over a
// page's flattened text stream, producing one bounding rectangle per
// match.
//
// [MatchAt] runs a single trial at one offset; [Search] drives it over
// every offset of a [spans.Store] and flips the resulting rectangles
// into page coordinates. A space in the pattern matches any run of
// consecutive spaces in the stream, including the synthetic spaces
// that stand in for line breaks, so a query can match text that wraps
// onto the next line.
package search
