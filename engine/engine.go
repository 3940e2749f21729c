package engine

import (
	"github.com/tsawler/verso/spans"
)

// Engine opens documents. Implementations bind an actual PDF
// rendering engine; this module only consumes the in-memory structures
// an engine produces.
type Engine interface {
	Open(path string) (Document, error)
}

// Document is one open document inside an engine.
type Document interface {
	// PageCount returns the number of pages.
	PageCount() int

	// Page loads the page at the given 0-indexed position.
	Page(index int) (Page, error)

	// Outline returns the document's outline (table of contents)
	// roots, or nil when the document has none.
	Outline() ([]*OutlineItem, error)

	// Info returns the document information dictionary, or nil when
	// the document has none.
	Info() (Dict, error)

	// Close releases engine resources held for this document.
	Close() error
}

// Page is one loaded page inside an engine.
type Page interface {
	// Size returns the page width and height in device units.
	Size() (width, height float64)

	// ExtractSpans runs the engine's text-layout pass and returns the
	// page's text as positioned spans in layout order. It is called
	// at most once per page; the result is cached by the consumer.
	ExtractSpans() ([]spans.Span, error)

	// Links returns the page's link regions in device space.
	Links() ([]Link, error)

	// Resources returns the page's resource dictionary, or nil when
	// the page has none.
	Resources() (Dict, error)

	// Render rasterizes the page at the given scale factors and
	// returns the raw pixmap.
	Render(scaleX, scaleY float64) (*Pixmap, error)
}

// LinkKind identifies the target type of an engine link
type LinkKind int

const (
	LinkNone LinkKind = iota
	LinkURI
	LinkGoto
)

// Link is a link region as the engine reports it: the rectangle is in
// device space, unflipped. DestPage is 0-indexed and only meaningful
// for LinkGoto.
type Link struct {
	X1, Y1, X2, Y2 float64
	Kind           LinkKind
	URI            string
	DestPage       int
}

// OutlineItem is one node of the engine's outline tree.
type OutlineItem struct {
	Title    string
	Kind     LinkKind
	URI      string
	DestPage int
	Children []*OutlineItem
}

// Pixmap is a raw rendered page. Samples holds Height rows of Width
// pixels top-down, Channels bytes per pixel in blue-green-red(-alpha)
// order, the layout rendering engines commonly emit.
type Pixmap struct {
	Width    int
	Height   int
	Channels int
	Samples  []byte
}
