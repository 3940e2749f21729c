// Package verso provides a fluent API for searching and extracting
// positioned text from PDF pages through a pluggable rendering engine.
//
// Basic usage:
//
//	matches, err := verso.Open(eng, "document.pdf").Search("invoice total")
//	if err != nil {
//	    // handle error
//	}
//	for _, m := range matches {
//	    fmt.Println(m.Page, m.Rects)
//	}
//
// With options:
//
//	matches, err := verso.Open(eng, "report.pdf").
//	    Pages(1, 2, 3).
//	    Search("net amount")
//
// The engine argument is any implementation of [engine.Engine]; the
// lower-level document and page packages are also available for
// callers that want direct control over page lifecycle.
package verso

import (
	"github.com/tsawler/verso/document"
	"github.com/tsawler/verso/engine"
)

// Open prepares a session on the document at filename, opened through
// eng. Nothing is read until a terminal operation runs. The session
// must be closed when done, explicitly via Close or implicitly by the
// first failing terminal operation.
//
// Example:
//
//	matches, err := verso.Open(eng, "document.pdf").Search("total")
func Open(eng engine.Engine, filename string) *Session {
	return &Session{
		eng:      eng,
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates a Session over an already-open document. The
// caller remains responsible for closing the document.
//
// Example:
//
//	doc, err := document.Open(eng, "document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//	matches, err := verso.FromDocument(doc).Search("total")
func FromDocument(doc *document.Document) *Session {
	return &Session{
		doc:     doc,
		opened:  true,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning
// (T, error) and panics if the error is non-nil. It is intended for
// use in scripts or tests where error handling would be cumbersome.
//
// Example:
//
//	matches := verso.Must(verso.Open(eng, "document.pdf").Search("total"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
