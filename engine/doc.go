// Package engine declares the interfaces this module expects from a
// PDF rendering engine, along with the small object model used to
// pass page resources across the boundary.
//
// The module performs no PDF parsing, font handling or rasterization
// of its own: an [Engine] implementation (a binding to MuPDF, Poppler,
// or a pure-Go renderer) supplies open documents, page geometry,
// positioned text spans, links, outlines and rendered pixmaps. The
// packages above this one — page, document, images, render — consume
// only these interfaces, so they can be tested against fakes.
package engine
