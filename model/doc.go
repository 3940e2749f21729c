// Package model defines the geometric and document-level value types
// shared by the rest of the module.
//
// # Geometry
//
// [Rect] is an edge-based rectangle. Glyph boxes produced by a layout
// engine are in device space (bottom-left origin); rectangles returned
// to viewers from search operations have been flipped into page space.
// [Rect.Normalized] orders the corners for the helpers that require it.
//
// # Document types
//
// [Link], [IndexEntry] and [InfoEntry] carry link regions, outline
// nodes and metadata entries between the document layer and callers.
package model
