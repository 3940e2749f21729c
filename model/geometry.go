package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect represents an axis-aligned rectangle stored as its four edges.
// (X1, Y1) and (X2, Y2) are opposite corners. Which corner is which
// depends on the coordinate space of the producer: glyph boxes coming
// out of a layout engine are bottom-left origin (Y2 is the top edge),
// while search results handed back to viewers have been flipped so that
// Y1 is the top edge and Y2 the bottom.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// NewRect creates a rectangle from two corners
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return math.Abs(r.X2 - r.X1)
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return math.Abs(r.Y2 - r.Y1)
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X1 + r.X2) / 2,
		Y: (r.Y1 + r.Y2) / 2,
	}
}

// Contains checks if a point is inside the rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= math.Min(r.X1, r.X2) && p.X <= math.Max(r.X1, r.X2) &&
		p.Y >= math.Min(r.Y1, r.Y2) && p.Y <= math.Max(r.Y1, r.Y2)
}

// Intersects checks if two rectangles overlap. Both rectangles must be
// normalized (X1 <= X2, Y1 <= Y2).
func (r Rect) Intersects(other Rect) bool {
	return !(r.X2 < other.X1 ||
		r.X1 > other.X2 ||
		r.Y2 < other.Y1 ||
		r.Y1 > other.Y2)
}

// Union returns the smallest rectangle covering both rectangles.
// Both rectangles must be normalized.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
		X2: math.Max(r.X2, other.X2),
		Y2: math.Max(r.Y2, other.Y2),
	}
}

// Normalized returns the rectangle with its corners ordered so that
// X1 <= X2 and Y1 <= Y2.
func (r Rect) Normalized() Rect {
	return Rect{
		X1: math.Min(r.X1, r.X2),
		Y1: math.Min(r.Y1, r.Y2),
		X2: math.Max(r.X1, r.X2),
		Y2: math.Max(r.Y1, r.Y2),
	}
}

// IsEmpty returns true if the rectangle has zero area
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}
