package outline

// Rect is an axis-aligned bounding box. X0 ≤ X1 and Y0 ≤ Y1 for all
// rectangles produced by this package.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// rectFromPoint returns the degenerate rectangle containing only pt.
func rectFromPoint(pt Point) Rect {
	return Rect{pt.X, pt.Y, pt.X, pt.Y}
}

// UnionPoint returns the smallest rectangle containing both r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Center returns the center of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// IsDegenerate reports whether the rectangle has zero width or zero height.
// A degenerate bounding box has no defined uniform scale and cannot be
// normalized.
func (r Rect) IsDegenerate() bool {
	return r.Width() == 0 || r.Height() == 0
}
