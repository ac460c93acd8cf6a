package outline

import "math"

// Arrow synthesizes the two wings of an arrow head at the end of the
// directed segment from → to. Each wing is a line segment of the given
// length, rotated by ±angleDeg degrees away from the segment's direction,
// terminating at to. No shaft is produced; callers draw the from → to
// segment themselves.
//
// Points and length are in target space; the wings are returned in the same
// space. length must be positive.
func Arrow(from, to Point, length, angleDeg float64) (Segment, Segment) {
	th := from.Angle(to)
	alpha := angleDeg * math.Pi / 180

	wing := func(a float64) Segment {
		sin, cos := math.Sincos(a)
		base := Point{
			X: to.X - length*cos,
			Y: to.Y - length*sin,
		}
		return LineSegment(base, to)
	}
	return wing(th - alpha), wing(th + alpha)
}

// ArrowPath wraps the two wings of [Arrow] as a path of two open subpaths,
// ready for serialization with [PathData].
func ArrowPath(from, to Point, length, angleDeg float64) Path {
	left, right := Arrow(from, to, length, angleDeg)
	return Path{
		{Segments: []Segment{left}},
		{Segments: []Segment{right}},
	}
}

// Circle synthesizes a full circle as a closed subpath of two 180° arcs
// sharing their endpoints at (center.X ± radius, center.Y). The two arcs
// together trace the circle exactly once, without self-intersection, and
// serialize to the usual pair of large-arc SVG commands.
//
// Center and radius are in target space; the circle is returned in the same
// space. radius must be positive.
func Circle(center Point, radius float64) Subpath {
	return Subpath{
		Segments: []Segment{
			arcSegment(center, radius, 0, -math.Pi),
			arcSegment(center, radius, -math.Pi, -math.Pi),
		},
		Closed: true,
	}
}
