package outline

import "math"

type SegmentKind int

const (
	// A line segment.
	LineKind SegmentKind = iota + 1
	// A cubic Bézier segment.
	CubicKind
	// A circular arc segment. Arcs are synthesized only by [Circle]; paths
	// built from drawing commands never contain them.
	ArcKind
)

// Segment is a curve primitive: a straight line, a cubic Bézier, or a
// circular arc. It acts as a tagged union; which point fields are meaningful
// depends on the Kind.
//
// Within a subpath, a segment's start point equals the previous segment's
// end point.
type Segment struct {
	Kind SegmentKind

	// P0 is the start point. For lines, P1 is the end point. For cubics, P1
	// and P2 are the control points and P3 is the end point.
	P0, P1, P2, P3 Point

	// Arc geometry, set only when Kind is ArcKind. The arc starts at P0,
	// ends at P1, and runs along the circle around Center with the given
	// Radius, from StartAngle through SweepAngle radians. A negative
	// SweepAngle runs in the direction of decreasing angle.
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

// LineSegment returns the line segment from p0 to p1.
func LineSegment(p0, p1 Point) Segment {
	return Segment{Kind: LineKind, P0: p0, P1: p1}
}

// CubicSegment returns the cubic Bézier segment from p0 to p3 with control
// points p1 and p2.
func CubicSegment(p0, p1, p2, p3 Point) Segment {
	return Segment{Kind: CubicKind, P0: p0, P1: p1, P2: p2, P3: p3}
}

// arcSegment returns the arc around center with the given radius, covering
// [start, start+sweep] radians.
func arcSegment(center Point, radius, start, sweep float64) Segment {
	return Segment{
		Kind:       ArcKind,
		P0:         arcPoint(center, radius, start),
		P1:         arcPoint(center, radius, start+sweep),
		Center:     center,
		Radius:     radius,
		StartAngle: start,
		SweepAngle: sweep,
	}
}

func arcPoint(center Point, radius, th float64) Point {
	sin, cos := math.Sincos(th)
	return Point{
		X: center.X + radius*cos,
		Y: center.Y + radius*sin,
	}
}

// Start returns the segment's start point.
func (seg Segment) Start() Point {
	return seg.P0
}

// End returns the segment's end point.
func (seg Segment) End() Point {
	switch seg.Kind {
	case LineKind, ArcKind:
		return seg.P1
	case CubicKind:
		return seg.P3
	default:
		return Point{}
	}
}

// Eval evaluates the segment at parameter t ∈ [0, 1].
func (seg Segment) Eval(t float64) Point {
	switch seg.Kind {
	case LineKind:
		return seg.P0.Lerp(seg.P1, t)
	case CubicKind:
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		return Point{
			X: a*seg.P0.X + b*seg.P1.X + c*seg.P2.X + d*seg.P3.X,
			Y: a*seg.P0.Y + b*seg.P1.Y + c*seg.P2.Y + d*seg.P3.Y,
		}
	case ArcKind:
		return arcPoint(seg.Center, seg.Radius, seg.StartAngle+t*seg.SweepAngle)
	default:
		return Point{}
	}
}

// Transform returns the segment transformed by tr. For arcs, the radius is
// scaled and the angles are mirrored when tr flips the Y axis; only uniform
// transforms as described by [Transform] keep arcs circular, which is the
// only kind this package applies.
func (seg Segment) Transform(tr Transform) Segment {
	switch seg.Kind {
	case LineKind:
		return LineSegment(tr.Apply(seg.P0), tr.Apply(seg.P1))
	case CubicKind:
		return CubicSegment(
			tr.Apply(seg.P0),
			tr.Apply(seg.P1),
			tr.Apply(seg.P2),
			tr.Apply(seg.P3),
		)
	case ArcKind:
		start, sweep := seg.StartAngle, seg.SweepAngle
		if tr.FlipY {
			start, sweep = -start, -sweep
		}
		return arcSegment(tr.Apply(seg.Center), seg.Radius*tr.Scale, start, sweep)
	default:
		return Segment{}
	}
}

// controlBox returns the bounding box of the segment's endpoints and control
// points. For Béziers this is the control polygon's box, which contains the
// curve but is not tight; for arcs it is the box of the arc's full circle.
func (seg Segment) controlBox() Rect {
	switch seg.Kind {
	case LineKind:
		return rectFromPoint(seg.P0).UnionPoint(seg.P1)
	case CubicKind:
		return rectFromPoint(seg.P0).
			UnionPoint(seg.P1).
			UnionPoint(seg.P2).
			UnionPoint(seg.P3)
	case ArcKind:
		return Rect{
			X0: seg.Center.X - seg.Radius,
			Y0: seg.Center.Y - seg.Radius,
			X1: seg.Center.X + seg.Radius,
			Y1: seg.Center.Y + seg.Radius,
		}
	default:
		return Rect{}
	}
}
