package outline

import (
	"fmt"
	"iter"
)

// Subpath is one continuous stroke of an outline: an ordered, non-empty
// sequence of segments in which each segment starts where the previous one
// ended. A subpath may be open or closed; closed subpaths end with an
// explicit segment back to the start point where necessary, so that End
// always reports the point the pen finishes at.
type Subpath struct {
	Segments []Segment
	Closed   bool
}

// Start returns the subpath's start point.
func (sp Subpath) Start() Point {
	return sp.Segments[0].Start()
}

// End returns the subpath's end point. For closed subpaths this equals
// Start.
func (sp Subpath) End() Point {
	return sp.Segments[len(sp.Segments)-1].End()
}

// Eval evaluates the subpath at parameter t ∈ [0, 1], with t = 0 at Start
// and t = 1 at End.
//
// The parameterization is per-segment-uniform: the parameter range is
// divided evenly between segments regardless of their arc length, so points
// spaced evenly in t are not spaced evenly along the curve. Consumers use
// the samples only for coarse stroke-shape approximation, where this does
// not matter.
func (sp Subpath) Eval(t float64) Point {
	n := len(sp.Segments)
	u := t * float64(n)
	i := int(u)
	if i < 0 {
		i = 0
	}
	if i > n-1 {
		i = n - 1
	}
	return sp.Segments[i].Eval(u - float64(i))
}

// transform returns the subpath transformed by tr.
func (sp Subpath) transform(tr Transform) Subpath {
	segs := make([]Segment, len(sp.Segments))
	for i, seg := range sp.Segments {
		segs[i] = seg.Transform(tr)
	}
	return Subpath{Segments: segs, Closed: sp.Closed}
}

// Path is a vector outline: an ordered sequence of subpaths. The order is
// the stroke order of the source and is preserved by every operation.
//
// Paths are immutable by convention: operations return new paths and never
// modify their receiver.
type Path []Subpath

// FromElements builds a path from a sequence of drawing commands. Each
// subpath must begin with a MoveTo; a MoveTo directly followed by another
// MoveTo starts the subpath over without emitting anything. Following SVG
// semantics, a drawing command after a ClosePath starts a new subpath at the
// closed subpath's start point.
//
// FromElements returns [ErrEmptyPath] if the commands draw nothing.
func FromElements(els []PathElement) (Path, error) {
	var p Path
	var cur []Segment
	var start Point
	var last Point
	started := false

	flush := func(closed bool) {
		if len(cur) > 0 {
			p = append(p, Subpath{Segments: cur, Closed: closed})
			cur = nil
		}
	}

	for _, el := range els {
		switch el.Kind {
		case MoveToKind:
			flush(false)
			start = el.P0
			last = el.P0
			started = true
		case LineToKind:
			if !started {
				return nil, fmt.Errorf("outline: LineTo before MoveTo")
			}
			cur = append(cur, LineSegment(last, el.P0))
			last = el.P0
		case CubicToKind:
			if !started {
				return nil, fmt.Errorf("outline: CubicTo before MoveTo")
			}
			cur = append(cur, CubicSegment(last, el.P0, el.P1, el.P2))
			last = el.P2
		case ClosePathKind:
			if !started {
				return nil, fmt.Errorf("outline: ClosePath before MoveTo")
			}
			if last != start {
				cur = append(cur, LineSegment(last, start))
			}
			flush(true)
			last = start
		default:
			return nil, fmt.Errorf("outline: invalid path element kind %d", el.Kind)
		}
	}
	flush(false)

	if len(p) == 0 {
		return nil, ErrEmptyPath
	}
	return p, nil
}

// BoundingBox returns the bounding box of all segment endpoints and control
// points in the path. For Bézier segments this is the control polygon's box:
// it always contains the curve, and normalizing against it reproduces the
// behavior of bounding outlines by their control points.
//
// It returns [ErrEmptyPath] if the path has no segments and
// [ErrDegenerateGeometry] if the box has zero width or zero height.
func (p Path) BoundingBox() (Rect, error) {
	first := true
	var bbox Rect
	for _, sp := range p {
		for _, seg := range sp.Segments {
			cb := seg.controlBox()
			if first {
				bbox = cb
				first = false
			} else {
				bbox = bbox.UnionPoint(Pt(cb.X0, cb.Y0)).UnionPoint(Pt(cb.X1, cb.Y1))
			}
		}
	}
	if first {
		return Rect{}, ErrEmptyPath
	}
	if bbox.IsDegenerate() {
		return Rect{}, fmt.Errorf("%w: %g×%g", ErrDegenerateGeometry, bbox.Width(), bbox.Height())
	}
	return bbox, nil
}

// Transform returns a new path with tr applied to every segment. The
// receiver is not modified.
func (p Path) Transform(tr Transform) Path {
	out := make(Path, len(p))
	for i, sp := range p {
		out[i] = sp.transform(tr)
	}
	return out
}

// Translate returns a new path shifted by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	return p.Transform(Transform{Scale: 1, OffsetX: dx, OffsetY: dy})
}

// Elements returns the path's drawing commands, in stroke order.
//
// Arc segments, which only occur in [Circle] marker output, have no drawing
// command in the move/line/cubic vocabulary; Elements panics on them. Use
// [PathData] to serialize paths that may contain arcs.
func (p Path) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, sp := range p {
			if !yield(MoveTo(sp.Start())) {
				return
			}
			for _, seg := range sp.Segments {
				var el PathElement
				switch seg.Kind {
				case LineKind:
					el = LineTo(seg.P1)
				case CubicKind:
					el = CubicTo(seg.P1, seg.P2, seg.P3)
				case ArcKind:
					panic("outline: arc segments cannot be expressed as path elements")
				default:
					panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
				}
				if !yield(el) {
					return
				}
			}
			if sp.Closed {
				if !yield(ClosePath()) {
					return
				}
			}
		}
	}
}
