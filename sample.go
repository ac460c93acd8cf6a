package outline

// Stroke is the point sequence sampled along one subpath. Subpath is the
// index of the subpath within its path.
type Stroke struct {
	Subpath int
	Points  []Point
}

// Sample produces n points along each subpath of p, at parameter values
// t = k/(n−1) for k = 0..n−1, so that the first and last samples land
// exactly on the subpath's start and end points. Strokes are returned in
// subpath (stroke) order.
//
// The parameterization is per-segment-uniform, not arc-length-uniform; see
// [Subpath.Eval].
//
// Sample returns [ErrInvalidSampleCount] if n < 2 and [ErrEmptyPath] if p
// has no subpaths.
func Sample(p Path, n int) ([]Stroke, error) {
	if n < 2 {
		return nil, ErrInvalidSampleCount
	}
	if len(p) == 0 {
		return nil, ErrEmptyPath
	}
	strokes := make([]Stroke, len(p))
	for i, sp := range p {
		pts := make([]Point, n)
		for k := 0; k < n; k++ {
			pts[k] = sp.Eval(float64(k) / float64(n-1))
		}
		strokes[i] = Stroke{Subpath: i, Points: pts}
	}
	return strokes, nil
}
