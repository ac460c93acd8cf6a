package outline

// Transform is the affine transform family used for outline normalization:
// an optional vertical flip, followed by uniform scaling, followed by
// translation. Applied to a point (x, y) it produces
//
//	x' = x·Scale + OffsetX
//	y' = ±y·Scale + OffsetY
//
// with the sign of y chosen by FlipY. The order is fixed by construction;
// the flip always happens before scale and offset.
type Transform struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	FlipY   bool
}

// Identity is the transform that maps every point to itself.
var Identity = Transform{Scale: 1}

// Apply maps a point from source space to target space.
func (tr Transform) Apply(pt Point) Point {
	y := pt.Y
	if tr.FlipY {
		y = -y
	}
	return Point{
		X: pt.X*tr.Scale + tr.OffsetX,
		Y: y*tr.Scale + tr.OffsetY,
	}
}

// Invert maps a point from target space back to source space. It is the
// exact inverse of [Transform.Apply].
func (tr Transform) Invert(pt Point) Point {
	x := (pt.X - tr.OffsetX) / tr.Scale
	y := (pt.Y - tr.OffsetY) / tr.Scale
	if tr.FlipY {
		y = -y
	}
	return Point{X: x, Y: y}
}

// ToOutline maps a point from target space to outline space: it undoes the
// scale and offset but keeps the vertical flip. Interactive annotations
// (clicked marker positions, traced strokes) are stored in outline space so
// that they can be re-projected with any later transform.
func (tr Transform) ToOutline(pt Point) Point {
	return Point{
		X: (pt.X - tr.OffsetX) / tr.Scale,
		Y: (pt.Y - tr.OffsetY) / tr.Scale,
	}
}

// FromOutline maps a point from outline space to target space. It is the
// inverse of [Transform.ToOutline].
func (tr Transform) FromOutline(pt Point) Point {
	return Point{
		X: pt.X*tr.Scale + tr.OffsetX,
		Y: pt.Y*tr.Scale + tr.OffsetY,
	}
}

// Translate returns a copy of tr with an additional target-space shift of
// (dx, dy). Callers that draw the normalized outline with an extra margin
// use this to keep one transform describing the complete mapping.
func (tr Transform) Translate(dx, dy float64) Transform {
	tr.OffsetX += dx
	tr.OffsetY += dy
	return tr
}

// Normalize computes the canonical transform that flips p vertically, scales
// it uniformly, and centers it in a target × target square, and returns the
// transformed path together with the transform.
//
// The input is in source space (Y up); the result is in target space (Y
// down), with the outline's bounding box centered in [0, target]² and its
// larger dimension spanning exactly target. The scale is
// min(target/width, target/height): uniform and aspect-preserving.
//
// The returned transform is the one already applied to the result; reusing
// it for all geometry derived from the same outline keeps every derived
// coordinate consistent with a single normalization pass.
//
// Normalize returns [ErrEmptyPath] for paths without segments and
// [ErrDegenerateGeometry] for paths whose bounding box has zero width or
// height, which would make the scale undefined.
func Normalize(p Path, target float64) (Path, Transform, error) {
	bbox, err := p.BoundingBox()
	if err != nil {
		return nil, Transform{}, err
	}

	w := bbox.Width()
	h := bbox.Height()
	scale := min(target/w, target/h)

	// After the flip, the box spans [-maxY, -minY] vertically, so -maxY
	// takes the role of the minimum.
	tr := Transform{
		Scale:   scale,
		OffsetX: (target-w*scale)/2 - bbox.X0*scale,
		OffsetY: (target-h*scale)/2 + bbox.Y1*scale,
		FlipY:   true,
	}
	return p.Transform(tr), tr, nil
}

// NormalizeInset is like [Normalize] but keeps a margin of empty space on
// every side of the target × target square: the outline is normalized into
// a square of side target − 2·margin and then shifted by margin on both
// axes. The returned transform includes the shift.
func NormalizeInset(p Path, target, margin float64) (Path, Transform, error) {
	norm, tr, err := Normalize(p, target-2*margin)
	if err != nil {
		return nil, Transform{}, err
	}
	tr = tr.Translate(margin, margin)
	return norm.Translate(margin, margin), tr, nil
}
