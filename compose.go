package outline

// PlaceChild embeds an independently normalized outline inside a larger one:
// the child is normalized to a childTarget-sized square, centered at the
// origin, and then translated so that its center lands at the point at.
//
// childTarget and at must be expressed in the same space, typically the
// parent's normalized target space, or the parent's outline space after
// mapping a canvas coordinate through [Transform.ToOutline] and dividing
// sizes by the parent scale. This is how a digit glyph ends up inside a
// circular marker positioned on a letter, independent of the two outlines'
// source sizes.
//
// The composition order is fixed: normalize, center at the origin, translate
// to at. Errors from normalizing the child ([ErrEmptyPath],
// [ErrDegenerateGeometry]) are returned unchanged.
func PlaceChild(child Path, childTarget float64, at Point) (Path, error) {
	norm, _, err := Normalize(child, childTarget)
	if err != nil {
		return nil, err
	}
	// The normalized child's center is at (childTarget/2, childTarget/2);
	// moving it to the origin and then to at is a single translation.
	return norm.Translate(at.X-childTarget/2, at.Y-childTarget/2), nil
}

// PlaceChildAtCanvas places the child relative to a canvas point on the
// parent's rendered outline: canvasPt is mapped into the parent's outline
// space through [Transform.ToOutline], and childTarget, given in canvas
// units, is divided by the parent scale. The result lives in the parent's
// outline space.
func PlaceChildAtCanvas(child Path, childTarget float64, canvasPt Point, parent Transform) (Path, error) {
	if parent.Scale == 0 {
		return nil, ErrDegenerateGeometry
	}
	return PlaceChild(child, childTarget/parent.Scale, parent.ToOutline(canvasPt))
}
