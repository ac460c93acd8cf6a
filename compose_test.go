package outline

import (
	"errors"
	"testing"
)

func TestPlaceChild(t *testing.T) {
	const epsilon = 1e-9
	child := glyphPath(t)

	placed, err := PlaceChild(child, 10, Pt(50, 80))
	if err != nil {
		t.Fatal(err)
	}
	bbox, err := placed.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	// The child is normalized to a 10-sized square and centered at the
	// target point.
	assertNear(t, bbox.Center(), Pt(50, 80), epsilon)
	assertNearFloat(t, max(bbox.Width(), bbox.Height()), 10, epsilon)
}

func TestPlaceChildDeterministic(t *testing.T) {
	child := glyphPath(t)
	opts := PathDataOptions{MaxPrecision: 6}

	a, err := PlaceChild(child, 12, Pt(123.4, 56.7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := PlaceChild(child, 12, Pt(123.4, 56.7))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, PathData(a, opts), PathData(b, opts))
}

func TestPlaceChildInsideCircle(t *testing.T) {
	const epsilon = 1e-9
	child := glyphPath(t)
	center := Pt(200, 300)
	const radius = 12.0

	// A digit placed inside a marker circle must stay inside it: the
	// child square's diagonal is bounded by the square's side times √2.
	placed, err := PlaceChild(child, 2*radius*0.6, center)
	if err != nil {
		t.Fatal(err)
	}
	bbox, err := placed.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	for _, corner := range []Point{
		Pt(bbox.X0, bbox.Y0),
		Pt(bbox.X1, bbox.Y0),
		Pt(bbox.X0, bbox.Y1),
		Pt(bbox.X1, bbox.Y1),
	} {
		if d := corner.Distance(center); d > radius*1.2*0.7071067811865476+epsilon {
			t.Errorf("corner %s is %g from the center", corner, d)
		}
	}
}

func TestPlaceChildAtCanvas(t *testing.T) {
	const epsilon = 1e-9
	child := glyphPath(t)
	parent := Transform{Scale: 2, OffsetX: 100, OffsetY: 300, FlipY: true}

	// The canvas point maps through the scale and centering offsets only,
	// and the canvas-unit size is halved by the parent scale.
	placed, err := PlaceChildAtCanvas(child, 12, Pt(150, 260), parent)
	if err != nil {
		t.Fatal(err)
	}
	bbox, err := placed.BoundingBox()
	if err != nil {
		t.Fatal(err)
	}
	assertNear(t, bbox.Center(), Pt(25, -20), epsilon)
	assertNearFloat(t, max(bbox.Width(), bbox.Height()), 6, epsilon)

	_, err = PlaceChildAtCanvas(child, 12, Pt(0, 0), Transform{})
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("got %v, expected ErrDegenerateGeometry", err)
	}
}

func TestPlaceChildErrors(t *testing.T) {
	_, err := PlaceChild(Path{}, 10, Pt(0, 0))
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got %v, expected ErrEmptyPath", err)
	}

	flat, err := FromElements([]PathElement{
		MoveTo(Pt(0, 5)),
		LineTo(Pt(10, 5)),
	})
	if err != nil {
		t.Fatal(err)
	}
	_, err = PlaceChild(flat, 10, Pt(0, 0))
	if !errors.Is(err, ErrDegenerateGeometry) {
		t.Errorf("got %v, expected ErrDegenerateGeometry", err)
	}
}
