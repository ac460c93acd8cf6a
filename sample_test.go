package outline

import (
	"errors"
	"testing"
)

func TestSample(t *testing.T) {
	p, err := FromElements([]PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(100, 0)),
		LineTo(Pt(100, 10)),
		MoveTo(Pt(200, 0)),
		CubicTo(Pt(210, 10), Pt(230, 10), Pt(240, 0)),
	})
	if err != nil {
		t.Fatal(err)
	}

	strokes, err := Sample(p, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(strokes) != 2 {
		t.Fatalf("got %d strokes, expected 2", len(strokes))
	}
	for i, stroke := range strokes {
		if stroke.Subpath != i {
			t.Errorf("stroke %d carries subpath index %d", i, stroke.Subpath)
		}
		if len(stroke.Points) != 5 {
			t.Errorf("stroke %d has %d points, expected 5", i, len(stroke.Points))
		}
		// The first and last samples are the literal endpoints.
		diff(t, p[i].Start(), stroke.Points[0])
		diff(t, p[i].End(), stroke.Points[4])
	}

	// Stroke order is subpath order.
	diff(t, Pt(0, 0), strokes[0].Points[0])
	diff(t, Pt(200, 0), strokes[1].Points[0])
}

func TestSampleTwoPoints(t *testing.T) {
	p := glyphPath(t)
	strokes, err := Sample(p, 2)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, p[0].Start(), strokes[0].Points[0])
	diff(t, p[0].End(), strokes[0].Points[1])
}

func TestSampleErrors(t *testing.T) {
	p := glyphPath(t)
	for _, n := range []int{1, 0, -3} {
		_, err := Sample(p, n)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("Sample(p, %d): got %v, expected ErrInvalidSampleCount", n, err)
		}
	}

	_, err := Sample(Path{}, 10)
	if !errors.Is(err, ErrEmptyPath) {
		t.Errorf("got %v, expected ErrEmptyPath", err)
	}
}
