package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if got.Distance(want) > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func assertNearFloat(t *testing.T, got, want, epsilon float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Fatalf("got %g, expected %g", got, want)
	}
}

// glyphPath returns a small asymmetric outline with a line, a cubic, and a
// closing edge, in source space (y up). Its control-polygon bounding box is
// [0, 150] × [0, 200].
func glyphPath(t *testing.T) Path {
	t.Helper()
	p, err := FromElements([]PathElement{
		MoveTo(Pt(0, 0)),
		LineTo(Pt(100, 0)),
		CubicTo(Pt(150, 50), Pt(150, 150), Pt(100, 200)),
		LineTo(Pt(0, 200)),
		ClosePath(),
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}
