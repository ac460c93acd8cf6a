package font

import (
	"testing"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/outline"
)

func fix(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.Int26_6(y * 64),
	}
}

func TestElements(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fix(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fix(10, 0)}},
		{Op: sfnt.SegmentOpCubeTo, Args: [3]fixed.Point26_6{fix(15, -5), fix(15, -15), fix(10, -20)}},
	}
	els, err := elements(segs)
	if err != nil {
		t.Fatal(err)
	}
	want := []outline.PathElement{
		outline.MoveTo(outline.Pt(0, 0)),
		outline.LineTo(outline.Pt(10, 0)),
		// Y is negated: glyph coordinates grow down, source space grows up.
		outline.CubicTo(outline.Pt(15, 5), outline.Pt(15, 15), outline.Pt(10, 20)),
		outline.ClosePath(),
	}
	if len(els) != len(want) {
		t.Fatalf("got %d elements, expected %d", len(els), len(want))
	}
	for i := range want {
		if els[i] != want[i] {
			t.Errorf("element %d: got %v, expected %v", i, els[i], want[i])
		}
	}
}

func TestElementsQuadRaised(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fix(0, 0)}},
		{Op: sfnt.SegmentOpQuadTo, Args: [3]fixed.Point26_6{fix(5, -10), fix(10, 0)}},
	}
	els, err := elements(segs)
	if err != nil {
		t.Fatal(err)
	}
	if els[1].Kind != outline.CubicToKind {
		t.Fatalf("quadratic was not raised to a cubic: %v", els[1])
	}

	p, err := outline.FromElements(els)
	if err != nil {
		t.Fatal(err)
	}
	// The raised cubic passes through the quadratic's midpoint (5, 5) in
	// source space.
	mid := p[0].Segments[0].Eval(0.5)
	if mid.Distance(outline.Pt(5, 5)) > 1e-9 {
		t.Errorf("midpoint %s, expected (5, 5)", mid)
	}
}

func TestElementsClosesContours(t *testing.T) {
	segs := sfnt.Segments{
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fix(0, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fix(10, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fix(10, -10)}},
		{Op: sfnt.SegmentOpMoveTo, Args: [3]fixed.Point26_6{fix(20, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fix(30, 0)}},
		{Op: sfnt.SegmentOpLineTo, Args: [3]fixed.Point26_6{fix(30, -10)}},
	}
	els, err := elements(segs)
	if err != nil {
		t.Fatal(err)
	}
	p, err := outline.FromElements(els)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 2 {
		t.Fatalf("got %d contours, expected 2", len(p))
	}
	for i, sp := range p {
		if !sp.Closed {
			t.Errorf("contour %d is not closed", i)
		}
		if sp.Start() != sp.End() {
			t.Errorf("contour %d does not end at its start", i)
		}
	}
}
