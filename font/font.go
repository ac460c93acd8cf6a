// Package font extracts glyph outlines from OpenType and TrueType fonts.
//
// It is a thin adapter between golang.org/x/image/font/sfnt and the outline
// package: glyphs are loaded at the font's units-per-em and converted into
// source-space paths (font units, Y axis increasing up), ready for
// normalization. Quadratic Bézier segments, as used by TrueType glyphs, are
// raised to cubics.
package font

import (
	"errors"
	"fmt"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/outline"
)

// ErrNoGlyph is returned by [Face.Outline] when the font has no glyph for
// the requested rune, or when the glyph has an empty outline (such as a
// space).
var ErrNoGlyph = errors.New("font: no glyph outline")

// Face is a parsed font from which glyph outlines can be extracted.
//
// A Face is not safe for concurrent use; it owns the scratch buffer the
// sfnt package parses glyph data into.
type Face struct {
	font *sfnt.Font
	buf  sfnt.Buffer
	upem fixed.Int26_6
}

// Parse parses the contents of an OpenType or TrueType font file.
func Parse(data []byte) (*Face, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	return &Face{
		font: f,
		upem: fixed.Int26_6(f.UnitsPerEm()) << 6,
	}, nil
}

// Outline returns the glyph outline for r as a path in source space: font
// units, Y axis increasing up, one subpath per glyph contour, all contours
// closed.
func (f *Face) Outline(r rune) (outline.Path, error) {
	x, err := f.font.GlyphIndex(&f.buf, r)
	if err != nil {
		return nil, fmt.Errorf("font: %w", err)
	}
	if x == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoGlyph, r)
	}
	segs, err := f.font.LoadGlyph(&f.buf, x, f.upem, nil)
	if err != nil {
		return nil, fmt.Errorf("font: loading glyph for %q: %w", r, err)
	}
	if len(segs) == 0 {
		return nil, fmt.Errorf("%w for %q", ErrNoGlyph, r)
	}
	els, err := elements(segs)
	if err != nil {
		return nil, fmt.Errorf("font: glyph for %q: %w", r, err)
	}
	p, err := outline.FromElements(els)
	if err != nil {
		if errors.Is(err, outline.ErrEmptyPath) {
			return nil, fmt.Errorf("%w for %q", ErrNoGlyph, r)
		}
		return nil, fmt.Errorf("font: glyph for %q: %w", r, err)
	}
	return p, nil
}

// elements converts sfnt glyph segments to drawing commands. LoadGlyph
// produces coordinates with the Y axis increasing down; source space has it
// increasing up, so Y is negated. Glyph contours are implicitly closed, so
// every MoveTo but the first closes the previous contour.
func elements(segs sfnt.Segments) ([]outline.PathElement, error) {
	var els []outline.PathElement
	var cur outline.Point
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if len(els) > 0 {
				els = append(els, outline.ClosePath())
			}
			cur = point(seg.Args[0])
			els = append(els, outline.MoveTo(cur))
		case sfnt.SegmentOpLineTo:
			cur = point(seg.Args[0])
			els = append(els, outline.LineTo(cur))
		case sfnt.SegmentOpQuadTo:
			q := point(seg.Args[0])
			end := point(seg.Args[1])
			els = append(els, outline.CubicTo(
				cur.Lerp(q, 2.0/3.0),
				end.Lerp(q, 2.0/3.0),
				end,
			))
			cur = end
		case sfnt.SegmentOpCubeTo:
			cur = point(seg.Args[2])
			els = append(els, outline.CubicTo(
				point(seg.Args[0]),
				point(seg.Args[1]),
				cur,
			))
		default:
			return nil, fmt.Errorf("unsupported segment op %d", seg.Op)
		}
	}
	if len(els) > 0 {
		els = append(els, outline.ClosePath())
	}
	return els, nil
}

// point converts a 26.6 fixed-point glyph coordinate (Y down) to a
// source-space point (Y up).
func point(pt fixed.Point26_6) outline.Point {
	return outline.Pt(
		float64(pt.X)/64,
		-float64(pt.Y)/64,
	)
}
