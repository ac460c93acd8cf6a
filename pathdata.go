package outline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PathDataOptions specifies optional settings for [PathData] and
// [WritePathData].
type PathDataOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent
	// any given coordinate.
	MaxPrecision int
}

// PathData converts a path to a string of SVG path-data commands (the value
// of a path's "d" attribute). Only absolute commands are emitted: M, L, C,
// A, and Z.
//
// See [WritePathData] for a version that writes to an [io.Writer] instead
// of returning a string.
func PathData(p Path, opts PathDataOptions) string {
	sb := &strings.Builder{}
	WritePathData(sb, p, opts)
	return sb.String()
}

// WritePathData converts a path to a string of SVG path-data commands and
// writes it to w.
//
// See [PathData] for a version that returns a string instead.
func WritePathData(w io.Writer, p Path, opts PathDataOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		if strings.Contains(s, ".") {
			s = strings.TrimRight(s, "0")
			s = strings.TrimSuffix(s, ".")
		}
		if s == "-0" {
			s = "0"
		}
		return s
	}
	first := true
	sep := func() string {
		if first {
			first = false
			return ""
		}
		return " "
	}
	for _, sp := range p {
		if err != nil {
			return err
		}
		start := sp.Start()
		writef("%sM%s,%s", sep(), format(start.X), format(start.Y))
		for _, seg := range sp.Segments {
			switch seg.Kind {
			case LineKind:
				writef(" L%s,%s", format(seg.P1.X), format(seg.P1.Y))
			case CubicKind:
				writef(" C%s,%s %s,%s %s,%s",
					format(seg.P1.X), format(seg.P1.Y),
					format(seg.P2.X), format(seg.P2.Y),
					format(seg.P3.X), format(seg.P3.Y))
			case ArcKind:
				sweep := 0
				if seg.SweepAngle > 0 {
					sweep = 1
				}
				writef(" A%s,%s 0 1,%d %s,%s",
					format(seg.Radius), format(seg.Radius),
					sweep,
					format(seg.P1.X), format(seg.P1.Y))
			default:
				panic(fmt.Sprintf("invalid segment kind %d", seg.Kind))
			}
		}
		if sp.Closed {
			writef(" Z")
		}
	}
	return err
}

// ParsePathData parses a string of SVG path-data commands into a path. The
// supported commands are M, L, H, V, C, Q, and Z, in both absolute and
// relative form, which covers the output of common glyph-to-path converters.
// Quadratic Béziers are raised to cubics, so the resulting path uses only
// the package's line and cubic segment vocabulary.
func ParsePathData(s string) (Path, error) {
	p := &pathDataParser{s: s}
	els, err := p.parse()
	if err != nil {
		return nil, err
	}
	return FromElements(els)
}

type pathDataParser struct {
	s   string
	pos int

	els   []PathElement
	cur   Point
	start Point
}

func (p *pathDataParser) parse() ([]PathElement, error) {
	for {
		p.skipSeparators()
		if p.pos >= len(p.s) {
			return p.els, nil
		}
		cmd := p.s[p.pos]
		p.pos++
		if err := p.command(cmd); err != nil {
			return nil, err
		}
	}
}

func (p *pathDataParser) command(cmd byte) error {
	rel := cmd >= 'a' && cmd <= 'z'
	switch cmd {
	case 'M', 'm':
		pt, err := p.point(rel)
		if err != nil {
			return err
		}
		p.els = append(p.els, MoveTo(pt))
		p.cur = pt
		p.start = pt
		// Further coordinate pairs are implicit line-tos.
		for p.hasNumber() {
			pt, err := p.point(rel)
			if err != nil {
				return err
			}
			p.els = append(p.els, LineTo(pt))
			p.cur = pt
		}
	case 'L', 'l':
		for {
			pt, err := p.point(rel)
			if err != nil {
				return err
			}
			p.els = append(p.els, LineTo(pt))
			p.cur = pt
			if !p.hasNumber() {
				break
			}
		}
	case 'H', 'h':
		for {
			x, err := p.number()
			if err != nil {
				return err
			}
			if rel {
				x += p.cur.X
			}
			pt := Pt(x, p.cur.Y)
			p.els = append(p.els, LineTo(pt))
			p.cur = pt
			if !p.hasNumber() {
				break
			}
		}
	case 'V', 'v':
		for {
			y, err := p.number()
			if err != nil {
				return err
			}
			if rel {
				y += p.cur.Y
			}
			pt := Pt(p.cur.X, y)
			p.els = append(p.els, LineTo(pt))
			p.cur = pt
			if !p.hasNumber() {
				break
			}
		}
	case 'C', 'c':
		for {
			c1, err := p.point(rel)
			if err != nil {
				return err
			}
			c2, err := p.point(rel)
			if err != nil {
				return err
			}
			end, err := p.point(rel)
			if err != nil {
				return err
			}
			p.els = append(p.els, CubicTo(c1, c2, end))
			p.cur = end
			if !p.hasNumber() {
				break
			}
		}
	case 'Q', 'q':
		for {
			q, err := p.point(rel)
			if err != nil {
				return err
			}
			end, err := p.point(rel)
			if err != nil {
				return err
			}
			// Raise the quadratic to a cubic with identical geometry.
			c1 := p.cur.Lerp(q, 2.0/3.0)
			c2 := end.Lerp(q, 2.0/3.0)
			p.els = append(p.els, CubicTo(c1, c2, end))
			p.cur = end
			if !p.hasNumber() {
				break
			}
		}
	case 'Z', 'z':
		p.els = append(p.els, ClosePath())
		p.cur = p.start
	default:
		return fmt.Errorf("outline: unsupported path-data command %q", cmd)
	}
	return nil
}

func (p *pathDataParser) skipSeparators() {
	for p.pos < len(p.s) {
		switch p.s[p.pos] {
		case ' ', '\t', '\n', '\r', ',':
			p.pos++
		default:
			return
		}
	}
}

// hasNumber reports whether the next token is a number rather than a
// command.
func (p *pathDataParser) hasNumber() bool {
	p.skipSeparators()
	if p.pos >= len(p.s) {
		return false
	}
	c := p.s[p.pos]
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}

func (p *pathDataParser) number() (float64, error) {
	p.skipSeparators()
	begin := p.pos
	if p.pos < len(p.s) && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
		p.pos++
	}
	dot := false
	exp := false
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		switch {
		case c >= '0' && c <= '9':
			p.pos++
		case c == '.' && !dot && !exp:
			dot = true
			p.pos++
		case (c == 'e' || c == 'E') && !exp:
			exp = true
			p.pos++
			if p.pos < len(p.s) && (p.s[p.pos] == '-' || p.s[p.pos] == '+') {
				p.pos++
			}
		default:
			goto done
		}
	}
done:
	if p.pos == begin {
		return 0, fmt.Errorf("outline: expected number at offset %d", begin)
	}
	n, err := strconv.ParseFloat(p.s[begin:p.pos], 64)
	if err != nil {
		return 0, fmt.Errorf("outline: bad number %q at offset %d", p.s[begin:p.pos], begin)
	}
	return n, nil
}

func (p *pathDataParser) point(rel bool) (Point, error) {
	x, err := p.number()
	if err != nil {
		return Point{}, err
	}
	y, err := p.number()
	if err != nil {
		return Point{}, err
	}
	pt := Pt(x, y)
	if rel {
		pt = pt.Translate(p.cur.X, p.cur.Y)
	}
	return pt, nil
}
