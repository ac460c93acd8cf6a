package outline

// Session holds the state of an interactive annotation pass over one
// outline: the ordered list of finalized strokes plus the stroke currently
// being drawn. It replaces the ad-hoc mutable point lists that point-and-
// click annotation tools tend to accumulate; the UI layer owns a Session and
// feeds it events, the session owns the geometry.
//
// All points are in outline space (see [Transform.ToOutline]), so that
// recorded annotations survive re-normalization at a different target size.
//
// The zero value is an empty session with no stroke limit.
type Session struct {
	// MaxStrokes caps the number of finalized strokes. Zero means no limit.
	MaxStrokes int

	strokes [][]Point
	current []Point
}

// AddPoint appends a point to the in-progress stroke. It reports whether the
// point was accepted; points are rejected once MaxStrokes strokes have been
// finalized.
func (s *Session) AddPoint(pt Point) bool {
	if s.MaxStrokes > 0 && len(s.strokes) >= s.MaxStrokes {
		return false
	}
	s.current = append(s.current, pt)
	return true
}

// EndStroke finalizes the in-progress stroke. It reports whether a stroke
// was finalized; strokes with fewer than two points stay in progress, since
// they describe no geometry.
func (s *Session) EndStroke() bool {
	if len(s.current) < 2 {
		return false
	}
	if s.MaxStrokes > 0 && len(s.strokes) >= s.MaxStrokes {
		return false
	}
	s.strokes = append(s.strokes, s.current)
	s.current = nil
	return true
}

// Undo removes the most recent point of the in-progress stroke. If no
// stroke is in progress, it removes the most recently finalized stroke
// instead. It reports whether anything was removed.
func (s *Session) Undo() bool {
	if len(s.current) > 0 {
		s.current = s.current[:len(s.current)-1]
		return true
	}
	if len(s.strokes) > 0 {
		s.strokes = s.strokes[:len(s.strokes)-1]
		return true
	}
	return false
}

// Strokes returns the finalized strokes in the order they were drawn. The
// returned slices are copies; mutating them does not affect the session.
func (s *Session) Strokes() [][]Point {
	out := make([][]Point, len(s.strokes))
	for i, stroke := range s.strokes {
		out[i] = append([]Point(nil), stroke...)
	}
	return out
}

// Current returns a copy of the in-progress stroke.
func (s *Session) Current() []Point {
	return append([]Point(nil), s.current...)
}
