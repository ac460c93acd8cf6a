package outline

import "errors"

var (
	// ErrEmptyPath is returned when an operation is given a path with no
	// subpaths or no segments.
	ErrEmptyPath = errors.New("outline: empty path")

	// ErrDegenerateGeometry is returned when an outline's bounding box has
	// zero width or zero height, leaving the normalization scale undefined.
	ErrDegenerateGeometry = errors.New("outline: degenerate bounding box")

	// ErrInvalidSampleCount is returned when fewer than two samples per
	// subpath are requested; the parameterization t = k/(n−1) is undefined
	// for n < 2.
	ErrInvalidSampleCount = errors.New("outline: need at least 2 samples per subpath")
)
