// Package outline normalizes and samples vector outlines, such as glyph
// contours extracted from a font.
//
// An outline is a [Path]: an ordered sequence of subpaths, each a contiguous
// run of line and cubic Bézier segments. Paths are built from drawing
// commands ([MoveTo], [LineTo], [CubicTo], [ClosePath]) with absolute
// coordinates, and are treated as immutable: every operation returns a new
// path.
//
// # Coordinate spaces
//
// Three coordinate spaces appear throughout the package and are never mixed
// implicitly:
//
//   - Source space: the space the raw outline was authored in. For font
//     glyphs this is font units with the Y axis increasing upwards.
//   - Outline space: source space after the canonical vertical flip, so that
//     the Y axis increases downwards but scale and origin are still those of
//     the source.
//   - Target space: the target × target square that [Normalize] fits the
//     outline into. Consumers such as canvases draw directly in this space,
//     with the Y axis increasing downwards.
//
// [Normalize] computes the canonical flip + uniform-scale + center transform
// taking source space to target space. The returned [Transform] maps further
// coordinates between the spaces: [Transform.Apply] and [Transform.Invert]
// convert between source and target space, while [Transform.ToOutline] and
// [Transform.FromOutline] convert between target and outline space, which is
// the space interactive annotations are usually stored in.
//
// # Derived geometry
//
// [Sample] produces evenly spaced point sequences along each subpath, in
// stroke order. The parameterization is per-segment-uniform rather than
// arc-length-uniform: points bunch up where segments are short. This matches
// the needs of coarse stroke-shape export and is a documented limitation.
//
// [Arrow] and [Circle] synthesize decoration geometry (arrow-head wings,
// full circles built from two arcs), and [PlaceChild] embeds an
// independently normalized outline, such as a digit, at a chosen position
// inside a larger one.
//
// All operations are pure functions without shared state; they may be called
// concurrently on independent inputs.
package outline
