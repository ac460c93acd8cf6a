// Package export builds the stroke-point records consumed by tracing
// applications: per character, one record with the sampled points of every
// stroke, scaled into the unit square.
package export

import (
	"fmt"

	"github.com/google/uuid"

	"honnef.co/go/outline"
)

// PointsInfo is the stroke-point record for one character. Callers marshal
// it with encoding/json; the field layout matches the *_PointsInfo.json
// files tracing apps load as assets.
type PointsInfo struct {
	ID      string         `json:"id"`
	Style   string         `json:"style"`
	Char    string         `json:"char"`
	Strokes []StrokePoints `json:"strokes"`
}

// StrokePoints holds one stroke's sampled points as "x,y" strings, in
// stroke order.
type StrokePoints struct {
	Points []string `json:"points"`
}

// DefaultStyle is the style recorded in new records.
const DefaultStyle = "default"

// New builds a PointsInfo record for char from sampled strokes. Every
// coordinate is divided by scale, so that points of an outline normalized
// to a target-sized square come out in [0, 1] when scale equals the target
// size. A fresh random ID is assigned.
func New(char string, strokes []outline.Stroke, scale float64) PointsInfo {
	info := PointsInfo{
		ID:      uuid.NewString(),
		Style:   DefaultStyle,
		Char:    char,
		Strokes: make([]StrokePoints, len(strokes)),
	}
	for i, stroke := range strokes {
		pts := make([]string, len(stroke.Points))
		for k, pt := range stroke.Points {
			pts[k] = fmt.Sprintf("%.4f,%.4f", pt.X/scale, pt.Y/scale)
		}
		info.Strokes[i] = StrokePoints{Points: pts}
	}
	return info
}
