// Package bordertrace maps hold progress onto a perimeter that is traced
// quadrant by quadrant: top, right, bottom, then left, with a highlight on
// each corner as the trace passes it.
package bordertrace

import "math"

// TransitionWidth is the progress span over which a corner highlight fades in.
const TransitionWidth = 0.04

// Corner start thresholds, in progress units.
const (
	topRightStart    = 0.25
	bottomRightStart = 0.5
	bottomLeftStart  = 0.75
)

// EdgeProgress holds the per-edge trace fractions and per-corner highlight
// opacities for one progress value. Every field is in [0, 1].
type EdgeProgress struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64

	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// Decompose splits progress into edge and corner values. Callers pass the
// progress published by holdtimer.Timer, which is already within [0, 1].
// Anything outside that range is clamped silently; NaN counts as no progress.
func Decompose(progress float64) EdgeProgress {
	progress = clamp(progress)
	quarters := progress * 4

	topLeft := 0.0
	if progress > 0 {
		topLeft = 1
	}

	return EdgeProgress{
		Top:    clamp(quarters),
		Right:  clamp(quarters - 1),
		Bottom: clamp(quarters - 2),
		Left:   clamp(quarters - 3),

		TopLeft:     topLeft,
		TopRight:    clamp((progress - topRightStart) / TransitionWidth),
		BottomRight: clamp((progress - bottomRightStart) / TransitionWidth),
		BottomLeft:  clamp((progress - bottomLeftStart) / TransitionWidth),
	}
}

// Edges returns the edge fractions in trace order: top, right, bottom, left.
func (edges EdgeProgress) Edges() [4]float64 {
	return [4]float64{edges.Top, edges.Right, edges.Bottom, edges.Left}
}

// Corners returns the corner opacities in trace order: top-left, top-right,
// bottom-right, bottom-left.
func (edges EdgeProgress) Corners() [4]float64 {
	return [4]float64{edges.TopLeft, edges.TopRight, edges.BottomRight, edges.BottomLeft}
}

// Values returns all eight values, edges first.
func (edges EdgeProgress) Values() [8]float64 {
	e, c := edges.Edges(), edges.Corners()
	return [8]float64{e[0], e[1], e[2], e[3], c[0], c[1], c[2], c[3]}
}

func clamp(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
