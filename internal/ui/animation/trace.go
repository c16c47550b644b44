package animation

import (
	"fyne.io/fyne/v2"

	"holdguard/internal/core/bordertrace"
)

// Segment is the visible part of one traced edge.
type Segment struct {
	From fyne.Position
	To   fyne.Position
}

// Corner is a highlight point and its opacity.
type Corner struct {
	At      fyne.Position
	Opacity float64
}

// Frame is the geometry of one border-trace render.
type Frame struct {
	Edges   [4]Segment
	Corners [4]Corner
}

// Trace lays out edge segments for a rectangle of the given size, shrunk by
// inset on every side. Edges run clockwise from the top-left corner.
func Trace(size fyne.Size, inset float32, edges bordertrace.EdgeProgress) Frame {
	left, top := inset, inset
	right, bottom := size.Width-inset, size.Height-inset
	if right < left {
		right = left
	}
	if bottom < top {
		bottom = top
	}
	width, height := right-left, bottom-top

	topLeft := fyne.NewPos(left, top)
	topRight := fyne.NewPos(right, top)
	bottomRight := fyne.NewPos(right, bottom)
	bottomLeft := fyne.NewPos(left, bottom)

	return Frame{
		Edges: [4]Segment{
			{From: topLeft, To: fyne.NewPos(left+width*float32(edges.Top), top)},
			{From: topRight, To: fyne.NewPos(right, top+height*float32(edges.Right))},
			{From: bottomRight, To: fyne.NewPos(right-width*float32(edges.Bottom), bottom)},
			{From: bottomLeft, To: fyne.NewPos(left, bottom-height*float32(edges.Left))},
		},
		Corners: [4]Corner{
			{At: topLeft, Opacity: edges.TopLeft},
			{At: topRight, Opacity: edges.TopRight},
			{At: bottomRight, Opacity: edges.BottomRight},
			{At: bottomLeft, Opacity: edges.BottomLeft},
		},
	}
}

// FillWidth returns the width of a fill bar for progress across width.
func FillWidth(width float32, progress float64) float32 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return width
	}
	return width * float32(progress)
}
