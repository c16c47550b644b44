package holdbutton

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"holdguard/internal/core/bordertrace"
	"holdguard/internal/ui/animation"
)

type renderer struct {
	button     *Button
	background *canvas.Rectangle
	fill       *canvas.Rectangle
	edges      [4]*canvas.Line
	corners    [4]*canvas.Circle
	label      *canvas.Text
	objects    []fyne.CanvasObject
}

func newRenderer(button *Button) *renderer {
	view := button.snapshot()

	background := canvas.NewRectangle(theme.Color(theme.ColorNameButton))
	background.CornerRadius = theme.InputRadiusSize()

	fill := canvas.NewRectangle(theme.Color(theme.ColorNameError))
	fill.CornerRadius = theme.InputRadiusSize()

	label := canvas.NewText(view.label, theme.Color(theme.ColorNameForeground))
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}

	render := &renderer{
		button:     button,
		background: background,
		fill:       fill,
		label:      label,
	}

	render.objects = []fyne.CanvasObject{background, fill}
	for i := range render.edges {
		render.edges[i] = canvas.NewLine(theme.Color(theme.ColorNameError))
		render.objects = append(render.objects, render.edges[i])
	}
	for i := range render.corners {
		render.corners[i] = canvas.NewCircle(color.Transparent)
		render.objects = append(render.objects, render.corners[i])
	}
	render.objects = append(render.objects, label)

	render.apply(view)
	return render
}

func (render *renderer) Destroy() {
	// The widget may come back later; only stop any live hold.
	render.button.timer.Cancel()
}

func (render *renderer) Layout(size fyne.Size) {
	view := render.button.snapshot()

	render.background.Move(fyne.NewPos(0, 0))
	render.background.Resize(size)

	render.fill.Move(fyne.NewPos(0, 0))
	render.fill.Resize(fyne.NewSize(animation.FillWidth(size.Width, view.progress), size.Height))

	frame := animation.Trace(size, view.look.Inset, bordertrace.Decompose(view.progress))
	for i, segment := range frame.Edges {
		render.edges[i].Position1 = segment.From
		render.edges[i].Position2 = segment.To
	}
	half := view.look.CornerSize / 2
	for i, corner := range frame.Corners {
		render.corners[i].Move(corner.At.SubtractXY(half, half))
		render.corners[i].Resize(fyne.NewSquareSize(view.look.CornerSize))
	}

	labelSize := render.label.MinSize()
	render.label.Move(fyne.NewPos((size.Width-labelSize.Width)/2, (size.Height-labelSize.Height)/2))
	render.label.Resize(labelSize)
}

func (render *renderer) MinSize() fyne.Size {
	padding := theme.Padding()
	return render.label.MinSize().AddWidthHeight(padding*4, padding*2)
}

func (render *renderer) Objects() []fyne.CanvasObject {
	return render.objects
}

func (render *renderer) Refresh() {
	render.apply(render.button.snapshot())
	render.Layout(render.button.Size())
	for _, object := range render.objects {
		object.Refresh()
	}
}

func (render *renderer) apply(view buttonView) {
	render.label.Text = view.label
	render.label.Color = theme.Color(theme.ColorNameForeground)
	render.background.FillColor = theme.Color(theme.ColorNameButton)
	if view.disabled {
		render.label.Color = theme.Color(theme.ColorNameDisabled)
		render.background.FillColor = theme.Color(theme.ColorNameDisabledButton)
	}

	trace := theme.Color(theme.ColorNameError)
	borderTrace := view.look.Style == animation.StyleBorderTrace
	if borderTrace {
		render.fill.Hide()
	} else {
		render.fill.Show()
		render.fill.FillColor = withOpacity(trace, 0.6)
	}

	for _, edge := range render.edges {
		edge.StrokeColor = trace
		edge.StrokeWidth = view.look.StrokeWidth
		edge.Hidden = !borderTrace || view.progress <= 0
	}
	corners := bordertrace.Decompose(view.progress).Corners()
	for i, corner := range render.corners {
		corner.FillColor = withOpacity(trace, corners[i])
		corner.Hidden = !borderTrace
	}
}

func withOpacity(base color.Color, opacity float64) color.Color {
	nrgba := color.NRGBAModel.Convert(base).(color.NRGBA)
	nrgba.A = uint8(float64(nrgba.A) * opacity)
	return nrgba
}
