package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"holdguard/internal/ui/animation"
)

// Window handles the preferences UI.
type Window struct {
	window   fyne.Window
	settings Settings
	onSave   func(Settings)
	holdDur  *widget.Entry
	sampling *widget.Entry
	disabled *widget.Check
	style    *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Hold Guard Settings")

	holdDur := widget.NewEntry()
	sampling := widget.NewEntry()
	disabled := widget.NewCheck("Disable hold-to-confirm", nil)
	style := widget.NewSelect([]string{string(animation.StyleBorderTrace), string(animation.StyleFill)}, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Hold", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Hold for"), holdDur, widget.NewLabel("ms")),
		container.NewHBox(widget.NewLabel("Sample every"), sampling, widget.NewLabel("ms")),
		disabled,
		widget.NewLabel("Progress style"),
		style,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(360, 280))

	prefs := &Window{
		window:   window,
		onSave:   onSave,
		holdDur:  holdDur,
		sampling: sampling,
		disabled: disabled,
		style:    style,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.holdDur.SetText(fmt.Sprintf("%d", settings.HoldDuration.Milliseconds()))
	prefs.sampling.SetText(fmt.Sprintf("%d", settings.SamplingInterval.Milliseconds()))
	prefs.disabled.SetChecked(settings.Disabled)
	prefs.style.SetSelected(string(settings.Look().Style))
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if millis, ok := parsePositiveInt(prefs.holdDur.Text); ok {
		settings.HoldDuration = time.Duration(millis) * time.Millisecond
	}
	if millis, ok := parsePositiveInt(prefs.sampling.Text); ok {
		settings.SamplingInterval = time.Duration(millis) * time.Millisecond
	}
	if style, err := animation.ParseStyle(prefs.style.Selected); err == nil {
		settings.Style = style
	}
	settings.Disabled = prefs.disabled.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
