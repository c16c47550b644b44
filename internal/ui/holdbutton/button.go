package holdbutton

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"holdguard/internal/core/holdtimer"
	"holdguard/internal/core/model"
	"holdguard/internal/ui/animation"
)

// Button is a widget that confirms an action only after it has been held
// down for the configured duration.
type Button struct {
	widget.BaseWidget

	OnConfirmed func()

	mu       sync.RWMutex
	label    string
	look     animation.Config
	progress float64
	disabled bool
	timer    *holdtimer.Timer
}

var (
	_ desktop.Mouseable  = (*Button)(nil)
	_ desktop.Cursorable = (*Button)(nil)
	_ mobile.Touchable   = (*Button)(nil)
)

// New creates a hold button. When options carries no scheduler, ticks are
// delivered on the fyne UI goroutine. Callbacks in options are replaced.
func New(label string, config model.HoldConfig, look animation.Config, onConfirmed func(), options holdtimer.Options) (*Button, error) {
	button := &Button{
		OnConfirmed: onConfirmed,
		label:       label,
		look:        look,
		disabled:    config.Disabled,
	}

	if options.Scheduler == nil {
		options.Scheduler = holdtimer.TickerScheduler{Dispatch: fyne.Do}
	}
	options.OnProgress = button.setProgress
	options.OnComplete = button.complete

	timer, err := holdtimer.New(config, options)
	if err != nil {
		return nil, fmt.Errorf("new hold button: %w", err)
	}
	button.timer = timer
	button.ExtendBaseWidget(button)
	return button, nil
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer.
func (button *Button) CreateRenderer() fyne.WidgetRenderer {
	button.ExtendBaseWidget(button)
	return newRenderer(button)
}

// MouseDown starts a hold on primary button press.
func (button *Button) MouseDown(event *desktop.MouseEvent) {
	if event != nil && event.Button != desktop.MouseButtonPrimary {
		return
	}
	button.press()
}

// MouseUp abandons an unfinished hold.
func (button *Button) MouseUp(event *desktop.MouseEvent) {
	if event != nil && event.Button != desktop.MouseButtonPrimary {
		return
	}
	button.release()
}

// TouchDown starts a hold.
func (button *Button) TouchDown(*mobile.TouchEvent) {
	button.press()
}

// TouchUp abandons an unfinished hold.
func (button *Button) TouchUp(*mobile.TouchEvent) {
	button.release()
}

// TouchCancel abandons an unfinished hold.
func (button *Button) TouchCancel(*mobile.TouchEvent) {
	button.release()
}

// Cursor returns the pointer cursor.
func (button *Button) Cursor() desktop.Cursor {
	return desktop.PointerCursor
}

// Disable stops new holds from starting. A hold already in progress runs on.
func (button *Button) Disable() {
	button.setDisabled(true)
}

// Enable allows holds again.
func (button *Button) Enable() {
	button.setDisabled(false)
}

// Disabled reports whether new holds are suppressed.
func (button *Button) Disabled() bool {
	button.mu.RLock()
	defer button.mu.RUnlock()
	return button.disabled
}

// SetHoldConfig changes the hold duration and sampling for future holds.
func (button *Button) SetHoldConfig(config model.HoldConfig) error {
	if err := button.timer.UpdateConfig(config); err != nil {
		return err
	}
	if config.Disabled {
		button.Disable()
		return nil
	}
	button.Enable()
	return nil
}

// SetLook changes how progress is presented.
func (button *Button) SetLook(look animation.Config) {
	button.mu.Lock()
	button.look = look
	button.mu.Unlock()
	button.Refresh()
}

// SetText changes the label.
func (button *Button) SetText(label string) {
	button.mu.Lock()
	button.label = label
	button.mu.Unlock()
	button.Refresh()
}

// Progress returns the currently displayed progress.
func (button *Button) Progress() float64 {
	button.mu.RLock()
	defer button.mu.RUnlock()
	return button.progress
}

// State returns the underlying hold state.
func (button *Button) State() holdtimer.State {
	return button.timer.State()
}

// Subscribe forwards to the underlying timer's event stream.
func (button *Button) Subscribe(buffer int) <-chan holdtimer.Event {
	return button.timer.Subscribe(buffer)
}

// SubscribeStates forwards to the timer's state-only event stream.
func (button *Button) SubscribeStates(buffer int) <-chan holdtimer.Event {
	return button.timer.SubscribeStates(buffer)
}

// Teardown releases the hold timer for good. Call it when the button is
// removed for the last time.
func (button *Button) Teardown() {
	button.timer.Teardown()
}

func (button *Button) setDisabled(disabled bool) {
	button.mu.Lock()
	button.disabled = disabled
	button.mu.Unlock()
	button.timer.SetDisabled(disabled)
	button.Refresh()
}

func (button *Button) press() {
	if button.Disabled() {
		return
	}
	button.timer.Start()
	button.setProgress(0)
}

func (button *Button) release() {
	button.timer.Cancel()
	button.setProgress(0)
}

func (button *Button) setProgress(progress float64) {
	button.mu.Lock()
	button.progress = progress
	button.mu.Unlock()
	button.Refresh()
}

func (button *Button) complete() {
	if button.OnConfirmed != nil {
		button.OnConfirmed()
	}
}

type buttonView struct {
	label    string
	look     animation.Config
	progress float64
	disabled bool
}

// snapshot is read by the renderer; it must not touch the timer, whose lock
// may already be held by the sampling tick that triggered the refresh.
func (button *Button) snapshot() buttonView {
	button.mu.RLock()
	defer button.mu.RUnlock()
	return buttonView{
		label:    button.label,
		look:     button.look,
		progress: button.progress,
		disabled: button.disabled,
	}
}
