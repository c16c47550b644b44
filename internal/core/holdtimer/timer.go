package holdtimer

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"holdguard/internal/core/model"
)

// ErrNotHolding indicates Sample was called outside of an active hold.
var ErrNotHolding = errors.New("hold timer is not holding")

// Options contains collaborators and callbacks for a Timer.
type Options struct {
	// OnProgress receives the normalized progress on every sample. It runs
	// while the timer lock is held and must not call back into the Timer.
	OnProgress func(progress float64)
	// OnComplete runs exactly once per successful hold, after the sampling
	// handle has been released. It may call Start again.
	OnComplete func()

	Scheduler Scheduler
	Clock     Clock
	Logger    *slog.Logger
}

// Timer is a state machine that turns a sustained press into a single
// confirmation.
type Timer struct {
	mu         sync.Mutex
	config     model.HoldConfig
	options    Options
	state      State
	session    Session
	handle     Handle
	generation uint64
	events     []subscriber
	closed     bool
}

type subscriber struct {
	ch chan Event
	// statesOnly observers never receive EventProgress.
	statesOnly bool
}

// New creates a Timer with the provided configuration.
func New(config model.HoldConfig, options Options) (*Timer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("new hold timer: %w", err)
	}
	if options.Scheduler == nil {
		options.Scheduler = TickerScheduler{}
	}
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	return &Timer{
		config:  config,
		options: options,
		state:   StateIdle,
	}, nil
}

// Subscribe registers a new observer channel. Sends never block, so a
// channel that is not drained loses events once its buffer is full.
func (timer *Timer) Subscribe(buffer int) <-chan Event {
	return timer.subscribe(buffer, false)
}

// SubscribeStates registers an observer that only receives started,
// completed and cancelled events. Progress samples cannot fill its buffer.
func (timer *Timer) SubscribeStates(buffer int) <-chan Event {
	return timer.subscribe(buffer, true)
}

func (timer *Timer) subscribe(buffer int, statesOnly bool) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	timer.mu.Lock()
	defer timer.mu.Unlock()
	if timer.closed {
		close(ch)
		return ch
	}
	timer.events = append(timer.events, subscriber{ch: ch, statesOnly: statesOnly})
	return ch
}

// Start begins a new hold session at the current clock time.
func (timer *Timer) Start() {
	timer.StartAt(timer.options.Clock.Now())
}

// StartAt begins a new hold session that started at now. Any previous
// session is discarded and its sampling handle released first.
func (timer *Timer) StartAt(now time.Time) {
	timer.mu.Lock()
	defer timer.mu.Unlock()

	if timer.closed {
		return
	}
	if timer.config.Disabled {
		timer.options.Logger.Debug("hold start ignored", "reason", "disabled")
		return
	}
	if timer.state == StateHolding {
		timer.options.Logger.Debug("hold re-armed", "session", timer.session.ID)
	}

	timer.releaseLocked()
	timer.session = newSession(now, timer.config.HoldDuration)
	timer.state = StateHolding

	generation := timer.generation
	timer.handle = timer.options.Scheduler.Every(timer.config.SamplingInterval, func() {
		timer.tick(generation)
	})

	timer.options.Logger.Debug("hold started",
		"session", timer.session.ID,
		"duration", timer.session.Duration,
	)
	timer.emitLocked(Event{
		Type:      EventStarted,
		State:     StateHolding,
		SessionID: timer.session.ID,
		At:        now,
	})
}

// Sample recomputes progress at now. It fails when no hold is active.
func (timer *Timer) Sample(now time.Time) error {
	timer.mu.Lock()
	if timer.state != StateHolding {
		state := timer.state
		timer.mu.Unlock()
		return fmt.Errorf("sample in state %s: %w", state, ErrNotHolding)
	}
	completed := timer.sampleLocked(now)
	timer.mu.Unlock()

	if completed && timer.options.OnComplete != nil {
		timer.options.OnComplete()
	}
	return nil
}

// Cancel abandons the current session without confirming it.
func (timer *Timer) Cancel() {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.cancelLocked()
}

// Teardown cancels any hold and closes observers. Once it returns, no
// further progress is published and Start is ignored.
func (timer *Timer) Teardown() {
	timer.mu.Lock()
	if timer.closed {
		timer.mu.Unlock()
		return
	}
	timer.cancelLocked()
	timer.closed = true
	events := timer.events
	timer.events = nil
	timer.mu.Unlock()

	for _, observer := range events {
		close(observer.ch)
	}
}

// SetDisabled toggles whether Start is accepted. A hold already in progress
// keeps running; callers wanting cancel-on-disable call Cancel themselves.
func (timer *Timer) SetDisabled(disabled bool) {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.config.Disabled = disabled
}

// Disabled reports whether Start is currently suppressed.
func (timer *Timer) Disabled() bool {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.config.Disabled
}

// UpdateConfig replaces the configuration used by future sessions.
func (timer *Timer) UpdateConfig(config model.HoldConfig) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("update hold config: %w", err)
	}
	timer.mu.Lock()
	defer timer.mu.Unlock()
	timer.config = config
	return nil
}

// State returns the current state.
func (timer *Timer) State() State {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.state
}

// Progress returns the last published progress.
func (timer *Timer) Progress() float64 {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.session.Progress
}

// Session returns a copy of the current session.
func (timer *Timer) Session() Session {
	timer.mu.Lock()
	defer timer.mu.Unlock()
	return timer.session
}

func (timer *Timer) tick(generation uint64) {
	timer.mu.Lock()
	if generation != timer.generation || timer.state != StateHolding {
		timer.mu.Unlock()
		return
	}
	completed := timer.sampleLocked(timer.options.Clock.Now())
	timer.mu.Unlock()

	if completed && timer.options.OnComplete != nil {
		timer.options.OnComplete()
	}
}

func (timer *Timer) sampleLocked(now time.Time) bool {
	completed := timer.session.advance(now)
	progress := timer.session.Progress

	if timer.options.OnProgress != nil {
		timer.options.OnProgress(progress)
	}
	timer.emitLocked(Event{
		Type:      EventProgress,
		State:     StateHolding,
		SessionID: timer.session.ID,
		Progress:  progress,
		At:        now,
	})
	if !completed {
		return false
	}

	timer.releaseLocked()
	timer.state = StateCompleted
	timer.session.StartedAt = time.Time{}
	timer.session.started = false

	timer.options.Logger.Debug("hold completed", "session", timer.session.ID)
	timer.emitLocked(Event{
		Type:      EventCompleted,
		State:     StateCompleted,
		SessionID: timer.session.ID,
		Progress:  progress,
		At:        now,
	})
	return true
}

func (timer *Timer) cancelLocked() {
	previous := timer.state
	timer.releaseLocked()
	sessionID := timer.session.ID
	timer.session = Session{}
	timer.state = StateIdle

	if previous != StateHolding {
		return
	}
	timer.options.Logger.Debug("hold cancelled", "session", sessionID)
	timer.emitLocked(Event{
		Type:      EventCancelled,
		State:     StateIdle,
		SessionID: sessionID,
		At:        timer.options.Clock.Now(),
	})
}

// releaseLocked stops the sampling handle and invalidates ticks already in
// flight from it.
func (timer *Timer) releaseLocked() {
	if timer.handle != nil {
		timer.handle.Stop()
		timer.handle = nil
	}
	timer.generation++
}

func (timer *Timer) emitLocked(event Event) {
	for _, observer := range timer.events {
		if observer.statesOnly && event.Type == EventProgress {
			continue
		}
		select {
		case observer.ch <- event:
		default:
		}
	}
}
