// Package holdtimertest provides deterministic scheduling and time for tests
// that drive a holdtimer.Timer.
package holdtimertest

import (
	"sync"
	"time"

	"holdguard/internal/core/holdtimer"
)

// ManualScheduler records scheduled tasks and runs them only when Tick is called.
type ManualScheduler struct {
	mu    sync.Mutex
	tasks []*task
}

type task struct {
	scheduler *ManualScheduler
	interval  time.Duration
	tick      func()
	stopped   bool
}

// Every registers tick; it never runs it synchronously.
func (scheduler *ManualScheduler) Every(interval time.Duration, tick func()) holdtimer.Handle {
	scheduled := &task{scheduler: scheduler, interval: interval, tick: tick}
	scheduler.mu.Lock()
	scheduler.tasks = append(scheduler.tasks, scheduled)
	scheduler.mu.Unlock()
	return scheduled
}

// Tick runs every live task once and returns how many ran.
func (scheduler *ManualScheduler) Tick() int {
	live := scheduler.live()
	for _, scheduled := range live {
		scheduled.tick()
	}
	return len(live)
}

// Active returns the number of tasks that have not been stopped.
func (scheduler *ManualScheduler) Active() int {
	return len(scheduler.live())
}

// Scheduled returns the number of tasks ever registered.
func (scheduler *ManualScheduler) Scheduled() int {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	return len(scheduler.tasks)
}

// Intervals returns the interval of every registered task in order.
func (scheduler *ManualScheduler) Intervals() []time.Duration {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	intervals := make([]time.Duration, 0, len(scheduler.tasks))
	for _, scheduled := range scheduler.tasks {
		intervals = append(intervals, scheduled.interval)
	}
	return intervals
}

// FireStale runs the tick of every task, stopped or not, to mimic ticks that
// were already queued when their handle was released.
func (scheduler *ManualScheduler) FireStale() {
	scheduler.mu.Lock()
	all := append([]*task(nil), scheduler.tasks...)
	scheduler.mu.Unlock()
	for _, scheduled := range all {
		scheduled.tick()
	}
}

func (scheduler *ManualScheduler) live() []*task {
	scheduler.mu.Lock()
	defer scheduler.mu.Unlock()
	var live []*task
	for _, scheduled := range scheduler.tasks {
		if !scheduled.stopped {
			live = append(live, scheduled)
		}
	}
	return live
}

func (scheduled *task) Stop() {
	scheduled.scheduler.mu.Lock()
	defer scheduled.scheduler.mu.Unlock()
	scheduled.stopped = true
}

// FakeClock is a Clock whose time only moves when told to.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock frozen at start.
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

// Now returns the frozen time.
func (clock *FakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

// Advance moves the clock forward by delta.
func (clock *FakeClock) Advance(delta time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(delta)
}
