package holdtimer

import (
	"sync"
	"time"
)

// Handle owns a periodic sampling resource until stopped.
type Handle interface {
	Stop()
}

// Scheduler runs tick every interval until the returned handle is stopped.
type Scheduler interface {
	Every(interval time.Duration, tick func()) Handle
}

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock is the default Clock implementation.
var SystemClock Clock = systemClock{}

// TickerScheduler samples on a time.Ticker goroutine. When Dispatch is set,
// every tick is handed to it instead of running on the ticker goroutine, so a
// UI host can serialize ticks with its own input events.
type TickerScheduler struct {
	Dispatch func(func())
}

// Every starts a ticker goroutine.
func (scheduler TickerScheduler) Every(interval time.Duration, tick func()) Handle {
	handle := &tickerHandle{stopCh: make(chan struct{})}
	go handle.run(interval, tick, scheduler.Dispatch)
	return handle
}

type tickerHandle struct {
	stopCh chan struct{}
	once   sync.Once
}

func (handle *tickerHandle) Stop() {
	handle.once.Do(func() {
		close(handle.stopCh)
	})
}

func (handle *tickerHandle) run(interval time.Duration, tick func(), dispatch func(func())) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-handle.stopCh:
			return
		case <-ticker.C:
			if dispatch != nil {
				dispatch(tick)
				continue
			}
			tick()
		}
	}
}
