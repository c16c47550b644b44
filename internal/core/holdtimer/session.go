package holdtimer

import (
	"time"

	"github.com/google/uuid"
)

// Session is the state of one press gesture, from start to completion or cancel.
type Session struct {
	ID        string
	StartedAt time.Time
	Duration  time.Duration
	Progress  float64
	Fired     bool

	// started is set for sessions begun by Start; any StartedAt, including
	// the zero time, is then a valid origin.
	started bool
}

func newSession(now time.Time, duration time.Duration) Session {
	return Session{
		ID:        uuid.NewString(),
		StartedAt: now,
		Duration:  duration,
		started:   true,
	}
}

// ProgressAt returns the normalized elapsed fraction at now, clamped to [0, 1].
func (session Session) ProgressAt(now time.Time) float64 {
	if !session.started || session.Duration <= 0 {
		return 0
	}
	progress := float64(now.Sub(session.StartedAt)) / float64(session.Duration)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

// advance recomputes progress from wall-clock time. It reports true only on
// the call that first brings progress to 1.
func (session *Session) advance(now time.Time) bool {
	session.Progress = session.ProgressAt(now)
	if session.Progress < 1 || session.Fired {
		return false
	}
	session.Fired = true
	return true
}
