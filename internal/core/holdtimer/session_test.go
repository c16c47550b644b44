package holdtimer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionProgressAtClamps(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	session := newSession(start, 3*time.Second)

	assert.Equal(t, 0.0, session.ProgressAt(start.Add(-time.Second)))
	assert.Equal(t, 0.0, session.ProgressAt(start))
	assert.InDelta(t, 0.5, session.ProgressAt(start.Add(1500*time.Millisecond)), 1e-12)
	assert.Equal(t, 1.0, session.ProgressAt(start.Add(3*time.Second)))
	assert.Equal(t, 1.0, session.ProgressAt(start.Add(time.Hour)))
}

func TestSessionProgressAtWithoutStart(t *testing.T) {
	assert.Equal(t, 0.0, Session{}.ProgressAt(time.Now()))
	assert.Equal(t, 0.0, Session{Duration: time.Second}.ProgressAt(time.Now()))
}

func TestSessionProgressAtZeroTimeOrigin(t *testing.T) {
	var origin time.Time
	session := newSession(origin, 3*time.Second)

	assert.InDelta(t, 0.5, session.ProgressAt(origin.Add(1500*time.Millisecond)), 1e-12)
	assert.True(t, session.advance(origin.Add(3*time.Second)))
	assert.Equal(t, 1.0, session.Progress)
}

func TestSessionAdvanceFiresOnce(t *testing.T) {
	start := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	session := newSession(start, time.Second)

	assert.False(t, session.advance(start.Add(999*time.Millisecond)))
	assert.False(t, session.Fired)
	assert.True(t, session.advance(start.Add(time.Second)))
	assert.True(t, session.Fired)
	assert.False(t, session.advance(start.Add(2*time.Second)))
	assert.Equal(t, 1.0, session.Progress)
}

func TestNewSessionIDsAreUnique(t *testing.T) {
	now := time.Now()
	first := newSession(now, time.Second)
	second := newSession(now, time.Second)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}
