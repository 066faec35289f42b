package dodge

import "time"

// Mode selects the session rules.
type Mode int

const (
	ModeTimeTrial Mode = iota // Fixed duration, ends on timeout or collision
	ModeEndless               // Ends only on collision; levels up with score
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeTimeTrial:
		return "Time Trial"
	case ModeEndless:
		return "Endless"
	default:
		return "Unknown"
	}
}

// SessionClock remembers when the current session started.
type SessionClock struct {
	Start time.Time
}

// Elapsed returns the time since the session started.
func (c SessionClock) Elapsed(now time.Time) time.Duration {
	return now.Sub(c.Start)
}

// elapsedSeconds truncates the elapsed time to whole seconds, the unit the
// countdown is displayed and checked in.
func (c SessionClock) elapsedSeconds(now time.Time) int {
	return int(c.Elapsed(now) / time.Second)
}

// Remaining returns the whole seconds left of a session of the given length, never negative.
func (c SessionClock) Remaining(now time.Time, duration time.Duration) int {
	left := int(duration/time.Second) - c.elapsedSeconds(now)
	if left < 0 {
		return 0
	}
	return left
}

// Expired reports whether the mode's time limit has been reached.
// Endless never expires.
func (m Mode) Expired(c SessionClock, now time.Time, duration time.Duration) bool {
	if m != ModeTimeTrial {
		return false
	}
	return c.elapsedSeconds(now) >= int(duration/time.Second)
}
