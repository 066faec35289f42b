package core

import "sync"

// Highscore is the best score seen by this process. It outlives sessions and
// is never written to disk. It is safe to share between concurrent games.
type Highscore struct {
	mu   sync.Mutex
	best int
}

// NewHighscore creates a highscore starting at the given value.
func NewHighscore(initial int) *Highscore {
	if initial < 0 {
		initial = 0
	}
	return &Highscore{best: initial}
}

// Observe records a finished session's score and reports whether it is a new best.
func (h *Highscore) Observe(score int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if score > h.best {
		h.best = score
		return true
	}
	return false
}

// Value returns the current best score.
func (h *Highscore) Value() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.best
}
