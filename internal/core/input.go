package core

// Key is a logical key the game reacts to, abstracted from physical key codes.
type Key int

const (
	KeyNone      Key = iota
	KeyLeft          // Left arrow, h, a
	KeyRight         // Right arrow, l, d
	KeyUp            // Up arrow, k, w
	KeyDown          // Down arrow, j, s
	KeyTimeTrial     // 1 - select Time Trial in the menu
	KeyEndless       // 2 - select Endless in the menu
	KeyRestart       // R - restart after game over
	KeyMenu          // M - back to the menu after game over
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyTimeTrial:
		return "1"
	case KeyEndless:
		return "2"
	case KeyRestart:
		return "R"
	case KeyMenu:
		return "M"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the key steers the player.
func (k Key) IsMovement() bool {
	return k == KeyLeft || k == KeyRight || k == KeyUp || k == KeyDown
}

// KeyEvent is a single key transition.
type KeyEvent struct {
	Key      Key
	Released bool
}

// InputFrame holds the input gathered for one simulation tick.
// Events are kept in arrival order.
type InputFrame struct {
	Events []KeyEvent
	Quit   bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]KeyEvent, 0, 4)}
}

// Press records a key-down event.
func (f *InputFrame) Press(k Key) {
	f.Events = append(f.Events, KeyEvent{Key: k})
}

// Release records a key-up event.
func (f *InputFrame) Release(k Key) {
	f.Events = append(f.Events, KeyEvent{Key: k, Released: true})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
	f.Quit = false
}

// HoldTracker synthesizes key-up events for terminals, which only report
// presses (and auto-repeat). A movement key counts as held until it has not
// been seen for holdTicks ticks.
type HoldTracker struct {
	holdTicks int
	remaining map[Key]int
}

// NewHoldTracker creates a tracker that releases keys after holdTicks silent ticks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HoldTracker{
		holdTicks: holdTicks,
		remaining: make(map[Key]int),
	}
}

// Press refreshes a key. A key that was not already held is recorded as a
// press in the frame; repeats of a held key are swallowed.
func (h *HoldTracker) Press(k Key, frame *InputFrame) {
	if !k.IsMovement() {
		frame.Press(k)
		return
	}
	if _, held := h.remaining[k]; !held {
		frame.Press(k)
	}
	h.remaining[k] = h.holdTicks
}

// Tick ages all held keys and appends releases for the expired ones.
// Releases are emitted in key order to keep replays deterministic.
func (h *HoldTracker) Tick(frame *InputFrame) {
	for k := KeyLeft; k <= KeyDown; k++ {
		n, held := h.remaining[k]
		if !held {
			continue
		}
		n--
		if n <= 0 {
			delete(h.remaining, k)
			frame.Release(k)
			continue
		}
		h.remaining[k] = n
	}
}
