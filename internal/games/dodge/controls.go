package dodge

import "github.com/vovakirdan/dodge-blocks/internal/core"

// controls derives the player's velocity from held movement keys.
// When both keys of an axis are held, the most recently pressed one wins.
type controls struct {
	held  map[core.Key]bool
	lastX core.Key
	lastY core.Key
}

func newControls() controls {
	return controls{held: make(map[core.Key]bool)}
}

// apply records a movement key transition.
func (c *controls) apply(ev core.KeyEvent) {
	if !ev.Released {
		c.held[ev.Key] = true
		switch ev.Key {
		case core.KeyLeft, core.KeyRight:
			c.lastX = ev.Key
		case core.KeyUp, core.KeyDown:
			c.lastY = ev.Key
		}
		return
	}

	delete(c.held, ev.Key)
	c.lastX = c.fallback(c.lastX, ev.Key, core.KeyLeft, core.KeyRight)
	c.lastY = c.fallback(c.lastY, ev.Key, core.KeyUp, core.KeyDown)
}

// fallback picks the axis key that stays active after released goes up.
func (c *controls) fallback(last, released, a, b core.Key) core.Key {
	if last != released {
		return last
	}
	switch {
	case released == a && c.held[b]:
		return b
	case released == b && c.held[a]:
		return a
	default:
		return core.KeyNone
	}
}

// velocity returns the per-axis velocity for the given speed.
func (c *controls) velocity(speed int) (vx, vy int) {
	switch c.lastX {
	case core.KeyLeft:
		vx = -speed
	case core.KeyRight:
		vx = speed
	}
	switch c.lastY {
	case core.KeyUp:
		vy = -speed
	case core.KeyDown:
		vy = speed
	}
	return vx, vy
}
