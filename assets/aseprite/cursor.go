package aseprite

// Mode selects what happens when a cursor reaches the end of its sequence.
type Mode int

const (
	// ModeLoop wraps around (or bounces, for pingpong) indefinitely.
	ModeLoop Mode = iota
	// ModeOnce freezes on the final frame and reports Finished.
	ModeOnce
)

// Cursor advances through a frame range with per-frame durations. It is
// pure bookkeeping: no images, no clock of its own. The owner feeds it dt
// each tick and reads Frame to pick the image to draw.
//
// Pingpong playback does not repeat the endpoints: four frames play as
// 0 1 2 3 2 1 0 1 2 ...
type Cursor struct {
	durations []float64
	direction Direction
	mode      Mode

	index    int
	timer    float64
	reversed bool // pingpong only: currently heading backward
	finished bool
	looped   bool
}

// NewCursor starts a cursor over len(durations) frames. Reverse playback
// starts on the last frame.
func NewCursor(durations []float64, direction Direction, mode Mode) Cursor {
	c := Cursor{durations: durations, direction: direction, mode: mode}
	c.Reset()
	return c
}

// Reset rewinds to the first frame of the sequence.
func (c *Cursor) Reset() {
	c.timer = 0
	c.reversed = false
	c.finished = false
	c.looped = false
	if c.direction == Reverse && len(c.durations) > 0 {
		c.index = len(c.durations) - 1
	} else {
		c.index = 0
	}
}

// Frame is the current 0-based index within the sequence.
func (c *Cursor) Frame() int { return c.index }

// Finished reports whether a ModeOnce cursor has completed its pass.
func (c *Cursor) Finished() bool { return c.finished }

// Looped reports whether a ModeLoop cursor has wrapped at least once.
func (c *Cursor) Looped() bool { return c.looped }

// Len is the number of frames in the sequence.
func (c *Cursor) Len() int { return len(c.durations) }

// Advance moves the cursor forward by dt seconds, stepping as many frames
// as the elapsed time covers. Leftover time carries into the next frame so
// long frames and short frames stay accurate at any tick rate.
func (c *Cursor) Advance(dt float64) {
	if c.finished || len(c.durations) == 0 {
		return
	}
	c.timer += dt
	if len(c.durations) == 1 {
		d := c.durations[0]
		if d <= 0 {
			d = defaultFrameDuration
		}
		if c.mode == ModeOnce && c.timer >= d {
			c.finished = true
		}
		return
	}
	for {
		d := c.durations[c.index]
		if d <= 0 {
			d = defaultFrameDuration
		}
		if c.timer < d {
			return
		}
		c.timer -= d
		if !c.step() {
			c.timer = 0
			return
		}
	}
}

// step moves one frame in the playback direction. It returns false when the
// cursor froze (ModeOnce completion).
func (c *Cursor) step() bool {
	last := len(c.durations) - 1
	switch c.direction {
	case Reverse:
		if c.index == 0 {
			if c.mode == ModeOnce {
				c.finished = true
				return false
			}
			c.index = last
			c.looped = true
		} else {
			c.index--
		}
	case PingPong:
		if !c.reversed {
			if c.index == last {
				c.reversed = true
				c.index--
			} else {
				c.index++
			}
		} else {
			if c.index == 0 {
				if c.mode == ModeOnce {
					c.finished = true
					return false
				}
				c.reversed = false
				c.index++
				c.looped = true
			} else {
				c.index--
			}
		}
	default: // Forward
		if c.index == last {
			if c.mode == ModeOnce {
				c.finished = true
				return false
			}
			c.index = 0
			c.looped = true
		} else {
			c.index++
		}
	}
	return true
}
