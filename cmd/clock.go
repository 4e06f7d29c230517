package cmd

import (
	"time"

	"github.com/they4kman/minefield/game"
)

const maxClockSeconds = 999

// clock is the elapsed-time display. It starts on the first exposed cell and
// stops when the game ends.
type clock struct {
	now       func() time.Time
	startTime time.Time
	stopTime  time.Time
	running   bool
}

func newClock() *clock {
	return &clock{now: time.Now}
}

func (c *clock) Started(*game.Session) {
	c.startTime = c.now()
	c.stopTime = time.Time{}
	c.running = true
}

func (c *clock) Ended(*game.Session) {
	if c.running {
		c.stopTime = c.now()
		c.running = false
	}
}

func (c *clock) reset() {
	*c = clock{now: c.now}
}

// Seconds reads 1 as soon as the clock starts, like the classic game.
func (c *clock) Seconds() int {
	if c.startTime.IsZero() {
		return 0
	}

	end := c.stopTime
	if c.running {
		end = c.now()
	}

	seconds := 1 + int(end.Sub(c.startTime)/time.Second)
	if seconds > maxClockSeconds {
		seconds = maxClockSeconds
	}
	return seconds
}
