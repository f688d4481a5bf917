package pkg

import (
	"fmt"
	"time"
)

// Clock tracks the remaining time for one side. It does not tick on its
// own; the UI advances it once per second while its side is to move.
type Clock struct {
	Duration  time.Duration
	Remaining time.Duration
	Increment time.Duration
	Paused    bool
}

func NewClock(duration, increment time.Duration) *Clock {
	return &Clock{
		Duration:  duration,
		Remaining: duration,
		Increment: increment,
		Paused:    true,
	}
}

func (cl *Clock) String() string {
	return fmt.Sprintf("%d:%02d", int(cl.Remaining.Minutes()), int(cl.Remaining.Seconds())%60)
}

// Tick advances the clock by one second while it is running.
func (cl *Clock) Tick() {
	if cl.Paused || cl.Remaining <= 0 {
		return
	}
	cl.Remaining -= time.Second
}

// Punch stops the clock at the end of the owner's turn and applies the
// per-move increment.
func (cl *Clock) Punch() {
	cl.Paused = true
	cl.Remaining += cl.Increment
}

func (cl *Clock) Start() {
	cl.Paused = false
}

func (cl *Clock) Pause() {
	cl.Paused = true
}

func (cl *Clock) Reset() {
	cl.Remaining = cl.Duration
	cl.Paused = true
}
