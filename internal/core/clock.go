package core

import "time"

// Clock abstracts wall time so fixed-rate loops can be tested without sleeping.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep blocks for d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// Pacer meters a loop to a target tick rate. It makes no hard real-time
// guarantee: a tick that overruns simply starts the next one late.
type Pacer struct {
	clock    Clock
	interval time.Duration
	last     time.Time
}

// NewPacer creates a pacer for tickRate ticks per second.
// A non-positive rate defaults to 60.
func NewPacer(clock Clock, tickRate int) *Pacer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Pacer{
		clock:    clock,
		interval: time.Second / time.Duration(tickRate),
		last:     clock.Now(),
	}
}

// Interval returns the target tick duration.
func (p *Pacer) Interval() time.Duration {
	return p.interval
}

// Wait blocks until the current tick's budget is spent and returns the time
// elapsed since the previous Wait (including the wait itself).
func (p *Pacer) Wait() time.Duration {
	elapsed := p.clock.Now().Sub(p.last)
	if elapsed < p.interval {
		p.clock.Sleep(p.interval - elapsed)
	}
	now := p.clock.Now()
	total := now.Sub(p.last)
	p.last = now
	return total
}
